package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"drukwater-admin/internal/api"
	"drukwater-admin/internal/model"
)

// GewogStore owns the gewog collection. A gewog's dzongkhag field arrives as
// either a bare id or an embedded document; resolution goes through
// DzongkhagName / model.DzongkhagRef.
type GewogStore struct {
	mu       sync.RWMutex
	items    []model.Gewog
	inflight int
	err      string

	api      *api.Client
	notifier Notifier
	logger   *zap.Logger
}

func NewGewogStore(client *api.Client, notifier Notifier, logger *zap.Logger) *GewogStore {
	return &GewogStore{api: client, notifier: notifier, logger: logger}
}

func (s *GewogStore) begin() {
	s.mu.Lock()
	s.inflight++
	s.err = ""
	s.mu.Unlock()
}

func (s *GewogStore) finish() {
	s.mu.Lock()
	s.inflight--
	s.mu.Unlock()
}

func (s *GewogStore) fail(msg string) {
	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
	s.notifier.Error(msg)
}

func (s *GewogStore) Items() []model.Gewog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Gewog, len(s.items))
	copy(out, s.items)
	return out
}

func (s *GewogStore) Lookup(id string) (*model.Gewog, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID == id {
			g := s.items[i]
			return &g, true
		}
	}
	return nil, false
}

func (s *GewogStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inflight > 0
}

func (s *GewogStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// DzongkhagName resolves a gewog's parent name for display: embedded
// documents are read directly, bare ids are joined against the dzongkhag
// store. Unresolvable references display as "Unknown".
func (s *GewogStore) DzongkhagName(g model.Gewog, dzongkhags *DzongkhagStore) string {
	if dzongkhags == nil {
		return g.Dzongkhag.DisplayName(nil)
	}
	return g.Dzongkhag.DisplayName(dzongkhags.Lookup)
}

// ByDzongkhag filters the current collection by parent id, matching both
// bare and embedded references.
func (s *GewogStore) ByDzongkhag(dzongkhagID string) []model.Gewog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []model.Gewog
	for _, g := range s.items {
		if g.Dzongkhag.ID == dzongkhagID {
			out = append(out, g)
		}
	}
	return out
}

func (s *GewogStore) FetchAll(ctx context.Context) error {
	s.begin()
	defer s.finish()

	items, err := s.api.ListGewogs(ctx)
	if err != nil {
		s.fail(err.Error())
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	s.logger.Debug("gewogs fetched", zap.Int("count", len(items)))
	return nil
}

func (s *GewogStore) Create(ctx context.Context, payload model.GewogPayload) (*model.Gewog, error) {
	s.begin()
	defer s.finish()

	created, err := s.api.CreateGewog(ctx, payload)
	if err != nil {
		s.fail(err.Error())
		return nil, err
	}
	s.mu.Lock()
	s.items = append([]model.Gewog{*created}, s.items...)
	s.mu.Unlock()
	s.notifier.Success("Gewog created successfully!")
	return created, nil
}

func (s *GewogStore) Update(ctx context.Context, id string, payload model.GewogPayload) (*model.Gewog, error) {
	s.begin()
	defer s.finish()

	updated, err := s.api.UpdateGewog(ctx, id, payload)
	if err != nil {
		s.fail(err.Error())
		return nil, err
	}
	s.mu.Lock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i] = *updated
			break
		}
	}
	s.mu.Unlock()
	s.notifier.Success("Gewog updated successfully!")
	return updated, nil
}

func (s *GewogStore) Delete(ctx context.Context, id string) error {
	s.begin()
	defer s.finish()

	if err := s.api.DeleteGewog(ctx, id); err != nil {
		s.fail(err.Error())
		return err
	}
	s.mu.Lock()
	kept := s.items[:0]
	for _, g := range s.items {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	s.items = kept
	s.mu.Unlock()
	s.notifier.Success("Gewog deleted successfully!")
	return nil
}
