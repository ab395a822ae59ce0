// Package store holds the per-entity state containers. Each store
// exclusively owns its in-memory collection, a loading indicator and an
// error slot, and reconciles the collection from API responses. Stores are
// constructed explicitly (no package-level singletons) so tests can run
// isolated instances.
//
// Concurrency discipline: no request de-duplication, cancellation or
// sequencing. Overlapping fetches apply whichever response resolves last.
// Loading is an in-flight counter, so Loading() means "at least one
// operation in flight", not that any particular call settled.
package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"drukwater-admin/internal/api"
	"drukwater-admin/internal/model"
)

// DzongkhagStore owns the dzongkhag collection.
type DzongkhagStore struct {
	mu       sync.RWMutex
	items    []model.Dzongkhag
	inflight int
	err      string

	api      *api.Client
	notifier Notifier
	logger   *zap.Logger
}

func NewDzongkhagStore(client *api.Client, notifier Notifier, logger *zap.Logger) *DzongkhagStore {
	return &DzongkhagStore{api: client, notifier: notifier, logger: logger}
}

func (s *DzongkhagStore) begin() {
	s.mu.Lock()
	s.inflight++
	s.err = ""
	s.mu.Unlock()
}

func (s *DzongkhagStore) finish() {
	s.mu.Lock()
	s.inflight--
	s.mu.Unlock()
}

func (s *DzongkhagStore) fail(msg string) {
	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
	s.notifier.Error(msg)
}

// Items returns a snapshot of the collection.
func (s *DzongkhagStore) Items() []model.Dzongkhag {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Dzongkhag, len(s.items))
	copy(out, s.items)
	return out
}

// Lookup finds a dzongkhag by id in the current collection.
func (s *DzongkhagStore) Lookup(id string) (*model.Dzongkhag, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID == id {
			d := s.items[i]
			return &d, true
		}
	}
	return nil, false
}

func (s *DzongkhagStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inflight > 0
}

func (s *DzongkhagStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// FetchAll replaces the collection wholesale on success. On failure the
// stale collection is kept.
func (s *DzongkhagStore) FetchAll(ctx context.Context) error {
	s.begin()
	defer s.finish()

	items, err := s.api.ListDzongkhags(ctx)
	if err != nil {
		s.fail(err.Error())
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	s.logger.Debug("dzongkhags fetched", zap.Int("count", len(items)))
	return nil
}

// Create prepends the created entity on success.
func (s *DzongkhagStore) Create(ctx context.Context, payload model.DzongkhagPayload) (*model.Dzongkhag, error) {
	s.begin()
	defer s.finish()

	created, err := s.api.CreateDzongkhag(ctx, payload)
	if err != nil {
		s.fail(err.Error())
		return nil, err
	}
	s.mu.Lock()
	s.items = append([]model.Dzongkhag{*created}, s.items...)
	s.mu.Unlock()
	s.notifier.Success("Dzongkhag created successfully!")
	return created, nil
}

// Update replaces the matching item in place. A response for an id that is
// not in the collection is dropped; updates never insert.
func (s *DzongkhagStore) Update(ctx context.Context, id string, payload model.DzongkhagPayload) (*model.Dzongkhag, error) {
	s.begin()
	defer s.finish()

	updated, err := s.api.UpdateDzongkhag(ctx, id, payload)
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
	s.notifier.Success("Dzongkhag updated successfully!")
	return updated, nil
}

// Delete removes the matching item by id.
func (s *DzongkhagStore) Delete(ctx context.Context, id string) error {
	s.begin()
	defer s.finish()

	if err := s.api.DeleteDzongkhag(ctx, id); err != nil {
		s.fail(err.Error())
		return err
	}
	s.mu.Lock()
	kept := s.items[:0]
	for _, d := range s.items {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	s.items = kept
	s.mu.Unlock()
	s.notifier.Success("Dzongkhag deleted successfully!")
	return nil
}
