package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"drukwater-admin/internal/api"
	"drukwater-admin/internal/model"
)

// ConsumerStore owns the consumer collection. It is the only paginated
// store: fetches keep the backend's meta block alongside the items.
type ConsumerStore struct {
	mu       sync.RWMutex
	items    []model.Consumer
	meta     *model.Meta
	inflight int
	err      string

	api      *api.Client
	notifier Notifier
	logger   *zap.Logger
}

func NewConsumerStore(client *api.Client, notifier Notifier, logger *zap.Logger) *ConsumerStore {
	return &ConsumerStore{api: client, notifier: notifier, logger: logger}
}

func (s *ConsumerStore) begin() {
	s.mu.Lock()
	s.inflight++
	s.err = ""
	s.mu.Unlock()
}

func (s *ConsumerStore) finish() {
	s.mu.Lock()
	s.inflight--
	s.mu.Unlock()
}

func (s *ConsumerStore) fail(msg string) {
	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
	s.notifier.Error(msg)
}

func (s *ConsumerStore) Items() []model.Consumer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.Consumer, len(s.items))
	copy(out, s.items)
	return out
}

func (s *ConsumerStore) Lookup(id string) (*model.Consumer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID == id {
			c := s.items[i]
			return &c, true
		}
	}
	return nil, false
}

// Meta returns the pagination block from the last successful fetch, or nil.
func (s *ConsumerStore) Meta() *model.Meta {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.meta == nil {
		return nil
	}
	m := *s.meta
	return &m
}

func (s *ConsumerStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inflight > 0
}

func (s *ConsumerStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// FetchAll replaces items and meta wholesale on success; a failed fetch
// keeps the stale collection.
func (s *ConsumerStore) FetchAll(ctx context.Context, params model.ConsumerListParams) error {
	s.begin()
	defer s.finish()

	items, meta, err := s.api.ListConsumers(ctx, params)
	if err != nil {
		s.fail(err.Error())
		return err
	}
	s.mu.Lock()
	s.items = items
	s.meta = meta
	s.mu.Unlock()
	s.logger.Debug("consumers fetched", zap.Int("count", len(items)))
	return nil
}

func (s *ConsumerStore) Create(ctx context.Context, payload model.ConsumerPayload) (*model.Consumer, error) {
	s.begin()
	defer s.finish()

	created, err := s.api.CreateConsumer(ctx, payload)
	if err != nil {
		s.fail(err.Error())
		return nil, err
	}
	s.mu.Lock()
	s.items = append([]model.Consumer{*created}, s.items...)
	s.mu.Unlock()
	s.notifier.Success("Consumer created successfully!")
	return created, nil
}

func (s *ConsumerStore) Update(ctx context.Context, id string, payload model.ConsumerPayload) (*model.Consumer, error) {
	s.begin()
	defer s.finish()

	updated, err := s.api.UpdateConsumer(ctx, id, payload)
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
	s.notifier.Success("Consumer updated successfully!")
	return updated, nil
}

func (s *ConsumerStore) Delete(ctx context.Context, id string) error {
	s.begin()
	defer s.finish()

	if err := s.api.DeleteConsumer(ctx, id); err != nil {
		s.fail(err.Error())
		return err
	}
	s.mu.Lock()
	kept := s.items[:0]
	for _, c := range s.items {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.items = kept
	s.mu.Unlock()
	s.notifier.Success("Consumer deleted successfully!")
	return nil
}
