package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"drukwater-admin/internal/api"
	"drukwater-admin/internal/model"
)

// UserStore owns the user collection. Session concerns (token, current
// profile) live in Session, not here.
type UserStore struct {
	mu       sync.RWMutex
	items    []model.User
	inflight int
	err      string

	api      *api.Client
	notifier Notifier
	logger   *zap.Logger
}

func NewUserStore(client *api.Client, notifier Notifier, logger *zap.Logger) *UserStore {
	return &UserStore{api: client, notifier: notifier, logger: logger}
}

func (s *UserStore) begin() {
	s.mu.Lock()
	s.inflight++
	s.err = ""
	s.mu.Unlock()
}

func (s *UserStore) finish() {
	s.mu.Lock()
	s.inflight--
	s.mu.Unlock()
}

func (s *UserStore) fail(msg string) {
	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
	s.notifier.Error(msg)
}

func (s *UserStore) Items() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, len(s.items))
	copy(out, s.items)
	return out
}

func (s *UserStore) Lookup(id string) (*model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].ID == id {
			u := s.items[i]
			return &u, true
		}
	}
	return nil, false
}

func (s *UserStore) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inflight > 0
}

func (s *UserStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// FindByIdentifier scans the collection for a household head: first exact
// match on CID, else first exact match on phone. A linear scan is fine at
// the expected data scale.
func (s *UserStore) FindByIdentifier(term string) (*model.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.items {
		if s.items[i].CID == term {
			u := s.items[i]
			return &u, true
		}
	}
	for i := range s.items {
		if s.items[i].Phone == term {
			u := s.items[i]
			return &u, true
		}
	}
	return nil, false
}

func (s *UserStore) FetchAll(ctx context.Context) error {
	s.begin()
	defer s.finish()

	items, err := s.api.ListUsers(ctx)
	if err != nil {
		s.fail(err.Error())
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	s.logger.Debug("users fetched", zap.Int("count", len(items)))
	return nil
}

// AddUser registers a new account and then refreshes the collection so it
// reflects server-side defaults.
func (s *UserStore) AddUser(ctx context.Context, payload model.AddUserPayload) (*model.User, error) {
	s.begin()
	defer s.finish()

	created, err := s.api.RegisterUser(ctx, payload)
	if err != nil {
		s.fail(err.Error())
		return nil, err
	}
	s.mu.Lock()
	s.items = append([]model.User{*created}, s.items...)
	s.mu.Unlock()
	s.notifier.Success("User Added Successfully.")

	if err := s.refresh(ctx); err != nil {
		s.logger.Warn("user list refresh after add failed", zap.Error(err))
	}
	return created, nil
}

// refresh refetches the list without touching the error slot or notifying;
// the add already succeeded.
func (s *UserStore) refresh(ctx context.Context) error {
	items, err := s.api.ListUsers(ctx)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

func (s *UserStore) Update(ctx context.Context, id string, payload model.UpdateUserPayload) (*model.User, error) {
	s.begin()
	defer s.finish()

	updated, err := s.api.UpdateUser(ctx, id, payload)
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
	s.notifier.Success("User updated successfully!")
	return updated, nil
}

func (s *UserStore) Delete(ctx context.Context, id string) error {
	s.begin()
	defer s.finish()

	if err := s.api.DeleteUser(ctx, id); err != nil {
		s.fail(err.Error())
		return err
	}
	s.mu.Lock()
	kept := s.items[:0]
	for _, u := range s.items {
		if u.ID != id {
			kept = append(kept, u)
		}
	}
	s.items = kept
	s.mu.Unlock()
	s.notifier.Success("Account deleted successfully!")
	return nil
}
