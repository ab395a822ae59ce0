package store

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"drukwater-admin/internal/api"
	"drukwater-admin/internal/model"
	"drukwater-admin/internal/token"
)

// Session is the identity store. Two states: Anonymous (no token, no user)
// and Authenticated (token held, user present or being refreshed). The token
// is the only durable piece; the profile is refetched on every boot so stale
// role data is never served.
type Session struct {
	mu            sync.RWMutex
	user          *model.User
	authenticated bool
	inflight      int
	err           string

	api      *api.Client
	tokens   *token.Holder
	notifier Notifier
	logger   *zap.Logger
}

func NewSession(client *api.Client, tokens *token.Holder, notifier Notifier, logger *zap.Logger) *Session {
	return &Session{api: client, tokens: tokens, notifier: notifier, logger: logger}
}

func (s *Session) begin() {
	s.mu.Lock()
	s.inflight++
	s.err = ""
	s.mu.Unlock()
}

func (s *Session) finish() {
	s.mu.Lock()
	s.inflight--
	s.mu.Unlock()
}

func (s *Session) fail(msg string) {
	s.mu.Lock()
	s.err = msg
	s.mu.Unlock()
	s.notifier.Error(msg)
}

// User returns the authenticated profile, or nil when anonymous or while a
// refresh has not succeeded yet.
func (s *Session) User() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *Session) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.authenticated
}

// Token exposes the raw session token (for boot checks).
func (s *Session) Token() string { return s.tokens.Token() }

func (s *Session) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.inflight > 0
}

func (s *Session) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// IsSuperAdmin is recomputed from the current user at every call, never
// cached.
func (s *Session) IsSuperAdmin() bool {
	u := s.User()
	return u != nil && u.Role == model.RoleSuperAdmin
}

// Login exchanges credentials for a token, persists it, and immediately
// refreshes the profile. If that refresh fails the session ends up with no
// user and authenticated=false even though a token is still held; callers
// must not rely on that window.
func (s *Session) Login(ctx context.Context, identifier, password string) error {
	s.begin()
	defer s.finish()

	res, err := s.api.Login(ctx, model.LoginPayload{Identifier: identifier, Password: password})
	if err != nil {
		s.fail(err.Error())
		return err
	}
	if err := s.tokens.Set(res.Token); err != nil {
		s.logger.Warn("token persistence failed", zap.Error(err))
	}
	s.mu.Lock()
	s.authenticated = true
	s.mu.Unlock()

	return s.FetchCurrentUser(ctx)
}

// FetchCurrentUser refreshes the profile for the held token. Failure clears
// the user and the authenticated flag but keeps the token; only an explicit
// Logout drops it.
func (s *Session) FetchCurrentUser(ctx context.Context) error {
	u, err := s.api.CurrentUser(ctx)
	if err != nil {
		s.mu.Lock()
		s.user = nil
		s.authenticated = false
		s.err = err.Error()
		s.mu.Unlock()
		s.notifier.Error(err.Error())
		return err
	}
	s.mu.Lock()
	s.user = u
	s.authenticated = true
	s.mu.Unlock()
	return nil
}

// Logout clears user, token and flag synchronously. No network call.
func (s *Session) Logout() {
	s.mu.Lock()
	s.user = nil
	s.authenticated = false
	s.mu.Unlock()
	if err := s.tokens.Clear(); err != nil {
		s.logger.Warn("token clear failed", zap.Error(err))
	}
}
