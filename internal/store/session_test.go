package store_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"drukwater-admin/internal/api"
	"drukwater-admin/internal/model"
	"drukwater-admin/internal/store"
	"drukwater-admin/internal/token"
)

// newSessionFixture builds a session over a fake auth backend with a real
// file-backed token holder, so persistence can be asserted.
func newSessionFixture(t *testing.T, handler http.Handler) (*store.Session, *token.Holder, string) {
	t.Helper()
	dir := t.TempDir()
	holder := token.NewHolder(token.NewFileStore(dir))

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	client := api.New(srv.URL, 5*time.Second, holder, zap.NewNop())

	return store.NewSession(client, holder, &recordingNotifier{}, zap.NewNop()), holder, dir
}

func authBackend(t *testing.T) http.Handler {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"message": "ok", "token": "tok-session-1"})
	})
	mux.HandleFunc("GET /users/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok-session-1" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "invalid token"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": model.User{
			ID: "U1", Name: "Tshering", CID: "11234567890", Phone: "97512345", Role: model.RoleSuperAdmin,
		}})
	})
	return mux
}

func TestSession_LoginFetchLogoutWalk(t *testing.T) {
	s, holder, dir := newSessionFixture(t, authBackend(t))

	require.NoError(t, s.Login(context.Background(), "97512345", "Test@123"))
	assert.True(t, s.Authenticated())
	require.NotNil(t, s.User())
	assert.Equal(t, "Tshering", s.User().Name)
	assert.True(t, s.IsSuperAdmin())
	assert.Equal(t, "tok-session-1", holder.Token())

	// The token, and only the token, survives a restart.
	restarted := token.NewHolder(token.NewFileStore(dir))
	assert.Equal(t, "tok-session-1", restarted.Token())

	s.Logout()
	assert.False(t, s.Authenticated())
	assert.Nil(t, s.User())
	assert.Empty(t, holder.Token())
	assert.Empty(t, token.NewHolder(token.NewFileStore(dir)).Token())
}

func TestSession_LoginFailureStaysAnonymous(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"message": "Invalid credentials"})
	})
	s, holder, _ := newSessionFixture(t, mux)

	err := s.Login(context.Background(), "97512345", "wrong")
	require.Error(t, err)
	assert.EqualError(t, err, "Invalid credentials")
	assert.False(t, s.Authenticated())
	assert.Nil(t, s.User())
	assert.Empty(t, holder.Token())
	assert.Equal(t, "Invalid credentials", s.Err())
}

func TestSession_ProfileRefreshFailureKeepsToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /users/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"token": "tok-session-1"})
	})
	mux.HandleFunc("GET /users/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusServiceUnavailable, map[string]any{"message": "profile service down"})
	})
	s, holder, _ := newSessionFixture(t, mux)

	err := s.Login(context.Background(), "97512345", "Test@123")
	require.Error(t, err)

	// Accepted inconsistency window: no user, not authenticated, yet the
	// token is still held until an explicit logout.
	assert.False(t, s.Authenticated())
	assert.Nil(t, s.User())
	assert.Equal(t, "tok-session-1", holder.Token())
	assert.False(t, s.IsSuperAdmin())
}

func TestSession_IsSuperAdminRecomputed(t *testing.T) {
	role := model.RoleViewer
	mux := http.NewServeMux()
	mux.HandleFunc("GET /users/me", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"data": model.User{ID: "U1", Name: "Tshering", CID: "11234567890", Role: role}})
	})
	s, holder, _ := newSessionFixture(t, mux)
	require.NoError(t, holder.Set("tok-any"))

	require.NoError(t, s.FetchCurrentUser(context.Background()))
	assert.False(t, s.IsSuperAdmin())

	role = model.RoleSuperAdmin
	require.NoError(t, s.FetchCurrentUser(context.Background()))
	assert.True(t, s.IsSuperAdmin())
}
