package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"drukwater-admin/internal/api"
	"drukwater-admin/internal/model"
	"drukwater-admin/internal/token"
)

func newClient(t *testing.T, tokens api.TokenProvider, handler http.Handler) *api.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return api.New(srv.URL, 5*time.Second, tokens, zap.NewNop())
}

func TestClient_AttachesBearerTokenWhenPresent(t *testing.T) {
	holder := token.NewHolder(nil)
	require.NoError(t, holder.Set("tok-1"))

	var gotAuth, gotRequestID string
	client := newClient(t, holder, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotRequestID = r.Header.Get("X-Request-ID")
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}))

	_, err := client.ListDzongkhags(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-1", gotAuth)
	assert.NotEmpty(t, gotRequestID)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	client := newClient(t, token.NewHolder(nil), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}))

	_, err := client.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_PrefersBackendMessage(t *testing.T) {
	client := newClient(t, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]any{"message": "Meter number already in use"})
	}))

	_, err := client.CreateConsumer(context.Background(), model.ConsumerPayload{})
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "Meter number already in use", apiErr.Message)
}

func TestClient_FallbackMessageWhenBackendSilent(t *testing.T) {
	client := newClient(t, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, _, err := client.ListConsumers(context.Background(), model.ConsumerListParams{})
	require.Error(t, err)
	assert.EqualError(t, err, "Fetching consumers failed")
}

func TestClient_TransportFailureUsesFallback(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // refuse connections

	client := api.New(srv.URL, time.Second, nil, zap.NewNop())
	_, err := client.ListGewogs(context.Background())
	require.Error(t, err)
	assert.EqualError(t, err, "Fetching gewogs failed")
}

func TestClient_ConsumerQueryParams(t *testing.T) {
	var got map[string]string
	client := newClient(t, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = map[string]string{
			"page":   r.URL.Query().Get("page"),
			"status": r.URL.Query().Get("status"),
			"gewog":  r.URL.Query().Get("gewog"),
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data": []any{},
			"meta": map[string]int{"total": 0, "page": 1, "limit": 10, "totalPages": 0},
		})
	}))

	_, meta, err := client.ListConsumers(context.Background(), model.ConsumerListParams{
		Page:   1,
		Status: model.StatusSuspended,
		Gewog:  "G7",
	})
	require.NoError(t, err)
	require.NotNil(t, meta)
	assert.Equal(t, "1", got["page"])
	assert.Equal(t, "Suspended", got["status"])
	assert.Equal(t, "G7", got["gewog"])
}
