package store_test

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"drukwater-admin/internal/model"
	"drukwater-admin/internal/store"
)

func consumer(id, household string) model.Consumer {
	return model.Consumer{
		ID:          id,
		HouseholdID: household,
		HouseholdHead: model.HouseholdHead{
			ID: "U1", Name: "Tshering Dorji", Phone: "97512345", CID: "11234567890",
		},
		Address: model.Address{
			Gewog:       model.GewogSummary{ID: "G1", Name: "Kawang", NameInDzongkha: "ཀ་ཝང་"},
			Village:     "Changzamtog",
			HouseNumber: "12-A",
		},
		FamilySize:     4,
		ConnectionType: model.ConnectionIndividual,
		MeterNumber:    "MTR-" + id,
		ConnectionDate: "2020-02-20T00:00:00.000Z",
		Status:         model.StatusActive,
		TariffCategory: model.TariffDomestic,
	}
}

func newConsumerStore(t *testing.T, handler http.Handler) (*store.ConsumerStore, *recordingNotifier) {
	t.Helper()
	notifier := &recordingNotifier{}
	return store.NewConsumerStore(newTestClient(t, handler), notifier, zap.NewNop()), notifier
}

func TestConsumerStore_FetchAllStoresMeta(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /consumer", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"data": []model.Consumer{consumer("C1", "HH-001"), consumer("C2", "HH-002")},
			"meta": model.Meta{Total: 42, Page: 2, Limit: 2, TotalPages: 21},
		})
	})
	s, _ := newConsumerStore(t, mux)

	require.NoError(t, s.FetchAll(context.Background(), model.ConsumerListParams{Page: 2, Limit: 2}))
	require.Len(t, s.Items(), 2)

	meta := s.Meta()
	require.NotNil(t, meta)
	assert.Equal(t, 42, meta.Total)
	assert.Equal(t, 21, meta.TotalPages)
}

func TestConsumerStore_CreateFailureSurfacesBothChannels(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /consumer", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"data": []model.Consumer{consumer("C1", "HH-001")}})
	})
	mux.HandleFunc("POST /consumer", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]any{"message": "Meter number already in use"})
	})
	s, notifier := newConsumerStore(t, mux)
	require.NoError(t, s.FetchAll(context.Background(), model.ConsumerListParams{}))

	_, err := s.Create(context.Background(), model.ConsumerPayload{})
	require.Error(t, err)

	assert.Equal(t, "Meter number already in use", s.Err())
	assert.Contains(t, notifier.Errors(), "Meter number already in use")
	assert.Len(t, s.Items(), 1, "collection unchanged on failure")
	assert.False(t, s.Loading())
}

func TestConsumerStore_UpdateIdentityPreserving(t *testing.T) {
	updated := consumer("C2", "HH-002-v2")
	mux := http.NewServeMux()
	mux.HandleFunc("GET /consumer", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"data": []model.Consumer{
			consumer("C1", "HH-001"), consumer("C2", "HH-002"), consumer("C3", "HH-003"),
		}})
	})
	mux.HandleFunc("PATCH /consumer/{id}", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"data": updated})
	})
	s, _ := newConsumerStore(t, mux)
	require.NoError(t, s.FetchAll(context.Background(), model.ConsumerListParams{}))
	before := s.Items()

	_, err := s.Update(context.Background(), "C2", model.ConsumerPayload{})
	require.NoError(t, err)

	items := s.Items()
	require.Len(t, items, 3)
	assert.Equal(t, before[0], items[0])
	assert.Equal(t, before[2], items[2])
	assert.Equal(t, updated, items[1])
}

// Two overlapping fetches: A issued first but slow, B issued second and
// fast. B's response lands first, A's second; the collection ends up with
// A's payload. Last-resolved-wins is the accepted behavior.
func TestConsumerStore_LastResolvedFetchWins(t *testing.T) {
	releaseA := make(chan struct{})
	var once sync.Once
	aArrived := make(chan struct{})

	mux := http.NewServeMux()
	mux.HandleFunc("GET /consumer", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") == "1" { // request A
			once.Do(func() { close(aArrived) })
			<-releaseA
			writeJSON(w, http.StatusOK, map[string]any{"data": []model.Consumer{consumer("A1", "HH-A")}})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": []model.Consumer{consumer("B1", "HH-B")}})
	})
	s, _ := newConsumerStore(t, mux)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = s.FetchAll(context.Background(), model.ConsumerListParams{Page: 1})
	}()
	<-aArrived // A is in flight before B is issued

	require.NoError(t, s.FetchAll(context.Background(), model.ConsumerListParams{Page: 2}))
	require.Equal(t, "B1", s.Items()[0].ID, "B applied while A still pending")

	close(releaseA)
	wg.Wait()

	items := s.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "A1", items[0].ID, "slower earlier request overwrote the faster later one")
}

func TestConsumerForm_RoundTrip(t *testing.T) {
	c := consumer("C1", "HH-001")

	form := store.FormFromConsumer(c)
	assert.Equal(t, "U1", form.HouseholdHead)
	assert.Equal(t, "Tshering Dorji", form.HouseholdHeadName)
	assert.Equal(t, "11234567890", form.HouseholdHeadCID)
	assert.Equal(t, "97512345", form.HouseholdHeadPhone)
	assert.Empty(t, form.AddressDzongkhag, "blank without a two-level embed")

	payload := form.Payload()
	assert.Equal(t, c.HouseholdID, payload.HouseholdID)
	assert.Equal(t, c.HouseholdHead.ID, payload.HouseholdHead)
	assert.Equal(t, c.Address.Gewog.ID, payload.Address.Gewog)
	assert.Equal(t, c.Address.Village, payload.Address.Village)
	assert.Equal(t, c.Address.HouseNumber, payload.Address.HouseNumber)
	assert.Equal(t, c.FamilySize, payload.FamilySize)
	assert.Equal(t, c.ConnectionType, payload.ConnectionType)
	assert.Equal(t, c.MeterNumber, payload.MeterNumber)
	assert.Equal(t, c.Status, payload.Status)
	assert.Equal(t, c.TariffCategory, payload.TariffCategory)
	assert.Equal(t, "2020-02-20", payload.ConnectionDate, "timestamp coerced to wire date")
}

func TestConsumerForm_DerivesDzongkhagFromDeepEmbed(t *testing.T) {
	c := consumer("C1", "HH-001")
	ref := model.EmbeddedRef(model.Dzongkhag{ID: "D1", Name: "Thimphu"})
	c.Address.Gewog.Dzongkhag = &ref

	form := store.FormFromConsumer(c)
	assert.Equal(t, "D1", form.AddressDzongkhag)
}
