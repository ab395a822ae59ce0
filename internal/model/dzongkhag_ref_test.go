package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"drukwater-admin/internal/model"
)

func TestDzongkhagRef_UnmarshalBareID(t *testing.T) {
	var g model.Gewog
	raw := `{"_id":"G1","name":"Kawang","nameInDzongkha":"ཀ་ཝང་","dzongkhag":"D1","area":null,"population":null}`
	require.NoError(t, json.Unmarshal([]byte(raw), &g))

	require.Equal(t, "D1", g.Dzongkhag.ID)
	require.False(t, g.Dzongkhag.IsEmbedded())
}

func TestDzongkhagRef_UnmarshalEmbedded(t *testing.T) {
	var g model.Gewog
	raw := `{"_id":"G1","name":"Kawang","dzongkhag":{"_id":"D1","name":"Thimphu","code":"THI","region":"Western","area":null,"population":null}}`
	require.NoError(t, json.Unmarshal([]byte(raw), &g))

	require.True(t, g.Dzongkhag.IsEmbedded())
	require.Equal(t, "D1", g.Dzongkhag.ID)
	require.Equal(t, "Thimphu", g.Dzongkhag.Embedded.Name)
	require.Equal(t, model.RegionWestern, g.Dzongkhag.Embedded.Region)
}

func TestDzongkhagRef_MarshalRoundTrip(t *testing.T) {
	bare := model.Ref("D1")
	b, err := json.Marshal(bare)
	require.NoError(t, err)
	require.JSONEq(t, `"D1"`, string(b))

	embedded := model.EmbeddedRef(model.Dzongkhag{ID: "D2", Name: "Paro", Code: "PAR", Region: model.RegionWestern})
	b, err = json.Marshal(embedded)
	require.NoError(t, err)

	var back model.DzongkhagRef
	require.NoError(t, json.Unmarshal(b, &back))
	require.True(t, back.IsEmbedded())
	require.Equal(t, "Paro", back.Embedded.Name)
}

func TestDzongkhagRef_DisplayName(t *testing.T) {
	known := map[string]model.Dzongkhag{
		"D1": {ID: "D1", Name: "Thimphu"},
	}
	lookup := func(id string) (*model.Dzongkhag, bool) {
		d, ok := known[id]
		if !ok {
			return nil, false
		}
		return &d, true
	}

	require.Equal(t, "Thimphu", model.Ref("D1").DisplayName(lookup))
	// Unresolvable id falls back to the sentinel, never panics.
	require.Equal(t, model.UnknownName, model.Ref("D-missing").DisplayName(lookup))
	require.Equal(t, model.UnknownName, model.Ref("").DisplayName(nil))

	embedded := model.EmbeddedRef(model.Dzongkhag{ID: "D9", Name: "Trashigang"})
	require.Equal(t, "Trashigang", embedded.DisplayName(nil))
}
