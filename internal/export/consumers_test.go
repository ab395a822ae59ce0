package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"drukwater-admin/internal/export"
	"drukwater-admin/internal/model"
)

func TestConsumersWorkbook(t *testing.T) {
	consumers := []model.Consumer{
		{
			ID:          "C1",
			HouseholdID: "HH-001",
			HouseholdHead: model.HouseholdHead{
				Name: "Tshering Dorji", CID: "11234567890", Phone: "97512345",
			},
			Address: model.Address{
				Gewog:       model.GewogSummary{ID: "G1", Name: "Kawang"},
				Village:     "Changzamtog",
				HouseNumber: "12-A",
			},
			FamilySize:     4,
			ConnectionType: model.ConnectionIndividual,
			MeterNumber:    "MTR-001",
			ConnectionDate: "2020-02-20",
			Status:         model.StatusActive,
			TariffCategory: model.TariffDomestic,
		},
		{
			ID:          "C2",
			HouseholdID: "HH-002",
			Address: model.Address{
				Gewog: model.GewogSummary{ID: "G-orphan", Name: "Lingzhi"},
			},
		},
	}
	names := map[string]string{"G1": "Thimphu"}
	resolve := func(c model.Consumer) string {
		if n, ok := names[c.Address.Gewog.ID]; ok {
			return n
		}
		return model.UnknownName
	}

	data, err := export.ConsumersWorkbook(consumers, resolve)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Consumers"}, f.GetSheetList(), "default sheet replaced")

	rows, err := f.GetRows("Consumers")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, export.ConsumersHeader, rows[0])

	first := rows[1]
	assert.Equal(t, "HH-001", first[0])
	assert.Equal(t, "Tshering Dorji", first[1])
	assert.Equal(t, "Thimphu", first[4], "parent resolved through the callback")
	assert.Equal(t, "Kawang", first[5])
	assert.Equal(t, "4", first[8])
	assert.Equal(t, "2020-02-20", first[11])

	assert.Equal(t, model.UnknownName, rows[2][4], "unresolved parent degrades to sentinel")
}

func TestConsumersWorkbook_NilResolver(t *testing.T) {
	data, err := export.ConsumersWorkbook([]model.Consumer{{HouseholdID: "HH-001"}}, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Consumers")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, model.UnknownName, rows[1][4])
}
