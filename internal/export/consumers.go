// Package export renders collections as spreadsheet workbooks.
package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"drukwater-admin/internal/model"
)

// ConsumersHeader is the column set of the consumer register export.
var ConsumersHeader = []string{
	"Household ID",
	"Head Name",
	"Head CID",
	"Head Phone",
	"Dzongkhag",
	"Gewog",
	"Village",
	"House Number",
	"Family Size",
	"Connection Type",
	"Meter Number",
	"Connection Date",
	"Status",
	"Tariff Category",
}

// ConsumersWorkbook builds an xlsx of the consumer register. dzongkhagName
// resolves each row's parent region for display (sentinel for unresolved).
func ConsumersWorkbook(consumers []model.Consumer, dzongkhagName func(c model.Consumer) string) ([]byte, error) {
	f := excelize.NewFile()
	// WriteToBuffer needs the file open, so no deferred Close on success.

	sheetName := "Consumers"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")
	f.SetActiveSheet(index)

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#E6F3FF"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	for col, title := range ConsumersHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, title); err != nil {
			f.Close()
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			f.Close()
			return nil, err
		}
	}

	for row, c := range consumers {
		dzName := model.UnknownName
		if dzongkhagName != nil {
			dzName = dzongkhagName(c)
		}
		values := []any{
			c.HouseholdID,
			c.HouseholdHead.Name,
			c.HouseholdHead.CID,
			c.HouseholdHead.Phone,
			dzName,
			c.Address.Gewog.Name,
			c.Address.Village,
			c.Address.HouseNumber,
			c.FamilySize,
			string(c.ConnectionType),
			c.MeterNumber,
			c.ConnectionDate,
			string(c.Status),
			string(c.TariffCategory),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				f.Close()
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				f.Close()
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "N", 18); err != nil {
		f.Close()
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to serialize workbook: %w", err)
	}
	f.Close()
	return buf.Bytes(), nil
}
