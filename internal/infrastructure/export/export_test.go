package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/sproutlife/inventory-insights/internal/application/dto"
)

func TestXLSXExporter_EscribeYRelee(t *testing.T) {
	e := NewXLSXExporter()

	data, err := e.WriteXLSX("Replenishment",
		[]string{"Item SKU", "SOH", "Suggested Order Qty"},
		[][]interface{}{
			{"X100", 50.0, 60.0},
			{"Y200", 0.0, 30.0},
		})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, "Replenishment", f.GetSheetName(0))

	rows, err := f.GetRows("Replenishment")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Item SKU", "SOH", "Suggested Order Qty"}, rows[0])
	assert.Equal(t, "X100", rows[1][0])
	assert.Equal(t, "60", rows[1][2])
}

func TestXLSXExporter_SinFilas(t *testing.T) {
	e := NewXLSXExporter()

	data, err := e.WriteXLSX("GRN", []string{"GRN Number"}, nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("GRN")
	require.NoError(t, err)
	require.Len(t, rows, 1, "solo la fila de encabezados")
}

func TestMarotoOrderList_GeneraPDF(t *testing.T) {
	dos := decimal.NewFromInt(3)
	plan := &dto.ReplenishmentPlanDTO{
		Meta: dto.ViewMeta{
			SnapshotID: "snap-test",
			LoadedAt:   time.Date(2025, 11, 3, 8, 0, 0, 0, time.UTC),
			RowCount:   1,
		},
		Summary: dto.ReplenishmentSummaryDTO{
			CriticalItems:     1,
			TotalSuggestedQty: decimal.NewFromInt(54),
			TargetDays:        30,
		},
		Rows: []dto.ReplenishmentRowDTO{{
			ItemCode:     "X100",
			ItemName:     "Avena Base",
			UoM:          "KG",
			SOH:          decimal.NewFromInt(6),
			Forecast:     decimal.NewFromInt(52),
			PerDayReq:    decimal.NewFromInt(2),
			DaysOfStock:  &dos,
			SuggestedQty: decimal.NewFromInt(54),
			Tier:         dto.TierSevere,
		}},
	}

	g := NewMarotoOrderList()
	data, err := g.GenerateOrderList(context.Background(), plan)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]), "el documento debe ser un PDF válido")
}
