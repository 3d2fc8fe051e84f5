// Lista de pedidos imprimible generada con Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + fecha del snapshot │ horizonte objetivo    │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: ítems críticos / sin stock / cantidad total        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: SKU | Ítem | SOH | Req/día | Días | Pedido sugerido  │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: nota operativa                                      │
//	└─────────────────────────────────────────────────────────────┘
package export

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/sproutlife/inventory-insights/internal/application/dto"
)

var (
	colorPrimary = &props.Color{Red: 30, Green: 58, Blue: 95}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorAlert   = &props.Color{Red: 180, Green: 40, Blue: 40}
)

// MarotoOrderList implementa views.OrderListPDF usando Maroto v2.
type MarotoOrderList struct{}

// NewMarotoOrderList construye el generador.
func NewMarotoOrderList() *MarotoOrderList { return &MarotoOrderList{} }

// GenerateOrderList genera el PDF de la lista de pedidos y devuelve sus bytes.
func (g *MarotoOrderList) GenerateOrderList(_ context.Context, plan *dto.ReplenishmentPlanDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Lista de Pedidos de Reposición", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(plan))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(plan))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	for _, r := range tableRows(plan.Rows) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRow(plan))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y snapshot + horizonte (der).
func headerRow(plan *dto.ReplenishmentPlanDTO) core.Row {
	return row.New(16).Add(
		col.New(7).Add(
			text.New("LISTA DE PEDIDOS DE REPOSICIÓN", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Sproutlife Foods — Planificación de materiales", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Datos al: "+plan.Meta.LoadedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 8, Align: align.Right, Top: 2, Color: colorGray,
			}),
			text.New(fmt.Sprintf("Horizonte objetivo: %d días", plan.Summary.TargetDays), props.Text{
				Style: fontstyle.Bold, Size: 9, Align: align.Right, Top: 8,
			}),
		),
	)
}

// summaryRow: KPIs del plan en una línea.
func summaryRow(plan *dto.ReplenishmentPlanDTO) core.Row {
	return row.New(10).Add(
		col.New(12).Add(
			text.New(fmt.Sprintf(
				"Ítems bajo el umbral: %d   |   Sin stock: %d   |   Cantidad total sugerida: %s",
				plan.Summary.CriticalItems,
				plan.Summary.ZeroStockItems,
				plan.Summary.TotalSuggestedQty.String(),
			), props.Text{Size: 9, Top: 2}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("SKU", 2, align.Left),
		h("Ítem", 4, align.Left),
		h("SOH", 1, align.Right),
		h("Req/día", 1, align.Right),
		h("Días", 1, align.Right),
		h("Pedido sugerido", 3, align.Right),
	)
}

// tableRows: una fila por ítem; los días en rojo cuando no hay stock.
func tableRows(items []dto.ReplenishmentRowDTO) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		days := "—"
		if it.DaysOfStock != nil {
			days = it.DaysOfStock.String()
		}
		daysColor := colorGray
		if it.Tier == dto.TierZeroStock {
			daysColor = colorAlert
		}
		result = append(result, row.New(7).Add(
			col.New(2).Add(text.New(it.ItemCode, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(it.ItemName, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(1).Add(text.New(it.SOH.String(), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(it.PerDayReq.StringFixed(1), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(days, props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1, Color: daysColor})),
			col.New(3).Add(text.New(it.SuggestedQty.String()+" "+it.UoM, props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right, Top: 1, Right: 1,
			})),
		))
	}
	return result
}

func footerRow(plan *dto.ReplenishmentPlanDTO) core.Row {
	return row.New(8).Add(col.New(12).Add(
		text.New(fmt.Sprintf(
			"Cantidades sugeridas para cubrir %d días de demanda proyectada. "+
				"Verifique lotes en tránsito antes de emitir las órdenes.",
			plan.Summary.TargetDays,
		), props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	))
}
