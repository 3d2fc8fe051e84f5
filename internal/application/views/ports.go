package views

import (
	"context"

	"github.com/sproutlife/inventory-insights/internal/application/dto"
	"github.com/sproutlife/inventory-insights/internal/domain/entity"
	"github.com/sproutlife/inventory-insights/internal/domain/planning"
)

// SnapshotProvider entrega el snapshot vigente del libro de datos. La
// implementación (infrastructure/workbook) cachea por identidad de archivo;
// Refresh invalida y recarga de forma explícita.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) (*entity.Snapshot, error)
	Refresh(ctx context.Context) (*entity.Snapshot, error)
}

// TabularExporter serializa una tabla derivada a un archivo tipo hoja de
// cálculo, preservando columnas y orden tal como se muestran.
type TabularExporter interface {
	WriteXLSX(sheetName string, headers []string, rows [][]interface{}) ([]byte, error)
}

// OrderListPDF genera el PDF imprimible de la lista de pedidos sugeridos.
type OrderListPDF interface {
	GenerateOrderList(ctx context.Context, plan *dto.ReplenishmentPlanDTO) ([]byte, error)
}

// Params constantes de planificación inyectadas a las vistas (vienen de
// config, nunca literales en los usecases).
type Params struct {
	CyclesPerYear     int64
	Thresholds        planning.Thresholds
	SOHLocations      []string
	TargetDaysMin     int
	TargetDaysMax     int
	TargetDaysDefault int
}
