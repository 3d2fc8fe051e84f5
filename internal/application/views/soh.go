package views

import (
	"github.com/shopspring/decimal"

	"github.com/sproutlife/inventory-insights/internal/domain/entity"
)

// stockAggregate es el stock-on-hand total de un ítem más la metadata de la
// primera fila vista (nombre, categoría, UoM).
type stockAggregate struct {
	ItemCode string
	ItemName string
	Category string
	UoM      string
	OnHand   decimal.Decimal
}

// aggregateOnHand agrupa el inventario RM por clave de ítem y suma la cantidad
// disponible, contando solo las ubicaciones stock-on-hand (bodegas reales, sin
// líneas de producción ni tránsito). Un ítem sin filas en esas ubicaciones
// simplemente no aparece: "sin dato de SOH" se distingue de "SOH confirmado 0".
// La suma es conmutativa: el orden de las filas de entrada no altera el resultado.
func aggregateOnHand(rows []entity.InventoryRecord, sohLocations []string) map[string]*stockAggregate {
	set := locationSet(sohLocations)
	agg := make(map[string]*stockAggregate)
	for _, r := range rows {
		if r.ItemCode == "" || !inLocationSet(set, r.Location) {
			continue
		}
		a, ok := agg[r.ItemCode]
		if !ok {
			a = &stockAggregate{
				ItemCode: r.ItemCode,
				ItemName: r.ItemName,
				Category: r.Category,
				UoM:      r.UoM,
			}
			agg[r.ItemCode] = a
		}
		a.OnHand = a.OnHand.Add(r.QtyAvailable)
	}
	return agg
}
