package planning

import "github.com/shopspring/decimal"

// PendingQty es lo ordenado aún no recibido. Puede ser negativa si se recibió
// de más; se reporta tal cual.
func PendingQty(ordered, received decimal.Decimal) decimal.Decimal {
	return ordered.Sub(received)
}

// FulfillmentPercent devuelve received/ordered*100 redondeado a 1 decimal.
// Con ordered == 0 (o negativo) se define como 0, nunca divide por cero.
func FulfillmentPercent(received, ordered decimal.Decimal) decimal.Decimal {
	if ordered.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return received.Div(ordered).Mul(decimal.NewFromInt(100)).Round(1)
}
