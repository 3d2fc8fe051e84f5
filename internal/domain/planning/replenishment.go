package planning

import "github.com/shopspring/decimal"

// SuggestedOrderQty calcula la cantidad sugerida de pedido para llevar el stock
// al horizonte objetivo: max(0, reqDiario*targetDays - onHand), redondeada a
// unidad entera. Nunca negativa: stock por encima del objetivo sugiere 0, no
// un "des-pedido".
func SuggestedOrderQty(onHand, perDayReq decimal.Decimal, targetDays int) decimal.Decimal {
	qty := perDayReq.Mul(decimal.NewFromInt(int64(targetDays))).Sub(onHand)
	if qty.LessThan(decimal.Zero) {
		return decimal.Zero
	}
	return qty.Round(0)
}

// ClampTargetDays acota el horizonte objetivo pedido por el caller al rango
// permitido; cero o negativo cae al valor por defecto.
func ClampTargetDays(days, min, max, def int) int {
	if days <= 0 {
		return def
	}
	if days < min {
		return min
	}
	if days > max {
		return max
	}
	return days
}
