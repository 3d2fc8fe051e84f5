package entity

import "github.com/shopspring/decimal"

// ForecastRecord es la demanda proyectada de un ítem para el ciclo de
// planificación en la ubicación de planificación ("plant"). El loader solo
// retiene filas con Forecast > 0 de esa ubicación, deduplicadas por ItemCode
// (gana la primera aparición).
type ForecastRecord struct {
	ItemCode    string // normalizado (trim + upper)
	ProductName string // opcional
	Forecast    decimal.Decimal
	PerDayReq   decimal.Decimal // columna opcional de la hoja; el valor derivado se calcula aparte
	Norm        decimal.Decimal // norma de stock, opcional
}
