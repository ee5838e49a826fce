package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventory-dashboard-api/internal/domain/entity"
)

var hundred = decimal.NewFromInt(100)

// Summary totales del tablero: stock, demanda y fill rate (%).
type Summary struct {
	TotalStock  int
	TotalDemand int
	FillRate    decimal.Decimal
}

// Summarize calcula los KPIs del tablero sobre la lista de productos.
// FillRate = Σ min(stock, demand) / Σ demand × 100, redondeado a un decimal; 0 si no hay demanda.
func Summarize(products []entity.Product) Summary {
	var s Summary
	served := 0
	for _, p := range products {
		s.TotalStock += p.Stock
		s.TotalDemand += p.Demand
		served += min(p.Stock, p.Demand)
	}
	s.FillRate = FillRate(served, s.TotalDemand)
	return s
}

// FillRate porcentaje de demanda cubierta con un decimal.
func FillRate(served, demand int) decimal.Decimal {
	if demand <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(int64(served)).
		Div(decimal.NewFromInt(int64(demand))).
		Mul(hundred).
		Round(1)
}
