package dto

import "github.com/shopspring/decimal"

// KPIPointDTO punto diario de la serie de tendencia.
type KPIPointDTO struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Stock  int    `json:"stock"`
	Demand int    `json:"demand"`
}

// KPISeriesResponse respuesta de GET /api/kpis.
type KPISeriesResponse struct {
	Range  string        `json:"range"`
	Days   int           `json:"days"`
	Points []KPIPointDTO `json:"points"`
}

// DashboardSummaryDTO respuesta de GET /api/dashboard/summary.
// Mismos KPIs que las tarjetas del tablero, calculados sobre los productos filtrados.
type DashboardSummaryDTO struct {
	TotalStock   int             `json:"total_stock"`
	TotalDemand  int             `json:"total_demand"`
	FillRate     decimal.Decimal `json:"fill_rate"` // porcentaje con un decimal
	ProductCount int             `json:"product_count"`
}
