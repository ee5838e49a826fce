// Package analytics contiene los casos de uso del tablero: serie de tendencia sintética
// y resumen de KPIs (stock total, demanda total, fill rate).
package analytics

import (
	"fmt"

	"github.com/jhoicas/inventory-dashboard-api/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard-api/internal/domain/inventory"
	"github.com/jhoicas/inventory-dashboard-api/internal/domain/repository"
)

// DashboardUseCase calcula las tarjetas de KPIs sobre el estado actual del almacén.
type DashboardUseCase struct {
	productRepo repository.ProductRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(productRepo repository.ProductRepository) *DashboardUseCase {
	return &DashboardUseCase{productRepo: productRepo}
}

// GetSummary totales y fill rate de los productos que cumplen el filtro.
func (uc *DashboardUseCase) GetSummary(filter inventory.ProductFilter) (*dto.DashboardSummaryDTO, error) {
	list, err := uc.productRepo.List(filter)
	if err != nil {
		return nil, fmt.Errorf("dashboard: productos: %w", err)
	}
	products := make([]entity.Product, 0, len(list))
	for _, p := range list {
		products = append(products, *p)
	}
	s := inventory.Summarize(products)
	return &dto.DashboardSummaryDTO{
		TotalStock:   s.TotalStock,
		TotalDemand:  s.TotalDemand,
		FillRate:     s.FillRate,
		ProductCount: len(products),
	}, nil
}
