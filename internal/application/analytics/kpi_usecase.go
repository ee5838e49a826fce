package analytics

import (
	"github.com/jhoicas/inventory-dashboard-api/internal/application/dto"
	"github.com/jhoicas/inventory-dashboard-api/internal/domain/entity"
)

// SeriesGenerator contrato del generador de series; permite sustituirlo en tests.
type SeriesGenerator interface {
	Generate(r string) []entity.KPIPoint
}

// KPIUseCase expone la serie de tendencia.
type KPIUseCase struct {
	gen SeriesGenerator
}

// NewKPIUseCase construye el caso de uso.
func NewKPIUseCase(gen SeriesGenerator) *KPIUseCase {
	return &KPIUseCase{gen: gen}
}

// GetSeries genera la serie del rango solicitado.
func (uc *KPIUseCase) GetSeries(r string) *dto.KPISeriesResponse {
	points := uc.gen.Generate(r)
	out := make([]dto.KPIPointDTO, 0, len(points))
	for _, p := range points {
		out = append(out, dto.KPIPointDTO{Date: p.DateLabel(), Stock: p.Stock, Demand: p.Demand})
	}
	return &dto.KPISeriesResponse{Range: r, Days: len(out), Points: out}
}
