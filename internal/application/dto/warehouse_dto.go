package dto

import "github.com/jhoicas/inventory-dashboard-api/internal/domain/entity"

// WarehouseResponse salida de una bodega.
type WarehouseResponse struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// WarehouseListResponse listado de bodegas.
type WarehouseListResponse struct {
	Items []WarehouseResponse `json:"items"`
	Total int                 `json:"total"`
}

// NewWarehouseResponse mapea la entidad al DTO de salida.
func NewWarehouseResponse(w *entity.Warehouse) *WarehouseResponse {
	if w == nil {
		return nil
	}
	return &WarehouseResponse{
		Code:    w.Code,
		Name:    w.Name,
		City:    w.City,
		Country: w.Country,
	}
}
