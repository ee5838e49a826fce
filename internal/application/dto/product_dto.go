package dto

import "github.com/jhoicas/inventory-dashboard-api/internal/domain/entity"

// ProductFilterRequest parámetros de filtrado del listado de productos (query string o argumentos GraphQL).
type ProductFilterRequest struct {
	Search    string `query:"search" json:"search"`
	Status    string `query:"status" json:"status"`
	Warehouse string `query:"warehouse" json:"warehouse"`
}

// UpdateDemandRequest entrada para reemplazar la demanda de un producto.
type UpdateDemandRequest struct {
	Demand *int `json:"demand"`
}

// TransferStockRequest entrada para transferir stock desde la bodega origen.
type TransferStockRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
	Qty  *int   `json:"qty"`
}

// ProductResponse salida de un producto. Status es derivado, no se almacena.
type ProductResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SKU       string `json:"sku"`
	Warehouse string `json:"warehouse"`
	Stock     int    `json:"stock"`
	Demand    int    `json:"demand"`
	Status    string `json:"status"`
}

// ProductListResponse listado completo (sin paginación) de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// NewProductResponse mapea la entidad al DTO de salida.
func NewProductResponse(p *entity.Product) *ProductResponse {
	if p == nil {
		return nil
	}
	return &ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Warehouse: p.Warehouse,
		Stock:     p.Stock,
		Demand:    p.Demand,
		Status:    string(p.Status()),
	}
}
