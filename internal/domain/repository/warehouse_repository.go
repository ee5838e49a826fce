package repository

import "github.com/jhoicas/inventory-dashboard-api/internal/domain/entity"

// WarehouseRepository define el puerto de lectura para Warehouse (DIP).
type WarehouseRepository interface {
	GetByCode(code string) (*entity.Warehouse, error)
	List() ([]*entity.Warehouse, error)
}
