package repository

import (
	"github.com/jhoicas/inventory-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard-api/internal/domain/inventory"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Las lecturas devuelven copias; modificar el resultado no altera el almacén.
type ProductRepository interface {
	GetByID(id string) (*entity.Product, error) // nil, nil si no existe
	List(filter inventory.ProductFilter) ([]*entity.Product, error)
	Update(product *entity.Product) error
}
