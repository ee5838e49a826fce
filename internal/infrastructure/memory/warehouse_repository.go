package memory

import (
	"github.com/jhoicas/inventory-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard-api/internal/domain/repository"
)

var _ repository.WarehouseRepository = (*WarehouseRepo)(nil)

// WarehouseRepo implementación del puerto WarehouseRepository sobre Store.
type WarehouseRepo struct {
	store *Store
}

// NewWarehouseRepository construye el adaptador de bodegas.
func NewWarehouseRepository(store *Store) *WarehouseRepo {
	return &WarehouseRepo{store: store}
}

// GetByCode obtiene una bodega por código; nil si no existe.
func (r *WarehouseRepo) GetByCode(code string) (*entity.Warehouse, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	i, ok := r.store.byCode[code]
	if !ok {
		return nil, nil
	}
	w := *r.store.warehouses[i]
	return &w, nil
}

// List devuelve todas las bodegas en orden natural.
func (r *WarehouseRepo) List() ([]*entity.Warehouse, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	list := make([]*entity.Warehouse, 0, len(r.store.warehouses))
	for _, w := range r.store.warehouses {
		cp := *w
		list = append(list, &cp)
	}
	return list, nil
}
