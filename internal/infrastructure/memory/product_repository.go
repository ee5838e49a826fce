package memory

import (
	"fmt"

	"github.com/jhoicas/inventory-dashboard-api/internal/domain"
	"github.com/jhoicas/inventory-dashboard-api/internal/domain/entity"
	"github.com/jhoicas/inventory-dashboard-api/internal/domain/inventory"
	"github.com/jhoicas/inventory-dashboard-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre Store.
// Dentro de TxRunner.Run el lock ya está tomado y el repo no vuelve a bloquear.
type ProductRepo struct {
	store *Store
	inTx  bool
}

// NewProductRepository construye el adaptador de productos.
func NewProductRepository(store *Store) *ProductRepo {
	return &ProductRepo{store: store}
}

func (r *ProductRepo) rlock() func() {
	if r.inTx {
		return func() {}
	}
	r.store.mu.RLock()
	return r.store.mu.RUnlock
}

func (r *ProductRepo) lock() func() {
	if r.inTx {
		return func() {}
	}
	r.store.mu.Lock()
	return r.store.mu.Unlock
}

// GetByID obtiene una copia del producto; nil si no existe.
func (r *ProductRepo) GetByID(id string) (*entity.Product, error) {
	defer r.rlock()()
	i, ok := r.store.byID[id]
	if !ok {
		return nil, nil
	}
	p := *r.store.products[i]
	return &p, nil
}

// List devuelve copias de los productos que cumplen el filtro, en orden de inserción.
func (r *ProductRepo) List(filter inventory.ProductFilter) ([]*entity.Product, error) {
	defer r.rlock()()
	list := make([]*entity.Product, 0, len(r.store.products))
	for _, p := range r.store.products {
		if !filter.Matches(*p) {
			continue
		}
		cp := *p
		list = append(list, &cp)
	}
	return list, nil
}

// Update reemplaza el registro con el mismo ID.
func (r *ProductRepo) Update(product *entity.Product) error {
	defer r.lock()()
	i, ok := r.store.byID[product.ID]
	if !ok {
		return fmt.Errorf("update product %s: %w", product.ID, domain.ErrProductNotFound)
	}
	cp := *product
	r.store.products[i] = &cp
	return nil
}
