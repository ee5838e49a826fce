// Package memory implementa los puertos de persistencia sobre estructuras en memoria.
// El estado vive lo que vive el proceso; al reiniciar vuelve al dataset semilla.
package memory

import (
	"sync"

	"github.com/jhoicas/inventory-dashboard-api/internal/domain/entity"
)

// Store dueño exclusivo de productos y bodegas. Lecturas con RLock; escrituras con Lock.
type Store struct {
	mu         sync.RWMutex
	products   []*entity.Product // orden de inserción
	byID       map[string]int
	warehouses []*entity.Warehouse
	byCode     map[string]int
}

// NewStore construye el almacén copiando el dataset recibido.
func NewStore(seed Seed) *Store {
	s := &Store{
		products:   make([]*entity.Product, 0, len(seed.Products)),
		byID:       make(map[string]int, len(seed.Products)),
		warehouses: make([]*entity.Warehouse, 0, len(seed.Warehouses)),
		byCode:     make(map[string]int, len(seed.Warehouses)),
	}
	for _, p := range seed.Products {
		p := p
		s.byID[p.ID] = len(s.products)
		s.products = append(s.products, &p)
	}
	for _, w := range seed.Warehouses {
		w := w
		s.byCode[w.Code] = len(s.warehouses)
		s.warehouses = append(s.warehouses, &w)
	}
	return s
}

// Counts número de productos y bodegas cargados.
func (s *Store) Counts() (products, warehouses int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products), len(s.warehouses)
}
