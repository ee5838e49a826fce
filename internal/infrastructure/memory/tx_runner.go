package memory

import (
	"context"

	"github.com/jhoicas/inventory-dashboard-api/internal/application/inventory"
	"github.com/jhoicas/inventory-dashboard-api/internal/domain/repository"
)

var _ inventory.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las mutaciones: toma el lock de escritura del Store durante todo el callback,
// así la validación de precondiciones y la escritura son atómicas.
type TxRunner struct {
	store *Store
}

// NewTxRunner construye el runner sobre el Store.
func NewTxRunner(store *Store) *TxRunner {
	return &TxRunner{store: store}
}

// Run ejecuta fn con un repositorio atado al lock tomado. No hay rollback: fn debe validar antes de escribir.
func (r *TxRunner) Run(ctx context.Context, fn func(productRepo repository.ProductRepository) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	return fn(&ProductRepo{store: r.store, inTx: true})
}
