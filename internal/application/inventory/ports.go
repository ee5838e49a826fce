package inventory

import (
	"context"

	"github.com/jhoicas/inventory-dashboard-api/internal/domain/repository"
)

// TxRunner ejecuta una función con acceso exclusivo al almacén, pasando un repositorio atado a ese acceso.
// Garantiza que la verificación de precondiciones y la escritura no se intercalen con otra mutación.
type TxRunner interface {
	Run(ctx context.Context, fn func(productRepo repository.ProductRepository) error) error
}
