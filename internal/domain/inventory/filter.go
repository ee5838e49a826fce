package inventory

import (
	"strings"

	"golang.org/x/text/cases"

	"github.com/jhoicas/inventory-dashboard-api/internal/domain/entity"
)

// ProductFilter criterios de búsqueda sobre productos. Los campos vacíos no filtran.
// Los tres criterios se combinan con AND.
type ProductFilter struct {
	Search    string        // subcadena sin distinguir mayúsculas sobre Name, SKU o ID
	Warehouse string        // código exacto de bodega
	Status    entity.Status // "" o All = sin filtro
}

// Matches indica si el producto cumple todos los criterios del filtro.
// La búsqueda usa case folding Unicode: "SS" coincide con "ß".
func (f ProductFilter) Matches(p entity.Product) bool {
	if f.Search != "" {
		fold := cases.Fold() // un Caser no se comparte entre goroutines
		q := fold.String(f.Search)
		if !strings.Contains(fold.String(p.Name), q) &&
			!strings.Contains(fold.String(p.SKU), q) &&
			!strings.Contains(fold.String(p.ID), q) {
			return false
		}
	}
	if f.Warehouse != "" && p.Warehouse != f.Warehouse {
		return false
	}
	// Un estado desconocido no excluye nada.
	if f.Status.IsClassification() && p.Status() != f.Status {
		return false
	}
	return true
}
