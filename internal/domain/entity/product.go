package entity

// Product representa un artículo del inventario ubicado en una única bodega.
// Stock y Demand son cantidades enteras no negativas; Status se deriva de ambas.
type Product struct {
	ID        string
	Name      string
	SKU       string // no se valida unicidad
	Warehouse string // código de la bodega (Warehouse.Code)
	Stock     int
	Demand    int
}

// Status clasifica el producto comparando stock contra demanda.
func (p Product) Status() Status {
	return StatusOf(p.Stock, p.Demand)
}
