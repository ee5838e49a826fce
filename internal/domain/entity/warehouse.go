package entity

// Warehouse representa una bodega. Sus datos son inmutables en este sistema.
type Warehouse struct {
	Code    string
	Name    string
	City    string
	Country string
}
