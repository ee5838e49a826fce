package memory

import "github.com/jhoicas/inventory-dashboard-api/internal/domain/entity"

// Seed dataset inicial del almacén.
type Seed struct {
	Products   []entity.Product
	Warehouses []entity.Warehouse
}

// DefaultSeed dataset de demostración: 4 productos y 3 bodegas en India.
// Totales: stock 334, demanda 400.
func DefaultSeed() Seed {
	return Seed{
		Products: []entity.Product{
			{ID: "P-1001", Name: "12mm Hex Bolt", SKU: "HEX-12-100", Warehouse: "BLR-A", Stock: 180, Demand: 120},
			{ID: "P-1002", Name: "Steel Washer", SKU: "WSR-08-500", Warehouse: "BLR-A", Stock: 50, Demand: 80},
			{ID: "P-1003", Name: "M8 Nut", SKU: "NUT-08-200", Warehouse: "PNQ-C", Stock: 80, Demand: 80},
			{ID: "P-1004", Name: "Bearing 608ZZ", SKU: "BRG-608-50", Warehouse: "DEL-B", Stock: 24, Demand: 120},
		},
		Warehouses: []entity.Warehouse{
			{Code: "BLR-A", Name: "Bangalore Central", City: "Bangalore", Country: "India"},
			{Code: "PNQ-C", Name: "Pune West", City: "Pune", Country: "India"},
			{Code: "DEL-B", Name: "Delhi North", City: "Delhi", Country: "India"},
		},
	}
}
