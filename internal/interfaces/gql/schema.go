// Package gql define el esquema GraphQL del tablero de inventario sobre graphql-go.
// Los resolvers solo extraen argumentos, delegan en los casos de uso y traducen errores.
package gql

import (
	"github.com/graphql-go/graphql"

	"github.com/jhoicas/inventory-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/inventory-dashboard-api/internal/application/inventory"
	"github.com/jhoicas/inventory-dashboard-api/internal/application/usecase"
)

// Deps casos de uso que atienden las consultas y mutaciones.
type Deps struct {
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	StockUC     *inventory.StockUseCase
	KPIUC       *analytics.KPIUseCase
}

var warehouseType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Warehouse",
	Fields: graphql.Fields{
		"code":    &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"city":    &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"country": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
	},
})

var productType = graphql.NewObject(graphql.ObjectConfig{
	Name: "Product",
	Fields: graphql.Fields{
		"id":        &graphql.Field{Type: graphql.NewNonNull(graphql.ID)},
		"name":      &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"sku":       &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"warehouse": &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"stock":     &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"demand":    &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

var kpiType = graphql.NewObject(graphql.ObjectConfig{
	Name: "KPI",
	Fields: graphql.Fields{
		"date":   &graphql.Field{Type: graphql.NewNonNull(graphql.String)},
		"stock":  &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
		"demand": &graphql.Field{Type: graphql.NewNonNull(graphql.Int)},
	},
})

func listOf(t graphql.Type) graphql.Output {
	return graphql.NewNonNull(graphql.NewList(graphql.NewNonNull(t)))
}

// NewSchema construye el esquema:
//
//	type Query {
//	  products(search: String, status: String, warehouse: String): [Product!]!
//	  warehouses: [Warehouse!]!
//	  kpis(range: String!): [KPI!]!
//	}
//	type Mutation {
//	  updateDemand(id: ID!, demand: Int!): Product!
//	  transferStock(id: ID!, from: String!, to: String!, qty: Int!): Product!
//	}
func NewSchema(deps Deps) (graphql.Schema, error) {
	r := &resolver{deps: deps}

	query := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"products": &graphql.Field{
				Type: listOf(productType),
				Args: graphql.FieldConfigArgument{
					"search":    &graphql.ArgumentConfig{Type: graphql.String},
					"status":    &graphql.ArgumentConfig{Type: graphql.String},
					"warehouse": &graphql.ArgumentConfig{Type: graphql.String},
				},
				Resolve: r.products,
			},
			"warehouses": &graphql.Field{
				Type:    listOf(warehouseType),
				Resolve: r.warehouses,
			},
			"kpis": &graphql.Field{
				Type: listOf(kpiType),
				Args: graphql.FieldConfigArgument{
					"range": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
				},
				Resolve: r.kpis,
			},
		},
	})

	mutation := graphql.NewObject(graphql.ObjectConfig{
		Name: "Mutation",
		Fields: graphql.Fields{
			"updateDemand": &graphql.Field{
				Type: graphql.NewNonNull(productType),
				Args: graphql.FieldConfigArgument{
					"id":     &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"demand": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.updateDemand,
			},
			"transferStock": &graphql.Field{
				Type: graphql.NewNonNull(productType),
				Args: graphql.FieldConfigArgument{
					"id":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.ID)},
					"from": &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"to":   &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.String)},
					"qty":  &graphql.ArgumentConfig{Type: graphql.NewNonNull(graphql.Int)},
				},
				Resolve: r.transferStock,
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    query,
		Mutation: mutation,
	})
}
