package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	appanalytics "github.com/jhoicas/inventory-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/inventory-dashboard-api/internal/application/inventory"
	"github.com/jhoicas/inventory-dashboard-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Schema      graphql.Schema
	ProductUC   *usecase.ProductUseCase
	WarehouseUC *usecase.WarehouseUseCase
	StockUC     *inventory.StockUseCase
	DashboardUC *appanalytics.DashboardUseCase
	KPIUC       *appanalytics.KPIUseCase
}

// Router registra /graphql y el espejo REST bajo /api. Todo es público (sin auth).
func Router(app *fiber.App, deps RouterDeps) {
	graphqlHandler := NewGraphQLHandler(deps.Schema)
	app.Post("/graphql", graphqlHandler.Serve)
	app.Get("/graphql", graphqlHandler.Serve)

	api := app.Group("/api")

	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	inventoryHandler := NewInventoryHandler(deps.StockUC)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id/demand", inventoryHandler.UpdateDemand)
	products.Post("/:id/transfer", inventoryHandler.TransferStock)

	warehouses := api.Group("/warehouses")
	warehouseHandler := NewWarehouseHandler(deps.WarehouseUC)
	warehouses.Get("/", warehouseHandler.List)
	warehouses.Get("/:code", warehouseHandler.GetByCode)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.KPIUC)
	api.Get("/kpis", dashboardHandler.GetKPIs)
	api.Get("/dashboard/summary", dashboardHandler.GetSummary)
}
