// Package app arma el grafo de dependencias: almacén en memoria, casos de uso, esquema GraphQL y servidor Fiber.
package app

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	appanalytics "github.com/jhoicas/inventory-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/inventory-dashboard-api/internal/application/inventory"
	"github.com/jhoicas/inventory-dashboard-api/internal/application/usecase"
	"github.com/jhoicas/inventory-dashboard-api/internal/infrastructure/memory"
	"github.com/jhoicas/inventory-dashboard-api/internal/interfaces/gql"
	httpRouter "github.com/jhoicas/inventory-dashboard-api/internal/interfaces/http"
	"github.com/jhoicas/inventory-dashboard-api/pkg/logger"
)

// Options parámetros de construcción.
type Options struct {
	HTTP       httpRouter.AppConfig
	Seed       memory.Seed
	KPIOptions []appanalytics.Option
	Log        *logger.Logger
}

// App aplicación armada.
type App struct {
	Store *memory.Store
	HTTP  *fiber.App
}

// New construye la aplicación. Un Seed vacío usa memory.DefaultSeed().
func New(opts Options) (*App, error) {
	seed := opts.Seed
	if len(seed.Products) == 0 && len(seed.Warehouses) == 0 {
		seed = memory.DefaultSeed()
	}
	log := opts.Log
	if log == nil {
		log = logger.Nop()
	}

	store := memory.NewStore(seed)
	productRepo := memory.NewProductRepository(store)
	warehouseRepo := memory.NewWarehouseRepository(store)
	txRunner := memory.NewTxRunner(store)

	productUC := usecase.NewProductUseCase(productRepo)
	warehouseUC := usecase.NewWarehouseUseCase(warehouseRepo)
	stockUC := inventory.NewStockUseCase(txRunner)
	kpiUC := appanalytics.NewKPIUseCase(appanalytics.NewKPIGenerator(opts.KPIOptions...))
	dashboardUC := appanalytics.NewDashboardUseCase(productRepo)

	schema, err := gql.NewSchema(gql.Deps{
		ProductUC:   productUC,
		WarehouseUC: warehouseUC,
		StockUC:     stockUC,
		KPIUC:       kpiUC,
	})
	if err != nil {
		return nil, fmt.Errorf("esquema GraphQL: %w", err)
	}

	httpApp := httpRouter.NewApp(opts.HTTP, log, httpRouter.RouterDeps{
		Schema:      schema,
		ProductUC:   productUC,
		WarehouseUC: warehouseUC,
		StockUC:     stockUC,
		DashboardUC: dashboardUC,
		KPIUC:       kpiUC,
	})

	return &App{Store: store, HTTP: httpApp}, nil
}
