package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jhoicas/inventory-dashboard-api/internal/app"
	appanalytics "github.com/jhoicas/inventory-dashboard-api/internal/application/analytics"
	"github.com/jhoicas/inventory-dashboard-api/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/inventory-dashboard-api/internal/interfaces/http"
	"github.com/jhoicas/inventory-dashboard-api/pkg/config"
	"github.com/jhoicas/inventory-dashboard-api/pkg/logger"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	var kpiOpts []appanalytics.Option
	if cfg.KPI.Seed != 0 {
		kpiOpts = append(kpiOpts, appanalytics.WithSeed(cfg.KPI.Seed))
	}

	// Estado en memoria: se reinicia al dataset semilla en cada arranque.
	application, err := app.New(app.Options{
		HTTP: httpRouter.AppConfig{
			Name:         cfg.App.Name,
			AllowOrigins: cfg.HTTP.AllowOrigins,
			Docs:         cfg.HTTP.Docs,
		},
		Seed:       memory.DefaultSeed(),
		KPIOptions: kpiOpts,
		Log:        log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar aplicación")
	}
	store, server := application.Store, application.HTTP

	products, warehouses := store.Counts()
	log.Info().
		Int("products", products).
		Int("warehouses", warehouses).
		Str("graphql", "http://"+cfg.HTTP.Addr()+"/graphql").
		Msg("datos de ejemplo cargados")

	go func() {
		if err := server.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
