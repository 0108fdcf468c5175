// @title           COD Metrics API
// @version         1.0
// @description     API de métricas de ventas contra-entrega: registros diarios, panel de KPIs y reportes.
// @BasePath        /
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/cod-metrics-api/internal/application/analytics"
	"github.com/jhoicas/cod-metrics-api/internal/application/usecase"
	infrapdf "github.com/jhoicas/cod-metrics-api/internal/infrastructure/pdf"
	"github.com/jhoicas/cod-metrics-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/cod-metrics-api/internal/interfaces/http"
	"github.com/jhoicas/cod-metrics-api/pkg/config"
	"github.com/jhoicas/cod-metrics-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	entryRepo := postgres.NewEntryRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)

	productUC := usecase.NewProductUseCase(productRepo)
	entryUC := usecase.NewEntryUseCase(entryRepo, productRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo)

	dashboardUC := analytics.NewDashboardUseCase(productRepo, entryRepo, settingsRepo)
	pdfGenerator := infrapdf.NewMarotoReportGenerator()
	reportUC := analytics.NewReportUseCase(productRepo, entryRepo, settingsRepo, pdfGenerator)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    cfg.App.Name,
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		EntryUC:     entryUC,
		SettingsUC:  settingsUC,
		CategoryUC:  categoryUC,
		DashboardUC: dashboardUC,
		ReportUC:    reportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
