package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/cod-metrics-api/internal/application/analytics"
	"github.com/jhoicas/cod-metrics-api/internal/application/usecase"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ProductUC   *usecase.ProductUseCase
	EntryUC     *usecase.EntryUseCase
	SettingsUC  *usecase.SettingsUseCase
	CategoryUC  *usecase.CategoryUseCase
	DashboardUC *analytics.DashboardUseCase
	ReportUC    *analytics.ReportUseCase
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Products y campañas
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)
	products.Post("/:id/campaigns", productHandler.AddCampaign)
	products.Delete("/:id/campaigns/:campaignId", productHandler.RemoveCampaign)

	// Registros diarios
	entries := api.Group("/entries")
	entryHandler := NewEntryHandler(deps.EntryUC)
	entries.Post("/", entryHandler.Create)
	entries.Post("/batch", entryHandler.CreateBatch)
	entries.Get("/", entryHandler.List)
	entries.Get("/:id", entryHandler.GetByID)
	entries.Put("/:id", entryHandler.Update)
	entries.Delete("/:id", entryHandler.Delete)

	// Configuración y categorías
	settings := api.Group("/settings")
	settingsHandler := NewSettingsHandler(deps.SettingsUC, deps.CategoryUC)
	settings.Get("/", settingsHandler.Get)
	settings.Put("/", settingsHandler.Update)
	settings.Post("/categories", settingsHandler.CreateCategory)
	settings.Get("/categories", settingsHandler.ListCategories)
	settings.Delete("/categories/:id", settingsHandler.DeleteCategory)

	// Panel de métricas
	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	api.Get("/dashboard", dashboardHandler.Get)

	// Reportes
	reports := api.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Post("/", reportHandler.Generate)
	reports.Post("/pdf", reportHandler.GeneratePDF)
}
