// Package http define los handlers Fiber y el ruteo de la API.
package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techstore/inventario-api/internal/application/auth"
	"github.com/techstore/inventario-api/internal/application/inventory"
	"github.com/techstore/inventario-api/internal/infrastructure/pdf"
	"github.com/techstore/inventario-api/internal/infrastructure/ublxml"
)

// RouterDeps dependencias para armar las rutas.
type RouterDeps struct {
	Store      *inventory.Store
	AuthUC     *auth.AuthUseCase
	PDFGen     *pdf.MarotoInvoiceGenerator
	XMLBuilder *ublxml.Builder
	JWTSecret  string
}

// SetupRoutes registra todas las rutas de la API.
//
// Públicas: health, status y login. El resto va detrás del middleware JWT.
func SetupRoutes(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	productHandler := NewProductHandler(deps.Store)
	inventoryHandler := NewInventoryHandler(deps.Store)
	statusHandler := NewStatusHandler(deps.Store)
	exportHandler := NewExportHandler(deps.Store)
	invoiceHandler := NewInvoiceHandler(deps.PDFGen, deps.XMLBuilder)

	app.Get("/health", statusHandler.Health)

	api := app.Group("/api")
	api.Get("/status", statusHandler.Status)
	api.Post("/auth/login", authHandler.Login)

	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	protected.Post("/status/retry", statusHandler.Retry)

	protected.Get("/products", productHandler.List)
	protected.Post("/products", productHandler.Create)
	protected.Get("/products/:id", productHandler.Get)
	protected.Put("/products/:id", productHandler.Update)
	protected.Delete("/products/:id", productHandler.Delete)
	protected.Get("/products/:id/price-history", productHandler.PriceHistory)

	protected.Post("/inventory/movements", inventoryHandler.CreateMovement)
	protected.Get("/inventory/movements", inventoryHandler.ListMovements)
	protected.Delete("/inventory/movements", inventoryHandler.ClearMovements)
	protected.Get("/inventory/alerts", inventoryHandler.Alerts)
	protected.Get("/inventory/summary", inventoryHandler.Summary)
	protected.Post("/inventory/prices", inventoryHandler.UpdatePrices)

	protected.Get("/export/inventory.csv", exportHandler.InventoryCSV)
	protected.Get("/export/movements.csv", exportHandler.MovementsCSV)
	protected.Get("/export/categories.csv", exportHandler.CategoriesCSV)
	protected.Get("/export/inventory.html", exportHandler.InventoryHTML)
	protected.Get("/export/movements.html", exportHandler.MovementsHTML)
	protected.Get("/export/categories.html", exportHandler.CategoriesHTML)

	protected.Post("/invoices/preview", invoiceHandler.Preview)
	protected.Post("/invoices/html", invoiceHandler.HTML)
	protected.Post("/invoices/pdf", invoiceHandler.PDF)
	protected.Post("/invoices/xml", invoiceHandler.XML)
}
