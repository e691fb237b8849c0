package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/techstore/inventario-api/internal/application/inventory"
	"github.com/techstore/inventario-api/internal/infrastructure/export"
)

// ExportHandler descargas CSV y HTML del inventario.
type ExportHandler struct {
	store *inventory.Store
}

// NewExportHandler crea el handler de exportación.
func NewExportHandler(store *inventory.Store) *ExportHandler {
	return &ExportHandler{store: store}
}

func attachmentName(prefix, ext string) string {
	return fmt.Sprintf("%s_%s.%s", prefix, time.Now().Format("2006-01-02"), ext)
}

func sendCSV(c *fiber.Ctx, name string, body []byte) error {
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(body)
}

func sendHTML(c *fiber.Ctx, name, body string) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.SendString(body)
}

// InventoryCSV exporta el catálogo como CSV
// @Summary      Exportar inventario (CSV)
// @Description  CSV con BOM UTF-8, separador punto y coma y texto normalizado a ASCII
// @Tags         export
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200 {string} string
// @Router       /api/export/inventory.csv [get]
func (h *ExportHandler) InventoryCSV(c *fiber.Ctx) error {
	return sendCSV(c, attachmentName("inventario", "csv"), export.InventoryCSV(h.store.Products()))
}

// MovementsCSV exporta los movimientos como CSV
// @Summary      Exportar movimientos (CSV)
// @Tags         export
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200 {string} string
// @Router       /api/export/movements.csv [get]
func (h *ExportHandler) MovementsCSV(c *fiber.Ctx) error {
	return sendCSV(c, attachmentName("movimientos", "csv"),
		export.MovementsCSV(h.store.Movements(), h.store.Products()))
}

// CategoriesCSV exporta el agregado por categoría como CSV
// @Summary      Exportar categorías (CSV)
// @Tags         export
// @Produce      text/csv
// @Security     BearerAuth
// @Success      200 {string} string
// @Router       /api/export/categories.csv [get]
func (h *ExportHandler) CategoriesCSV(c *fiber.Ctx) error {
	return sendCSV(c, attachmentName("categorias", "csv"),
		export.CategoriesCSV(h.store.CategorySummaries()))
}

// InventoryHTML exporta el reporte de inventario imprimible
// @Summary      Exportar inventario (HTML)
// @Tags         export
// @Produce      html
// @Security     BearerAuth
// @Success      200 {string} string
// @Router       /api/export/inventory.html [get]
func (h *ExportHandler) InventoryHTML(c *fiber.Ctx) error {
	return sendHTML(c, attachmentName("reporte_inventario", "html"),
		export.InventoryReportHTML(h.store.Products()))
}

// MovementsHTML exporta el reporte de movimientos imprimible
// @Summary      Exportar movimientos (HTML)
// @Tags         export
// @Produce      html
// @Security     BearerAuth
// @Success      200 {string} string
// @Router       /api/export/movements.html [get]
func (h *ExportHandler) MovementsHTML(c *fiber.Ctx) error {
	return sendHTML(c, attachmentName("reporte_movimientos", "html"),
		export.MovementsReportHTML(h.store.Movements(), h.store.Products()))
}

// CategoriesHTML exporta el reporte por categoría imprimible
// @Summary      Exportar categorías (HTML)
// @Tags         export
// @Produce      html
// @Security     BearerAuth
// @Success      200 {string} string
// @Router       /api/export/categories.html [get]
func (h *ExportHandler) CategoriesHTML(c *fiber.Ctx) error {
	return sendHTML(c, attachmentName("reporte_categorias", "html"),
		export.CategoriesReportHTML(h.store.CategorySummaries()))
}
