package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/techstore/inventario-api/internal/application/billing"
	"github.com/techstore/inventario-api/internal/application/dto"
	"github.com/techstore/inventario-api/internal/domain/entity"
	"github.com/techstore/inventario-api/internal/infrastructure/export"
	"github.com/techstore/inventario-api/internal/infrastructure/pdf"
	"github.com/techstore/inventario-api/internal/infrastructure/ublxml"
)

// InvoiceHandler genera facturas descargables en HTML, PDF y XML.
type InvoiceHandler struct {
	pdfGen     *pdf.MarotoInvoiceGenerator
	xmlBuilder *ublxml.Builder
}

// NewInvoiceHandler crea el handler de facturación.
func NewInvoiceHandler(pdfGen *pdf.MarotoInvoiceGenerator, xmlBuilder *ublxml.Builder) *InvoiceHandler {
	return &InvoiceHandler{pdfGen: pdfGen, xmlBuilder: xmlBuilder}
}

func (h *InvoiceHandler) buildInvoice(c *fiber.Ctx) (*entity.Invoice, error) {
	var req dto.CreateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "BAD_REQUEST", Message: "cuerpo JSON inválido"})
	}
	invoice, err := billing.BuildInvoice(req)
	if err != nil {
		return nil, respondError(c, err)
	}
	return invoice, nil
}

// Preview calcula la factura sin generar documento
// @Summary      Previsualizar factura
// @Description  Devuelve la factura con número, subtotal, descuento y total calculados
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body dto.CreateInvoiceRequest true "Factura"
// @Success      200 {object} dto.InvoiceResponse
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/invoices/preview [post]
func (h *InvoiceHandler) Preview(c *fiber.Ctx) error {
	invoice, err := h.buildInvoice(c)
	if invoice == nil {
		return err
	}
	return c.JSON(dto.NewInvoiceResponse(invoice))
}

// HTML genera la factura como documento HTML descargable
// @Summary      Generar factura (HTML)
// @Tags         invoices
// @Accept       json
// @Produce      html
// @Security     BearerAuth
// @Param        request body dto.CreateInvoiceRequest true "Factura"
// @Success      200 {string} string
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/invoices/html [post]
func (h *InvoiceHandler) HTML(c *fiber.Ctx) error {
	invoice, err := h.buildInvoice(c)
	if invoice == nil {
		return err
	}
	return sendHTML(c, invoice.Number+".html", export.InvoiceHTML(invoice))
}

// PDF genera la factura como PDF descargable
// @Summary      Generar factura (PDF)
// @Tags         invoices
// @Accept       json
// @Produce      application/pdf
// @Security     BearerAuth
// @Param        request body dto.CreateInvoiceRequest true "Factura"
// @Success      200 {string} string
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/invoices/pdf [post]
func (h *InvoiceHandler) PDF(c *fiber.Ctx) error {
	invoice, err := h.buildInvoice(c)
	if invoice == nil {
		return err
	}
	doc, err := h.pdfGen.Generate(invoice)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+invoice.Number+`.pdf"`)
	return c.Send(doc)
}

// XML genera la factura como documento XML descargable
// @Summary      Generar factura (XML)
// @Tags         invoices
// @Accept       json
// @Produce      xml
// @Security     BearerAuth
// @Param        request body dto.CreateInvoiceRequest true "Factura"
// @Success      200 {string} string
// @Failure      400 {object} dto.ErrorResponse
// @Router       /api/invoices/xml [post]
func (h *InvoiceHandler) XML(c *fiber.Ctx) error {
	invoice, err := h.buildInvoice(c)
	if invoice == nil {
		return err
	}
	raw, err := h.xmlBuilder.Build(invoice)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/xml; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+invoice.Number+`.xml"`)
	return c.Send(raw)
}
