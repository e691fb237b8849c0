package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/techstore/inventario-api/internal/domain/entity"
)

// InvoiceItemRequest línea de la factura a generar.
type InvoiceItemRequest struct {
	Description string          `json:"description" validate:"required"`
	Quantity    int             `json:"quantity" validate:"required,gt=0"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreateInvoiceRequest entrada para generar una factura descargable.
type CreateInvoiceRequest struct {
	CustomerName    string               `json:"customer_name" validate:"required"`
	CustomerDoc     string               `json:"customer_doc"`
	CustomerPhone   string               `json:"customer_phone"`
	CustomerAddress string               `json:"customer_address"`
	Items           []InvoiceItemRequest `json:"items" validate:"required,min=1,dive"`
	DiscountPercent decimal.Decimal      `json:"discount_percent"`
	PaymentMethod   string               `json:"payment_method" validate:"required"`
	Notes           string               `json:"notes"`
}

// InvoiceItemResponse línea de la factura con su total calculado.
type InvoiceItemResponse struct {
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Total       decimal.Decimal `json:"total"`
}

// InvoiceResponse factura calculada.
type InvoiceResponse struct {
	Number          string                `json:"number"`
	Date            time.Time             `json:"date"`
	CustomerName    string                `json:"customer_name"`
	CustomerDoc     string                `json:"customer_doc,omitempty"`
	CustomerPhone   string                `json:"customer_phone,omitempty"`
	CustomerAddress string                `json:"customer_address,omitempty"`
	Items           []InvoiceItemResponse `json:"items"`
	Subtotal        decimal.Decimal       `json:"subtotal"`
	DiscountPercent decimal.Decimal       `json:"discount_percent"`
	DiscountAmount  decimal.Decimal       `json:"discount_amount"`
	Total           decimal.Decimal       `json:"total"`
	PaymentMethod   string                `json:"payment_method"`
	Notes           string                `json:"notes,omitempty"`
}

// NewInvoiceResponse mapea la factura a su representación HTTP.
func NewInvoiceResponse(inv *entity.Invoice) InvoiceResponse {
	items := make([]InvoiceItemResponse, 0, len(inv.Items))
	for _, it := range inv.Items {
		items = append(items, InvoiceItemResponse{
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       it.Total,
		})
	}
	return InvoiceResponse{
		Number:          inv.Number,
		Date:            inv.Date,
		CustomerName:    inv.CustomerName,
		CustomerDoc:     inv.CustomerDoc,
		CustomerPhone:   inv.CustomerPhone,
		CustomerAddress: inv.CustomerAddress,
		Items:           items,
		Subtotal:        inv.Subtotal,
		DiscountPercent: inv.DiscountPercent,
		DiscountAmount:  inv.DiscountAmount,
		Total:           inv.Total,
		PaymentMethod:   inv.PaymentMethod,
		Notes:           inv.Notes,
	}
}
