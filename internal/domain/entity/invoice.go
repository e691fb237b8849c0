package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceItem es una línea de la factura.
type InvoiceItem struct {
	Description string
	Quantity    int
	UnitPrice   decimal.Decimal
	Total       decimal.Decimal // Quantity × UnitPrice
}

// Invoice es el documento de venta que se entrega como descarga (HTML, PDF o
// XML). No se transmite a ningún sistema externo.
type Invoice struct {
	Number          string
	Date            time.Time
	CustomerName    string
	CustomerDoc     string // documento / NIT del cliente, opcional
	CustomerPhone   string
	CustomerAddress string
	Items           []InvoiceItem
	Subtotal        decimal.Decimal
	DiscountPercent decimal.Decimal // porcentaje sobre el subtotal
	DiscountAmount  decimal.Decimal
	Total           decimal.Decimal
	PaymentMethod   string
	Notes           string
}
