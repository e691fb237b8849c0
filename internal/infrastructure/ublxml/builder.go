// Package ublxml construye la representación XML descargable de la factura.
package ublxml

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"
	"github.com/techstore/inventario-api/internal/domain/entity"
)

// Builder arma el documento XML de la factura con etree.
type Builder struct{}

// NewBuilder crea el servicio.
func NewBuilder() *Builder {
	return &Builder{}
}

// Build genera el []byte del documento Factura indentado.
func (b *Builder) Build(invoice *entity.Invoice) ([]byte, error) {
	if invoice == nil {
		return nil, fmt.Errorf("ublxml: factura nil")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("Factura")
	root.CreateAttr("numero", invoice.Number)
	root.CreateAttr("fecha", invoice.Date.Format("2006-01-02"))

	cliente := root.CreateElement("Cliente")
	cliente.CreateElement("Nombre").SetText(invoice.CustomerName)
	if invoice.CustomerDoc != "" {
		cliente.CreateElement("Documento").SetText(invoice.CustomerDoc)
	}
	if invoice.CustomerPhone != "" {
		cliente.CreateElement("Telefono").SetText(invoice.CustomerPhone)
	}
	if invoice.CustomerAddress != "" {
		cliente.CreateElement("Direccion").SetText(invoice.CustomerAddress)
	}

	lineas := root.CreateElement("Lineas")
	for i, it := range invoice.Items {
		linea := lineas.CreateElement("Linea")
		linea.CreateAttr("numero", strconv.Itoa(i+1))
		linea.CreateElement("Descripcion").SetText(it.Description)
		linea.CreateElement("Cantidad").SetText(strconv.Itoa(it.Quantity))
		linea.CreateElement("PrecioUnitario").SetText(it.UnitPrice.StringFixed(2))
		linea.CreateElement("Total").SetText(it.Total.StringFixed(2))
	}

	totales := root.CreateElement("Totales")
	totales.CreateElement("Subtotal").SetText(invoice.Subtotal.StringFixed(2))
	if !invoice.DiscountPercent.IsZero() {
		totales.CreateElement("DescuentoPorcentaje").SetText(invoice.DiscountPercent.StringFixed(2))
		totales.CreateElement("DescuentoMonto").SetText(invoice.DiscountAmount.StringFixed(2))
	}
	totales.CreateElement("Total").SetText(invoice.Total.StringFixed(2))

	root.CreateElement("MetodoPago").SetText(invoice.PaymentMethod)
	if invoice.Notes != "" {
		root.CreateElement("Notas").SetText(invoice.Notes)
	}

	doc.Indent(2)
	return doc.WriteToBytes()
}
