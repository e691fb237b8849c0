package ublxml_test

import (
	"testing"
	"time"

	"github.com/beevik/etree"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techstore/inventario-api/internal/domain/entity"
	"github.com/techstore/inventario-api/internal/infrastructure/ublxml"
)

func TestBuild(t *testing.T) {
	inv := &entity.Invoice{
		Number:        "FAC-1756400000",
		Date:          time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC),
		CustomerName:  "María Pérez",
		CustomerDoc:   "30.123.456",
		PaymentMethod: "Efectivo",
		Items: []entity.InvoiceItem{
			{Description: "Notebook Dell", Quantity: 1, UnitPrice: decimal.NewFromInt(950000), Total: decimal.NewFromInt(950000)},
			{Description: "Teclado", Quantity: 2, UnitPrice: decimal.NewFromInt(135000), Total: decimal.NewFromInt(270000)},
		},
		Subtotal:        decimal.NewFromInt(1220000),
		DiscountPercent: decimal.NewFromInt(10),
		DiscountAmount:  decimal.NewFromInt(122000),
		Total:           decimal.NewFromInt(1098000),
	}

	raw, err := ublxml.NewBuilder().Build(inv)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(raw), "el documento generado debe ser XML válido")

	root := doc.Root()
	require.NotNil(t, root)
	assert.Equal(t, "Factura", root.Tag)
	assert.Equal(t, "FAC-1756400000", root.SelectAttrValue("numero", ""))
	assert.Equal(t, "2026-08-28", root.SelectAttrValue("fecha", ""))

	assert.Equal(t, "María Pérez", root.FindElement("Cliente/Nombre").Text())

	lineas := root.FindElements("Lineas/Linea")
	require.Len(t, lineas, 2)
	assert.Equal(t, "2", lineas[1].SelectAttrValue("numero", ""))
	assert.Equal(t, "270000.00", lineas[1].FindElement("Total").Text())

	assert.Equal(t, "1220000.00", root.FindElement("Totales/Subtotal").Text())
	assert.Equal(t, "122000.00", root.FindElement("Totales/DescuentoMonto").Text())
	assert.Equal(t, "1098000.00", root.FindElement("Totales/Total").Text())
	assert.Equal(t, "Efectivo", root.FindElement("MetodoPago").Text())
}

func TestBuild_SinDescuento(t *testing.T) {
	inv := &entity.Invoice{
		Number:        "FAC-1",
		Date:          time.Now(),
		CustomerName:  "Cliente",
		PaymentMethod: "Tarjeta",
		Items: []entity.InvoiceItem{
			{Description: "Mouse", Quantity: 1, UnitPrice: decimal.NewFromInt(45000), Total: decimal.NewFromInt(45000)},
		},
		Subtotal: decimal.NewFromInt(45000),
		Total:    decimal.NewFromInt(45000),
	}

	raw, err := ublxml.NewBuilder().Build(inv)
	require.NoError(t, err)

	doc := etree.NewDocument()
	require.NoError(t, doc.ReadFromBytes(raw))
	assert.Nil(t, doc.Root().FindElement("Totales/DescuentoPorcentaje"),
		"sin descuento no se emiten los nodos de descuento")
	assert.Nil(t, doc.Root().FindElement("Notas"))
}

func TestBuild_FacturaNil(t *testing.T) {
	_, err := ublxml.NewBuilder().Build(nil)
	assert.Error(t, err)
}
