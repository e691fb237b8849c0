package export

import (
	"fmt"
	"html"
	"strconv"
	"strings"

	"github.com/techstore/inventario-api/internal/domain/entity"
)

const invoiceStyle = `
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 30px; color: #333; }
    .invoice-header { display: flex; justify-content: space-between; border-bottom: 3px solid #667eea; padding-bottom: 15px; margin-bottom: 25px; }
    .invoice-header h1 { margin: 0; color: #667eea; }
    .invoice-meta { text-align: right; }
    .invoice-meta p { margin: 3px 0; }
    .customer { background: #f8f9fa; padding: 15px; border-radius: 8px; margin-bottom: 25px; }
    .customer h3 { margin: 0 0 10px 0; color: #495057; }
    .customer p { margin: 3px 0; }
    table { width: 100%; border-collapse: collapse; margin-bottom: 25px; }
    th, td { padding: 10px 12px; text-align: left; border-bottom: 1px solid #e9ecef; }
    th { background: #667eea; color: white; }
    td.number, th.number { text-align: right; }
    .totals { width: 300px; margin-left: auto; }
    .totals div { display: flex; justify-content: space-between; padding: 6px 0; }
    .totals .grand { border-top: 2px solid #667eea; font-weight: 700; font-size: 1.2em; }
    .payment { margin-top: 25px; }
    .notes { margin-top: 15px; background: #f8f9fa; padding: 12px; border-radius: 8px; }
    .footer { margin-top: 40px; text-align: center; color: #868e96; font-size: 0.9em; }
    @media print { body { padding: 0; } }
`

// InvoiceHTML arma el documento de factura autocontenido para descarga o
// impresión: bloque de cliente, líneas, subtotal, descuento y total.
func InvoiceHTML(inv *entity.Invoice) string {
	var items strings.Builder
	for _, it := range inv.Items {
		fmt.Fprintf(&items, `
        <tr>
          <td>%s</td>
          <td class="number">%s</td>
          <td class="number">%s</td>
          <td class="number">%s</td>
        </tr>`,
			html.EscapeString(it.Description),
			strconv.Itoa(it.Quantity),
			formatMoney(it.UnitPrice),
			formatMoney(it.Total),
		)
	}

	var customer strings.Builder
	fmt.Fprintf(&customer, "<p><strong>%s</strong></p>", html.EscapeString(inv.CustomerName))
	if inv.CustomerDoc != "" {
		fmt.Fprintf(&customer, "<p>Documento: %s</p>", html.EscapeString(inv.CustomerDoc))
	}
	if inv.CustomerPhone != "" {
		fmt.Fprintf(&customer, "<p>Teléfono: %s</p>", html.EscapeString(inv.CustomerPhone))
	}
	if inv.CustomerAddress != "" {
		fmt.Fprintf(&customer, "<p>Dirección: %s</p>", html.EscapeString(inv.CustomerAddress))
	}

	discountRow := ""
	if !inv.DiscountPercent.IsZero() {
		discountRow = fmt.Sprintf(`<div><span>Descuento (%s%%)</span><span>-%s</span></div>`,
			inv.DiscountPercent.String(), formatMoney(inv.DiscountAmount))
	}

	notesBlock := ""
	if inv.Notes != "" {
		notesBlock = fmt.Sprintf(`<div class="notes"><strong>Notas:</strong> %s</div>`, html.EscapeString(inv.Notes))
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <title>Factura %[1]s</title>
  <style>%[2]s</style>
</head>
<body>
  <div class="invoice-header">
    <div>
      <h1>TechStore</h1>
      <p>Sistema de Inventario Tecnológico</p>
    </div>
    <div class="invoice-meta">
      <h2>Factura %[1]s</h2>
      <p>Fecha: %[3]s</p>
    </div>
  </div>
  <div class="customer">
    <h3>Cliente</h3>
    %[4]s
  </div>
  <table>
    <thead>
      <tr><th>Descripción</th><th class="number">Cantidad</th><th class="number">Precio Unitario</th><th class="number">Total</th></tr>
    </thead>
    <tbody>%[5]s</tbody>
  </table>
  <div class="totals">
    <div><span>Subtotal</span><span>%[6]s</span></div>
    %[7]s
    <div class="grand"><span>Total</span><span>%[8]s</span></div>
  </div>
  <div class="payment"><strong>Método de pago:</strong> %[9]s</div>
  %[10]s
  <div class="footer">
    <p>Gracias por su compra</p>
    <p>Documento generado por Sistema de Inventario TechStore</p>
  </div>
</body>
</html>`,
		html.EscapeString(inv.Number),
		invoiceStyle,
		inv.Date.Format("02/01/2006"),
		customer.String(),
		items.String(),
		formatMoney(inv.Subtotal),
		discountRow,
		formatMoney(inv.Total),
		html.EscapeString(inv.PaymentMethod),
		notesBlock,
	)
}
