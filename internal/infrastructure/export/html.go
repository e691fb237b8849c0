package export

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/techstore/inventario-api/internal/application/inventory"
	"github.com/techstore/inventario-api/internal/domain/entity"
)

// summaryItem par etiqueta/valor del bloque de resumen del reporte.
type summaryItem struct {
	Label string
	Value string
}

// reportBuilder arma el documento HTML autocontenido de los reportes:
// cabecera, resumen en grilla, tabla de datos y pie.
type reportBuilder struct {
	sections []string
}

func (b *reportBuilder) addHeader(title string) {
	now := time.Now()
	b.sections = append(b.sections, fmt.Sprintf(`
    <div class="header">
      <h1>%s</h1>
      <div class="system-info">
        <h2>Sistema de Inventario TechStore</h2>
        <p>Generado el %s a las %s</p>
      </div>
    </div>`,
		html.EscapeString(title),
		now.Format("02/01/2006"),
		now.Format("15:04:05"),
	))
}

func (b *reportBuilder) addSummary(items []summaryItem) {
	var s strings.Builder
	s.WriteString(`<div class="summary"><h3>Resumen</h3><div class="summary-grid">`)
	for _, it := range items {
		fmt.Fprintf(&s, `
      <div class="summary-item">
        <span class="summary-label">%s:</span>
        <span class="summary-value">%s</span>
      </div>`,
			html.EscapeString(it.Label), html.EscapeString(it.Value))
	}
	s.WriteString(`</div></div>`)
	b.sections = append(b.sections, s.String())
}

func (b *reportBuilder) addTable(headers []string, rows [][]string) {
	var s strings.Builder
	s.WriteString(`<div class="table-container"><table><thead><tr>`)
	for _, h := range headers {
		s.WriteString("<th>" + html.EscapeString(h) + "</th>")
	}
	s.WriteString(`</tr></thead><tbody>`)
	for _, row := range rows {
		s.WriteString("<tr>")
		for _, cell := range row {
			s.WriteString("<td>" + html.EscapeString(cell) + "</td>")
		}
		s.WriteString("</tr>")
	}
	s.WriteString(`</tbody></table></div>`)
	b.sections = append(b.sections, s.String())
}

func (b *reportBuilder) addFooter() {
	b.sections = append(b.sections, fmt.Sprintf(`
    <div class="footer">
      <p>Generado por Sistema de Inventario TechStore</p>
      <p>%s</p>
    </div>`, time.Now().Format("02/01/2006")))
}

const reportStyle = `
    * { box-sizing: border-box; }
    body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; margin: 0; padding: 20px; background-color: #f8f9fa; color: #333; }
    .header { text-align: center; margin-bottom: 30px; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 20px; border-radius: 10px; }
    .header h1 { margin: 0 0 10px 0; font-size: 2.5em; font-weight: 300; }
    .system-info h2 { margin: 10px 0 5px 0; font-size: 1.2em; font-weight: 400; }
    .system-info p { margin: 5px 0; opacity: 0.9; }
    .summary { background: white; padding: 20px; margin: 20px 0; border-radius: 8px; }
    .summary h3 { margin: 0 0 15px 0; color: #495057; border-bottom: 2px solid #e9ecef; padding-bottom: 10px; }
    .summary-grid { display: grid; grid-template-columns: repeat(auto-fit, minmax(250px, 1fr)); gap: 15px; }
    .summary-item { display: flex; justify-content: space-between; padding: 10px; background: #f8f9fa; border-radius: 5px; border-left: 4px solid #667eea; }
    .summary-label { font-weight: 600; color: #495057; }
    .summary-value { font-weight: 700; color: #667eea; }
    .table-container { background: white; border-radius: 8px; overflow: hidden; margin: 20px 0; }
    table { width: 100%; border-collapse: collapse; }
    th, td { padding: 12px 15px; text-align: left; border-bottom: 1px solid #e9ecef; }
    th { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; font-weight: 600; text-transform: uppercase; font-size: 0.85em; }
    tr:nth-child(even) { background-color: #fafbfc; }
    .footer { text-align: center; margin-top: 40px; padding: 20px; background: #343a40; color: white; border-radius: 8px; font-size: 0.9em; }
    @media print { body { background-color: white; } }
`

func (b *reportBuilder) build() string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="es">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Reporte - TechStore</title>
  <style>%s</style>
</head>
<body>%s</body>
</html>`, reportStyle, strings.Join(b.sections, ""))
}

// InventoryReportHTML arma el reporte de inventario con resumen de totales y
// una fila por producto.
func InventoryReportHTML(products []*entity.Product) string {
	totalValue := decimal.Zero
	lowStock := 0
	for _, p := range products {
		totalValue = totalValue.Add(p.TotalValue())
		if p.Quantity <= p.MinStock {
			lowStock++
		}
	}

	b := &reportBuilder{}
	b.addHeader("Reporte de Inventario")
	b.addSummary([]summaryItem{
		{"Total Productos", strconv.Itoa(len(products))},
		{"Valor Total", formatMoney(totalValue)},
		{"Productos con Stock Bajo", strconv.Itoa(lowStock)},
		{"Fecha", time.Now().Format("02/01/2006")},
	})

	rows := make([][]string, 0, len(products))
	for _, p := range products {
		status := "Normal"
		if p.Quantity <= p.MinStock {
			status = "Stock Bajo"
		}
		rows = append(rows, []string{
			p.Code,
			p.Name,
			p.Category,
			strconv.Itoa(p.Quantity),
			formatMoney(p.Price),
			formatMoney(p.TotalValue()),
			status,
		})
	}
	b.addTable([]string{"Código", "Nombre", "Categoría", "Stock", "Precio", "Valor Total", "Estado"}, rows)
	b.addFooter()
	return b.build()
}

// MovementsReportHTML arma el reporte de movimientos con conteos por tipo.
func MovementsReportHTML(movements []*entity.Movement, products []*entity.Product) string {
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	entradas, salidas := 0, 0
	totalValue := decimal.Zero
	for _, m := range movements {
		if m.Type == entity.MovementEntrada {
			entradas++
		} else {
			salidas++
		}
		totalValue = totalValue.Add(m.TotalValue)
	}

	b := &reportBuilder{}
	b.addHeader("Reporte de Movimientos de Inventario")
	b.addSummary([]summaryItem{
		{"Total Movimientos", strconv.Itoa(len(movements))},
		{"Entradas", strconv.Itoa(entradas)},
		{"Salidas", strconv.Itoa(salidas)},
		{"Valor Total", formatMoney(totalValue)},
	})

	rows := make([][]string, 0, len(movements))
	for _, m := range movements {
		productName := "Producto eliminado"
		productCode := "N/A"
		if p, ok := byID[m.ProductID]; ok {
			productName = p.Name
			productCode = p.Code
		}
		rows = append(rows, []string{
			m.Date.Format("02/01/2006"),
			productName,
			productCode,
			movementTypeLabel(m.Type),
			strconv.Itoa(m.Quantity),
			m.Reason,
			formatMoney(m.TotalValue),
		})
	}
	b.addTable([]string{"Fecha", "Producto", "Código", "Tipo", "Cantidad", "Motivo", "Valor"}, rows)
	b.addFooter()
	return b.build()
}

// CategoriesReportHTML arma el reporte agregado por categoría.
func CategoriesReportHTML(summaries []inventory.CategorySummary) string {
	totalProducts := 0
	totalValue := decimal.Zero
	for _, s := range summaries {
		totalProducts += s.ProductCount
		totalValue = totalValue.Add(s.TotalValue)
	}

	b := &reportBuilder{}
	b.addHeader("Reporte por Categorías")
	b.addSummary([]summaryItem{
		{"Total Categorías", strconv.Itoa(len(summaries))},
		{"Total Productos", strconv.Itoa(totalProducts)},
		{"Valor Total", formatMoney(totalValue)},
		{"Fecha", time.Now().Format("02/01/2006")},
	})

	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Name,
			strconv.Itoa(s.ProductCount),
			strconv.Itoa(s.TotalQuantity),
			formatMoney(s.TotalValue),
			s.MarginPercent.Round(1).String() + "%",
		})
	}
	b.addTable([]string{"Categoría", "Productos", "Cantidad Total", "Valor Total", "Margen %"}, rows)
	b.addFooter()
	return b.build()
}
