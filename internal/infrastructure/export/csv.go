package export

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/techstore/inventario-api/internal/application/inventory"
	"github.com/techstore/inventario-api/internal/domain/entity"
)

// utf8BOM hace que las planillas legadas detecten UTF-8 al abrir el archivo.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// buildCSV arma el documento completo: BOM + cabecera + una fila por registro,
// campos separados por punto y coma y filas por CRLF. Cabeceras y valores van
// plegados a ASCII y saneados.
func buildCSV(headers []string, rows [][]string) []byte {
	var b strings.Builder
	for i, h := range headers {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(sanitizeField(h))
	}
	for _, row := range rows {
		b.WriteString("\r\n")
		for i, field := range row {
			if i > 0 {
				b.WriteByte(';')
			}
			b.WriteString(sanitizeField(field))
		}
	}
	out := make([]byte, 0, len(utf8BOM)+b.Len())
	out = append(out, utf8BOM...)
	out = append(out, b.String()...)
	return out
}

// InventoryCSV exporta el catálogo con sus derivados por producto.
func InventoryCSV(products []*entity.Product) []byte {
	headers := []string{
		"Codigo", "Nombre", "Categoria", "Descripcion", "Costo Unitario",
		"Precio Venta", "Stock Actual", "Stock Minimo", "Valor Total",
		"Margen Unitario", "Margen Porcentaje",
	}
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.Code,
			p.Name,
			p.Category,
			p.Description,
			p.Cost.String(),
			p.Price.String(),
			strconv.Itoa(p.Quantity),
			strconv.Itoa(p.MinStock),
			p.TotalValue().String(),
			p.Price.Sub(p.Cost).String(),
			p.MarginPercent().Round(1).String(),
		})
	}
	return buildCSV(headers, rows)
}

// MovementsCSV exporta el historial de movimientos con el producto resuelto.
// Los movimientos de productos ya eliminados se exportan igual, marcados.
func MovementsCSV(movements []*entity.Movement, products []*entity.Product) []byte {
	byID := make(map[string]*entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	headers := []string{
		"Fecha", "Tipo", "Producto", "Codigo", "Cantidad", "Motivo",
		"Stock Anterior", "Stock Nuevo", "Valor",
	}
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
			movementTypeLabel(m.Type),
			productName,
			productCode,
			strconv.Itoa(m.Quantity),
			m.Reason,
			strconv.Itoa(m.PreviousQuantity),
			strconv.Itoa(m.NewQuantity),
			m.TotalValue.String(),
		})
	}
	return buildCSV(headers, rows)
}

// CategoriesCSV exporta el agregado por categoría.
func CategoriesCSV(summaries []inventory.CategorySummary) []byte {
	headers := []string{
		"Nombre", "Productos", "Cantidad Total", "Valor Total", "Costo Total", "Margen Porcentaje",
	}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			s.Name,
			strconv.Itoa(s.ProductCount),
			strconv.Itoa(s.TotalQuantity),
			s.TotalValue.String(),
			s.TotalCost.String(),
			s.MarginPercent.Round(1).String(),
		})
	}
	return buildCSV(headers, rows)
}

func movementTypeLabel(t string) string {
	if t == entity.MovementEntrada {
		return "Entrada"
	}
	return "Salida"
}

// formatMoney imprime un monto con separador de miles y símbolo de pesos,
// como lo muestran los reportes ($1.234.567).
func formatMoney(d decimal.Decimal) string {
	s := d.Round(0).String()
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-$" + b.String()
	}
	return "$" + b.String()
}
