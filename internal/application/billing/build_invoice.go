package billing

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/techstore/inventario-api/internal/application/dto"
	"github.com/techstore/inventario-api/internal/domain"
	"github.com/techstore/inventario-api/internal/domain/entity"
)

// BuildInvoice valida la solicitud y calcula la factura completa: totales por
// línea, subtotal, descuento porcentual y total. El número se genera con el
// prefijo FAC y el timestamp Unix de emisión. El documento resultante se
// entrega al llamador para renderizar; nunca se transmite a un sistema externo.
func BuildInvoice(in dto.CreateInvoiceRequest) (*entity.Invoice, error) {
	if strings.TrimSpace(in.CustomerName) == "" {
		return nil, fmt.Errorf("%w: el nombre del cliente es obligatorio", domain.ErrInvalidInput)
	}
	if len(in.Items) == 0 {
		return nil, fmt.Errorf("%w: la factura necesita al menos una línea", domain.ErrInvalidInput)
	}
	if strings.TrimSpace(in.PaymentMethod) == "" {
		return nil, fmt.Errorf("%w: el método de pago es obligatorio", domain.ErrInvalidInput)
	}
	if in.DiscountPercent.IsNegative() || in.DiscountPercent.GreaterThan(decimal.NewFromInt(100)) {
		return nil, fmt.Errorf("%w: el descuento debe estar entre 0 y 100", domain.ErrInvalidInput)
	}

	now := time.Now()
	items := make([]entity.InvoiceItem, 0, len(in.Items))
	subtotal := decimal.Zero
	for i, it := range in.Items {
		if strings.TrimSpace(it.Description) == "" {
			return nil, fmt.Errorf("%w: la línea %d no tiene descripción", domain.ErrInvalidInput, i+1)
		}
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: la línea %d tiene cantidad no positiva", domain.ErrInvalidInput, i+1)
		}
		if it.UnitPrice.IsNegative() {
			return nil, fmt.Errorf("%w: la línea %d tiene precio negativo", domain.ErrInvalidInput, i+1)
		}
		total := it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity)))
		items = append(items, entity.InvoiceItem{
			Description: strings.TrimSpace(it.Description),
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			Total:       total,
		})
		subtotal = subtotal.Add(total)
	}

	discountAmount := subtotal.Mul(in.DiscountPercent).Div(decimal.NewFromInt(100))

	return &entity.Invoice{
		Number:          fmt.Sprintf("FAC-%d", now.Unix()),
		Date:            now,
		CustomerName:    strings.TrimSpace(in.CustomerName),
		CustomerDoc:     strings.TrimSpace(in.CustomerDoc),
		CustomerPhone:   strings.TrimSpace(in.CustomerPhone),
		CustomerAddress: strings.TrimSpace(in.CustomerAddress),
		Items:           items,
		Subtotal:        subtotal,
		DiscountPercent: in.DiscountPercent,
		DiscountAmount:  discountAmount,
		Total:           subtotal.Sub(discountAmount),
		PaymentMethod:   strings.TrimSpace(in.PaymentMethod),
		Notes:           strings.TrimSpace(in.Notes),
	}, nil
}
