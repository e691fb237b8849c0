package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/techstore/inventario-api/internal/application/inventory"
	"github.com/techstore/inventario-api/internal/domain/entity"
)

// CreateMovementRequest entrada para registrar un movimiento de stock.
type CreateMovementRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Type      string `json:"type" validate:"required,oneof=entrada salida"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
	Reason    string `json:"reason" validate:"required"`
}

// MovementResponse salida de un movimiento con su snapshot de stock.
type MovementResponse struct {
	ID               string          `json:"id"`
	ProductID        string          `json:"product_id"`
	Type             string          `json:"type"`
	Quantity         int             `json:"quantity"`
	Reason           string          `json:"reason"`
	Date             time.Time       `json:"date"`
	PreviousQuantity int             `json:"previous_quantity"`
	NewQuantity      int             `json:"new_quantity"`
	TotalValue       decimal.Decimal `json:"total_value"`
}

// NewMovementResponse mapea la entidad a su representación HTTP.
func NewMovementResponse(m *entity.Movement) MovementResponse {
	return MovementResponse{
		ID:               m.ID,
		ProductID:        m.ProductID,
		Type:             m.Type,
		Quantity:         m.Quantity,
		Reason:           m.Reason,
		Date:             m.Date,
		PreviousQuantity: m.PreviousQuantity,
		NewQuantity:      m.NewQuantity,
		TotalValue:       m.TotalValue,
	}
}

// NewMovementListResponse mapea una lista de movimientos.
func NewMovementListResponse(movements []*entity.Movement) []MovementResponse {
	out := make([]MovementResponse, 0, len(movements))
	for _, m := range movements {
		out = append(out, NewMovementResponse(m))
	}
	return out
}

// StockAlertResponse alerta de stock bajo.
type StockAlertResponse struct {
	Product      ProductResponse `json:"product"`
	CurrentStock int             `json:"current_stock"`
	MinStock     int             `json:"min_stock"`
	Difference   int             `json:"difference"`
}

// NewStockAlertListResponse mapea las alertas derivadas.
func NewStockAlertListResponse(alerts []entity.StockAlert) []StockAlertResponse {
	out := make([]StockAlertResponse, 0, len(alerts))
	for _, a := range alerts {
		out = append(out, StockAlertResponse{
			Product:      NewProductResponse(&a.Product),
			CurrentStock: a.CurrentStock,
			MinStock:     a.MinStock,
			Difference:   a.Difference,
		})
	}
	return out
}

// PriceHistoryResponse renglón del historial de precios.
type PriceHistoryResponse struct {
	ID            string          `json:"id"`
	ProductID     string          `json:"product_id"`
	PreviousPrice decimal.Decimal `json:"previous_price"`
	NewPrice      decimal.Decimal `json:"new_price"`
	Date          time.Time       `json:"date"`
	Reason        string          `json:"reason"`
}

// NewPriceHistoryListResponse mapea el historial de precios.
func NewPriceHistoryListResponse(history []*entity.PriceHistory) []PriceHistoryResponse {
	out := make([]PriceHistoryResponse, 0, len(history))
	for _, h := range history {
		out = append(out, PriceHistoryResponse{
			ID:            h.ID,
			ProductID:     h.ProductID,
			PreviousPrice: h.PreviousPrice,
			NewPrice:      h.NewPrice,
			Date:          h.Date,
			Reason:        h.Reason,
		})
	}
	return out
}

// BulkPriceUpdateRequest ajuste porcentual de precios por categoría.
type BulkPriceUpdateRequest struct {
	Category string  `json:"category" validate:"required"`
	Percent  float64 `json:"percent"`
}

// BulkPriceUpdateResponse resultado del ajuste masivo.
type BulkPriceUpdateResponse struct {
	Category string `json:"category"`
	Updated  int    `json:"updated"`
}

// CategorySummaryResponse agregado por categoría.
type CategorySummaryResponse struct {
	Name          string          `json:"name"`
	ProductCount  int             `json:"product_count"`
	TotalQuantity int             `json:"total_quantity"`
	TotalValue    decimal.Decimal `json:"total_value"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	MarginPercent decimal.Decimal `json:"margin_percent"`
}

// InventorySummaryResponse resumen global del inventario.
type InventorySummaryResponse struct {
	ProductCount  int                       `json:"product_count"`
	TotalValue    decimal.Decimal           `json:"total_value"`
	TotalCost     decimal.Decimal           `json:"total_cost"`
	LowStockCount int                       `json:"low_stock_count"`
	Categories    []CategorySummaryResponse `json:"categories"`
}

// NewCategorySummaryListResponse mapea los agregados por categoría.
func NewCategorySummaryListResponse(summaries []inventory.CategorySummary) []CategorySummaryResponse {
	out := make([]CategorySummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		out = append(out, CategorySummaryResponse{
			Name:          s.Name,
			ProductCount:  s.ProductCount,
			TotalQuantity: s.TotalQuantity,
			TotalValue:    s.TotalValue,
			TotalCost:     s.TotalCost,
			MarginPercent: s.MarginPercent,
		})
	}
	return out
}

// StatusResponse estado de conectividad del inventario.
type StatusResponse struct {
	Status    string `json:"status"` // connecting | connected | error | offline
	Message   string `json:"message,omitempty"`
	ErrorType string `json:"error_type,omitempty"`
}
