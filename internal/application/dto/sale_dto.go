package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecordSaleRequest entrada para registrar una venta.
type RecordSaleRequest struct {
	SKU      string `json:"sku" validate:"required,min=1,max=100"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
}

// SaleResponse salida de una venta registrada.
type SaleResponse struct {
	ID          string          `json:"id"`
	SKU         string          `json:"sku"`
	Quantity    int64           `json:"quantity"`
	SalePrice   decimal.Decimal `json:"sale_price"`
	TotalProfit decimal.Decimal `json:"total_profit"`
	Date        time.Time       `json:"date"`
	// Stock restante del producto después de la venta.
	RemainingStock int64 `json:"remaining_stock"`
}

// RefundRequest entrada para procesar una devolución. No se exige que la
// cantidad corresponda a una venta previa (política permisiva del negocio).
type RefundRequest struct {
	SKU      string `json:"sku" validate:"required,min=1,max=100"`
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
}

// RefundResponse salida de una devolución procesada.
type RefundResponse struct {
	SKU      string `json:"sku"`
	Quantity int64  `json:"quantity"`
	// Stock del producto después de reponer la cantidad.
	NewStock int64 `json:"new_stock"`
}

// TotalProfitResponse utilidad acumulada del libro de ventas.
type TotalProfitResponse struct {
	TotalProfit decimal.Decimal `json:"total_profit"`
}
