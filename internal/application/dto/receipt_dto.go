package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptRequest entrada para generar un recibo. No toca la base de datos:
// la cantidad y el precio vienen tal cual los digitó el usuario.
type ReceiptRequest struct {
	SKU          string          `json:"sku" validate:"required,min=1,max=100"`
	Quantity     int64           `json:"quantity" validate:"required,gt=0"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

// ReceiptResponse recibo generado: total = quantity × selling_price.
type ReceiptResponse struct {
	SKU          string          `json:"sku"`
	Quantity     int64           `json:"quantity"`
	SellingPrice decimal.Decimal `json:"selling_price"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	IssuedAt     time.Time       `json:"issued_at"`
	Text         string          `json:"text"`
}
