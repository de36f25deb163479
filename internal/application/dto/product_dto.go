package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// AddProductRequest entrada para crear un producto.
type AddProductRequest struct {
	SKU          string          `json:"sku" validate:"required,min=1,max=100"`
	Name         string          `json:"name" validate:"required,min=1,max=200"`
	Quantity     int64           `json:"quantity" validate:"min=0"`
	CostPrice    decimal.Decimal `json:"cost_price"`
	SellingPrice decimal.Decimal `json:"selling_price"`
}

// ProductResponse salida de un producto. ProjectedProfit es
// (selling_price - cost_price) × quantity calculado al momento de leer.
type ProductResponse struct {
	ID              string          `json:"id"`
	SKU             string          `json:"sku"`
	Name            string          `json:"name"`
	Quantity        int64           `json:"quantity"`
	CostPrice       decimal.Decimal `json:"cost_price"`
	SellingPrice    decimal.Decimal `json:"selling_price"`
	ProjectedProfit decimal.Decimal `json:"projected_profit"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ProductListResponse lista de productos para el tablero.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// LowStockItem producto en o bajo el umbral de stock.
type LowStockItem struct {
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// LowStockResponse reporte de stock bajo.
type LowStockResponse struct {
	Threshold int64          `json:"threshold"`
	Items     []LowStockItem `json:"items"`
}
