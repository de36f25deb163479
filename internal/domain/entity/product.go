package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del inventario identificado por SKU.
// Quantity es el stock disponible; nunca baja de cero (una venta que lo
// dejaría negativo se rechaza completa).
type Product struct {
	ID           string
	SKU          string // código único, inmutable una vez creado
	Name         string
	Quantity     int64
	CostPrice    decimal.Decimal // costo unitario de adquisición
	SellingPrice decimal.Decimal // precio unitario de venta
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProjectedProfit calcula (selling_price - cost_price) × quantity sobre el
// stock actual. Es una proyección para el tablero, distinta de la utilidad
// por transacción que guarda el libro de ventas.
func (p *Product) ProjectedProfit() decimal.Decimal {
	return p.SellingPrice.Sub(p.CostPrice).Mul(decimal.NewFromInt(p.Quantity))
}
