package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale es un registro del libro de ventas: append-only, nunca se actualiza
// ni se borra. SKU referencia al producto por clave sin constraint duro
// (la venta puede sobrevivir al producto). TotalProfit se calcula al momento
// de la venta y se guarda; no se recalcula después.
type Sale struct {
	ID          string
	SKU         string
	Quantity    int64
	SalePrice   decimal.Decimal // precio unitario al momento de la venta
	TotalProfit decimal.Decimal // (selling_price - cost_price) × quantity
	Date        time.Time       // fecha calendario de la transacción
}
