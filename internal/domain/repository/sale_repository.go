package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/inventario-kiosco/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para el libro de ventas.
// El libro es append-only: no hay Update ni Delete.
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	// TotalProfit suma total_profit de todas las ventas; cero si no hay ninguna.
	TotalProfit(ctx context.Context) (decimal.Decimal, error)
}
