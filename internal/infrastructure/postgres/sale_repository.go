package postgres

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/inventario-kiosco/internal/domain/entity"
	"github.com/jhoicas/inventario-kiosco/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL (usable con pool o tx).
// El libro de ventas es append-only: este adaptador no expone Update ni Delete.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador del libro de ventas. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta un registro de venta.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (id, sku, quantity, sale_price, total_profit, date)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.q.Exec(ctx, query,
		sale.ID, sale.SKU, sale.Quantity, sale.SalePrice, sale.TotalProfit, sale.Date,
	)
	if err != nil {
		return fmt.Errorf("insert sale: %w", err)
	}
	return nil
}

// TotalProfit suma total_profit de todas las ventas. COALESCE garantiza cero
// (no NULL) con el libro vacío.
func (r *SaleRepo) TotalProfit(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT COALESCE(SUM(total_profit), 0) FROM sales`).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("total profit: %w", err)
	}
	return total, nil
}
