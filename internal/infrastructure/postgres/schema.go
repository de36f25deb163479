package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// EnsureSchema crea las tablas products y sales si no existen. Idempotente:
// se ejecuta en cada arranque. sales no lleva FK hacia products a propósito
// (una venta puede referenciar un SKU borrado después).
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS products (
			id            UUID PRIMARY KEY,
			sku           TEXT NOT NULL UNIQUE,
			name          TEXT NOT NULL,
			quantity      BIGINT NOT NULL DEFAULT 0 CHECK (quantity >= 0),
			cost_price    NUMERIC(14,2) NOT NULL DEFAULT 0,
			selling_price NUMERIC(14,2) NOT NULL DEFAULT 0,
			created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS sales (
			id           UUID PRIMARY KEY,
			sku          TEXT NOT NULL,
			quantity     BIGINT NOT NULL,
			sale_price   NUMERIC(14,2) NOT NULL,
			total_profit NUMERIC(14,2) NOT NULL,
			date         DATE NOT NULL DEFAULT CURRENT_DATE
		)`,
	}
	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
