package repository

import (
	"context"

	"github.com/jhoicas/inventario-kiosco/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetBySKU devuelve (nil, nil) cuando el SKU no existe.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)
	// GetBySKUForUpdate bloquea la fila del producto (SELECT FOR UPDATE);
	// solo tiene sentido dentro de una transacción.
	GetBySKUForUpdate(ctx context.Context, sku string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	ListLowStock(ctx context.Context, threshold int64) ([]*entity.Product, error)
	// AdjustQuantity suma delta (positivo o negativo) al stock del SKU.
	AdjustQuantity(ctx context.Context, sku string, delta int64) error
	// Delete elimina el producto si existe; no es error que no exista.
	Delete(ctx context.Context, sku string) error
}
