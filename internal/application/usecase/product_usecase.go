package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/inventario-kiosco/internal/application/dto"
	"github.com/jhoicas/inventario-kiosco/internal/domain"
	"github.com/jhoicas/inventario-kiosco/internal/domain/entity"
	"github.com/jhoicas/inventario-kiosco/internal/domain/repository"
)

// ProductUseCase ciclo de vida de productos: alta, baja y listados.
// El stock no se modifica por aquí; eso lo hacen ventas y devoluciones.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Add crea un nuevo producto. Falla con ErrDuplicateSKU si el SKU ya existe.
func (uc *ProductUseCase) Add(ctx context.Context, in dto.AddProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" || in.Quantity < 0 {
		return nil, domain.ErrInvalidInput
	}
	if in.CostPrice.IsNegative() || in.SellingPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.repo.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateSKU
	}
	now := time.Now()
	product := &entity.Product{
		ID:           uuid.New().String(),
		SKU:          in.SKU,
		Name:         in.Name,
		Quantity:     in.Quantity,
		CostPrice:    in.CostPrice,
		SellingPrice: in.SellingPrice,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// Remove elimina un producto por SKU. Si el SKU no existe no es error:
// política permisiva heredada del negocio, no "corregirla" sin decisión
// explícita del dueño del producto. Las ventas históricas del SKU quedan
// intactas en el libro.
func (uc *ProductUseCase) Remove(ctx context.Context, sku string) error {
	if sku == "" {
		return domain.ErrInvalidInput
	}
	return uc.repo.Delete(ctx, sku)
}

// List devuelve todos los productos con la utilidad proyectada sobre el
// stock actual, lista para pintar el tablero.
func (uc *ProductUseCase) List(ctx context.Context) (*dto.ProductListResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{Items: items, Total: len(items)}, nil
}

// LowStock lista los productos con quantity <= threshold (límite inclusive).
func (uc *ProductUseCase) LowStock(ctx context.Context, threshold int64) (*dto.LowStockResponse, error) {
	if threshold < 0 {
		return nil, domain.ErrInvalidInput
	}
	list, err := uc.repo.ListLowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}
	items := make([]dto.LowStockItem, 0, len(list))
	for _, p := range list {
		items = append(items, dto.LowStockItem{SKU: p.SKU, Name: p.Name, Quantity: p.Quantity})
	}
	return &dto.LowStockResponse{Threshold: threshold, Items: items}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:              p.ID,
		SKU:             p.SKU,
		Name:            p.Name,
		Quantity:        p.Quantity,
		CostPrice:       p.CostPrice,
		SellingPrice:    p.SellingPrice,
		ProjectedProfit: p.ProjectedProfit(),
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
