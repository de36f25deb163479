package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/inventario-kiosco/internal/application/dto"
	"github.com/jhoicas/inventario-kiosco/internal/domain"
	"github.com/jhoicas/inventario-kiosco/internal/domain/entity"
	"github.com/jhoicas/inventario-kiosco/internal/domain/repository"
)

// SalesUseCase registra ventas y devoluciones contra el inventario.
// Una venta son dos escrituras (insert en el libro + decremento de stock)
// que van juntas en una transacción: si algo falla a mitad de camino,
// ninguna queda visible.
type SalesUseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
}

// NewSalesUseCase construye el caso de uso.
func NewSalesUseCase(txRunner TxRunner, productRepo repository.ProductRepository) *SalesUseCase {
	return &SalesUseCase{txRunner: txRunner, productRepo: productRepo}
}

// RecordSale registra una venta. Dentro de la transacción bloquea la fila
// del producto (SELECT FOR UPDATE), valida stock, calcula
// total_profit = (selling_price - cost_price) × quantity con el precio
// vigente, inserta la venta con la fecha de hoy y descuenta el stock.
// Errores terminales: ErrUnknownSKU, ErrInsufficientStock, ErrInvalidInput.
func (uc *SalesUseCase) RecordSale(ctx context.Context, in dto.RecordSaleRequest) (*dto.SaleResponse, error) {
	if in.SKU == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	var out *dto.SaleResponse
	err := uc.txRunner.Run(ctx, func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error {
		product, err := productRepo.GetBySKUForUpdate(ctx, in.SKU)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrUnknownSKU
		}
		if in.Quantity > product.Quantity {
			return domain.ErrInsufficientStock
		}

		sale := &entity.Sale{
			ID:          uuid.New().String(),
			SKU:         product.SKU,
			Quantity:    in.Quantity,
			SalePrice:   product.SellingPrice,
			TotalProfit: product.SellingPrice.Sub(product.CostPrice).Mul(decimal.NewFromInt(in.Quantity)),
			Date:        time.Now(),
		}
		if err := saleRepo.Create(ctx, sale); err != nil {
			return err
		}
		if err := productRepo.AdjustQuantity(ctx, product.SKU, -in.Quantity); err != nil {
			return err
		}

		out = &dto.SaleResponse{
			ID:             sale.ID,
			SKU:            sale.SKU,
			Quantity:       sale.Quantity,
			SalePrice:      sale.SalePrice,
			TotalProfit:    sale.TotalProfit,
			Date:           sale.Date,
			RemainingStock: product.Quantity - in.Quantity,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ProcessRefund repone stock por una devolución. No toca el libro de ventas
// ni la utilidad acumulada, y no se valida contra ventas previas: la
// cantidad repuesta puede superar lo vendido (política permisiva heredada;
// acotarla por ventas acumuladas es una decisión pendiente del negocio).
func (uc *SalesUseCase) ProcessRefund(ctx context.Context, in dto.RefundRequest) (*dto.RefundResponse, error) {
	if in.SKU == "" || in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.productRepo.GetBySKU(ctx, in.SKU)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrUnknownSKU
	}
	if err := uc.productRepo.AdjustQuantity(ctx, in.SKU, in.Quantity); err != nil {
		return nil, err
	}
	return &dto.RefundResponse{
		SKU:      in.SKU,
		Quantity: in.Quantity,
		NewStock: product.Quantity + in.Quantity,
	}, nil
}
