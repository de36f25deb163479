package usecase

import (
	"context"

	"github.com/jhoicas/inventario-kiosco/internal/application/dto"
	"github.com/jhoicas/inventario-kiosco/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la venta (insert en el libro +
// decremento de stock) se aplique completa o no se aplique.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		saleRepo repository.SaleRepository,
	) error) error
}

// ReceiptPDFGenerator genera la representación PDF de un recibo.
type ReceiptPDFGenerator interface {
	GenerateReceiptPDF(ctx context.Context, receipt *dto.ReceiptResponse) ([]byte, error)
}
