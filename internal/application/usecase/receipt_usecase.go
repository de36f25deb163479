package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/inventario-kiosco/internal/application/dto"
	"github.com/jhoicas/inventario-kiosco/internal/domain"
)

// ReceiptUseCase genera recibos a partir de lo que digitó el usuario.
// Es presentación pura: no consulta ni escribe la base de datos, y el
// precio puede diferir del precio vigente del producto.
type ReceiptUseCase struct {
	pdf ReceiptPDFGenerator
}

// NewReceiptUseCase construye el caso de uso. pdf puede ser nil si solo se
// necesita el recibo en texto.
func NewReceiptUseCase(pdf ReceiptPDFGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{pdf: pdf}
}

// Build calcula total_amount = quantity × selling_price y arma el recibo en
// texto con la marca de tiempo de emisión.
func (uc *ReceiptUseCase) Build(in dto.ReceiptRequest) (*dto.ReceiptResponse, error) {
	if in.SKU == "" || in.Quantity <= 0 || in.SellingPrice.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	issuedAt := time.Now()
	total := in.SellingPrice.Mul(decimal.NewFromInt(in.Quantity))

	var b strings.Builder
	b.WriteString("Recibo\n")
	fmt.Fprintf(&b, "Fecha: %s\n", issuedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "SKU: %s\n", in.SKU)
	fmt.Fprintf(&b, "Cantidad: %d\n", in.Quantity)
	fmt.Fprintf(&b, "Precio unitario: $%s\n", in.SellingPrice.StringFixed(2))
	fmt.Fprintf(&b, "Total: $%s\n", total.StringFixed(2))

	return &dto.ReceiptResponse{
		SKU:          in.SKU,
		Quantity:     in.Quantity,
		SellingPrice: in.SellingPrice,
		TotalAmount:  total,
		IssuedAt:     issuedAt,
		Text:         b.String(),
	}, nil
}

// BuildPDF genera el recibo y su rendición PDF.
func (uc *ReceiptUseCase) BuildPDF(ctx context.Context, in dto.ReceiptRequest) (*dto.ReceiptResponse, []byte, error) {
	receipt, err := uc.Build(in)
	if err != nil {
		return nil, nil, err
	}
	if uc.pdf == nil {
		return receipt, nil, fmt.Errorf("generador PDF no configurado")
	}
	raw, err := uc.pdf.GenerateReceiptPDF(ctx, receipt)
	if err != nil {
		return nil, nil, fmt.Errorf("generar PDF del recibo: %w", err)
	}
	return receipt, raw, nil
}
