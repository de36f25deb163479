package pdf_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/inventario-kiosco/internal/application/dto"
	"github.com/jhoicas/inventario-kiosco/internal/infrastructure/pdf"
)

func TestGenerateReceiptPDF_ProduceDocumento(t *testing.T) {
	g := pdf.NewMarotoReceiptGenerator()

	raw, err := g.GenerateReceiptPDF(context.Background(), &dto.ReceiptResponse{
		SKU:          "SKU1",
		Quantity:     3,
		SellingPrice: decimal.RequireFromString("5.00"),
		TotalAmount:  decimal.RequireFromString("15.00"),
		IssuedAt:     time.Date(2025, 11, 29, 10, 30, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	require.Greater(t, len(raw), 4)
	// Cabecera estándar de todo PDF
	assert.Equal(t, "%PDF", string(raw[:4]))
}
