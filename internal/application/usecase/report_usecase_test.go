package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/inventario-kiosco/internal/application/dto"
	"github.com/jhoicas/inventario-kiosco/internal/application/usecase"
)

// Con el libro de ventas vacío la utilidad acumulada es cero, nunca un valor ausente.
func TestTotalProfit_LibroVacioEsCero(t *testing.T) {
	products := newFakeProductRepo()
	sales := &fakeSaleRepo{}
	uc := usecase.NewReportUseCase(sales, usecase.NewProductUseCase(products), 5)

	out, err := uc.TotalProfit(context.Background())
	require.NoError(t, err)
	assert.True(t, out.TotalProfit.IsZero())
}

// threshold <= 0 cae al umbral configurado.
func TestLowStock_UmbralPorDefecto(t *testing.T) {
	products := newFakeProductRepo()
	productUC := usecase.NewProductUseCase(products)
	ctx := context.Background()

	for sku, qty := range map[string]int64{"A": 5, "B": 12} {
		_, err := productUC.Add(ctx, dto.AddProductRequest{
			SKU: sku, Name: "Producto " + sku, Quantity: qty,
			CostPrice: mustDecimal("1.00"), SellingPrice: mustDecimal("2.00"),
		})
		require.NoError(t, err)
	}

	uc := usecase.NewReportUseCase(&fakeSaleRepo{}, productUC, 5)
	out, err := uc.LowStock(ctx, 0)
	require.NoError(t, err)

	assert.Equal(t, int64(5), out.Threshold)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "A", out.Items[0].SKU)
}
