package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/inventario-kiosco/internal/application/dto"
	"github.com/jhoicas/inventario-kiosco/internal/application/usecase"
	"github.com/jhoicas/inventario-kiosco/internal/domain"
)

func newProductUC() (*usecase.ProductUseCase, *fakeProductRepo) {
	repo := newFakeProductRepo()
	return usecase.NewProductUseCase(repo), repo
}

func addProduct(t *testing.T, uc *usecase.ProductUseCase, sku string, qty int64, cost, selling string) *dto.ProductResponse {
	t.Helper()
	out, err := uc.Add(context.Background(), dto.AddProductRequest{
		SKU:          sku,
		Name:         "Producto " + sku,
		Quantity:     qty,
		CostPrice:    mustDecimal(cost),
		SellingPrice: mustDecimal(selling),
	})
	require.NoError(t, err)
	return out
}

// Alta seguida de listado: el producto aparece con la utilidad proyectada
// (selling - cost) × quantity calculada al leer.
func TestAdd_LuegoList_IncluyeUtilidadProyectada(t *testing.T) {
	uc, _ := newProductUC()
	addProduct(t, uc, "SKU1", 10, "2.00", "5.00")

	list, err := uc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list.Items, 1)

	got := list.Items[0]
	assert.Equal(t, "SKU1", got.SKU)
	assert.Equal(t, int64(10), got.Quantity)
	assert.True(t, mustDecimal("30.00").Equal(got.ProjectedProfit),
		"utilidad proyectada = (5.00-2.00)×10 = 30.00, fue %s", got.ProjectedProfit)
}

// Alta con SKU existente: falla con ErrDuplicateSKU y la fila original queda igual.
func TestAdd_SKUDuplicado_NoModificaElOriginal(t *testing.T) {
	uc, repo := newProductUC()
	addProduct(t, uc, "SKU1", 10, "2.00", "5.00")

	_, err := uc.Add(context.Background(), dto.AddProductRequest{
		SKU:          "SKU1",
		Name:         "Otro nombre",
		Quantity:     99,
		CostPrice:    mustDecimal("1.00"),
		SellingPrice: mustDecimal("9.00"),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)

	original := repo.products["SKU1"]
	assert.Equal(t, "Producto SKU1", original.Name)
	assert.Equal(t, int64(10), original.Quantity)
	assert.True(t, mustDecimal("5.00").Equal(original.SellingPrice))
}

func TestAdd_EntradaInvalida(t *testing.T) {
	uc, _ := newProductUC()
	ctx := context.Background()

	cases := []dto.AddProductRequest{
		{SKU: "", Name: "X", Quantity: 1},
		{SKU: "S", Name: "", Quantity: 1},
		{SKU: "S", Name: "X", Quantity: -1},
		{SKU: "S", Name: "X", Quantity: 1, CostPrice: mustDecimal("-1.00")},
		{SKU: "S", Name: "X", Quantity: 1, SellingPrice: mustDecimal("-1.00")},
	}
	for _, in := range cases {
		_, err := uc.Add(ctx, in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

// Eliminar un SKU inexistente devuelve éxito y no cambia nada (política permisiva).
func TestRemove_SKUInexistente_NoEsError(t *testing.T) {
	uc, repo := newProductUC()
	addProduct(t, uc, "SKU1", 10, "2.00", "5.00")

	err := uc.Remove(context.Background(), "NO-EXISTE")
	assert.NoError(t, err)
	assert.Len(t, repo.products, 1)
}

func TestRemove_EliminaElProducto(t *testing.T) {
	uc, repo := newProductUC()
	addProduct(t, uc, "SKU1", 10, "2.00", "5.00")

	require.NoError(t, uc.Remove(context.Background(), "SKU1"))
	assert.Empty(t, repo.products)
}

// El umbral de stock bajo es inclusive: quantity == threshold entra al reporte.
func TestLowStock_LimiteInclusive(t *testing.T) {
	uc, _ := newProductUC()
	addProduct(t, uc, "EN-LIMITE", 5, "1.00", "2.00")
	addProduct(t, uc, "POR-DEBAJO", 2, "1.00", "2.00")
	addProduct(t, uc, "POR-ENCIMA", 6, "1.00", "2.00")

	out, err := uc.LowStock(context.Background(), 5)
	require.NoError(t, err)

	skus := make([]string, 0, len(out.Items))
	for _, item := range out.Items {
		skus = append(skus, item.SKU)
	}
	assert.ElementsMatch(t, []string{"EN-LIMITE", "POR-DEBAJO"}, skus)
}
