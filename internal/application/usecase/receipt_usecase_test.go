package usecase_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/jhoicas/inventario-kiosco/internal/application/dto"
	"github.com/jhoicas/inventario-kiosco/internal/application/usecase"
	"github.com/jhoicas/inventario-kiosco/internal/domain"
)

// El recibo multiplica cantidad × precio tal cual los digitó el usuario,
// sin consultar el inventario.
func TestBuild_CalculaElTotal(t *testing.T) {
	uc := usecase.NewReceiptUseCase(nil)

	out, err := uc.Build(dto.ReceiptRequest{
		SKU:          "SKU1",
		Quantity:     3,
		SellingPrice: mustDecimal("5.00"),
	})
	require.NoError(t, err)

	assert.True(t, mustDecimal("15.00").Equal(out.TotalAmount))
	assert.False(t, out.IssuedAt.IsZero())

	for _, linea := range []string{
		"Recibo",
		"SKU: SKU1",
		"Cantidad: 3",
		"Precio unitario: $5.00",
		"Total: $15.00",
	} {
		assert.True(t, strings.Contains(out.Text, linea), "el texto debe contener %q:\n%s", linea, out.Text)
	}
}

func TestBuild_EntradaInvalida(t *testing.T) {
	uc := usecase.NewReceiptUseCase(nil)

	cases := []dto.ReceiptRequest{
		{SKU: "", Quantity: 1, SellingPrice: mustDecimal("1.00")},
		{SKU: "S", Quantity: 0, SellingPrice: mustDecimal("1.00")},
		{SKU: "S", Quantity: 1, SellingPrice: mustDecimal("-1.00")},
	}
	for _, in := range cases {
		_, err := uc.Build(in)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}
