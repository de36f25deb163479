// Package pdf genera la rendición PDF del recibo de venta.
//
// Layout de la página A5:
//
//	┌───────────────────────────────┐
//	│  RECIBO           Fecha/Hora  │
//	│  ───────────────────────────  │
//	│  SKU | Cantidad | P. Unitario │
//	│  ───────────────────────────  │
//	│  TOTAL A PAGAR                │
//	└───────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/inventario-kiosco/internal/application/dto"
	"github.com/jhoicas/inventario-kiosco/internal/application/usecase"
)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.ReceiptPDFGenerator = (*MarotoReceiptGenerator)(nil)

// MarotoReceiptGenerator implementa usecase.ReceiptPDFGenerator usando Maroto v2.
type MarotoReceiptGenerator struct{}

// NewMarotoReceiptGenerator construye el generador.
func NewMarotoReceiptGenerator() *MarotoReceiptGenerator { return &MarotoReceiptGenerator{} }

// GenerateReceiptPDF genera el PDF del recibo y devuelve sus bytes.
func (g *MarotoReceiptGenerator) GenerateReceiptPDF(_ context.Context, receipt *dto.ReceiptResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Recibo de venta", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(receipt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(detailHeaderRow())
	m.AddRows(detailRow(receipt))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(receipt))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha/hora de emisión (der).
func headerRow(receipt *dto.ReceiptResponse) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("Recibo", props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(6).Add(
			text.New(receipt.IssuedAt.Format("2006-01-02 15:04:05"), props.Text{
				Size: 9, Top: 4, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func detailHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}
	return row.New(8).Add(
		col.New(5).Add(text.New("SKU", header)),
		col.New(3).Add(text.New("Cantidad", header)),
		col.New(4).Add(text.New("Precio unitario", props.Text{
			Style: fontstyle.Bold, Size: 9, Top: 1, Align: align.Right,
		})),
	)
}

func detailRow(receipt *dto.ReceiptResponse) core.Row {
	return row.New(8).Add(
		col.New(5).Add(text.New(receipt.SKU, props.Text{Size: 9, Top: 1})),
		col.New(3).Add(text.New(fmt.Sprintf("%d", receipt.Quantity), props.Text{Size: 9, Top: 1})),
		col.New(4).Add(text.New("$"+receipt.SellingPrice.StringFixed(2), props.Text{
			Size: 9, Top: 1, Align: align.Right,
		})),
	)
}

func totalRow(receipt *dto.ReceiptResponse) core.Row {
	return row.New(10).Add(
		col.New(7).Add(text.New("TOTAL A PAGAR", props.Text{
			Style: fontstyle.Bold, Size: 11, Top: 2, Color: colorPrimary,
		})),
		col.New(5).Add(text.New("$"+receipt.TotalAmount.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 11, Top: 2, Align: align.Right, Color: colorPrimary,
		})),
	)
}
