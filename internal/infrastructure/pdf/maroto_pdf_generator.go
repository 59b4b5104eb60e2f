// Package pdf implementa la hoja de etiquetas de escaneo de un material.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Código + Descripción  │  Vendor / Lokasi / PIC      │
//	│  ─────────────────────────────────────────────────────────  │
//	│  CONFIG: Pack | Max | Min | Bins | Punto de reorden          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  ETIQUETAS: [QR code_IN]   [QR code_OUT]   (una fila/copia)  │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
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

	"github.com/jhoicas/bin-inventory-api/internal/application/labels"
	"github.com/jhoicas/bin-inventory-api/internal/domain/binstock"
	"github.com/jhoicas/bin-inventory-api/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorIN      = &props.Color{Red: 22, Green: 128, Blue: 61}
	colorOUT     = &props.Color{Red: 185, Green: 28, Blue: 28}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ labels.LabelGenerator = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa labels.LabelGenerator usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GenerateLabelSheet genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) GenerateLabelSheet(_ context.Context, sheet labels.Sheet) ([]byte, error) {
	m := sheet.Material
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Etiquetas de escaneo "+m.Code, true).
		Build()

	doc := maroto.New(cfg)

	doc.AddRows(headerRow(m))
	doc.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	doc.AddRows(configRow(m.BinConfiguration()))
	doc.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	doc.AddRows(row.New(4))

	for _, pair := range sheet.Pairs {
		doc.AddRows(labelRow(m, pair))
		doc.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.1}))
	}

	out, err := doc.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return out.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: código + descripción (izq) y vendor / ubicación / PIC (der).
func headerRow(m *entity.Material) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(m.Code, props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(m.Description, "-"), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("Vendor: "+nonEmpty(m.VendorCode, "-"), props.Text{
				Size: 8, Align: align.Right, Top: 1,
			}),
			text.New("Lokasi: "+nonEmpty(m.Location, "-"), props.Text{
				Size: 8, Align: align.Right, Top: 6, Color: colorGray,
			}),
			text.New("PIC: "+nonEmpty(m.PIC, "-"), props.Text{
				Size: 8, Align: align.Right, Top: 11, Color: colorGray,
			}),
		),
	)
}

// configRow: configuración de bins impresa junto a las etiquetas.
func configRow(c binstock.BinConfiguration) core.Row {
	cell := func(label string, value int) core.Col {
		return col.New(2).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(fmt.Sprintf("%d", value), props.Text{
				Style: fontstyle.Bold, Size: 11, Align: align.Center, Top: 5,
			}),
		)
	}
	return row.New(12).Add(
		cell("Pack Qty", c.PackQuantity),
		cell("Max Bin Qty", c.MaxBinQty),
		cell("Min Bin Qty", c.MinBinQty),
		cell("Total Bins", c.TotalBins()),
		cell("Reorden", c.ReorderPoint()),
		col.New(2),
	)
}

// labelRow: QR de entrada y de salida, lado a lado.
func labelRow(m *entity.Material, pair [2]labels.Label) core.Row {
	half := func(l labels.Label) []core.Col {
		color := colorIN
		if l.Movement == binstock.MovementOUT {
			color = colorOUT
		}
		return []core.Col{
			col.New(3).Add(code.NewQr(l.Token, props.Rect{Percent: 90, Center: true})),
			col.New(3).Add(
				text.New(l.Caption, props.Text{Style: fontstyle.Bold, Size: 14, Color: color, Top: 8}),
				text.New(l.Token, props.Text{Size: 8, Top: 18}),
				text.New(m.Code, props.Text{Size: 7, Color: colorGray, Top: 24}),
			),
		}
	}
	cols := append(half(pair[0]), half(pair[1])...)
	return row.New(40).Add(cols...)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
