// Package pdf implementa el resumen PDF de una comparación de BOMs con
// Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + archivos comparados                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: Added / Removed / Changed / Unchanged              │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: PartNo | Campo | Valor anterior | Valor nuevo        │
//	└─────────────────────────────────────────────────────────────┘
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

	"github.com/jhoicas/bomgen/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 54, Green: 96, Blue: 146}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorGreen   = &props.Color{Red: 0, Green: 128, Blue: 64}
	colorRed     = &props.Color{Red: 192, Green: 0, Blue: 0}
	colorAmber   = &props.Color{Red: 191, Green: 143, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoSummaryGenerator implementa usecase.SummaryPDFGenerator con Maroto v2.
type MarotoSummaryGenerator struct{}

// NewMarotoSummaryGenerator construye el generador.
func NewMarotoSummaryGenerator() *MarotoSummaryGenerator { return &MarotoSummaryGenerator{} }

// GenerateComparisonPDF genera el resumen y devuelve sus bytes.
func (g *MarotoSummaryGenerator) GenerateComparisonPDF(
	_ context.Context,
	baseline, candidate string,
	entries []entity.DiffEntry,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("BOM Comparison Summary", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(baseline, candidate))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRow(entity.Summarize(entries)))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(changesHeaderRow())
	for _, r := range changeRows(entries) {
		m.AddRows(r)
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: título + nombres de los archivos comparados.
func headerRow(baseline, candidate string) core.Row {
	return row.New(16).Add(
		col.New(12).Add(
			text.New("COMPARACIÓN DE BOM", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New(fmt.Sprintf("Línea base: %s   |   Candidato: %s", baseline, candidate), props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
	)
}

// totalsRow: conteos por categoría en una sola fila.
func totalsRow(sum entity.DiffSummary) core.Row {
	counter := func(label string, n int, c *props.Color) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 8, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(fmt.Sprintf("%d", n), props.Text{
				Style: fontstyle.Bold, Size: 14, Align: align.Center, Color: c, Top: 5,
			}),
		)
	}
	return row.New(14).Add(
		counter("Agregadas", sum.Added, colorGreen),
		counter("Removidas", sum.Removed, colorRed),
		counter("Cambiadas", sum.Changed, colorAmber),
		counter("Sin cambios", sum.Unchanged, colorGray),
	)
}

// changesHeaderRow: cabecera de la tabla de cambios por campo.
func changesHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("PartNo", 4, align.Left),
		h("Campo", 2, align.Left),
		h("Valor anterior", 3, align.Left),
		h("Valor nuevo", 3, align.Left),
	)
}

// changeRows: una fila por campo cambiado, en el orden del comparador.
func changeRows(entries []entity.DiffEntry) []core.Row {
	var result []core.Row
	for i := range entries {
		e := &entries[i]
		if e.Status != entity.DiffChanged {
			continue
		}
		for _, ch := range e.Changes {
			result = append(result, row.New(7).Add(
				col.New(4).Add(text.New(e.PartNo, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
				col.New(2).Add(text.New(ch.Field, props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
				col.New(3).Add(text.New(nonEmpty(ch.Old, "—"), props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
				col.New(3).Add(text.New(nonEmpty(ch.New, "—"), props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			))
		}
	}
	return result
}

func nonEmpty(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
