package excel

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/bomgen/internal/domain"
	"github.com/jhoicas/bomgen/internal/domain/entity"
)

// Hojas del libro de comparación.
const (
	summarySheet    = "Summary"
	comparisonSheet = "Comparison"
	changesSheet    = "Changes"
)

// Rellenos por categoría del diff (verde agregado, rojo removido, ámbar
// cambiado; sin relleno para sin cambios).
const (
	addedFillColor   = "C6EFCE"
	removedFillColor = "FFC7CE"
	changedFillColor = "FFEB9C"
)

var comparisonHeaders = []string{"Status", "PartNo", "Revision", "Description", "Quantity", "Location", "Level", "Parent"}
var changesHeaders = []string{"PartNo", "Field", "Old Value", "New Value"}

// ReportWriter materializa un diff en un libro xlsx con tres hojas:
// Summary (totales), Comparison (una fila por entrada, en el orden del
// comparador, distinguida por color y columna Status) y Changes (una fila
// por campo cambiado con valor viejo/nuevo).
type ReportWriter struct{}

// NewReportWriter construye el escritor de reportes.
func NewReportWriter() *ReportWriter { return &ReportWriter{} }

// WriteReport escribe el libro de comparación en w.
func (rw *ReportWriter) WriteReport(baseline, candidate string, entries []entity.DiffEntry, w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("renombrar hoja: %w", domain.ErrIO)
	}
	if _, err := f.NewSheet(comparisonSheet); err != nil {
		return fmt.Errorf("hoja %q: %w", comparisonSheet, domain.ErrIO)
	}
	if _, err := f.NewSheet(changesSheet); err != nil {
		return fmt.Errorf("hoja %q: %w", changesSheet, domain.ErrIO)
	}

	styles, err := newReportStyles(f)
	if err != nil {
		return err
	}
	if err := writeSummarySheet(f, styles, baseline, candidate, entries); err != nil {
		return err
	}
	if err := writeComparisonSheet(f, styles, entries); err != nil {
		return err
	}
	if err := writeChangesSheet(f, styles, entries); err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("escribir reporte: %w", domain.ErrIO)
	}
	return nil
}

type reportStyles struct {
	header  int
	title   int
	added   int
	removed int
	changed int
}

func newReportStyles(f *excelize.File) (reportStyles, error) {
	var s reportStyles
	var err error
	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: headerFontColor},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return s, fmt.Errorf("estilo de encabezado: %w", domain.ErrIO)
	}
	s.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	if err != nil {
		return s, fmt.Errorf("estilo de título: %w", domain.ErrIO)
	}
	for _, fill := range []struct {
		color string
		dst   *int
	}{
		{addedFillColor, &s.added},
		{removedFillColor, &s.removed},
		{changedFillColor, &s.changed},
	} {
		id, err := f.NewStyle(&excelize.Style{
			Fill: excelize.Fill{Type: "pattern", Color: []string{fill.color}, Pattern: 1},
		})
		if err != nil {
			return s, fmt.Errorf("estilo de relleno: %w", domain.ErrIO)
		}
		*fill.dst = id
	}
	return s, nil
}

func writeSummarySheet(f *excelize.File, styles reportStyles, baseline, candidate string, entries []entity.DiffEntry) error {
	sum := entity.Summarize(entries)
	cells := []struct {
		cell  string
		value interface{}
	}{
		{"A1", "BOM Comparison Summary"},
		{"A3", "Baseline:"}, {"B3", baseline},
		{"A4", "Candidate:"}, {"B4", candidate},
		{"A6", "Added:"}, {"B6", sum.Added},
		{"A7", "Removed:"}, {"B7", sum.Removed},
		{"A8", "Changed:"}, {"B8", sum.Changed},
		{"A9", "Unchanged:"}, {"B9", sum.Unchanged},
	}
	for _, c := range cells {
		if err := f.SetCellValue(summarySheet, c.cell, c.value); err != nil {
			return fmt.Errorf("celda %s: %w", c.cell, domain.ErrIO)
		}
	}
	if err := f.SetCellStyle(summarySheet, "A1", "A1", styles.title); err != nil {
		return fmt.Errorf("estilo de título: %w", domain.ErrIO)
	}
	return nil
}

func writeComparisonSheet(f *excelize.File, styles reportStyles, entries []entity.DiffEntry) error {
	if err := writeSheetHeaders(f, comparisonSheet, comparisonHeaders, styles.header); err != nil {
		return err
	}
	for i := range entries {
		e := &entries[i]
		rowNum := i + 2
		p := e.Part
		values := []interface{}{
			string(e.Status), e.PartNo, p.Revision, p.Description,
			numericCell(p.Quantity), p.Location, p.Level, p.Parent,
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
			if err := f.SetCellValue(comparisonSheet, cell, v); err != nil {
				return fmt.Errorf("celda %s: %w", cell, domain.ErrIO)
			}
		}
		if style, ok := statusStyle(styles, e.Status); ok {
			first, _ := excelize.CoordinatesToCellName(1, rowNum)
			last, _ := excelize.CoordinatesToCellName(len(comparisonHeaders), rowNum)
			if err := f.SetCellStyle(comparisonSheet, first, last, style); err != nil {
				return fmt.Errorf("estilo de fila %d: %w", rowNum, domain.ErrIO)
			}
		}
	}
	return nil
}

func writeChangesSheet(f *excelize.File, styles reportStyles, entries []entity.DiffEntry) error {
	if err := writeSheetHeaders(f, changesSheet, changesHeaders, styles.header); err != nil {
		return err
	}
	rowNum := 2
	for i := range entries {
		e := &entries[i]
		if e.Status != entity.DiffChanged {
			continue
		}
		for _, ch := range e.Changes {
			values := []interface{}{e.PartNo, ch.Field, ch.Old, ch.New}
			for col, v := range values {
				cell, _ := excelize.CoordinatesToCellName(col+1, rowNum)
				if err := f.SetCellValue(changesSheet, cell, v); err != nil {
					return fmt.Errorf("celda %s: %w", cell, domain.ErrIO)
				}
			}
			rowNum++
		}
	}
	return nil
}

func writeSheetHeaders(f *excelize.File, sheet string, headers []string, styleID int) error {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("encabezado %q: %w", h, domain.ErrIO)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(headers), 1)
	if err := f.SetCellStyle(sheet, "A1", last, styleID); err != nil {
		return fmt.Errorf("aplicar estilo: %w", domain.ErrIO)
	}
	return nil
}

func statusStyle(styles reportStyles, status entity.DiffStatus) (int, bool) {
	switch status {
	case entity.DiffAdded:
		return styles.added, true
	case entity.DiffRemoved:
		return styles.removed, true
	case entity.DiffChanged:
		return styles.changed, true
	}
	return 0, false
}
