package usecase

import (
	"context"
	"fmt"
	"io"

	"github.com/jhoicas/bomgen/internal/domain"
	"github.com/jhoicas/bomgen/internal/domain/entity"
)

// CompareUseCase alinea dos documentos BOM por PartNo y produce el diff
// ordenado: entradas en el orden de aparición de la línea base, con las
// adiciones del candidato al final en su propio orden.
type CompareUseCase struct {
	reports ReportWriter
	pdf     SummaryPDFGenerator
}

// NewCompareUseCase construye el caso de uso.
func NewCompareUseCase(reports ReportWriter, pdf SummaryPDFGenerator) *CompareUseCase {
	return &CompareUseCase{reports: reports, pdf: pdf}
}

// Compare produce la secuencia de entradas del diff. La alineación es por
// PartNo con coincidencia exacta (sensible a mayúsculas). Un PartNo
// duplicado dentro de un documento es un error de calidad de datos y se
// rechaza; nunca se resuelve en silencio.
func (uc *CompareUseCase) Compare(_ context.Context, baseline, candidate *entity.Document) ([]entity.DiffEntry, error) {
	if err := checkDuplicates(baseline); err != nil {
		return nil, err
	}
	if err := checkDuplicates(candidate); err != nil {
		return nil, err
	}

	inCandidate := make(map[string]*entity.Part, candidate.Len())
	for i := range candidate.Parts {
		inCandidate[candidate.Parts[i].PartNo] = &candidate.Parts[i]
	}
	inBaseline := make(map[string]struct{}, baseline.Len())
	for i := range baseline.Parts {
		inBaseline[baseline.Parts[i].PartNo] = struct{}{}
	}

	entries := make([]entity.DiffEntry, 0, baseline.Len()+candidate.Len())

	// Orden de la línea base: removidos, cambiados o sin cambios.
	for i := range baseline.Parts {
		old := &baseline.Parts[i]
		cur, ok := inCandidate[old.PartNo]
		if !ok {
			entries = append(entries, entity.DiffEntry{Status: entity.DiffRemoved, PartNo: old.PartNo, Part: old})
			continue
		}
		changes := compareTrackedFields(old, cur)
		if len(changes) > 0 {
			entries = append(entries, entity.DiffEntry{
				Status:  entity.DiffChanged,
				PartNo:  old.PartNo,
				Part:    cur,
				Old:     old,
				Changes: changes,
			})
		} else {
			entries = append(entries, entity.DiffEntry{Status: entity.DiffUnchanged, PartNo: old.PartNo, Part: old})
		}
	}

	// Adiciones solo-candidato, en el orden del candidato.
	for i := range candidate.Parts {
		p := &candidate.Parts[i]
		if _, ok := inBaseline[p.PartNo]; !ok {
			entries = append(entries, entity.DiffEntry{Status: entity.DiffAdded, PartNo: p.PartNo, Part: p})
		}
	}
	return entries, nil
}

// WriteReport compara y vuelca el reporte xlsx en w.
func (uc *CompareUseCase) WriteReport(ctx context.Context, baseline, candidate *entity.Document, w io.Writer) ([]entity.DiffEntry, error) {
	entries, err := uc.Compare(ctx, baseline, candidate)
	if err != nil {
		return nil, err
	}
	if err := uc.reports.WriteReport(baseline.Name, candidate.Name, entries, w); err != nil {
		return nil, err
	}
	return entries, nil
}

// WritePDF compara y genera el resumen PDF.
func (uc *CompareUseCase) WritePDF(ctx context.Context, baseline, candidate *entity.Document) ([]byte, error) {
	entries, err := uc.Compare(ctx, baseline, candidate)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateComparisonPDF(ctx, baseline.Name, candidate.Name, entries)
}

// compareTrackedFields compara los campos rastreados (Revision,
// Description, Quantity, Location) y devuelve las diferencias con valor
// viejo/nuevo. Quantity se compara como decimal, no como texto.
func compareTrackedFields(old, cur *entity.Part) []entity.FieldChange {
	var changes []entity.FieldChange
	if old.Revision != cur.Revision {
		changes = append(changes, entity.FieldChange{Field: entity.FieldRevision, Old: old.Revision, New: cur.Revision})
	}
	if old.Description != cur.Description {
		changes = append(changes, entity.FieldChange{Field: entity.FieldDescription, Old: old.Description, New: cur.Description})
	}
	if !old.Quantity.Equal(cur.Quantity) {
		changes = append(changes, entity.FieldChange{Field: entity.FieldQuantity, Old: old.Quantity.String(), New: cur.Quantity.String()})
	}
	if old.Location != cur.Location {
		changes = append(changes, entity.FieldChange{Field: entity.FieldLocation, Old: old.Location, New: cur.Location})
	}
	return changes
}

// checkDuplicates rechaza documentos con PartNo repetido.
func checkDuplicates(doc *entity.Document) error {
	seen := make(map[string]struct{}, doc.Len())
	for i := range doc.Parts {
		pn := doc.Parts[i].PartNo
		if _, dup := seen[pn]; dup {
			return fmt.Errorf("documento %q, parte %q: %w", doc.Name, pn, domain.ErrDuplicatePartNo)
		}
		seen[pn] = struct{}{}
	}
	return nil
}
