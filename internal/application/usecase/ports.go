package usecase

import (
	"context"
	"io"

	"github.com/jhoicas/bomgen/internal/domain/entity"
)

// TemplateAdapter mapea documentos BOM sobre el layout fijo de la plantilla
// y de vuelta. La implementación vive en infrastructure/excel.
type TemplateAdapter interface {
	// CreateTemplate escribe una plantilla en blanco con los encabezados
	// fijos en w.
	CreateTemplate(w io.Writer) error

	// Read parsea un archivo de plantilla con datos y devuelve el documento
	// validado. name es el nombre lógico (archivo de origen).
	Read(r io.Reader, name string) (*entity.Document, error)

	// Write vuelca el documento sobre la plantilla (template nil = layout
	// propio) y escribe el resultado en w. Falla con error de formato si la
	// plantilla no tiene los encabezados esperados.
	Write(doc *entity.Document, template io.Reader, w io.Writer) error
}

// ReportWriter materializa un diff en un libro de reporte.
type ReportWriter interface {
	WriteReport(baseline, candidate string, entries []entity.DiffEntry, w io.Writer) error
}

// SummaryPDFGenerator genera el resumen PDF de una comparación.
// La implementación vive en infrastructure/pdf (Maroto).
type SummaryPDFGenerator interface {
	GenerateComparisonPDF(ctx context.Context, baseline, candidate string, entries []entity.DiffEntry) ([]byte, error)
}
