package usecase

import (
	"context"
	"io"

	"github.com/jhoicas/bomgen/internal/domain/entity"
)

// TemplateUseCase expone las operaciones de plantilla a las superficies:
// crear plantilla en blanco, leer un archivo BOM y exportar un documento.
type TemplateUseCase struct {
	adapter TemplateAdapter
}

// NewTemplateUseCase construye el caso de uso.
func NewTemplateUseCase(adapter TemplateAdapter) *TemplateUseCase {
	return &TemplateUseCase{adapter: adapter}
}

// CreateTemplate escribe una plantilla en blanco (solo encabezados) en w.
func (uc *TemplateUseCase) CreateTemplate(_ context.Context, w io.Writer) error {
	return uc.adapter.CreateTemplate(w)
}

// Load lee y valida un archivo BOM. name es el nombre lógico del origen.
func (uc *TemplateUseCase) Load(_ context.Context, r io.Reader, name string) (*entity.Document, error) {
	return uc.adapter.Read(r, name)
}

// Export vuelca un documento sobre la plantilla (template nil = layout
// propio) y escribe el archivo en w.
func (uc *TemplateUseCase) Export(_ context.Context, doc *entity.Document, template io.Reader, w io.Writer) error {
	return uc.adapter.Write(doc, template, w)
}
