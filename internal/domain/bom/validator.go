// Package bom contiene las reglas de dominio de un documento BOM:
// unicidad de números de parte, jerarquía de niveles (0-3), límites de
// longitud y coherencia Category/Source.
package bom

import (
	"fmt"

	"github.com/jhoicas/bomgen/internal/domain"
	"github.com/jhoicas/bomgen/internal/domain/entity"
)

// Options ajusta la validación según el modo del documento.
type Options struct {
	LongPartNo bool // permite PartNo de hasta 50 caracteres
}

// PartNoMaxLen devuelve el límite de longitud de PartNo según el modo.
func (o Options) PartNoMaxLen() int {
	if o.LongPartNo {
		return entity.PartNoMaxLenLong
	}
	return entity.PartNoMaxLen
}

// Validate verifica los invariantes del documento. Falla con errores de
// validación envueltos sobre los centinelas de domain; nunca corrige nada
// en silencio (un PartNo duplicado se rechaza, no se resuelve).
func Validate(doc *entity.Document, opts Options) error {
	if doc == nil || len(doc.Parts) == 0 {
		return fmt.Errorf("documento vacío: %w", domain.ErrValidation)
	}

	seen := make(map[string]struct{}, len(doc.Parts))
	levels := make(map[string]int, len(doc.Parts))
	roots := 0

	for i := range doc.Parts {
		p := &doc.Parts[i]
		if err := validatePart(p, opts); err != nil {
			return err
		}
		if _, dup := seen[p.PartNo]; dup {
			return fmt.Errorf("parte %q: %w", p.PartNo, domain.ErrDuplicatePartNo)
		}
		seen[p.PartNo] = struct{}{}
		levels[p.PartNo] = p.Level
		if p.IsRoot() {
			roots++
		}
	}
	if roots != 1 {
		return fmt.Errorf("se encontraron %d partes de nivel 0: %w", roots, domain.ErrNoRoot)
	}

	// Referencias de padre: cada parte de nivel n>0 debe apuntar a una parte
	// existente exactamente un nivel arriba.
	for i := range doc.Parts {
		p := &doc.Parts[i]
		if p.IsRoot() {
			if p.Parent != "" {
				return fmt.Errorf("la parte raíz %q no debe tener padre: %w", p.PartNo, domain.ErrValidation)
			}
			continue
		}
		if p.Parent == "" {
			return fmt.Errorf("parte %q (nivel %d): %w", p.PartNo, p.Level, domain.ErrMissingParent)
		}
		parentLevel, ok := levels[p.Parent]
		if !ok {
			return fmt.Errorf("parte %q referencia padre inexistente %q: %w", p.PartNo, p.Parent, domain.ErrMissingParent)
		}
		if parentLevel != p.Level-1 {
			return fmt.Errorf("parte %q (nivel %d) con padre %q en nivel %d: %w",
				p.PartNo, p.Level, p.Parent, parentLevel, domain.ErrMissingParent)
		}
	}
	return nil
}

// validatePart aplica las reglas por fila: campos requeridos, longitudes,
// rango de nivel, cantidad positiva y coherencia Category/Source.
func validatePart(p *entity.Part, opts Options) error {
	if p.PartNo == "" {
		return fmt.Errorf("PartNo vacío: %w", domain.ErrValidation)
	}
	if max := opts.PartNoMaxLen(); len(p.PartNo) > max {
		return fmt.Errorf("PartNo %q excede %d caracteres: %w", p.PartNo, max, domain.ErrFieldTooLong)
	}
	if len(p.Revision) > entity.RevisionMaxLen {
		return fmt.Errorf("Revision %q excede %d caracteres: %w", p.Revision, entity.RevisionMaxLen, domain.ErrFieldTooLong)
	}
	if p.Level < entity.MinLevel || p.Level > entity.MaxLevel {
		return fmt.Errorf("parte %q con nivel %d: %w", p.PartNo, p.Level, domain.ErrInvalidLevel)
	}
	if !p.Quantity.IsPositive() {
		return fmt.Errorf("parte %q con cantidad %s: %w", p.PartNo, p.Quantity, domain.ErrInvalidQuantity)
	}
	if p.PartNo == p.Parent {
		return fmt.Errorf("parte %q es padre de sí misma: %w", p.PartNo, domain.ErrValidation)
	}
	return ValidateCategorySource(p.Category, p.Source, p.PartNo)
}

// ValidateCategorySource aplica las reglas de combinación de la plantilla:
// Phantom (P) exige Source M o F; Exclude (X) exige Source P.
func ValidateCategorySource(category, source, partNo string) error {
	switch category {
	case entity.CategoryPhantom:
		if source != entity.SourceManufacturedStk && source != entity.SourceManufacturedJob {
			return fmt.Errorf("parte %q: Phantom requiere Source M o F, tiene %q: %w",
				partNo, source, domain.ErrCategorySource)
		}
	case entity.CategoryExclude:
		if source != entity.SourcePurchaseStock {
			return fmt.Errorf("parte %q: Exclude requiere Source P, tiene %q: %w",
				partNo, source, domain.ErrCategorySource)
		}
	}
	return nil
}
