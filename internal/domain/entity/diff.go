package entity

// DiffStatus clasifica una entrada del resultado de una comparación.
type DiffStatus string

const (
	DiffAdded     DiffStatus = "ADDED"
	DiffRemoved   DiffStatus = "REMOVED"
	DiffChanged   DiffStatus = "CHANGED"
	DiffUnchanged DiffStatus = "UNCHANGED"
)

// Campos rastreados por el comparador (nombres de columna de la plantilla).
const (
	FieldRevision    = "Revision"
	FieldDescription = "Description"
	FieldQuantity    = "Quantity"
	FieldLocation    = "Location"
)

// FieldChange es una diferencia a nivel de campo dentro de una parte
// presente en ambos documentos.
type FieldChange struct {
	Field string
	Old   string
	New   string
}

// DiffEntry es una entrada del diff entre dos documentos.
// Part apunta a la versión relevante: la agregada (candidato), la removida
// (línea base) o la versión del candidato cuando hay cambios. Old solo se
// llena en CHANGED con la versión de la línea base.
//
// Ciclo de vida: producido por el comparador y consumido de inmediato por
// el escritor de reportes; no se persiste.
type DiffEntry struct {
	Status  DiffStatus
	PartNo  string
	Part    *Part
	Old     *Part
	Changes []FieldChange
}

// DiffSummary cuenta entradas por categoría (para el reporte y el PDF).
type DiffSummary struct {
	Added     int
	Removed   int
	Changed   int
	Unchanged int
}

// Summarize recorre las entradas y devuelve los totales por categoría.
func Summarize(entries []DiffEntry) DiffSummary {
	var s DiffSummary
	for i := range entries {
		switch entries[i].Status {
		case DiffAdded:
			s.Added++
		case DiffRemoved:
			s.Removed++
		case DiffChanged:
			s.Changed++
		case DiffUnchanged:
			s.Unchanged++
		}
	}
	return s
}
