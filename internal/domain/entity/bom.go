package entity

// Document es un BOM completo: secuencia ordenada de partes con exactamente
// una parte de nivel 0 como raíz. Es un objeto de valor: se construye fresco
// en cada operación (generar o leer) y no se comparte ni se cachea.
type Document struct {
	Name  string // nombre lógico (archivo de origen o PartNo raíz)
	Parts []Part
}

// NewDocument construye un documento vacío con nombre.
func NewDocument(name string) *Document {
	return &Document{Name: name}
}

// Add agrega una parte al final del documento preservando el orden.
func (d *Document) Add(p Part) {
	d.Parts = append(d.Parts, p)
}

// Root devuelve la parte de nivel 0, o nil si no existe.
func (d *Document) Root() *Part {
	for i := range d.Parts {
		if d.Parts[i].IsRoot() {
			return &d.Parts[i]
		}
	}
	return nil
}

// Find devuelve la parte con el PartNo dado (comparación exacta,
// sensible a mayúsculas), o nil si no está en el documento.
func (d *Document) Find(partNo string) *Part {
	for i := range d.Parts {
		if d.Parts[i].PartNo == partNo {
			return &d.Parts[i]
		}
	}
	return nil
}

// PartNos devuelve los números de parte en orden de aparición.
func (d *Document) PartNos() []string {
	out := make([]string, 0, len(d.Parts))
	for i := range d.Parts {
		out = append(out, d.Parts[i].PartNo)
	}
	return out
}

// Len devuelve el número de partes del documento.
func (d *Document) Len() int { return len(d.Parts) }
