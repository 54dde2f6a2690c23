// Package excel implementa el adaptador de plantilla sobre excelize:
// creación de la plantilla BOM Compare, lectura de archivos BOM y escritura
// de documentos preservando los estilos de la plantilla.
package excel

import (
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/bomgen/internal/domain"
	"github.com/jhoicas/bomgen/internal/domain/bom"
	"github.com/jhoicas/bomgen/internal/domain/entity"
)

// SheetName es la hoja de datos de la plantilla BOM Compare.
const SheetName = "Template"

// Colores del layout (mismos de la plantilla original).
const (
	headerFillColor = "366092"
	headerFontColor = "FFFFFF"
)

// TemplateHeaders son las columnas fijas de la plantilla, en orden.
var TemplateHeaders = []string{
	"PartNo", "Revision", "Description", "AltDescription1", "AltDescription2", "DescExtra",
	"Quantity", "IssueUM", "ConsumptionConv", "UM", "Cost", "Source", "Drawing", "Leadtime",
	"Level", "Location", "Memo1", "Memo2", "Parent", "Productline", "Sequence", "SortCode",
	"Tag", "Category", "BomComplete", "BomComments", "Router",
}

// RequiredHeaders son las columnas sin las cuales un archivo no puede
// leerse como BOM (Parent puede venir en blanco solo en la fila raíz).
var RequiredHeaders = []string{"PartNo", "Quantity", "Level", "Parent", "Sequence"}

// Adapter implementa usecase.TemplateAdapter con excelize.
type Adapter struct{}

// NewAdapter construye el adaptador.
func NewAdapter() *Adapter { return &Adapter{} }

// CreateTemplate escribe una plantilla en blanco: hoja Template con los 27
// encabezados en la fila 1 (negrita blanca sobre azul, centrado, ancho 15).
func (a *Adapter) CreateTemplate(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("renombrar hoja: %w", domain.ErrIO)
	}
	if err := writeHeaderRow(f); err != nil {
		return err
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("escribir plantilla: %w", domain.ErrIO)
	}
	return nil
}

// Read parsea un archivo BOM: localiza los encabezados en la fila 1, mapea
// cada fila a una parte y valida el documento completo. El modo de números
// de parte largos se infiere del contenido (algún PartNo de más de 20
// caracteres).
func (a *Adapter) Read(r io.Reader, name string) (*entity.Document, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("abrir libro: %v: %w", err, domain.ErrFormat)
	}
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	if err != nil || len(rows) == 0 {
		return nil, fmt.Errorf("hoja %q ausente o vacía: %w", SheetName, domain.ErrMissingHeaders)
	}

	colIdx, err := headerIndex(rows[0])
	if err != nil {
		return nil, err
	}

	doc := entity.NewDocument(name)
	longMode := false
	for rowNum, row := range rows[1:] {
		if emptyRow(row) {
			continue
		}
		p, err := parseRow(row, colIdx, rowNum+2)
		if err != nil {
			return nil, err
		}
		if len(p.PartNo) > entity.PartNoMaxLen {
			longMode = true
		}
		doc.Add(p)
	}

	if err := bom.Validate(doc, bom.Options{LongPartNo: longMode}); err != nil {
		return nil, err
	}
	return doc, nil
}

// Write vuelca el documento sobre la plantilla y escribe el resultado en w.
// Con template nil se usa el layout propio; con plantilla cargada se
// verifica que los encabezados coincidan exactamente con el formato fijo
// (error de formato si no) y se preservan sus estilos.
func (a *Adapter) Write(doc *entity.Document, template io.Reader, w io.Writer) error {
	var f *excelize.File
	if template == nil {
		f = excelize.NewFile()
		if err := f.SetSheetName("Sheet1", SheetName); err != nil {
			return fmt.Errorf("renombrar hoja: %w", domain.ErrIO)
		}
		if err := writeHeaderRow(f); err != nil {
			f.Close()
			return err
		}
	} else {
		var err error
		f, err = excelize.OpenReader(template)
		if err != nil {
			return fmt.Errorf("abrir plantilla: %v: %w", err, domain.ErrFormat)
		}
		if err := verifyTemplateLayout(f); err != nil {
			f.Close()
			return err
		}
	}
	defer f.Close()

	for i := range doc.Parts {
		if err := writePartRow(f, &doc.Parts[i], i+2); err != nil {
			return err
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("escribir libro: %w", domain.ErrIO)
	}
	return nil
}

// writeHeaderRow escribe los 27 encabezados con el estilo de la plantilla.
func writeHeaderRow(f *excelize.File) error {
	styleID, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: headerFontColor},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return fmt.Errorf("estilo de encabezado: %w", domain.ErrIO)
	}
	for i, h := range TemplateHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, h); err != nil {
			return fmt.Errorf("encabezado %q: %w", h, domain.ErrIO)
		}
	}
	last, _ := excelize.CoordinatesToCellName(len(TemplateHeaders), 1)
	if err := f.SetCellStyle(SheetName, "A1", last, styleID); err != nil {
		return fmt.Errorf("aplicar estilo: %w", domain.ErrIO)
	}
	firstCol, lastCol := "A", mustColumnName(len(TemplateHeaders))
	if err := f.SetColWidth(SheetName, firstCol, lastCol, 15); err != nil {
		return fmt.Errorf("ancho de columnas: %w", domain.ErrIO)
	}
	return nil
}

// verifyTemplateLayout exige la hoja Template con los encabezados exactos.
func verifyTemplateLayout(f *excelize.File) error {
	rows, err := f.GetRows(SheetName)
	if err != nil || len(rows) == 0 {
		return fmt.Errorf("hoja %q ausente o vacía: %w", SheetName, domain.ErrMissingHeaders)
	}
	got := rows[0]
	if len(got) != len(TemplateHeaders) {
		return fmt.Errorf("se esperaban %d columnas, hay %d: %w", len(TemplateHeaders), len(got), domain.ErrHeaderMismatch)
	}
	for i, h := range TemplateHeaders {
		if got[i] != h {
			return fmt.Errorf("columna %d: se esperaba %q, hay %q: %w", i+1, h, got[i], domain.ErrHeaderMismatch)
		}
	}
	return nil
}

// headerIndex mapea nombre de encabezado a índice de columna y verifica
// que las columnas requeridas existan.
func headerIndex(headerRow []string) (map[string]int, error) {
	idx := make(map[string]int, len(headerRow))
	for i, h := range headerRow {
		if h != "" {
			idx[h] = i
		}
	}
	for _, h := range RequiredHeaders {
		if _, ok := idx[h]; !ok {
			return nil, fmt.Errorf("columna %q: %w", h, domain.ErrMissingHeaders)
		}
	}
	return idx, nil
}

// parseRow construye una parte desde una fila de datos.
func parseRow(row []string, colIdx map[string]int, rowNum int) (entity.Part, error) {
	get := func(header string) string {
		i, ok := colIdx[header]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var p entity.Part
	p.PartNo = get("PartNo")
	p.Revision = get("Revision")
	p.Description = get("Description")
	p.AltDescription1 = get("AltDescription1")
	p.AltDescription2 = get("AltDescription2")
	p.DescExtra = get("DescExtra")
	p.IssueUM = get("IssueUM")
	p.ConsumptionConv = get("ConsumptionConv")
	p.UM = get("UM")
	p.Source = get("Source")
	p.Drawing = get("Drawing")
	p.Leadtime = get("Leadtime")
	p.Location = get("Location")
	p.Memo1 = get("Memo1")
	p.Memo2 = get("Memo2")
	p.Parent = get("Parent")
	p.Productline = get("Productline")
	p.SortCode = get("SortCode")
	p.Tag = get("Tag")
	p.Category = get("Category")
	p.BomComplete = get("BomComplete")
	p.BomComments = get("BomComments")
	p.Router = get("Router")

	qty := get("Quantity")
	if qty == "" {
		return entity.Part{}, fmt.Errorf("fila %d: Quantity vacío: %w", rowNum, domain.ErrValidation)
	}
	q, err := decimal.NewFromString(qty)
	if err != nil {
		return entity.Part{}, fmt.Errorf("fila %d: Quantity %q: %w", rowNum, qty, domain.ErrValidation)
	}
	p.Quantity = q

	if cost := get("Cost"); cost != "" {
		c, err := decimal.NewFromString(cost)
		if err != nil {
			return entity.Part{}, fmt.Errorf("fila %d: Cost %q: %w", rowNum, cost, domain.ErrValidation)
		}
		p.Cost = c
	}

	level, err := parseInt(get("Level"))
	if err != nil {
		return entity.Part{}, fmt.Errorf("fila %d: Level %q: %w", rowNum, get("Level"), domain.ErrValidation)
	}
	p.Level = level

	seq, err := parseInt(get("Sequence"))
	if err != nil {
		return entity.Part{}, fmt.Errorf("fila %d: Sequence %q: %w", rowNum, get("Sequence"), domain.ErrValidation)
	}
	p.Sequence = seq

	return p, nil
}

// writePartRow escribe una parte en la fila dada, columna por columna en el
// orden fijo de la plantilla. Cost en blanco cuando es cero.
func writePartRow(f *excelize.File, p *entity.Part, rowNum int) error {
	values := []interface{}{
		p.PartNo, p.Revision, p.Description, p.AltDescription1, p.AltDescription2, p.DescExtra,
		numericCell(p.Quantity), p.IssueUM, p.ConsumptionConv, p.UM, costCell(p.Cost), p.Source,
		p.Drawing, p.Leadtime, p.Level, p.Location, p.Memo1, p.Memo2, p.Parent, p.Productline,
		p.Sequence, p.SortCode, p.Tag, p.Category, p.BomComplete, p.BomComments, p.Router,
	}
	for i, v := range values {
		if v == nil {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(i+1, rowNum)
		if err := f.SetCellValue(SheetName, cell, v); err != nil {
			return fmt.Errorf("celda %s: %w", cell, domain.ErrIO)
		}
	}
	return nil
}

func numericCell(d decimal.Decimal) interface{} {
	v, _ := d.Float64()
	return v
}

func costCell(d decimal.Decimal) interface{} {
	if d.IsZero() {
		return nil
	}
	return numericCell(d)
}

func parseInt(s string) (int, error) {
	if s == "" {
		return 0, strconv.ErrSyntax
	}
	// Excel puede devolver enteros como "100" o "100.0"; un valor con parte
	// fraccionaria real se rechaza, no se trunca.
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, strconv.ErrSyntax
	}
	return int(d.IntPart()), nil
}

func emptyRow(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}

func mustColumnName(col int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return name
}
