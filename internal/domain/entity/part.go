package entity

import "github.com/shopspring/decimal"

// Límites de longitud de campos según la plantilla BOM Compare.
// PartNoMaxLen aplica en modo normal; PartNoMaxLenLong cuando el documento
// usa números de parte largos (20-50 caracteres).
const (
	PartNoMaxLen     = 20
	PartNoMaxLenLong = 50
	RevisionMaxLen   = 10

	MinLevel = 0
	MaxLevel = 3
)

// Valores de Category en la plantilla (columna de una letra).
const (
	CategoryNormal    = ""  // Normal
	CategoryPhantom   = "P" // Phantom: requiere Source M o F
	CategoryExclude   = "X" // Exclude: requiere Source P
	CategoryReference = "R"
	CategorySetup     = "1"
)

// Valores de Source (código de una letra).
const (
	SourcePurchaseStock    = "P"
	SourcePurchaseJob      = "J"
	SourceManufacturedStk  = "M"
	SourceManufacturedJob  = "F"
	SourceConsignStock     = "C"
	SourceConsignJob       = "G"
)

// Part representa una línea de un BOM (una fila de la plantilla).
// PartNo es la clave del documento; Level/Parent/Sequence definen la
// jerarquía (nivel 0 = ensamble superior, sin padre).
type Part struct {
	PartNo          string
	Revision        string
	Description     string
	AltDescription1 string
	AltDescription2 string
	DescExtra       string
	Quantity        decimal.Decimal
	IssueUM         string
	ConsumptionConv string
	UM              string
	Cost            decimal.Decimal // cero = columna en blanco
	Source          string
	Drawing         string
	Leadtime        string
	Level           int
	Location        string
	Memo1           string
	Memo2           string
	Parent          string // PartNo del padre; vacío solo en nivel 0
	Productline     string
	Sequence        int
	SortCode        string
	Tag             string
	Category        string
	BomComplete     string
	BomComments     string
	Router          string
}

// IsRoot indica si la parte es el ensamble superior (nivel 0).
func (p *Part) IsRoot() bool { return p.Level == MinLevel }

// IsManufactured indica si la parte tiene Source de fabricación (M o F).
// Solo partes fabricadas pueden tener sub-componentes debajo.
func (p *Part) IsManufactured() bool {
	return p.Source == SourceManufacturedStk || p.Source == SourceManufacturedJob
}
