package dto

// PartInput son los campos de una parte tal como llegan de la superficie
// (formulario web o CLI). Los numéricos viajan como texto y se convierten
// en el caso de uso (Quantity/Cost con decimal).
type PartInput struct {
	PartNo          string `json:"part_no"`
	Revision        string `json:"revision"`
	Description     string `json:"description"`
	AltDescription1 string `json:"alt_description_1"`
	AltDescription2 string `json:"alt_description_2"`
	DescExtra       string `json:"desc_extra"`
	Quantity        string `json:"quantity"`
	IssueUM         string `json:"issue_um"`
	ConsumptionConv string `json:"consumption_conv"`
	UM              string `json:"um"`
	Cost            string `json:"cost"`
	Source          string `json:"source"`
	Drawing         string `json:"drawing"`
	Leadtime        string `json:"leadtime"`
	Location        string `json:"location"`
	Memo1           string `json:"memo1"`
	Memo2           string `json:"memo2"`
	Productline     string `json:"productline"`
	SortCode        string `json:"sort_code"`
	Tag             string `json:"tag"`
	Category        string `json:"category"`
	BomComplete     string `json:"bom_complete"`
	BomComments     string `json:"bom_comments"`
	Router          string `json:"router"`
}

// ChildInput es una parte manual con sus hijos anidados (niveles 1-3).
type ChildInput struct {
	PartInput
	Children []ChildInput `json:"children,omitempty"`
}

// GenerateRequest refleja la configuración del generador: parte raíz,
// jerarquía (conteos por nivel en modo aleatorio o hijos anidados en modo
// manual) y las políticas de generación.
type GenerateRequest struct {
	Parent PartInput `json:"parent"`

	// Modo aleatorio: conteos por nivel y campos a poblar.
	Random            bool     `json:"random"`
	Level1Count       int      `json:"level1_count"`
	Level2PerParent   int      `json:"level2_per_parent"`
	Level3PerParent   int      `json:"level3_per_parent"`
	ManufacturedCount int      `json:"manufactured_count"` // primeros N hijos de nivel 1 con Source F
	RandomFields      []string `json:"random_fields,omitempty"`
	Seed              int64    `json:"seed,omitempty"`

	// Modo manual: jerarquía explícita.
	Children []ChildInput `json:"children,omitempty"`

	// Políticas.
	UseLongPartNo       bool `json:"use_long_part_no"`
	ApplyParentRevision bool `json:"apply_parent_revision"`
	ApplyParentLocation bool `json:"apply_parent_location"`
	SequenceIncrement   int  `json:"sequence_increment"` // 1/10/100/1000/10000; 0 = 100
}

// CompareSummaryResponse totales del diff (se devuelve junto al archivo
// cuando la superficie lo pide en JSON).
type CompareSummaryResponse struct {
	Baseline  string `json:"baseline"`
	Candidate string `json:"candidate"`
	Added     int    `json:"added"`
	Removed   int    `json:"removed"`
	Changed   int    `json:"changed"`
	Unchanged int    `json:"unchanged"`
}

// ErrorResponse respuesta de error uniforme de la API.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
