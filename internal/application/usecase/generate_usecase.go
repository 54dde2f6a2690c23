package usecase

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/bomgen/internal/application/dto"
	"github.com/jhoicas/bomgen/internal/domain"
	"github.com/jhoicas/bomgen/internal/domain/bom"
	"github.com/jhoicas/bomgen/internal/domain/entity"
	"github.com/jhoicas/bomgen/internal/domain/partnumber"
)

// Campos que se pueblan por defecto en modo aleatorio cuando el usuario no
// selecciona ninguno (igual que el formulario).
var defaultRandomFields = []string{"PartNo", "Description", "Quantity", "Cost"}

// Catálogos para datos sintéticos.
var (
	randomLocations    = []string{"GS", "WH", "FL", "RM", "WS", "DC"}
	randomSortCodes    = []string{"COMPBX", "HARDWARE", "LEVEL-1", "LEVEL-2", "ELECTRIC", "ELWR", "SHTCRS", "BARSS", "SHTALUM"}
	randomUMs          = []string{"EA", "FT", "M", "KG", "L", "P", "J", "F", "SF", "SI"}
	randomDescExtras   = []string{"EXTRA", "OPTION", "VARIANT"}
	randomProductlines = []string{"JM", "FG", "RM", "CM", "CP"}
	randomTags         = []string{"TG", "TAG1", "TAG2"}
)

const maxCollisionRetries = 1000

// GenerateUseCase construye un documento BOM desde la configuración de la
// superficie (manual o aleatorio) y lo vuelca sobre la plantilla.
type GenerateUseCase struct {
	adapter TemplateAdapter
}

// NewGenerateUseCase construye el caso de uso.
func NewGenerateUseCase(adapter TemplateAdapter) *GenerateUseCase {
	return &GenerateUseCase{adapter: adapter}
}

// Generate construye y valida el documento. El resultado siempre cumple los
// invariantes del modelo (números de parte únicos, jerarquía 0-3 válida,
// límites de longitud).
func (uc *GenerateUseCase) Generate(_ context.Context, req dto.GenerateRequest) (*entity.Document, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	b, err := newBuilder(req)
	if err != nil {
		return nil, err
	}
	if req.Random {
		err = b.buildRandom()
	} else {
		err = b.buildManual()
	}
	if err != nil {
		return nil, err
	}
	b.applyParentPolicies()

	doc := b.doc
	if err := bom.Validate(doc, bom.Options{LongPartNo: req.UseLongPartNo}); err != nil {
		return nil, err
	}
	return doc, nil
}

// GenerateFile genera el documento y lo escribe sobre la plantilla en w.
// template nil usa el layout propio del adaptador.
func (uc *GenerateUseCase) GenerateFile(ctx context.Context, req dto.GenerateRequest, template io.Reader, w io.Writer) (*entity.Document, error) {
	doc, err := uc.Generate(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := uc.adapter.Write(doc, template, w); err != nil {
		return nil, err
	}
	return doc, nil
}

func validateRequest(req dto.GenerateRequest) error {
	if req.Parent.PartNo == "" {
		return fmt.Errorf("PartNo del padre es requerido: %w", domain.ErrValidation)
	}
	if req.Level1Count < 0 || req.Level2PerParent < 0 || req.Level3PerParent < 0 {
		return fmt.Errorf("los conteos por nivel no pueden ser negativos: %w", domain.ErrValidation)
	}
	if req.ManufacturedCount < 0 || req.ManufacturedCount > req.Level1Count {
		return fmt.Errorf("conteo de fabricados fuera de rango: %w", domain.ErrValidation)
	}
	if req.SequenceIncrement < 0 {
		return fmt.Errorf("incremento de secuencia negativo: %w", domain.ErrValidation)
	}
	return nil
}

// builder acumula el documento durante una generación. Estado fresco por
// invocación: sin contadores globales.
type builder struct {
	req       dto.GenerateRequest
	doc       *entity.Document
	seq       *partnumber.Sequence
	rng       *rand.Rand
	used      map[string]struct{}
	seqByLvl  map[int]int // contador de Sequence por nivel (se reinicia por nivel, no por padre)
	increment int
	fields    map[string]struct{}
}

func newBuilder(req dto.GenerateRequest) (*builder, error) {
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	increment := req.SequenceIncrement
	if increment == 0 {
		increment = 100
	}

	fieldList := req.RandomFields
	if len(fieldList) == 0 {
		fieldList = defaultRandomFields
	}
	fields := make(map[string]struct{}, len(fieldList)+5)
	for _, f := range fieldList {
		fields[f] = struct{}{}
	}
	// Campos estructurales siempre presentes.
	for _, f := range []string{"PartNo", "Quantity", "Level", "Parent", "Sequence"} {
		fields[f] = struct{}{}
	}

	b := &builder{
		req:       req,
		seq:       partnumber.NewSequence(seed),
		rng:       rand.New(rand.NewSource(seed)),
		used:      make(map[string]struct{}),
		seqByLvl:  make(map[int]int),
		increment: increment,
		fields:    fields,
	}

	root, err := partFromInput(req.Parent)
	if err != nil {
		return nil, err
	}
	root.Level = 0
	root.Parent = ""
	root.Sequence = 0
	if root.Quantity.IsZero() {
		root.Quantity = decimal.NewFromInt(1)
	}
	if root.UM == "" {
		root.UM = "EA"
	}
	if root.Productline == "" {
		root.Productline = "FG"
	}
	if root.Source == "" {
		root.Source = entity.SourceManufacturedStk
	}

	b.doc = entity.NewDocument(root.PartNo)
	b.doc.Add(root)
	b.used[root.PartNo] = struct{}{}
	return b, nil
}

// buildManual agrega la jerarquía explícita de la petición (niveles 1-3).
func (b *builder) buildManual() error {
	return b.addManualChildren(b.req.Children, b.doc.Name, 1)
}

func (b *builder) addManualChildren(children []dto.ChildInput, parentPartNo string, level int) error {
	if len(children) == 0 {
		return nil
	}
	if level > entity.MaxLevel {
		return fmt.Errorf("jerarquía manual excede el nivel %d: %w", entity.MaxLevel, domain.ErrInvalidLevel)
	}
	for i := range children {
		p, err := partFromInput(children[i].PartInput)
		if err != nil {
			return err
		}
		p.Level = level
		p.Parent = parentPartNo
		p.Sequence = b.nextSequence(level)
		if p.Quantity.IsZero() {
			p.Quantity = decimal.NewFromInt(1)
		}
		if p.UM == "" {
			p.UM = "EA"
		}
		b.doc.Add(p)
		if err := b.addManualChildren(children[i].Children, p.PartNo, level+1); err != nil {
			return err
		}
	}
	return nil
}

// buildRandom genera la jerarquía sintética: nivel 1 bajo la raíz, nivel 2
// bajo los nivel 1 fabricados y nivel 3 bajo los nivel 2 fabricados.
func (b *builder) buildRandom() error {
	var level1 []string
	for i := 0; i < b.req.Level1Count; i++ {
		p, err := b.randomPart(b.doc.Name, 1)
		if err != nil {
			return err
		}
		// Los primeros N hijos de nivel 1 salen Manufactured to Job; el
		// resto Purchase to Job. Productline acompaña al Source.
		if i < b.req.ManufacturedCount {
			p.Source = entity.SourceManufacturedJob
			p.Productline = "CP"
		} else {
			p.Source = entity.SourcePurchaseJob
			p.Productline = "CM"
		}
		b.doc.Add(p)
		level1 = append(level1, p.PartNo)
	}

	if b.req.Level2PerParent == 0 {
		return nil
	}
	var parents2 []string
	for _, pn := range level1 {
		if b.doc.Find(pn).IsManufactured() {
			parents2 = append(parents2, pn)
		}
	}
	// Solo partes fabricadas pueden tener sub-componentes.
	if len(parents2) == 0 {
		return fmt.Errorf("ningún componente de nivel 1 tiene Source de fabricación (M o F): %w", domain.ErrValidation)
	}

	var level2 []string
	for _, parent := range parents2 {
		for i := 0; i < b.req.Level2PerParent; i++ {
			p, err := b.randomPart(parent, 2)
			if err != nil {
				return err
			}
			if b.req.Level3PerParent > 0 {
				p.Source = entity.SourceManufacturedJob
				p.Productline = "CP"
			} else {
				p.Source = entity.SourcePurchaseJob
				p.Productline = "CM"
			}
			b.doc.Add(p)
			level2 = append(level2, p.PartNo)
		}
	}

	for _, parent := range level2 {
		for i := 0; i < b.req.Level3PerParent; i++ {
			p, err := b.randomPart(parent, 3)
			if err != nil {
				return err
			}
			p.Source = entity.SourcePurchaseJob
			p.Productline = "CM"
			b.doc.Add(p)
		}
	}
	return nil
}

// randomPart genera una fila sintética. Solo los campos seleccionados
// reciben valor; el resto queda en blanco. Regenera el PartNo ante una
// colisión con claves ya usadas.
func (b *builder) randomPart(parentPartNo string, level int) (entity.Part, error) {
	var partNo string
	for attempt := 0; ; attempt++ {
		if attempt >= maxCollisionRetries {
			return entity.Part{}, fmt.Errorf("sin PartNo libre tras %d intentos: %w", attempt, domain.ErrPartNoCollision)
		}
		if b.req.UseLongPartNo {
			partNo = b.seq.NextLong()
		} else {
			partNo = b.seq.Next()
		}
		if _, taken := b.used[partNo]; !taken && partNo != parentPartNo {
			break
		}
	}
	b.used[partNo] = struct{}{}

	p := entity.Part{
		PartNo:   partNo,
		Level:    level,
		Parent:   parentPartNo,
		Sequence: b.nextSequence(level),
		Quantity: decimal.NewFromInt(int64(1 + b.rng.Intn(10))),
		UM:       "EA",
	}
	if b.has("Revision") {
		p.Revision = fmt.Sprintf("R%02d", 1+b.rng.Intn(5))
	}
	if b.has("Description") {
		p.Description = partNo + " Desc"
	}
	if b.has("AltDescription1") {
		p.AltDescription1 = fmt.Sprintf("ALT-DESC-%d", 1+b.rng.Intn(3))
	}
	if b.has("AltDescription2") {
		p.AltDescription2 = fmt.Sprintf("ALT-DESC-%d", 1+b.rng.Intn(3))
	}
	if b.has("DescExtra") {
		p.DescExtra = b.pick(randomDescExtras)
	}
	if b.has("IssueUM") {
		p.IssueUM = "EA"
	}
	if b.has("ConsumptionConv") {
		p.ConsumptionConv = decimal.NewFromFloat(0.25 + b.rng.Float64()*1.75).Round(2).String()
	}
	if b.has("UM") {
		p.UM = b.pick(randomUMs)
	}
	if b.has("Cost") {
		p.Cost = decimal.NewFromFloat(0.5 + b.rng.Float64()*249.5).Round(2)
	}
	if b.has("Drawing") {
		p.Drawing = fmt.Sprintf("DRAW%d", 1+b.rng.Intn(99))
	}
	if b.has("Leadtime") {
		p.Leadtime = fmt.Sprintf("%d", 1+b.rng.Intn(21))
	}
	if b.has("Location") {
		p.Location = b.pick(randomLocations)
	}
	if b.has("Memo1") {
		p.Memo1 = fmt.Sprintf("MEM%d", 1+b.rng.Intn(3))
	}
	if b.has("Memo2") {
		p.Memo2 = fmt.Sprintf("MEM%d", 1+b.rng.Intn(3))
	}
	if b.has("Productline") {
		p.Productline = b.pick(randomProductlines)
	}
	if b.has("SortCode") {
		p.SortCode = b.pick(randomSortCodes)
	}
	if b.has("Tag") {
		p.Tag = b.pick(randomTags)
	}
	if b.has("BomComments") {
		p.BomComments = fmt.Sprintf("BOMCOMMENTS-%d", 1+b.rng.Intn(5))
	}
	return p, nil
}

// applyParentPolicies copia Revision/Location del padre a todos los hijos
// (niveles 1-3) cuando las políticas lo piden. Sobrescritura explícita
// pedida por el usuario, no corrección de errores.
func (b *builder) applyParentPolicies() {
	root := b.doc.Root()
	for i := range b.doc.Parts {
		p := &b.doc.Parts[i]
		if p.IsRoot() {
			continue
		}
		if b.req.ApplyParentRevision {
			p.Revision = root.Revision
		}
		if b.req.ApplyParentLocation {
			p.Location = root.Location
		}
	}
}

// nextSequence avanza el contador del nivel: increment, 2*increment, ...
// La raíz queda en 0; cada nivel reinicia.
func (b *builder) nextSequence(level int) int {
	b.seqByLvl[level]++
	return b.seqByLvl[level] * b.increment
}

func (b *builder) has(field string) bool {
	_, ok := b.fields[field]
	return ok
}

func (b *builder) pick(opts []string) string {
	return opts[b.rng.Intn(len(opts))]
}

// partFromInput convierte el DTO de la superficie en la entidad,
// parseando los numéricos con decimal.
func partFromInput(in dto.PartInput) (entity.Part, error) {
	p := entity.Part{
		PartNo:          in.PartNo,
		Revision:        in.Revision,
		Description:     in.Description,
		AltDescription1: in.AltDescription1,
		AltDescription2: in.AltDescription2,
		DescExtra:       in.DescExtra,
		IssueUM:         in.IssueUM,
		ConsumptionConv: in.ConsumptionConv,
		UM:              in.UM,
		Source:          in.Source,
		Drawing:         in.Drawing,
		Leadtime:        in.Leadtime,
		Location:        in.Location,
		Memo1:           in.Memo1,
		Memo2:           in.Memo2,
		Productline:     in.Productline,
		SortCode:        in.SortCode,
		Tag:             in.Tag,
		Category:        in.Category,
		BomComplete:     in.BomComplete,
		BomComments:     in.BomComments,
		Router:          in.Router,
	}
	if in.Quantity != "" {
		q, err := decimal.NewFromString(in.Quantity)
		if err != nil {
			return entity.Part{}, fmt.Errorf("cantidad %q de %q: %w", in.Quantity, in.PartNo, domain.ErrValidation)
		}
		p.Quantity = q
	}
	if in.Cost != "" {
		c, err := decimal.NewFromString(in.Cost)
		if err != nil {
			return entity.Part{}, fmt.Errorf("costo %q de %q: %w", in.Cost, in.PartNo, domain.ErrValidation)
		}
		p.Cost = c
	}
	return p, nil
}
