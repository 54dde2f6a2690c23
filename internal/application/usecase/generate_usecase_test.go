package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bomgen/internal/application/dto"
	"github.com/jhoicas/bomgen/internal/application/usecase"
	"github.com/jhoicas/bomgen/internal/domain"
	"github.com/jhoicas/bomgen/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func generateUC() *usecase.GenerateUseCase {
	// Generate no toca el adaptador de plantilla.
	return usecase.NewGenerateUseCase(nil)
}

func randomReq() dto.GenerateRequest {
	return dto.GenerateRequest{
		Parent: dto.PartInput{PartNo: "ROOT-100", Revision: "A", Location: "WH"},
		Random: true,
		Seed:   42,
	}
}

func partsByLevel(doc *entity.Document, level int) []entity.Part {
	var out []entity.Part
	for _, p := range doc.Parts {
		if p.Level == level {
			out = append(out, p)
		}
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Generate
// ──────────────────────────────────────────────────────────────────────────────

// Escenario del contrato: 3 de nivel 1 (2 fabricados) con 2 de nivel 2 bajo
// cada fabricado → 1 + 3 + 4 = 8 partes.
func TestGenerate_ConteosPorNivel(t *testing.T) {
	req := randomReq()
	req.Level1Count = 3
	req.ManufacturedCount = 2
	req.Level2PerParent = 2

	doc, err := generateUC().Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 8, doc.Len())
	assert.Len(t, partsByLevel(doc, 0), 1)
	assert.Len(t, partsByLevel(doc, 1), 3)
	assert.Len(t, partsByLevel(doc, 2), 4)
	assert.Empty(t, partsByLevel(doc, 3))
}

// Caso: los primeros N hijos de nivel 1 son fabricados (F/CP), el resto
// comprados (J/CM).
func TestGenerate_RepartoFabricados(t *testing.T) {
	req := randomReq()
	req.Level1Count = 4
	req.ManufacturedCount = 2

	doc, err := generateUC().Generate(context.Background(), req)
	require.NoError(t, err)

	l1 := partsByLevel(doc, 1)
	require.Len(t, l1, 4)
	assert.Equal(t, entity.SourceManufacturedJob, l1[0].Source)
	assert.Equal(t, "CP", l1[0].Productline)
	assert.Equal(t, entity.SourceManufacturedJob, l1[1].Source)
	assert.Equal(t, entity.SourcePurchaseJob, l1[2].Source)
	assert.Equal(t, "CM", l1[2].Productline)
	assert.Equal(t, entity.SourcePurchaseJob, l1[3].Source)
}

// Caso: nivel 2 pedido sin ningún nivel 1 fabricado → error de validación.
func TestGenerate_Nivel2SinFabricados(t *testing.T) {
	req := randomReq()
	req.Level1Count = 3
	req.ManufacturedCount = 0
	req.Level2PerParent = 2

	_, err := generateUC().Generate(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// Caso: conteos negativos y fabricados fuera de rango se rechazan antes de
// generar nada.
func TestGenerate_PeticionInvalida(t *testing.T) {
	uc := generateUC()

	req := randomReq()
	req.Level1Count = -1
	_, err := uc.Generate(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrValidation)

	req = randomReq()
	req.Level1Count = 2
	req.ManufacturedCount = 3
	_, err = uc.Generate(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrValidation)

	req = randomReq()
	req.Parent.PartNo = ""
	_, err = uc.Generate(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// Caso: Sequence por nivel parte del incremento y avanza de a incremento;
// la raíz queda en 0 y cada nivel reinicia su contador.
func TestGenerate_SecuenciaPorNivel(t *testing.T) {
	req := randomReq()
	req.Level1Count = 3
	req.ManufacturedCount = 1
	req.Level2PerParent = 2

	doc, err := generateUC().Generate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 0, doc.Root().Sequence)
	l1 := partsByLevel(doc, 1)
	assert.Equal(t, []int{100, 200, 300}, []int{l1[0].Sequence, l1[1].Sequence, l1[2].Sequence})
	l2 := partsByLevel(doc, 2)
	assert.Equal(t, []int{100, 200}, []int{l2[0].Sequence, l2[1].Sequence})
}

// Caso: incremento de secuencia configurable.
func TestGenerate_IncrementoPersonalizado(t *testing.T) {
	req := randomReq()
	req.Level1Count = 2
	req.SequenceIncrement = 10

	doc, err := generateUC().Generate(context.Background(), req)
	require.NoError(t, err)

	l1 := partsByLevel(doc, 1)
	assert.Equal(t, 10, l1[0].Sequence)
	assert.Equal(t, 20, l1[1].Sequence)
}

// Caso: las políticas de padre copian Revision/Location de la raíz a todos
// los hijos.
func TestGenerate_PoliticasDePadre(t *testing.T) {
	req := randomReq()
	req.Level1Count = 2
	req.ApplyParentRevision = true
	req.ApplyParentLocation = true

	doc, err := generateUC().Generate(context.Background(), req)
	require.NoError(t, err)

	for _, p := range partsByLevel(doc, 1) {
		assert.Equal(t, "A", p.Revision)
		assert.Equal(t, "WH", p.Location)
	}
}

// Caso: modo largo → los PartNo generados quedan entre 20 y 50 caracteres.
func TestGenerate_PartNoLargo(t *testing.T) {
	req := randomReq()
	req.Level1Count = 10
	req.UseLongPartNo = true
	req.Parent.PartNo = "ROOT-LARGO-PRINCIPAL"

	doc, err := generateUC().Generate(context.Background(), req)
	require.NoError(t, err)

	for _, p := range partsByLevel(doc, 1) {
		assert.GreaterOrEqual(t, len(p.PartNo), entity.PartNoMaxLen)
		assert.LessOrEqual(t, len(p.PartNo), entity.PartNoMaxLenLong)
	}
}

// Caso: un PartNo de la secuencia ya tomado por la raíz se salta y se
// regenera; todos los números siguen siendo únicos.
func TestGenerate_ColisionConClaveTomada(t *testing.T) {
	req := randomReq()
	req.Parent.PartNo = "A001" // primer valor de la secuencia corta
	req.Level1Count = 3

	doc, err := generateUC().Generate(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 4, doc.Len())

	seen := make(map[string]int)
	for _, p := range doc.Parts {
		seen[p.PartNo]++
	}
	assert.Len(t, seen, 4, "ningún PartNo repetido")
	assert.Equal(t, 1, seen["A001"], "A001 solo en la raíz")
	for _, p := range partsByLevel(doc, 1) {
		assert.NotEqual(t, "A001", p.PartNo)
	}
}

// Propiedad: misma semilla → mismo documento.
func TestGenerate_SemillaReproducible(t *testing.T) {
	req := randomReq()
	req.Level1Count = 5
	req.ManufacturedCount = 2
	req.Level2PerParent = 3
	req.Level3PerParent = 1

	uc := generateUC()
	a, err := uc.Generate(context.Background(), req)
	require.NoError(t, err)
	b, err := uc.Generate(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, a.Len(), b.Len())
	for i := range a.Parts {
		assert.Equal(t, a.Parts[i].PartNo, b.Parts[i].PartNo)
		assert.True(t, a.Parts[i].Quantity.Equal(b.Parts[i].Quantity))
		assert.Equal(t, a.Parts[i].Cost.String(), b.Parts[i].Cost.String())
	}
}

// Caso: jerarquía manual anidada con padres correctos por nivel.
func TestGenerate_JerarquiaManual(t *testing.T) {
	req := dto.GenerateRequest{
		Parent: dto.PartInput{PartNo: "ASM-001", Quantity: "1"},
		Children: []dto.ChildInput{
			{
				PartInput: dto.PartInput{PartNo: "SUB-001", Quantity: "2"},
				Children: []dto.ChildInput{
					{PartInput: dto.PartInput{PartNo: "CMP-001", Quantity: "4"}},
				},
			},
			{PartInput: dto.PartInput{PartNo: "SUB-002", Quantity: "1"}},
		},
	}

	doc, err := generateUC().Generate(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 4, doc.Len())

	sub := doc.Find("SUB-001")
	require.NotNil(t, sub)
	assert.Equal(t, 1, sub.Level)
	assert.Equal(t, "ASM-001", sub.Parent)

	cmp := doc.Find("CMP-001")
	require.NotNil(t, cmp)
	assert.Equal(t, 2, cmp.Level)
	assert.Equal(t, "SUB-001", cmp.Parent)
}

// Caso: anidar más allá del nivel 3 se rechaza.
func TestGenerate_JerarquiaManualMuyProfunda(t *testing.T) {
	req := dto.GenerateRequest{
		Parent: dto.PartInput{PartNo: "ASM-001"},
		Children: []dto.ChildInput{{
			PartInput: dto.PartInput{PartNo: "L1"},
			Children: []dto.ChildInput{{
				PartInput: dto.PartInput{PartNo: "L2"},
				Children: []dto.ChildInput{{
					PartInput: dto.PartInput{PartNo: "L3"},
					Children: []dto.ChildInput{{
						PartInput: dto.PartInput{PartNo: "L4"},
					}},
				}},
			}},
		}},
	}

	_, err := generateUC().Generate(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrInvalidLevel)
}

// Caso: cantidad no numérica en la petición → error de validación.
func TestGenerate_CantidadInvalida(t *testing.T) {
	req := dto.GenerateRequest{
		Parent: dto.PartInput{PartNo: "ASM-001", Quantity: "mucha"},
	}
	_, err := generateUC().Generate(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

// Caso: valores por defecto de la raíz (Quantity 1, UM EA, Productline FG,
// Source M).
func TestGenerate_DefaultsDeRaiz(t *testing.T) {
	req := dto.GenerateRequest{Parent: dto.PartInput{PartNo: "ASM-001"}}

	doc, err := generateUC().Generate(context.Background(), req)
	require.NoError(t, err)

	root := doc.Root()
	require.NotNil(t, root)
	assert.True(t, root.Quantity.Equal(decimal.NewFromInt(1)))
	assert.Equal(t, "EA", root.UM)
	assert.Equal(t, "FG", root.Productline)
	assert.Equal(t, entity.SourceManufacturedStk, root.Source)
	assert.Equal(t, 0, root.Sequence)
	assert.Empty(t, root.Parent)
}
