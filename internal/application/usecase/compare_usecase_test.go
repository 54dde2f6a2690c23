package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bomgen/internal/application/usecase"
	"github.com/jhoicas/bomgen/internal/domain"
	"github.com/jhoicas/bomgen/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

func compareUC() *usecase.CompareUseCase {
	// El comparador puro no usa los puertos de reporte.
	return usecase.NewCompareUseCase(nil, nil)
}

func docWith(name string, parts ...entity.Part) *entity.Document {
	d := entity.NewDocument(name)
	for _, p := range parts {
		d.Add(p)
	}
	return d
}

func line(partNo, revision, description string, qty int64, location string) entity.Part {
	return entity.Part{
		PartNo:      partNo,
		Revision:    revision,
		Description: description,
		Quantity:    decimal.NewFromInt(qty),
		Location:    location,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Compare
// ──────────────────────────────────────────────────────────────────────────────

// Propiedad: comparar un documento consigo mismo solo da UNCHANGED.
func TestCompare_ConsigoMismo_SoloUnchanged(t *testing.T) {
	doc := docWith("A",
		line("P1", "A", "Parte 1", 5, "WH"),
		line("P2", "B", "Parte 2", 1, "GS"),
	)
	entries, err := compareUC().Compare(context.Background(), doc, doc)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, entity.DiffUnchanged, e.Status)
	}
}

// Escenario del contrato: P1 rev A→B, qty igual → un CHANGED con solo el
// campo Revision.
func TestCompare_CambioDeRevision(t *testing.T) {
	baseline := docWith("A", line("P1", "A", "Parte 1", 5, ""))
	candidate := docWith("B", line("P1", "B", "Parte 1", 5, ""))

	entries, err := compareUC().Compare(context.Background(), baseline, candidate)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	e := entries[0]
	assert.Equal(t, entity.DiffChanged, e.Status)
	assert.Equal(t, "P1", e.PartNo)
	require.Len(t, e.Changes, 1, "Quantity no cambió, no debe listarse")
	assert.Equal(t, entity.FieldRevision, e.Changes[0].Field)
	assert.Equal(t, "A", e.Changes[0].Old)
	assert.Equal(t, "B", e.Changes[0].New)
}

// Escenario: {P1,P2} vs {P1,P3} → P1 según campos, REMOVED(P2), ADDED(P3)
// al final en el orden del candidato.
func TestCompare_AgregadosYRemovidos(t *testing.T) {
	baseline := docWith("A",
		line("P1", "A", "Parte 1", 1, ""),
		line("P2", "A", "Parte 2", 1, ""),
	)
	candidate := docWith("B",
		line("P1", "A", "Parte 1", 1, ""),
		line("P3", "A", "Parte 3", 1, ""),
	)

	entries, err := compareUC().Compare(context.Background(), baseline, candidate)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, entity.DiffUnchanged, entries[0].Status)
	assert.Equal(t, "P1", entries[0].PartNo)
	assert.Equal(t, entity.DiffRemoved, entries[1].Status)
	assert.Equal(t, "P2", entries[1].PartNo)
	assert.Equal(t, entity.DiffAdded, entries[2].Status)
	assert.Equal(t, "P3", entries[2].PartNo)
}

// Propiedad: al invertir los roles, ADDED y REMOVED se intercambian y los
// CHANGED conservan los campos con viejo/nuevo intercambiado.
func TestCompare_InvertirRoles(t *testing.T) {
	baseline := docWith("A",
		line("P1", "A", "Parte 1", 5, ""),
		line("P2", "A", "Parte 2", 1, ""),
	)
	candidate := docWith("B",
		line("P1", "B", "Parte 1", 5, ""),
		line("P3", "A", "Parte 3", 1, ""),
	)

	uc := compareUC()
	forward, err := uc.Compare(context.Background(), baseline, candidate)
	require.NoError(t, err)
	backward, err := uc.Compare(context.Background(), candidate, baseline)
	require.NoError(t, err)

	byPart := func(entries []entity.DiffEntry) map[string]entity.DiffEntry {
		m := make(map[string]entity.DiffEntry)
		for _, e := range entries {
			m[e.PartNo] = e
		}
		return m
	}
	f, b := byPart(forward), byPart(backward)

	assert.Equal(t, entity.DiffRemoved, f["P2"].Status)
	assert.Equal(t, entity.DiffAdded, b["P2"].Status)
	assert.Equal(t, entity.DiffAdded, f["P3"].Status)
	assert.Equal(t, entity.DiffRemoved, b["P3"].Status)

	require.Len(t, f["P1"].Changes, 1)
	require.Len(t, b["P1"].Changes, 1)
	assert.Equal(t, f["P1"].Changes[0].Old, b["P1"].Changes[0].New)
	assert.Equal(t, f["P1"].Changes[0].New, b["P1"].Changes[0].Old)
}

// Caso: Quantity se compara como decimal, no como texto ("1" == "1.0").
func TestCompare_CantidadEquivalenteDecimal(t *testing.T) {
	q1, err := decimal.NewFromString("1")
	require.NoError(t, err)
	q2, err := decimal.NewFromString("1.0")
	require.NoError(t, err)

	p1 := line("P1", "A", "Parte 1", 1, "")
	p1.Quantity = q1
	p2 := line("P1", "A", "Parte 1", 1, "")
	p2.Quantity = q2

	entries, err := compareUC().Compare(context.Background(), docWith("A", p1), docWith("B", p2))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, entity.DiffUnchanged, entries[0].Status)
}

// Caso: varios campos cambiados se listan todos en una sola entrada.
func TestCompare_VariosCamposCambiados(t *testing.T) {
	baseline := docWith("A", line("P1", "A", "Parte 1", 5, "WH"))
	candidate := docWith("B", line("P1", "B", "Parte uno", 3, "GS"))

	entries, err := compareUC().Compare(context.Background(), baseline, candidate)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Len(t, entries[0].Changes, 4)

	fields := make([]string, 0, 4)
	for _, ch := range entries[0].Changes {
		fields = append(fields, ch.Field)
	}
	assert.Equal(t, []string{
		entity.FieldRevision, entity.FieldDescription,
		entity.FieldQuantity, entity.FieldLocation,
	}, fields)
}

// Caso: PartNo duplicado en un documento → error de calidad de datos.
func TestCompare_DuplicadoEnDocumento_Rechazado(t *testing.T) {
	baseline := docWith("A",
		line("P1", "A", "Parte 1", 1, ""),
		line("P1", "B", "Parte 1 bis", 1, ""),
	)
	candidate := docWith("B", line("P1", "A", "Parte 1", 1, ""))

	_, err := compareUC().Compare(context.Background(), baseline, candidate)
	assert.ErrorIs(t, err, domain.ErrDuplicatePartNo)

	// También del lado candidato.
	_, err = compareUC().Compare(context.Background(), candidate, baseline)
	assert.ErrorIs(t, err, domain.ErrDuplicatePartNo)
}

// Caso: la alineación es sensible a mayúsculas ("p1" ≠ "P1").
func TestCompare_SensibleAMayusculas(t *testing.T) {
	baseline := docWith("A", line("P1", "A", "Parte 1", 1, ""))
	candidate := docWith("B", line("p1", "A", "Parte 1", 1, ""))

	entries, err := compareUC().Compare(context.Background(), baseline, candidate)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, entity.DiffRemoved, entries[0].Status)
	assert.Equal(t, entity.DiffAdded, entries[1].Status)
}
