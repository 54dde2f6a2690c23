package partnumber_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bomgen/internal/domain/partnumber"
)

func TestSequence_FormaCorta(t *testing.T) {
	seq := partnumber.NewSequence(1)
	assert.Equal(t, "A001", seq.Next())
	assert.Equal(t, "A002", seq.Next())
	assert.Equal(t, "A003", seq.Next())
}

// Caso: el prefijo avanza cada 1000 números (A..., B..., ... AA...).
func TestSequence_CambioDePrefijo(t *testing.T) {
	seq := partnumber.NewSequence(1)
	var last string
	for i := 0; i < 1001; i++ {
		last = seq.Next()
	}
	assert.Equal(t, "B001", last)
}

func TestSequence_UnicidadFormaCorta(t *testing.T) {
	seq := partnumber.NewSequence(1)
	seen := make(map[string]struct{})
	for i := 0; i < 2500; i++ {
		pn := seq.Next()
		_, dup := seen[pn]
		require.False(t, dup, "PartNo %q repetido en la secuencia", pn)
		seen[pn] = struct{}{}
	}
}

// Caso: la forma larga siempre queda entre 20 y 50 caracteres.
func TestSequence_FormaLarga_LongitudEnRango(t *testing.T) {
	seq := partnumber.NewSequence(42)
	for i := 0; i < 500; i++ {
		pn := seq.NextLong()
		assert.GreaterOrEqual(t, len(pn), 20, "PartNo %q demasiado corto", pn)
		assert.LessOrEqual(t, len(pn), 50, "PartNo %q demasiado largo", pn)
	}
}

func TestSequence_FormaLarga_Unicidad(t *testing.T) {
	seq := partnumber.NewSequence(42)
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		pn := seq.NextLong()
		_, dup := seen[pn]
		require.False(t, dup, "PartNo %q repetido", pn)
		seen[pn] = struct{}{}
	}
}

func TestSequence_FormaLarga_PrefijoUnico(t *testing.T) {
	seq := partnumber.NewSequence(7)
	assert.Equal(t, "P000000", seq.NextLong()[:7])
	assert.Equal(t, "P000001", seq.NextLong()[:7])
}

// Caso: misma semilla → misma secuencia (reproducibilidad).
func TestSequence_Reproducible(t *testing.T) {
	a := partnumber.NewSequence(99)
	b := partnumber.NewSequence(99)
	for i := 0; i < 50; i++ {
		assert.Equal(t, a.NextLong(), b.NextLong())
	}
}
