// Package partnumber genera números de parte para datos sintéticos.
// Forma corta: secuencia A001, A002, ... A999, B001, ... (única por
// construcción). Forma larga: prefijo único P000001 + sufijo alfanumérico
// aleatorio hasta una longitud total entre 20 y 50 caracteres.
package partnumber

import (
	"fmt"
	"math/rand"
)

const longMin = 20
const longMax = 50

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Sequence produce números de parte únicos dentro de una corrida de
// generación. Se crea una secuencia nueva por documento; la semilla fija
// hace reproducible la parte aleatoria de la forma larga.
type Sequence struct {
	counter int
	rng     *rand.Rand
}

// NewSequence construye la secuencia con la semilla dada.
func NewSequence(seed int64) *Sequence {
	return &Sequence{rng: rand.New(rand.NewSource(seed))}
}

// Next devuelve el siguiente número corto: A001 ... A999, B001, ... CB092.
func (s *Sequence) Next() string {
	prefixIdx := s.counter / 1000
	num := (s.counter % 1000) + 1
	s.counter++
	return fmt.Sprintf("%s%03d", prefixFromIndex(prefixIdx), num)
}

// NextLong devuelve un número único de entre 20 y 50 caracteres.
// El prefijo P000001... garantiza unicidad; el resto es relleno aleatorio.
func (s *Sequence) NextLong() string {
	length := longMin + s.rng.Intn(longMax-longMin+1)
	prefix := fmt.Sprintf("P%06d", s.counter)
	s.counter++
	if len(prefix) >= length {
		return prefix[:length]
	}
	buf := make([]byte, length-len(prefix))
	for i := range buf {
		buf[i] = alphabet[s.rng.Intn(len(alphabet))]
	}
	return prefix + string(buf)
}

// prefixFromIndex convierte un índice a prefijo de letras:
// 0->A, 1->B, ... 25->Z, 26->AA, 27->AB, ...
func prefixFromIndex(i int) string {
	if i < 26 {
		return string(rune('A' + i))
	}
	first := (i - 26) / 26
	second := (i - 26) % 26
	return string([]rune{rune('A' + first), rune('A' + second)})
}
