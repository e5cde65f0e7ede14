package lattice

import (
	"fmt"
	"math"
)

// Float64Source is the subset of *rand.Rand the seeder needs.
type Float64Source interface {
	Float64() float64
}

// Seed draws every cell independently: alive with the given probability,
// dead otherwise. Frozen border cells are seeded too. An invalid probability
// leaves the lattice untouched.
func Seed(l *Lattice, src Float64Source, probability float64) error {
	if math.IsNaN(probability) || probability < 0 || probability > 1 {
		return fmt.Errorf("%w: %v", ErrInvalidProbability, probability)
	}
	for i := range l.cells {
		var state uint8
		if src.Float64() < probability {
			state = 1
		}
		l.cells[i].initialize(state, l.maxLife)
	}
	return nil
}
