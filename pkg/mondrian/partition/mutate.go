package partition

import (
	"math"
	"math/rand/v2"
)

// DefaultExpectedMutations is the number of cells a mutation repaints on
// average, whatever the size of the partition.
const DefaultExpectedMutations = 10.0

// Mutator repaints cells. Lines are never touched.
type Mutator struct {
	Palette           *Palette
	ExpectedMutations float64
}

// NewMutator returns a mutator with the default palette and rate.
func NewMutator() *Mutator {
	return &Mutator{
		Palette:           DefaultPalette(),
		ExpectedMutations: DefaultExpectedMutations,
	}
}

// Rate is the per-cell mutation probability for a partition with the given
// number of cells, min(1, ExpectedMutations/cells).
func (m *Mutator) Rate(cells int) float64 {
	if cells <= 0 {
		return 0
	}
	return math.Min(1, m.ExpectedMutations/float64(cells))
}

// Mutate repaints each cell of ind with probability Rate and returns how many
// cells were repainted.
func (m *Mutator) Mutate(rng *rand.Rand, ind *Individual) int {
	return m.MutateWithRate(rng, ind, m.Rate(len(ind.Cells)))
}

// MutateWithRate is Mutate with an explicit per-cell probability.
func (m *Mutator) MutateWithRate(rng *rand.Rand, ind *Individual, rate float64) int {
	mutated := 0
	for i := range ind.Cells {
		if rng.Float64() < rate {
			ind.Cells[i].Color = m.Palette.Draw(rng)
			mutated++
		}
	}
	return mutated
}
