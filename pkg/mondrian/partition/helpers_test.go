package partition

import (
	"math/rand/v2"
)

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, 0x9e3779b97f4a7c15))
}

// grid builds cols x rows equal cells with every line drawn end to end.
func grid(cols, rows int, fill Color) *Individual {
	vertical := make([]Line, cols+1)
	for i := range vertical {
		vertical[i] = Line{Position: float64(i) / float64(cols), Runs: []int{0, rows}}
	}
	horizontal := make([]Line, rows+1)
	for i := range horizontal {
		horizontal[i] = Line{Position: float64(i) / float64(rows), Runs: []int{0, cols}}
	}
	return NewIndividual(vertical, horizontal, fill)
}

func paint(ind *Individual, colors ...Color) *Individual {
	for i := range ind.Cells {
		ind.Cells[i].Color = colors[i%len(colors)]
	}
	return ind
}
