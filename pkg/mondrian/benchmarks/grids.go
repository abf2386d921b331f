package benchmarks

import (
	"github.com/mihai-snyk/mondrian/pkg/mondrian/partition"
)

// Grid builds an individual with cols columns and rows rows of equal size.
// Every line is drawn end to end and every cell is painted with fill.
func Grid(cols, rows int, fill partition.Color) *partition.Individual {
	vertical := evenLines(cols, rows+1)
	horizontal := evenLines(rows, cols+1)
	return partition.NewIndividual(vertical, horizontal, fill)
}

// Checkerboard is Grid painted with alternating colors.
func Checkerboard(cols, rows int, even, odd partition.Color) *partition.Individual {
	ind := Grid(cols, rows, even)
	for i := range ind.Cells {
		if (ind.Cells[i].Column+ind.Cells[i].Row)%2 == 1 {
			ind.Cells[i].Color = odd
		}
	}
	return ind
}

// Composition is a fixed 5x5-line partition with partial lines and a few
// primary-colored cells, close to the classic red, blue and yellow layout.
func Composition() *partition.Individual {
	vertical := []partition.Line{
		{Position: 0.0, Runs: []int{0, 4}},
		{Position: 0.25, Runs: []int{0, 4}},
		{Position: 0.4, Runs: []int{2, 4}},
		{Position: 0.8, Runs: []int{0, 2}},
		{Position: 1.0, Runs: []int{0, 4}},
	}
	horizontal := []partition.Line{
		{Position: 0.0, Runs: []int{0, 4}},
		{Position: 0.15, Runs: []int{3, 4}},
		{Position: 0.3, Runs: []int{0, 4}},
		{Position: 0.7, Runs: []int{0, 1}},
		{Position: 1.0, Runs: []int{0, 4}},
	}
	ind := partition.NewIndividual(vertical, horizontal, partition.White)
	ind.Cells[ind.CellIndex(0, 3)].Color = partition.Red
	ind.Cells[ind.CellIndex(1, 0)].Color = partition.Blue
	ind.Cells[ind.CellIndex(3, 0)].Color = partition.Yellow
	return ind
}

// evenLines returns n+1 lines at 0, 1/n, ..., 1, each drawn across a
// perpendicular list of the given length.
func evenLines(n, perpendicular int) []partition.Line {
	lines := make([]partition.Line, n+1)
	for i := range lines {
		lines[i] = partition.Line{
			Position: float64(i) / float64(n),
			Runs:     []int{0, perpendicular - 1},
		}
	}
	return lines
}
