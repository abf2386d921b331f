package partition

import (
	"fmt"
	"math/rand/v2"
)

// Region is a rectangle in line-index space. Cells with X1 <= col < X2 and
// Y1 <= row < Y2 are swapped between the children, vertical lines X1..X2 and
// horizontal lines Y1..Y2 have their presence recombined.
type Region struct {
	X1, X2 int
	Y1, Y2 int
}

func (r Region) String() string {
	return fmt.Sprintf("x[%d,%d] y[%d,%d]", r.X1, r.X2, r.Y1, r.Y2)
}

// Contains reports whether the cell at (col, row) lies inside the region.
func (r Region) Contains(col, row int) bool {
	return col >= r.X1 && col < r.X2 && row >= r.Y1 && row < r.Y2
}

func (r Region) fits(a, b *Individual) error {
	for _, p := range []*Individual{a, b} {
		if want := expectedCells(p); len(p.Cells) != want {
			return fmt.Errorf("%w: parent has %d cells, want %d", ErrCellCount, len(p.Cells), want)
		}
	}
	numVertical := min(len(a.Vertical), len(b.Vertical))
	numHorizontal := min(len(a.Horizontal), len(b.Horizontal))
	if r.X1 < 0 || r.X1 >= r.X2 || r.X2 >= numVertical ||
		r.Y1 < 0 || r.Y1 >= r.Y2 || r.Y2 >= numHorizontal {
		return fmt.Errorf("%w: %v with %d vertical and %d horizontal lines shared",
			ErrRegionOutOfRange, r, numVertical, numHorizontal)
	}
	return nil
}

// PickRegion draws two distinct line indices per axis, below the smaller of
// the two parents' line counts on that axis.
func PickRegion(rng *rand.Rand, a, b *Individual) (Region, error) {
	numVertical := min(len(a.Vertical), len(b.Vertical))
	numHorizontal := min(len(a.Horizontal), len(b.Horizontal))
	if numVertical < 2 || numHorizontal < 2 {
		return Region{}, fmt.Errorf("%w: %d vertical and %d horizontal lines shared",
			ErrDegenerateParent, numVertical, numHorizontal)
	}

	x1, x2 := distinctPair(rng, numVertical)
	y1, y2 := distinctPair(rng, numHorizontal)
	return Region{X1: x1, X2: x2, Y1: y1, Y2: y2}, nil
}

func distinctPair(rng *rand.Rand, n int) (int, int) {
	i := rng.IntN(n)
	j := rng.IntN(n - 1)
	if j >= i {
		j++
	}
	return min(i, j), max(i, j)
}

// Crossover picks a random region and recombines a and b over it.
func Crossover(rng *rand.Rand, a, b *Individual) (*Individual, *Individual, error) {
	region, err := PickRegion(rng, a, b)
	if err != nil {
		return nil, nil, err
	}
	return CrossoverRegion(a, b, region)
}

// CrossoverRegion returns two children. Each child is a copy of its own
// parent (childA of a, childB of b) except inside region, where it takes the
// other parent's cell colors and the other parent's line presence. Line
// positions are never changed and the parents are not modified.
func CrossoverRegion(a, b *Individual, region Region) (*Individual, *Individual, error) {
	if err := region.fits(a, b); err != nil {
		return nil, nil, err
	}

	childA := offspring(a)
	childB := offspring(b)
	swapColors(childA, a, b, region)
	swapColors(childB, b, a, region)

	for i := region.X1; i <= region.X2; i++ {
		childA.Vertical[i] = crossLine(a.Vertical[i], b.Vertical[i], region.Y1, region.Y2, len(a.Horizontal))
		childB.Vertical[i] = crossLine(b.Vertical[i], a.Vertical[i], region.Y1, region.Y2, len(b.Horizontal))
	}
	for i := region.Y1; i <= region.Y2; i++ {
		childA.Horizontal[i] = crossLine(a.Horizontal[i], b.Horizontal[i], region.X1, region.X2, len(a.Vertical))
		childB.Horizontal[i] = crossLine(b.Horizontal[i], a.Horizontal[i], region.X1, region.X2, len(b.Vertical))
	}

	return childA, childB, nil
}

// offspring copies the lines of parent and derives fresh cells from them.
func offspring(parent *Individual) *Individual {
	child := &Individual{
		Vertical:   cloneLines(parent.Vertical),
		Horizontal: cloneLines(parent.Horizontal),
	}
	child.GenerateRectangles(DefaultFill)
	return child
}

// swapColors paints child with own's colors, except inside region where the
// color at the same column and row of other is used.
func swapColors(child, own, other *Individual, region Region) {
	for i := range child.Cells {
		col, row := child.Cells[i].Column, child.Cells[i].Row
		if region.Contains(col, row) {
			child.Cells[i].Color = other.CellAt(col, row).Color
		} else {
			child.Cells[i].Color = own.CellAt(col, row).Color
		}
	}
}

// crossLine keeps own's presence outside [lo, hi) and takes other's inside.
// Both lines are expanded over the segments of own's perpendicular list, so
// nothing of own outside the range is lost and the re-encoded runs never
// exceed the last perpendicular line.
func crossLine(own, other Line, lo, hi, perpendicular int) Line {
	r := perpendicular - 1
	bits := SpliceBits(own.Bits(r), other.Bits(r), lo, hi)
	return Line{Position: own.Position, Runs: EncodeRuns(bits)}
}
