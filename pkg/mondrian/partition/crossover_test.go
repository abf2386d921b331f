package partition

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Crossing two 3x3-line individuals over x[0,1] y[0,1] swaps cell (0, 0) only.
func TestCrossoverSwapsSingleCell(t *testing.T) {
	a := grid(2, 2, Red)
	b := grid(2, 2, Blue)

	childA, childB, err := CrossoverRegion(a, b, Region{X1: 0, X2: 1, Y1: 0, Y2: 1})
	require.NoError(t, err)

	for col := range 2 {
		for row := range 2 {
			wantA, wantB := Red, Blue
			if col == 0 && row == 0 {
				wantA, wantB = Blue, Red
			}
			assert.Equal(t, wantA, childA.CellAt(col, row).Color, "childA (%d, %d)", col, row)
			assert.Equal(t, wantB, childB.CellAt(col, row).Color, "childB (%d, %d)", col, row)
		}
	}
	assert.True(t, IsValid(childA))
	assert.True(t, IsValid(childB))
}

func TestCrossoverColorsFollowColumnAndRow(t *testing.T) {
	a := paint(grid(4, 3, White), White, Red)
	b := paint(grid(2, 5, White), Blue, Yellow, Red)
	region := Region{X1: 0, X2: 2, Y1: 1, Y2: 3}

	childA, childB, err := CrossoverRegion(a, b, region)
	require.NoError(t, err)

	for _, c := range childA.Cells {
		want := a.CellAt(c.Column, c.Row).Color
		if region.Contains(c.Column, c.Row) {
			want = b.CellAt(c.Column, c.Row).Color
		}
		assert.Equal(t, want, c.Color, "childA (%d, %d)", c.Column, c.Row)
	}
	for _, c := range childB.Cells {
		want := b.CellAt(c.Column, c.Row).Color
		if region.Contains(c.Column, c.Row) {
			want = a.CellAt(c.Column, c.Row).Color
		}
		assert.Equal(t, want, c.Color, "childB (%d, %d)", c.Column, c.Row)
	}
}

func TestCrossoverRecombinesLinePresence(t *testing.T) {
	a := grid(2, 2, White)
	b := grid(2, 2, White)
	for i := range b.Vertical {
		b.Vertical[i].Runs = nil
	}
	for i := range b.Horizontal {
		b.Horizontal[i].Runs = nil
	}

	childA, childB, err := CrossoverRegion(a, b, Region{X1: 0, X2: 1, Y1: 0, Y2: 1})
	require.NoError(t, err)

	// Vertical lines 0 and 1 lose (childA) or gain (childB) the stretch
	// between horizontal lines 0 and 1.
	for i := range 2 {
		assert.Equal(t, []int{1, 2}, childA.Vertical[i].Runs, "childA vertical %d", i)
		assert.Equal(t, []int{0, 1}, childB.Vertical[i].Runs, "childB vertical %d", i)
		assert.Equal(t, []int{1, 2}, childA.Horizontal[i].Runs, "childA horizontal %d", i)
		assert.Equal(t, []int{0, 1}, childB.Horizontal[i].Runs, "childB horizontal %d", i)
	}
	assert.Equal(t, a.Vertical[2], childA.Vertical[2])
	assert.Equal(t, b.Vertical[2], childB.Vertical[2])
	assert.Equal(t, a.Horizontal[2], childA.Horizontal[2])
	assert.Equal(t, b.Horizontal[2], childB.Horizontal[2])
}

func TestCrossoverLeavesParentsAlone(t *testing.T) {
	g := NewGenerator()
	rng := newRand(12)
	a, err := g.Generate(rng)
	require.NoError(t, err)
	b, err := g.Generate(rng)
	require.NoError(t, err)
	beforeA, beforeB := a.DeepCopy(), b.DeepCopy()

	childA, childB, err := Crossover(rng, a, b)
	require.NoError(t, err)

	for i := range childA.Vertical {
		if len(childA.Vertical[i].Runs) > 0 {
			childA.Vertical[i].Runs[0] = -1
		}
	}
	for i := range childB.Horizontal {
		if len(childB.Horizontal[i].Runs) > 0 {
			childB.Horizontal[i].Runs[0] = -1
		}
	}
	childA.Cells[0].Color = ""

	if diff := cmp.Diff(beforeA, a); diff != "" {
		t.Errorf("parent a changed (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(beforeB, b); diff != "" {
		t.Errorf("parent b changed (-before +after):\n%s", diff)
	}
}

// Children of random parents are valid, keep their own parent's line
// positions and counts, and only differ from it on the crossed lines and
// inside the crossed range.
func TestCrossoverValidity(t *testing.T) {
	rng := newRand(13)
	g := NewGenerator()

	for i := range 1000 {
		a, err := g.Generate(rng)
		require.NoError(t, err)
		b, err := g.Generate(rng)
		require.NoError(t, err)

		region, err := PickRegion(rng, a, b)
		require.NoError(t, err)
		childA, childB, err := CrossoverRegion(a, b, region)
		require.NoError(t, err)

		require.NoError(t, Validate(childA), "pair %d region %v", i, region)
		require.NoError(t, Validate(childB), "pair %d region %v", i, region)

		checkChild(t, childA, a, b, region)
		checkChild(t, childB, b, a, region)
	}
}

func checkChild(t *testing.T, child, own, other *Individual, region Region) {
	t.Helper()

	require.Len(t, child.Vertical, len(own.Vertical))
	require.Len(t, child.Horizontal, len(own.Horizontal))
	require.Len(t, child.Cells, len(own.Cells))

	checkAxis(t, "vertical", child.Vertical, own.Vertical, other.Vertical, region.X1, region.X2, region.Y1, region.Y2, len(own.Horizontal))
	checkAxis(t, "horizontal", child.Horizontal, own.Horizontal, other.Horizontal, region.Y1, region.Y2, region.X1, region.X2, len(own.Vertical))
}

func checkAxis(t *testing.T, axis string, child, own, other []Line, first, last, lo, hi, perpendicular int) {
	t.Helper()

	r := perpendicular - 1
	for i := range child {
		require.Equal(t, own[i].Position, child[i].Position, "%s line %d moved", axis, i)
		if i < first || i > last {
			require.Equal(t, own[i], child[i], "%s line %d outside the region changed", axis, i)
			continue
		}

		got := child[i].Bits(r)
		ownBits, otherBits := own[i].Bits(r), other[i].Bits(r)
		for j := range r {
			want := ownBits[j]
			if j >= lo && j < hi {
				want = otherBits[j]
			}
			require.Equal(t, want, got[j], "%s line %d segment %d", axis, i, j)
		}
	}
}

func TestCrossoverDifferentShapes(t *testing.T) {
	rng := newRand(14)
	small := paint(grid(1, 3, White), Red)
	large := paint(grid(6, 4, White), Blue, Yellow)

	for range 200 {
		childA, childB, err := Crossover(rng, small, large)
		require.NoError(t, err)
		require.True(t, IsValid(childA))
		require.True(t, IsValid(childB))
		assert.Len(t, childA.Cells, 3)
		assert.Len(t, childB.Cells, 24)

		childB, childA, err = Crossover(rng, large, small)
		require.NoError(t, err)
		require.True(t, IsValid(childA))
		require.True(t, IsValid(childB))
	}
}

func TestPickRegion(t *testing.T) {
	rng := newRand(15)
	a := grid(2, 5, White)
	b := grid(6, 2, White)

	seen := make(map[Region]bool)
	for range 2000 {
		region, err := PickRegion(rng, a, b)
		require.NoError(t, err)
		require.True(t, 0 <= region.X1 && region.X1 < region.X2 && region.X2 < 3, region)
		require.True(t, 0 <= region.Y1 && region.Y1 < region.Y2 && region.Y2 < 3, region)
		seen[region] = true
	}
	// three pairs per axis
	assert.Len(t, seen, 9)
}

func TestCrossoverErrors(t *testing.T) {
	a := grid(2, 2, White)
	b := grid(3, 3, White)

	tests := []struct {
		name    string
		region  Region
		a, b    *Individual
		wantErr error
	}{
		{name: "empty x range", region: Region{X1: 1, X2: 1, Y1: 0, Y2: 1}, a: a, b: b, wantErr: ErrRegionOutOfRange},
		{name: "inverted y range", region: Region{X1: 0, X2: 1, Y1: 2, Y2: 1}, a: a, b: b, wantErr: ErrRegionOutOfRange},
		{name: "beyond smaller parent", region: Region{X1: 0, X2: 3, Y1: 0, Y2: 1}, a: a, b: b, wantErr: ErrRegionOutOfRange},
		{name: "negative", region: Region{X1: -1, X2: 1, Y1: 0, Y2: 1}, a: a, b: b, wantErr: ErrRegionOutOfRange},
		{
			name:    "stale cells",
			region:  Region{X1: 0, X2: 1, Y1: 0, Y2: 1},
			a:       &Individual{Vertical: a.Vertical, Horizontal: a.Horizontal},
			b:       b,
			wantErr: ErrCellCount,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := CrossoverRegion(tt.a, tt.b, tt.region)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPickRegionDegenerateParent(t *testing.T) {
	a := grid(2, 2, White)
	b := &Individual{
		Vertical:   []Line{{Position: 0}},
		Horizontal: []Line{{Position: 0}, {Position: 1}},
	}

	_, err := PickRegion(newRand(16), a, b)
	assert.ErrorIs(t, err, ErrDegenerateParent)

	_, _, err = Crossover(newRand(16), a, b)
	assert.ErrorIs(t, err, ErrDegenerateParent)
}

func TestCrossLineKeepsOwnRunsOutsideRange(t *testing.T) {
	own := Line{Position: 0.3, Runs: []int{0, 2, 5, 7}}
	other := Line{Position: 0.6, Runs: []int{1, 3}}

	got := crossLine(own, other, 1, 3, 8)
	assert.Equal(t, 0.3, got.Position)
	// own:   T T F F F T T
	// other: F T T F F F F
	// mixed: T T T F F T T
	if diff := cmp.Diff([]int{0, 3, 5, 7}, got.Runs, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("runs mismatch (-want +got):\n%s", diff)
	}
}
