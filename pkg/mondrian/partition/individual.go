package partition

import (
	"sort"

	"github.com/mihai-snyk/mondrian/pkg/mondrian/framework"
)

// Individual is one candidate partition: the ordered vertical and horizontal
// lines and the cells derived from them. Cells are stored column by column,
// so the cell at (col, row) lives at col*(len(Horizontal)-1) + row.
type Individual struct {
	Vertical   []Line
	Horizontal []Line
	Cells      []Cell
}

var _ framework.Solution = &Individual{}

// NewIndividual copies the given lines, orders them by position and derives
// the cells, all painted with fill.
func NewIndividual(vertical, horizontal []Line, fill Color) *Individual {
	ind := &Individual{
		Vertical:   cloneLines(vertical),
		Horizontal: cloneLines(horizontal),
	}
	ind.OrderByPosition()
	ind.GenerateRectangles(fill)
	return ind
}

// OrderByPosition sorts both line lists by ascending position.
func (ind *Individual) OrderByPosition() {
	sort.SliceStable(ind.Vertical, func(i, j int) bool {
		return ind.Vertical[i].Position < ind.Vertical[j].Position
	})
	sort.SliceStable(ind.Horizontal, func(i, j int) bool {
		return ind.Horizontal[i].Position < ind.Horizontal[j].Position
	})
}

// GenerateRectangles replaces the cells with one cell per pair of adjacent
// vertical and horizontal lines, painted with fill.
func (ind *Individual) GenerateRectangles(fill Color) {
	cols, rows := ind.Shape()
	if cols <= 0 || rows <= 0 {
		ind.Cells = nil
		return
	}

	cells := make([]Cell, 0, cols*rows)
	for col := range cols {
		for row := range rows {
			cells = append(cells, Cell{
				Column: col,
				Row:    row,
				Left:   ind.Vertical[col].Position,
				Right:  ind.Vertical[col+1].Position,
				Bottom: ind.Horizontal[row].Position,
				Top:    ind.Horizontal[row+1].Position,
				Color:  fill,
			})
		}
	}
	ind.Cells = cells
}

// Shape returns the number of cell columns and rows implied by the lines.
func (ind *Individual) Shape() (cols, rows int) {
	return len(ind.Vertical) - 1, len(ind.Horizontal) - 1
}

// CellIndex maps a column and row to the flat cell index.
func (ind *Individual) CellIndex(col, row int) int {
	return col*(len(ind.Horizontal)-1) + row
}

// CellAt returns the cell at the given column and row.
func (ind *Individual) CellAt(col, row int) Cell {
	return ind.Cells[ind.CellIndex(col, row)]
}

// Colors returns the cell colors in cell order.
func (ind *Individual) Colors() []Color {
	colors := make([]Color, len(ind.Cells))
	for i, c := range ind.Cells {
		colors[i] = c.Color
	}
	return colors
}

// DeepCopy returns a copy of ind that shares no lines or cells with it.
func (ind *Individual) DeepCopy() *Individual {
	if ind == nil {
		return nil
	}
	out := &Individual{
		Vertical:   cloneLines(ind.Vertical),
		Horizontal: cloneLines(ind.Horizontal),
	}
	if ind.Cells != nil {
		out.Cells = make([]Cell, len(ind.Cells))
		copy(out.Cells, ind.Cells)
	}
	return out
}

// Clone implements framework.Solution.
func (ind *Individual) Clone() framework.Solution {
	return ind.DeepCopy()
}

// Valid implements framework.Solution.
func (ind *Individual) Valid() bool {
	return IsValid(ind)
}

func cloneLines(lines []Line) []Line {
	if lines == nil {
		return nil
	}
	out := make([]Line, len(lines))
	for i, l := range lines {
		out[i] = l.Clone()
	}
	return out
}
