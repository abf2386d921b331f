package partition

// Cell is the rectangle between two consecutive vertical and two consecutive
// horizontal lines. Column and Row are the indices of its left and bottom lines.
type Cell struct {
	Column int
	Row    int

	Left   float64
	Right  float64
	Bottom float64
	Top    float64

	Color Color
}

// Width of the cell in canvas units.
func (c Cell) Width() float64 {
	return c.Right - c.Left
}

// Height of the cell in canvas units.
func (c Cell) Height() float64 {
	return c.Top - c.Bottom
}
