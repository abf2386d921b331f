package partition

// Line is a vertical or horizontal line of the partition. Runs holds the
// ascending toggle indices into the perpendicular line list that say where
// the line is visibly drawn.
type Line struct {
	Position float64
	Runs     []int
}

// Segment is a visible stretch of a line between two perpendicular line indices.
type Segment struct {
	From int
	To   int
}

// Clone returns a copy that shares no memory with l.
func (l Line) Clone() Line {
	var runs []int
	if l.Runs != nil {
		runs = make([]int, len(l.Runs))
		copy(runs, l.Runs)
	}
	return Line{Position: l.Position, Runs: runs}
}

// Closed reports whether every run opened by a toggle is closed again.
func (l Line) Closed() bool {
	return len(l.Runs)%2 == 0
}

// Bits expands the runs over r perpendicular segments.
func (l Line) Bits(r int) []bool {
	return ExpandRuns(l.Runs, r)
}

// Canonical re-encodes the runs against a perpendicular list of the given
// length. A run left open by an odd toggle count is closed at the last line.
func (l Line) Canonical(perpendicular int) Line {
	return Line{Position: l.Position, Runs: EncodeRuns(l.Bits(perpendicular - 1))}
}

// Segments lists the visible stretches of the line against a perpendicular
// list of the given length. This is what a renderer draws.
func (l Line) Segments(perpendicular int) []Segment {
	runs := l.Canonical(perpendicular).Runs
	segments := make([]Segment, 0, len(runs)/2)
	for i := 0; i+1 < len(runs); i += 2 {
		segments = append(segments, Segment{From: runs[i], To: runs[i+1]})
	}
	return segments
}
