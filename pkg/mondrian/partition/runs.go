package partition

// ExpandRuns turns a toggle list into one presence bit per segment of the
// perpendicular axis: bit i covers the stretch between perpendicular lines i
// and i+1 and holds the value of a flag that flips at every toggle <= i.
// Toggles outside [0, r) never flip a bit.
func ExpandRuns(runs []int, r int) []bool {
	if r <= 0 {
		return nil
	}

	toggles := make([]bool, r)
	for _, t := range runs {
		if t >= 0 && t < r {
			toggles[t] = true
		}
	}

	bits := make([]bool, r)
	drawing := false
	for i := range r {
		if toggles[i] {
			drawing = !drawing
		}
		bits[i] = drawing
	}
	return bits
}

// EncodeRuns is the inverse of ExpandRuns. The result is ascending, has an
// even length and every index lies in [0, len(bits)].
func EncodeRuns(bits []bool) []int {
	r := len(bits)
	if r == 0 {
		return nil
	}

	var runs []int
	if bits[0] {
		runs = append(runs, 0)
	}
	for i := 1; i < r; i++ {
		if bits[i] != bits[i-1] {
			runs = append(runs, i)
		}
	}
	if bits[r-1] {
		runs = append(runs, r)
	}
	return runs
}

// SpliceBits returns a copy of dst whose bits in [lo, hi) are taken from src.
func SpliceBits(dst, src []bool, lo, hi int) []bool {
	out := make([]bool, len(dst))
	copy(out, dst)

	lo = max(lo, 0)
	hi = min(hi, len(dst), len(src))
	for i := lo; i < hi; i++ {
		out[i] = src[i]
	}
	return out
}
