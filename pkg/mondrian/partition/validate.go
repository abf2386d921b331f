package partition

import (
	"fmt"

	utilerrors "k8s.io/apimachinery/pkg/util/errors"
)

// IsValid reports whether every vertical run index is below the number of
// horizontal lines, every horizontal run index is below the number of
// vertical lines, and the cell count matches the line counts.
func IsValid(ind *Individual) bool {
	if ind == nil {
		return false
	}
	if !runsInRange(ind.Vertical, len(ind.Horizontal)) || !runsInRange(ind.Horizontal, len(ind.Vertical)) {
		return false
	}
	return len(ind.Cells) == expectedCells(ind)
}

// Validate reports every structural problem of ind. Besides the IsValid
// checks it flags runs that are not strictly ascending, which IsValid
// tolerates.
func Validate(ind *Individual) error {
	if ind == nil {
		return fmt.Errorf("%w: nil individual", ErrCellCount)
	}

	var errs []error
	errs = append(errs, validateLines("vertical", ind.Vertical, len(ind.Horizontal))...)
	errs = append(errs, validateLines("horizontal", ind.Horizontal, len(ind.Vertical))...)
	if want := expectedCells(ind); len(ind.Cells) != want {
		errs = append(errs, fmt.Errorf("%w: have %d cells, want %d", ErrCellCount, len(ind.Cells), want))
	}
	return utilerrors.NewAggregate(errs)
}

func expectedCells(ind *Individual) int {
	return (len(ind.Vertical) - 1) * (len(ind.Horizontal) - 1)
}

func runsInRange(lines []Line, perpendicular int) bool {
	for _, l := range lines {
		for _, t := range l.Runs {
			if t < 0 || t >= perpendicular {
				return false
			}
		}
	}
	return true
}

func validateLines(axis string, lines []Line, perpendicular int) []error {
	var errs []error
	for i, l := range lines {
		for j, t := range l.Runs {
			if t < 0 || t >= perpendicular {
				errs = append(errs, fmt.Errorf("%w: %s line %d run %d is %d, have %d perpendicular lines",
					ErrRunOutOfRange, axis, i, j, t, perpendicular))
			}
			if j > 0 && t <= l.Runs[j-1] {
				errs = append(errs, fmt.Errorf("%w: %s line %d runs %v", ErrUnorderedRuns, axis, i, l.Runs))
				break
			}
		}
	}
	return errs
}
