package partition

import "errors"

var (
	ErrInvalidPalette     = errors.New("invalid palette")
	ErrInvalidGenerator   = errors.New("invalid generator settings")
	ErrPlacementExhausted = errors.New("no room left to place line")
	ErrDegenerateParent   = errors.New("parent has fewer than two lines on an axis")
	ErrRegionOutOfRange   = errors.New("crossover region out of range")
	ErrRunOutOfRange      = errors.New("presence run index out of range")
	ErrUnorderedRuns      = errors.New("presence runs are not strictly ascending")
	ErrCellCount          = errors.New("cell count does not match line counts")
)
