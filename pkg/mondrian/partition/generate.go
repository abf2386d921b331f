package partition

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
)

const (
	DefaultMinInterior          = 3
	DefaultMaxInterior          = 10
	DefaultMinSpacing           = 0.05
	DefaultMinToggles           = 2
	DefaultMaxToggles           = 4
	DefaultMaxPlacementAttempts = 10000
	DefaultFill                 = White
)

// Generator builds random individuals.
type Generator struct {
	Palette *Palette

	// MinInterior and MaxInterior bound the number of lines per axis, not
	// counting the boundary lines at 0 and 1.
	MinInterior int
	MaxInterior int

	// MinSpacing is the smallest distance allowed between two lines on the same axis.
	MinSpacing float64

	// MinToggles and MaxToggles bound the number of toggles sampled per line.
	MinToggles int
	MaxToggles int

	// Fill is the color cells get before they are painted.
	Fill Color

	// MaxPlacementAttempts caps the rejected candidates for a single line.
	MaxPlacementAttempts int
}

// NewGenerator returns a generator with the default settings.
func NewGenerator() *Generator {
	return &Generator{
		Palette:              DefaultPalette(),
		MinInterior:          DefaultMinInterior,
		MaxInterior:          DefaultMaxInterior,
		MinSpacing:           DefaultMinSpacing,
		MinToggles:           DefaultMinToggles,
		MaxToggles:           DefaultMaxToggles,
		Fill:                 DefaultFill,
		MaxPlacementAttempts: DefaultMaxPlacementAttempts,
	}
}

func (g *Generator) check() error {
	switch {
	case g.Palette == nil:
		return fmt.Errorf("%w: no palette", ErrInvalidGenerator)
	case g.MinInterior < 0 || g.MaxInterior < g.MinInterior:
		return fmt.Errorf("%w: interior lines [%d, %d]", ErrInvalidGenerator, g.MinInterior, g.MaxInterior)
	case g.MinSpacing < 0 || g.MinSpacing >= 1:
		return fmt.Errorf("%w: spacing %v", ErrInvalidGenerator, g.MinSpacing)
	case g.MinToggles < 0 || g.MaxToggles < g.MinToggles:
		return fmt.Errorf("%w: toggles [%d, %d]", ErrInvalidGenerator, g.MinToggles, g.MaxToggles)
	case g.MaxPlacementAttempts <= 0:
		return fmt.Errorf("%w: placement attempts %d", ErrInvalidGenerator, g.MaxPlacementAttempts)
	}
	return nil
}

// Generate builds a random individual. Line counts are fixed before any
// presence pattern is sampled, so every run index is in range by construction.
func (g *Generator) Generate(rng *rand.Rand) (*Individual, error) {
	if err := g.check(); err != nil {
		return nil, err
	}

	numVertical := g.MinInterior + rng.IntN(g.MaxInterior-g.MinInterior+1)
	numHorizontal := g.MinInterior + rng.IntN(g.MaxInterior-g.MinInterior+1)

	verticalPositions, err := g.place(rng, numVertical)
	if err != nil {
		return nil, fmt.Errorf("vertical lines: %w", err)
	}
	horizontalPositions, err := g.place(rng, numHorizontal)
	if err != nil {
		return nil, fmt.Errorf("horizontal lines: %w", err)
	}

	ind := &Individual{
		Vertical:   make([]Line, len(verticalPositions)),
		Horizontal: make([]Line, len(horizontalPositions)),
	}
	for i, p := range verticalPositions {
		ind.Vertical[i] = Line{Position: p, Runs: g.toggles(rng, len(horizontalPositions))}
	}
	for i, p := range horizontalPositions {
		ind.Horizontal[i] = Line{Position: p, Runs: g.toggles(rng, len(verticalPositions))}
	}

	ind.OrderByPosition()
	ind.GenerateRectangles(g.Fill)
	for i := range ind.Cells {
		ind.Cells[i].Color = g.Palette.Draw(rng)
	}
	return ind, nil
}

// place returns the boundary positions 0 and 1 followed by interior
// positions sampled uniformly, each at least MinSpacing away from the others.
func (g *Generator) place(rng *rand.Rand, interior int) ([]float64, error) {
	positions := make([]float64, 0, interior+2)
	positions = append(positions, 0, 1)

	for range interior {
		attempts := 0
		for {
			p := rng.Float64()
			if g.spaced(positions, p) {
				positions = append(positions, p)
				break
			}
			attempts++
			if attempts >= g.MaxPlacementAttempts {
				return nil, fmt.Errorf("%w: placed %d of %d interior lines, %d candidates rejected",
					ErrPlacementExhausted, len(positions)-2, interior, attempts)
			}
		}
	}
	return positions, nil
}

func (g *Generator) spaced(positions []float64, p float64) bool {
	for _, q := range positions {
		if math.Abs(q-p) < g.MinSpacing {
			return false
		}
	}
	return true
}

// toggles samples between MinToggles and MaxToggles distinct indices of a
// perpendicular list of the given length.
func (g *Generator) toggles(rng *rand.Rand, perpendicular int) []int {
	k := g.MinToggles + rng.IntN(g.MaxToggles-g.MinToggles+1)
	k = min(k, perpendicular)

	runs := rng.Perm(perpendicular)[:k]
	sort.Ints(runs)
	return runs
}
