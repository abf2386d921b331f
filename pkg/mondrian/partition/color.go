package partition

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Color is one entry of the fixed discrete palette.
type Color string

const (
	White  Color = "white"
	Blue   Color = "blue"
	Red    Color = "red"
	Yellow Color = "yellow"
)

// Colors lists every palette color in canonical order.
var Colors = []Color{White, Blue, Red, Yellow}

// Valid reports whether c belongs to the palette.
func (c Color) Valid() bool {
	switch c {
	case White, Blue, Red, Yellow:
		return true
	}
	return false
}

// Weighted pairs a color with its relative draw weight.
type Weighted struct {
	Color  Color
	Weight float64
}

// Palette draws colors from a categorical distribution.
type Palette struct {
	colors     []Color
	weights    []float64
	cumulative []float64
}

// NewPalette builds a palette from the given weights. Weights need not sum to one.
func NewPalette(weighted ...Weighted) (*Palette, error) {
	if len(weighted) == 0 {
		return nil, fmt.Errorf("%w: no colors", ErrInvalidPalette)
	}

	p := &Palette{
		colors:  make([]Color, len(weighted)),
		weights: make([]float64, len(weighted)),
	}
	seen := make(map[Color]bool, len(weighted))
	for i, w := range weighted {
		if !w.Color.Valid() {
			return nil, fmt.Errorf("%w: unknown color %q", ErrInvalidPalette, w.Color)
		}
		if seen[w.Color] {
			return nil, fmt.Errorf("%w: duplicate color %q", ErrInvalidPalette, w.Color)
		}
		if w.Weight < 0 {
			return nil, fmt.Errorf("%w: negative weight %v for %q", ErrInvalidPalette, w.Weight, w.Color)
		}
		seen[w.Color] = true
		p.colors[i] = w.Color
		p.weights[i] = w.Weight
	}

	p.cumulative = floats.CumSum(make([]float64, len(p.weights)), p.weights)
	if p.cumulative[len(p.cumulative)-1] <= 0 {
		return nil, fmt.Errorf("%w: weights sum to zero", ErrInvalidPalette)
	}
	return p, nil
}

// DefaultPalette returns white 0.7, blue 0.1, red 0.1, yellow 0.1.
func DefaultPalette() *Palette {
	p, err := NewPalette(
		Weighted{White, 0.7},
		Weighted{Blue, 0.1},
		Weighted{Red, 0.1},
		Weighted{Yellow, 0.1},
	)
	if err != nil {
		panic(err)
	}
	return p
}

// Draw samples one color.
func (p *Palette) Draw(rng *rand.Rand) Color {
	u := rng.Float64() * p.cumulative[len(p.cumulative)-1]
	i := sort.Search(len(p.cumulative), func(i int) bool {
		return u < p.cumulative[i]
	})
	if i == len(p.colors) {
		i--
	}
	return p.colors[i]
}

// Probability returns the normalized draw probability of c, zero when c is not in the palette.
func (p *Palette) Probability(c Color) float64 {
	total := p.cumulative[len(p.cumulative)-1]
	for i, pc := range p.colors {
		if pc == c {
			return p.weights[i] / total
		}
	}
	return 0
}

// Weights returns a copy of the palette entries.
func (p *Palette) Weights() []Weighted {
	out := make([]Weighted, len(p.colors))
	for i := range p.colors {
		out[i] = Weighted{Color: p.colors[i], Weight: p.weights[i]}
	}
	return out
}
