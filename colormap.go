package colormap

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"golang.org/x/image/colornames"
	"golang.org/x/text/cases"
)

// Map is an ordered lookup table of colours. Index 0 is used for the lower
// end of the active value range and index Len()-1 for the upper end.
//
// Maps are produced by colour-map generators outside this package; the
// mapping operations treat them as read-only.
type Map []RGBA

// NewMap builds a Map from the given colours, checking that there is at
// least one colour and that every component lies in [0, 1].
func NewMap(colors ...RGBA) (Map, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyMap
	}
	for i, c := range colors {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: entry %d is %v", ErrInvalidColor, i, c)
		}
	}
	return slices.Clone(Map(colors)), nil
}

// Len returns the number of colours in the map.
func (m Map) Len() int {
	return len(m)
}

// Reverse returns a copy of m with the colour order reversed.
func (m Map) Reverse() Map {
	r := slices.Clone(m)
	slices.Reverse(r)
	return r
}

// index returns the map entry for v in rng. Values outside the range clamp
// to the end entries. Ties round away from zero.
//
// The fraction is computed on halved operands so that a finite range wider
// than math.MaxFloat64 still resolves its end points.
func (m Map) index(v float64, rng Range) int {
	last := len(m) - 1
	t := (v/2 - rng.Lo/2) / (rng.Hi/2 - rng.Lo/2)
	x := math.Round(t * float64(last))
	switch {
	case x >= float64(last):
		return last
	case x > 0:
		return int(x)
	default:
		// NaN
		return 0
	}
}

// Ramp returns an n-entry map interpolating linearly in RGB from one
// colour to another. The first entry is from and the last is to; a
// single-entry ramp holds from. Ramp returns nil for n < 1.
func Ramp(from, to RGBA, n int) Map {
	if n < 1 {
		return nil
	}
	m := make(Map, n)
	if n == 1 {
		m[0] = from
		return m
	}
	for i := 0; i < n-1; i++ {
		m[i] = from.Lerp(to, float64(i)/float64(n-1))
	}
	m[n-1] = to
	return m
}

// NamedRamp returns an n-entry ramp from black to the named SVG 1.1 colour.
// Names are matched case-insensitively and spaces are ignored, so "Dark
// Green" and "darkgreen" are the same colour.
func NamedRamp(name string, n int) (Map, error) {
	key := strings.ReplaceAll(cases.Fold().String(strings.TrimSpace(name)), " ", "")
	c, ok := colornames.Map[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColorName, name)
	}
	m := Ramp(Black, FromColor(c), n)
	if m == nil {
		return nil, ErrEmptyMap
	}
	return m, nil
}
