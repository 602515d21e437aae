package atoms

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvxtal/element"
	"github.com/katalvlaran/lvxtal/spacegroup"
)

var (
	// ErrInvalidOccupancy indicates an occupancy outside (0,1].
	ErrInvalidOccupancy = errors.New("atoms: occupancy must lie in (0,1]")

	// ErrInvalidPosition indicates a NaN or infinite coordinate.
	ErrInvalidPosition = errors.New("atoms: position must be finite")

	// ErrInvalidElement indicates an element outside the catalogue.
	ErrInvalidElement = errors.New("atoms: invalid element")
)

// PositionTol is the periodic distance, in fractional units per axis, below
// which two positions are the same.
const PositionTol = 1e-4

// Site is one atom of the basis. Position is fractional and kept in [0,1).
type Site struct {
	Element   element.Element
	Position  [3]float64
	Occupancy float64
}

// NewSite validates and normalises a site.
func NewSite(el element.Element, pos [3]float64, occupancy float64) (Site, error) {
	if !el.Valid() {
		return Site{}, fmt.Errorf("NewSite(%d): %w", el.Z(), ErrInvalidElement)
	}
	if !(occupancy > 0 && occupancy <= 1) {
		return Site{}, fmt.Errorf("NewSite(%v): occupancy %g: %w", el, occupancy, ErrInvalidOccupancy)
	}
	for _, x := range pos {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return Site{}, fmt.Errorf("NewSite(%v): position %v: %w", el, pos, ErrInvalidPosition)
		}
	}

	return Site{Element: el, Position: Wrap(pos), Occupancy: occupancy}, nil
}

// Validate re-checks a Site built as a literal.
func (s Site) Validate() error {
	_, err := NewSite(s.Element, s.Position, s.Occupancy)
	return err
}

// String renders e.g. "Fe (0.0000, 0.0000, 0.0000) occ=1".
func (s Site) String() string {
	return fmt.Sprintf("%v (%.4f, %.4f, %.4f) occ=%g", s.Element, s.Position[0], s.Position[1], s.Position[2], s.Occupancy)
}

// Wrap reduces each coordinate into [0,1).
func Wrap(p [3]float64) [3]float64 {
	for i, x := range p {
		x -= math.Floor(x)
		if x >= 1 {
			x = 0
		}
		p[i] = x
	}

	return p
}

// Coincident reports whether a and b are within PositionTol of each other on
// every axis, modulo lattice translations.
func Coincident(a, b [3]float64) bool {
	for i := 0; i < 3; i++ {
		d := math.Abs(a[i] - b[i])
		d = math.Min(d, 1-d)
		if d > PositionTol {
			return false
		}
	}

	return true
}

// Expand applies every operation to every site and keeps the distinct images
// of each site, in order. Images are only merged within one site's orbit, so
// two input sites sharing a position (mixed occupancy) both survive.
// Complexity: O(n·|ops|·m) with m the orbit length.
func Expand(sites []Site, ops []spacegroup.Operation) []Site {
	out := make([]Site, 0, len(sites)*len(ops))
	for _, s := range sites {
		start := len(out)
	images:
		for _, op := range ops {
			p := op.Apply(s.Position)
			for _, have := range out[start:] {
				if Coincident(have.Position, p) {
					continue images
				}
			}
			out = append(out, Site{Element: s.Element, Position: p, Occupancy: s.Occupancy})
		}
	}

	return out
}
