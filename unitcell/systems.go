package unitcell

import (
	"fmt"
	"math"
)

// System is one of the seven crystal systems.
type System int

const (
	Triclinic System = iota
	Monoclinic
	Orthorhombic
	Tetragonal
	Trigonal
	Hexagonal
	Cubic
)

var systemNames = [...]string{"triclinic", "monoclinic", "orthorhombic", "tetragonal", "trigonal", "hexagonal", "cubic"}

// String implements fmt.Stringer.
func (s System) String() string {
	if s < Triclinic || s > Cubic {
		return "unknown"
	}

	return systemNames[s]
}

const (
	right  = math.Pi / 2
	hexAng = 2 * math.Pi / 3
)

// NewCubic builds a cubic cell: a = b = c, α = β = γ = 90°.
func NewCubic(a float64) (*Cell, error) {
	return New(a, a, a, right, right, right)
}

// NewTetragonal builds a tetragonal cell: a = b ≠ c, α = β = γ = 90°.
func NewTetragonal(a, c float64) (*Cell, error) {
	return New(a, a, c, right, right, right)
}

// NewOrthorhombic builds an orthorhombic cell: α = β = γ = 90°.
func NewOrthorhombic(a, b, c float64) (*Cell, error) {
	return New(a, b, c, right, right, right)
}

// NewHexagonal builds a hexagonal cell: a = b, α = β = 90°, γ = 120°.
// Trigonal groups in hexagonal axes use this cell as well.
func NewHexagonal(a, c float64) (*Cell, error) {
	return New(a, a, c, right, right, hexAng)
}

// NewTrigonal builds a rhombohedral-axes cell: a = b = c, α = β = γ < 120°.
func NewTrigonal(a, alpha float64) (*Cell, error) {
	if !(alpha > 0 && alpha < hexAng) {
		return nil, fmt.Errorf("NewTrigonal: α=%g rad must lie in (0, 2π/3): %w", alpha, ErrInvalidGeometry)
	}

	return New(a, a, a, alpha, alpha, alpha)
}

// NewMonoclinic builds a b-unique monoclinic cell: α = γ = 90°, β free.
func NewMonoclinic(a, b, c, beta float64) (*Cell, error) {
	return New(a, b, c, right, beta, right)
}

// NewTriclinic builds an unconstrained cell; identical to New.
func NewTriclinic(a, b, c, alpha, beta, gamma float64) (*Cell, error) {
	return New(a, b, c, alpha, beta, gamma)
}

// lengthTol and angleTol bound the parameter comparisons in System.
const (
	lengthTol = 1e-6
	angleTol  = 1e-6
)

func near(x, y, tol float64) bool { return math.Abs(x-y) <= tol }

// System classifies the cell metric by its parameters alone. The result is
// the highest-symmetry system the metric is compatible with; the actual
// crystal symmetry is decided by the space group, not the metric.
func (c *Cell) System() System {
	p := c.p
	ab, bc := near(p.A, p.B, lengthTol), near(p.B, p.C, lengthTol)
	al90, be90, ga90 := near(p.Alpha, right, angleTol), near(p.Beta, right, angleTol), near(p.Gamma, right, angleTol)

	switch {
	case ab && bc && al90 && be90 && ga90:
		return Cubic
	case ab && al90 && be90 && near(p.Gamma, hexAng, angleTol):
		return Hexagonal
	case ab && bc && near(p.Alpha, p.Beta, angleTol) && near(p.Beta, p.Gamma, angleTol):
		return Trigonal
	case ab && al90 && be90 && ga90:
		return Tetragonal
	case al90 && be90 && ga90:
		return Orthorhombic
	case al90 && ga90:
		return Monoclinic
	}

	return Triclinic
}
