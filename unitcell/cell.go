package unitcell

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvxtal/matrix"
	"github.com/katalvlaran/lvxtal/matrix/ops"
)

// trigEps is the magnitude below which a cosine is snapped to its exact value.
// math.Cos(math.Pi/2) is 6.1e-17, not 0; without snapping orthogonal cells
// would carry spurious off-diagonal metric terms.
const trigEps = 1e-15

// Parameters are the six lattice constants: lengths in Å, angles in radians.
type Parameters struct {
	A, B, C            float64
	Alpha, Beta, Gamma float64
}

// Cell is an immutable unit cell with cached metric tensors.
type Cell struct {
	p      Parameters
	g      [3][3]float64 // direct metric
	gStar  [3][3]float64 // reciprocal metric
	volume float64
}

// cleanCos returns cos(x) with the values at 90° and 120° snapped to 0 and −½.
func cleanCos(x float64) float64 {
	c := math.Cos(x)
	switch {
	case math.Abs(c) < trigEps:
		return 0
	case math.Abs(c+0.5) < trigEps:
		return -0.5
	case math.Abs(c-0.5) < trigEps:
		return 0.5
	}

	return c
}

// New builds a cell from lengths (Å) and angles (radians).
// Stage 1 (Validate): finite positive lengths, angles in the open interval (0,π).
// Stage 2 (Volume): V² = a²b²c²(1 − cos²α − cos²β − cos²γ + 2cosα·cosβ·cosγ) > 0.
// Stage 3 (Metric): build G and invert it into G*.
// Complexity: O(1).
func New(a, b, c, alpha, beta, gamma float64) (*Cell, error) {
	// Stage 1: parameter ranges
	for _, l := range [3]float64{a, b, c} {
		if !(l > 0) || math.IsInf(l, 0) {
			return nil, fmt.Errorf("New: length %g: %w", l, ErrInvalidGeometry)
		}
	}
	for _, ang := range [3]float64{alpha, beta, gamma} {
		if !(ang > 0 && ang < math.Pi) {
			return nil, fmt.Errorf("New: angle %g rad outside (0,π): %w", ang, ErrInvalidGeometry)
		}
	}

	// Stage 2: volume
	ca, cb, cg := cleanCos(alpha), cleanCos(beta), cleanCos(gamma)
	v2 := 1 - ca*ca - cb*cb - cg*cg + 2*ca*cb*cg
	if !(v2 > 0) {
		return nil, fmt.Errorf("New: angles (%g, %g, %g) give non-positive volume: %w", alpha, beta, gamma, ErrInvalidGeometry)
	}

	// Stage 3: metric tensors
	g, err := matrix.NewFromRows([][]float64{
		{a * a, a * b * cg, a * c * cb},
		{a * b * cg, b * b, b * c * ca},
		{a * c * cb, b * c * ca, c * c},
	})
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	gInv, err := ops.Inverse(g)
	if err != nil {
		return nil, fmt.Errorf("New: reciprocal metric: %v: %w", err, ErrInvalidGeometry)
	}

	cell := &Cell{
		p:      Parameters{A: a, B: b, C: c, Alpha: alpha, Beta: beta, Gamma: gamma},
		volume: a * b * c * math.Sqrt(v2),
	}
	cell.g, _ = g.Array3()
	cell.gStar, _ = gInv.Array3()
	symmetrize(&cell.gStar)

	return cell, nil
}

// symmetrize averages mirrored off-diagonal terms so round-off in the
// inversion cannot make G* asymmetric.
func symmetrize(m *[3][3]float64) {
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			v := 0.5 * (m[i][j] + m[j][i])
			m[i][j], m[j][i] = v, v
		}
	}
}

// NewDegrees is New with angles given in degrees.
func NewDegrees(a, b, c, alpha, beta, gamma float64) (*Cell, error) {
	return New(a, b, c, Radians(alpha), Radians(beta), Radians(gamma))
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 { return deg * math.Pi / 180 }

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Parameters returns the six lattice constants.
func (c *Cell) Parameters() Parameters { return c.p }

// Volume returns the cell volume in Å³.
func (c *Cell) Volume() float64 { return c.volume }

// DirectMetric returns a copy of G.
func (c *Cell) DirectMetric() [3][3]float64 { return c.g }

// ReciprocalMetric returns a copy of G*.
func (c *Cell) ReciprocalMetric() [3][3]float64 { return c.gStar }

// quad evaluates uᵀ·G*·v.
func (c *Cell) quad(u, v [3]float64) float64 {
	var s float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			s += u[i] * c.gStar[i][j] * v[j]
		}
	}

	return s
}

// ReciprocalSpacing returns |g_hkl| = sqrt(hᵀ·G*·h) in Å⁻¹.
// It is zero only for (0,0,0); G* is positive definite for every valid cell.
func (c *Cell) ReciprocalSpacing(h, k, l int) float64 {
	v := [3]float64{float64(h), float64(k), float64(l)}
	q := c.quad(v, v)
	if q < 0 { // round-off guard; G* is positive definite
		return 0
	}

	return math.Sqrt(q)
}

// DSpacing returns the inter-planar spacing d_hkl = 1/|g_hkl| in Å.
func (c *Cell) DSpacing(h, k, l int) (float64, error) {
	if h == 0 && k == 0 && l == 0 {
		return 0, fmt.Errorf("DSpacing: %w", ErrZeroVector)
	}

	return 1 / c.ReciprocalSpacing(h, k, l), nil
}

// InterplanarAngle returns the angle (radians) between the normals of two
// lattice planes. The cosine is clamped to [−1,1] before acos so that
// parallel planes yield exactly 0 or π instead of NaN.
func (c *Cell) InterplanarAngle(h1, h2 [3]int) (float64, error) {
	g1 := c.ReciprocalSpacing(h1[0], h1[1], h1[2])
	g2 := c.ReciprocalSpacing(h2[0], h2[1], h2[2])
	if g1 == 0 || g2 == 0 {
		return 0, fmt.Errorf("InterplanarAngle: %w", ErrZeroVector)
	}
	u := [3]float64{float64(h1[0]), float64(h1[1]), float64(h1[2])}
	v := [3]float64{float64(h2[0]), float64(h2[1]), float64(h2[2])}
	cos := c.quad(u, v) / (g1 * g2)
	cos = math.Max(-1, math.Min(1, cos))

	return math.Acos(cos), nil
}

// String renders the parameters with angles in degrees.
func (c *Cell) String() string {
	return fmt.Sprintf("a=%.4f b=%.4f c=%.4f α=%.2f° β=%.2f° γ=%.2f°",
		c.p.A, c.p.B, c.p.C, Degrees(c.p.Alpha), Degrees(c.p.Beta), Degrees(c.p.Gamma))
}
