package phase_test

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/katalvlaran/lvxtal/atoms"
	"github.com/katalvlaran/lvxtal/element"
	"github.com/katalvlaran/lvxtal/internal/logging"
	"github.com/katalvlaran/lvxtal/phase"
	"github.com/katalvlaran/lvxtal/reflector"
	"github.com/katalvlaran/lvxtal/scattering"
	"github.com/katalvlaran/lvxtal/spacegroup"
	"github.com/katalvlaran/lvxtal/unitcell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newPhase(t testing.TB, name string, group int, cell *unitcell.Cell, sites []atoms.Site, opts ...phase.Option) *phase.Phase {
	t.Helper()
	g, err := spacegroup.FromIndex(group)
	require.NoError(t, err)
	p, err := phase.New(name, g, cell, opts...)
	require.NoError(t, err)
	require.NoError(t, p.SetAtoms(sites))

	return p
}

func ferrite(t testing.TB, opts ...phase.Option) *phase.Phase {
	cell, err := unitcell.NewCubic(2.87)
	require.NoError(t, err)
	return newPhase(t, "Ferrite", atoms.BCCGroup, cell, atoms.BCC(element.Iron), opts...)
}

func silicon(t testing.TB) *phase.Phase {
	cell, err := unitcell.NewCubic(5.431)
	require.NoError(t, err)
	return newPhase(t, "Silicon", atoms.DiamondGroup, cell, atoms.Diamond(element.Silicon))
}

func titanium(t testing.TB) *phase.Phase {
	cell, err := unitcell.NewHexagonal(2.95, 4.68)
	require.NoError(t, err)
	return newPhase(t, "Titanium", atoms.HCPGroup, cell, atoms.HCP(element.Titanium))
}

func hkls(rs []reflector.Reflector) []reflector.HKL {
	out := make([]reflector.HKL, 0, len(rs))
	for _, r := range rs {
		out = append(out, r.HKL)
	}
	return out
}

func TestComputeReflectors_Ferrite(t *testing.T) {
	p := ferrite(t)
	require.NoError(t, p.ComputeReflectors(scattering.XRay(), 2, 0.01))

	rs := p.Reflectors()
	assert.Equal(t, []reflector.HKL{{1, 1, 0}, {2, 0, 0}, {2, 1, 1}, {2, 2, 0}, {2, 2, 2}}, hkls(rs))
	assert.Equal(t, 1.0, rs[0].Intensity)
	assert.InDelta(t, 0.682956, rs[1].Intensity, 1e-5)
	assert.InDelta(t, 0.506566, rs[2].Intensity, 1e-5)
	assert.InDelta(t, 2.029396, rs[0].DSpacing, 1e-5)
	assert.Equal(t, []int{12, 6, 24, 12, 8}, []int{rs[0].Multiplicity, rs[1].Multiplicity, rs[2].Multiplicity, rs[3].Multiplicity, rs[4].Multiplicity})

	_, ok := p.Reflector(reflector.HKL{1, 0, 0})
	assert.False(t, ok, "(100) is extinct in a bcc lattice")
	r, ok := p.Reflector(reflector.HKL{0, -1, 1})
	assert.True(t, ok, "(0-11) is a member of {110}")
	assert.Equal(t, reflector.HKL{1, 1, 0}, r.HKL)
}

func TestComputeReflectors_Silicon(t *testing.T) {
	p := silicon(t)
	require.NoError(t, p.ComputeReflectors(scattering.XRay(), 2, 0.01))
	assert.Equal(t, []reflector.HKL{{2, 2, 0}, {1, 1, 1}}, hkls(p.Reflectors()))
	for _, absent := range []reflector.HKL{{1, 0, 0}, {1, 1, 0}, {2, 0, 0}, {2, 2, 2}, {2, 1, 1}} {
		_, ok := p.Reflector(absent)
		assert.False(t, ok, "%v", absent)
	}
	r, ok := p.Reflector(reflector.HKL{-1, 1, -1})
	require.True(t, ok)
	assert.Equal(t, 8, r.Multiplicity)
	assert.InDelta(t, 0.730290, r.Intensity, 1e-5)
}

func TestComputeReflectors_HCP(t *testing.T) {
	p := titanium(t)
	require.NoError(t, p.ComputeReflectors(scattering.XRay(), 2, 0))
	rs := p.Reflectors()
	assert.Len(t, rs, 14)
	assert.Equal(t, reflector.HKL{0, 0, 2}, rs[0].HKL)
	for _, absent := range []reflector.HKL{{0, 0, 1}, {1, 1, 1}} {
		_, ok := p.Reflector(absent)
		assert.False(t, ok, "%v", absent)
	}
	_, ok := p.Reflector(reflector.HKL{1, 0, 1})
	assert.True(t, ok)
}

func TestComputeReflectors_FCC(t *testing.T) {
	cell, err := unitcell.NewCubic(3.615)
	require.NoError(t, err)
	p := newPhase(t, "Copper", atoms.FCCGroup, cell, atoms.FCC(element.Copper))
	require.NoError(t, p.ComputeReflectors(scattering.XRay(), 2, 0))
	assert.Equal(t, []reflector.HKL{{1, 1, 1}, {2, 0, 0}, {2, 2, 0}, {2, 2, 2}}, hkls(p.Reflectors()))
}

// TestTriclinic_ManualReflectors checks the direct insertion path keeps
// everything, equivalent duplicates included, in order.
func TestTriclinic_ManualReflectors(t *testing.T) {
	cell, err := unitcell.NewTriclinic(5, 6, 7, unitcell.Radians(80), unitcell.Radians(95), unitcell.Radians(100))
	require.NoError(t, err)
	p := newPhase(t, "Triclinic", 1, cell, nil)
	manual := []reflector.Reflector{
		{HKL: reflector.HKL{1, 0, 0}, Intensity: 1},
		{HKL: reflector.HKL{-1, 0, 0}, Intensity: 1},
		{HKL: reflector.HKL{0, 1, 0}, Intensity: 0.5},
		{HKL: reflector.HKL{0, 0, 1}, Intensity: 0.25},
		{HKL: reflector.HKL{1, 1, 1}, Intensity: 0.125},
		{HKL: reflector.HKL{1, 0, 0}, Intensity: 0.75},
	}
	for _, r := range manual {
		require.NoError(t, p.AddReflector(r))
	}
	assert.Equal(t, manual, p.Reflectors())

	got, ok := p.Reflector(reflector.HKL{-1, -1, -1})
	assert.True(t, ok, "Friedel mate of (111)")
	assert.Equal(t, 0.125, got.Intensity)

	p.ClearReflectors()
	assert.Empty(t, p.Reflectors())
}

func TestComputeReflectors_ThresholdMonotonic(t *testing.T) {
	p := titanium(t)
	prev := math.MaxInt
	for _, min := range []float64{0, 0.05, 0.1, 0.2, 0.3, 0.5, 0.7, 0.99} {
		require.NoError(t, p.ComputeReflectors(scattering.XRay(), 2, min))
		n := len(p.Reflectors())
		assert.LessOrEqual(t, n, prev, "min=%g", min)
		for _, r := range p.Reflectors() {
			assert.GreaterOrEqual(t, r.Intensity, min)
		}
		prev = n
	}
	assert.Equal(t, 1, prev, "only the strongest class clears 0.99")
}

func TestComputeReflectors_Idempotent(t *testing.T) {
	p := silicon(t)
	require.NoError(t, p.ComputeReflectors(scattering.XRay(), 3, 0))
	first := p.Reflectors()
	require.NoError(t, p.ComputeReflectors(scattering.XRay(), 3, 0))
	assert.Equal(t, first, p.Reflectors())
}

// TestSymmetryInvariance checks |F|² is constant over every stored class.
func TestSymmetryInvariance(t *testing.T) {
	model := scattering.XRay()
	for _, p := range []*phase.Phase{silicon(t), titanium(t), ferrite(t)} {
		require.NoError(t, p.ComputeReflectors(model, 3, 0))
		g := p.SpaceGroup()
		for _, r := range p.Reflectors() {
			f0, err := p.StructureFactor(model, r.HKL)
			require.NoError(t, err)
			i0 := cmplx.Abs(f0) * cmplx.Abs(f0)
			for _, h := range g.Orbit(r.HKL) {
				f, err := p.StructureFactor(model, h)
				require.NoError(t, err)
				assert.InDelta(t, i0, cmplx.Abs(f)*cmplx.Abs(f), 1e-9*math.Max(1, i0), "%s %v vs %v", p.Name(), r.HKL, h)
			}
		}
	}
}

// TestMultiplicity_CoversCube checks classes partition the whole cube when
// nothing is filtered.
func TestMultiplicity_CoversCube(t *testing.T) {
	for _, n := range []int{1, 2, 3} {
		p := ferrite(t)
		require.NoError(t, p.ComputeReflectors(scattering.Constant(1), n, 0))
		total := 0
		for _, r := range p.Reflectors() {
			total += r.Multiplicity
		}
		// bcc keeps the h+k+l even triples of the cube, minus the origin.
		// [−n,n] holds e even and o odd values with e−o = (−1)ⁿ.
		w, sign := 2*n+1, 1
		if n%2 == 1 {
			sign = -1
		}
		even := (w*w*w + sign) / 2
		assert.Equal(t, even-1, total, "n=%d", n)
	}

	cell, err := unitcell.NewTriclinic(5, 6, 7, unitcell.Radians(80), unitcell.Radians(95), unitcell.Radians(100))
	require.NoError(t, err)
	p := newPhase(t, "P1", 1, cell, atoms.Single(element.Carbon))
	require.NoError(t, p.ComputeReflectors(scattering.Constant(1), 2, 0))
	assert.Len(t, p.Reflectors(), 62)
	for _, r := range p.Reflectors() {
		assert.Equal(t, 2, r.Multiplicity)
		assert.Equal(t, 1.0, r.Intensity)
	}
}

func TestComputeReflectors_InvalidArguments(t *testing.T) {
	p := ferrite(t)
	require.NoError(t, p.ComputeReflectors(scattering.XRay(), 2, 0.01))
	before := p.Reflectors()

	cases := []struct {
		name  string
		model scattering.Model
		n     int
		min   float64
	}{
		{"nil model", nil, 2, 0},
		{"zero index", scattering.XRay(), 0, 0},
		{"negative index", scattering.XRay(), -1, 0},
		{"threshold one", scattering.XRay(), 2, 1},
		{"negative threshold", scattering.XRay(), 2, -0.1},
		{"NaN threshold", scattering.XRay(), 2, math.NaN()},
	}
	for _, tc := range cases {
		err := p.ComputeReflectors(tc.model, tc.n, tc.min)
		assert.ErrorIs(t, err, phase.ErrInvalidArgument, tc.name)
		assert.Equal(t, before, p.Reflectors(), tc.name)
	}
}

// TestComputeReflectors_AllOrNothing fails midway and checks nothing changed.
func TestComputeReflectors_AllOrNothing(t *testing.T) {
	p := ferrite(t)
	require.NoError(t, p.ComputeReflectors(scattering.XRay(), 2, 0.01))
	before := p.Reflectors()

	// s reaches √27/(2·2.87) ≈ 0.9 at n=3, beyond a 0.5 Å⁻¹ trust range.
	err := p.ComputeReflectors(scattering.XRay(scattering.WithMaxS(0.5)), 3, 0)
	assert.ErrorIs(t, err, scattering.ErrOutOfFittedRange)
	assert.Equal(t, before, p.Reflectors())

	cf, err := element.FromSymbol("Cf")
	require.NoError(t, err)
	require.NoError(t, p.AddAtom(atoms.Site{Element: cf, Position: [3]float64{0.25, 0.25, 0.25}, Occupancy: 0.1}))
	err = p.ComputeReflectors(scattering.XRay(), 2, 0)
	assert.ErrorIs(t, err, scattering.ErrUnsupportedElement)
	assert.Equal(t, before, p.Reflectors())

	err = p.ComputeReflectors(scattering.XRay(scattering.WithRangePolicy(scattering.RangeExtrapolate)), 2, 0.01)
	assert.ErrorIs(t, err, scattering.ErrUnsupportedElement, "range policy does not rescue an unsupported element")
}

func TestComputeReflectors_EmptyBasis(t *testing.T) {
	cell, err := unitcell.NewCubic(4)
	require.NoError(t, err)
	p := newPhase(t, "Empty", 225, cell, nil)
	require.NoError(t, p.AddReflector(reflector.Reflector{HKL: reflector.HKL{1, 1, 1}, Intensity: 1}))
	require.NoError(t, p.ComputeReflectors(scattering.XRay(), 2, 0))
	assert.Empty(t, p.Reflectors())
}

func TestComputeReflectors_Electron(t *testing.T) {
	p := ferrite(t)
	require.NoError(t, p.ComputeReflectors(scattering.Electron(), 2, 0.01))
	assert.Equal(t, reflector.HKL{1, 1, 0}, p.Reflectors()[0].HKL)
	_, ok := p.Reflector(reflector.HKL{1, 0, 0})
	assert.False(t, ok)
}

func TestNew_AndAtoms(t *testing.T) {
	g, err := spacegroup.FromIndex(229)
	require.NoError(t, err)
	cell, err := unitcell.NewCubic(2.87)
	require.NoError(t, err)

	_, err = phase.New("x", nil, cell)
	assert.ErrorIs(t, err, phase.ErrInvalidArgument)
	_, err = phase.New("x", g, nil)
	assert.ErrorIs(t, err, phase.ErrInvalidArgument)

	p, err := phase.New("Ferrite", g, cell, phase.WithLogger(nil))
	require.NoError(t, err)
	assert.Equal(t, "Ferrite", p.Name())
	assert.Same(t, g, p.SpaceGroup())
	assert.Same(t, cell, p.UnitCell())
	assert.Contains(t, p.String(), "Im-3m (229)")

	require.NoError(t, p.AddAtom(atoms.Site{Element: element.Iron, Position: [3]float64{1, -1, 0}, Occupancy: 1}))
	assert.Equal(t, [3]float64{0, 0, 0}, p.Atoms()[0].Position, "positions are wrapped")
	assert.ErrorIs(t, p.AddAtom(atoms.Site{Element: element.Iron, Occupancy: 2}), atoms.ErrInvalidOccupancy)
	assert.Len(t, p.Atoms(), 1)

	err = p.SetAtoms([]atoms.Site{
		{Element: element.Iron, Occupancy: 1},
		{Element: element.Carbon, Occupancy: 0},
	})
	assert.ErrorIs(t, err, atoms.ErrInvalidOccupancy)
	assert.Len(t, p.Atoms(), 1, "failed SetAtoms keeps the old basis")
	assert.Len(t, p.ExpandedAtoms(), 2)

	_, err = p.StructureFactor(scattering.XRay(), reflector.HKL{})
	assert.ErrorIs(t, err, phase.ErrInvalidArgument)
	_, err = p.StructureFactor(nil, reflector.HKL{1, 1, 0})
	assert.ErrorIs(t, err, phase.ErrInvalidArgument)
	f, err := p.StructureFactor(scattering.Constant(1), reflector.HKL{1, 1, 0})
	require.NoError(t, err)
	assert.InDelta(t, 2, real(f), 1e-12)
	assert.InDelta(t, 0, imag(f), 1e-12)
}

func TestComputeReflectors_Logs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	p := ferrite(t, phase.WithLogger(logging.NewLoggerFromCore(core)))
	require.NoError(t, p.ComputeReflectors(scattering.XRay(), 2, 0.01))

	entries := logs.FilterMessage("reflectors computed").All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, "Ferrite", ctx["phase"])
	assert.Equal(t, "xray", ctx["model"])
	assert.Equal(t, int64(5), ctx["kept"])
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
}
