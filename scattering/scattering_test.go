package scattering_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvxtal/element"
	"github.com/katalvlaran/lvxtal/scattering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestXRay_ForwardScattering checks f(0) ≈ Z for every tabulated element.
func TestXRay_ForwardScattering(t *testing.T) {
	m := scattering.XRay()
	elems := m.Elements()
	require.NotEmpty(t, elems)
	for _, el := range elems {
		f, err := m.Amplitude(el, 0)
		require.NoError(t, err, el.Symbol())
		assert.InDelta(t, float64(el.Z()), f, 0.06, el.Symbol())
	}
}

// TestXRay_Monotonic checks f decreases with s across the fitted range.
func TestXRay_Monotonic(t *testing.T) {
	m := scattering.XRay()
	for _, el := range m.Elements() {
		prev := math.Inf(1)
		for i := 0; i <= 200; i++ {
			f, err := m.Amplitude(el, float64(i)/100)
			require.NoError(t, err)
			assert.LessOrEqual(t, f, prev+1e-9, "%s at s=%g", el, float64(i)/100)
			prev = f
		}
	}
}

func TestXRay_Values(t *testing.T) {
	m := scattering.XRay()
	cases := []struct {
		el   element.Element
		s    float64
		want float64
	}{
		{element.Iron, 0, 25.9904},
		{element.Iron, 0.25, 18.362615},
		{element.Silicon, 0.5, 6.240089},
		{element.Hydrogen, 2.0, 0.001312},
	}
	for _, tc := range cases {
		f, err := m.Amplitude(tc.el, tc.s)
		require.NoError(t, err)
		assert.InDelta(t, tc.want, f, 1e-5, "%s s=%g", tc.el, tc.s)
	}
}

func TestXRay_RangePolicy(t *testing.T) {
	strict := scattering.XRay()
	_, err := strict.Amplitude(element.Copper, 2.5)
	assert.ErrorIs(t, err, scattering.ErrOutOfFittedRange)
	_, err = strict.Amplitude(element.Copper, -0.1)
	assert.ErrorIs(t, err, scattering.ErrOutOfFittedRange)
	_, err = strict.Amplitude(element.Copper, math.NaN())
	assert.ErrorIs(t, err, scattering.ErrOutOfFittedRange)

	loose := scattering.XRay(scattering.WithRangePolicy(scattering.RangeExtrapolate))
	f, err := loose.Amplitude(element.Copper, 2.5)
	require.NoError(t, err)
	assert.InDelta(t, 2.721847, f, 1e-5)
	_, err = loose.Amplitude(element.Copper, -0.1)
	assert.ErrorIs(t, err, scattering.ErrOutOfFittedRange, "negative s is never valid")

	narrow := scattering.XRay(scattering.WithMaxS(1.0))
	_, err = narrow.Amplitude(element.Copper, 1.5)
	assert.ErrorIs(t, err, scattering.ErrOutOfFittedRange)
}

func TestXRay_Unsupported(t *testing.T) {
	m := scattering.XRay()
	cf, err := element.FromSymbol("Cf")
	require.NoError(t, err)
	assert.False(t, m.Supports(cf))
	_, err = m.Amplitude(cf, 0.1)
	assert.ErrorIs(t, err, scattering.ErrUnsupportedElement)
	assert.True(t, m.Supports(element.Iron))
}

func TestElectron(t *testing.T) {
	m := scattering.Electron()
	f, err := m.Amplitude(element.Iron, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 1.387627, f, 1e-5)

	f, err = m.Amplitude(element.Silicon, 0.1)
	require.NoError(t, err)
	assert.InDelta(t, 4.466550, f, 1e-5)

	_, err = m.Amplitude(element.Iron, 0)
	assert.ErrorIs(t, err, scattering.ErrOutOfFittedRange)
	_, err = m.Amplitude(element.Iron, 3)
	assert.ErrorIs(t, err, scattering.ErrOutOfFittedRange)

	cf, _ := element.FromSymbol("Cf")
	_, err = m.Amplitude(cf, 0.5)
	assert.ErrorIs(t, err, scattering.ErrUnsupportedElement)
}

func TestConstant(t *testing.T) {
	m := scattering.Constant(2.5)
	f, err := m.Amplitude(element.Gold, 7)
	require.NoError(t, err)
	assert.Equal(t, 2.5, f)
	_, err = m.Amplitude(element.Element(0), 0)
	assert.ErrorIs(t, err, scattering.ErrUnsupportedElement)
	assert.False(t, m.Supports(element.Element(0)))
}

func TestLookup(t *testing.T) {
	for name, want := range map[string]string{
		"xray": scattering.NameXRay, "X-Ray": scattering.NameXRay,
		"electron": scattering.NameElectron, " constant ": scattering.NameConstant,
	} {
		m, err := scattering.Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, m.Name())
	}
	_, err := scattering.Lookup("neutron")
	assert.ErrorIs(t, err, scattering.ErrNotFound)
}

func TestParseRangePolicy(t *testing.T) {
	p, err := scattering.ParseRangePolicy("Extrapolate")
	require.NoError(t, err)
	assert.Equal(t, scattering.RangeExtrapolate, p)
	assert.Equal(t, "extrapolate", p.String())
	p, err = scattering.ParseRangePolicy("")
	require.NoError(t, err)
	assert.Equal(t, scattering.RangeStrict, p)
	_, err = scattering.ParseRangePolicy("clamp")
	assert.ErrorIs(t, err, scattering.ErrNotFound)
}
