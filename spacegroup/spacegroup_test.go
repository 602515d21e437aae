package spacegroup_test

import (
	"testing"

	"github.com/katalvlaran/lvxtal/spacegroup"
	"github.com/katalvlaran/lvxtal/unitcell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// generalOrders lists the number of general positions of every group in its
// conventional cell, numbers 1..230.
var generalOrders = [230]int{
	1, 2, 2, 2, 4, 2, 2, 4, 4, 4,
	4, 8, 4, 4, 8, 4, 4, 4, 4, 8,
	8, 16, 8, 8, 4, 4, 4, 4, 4, 4,
	4, 4, 4, 4, 8, 8, 8, 8, 8, 8,
	8, 16, 16, 8, 8, 8, 8, 8, 8, 8,
	8, 8, 8, 8, 8, 8, 8, 8, 8, 8,
	8, 8, 16, 16, 16, 16, 16, 16, 32, 32,
	16, 16, 16, 16, 4, 4, 4, 4, 8, 8,
	4, 8, 8, 8, 8, 8, 16, 16, 8, 8,
	8, 8, 8, 8, 8, 8, 16, 16, 8, 8,
	8, 8, 8, 8, 8, 8, 16, 16, 16, 16,
	8, 8, 8, 8, 8, 8, 8, 8, 16, 16,
	16, 16, 16, 16, 16, 16, 16, 16, 16, 16,
	16, 16, 16, 16, 16, 16, 16, 16, 32, 32,
	32, 32, 3, 3, 3, 9, 6, 18, 6, 6,
	6, 6, 6, 6, 18, 6, 6, 6, 6, 18,
	18, 12, 12, 12, 12, 36, 36, 6, 6, 6,
	6, 6, 6, 6, 12, 12, 12, 12, 12, 12,
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12,
	24, 24, 24, 24, 12, 48, 24, 12, 24, 24,
	24, 96, 96, 48, 24, 48, 24, 24, 96, 96,
	48, 24, 24, 48, 24, 96, 48, 24, 96, 48,
	48, 48, 48, 48, 192, 192, 192, 192, 96, 96,
}

// TestCatalogue_Orders expands every group and checks its order, the
// identity-first convention and closure under composition.
func TestCatalogue_Orders(t *testing.T) {
	for n := 1; n <= 230; n++ {
		g, err := spacegroup.FromIndex(n)
		require.NoError(t, err, "group %d", n)
		assert.Equal(t, n, g.Number())
		ops := g.Operations()
		require.Len(t, ops, generalOrders[n-1], "%s", g)
		assert.True(t, ops[0].IsIdentity(), "%s", g)

		set := make(map[spacegroup.Operation]bool, len(ops))
		for _, op := range ops {
			set[op] = true
			assert.Contains(t, []int{1, -1}, op.Det())
		}
		for _, a := range ops {
			for _, b := range ops {
				if !set[a.Compose(b)] {
					t.Fatalf("%s not closed: %v ∘ %v", g, a, b)
				}
			}
		}
	}
}

// TestCatalogue_Centrosymmetric counts the 92 groups containing −1.
func TestCatalogue_Centrosymmetric(t *testing.T) {
	count := 0
	for n := 1; n <= 230; n++ {
		g, err := spacegroup.FromIndex(n)
		require.NoError(t, err)
		if g.Centrosymmetric() {
			count++
		}
	}
	assert.Equal(t, 92, count)
}

// TestAlternateSettings checks that a second setting keeps the point group
// and, for origin choice 2, the order.
func TestAlternateSettings(t *testing.T) {
	for _, n := range []int{48, 50, 59, 68, 70, 85, 86, 88, 125, 126, 129, 130, 133, 134,
		137, 138, 141, 142, 201, 203, 222, 224, 227, 228} {
		g1, err := spacegroup.FromIndex(n)
		require.NoError(t, err)
		g2, err := spacegroup.FromIndexSetting(n, spacegroup.Origin2)
		require.NoError(t, err, "group %d", n)
		assert.Equal(t, g1.Order(), g2.Order(), "group %d", n)
		assert.ElementsMatch(t, g1.Rotations(), g2.Rotations(), "group %d", n)
		assert.Equal(t, spacegroup.Origin2, g2.Setting())
	}

	rhombo := map[int]int{146: 3, 148: 6, 155: 6, 160: 6, 161: 6, 166: 12, 167: 12}
	for n, order := range rhombo {
		g, err := spacegroup.FromIndexSetting(n, spacegroup.Rhombohedral)
		require.NoError(t, err)
		assert.Equal(t, order, g.Order(), "group %d", n)
		assert.Equal(t, byte('P'), g.Centering())
		hex, _ := spacegroup.FromIndex(n)
		assert.Equal(t, 3*order, hex.Order())
		assert.Equal(t, byte('R'), hex.Centering())
	}

	_, err := spacegroup.FromIndexSetting(225, spacegroup.Origin2)
	assert.ErrorIs(t, err, spacegroup.ErrNotFound)
}

func TestFromIndex_OutOfRange(t *testing.T) {
	for _, n := range []int{-1, 0, 231, 1000} {
		_, err := spacegroup.FromIndex(n)
		assert.ErrorIs(t, err, spacegroup.ErrOutOfRange, "n=%d", n)
	}
}

func TestFromSymbol(t *testing.T) {
	cases := []struct {
		symbol  string
		number  int
		setting spacegroup.Setting
	}{
		{"Fm-3m", 225, spacegroup.Default},
		{"F m -3 m", 225, spacegroup.Default},
		{"P6_3/mmc", 194, spacegroup.Default},
		{"P 63/m m c", 194, spacegroup.Default},
		{"Im-3m", 229, spacegroup.Default},
		{"Cmca", 64, spacegroup.Default},
		{"P121/c1", 14, spacegroup.Default},
		{"Fd-3m:2", 227, spacegroup.Origin2},
		{"R-3m:R", 166, spacegroup.Rhombohedral},
		{"R-3m:H", 166, spacegroup.Default},
	}
	for _, tc := range cases {
		g, err := spacegroup.FromSymbol(tc.symbol)
		require.NoError(t, err, tc.symbol)
		assert.Equal(t, tc.number, g.Number(), tc.symbol)
		assert.Equal(t, tc.setting, g.Setting(), tc.symbol)
	}

	for _, bad := range []string{"", "Xyz", "fm-3m", "Fm-3m:9", "Fm-3m:2"} {
		_, err := spacegroup.FromSymbol(bad)
		assert.ErrorIs(t, err, spacegroup.ErrNotFound, bad)
	}
}

func TestParseSetting(t *testing.T) {
	for in, want := range map[string]spacegroup.Setting{
		"": spacegroup.Default, "H": spacegroup.Default, "origin2": spacegroup.Origin2,
		"2": spacegroup.Origin2, "Rhombohedral": spacegroup.Rhombohedral, "r": spacegroup.Rhombohedral,
	} {
		got, err := spacegroup.ParseSetting(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := spacegroup.ParseSetting("origin3")
	assert.ErrorIs(t, err, spacegroup.ErrNotFound)
}

func TestGroup_Metadata(t *testing.T) {
	cases := []struct {
		n       int
		symbol  string
		system  unitcell.System
		center  byte
		centric bool
	}{
		{1, "P1", unitcell.Triclinic, 'P', false},
		{14, "P21/c", unitcell.Monoclinic, 'P', true},
		{62, "Pnma", unitcell.Orthorhombic, 'P', true},
		{139, "I4/mmm", unitcell.Tetragonal, 'I', true},
		{166, "R-3m", unitcell.Trigonal, 'R', true},
		{186, "P63mc", unitcell.Hexagonal, 'P', false},
		{216, "F-43m", unitcell.Cubic, 'F', false},
	}
	for _, tc := range cases {
		g, err := spacegroup.FromIndex(tc.n)
		require.NoError(t, err)
		assert.Equal(t, tc.symbol, g.Symbol())
		assert.Equal(t, tc.system, g.CrystalSystem(), tc.symbol)
		assert.Equal(t, tc.center, g.Centering(), tc.symbol)
		assert.Equal(t, tc.centric, g.Centrosymmetric(), tc.symbol)
		assert.NotEmpty(t, g.Hall())
	}
}

// TestRotations_PointGroupSize checks |point group| = order / centring multiplicity.
func TestRotations_PointGroupSize(t *testing.T) {
	for n, want := range map[int]int{1: 1, 2: 2, 14: 4, 194: 24, 225: 48, 229: 48, 166: 12, 216: 24} {
		g, err := spacegroup.FromIndex(n)
		require.NoError(t, err)
		assert.Len(t, g.Rotations(), want, "group %d", n)
	}
}

func TestOperations_ContainsExpected(t *testing.T) {
	g, err := spacegroup.FromIndex(194)
	require.NoError(t, err)
	var got []string
	for _, op := range g.Operations() {
		got = append(got, op.String())
	}
	for _, want := range []string{"x,y,z", "-x,-y,-z", "x-y,x,z+1/2", "-y,x-y,z", "-x,-y,z+1/2", "y,x,-z"} {
		assert.Contains(t, got, want)
	}
}

func TestOrbit_Equivalent_Canonical(t *testing.T) {
	cubic, err := spacegroup.FromIndex(225)
	require.NoError(t, err)
	assert.Len(t, cubic.Orbit([3]int{1, 0, 0}), 6)
	assert.Len(t, cubic.Orbit([3]int{1, 1, 1}), 8)
	assert.Len(t, cubic.Orbit([3]int{1, 1, 0}), 12)
	assert.Len(t, cubic.Orbit([3]int{3, 2, 1}), 48)
	assert.True(t, cubic.Equivalent([3]int{1, 1, 0}, [3]int{0, -1, 1}))
	assert.False(t, cubic.Equivalent([3]int{1, 1, 0}, [3]int{1, 1, 1}))
	assert.Equal(t, [3]int{1, 1, 0}, cubic.Canonical([3]int{0, -1, -1}))
	assert.Equal(t, [3]int{3, 2, 1}, cubic.Canonical([3]int{-1, 3, -2}))

	// Friedel mates are one class even without an inversion centre.
	p1, err := spacegroup.FromIndex(1)
	require.NoError(t, err)
	assert.Len(t, p1.Orbit([3]int{1, 2, 3}), 2)
	assert.True(t, p1.Equivalent([3]int{1, 2, 3}, [3]int{-1, -2, -3}))
	assert.False(t, p1.Equivalent([3]int{1, 2, 3}, [3]int{3, 2, 1}))
	assert.Equal(t, [3]int{1, -2, 3}, p1.Canonical([3]int{-1, 2, -3}))

	hex, err := spacegroup.FromIndex(194)
	require.NoError(t, err)
	assert.True(t, hex.Equivalent([3]int{1, 0, 0}, [3]int{1, -1, 0}))
	assert.Equal(t, [3]int{1, 0, 0}, hex.Canonical([3]int{-1, 1, 0}))
	assert.Equal(t, [3]int{1, 1, 0}, hex.Canonical([3]int{2, -1, 0}))
	assert.False(t, hex.Equivalent([3]int{0, 0, 1}, [3]int{1, 0, 0}))
}

func TestCanonicalHelpers(t *testing.T) {
	assert.Equal(t, [3]int{0, 1, -2}, spacegroup.PositiveNormalize([3]int{0, -1, 2}))
	assert.Equal(t, [3]int{0, 0, 0}, spacegroup.PositiveNormalize([3]int{0, 0, 0}))
	assert.True(t, spacegroup.Better([3]int{1, 1, 0}, [3]int{1, -1, 0}))
	assert.True(t, spacegroup.Better([3]int{2, 0, 0}, [3]int{0, 2, 0}))
	assert.False(t, spacegroup.Better([3]int{1, 0, 0}, [3]int{1, 0, 0}))
}

func TestOperation_ApplyAndCompose(t *testing.T) {
	// 4-fold about z with a c/4 screw: -y,x,z+1/4
	op := spacegroup.Operation{
		R: [3][3]int{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}},
		T: [3]spacegroup.Frac{0, 0, 3},
	}
	assert.Equal(t, "-y,x,z+1/4", op.String())
	assert.InDeltaSlice(t, []float64{0.8, 0.1, 0.55}, sliceOf(op.Apply([3]float64{0.1, 0.2, 0.3})), 1e-12)
	assert.InDeltaSlice(t, []float64{0, 0, 0.25}, sliceOf(op.Apply([3]float64{0, 0, 0})), 1e-12)
	assert.Equal(t, [3]int{2, -1, 3}, op.ApplyHKL([3]int{1, 2, 3}))

	four := op
	for i := 0; i < 3; i++ {
		four = four.Compose(op)
	}
	assert.True(t, four.IsIdentity(), "4₁ applied four times is a lattice translation")
	assert.Equal(t, 1, op.Det())
}

func TestFrac_String(t *testing.T) {
	for f, want := range map[spacegroup.Frac]string{
		0: "0", 6: "1/2", 4: "1/3", 3: "1/4", 2: "1/6", 10: "5/6", 1: "1/12", -4: "-1/3", 12: "1", 24: "2",
	} {
		assert.Equal(t, want, f.String())
	}
	assert.Equal(t, spacegroup.Frac(8), spacegroup.Frac(-4).Norm())
	assert.InDelta(t, 0.25, spacegroup.Frac(3).Float(), 1e-15)
}

func sliceOf(v [3]float64) []float64 { return v[:] }
