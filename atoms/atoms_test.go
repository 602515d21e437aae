package atoms_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvxtal/atoms"
	"github.com/katalvlaran/lvxtal/element"
	"github.com/katalvlaran/lvxtal/spacegroup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSite(t *testing.T) {
	s, err := atoms.NewSite(element.Iron, [3]float64{-0.25, 1.5, 2}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{0.75, 0.5, 0}, s.Position)
	assert.Equal(t, 0.5, s.Occupancy)
	assert.NoError(t, s.Validate())

	for _, occ := range []float64{0, -0.1, 1.0001, math.NaN()} {
		_, err = atoms.NewSite(element.Iron, [3]float64{}, occ)
		assert.ErrorIs(t, err, atoms.ErrInvalidOccupancy, "occ=%g", occ)
	}
	_, err = atoms.NewSite(element.Iron, [3]float64{math.Inf(1), 0, 0}, 1)
	assert.ErrorIs(t, err, atoms.ErrInvalidPosition)
	_, err = atoms.NewSite(element.Element(0), [3]float64{}, 1)
	assert.ErrorIs(t, err, atoms.ErrInvalidElement)
	assert.Error(t, atoms.Site{Element: element.Iron}.Validate(), "zero occupancy literal")
}

func TestWrapAndCoincident(t *testing.T) {
	w := atoms.Wrap([3]float64{-1e-17, 3.25, -0.75})
	assert.Equal(t, 0.0, w[0])
	assert.InDelta(t, 0.25, w[1], 1e-15)
	assert.InDelta(t, 0.25, w[2], 1e-15)
	for _, x := range w {
		assert.True(t, x >= 0 && x < 1)
	}

	assert.True(t, atoms.Coincident([3]float64{0, 0.5, 0.99999}, [3]float64{0.99999, 0.5, 0}))
	assert.False(t, atoms.Coincident([3]float64{0, 0, 0}, [3]float64{0.001, 0, 0}))
}

// TestExpand_Structures checks the number of atoms per conventional cell.
func TestExpand_Structures(t *testing.T) {
	cases := []struct {
		name  string
		sites []atoms.Site
		group int
		want  int
	}{
		{"bcc", atoms.BCC(element.Iron), atoms.BCCGroup, 2},
		{"fcc", atoms.FCC(element.Copper), atoms.FCCGroup, 4},
		{"hcp", atoms.HCP(element.Titanium), atoms.HCPGroup, 2},
		{"diamond", atoms.Diamond(element.Silicon), atoms.DiamondGroup, 8},
		{"single P1", atoms.Single(element.Gold), 1, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := spacegroup.FromIndex(tc.group)
			require.NoError(t, err)
			got := atoms.Expand(tc.sites, g.Operations())
			assert.Len(t, got, tc.want)
			for _, s := range got {
				for _, x := range s.Position {
					assert.True(t, x >= 0 && x < 1, "%v", s)
				}
			}
		})
	}
}

func TestExpand_HCPPositions(t *testing.T) {
	g, err := spacegroup.FromIndex(atoms.HCPGroup)
	require.NoError(t, err)
	got := atoms.Expand(atoms.HCP(element.Magnesium), g.Operations())
	require.Len(t, got, 2)
	assert.True(t, atoms.Coincident(got[0].Position, [3]float64{1.0 / 3, 2.0 / 3, 0.25}))
	assert.True(t, atoms.Coincident(got[1].Position, [3]float64{2.0 / 3, 1.0 / 3, 0.75}))
}

// TestExpand_MixedOccupancy keeps both species on a shared position.
func TestExpand_MixedOccupancy(t *testing.T) {
	g, err := spacegroup.FromIndex(atoms.FCCGroup)
	require.NoError(t, err)
	sites := []atoms.Site{
		{Element: element.Copper, Occupancy: 0.75},
		{Element: element.Gold, Occupancy: 0.25},
	}
	got := atoms.Expand(sites, g.Operations())
	assert.Len(t, got, 8)
}
