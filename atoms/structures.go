package atoms

import "github.com/katalvlaran/lvxtal/element"

// Space-group numbers the factories are written for.
const (
	BCCGroup     = 229
	FCCGroup     = 225
	HCPGroup     = 194
	DiamondGroup = 216
)

// Single places one fully occupied atom at the origin.
func Single(el element.Element) []Site {
	return []Site{{Element: el, Occupancy: 1}}
}

// BCC is the body-centred cubic basis in Im-3m.
func BCC(el element.Element) []Site { return Single(el) }

// FCC is the face-centred cubic basis in Fm-3m.
func FCC(el element.Element) []Site { return Single(el) }

// HCP is the hexagonal close-packed basis in P6₃/mmc, Wyckoff 2c.
func HCP(el element.Element) []Site {
	return []Site{{Element: el, Position: [3]float64{1.0 / 3, 2.0 / 3, 0.25}, Occupancy: 1}}
}

// Diamond is the diamond-cubic basis in F-43m: two interpenetrating fcc
// sublattices offset by (1/4,1/4,1/4).
func Diamond(el element.Element) []Site {
	return []Site{
		{Element: el, Occupancy: 1},
		{Element: el, Position: [3]float64{0.25, 0.25, 0.25}, Occupancy: 1},
	}
}
