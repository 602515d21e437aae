package phasefile

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvxtal/atoms"
	"github.com/katalvlaran/lvxtal/element"
	"github.com/katalvlaran/lvxtal/phase"
	"github.com/katalvlaran/lvxtal/spacegroup"
	"github.com/katalvlaran/lvxtal/unitcell"
)

// Document is the on-disk form of a phase.
type Document struct {
	Name       string `toml:"name" yaml:"name"`
	SpaceGroup int    `toml:"space_group,omitempty" yaml:"space_group,omitempty"`
	Symbol     string `toml:"symbol,omitempty" yaml:"symbol,omitempty"`
	Setting    string `toml:"setting,omitempty" yaml:"setting,omitempty"`
	Cell       Cell   `toml:"cell" yaml:"cell"`
	Atoms      []Atom `toml:"atoms" yaml:"atoms"`

	// Source is the path the document was loaded from; not serialised.
	Source string `toml:"-" yaml:"-"`
}

// Cell holds lengths in Å and angles in degrees; zero means "derive".
type Cell struct {
	A     float64 `toml:"a" yaml:"a"`
	B     float64 `toml:"b,omitempty" yaml:"b,omitempty"`
	C     float64 `toml:"c,omitempty" yaml:"c,omitempty"`
	Alpha float64 `toml:"alpha,omitempty" yaml:"alpha,omitempty"`
	Beta  float64 `toml:"beta,omitempty" yaml:"beta,omitempty"`
	Gamma float64 `toml:"gamma,omitempty" yaml:"gamma,omitempty"`
}

// Atom is one site of the asymmetric unit.
type Atom struct {
	Element   string    `toml:"element" yaml:"element"`
	Position  []float64 `toml:"position" yaml:"position,flow"`
	Occupancy float64   `toml:"occupancy,omitempty" yaml:"occupancy,omitempty"`
}

// Group resolves the space group. When both a number and a symbol are
// given they must agree.
func (d *Document) Group() (*spacegroup.Group, error) {
	setting, err := spacegroup.ParseSetting(d.Setting)
	if err != nil {
		return nil, fmt.Errorf("%s: setting %q: %w", d.label(), d.Setting, ErrInvalidDocument)
	}
	var g *spacegroup.Group
	switch {
	case d.Symbol != "":
		if g, err = spacegroup.FromSymbol(d.Symbol); err != nil {
			return nil, fmt.Errorf("%s: %w", d.label(), err)
		}
		if d.SpaceGroup != 0 && d.SpaceGroup != g.Number() {
			return nil, fmt.Errorf("%s: symbol %s is group %d, not %d: %w",
				d.label(), d.Symbol, g.Number(), d.SpaceGroup, ErrInvalidDocument)
		}
		if setting != spacegroup.Default {
			g, err = spacegroup.FromIndexSetting(g.Number(), setting)
		}
	case d.SpaceGroup != 0:
		g, err = spacegroup.FromIndexSetting(d.SpaceGroup, setting)
	default:
		return nil, fmt.Errorf("%s: neither space_group nor symbol: %w", d.label(), ErrInvalidDocument)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.label(), err)
	}

	return g, nil
}

// UnitCell fills the parameters the crystal system of g fixes, then builds
// the cell.
func (d *Document) UnitCell(g *spacegroup.Group) (*unitcell.Cell, error) {
	c := d.Cell
	if c.A <= 0 {
		return nil, fmt.Errorf("%s: cell.a is required: %w", d.label(), ErrInvalidDocument)
	}
	def := func(v *float64, to float64) {
		if *v == 0 {
			*v = to
		}
	}
	switch g.CrystalSystem() {
	case unitcell.Cubic:
		def(&c.B, c.A)
		def(&c.C, c.A)
		def(&c.Alpha, 90)
		def(&c.Beta, 90)
		def(&c.Gamma, 90)
	case unitcell.Tetragonal:
		def(&c.B, c.A)
		def(&c.Alpha, 90)
		def(&c.Beta, 90)
		def(&c.Gamma, 90)
	case unitcell.Trigonal, unitcell.Hexagonal:
		if g.Setting() == spacegroup.Rhombohedral {
			def(&c.B, c.A)
			def(&c.C, c.A)
			def(&c.Beta, c.Alpha)
			def(&c.Gamma, c.Alpha)
			break
		}
		def(&c.B, c.A)
		def(&c.Alpha, 90)
		def(&c.Beta, 90)
		def(&c.Gamma, 120)
	case unitcell.Orthorhombic:
		def(&c.Alpha, 90)
		def(&c.Beta, 90)
		def(&c.Gamma, 90)
	case unitcell.Monoclinic:
		def(&c.Alpha, 90)
		def(&c.Gamma, 90)
	}

	cell, err := unitcell.NewDegrees(c.A, c.B, c.C, c.Alpha, c.Beta, c.Gamma)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", d.label(), err)
	}

	return cell, nil
}

// Sites converts the atom list.
func (d *Document) Sites() ([]atoms.Site, error) {
	out := make([]atoms.Site, 0, len(d.Atoms))
	for i, a := range d.Atoms {
		el, err := element.FromSymbol(a.Element)
		if err != nil {
			return nil, fmt.Errorf("%s: atoms[%d]: %w", d.label(), i, err)
		}
		if len(a.Position) != 3 {
			return nil, fmt.Errorf("%s: atoms[%d]: position needs 3 coordinates, got %d: %w",
				d.label(), i, len(a.Position), ErrInvalidDocument)
		}
		occ := a.Occupancy
		if occ == 0 {
			occ = 1
		}
		s, err := atoms.NewSite(el, [3]float64{a.Position[0], a.Position[1], a.Position[2]}, occ)
		if err != nil {
			return nil, fmt.Errorf("%s: atoms[%d]: %w", d.label(), i, err)
		}
		out = append(out, s)
	}

	return out, nil
}

// Build turns the document into a phase with its asymmetric unit set.
// Stage 1: space group. Stage 2: cell. Stage 3: sites.
func (d *Document) Build(opts ...phase.Option) (*phase.Phase, error) {
	g, err := d.Group()
	if err != nil {
		return nil, err
	}
	cell, err := d.UnitCell(g)
	if err != nil {
		return nil, err
	}
	sites, err := d.Sites()
	if err != nil {
		return nil, err
	}
	p, err := phase.New(d.Name, g, cell, opts...)
	if err != nil {
		return nil, err
	}
	if err = p.SetAtoms(sites); err != nil {
		return nil, err
	}

	return p, nil
}

// FromPhase describes p as a document with every cell parameter explicit.
func FromPhase(p *phase.Phase) *Document {
	g := p.SpaceGroup()
	cp := p.UnitCell().Parameters()
	d := &Document{
		Name:       p.Name(),
		SpaceGroup: g.Number(),
		Symbol:     g.Symbol(),
		Cell: Cell{
			A: cp.A, B: cp.B, C: cp.C,
			Alpha: round(unitcell.Degrees(cp.Alpha)),
			Beta:  round(unitcell.Degrees(cp.Beta)),
			Gamma: round(unitcell.Degrees(cp.Gamma)),
		},
	}
	if g.Setting() != spacegroup.Default {
		d.Setting = g.Setting().String()
	}
	for _, s := range p.Atoms() {
		d.Atoms = append(d.Atoms, Atom{
			Element:   s.Element.Symbol(),
			Position:  []float64{s.Position[0], s.Position[1], s.Position[2]},
			Occupancy: s.Occupancy,
		})
	}

	return d
}

// round trims the radian round trip: 90.00000000000001 → 90.
func round(deg float64) float64 { return math.Round(deg*1e9) / 1e9 }

func (d *Document) label() string {
	switch {
	case d.Source != "":
		return d.Source
	case d.Name != "":
		return d.Name
	}

	return "document"
}
