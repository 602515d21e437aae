package phase

import (
	"fmt"

	"github.com/katalvlaran/lvxtal/atoms"
	"github.com/katalvlaran/lvxtal/internal/logging"
	"github.com/katalvlaran/lvxtal/reflector"
	"github.com/katalvlaran/lvxtal/spacegroup"
	"github.com/katalvlaran/lvxtal/unitcell"
)

// Phase is a named crystal structure and the reflectors computed for it.
type Phase struct {
	name  string
	group *spacegroup.Group
	cell  *unitcell.Cell
	sites []atoms.Site // asymmetric unit
	refl  *reflector.Reflectors
	log   logging.Logger
}

// New creates a phase with no atoms and no reflectors.
func New(name string, group *spacegroup.Group, cell *unitcell.Cell, opts ...Option) (*Phase, error) {
	if group == nil || cell == nil {
		return nil, fmt.Errorf("New(%q): nil space group or cell: %w", name, ErrInvalidArgument)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Phase{
		name:  name,
		group: group,
		cell:  cell,
		refl:  &reflector.Reflectors{},
		log:   cfg.Logger.Named("phase").With(logging.String("phase", name)),
	}, nil
}

// Name returns the phase name.
func (p *Phase) Name() string { return p.name }

// UnitCell returns the cell.
func (p *Phase) UnitCell() *unitcell.Cell { return p.cell }

// SpaceGroup returns the group.
func (p *Phase) SpaceGroup() *spacegroup.Group { return p.group }

// String returns e.g. "Ferrite Im-3m (229) a=2.8700 ...".
func (p *Phase) String() string {
	return fmt.Sprintf("%s %v %v", p.name, p.group, p.cell)
}

// AddAtom validates s and appends it to the asymmetric unit.
func (p *Phase) AddAtom(s atoms.Site) error {
	s, err := atoms.NewSite(s.Element, s.Position, s.Occupancy)
	if err != nil {
		return fmt.Errorf("AddAtom: %w", err)
	}
	p.sites = append(p.sites, s)

	return nil
}

// SetAtoms replaces the asymmetric unit. Nothing changes if any site is invalid.
func (p *Phase) SetAtoms(sites []atoms.Site) error {
	next := make([]atoms.Site, 0, len(sites))
	for i, s := range sites {
		s, err := atoms.NewSite(s.Element, s.Position, s.Occupancy)
		if err != nil {
			return fmt.Errorf("SetAtoms: site %d: %w", i, err)
		}
		next = append(next, s)
	}
	p.sites = next

	return nil
}

// Atoms returns a copy of the asymmetric unit.
func (p *Phase) Atoms() []atoms.Site {
	out := make([]atoms.Site, len(p.sites))
	copy(out, p.sites)

	return out
}

// ExpandedAtoms returns every atom of the unit cell.
func (p *Phase) ExpandedAtoms() []atoms.Site {
	return atoms.Expand(p.sites, p.group.Operations())
}

// Reflectors returns a copy of the reflectors in stored order: sorted by
// descending intensity after ComputeReflectors, insertion order otherwise.
func (p *Phase) Reflectors() []reflector.Reflector { return p.refl.All() }

// Reflector finds the stored reflector symmetry-equivalent to h.
func (p *Phase) Reflector(h reflector.HKL) (reflector.Reflector, bool) {
	return p.refl.Find(h, p.equivalent)
}

// AddReflector appends r as given, with no symmetry reduction.
func (p *Phase) AddReflector(r reflector.Reflector) error {
	return p.refl.Add(r)
}

// ClearReflectors drops every stored reflector.
func (p *Phase) ClearReflectors() { p.refl = &reflector.Reflectors{} }

func (p *Phase) equivalent(a, b reflector.HKL) bool {
	return p.group.Equivalent(a, b)
}
