package spacegroup

import (
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/lvxtal/unitcell"
)

// Setting selects among the tabulated descriptions of one space group.
type Setting int

const (
	// Default is origin choice 1, b-unique monoclinic, hexagonal axes for R groups.
	Default Setting = iota
	// Origin2 places the origin on an inversion centre.
	Origin2
	// Rhombohedral describes an R group on its primitive rhombohedral cell.
	Rhombohedral
)

// String implements fmt.Stringer.
func (s Setting) String() string {
	switch s {
	case Default:
		return "default"
	case Origin2:
		return "origin2"
	case Rhombohedral:
		return "rhombohedral"
	}

	return fmt.Sprintf("Setting(%d)", int(s))
}

// ParseSetting maps "", "default", "1", "h", "origin2", "2", "rhombohedral"
// and "r" (case-insensitive) onto a Setting.
func ParseSetting(s string) (Setting, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default", "1", "h", "hexagonal":
		return Default, nil
	case "origin2", "2":
		return Origin2, nil
	case "rhombohedral", "r":
		return Rhombohedral, nil
	}

	return Default, fmt.Errorf("ParseSetting(%q): %w", s, ErrNotFound)
}

// Group is one space group in one setting. Its operations are generated on
// first use; every accessor is safe for concurrent use.
type Group struct {
	e entry

	once sync.Once
	ops  []Operation
	rots [][3][3]int
	err  error
}

var (
	standardGroups  [len(standard)]*Group
	alternateGroups = map[settingKey]*Group{}
	symbolIndex     = map[string]*Group{}
)

type settingKey struct {
	number  int
	setting Setting
}

func init() {
	for i := range standard {
		g := &Group{e: standard[i]}
		standardGroups[i] = g
		symbolIndex[normalizeSymbol(g.e.symbol)] = g
	}
	for i := range alternate {
		alternateGroups[settingKey{alternate[i].number, alternate[i].setting}] = &Group{e: alternate[i]}
	}
	for sym, n := range aliases {
		symbolIndex[normalizeSymbol(sym)] = standardGroups[n-1]
	}
}

// normalizeSymbol drops blanks and underscores: "P 63/m m c" and "P6_3/mmc"
// both become "P63/mmc".
func normalizeSymbol(s string) string {
	return strings.Map(func(r rune) rune {
		if r == ' ' || r == '_' || r == '\t' {
			return -1
		}
		return r
	}, s)
}

// load expands the Hall symbol exactly once.
func (g *Group) load() error {
	g.once.Do(func() {
		g.ops, g.err = parseHall(g.e.hall)
		if g.err != nil {
			return
		}
		seen := make(map[[3][3]int]struct{}, len(g.ops))
		for _, op := range g.ops {
			if _, ok := seen[op.R]; !ok {
				seen[op.R] = struct{}{}
				g.rots = append(g.rots, op.R)
			}
		}
	})

	return g.err
}

// FromIndex returns group n (1..230) in its default setting.
func FromIndex(n int) (*Group, error) {
	return FromIndexSetting(n, Default)
}

// FromIndexSetting returns group n in the requested setting. ErrNotFound is
// returned when the group has no such alternate setting.
func FromIndexSetting(n int, s Setting) (*Group, error) {
	if n < 1 || n > len(standard) {
		return nil, fmt.Errorf("FromIndex(%d): %w", n, ErrOutOfRange)
	}
	g := standardGroups[n-1]
	if s != Default {
		var ok bool
		if g, ok = alternateGroups[settingKey{n, s}]; !ok {
			return nil, fmt.Errorf("FromIndex(%d, %v): %w", n, s, ErrNotFound)
		}
	}
	if err := g.load(); err != nil {
		return nil, err
	}

	return g, nil
}

// FromSymbol looks a group up by its Hermann–Mauguin short symbol. Blanks and
// underscores are ignored; letters are case-sensitive. A ":2" or ":R" suffix
// selects origin choice 2 or rhombohedral axes (":1" and ":H" are the default).
func FromSymbol(symbol string) (*Group, error) {
	sym, setting := normalizeSymbol(symbol), Default
	if i := strings.LastIndexByte(sym, ':'); i >= 0 {
		var err error
		if setting, err = ParseSetting(sym[i+1:]); err != nil {
			return nil, fmt.Errorf("FromSymbol(%q): %w", symbol, ErrNotFound)
		}
		sym = sym[:i]
	}
	g, ok := symbolIndex[sym]
	if !ok {
		return nil, fmt.Errorf("FromSymbol(%q): %w", symbol, ErrNotFound)
	}

	return FromIndexSetting(g.e.number, setting)
}

// Number returns the catalogue number 1..230.
func (g *Group) Number() int { return g.e.number }

// Symbol returns the Hermann–Mauguin short symbol.
func (g *Group) Symbol() string { return g.e.symbol }

// Hall returns the Hall symbol the operations were generated from.
func (g *Group) Hall() string { return g.e.hall }

// Setting returns the setting of this description.
func (g *Group) Setting() Setting { return g.e.setting }

// Operations returns a copy of the operations, identity first.
func (g *Group) Operations() []Operation {
	_ = g.load()
	out := make([]Operation, len(g.ops))
	copy(out, g.ops)

	return out
}

// Order returns the number of operations in the conventional cell.
func (g *Group) Order() int {
	_ = g.load()
	return len(g.ops)
}

// Rotations returns the distinct rotation parts: the point group.
func (g *Group) Rotations() [][3][3]int {
	_ = g.load()
	out := make([][3][3]int, len(g.rots))
	copy(out, g.rots)

	return out
}

// Centering returns the lattice letter of the Hall symbol (P, A, B, C, I, R, F).
// Rhombohedral settings are primitive and report P.
func (g *Group) Centering() byte {
	return strings.TrimPrefix(g.e.hall, "-")[0]
}

// Centrosymmetric reports whether −1 belongs to the point group.
func (g *Group) Centrosymmetric() bool {
	_ = g.load()
	inv := [3][3]int{{-1, 0, 0}, {0, -1, 0}, {0, 0, -1}}
	for _, r := range g.rots {
		if r == inv {
			return true
		}
	}

	return false
}

// CrystalSystem derives the crystal system from the catalogue number.
func (g *Group) CrystalSystem() unitcell.System {
	switch n := g.e.number; {
	case n <= 2:
		return unitcell.Triclinic
	case n <= 15:
		return unitcell.Monoclinic
	case n <= 74:
		return unitcell.Orthorhombic
	case n <= 142:
		return unitcell.Tetragonal
	case n <= 167:
		return unitcell.Trigonal
	case n <= 194:
		return unitcell.Hexagonal
	}

	return unitcell.Cubic
}

// String returns e.g. "Fd-3m (227)" or "R-3m (166, rhombohedral)".
func (g *Group) String() string {
	if g.e.setting == Default {
		return fmt.Sprintf("%s (%d)", g.e.symbol, g.e.number)
	}

	return fmt.Sprintf("%s (%d, %v)", g.e.symbol, g.e.number, g.e.setting)
}
