package element

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrOutOfRange indicates an atomic number outside the catalogue (1..98).
	ErrOutOfRange = errors.New("element: atomic number out of range")

	// ErrNotFound indicates an unknown element symbol.
	ErrNotFound = errors.New("element: symbol not found")
)

// MaxZ is the highest atomic number in the catalogue (californium).
const MaxZ = 98

// Element is a chemical element identified by its atomic number.
// The zero value is invalid; construct via FromNumber or FromSymbol.
type Element int

// symbols is indexed by Z; index 0 is a placeholder.
var symbols = [MaxZ + 1]string{"",
	"H", "He", "Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar", "K", "Ca",
	"Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr", "Rb", "Sr", "Y", "Zr",
	"Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd", "In", "Sn",
	"Sb", "Te", "I", "Xe", "Cs", "Ba", "La", "Ce", "Pr", "Nd",
	"Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb",
	"Lu", "Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn", "Fr", "Ra", "Ac", "Th",
	"Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf",
}

// bySymbol maps lower-cased symbols to Z; built once at package init and
// read-only afterwards.
var bySymbol = func() map[string]Element {
	m := make(map[string]Element, MaxZ)
	for z := 1; z <= MaxZ; z++ {
		m[strings.ToLower(symbols[z])] = Element(z)
	}

	return m
}()

// Common elements, for readability at call sites and in tests.
const (
	Hydrogen  Element = 1
	Carbon    Element = 6
	Oxygen    Element = 8
	Aluminium Element = 13
	Silicon   Element = 14
	Titanium  Element = 22
	Chromium  Element = 24
	Iron      Element = 26
	Nickel    Element = 28
	Copper    Element = 29
	Zinc      Element = 30
	Magnesium Element = 12
	Tungsten  Element = 74
	Gold      Element = 79
)

// FromNumber returns the element with atomic number z.
func FromNumber(z int) (Element, error) {
	if z < 1 || z > MaxZ {
		return 0, fmt.Errorf("FromNumber(%d): %w", z, ErrOutOfRange)
	}

	return Element(z), nil
}

// FromSymbol resolves a symbol case-insensitively ("fe", "Fe", "FE").
func FromSymbol(sym string) (Element, error) {
	el, ok := bySymbol[strings.ToLower(strings.TrimSpace(sym))]
	if !ok {
		return 0, fmt.Errorf("FromSymbol(%q): %w", sym, ErrNotFound)
	}

	return el, nil
}

// Z returns the atomic number.
func (e Element) Z() int { return int(e) }

// Valid reports whether e lies inside the catalogue.
func (e Element) Valid() bool { return e >= 1 && e <= MaxZ }

// Symbol returns the element symbol, or "?" for an invalid element.
func (e Element) Symbol() string {
	if !e.Valid() {
		return "?"
	}

	return symbols[e]
}

// String implements fmt.Stringer.
func (e Element) String() string { return e.Symbol() }
