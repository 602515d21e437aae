package reflector

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrInvalidReflector indicates (0,0,0) or a negative or non-finite intensity.
var ErrInvalidReflector = errors.New("reflector: invalid reflector")

// HKL is a triple of Miller indices.
type HKL [3]int

// IsZero reports whether h is (0,0,0).
func (h HKL) IsZero() bool { return h == HKL{} }

// String renders "(1 1 0)" or "(1 -1 2)".
func (h HKL) String() string { return fmt.Sprintf("(%d %d %d)", h[0], h[1], h[2]) }

// Less orders triples lexicographically.
func (h HKL) Less(o HKL) bool {
	for i := 0; i < 3; i++ {
		if h[i] != o[i] {
			return h[i] < o[i]
		}
	}

	return false
}

// Reflector is one reflection. Intensity is relative to the strongest
// reflection of its collection when computed, arbitrary when added by hand.
// DSpacing and Multiplicity are zero when unknown.
type Reflector struct {
	HKL          HKL     `json:"hkl"`
	Intensity    float64 `json:"intensity"`
	DSpacing     float64 `json:"d_spacing,omitempty"`
	Multiplicity int     `json:"multiplicity,omitempty"`
}

// Validate checks hkl ≠ 0 and a finite, non-negative intensity.
func (r Reflector) Validate() error {
	if r.HKL.IsZero() {
		return fmt.Errorf("%v: %w", r.HKL, ErrInvalidReflector)
	}
	if !(r.Intensity >= 0) || math.IsInf(r.Intensity, 0) {
		return fmt.Errorf("%v: intensity %g: %w", r.HKL, r.Intensity, ErrInvalidReflector)
	}

	return nil
}

// Reflectors is an ordered collection. The zero value is empty and ready to
// use. It is not safe for concurrent mutation.
type Reflectors struct {
	items []Reflector
}

// New returns a collection holding rs, validated, in order.
func New(rs ...Reflector) (*Reflectors, error) {
	c := &Reflectors{items: make([]Reflector, 0, len(rs))}
	for _, r := range rs {
		if err := c.Add(r); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// Add appends r without any symmetry reduction.
func (c *Reflectors) Add(r Reflector) error {
	if err := r.Validate(); err != nil {
		return fmt.Errorf("Add: %w", err)
	}
	c.items = append(c.items, r)

	return nil
}

// AddReduced appends r unless equivalent reports it equal to a stored entry.
// The result tells whether r was stored.
func (c *Reflectors) AddReduced(r Reflector, equivalent func(a, b HKL) bool) (bool, error) {
	if err := r.Validate(); err != nil {
		return false, fmt.Errorf("AddReduced: %w", err)
	}
	if _, ok := c.Find(r.HKL, equivalent); ok {
		return false, nil
	}
	c.items = append(c.items, r)

	return true, nil
}

// Len returns the number of stored reflectors.
func (c *Reflectors) Len() int { return len(c.items) }

// All returns a copy in insertion order.
func (c *Reflectors) All() []Reflector {
	out := make([]Reflector, len(c.items))
	copy(out, c.items)

	return out
}

// Sorted returns a copy ordered by descending intensity, ties by ascending hkl.
func (c *Reflectors) Sorted() []Reflector {
	out := c.All()
	SortByIntensity(out)

	return out
}

// SortByIntensity orders rs in place by descending intensity, ties by
// ascending hkl.
func SortByIntensity(rs []Reflector) {
	sort.SliceStable(rs, func(i, j int) bool {
		if rs[i].Intensity != rs[j].Intensity {
			return rs[i].Intensity > rs[j].Intensity
		}
		return rs[i].HKL.Less(rs[j].HKL)
	})
}

// Lookup returns the first reflector with exactly these indices.
func (c *Reflectors) Lookup(h HKL) (Reflector, bool) {
	for _, r := range c.items {
		if r.HKL == h {
			return r, true
		}
	}

	return Reflector{}, false
}

// Find returns the first reflector equivalent to h. A nil equivalent means
// exact match.
func (c *Reflectors) Find(h HKL, equivalent func(a, b HKL) bool) (Reflector, bool) {
	if equivalent == nil {
		return c.Lookup(h)
	}
	for _, r := range c.items {
		if equivalent(r.HKL, h) {
			return r, true
		}
	}

	return Reflector{}, false
}

// Clone returns an independent copy.
func (c *Reflectors) Clone() *Reflectors {
	return &Reflectors{items: c.All()}
}
