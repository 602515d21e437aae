package scattering

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lvxtal/element"
)

// Model yields the scattering amplitude of one atom.
type Model interface {
	// Name identifies the model, e.g. "xray".
	Name() string
	// Supports reports whether Amplitude can succeed for el at some s.
	Supports(el element.Element) bool
	// Amplitude returns f(el, s) for s = sinθ/λ in Å⁻¹.
	Amplitude(el element.Element, s float64) (float64, error)
}

// Names of the built-in models, as accepted by Lookup.
const (
	NameXRay     = "xray"
	NameElectron = "electron"
	NameConstant = "constant"
)

// Lookup returns a built-in model by name (case-insensitive). The constant
// model is returned with unit amplitude.
func Lookup(name string, opts ...Option) (Model, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameXRay, "x-ray":
		return XRay(opts...), nil
	case NameElectron:
		return Electron(opts...), nil
	case NameConstant:
		return Constant(1), nil
	}

	return nil, fmt.Errorf("Lookup(%q): %w", name, ErrNotFound)
}

// RangePolicy decides what happens beyond the fitted range.
type RangePolicy int

const (
	// RangeStrict fails with ErrOutOfFittedRange.
	RangeStrict RangePolicy = iota
	// RangeExtrapolate evaluates the fit regardless.
	RangeExtrapolate
)

// String implements fmt.Stringer.
func (p RangePolicy) String() string {
	if p == RangeExtrapolate {
		return "extrapolate"
	}

	return "strict"
}

// ParseRangePolicy accepts "strict" and "extrapolate".
func ParseRangePolicy(s string) (RangePolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return RangeStrict, nil
	case "extrapolate":
		return RangeExtrapolate, nil
	}

	return RangeStrict, fmt.Errorf("ParseRangePolicy(%q): %w", s, ErrNotFound)
}

// MaxFittedS is the upper end of the Cromer–Mann fit in Å⁻¹.
const MaxFittedS = 2.0

// Options configures the tabulated models.
type Options struct {
	Policy RangePolicy // behaviour beyond MaxS
	MaxS   float64     // upper end of the trusted range, Å⁻¹
}

// Option represents a functional option for the tabulated models.
type Option func(*Options)

// DefaultOptions returns strict evaluation over the fitted range.
func DefaultOptions() Options {
	return Options{Policy: RangeStrict, MaxS: MaxFittedS}
}

// WithRangePolicy selects the out-of-range behaviour.
func WithRangePolicy(p RangePolicy) Option {
	return func(o *Options) { o.Policy = p }
}

// WithMaxS narrows the trusted range. Values outside (0, MaxFittedS] are ignored.
func WithMaxS(s float64) Option {
	return func(o *Options) {
		if s > 0 && s <= MaxFittedS {
			o.MaxS = s
		}
	}
}

func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
