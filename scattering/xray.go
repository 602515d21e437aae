package scattering

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvxtal/element"
)

// XRayModel evaluates tabulated Cromer–Mann coefficients.
type XRayModel struct {
	opts Options
}

// XRay returns the Cromer–Mann X-ray model.
func XRay(opts ...Option) *XRayModel {
	return &XRayModel{opts: buildOptions(opts)}
}

// Name implements Model.
func (m *XRayModel) Name() string { return NameXRay }

// Supports implements Model.
func (m *XRayModel) Supports(el element.Element) bool {
	_, ok := xrayTable[el.Z()]
	return ok
}

// Amplitude implements Model. f is in electrons.
func (m *XRayModel) Amplitude(el element.Element, s float64) (float64, error) {
	cm, ok := xrayTable[el.Z()]
	if !ok {
		return 0, fmt.Errorf("XRay.Amplitude(%v): %w", el, ErrUnsupportedElement)
	}
	if err := m.checkRange(s); err != nil {
		return 0, fmt.Errorf("XRay.Amplitude(%v): %w", el, err)
	}

	return cm.eval(s), nil
}

func (m *XRayModel) checkRange(s float64) error {
	if s < 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return fmt.Errorf("s=%g: %w", s, ErrOutOfFittedRange)
	}
	if s > m.opts.MaxS && m.opts.Policy == RangeStrict {
		return fmt.Errorf("s=%g > %g Å⁻¹: %w", s, m.opts.MaxS, ErrOutOfFittedRange)
	}

	return nil
}

func (c cromerMann) eval(s float64) float64 {
	s2 := s * s
	f := c.c
	for i := 0; i < 4; i++ {
		f += c.a[i] * math.Exp(-c.b[i]*s2)
	}

	return f
}

// Elements returns the supported elements in ascending Z.
func (m *XRayModel) Elements() []element.Element {
	out := make([]element.Element, 0, len(xrayTable))
	for z := 1; z <= element.MaxZ; z++ {
		if _, ok := xrayTable[z]; ok {
			out = append(out, element.Element(z))
		}
	}

	return out
}
