package scattering

import (
	"fmt"

	"github.com/katalvlaran/lvxtal/element"
)

// mottBethe is m₀e²/(8π²ε₀h²) expressed for s in Å⁻¹ and f in Å.
const mottBethe = 0.023934

// ElectronModel converts the X-ray form factor with the Mott–Bethe formula.
type ElectronModel struct {
	x *XRayModel
}

// Electron returns the Mott–Bethe electron model. Options apply to the
// underlying X-ray evaluation.
func Electron(opts ...Option) *ElectronModel {
	return &ElectronModel{x: XRay(opts...)}
}

// Name implements Model.
func (m *ElectronModel) Name() string { return NameElectron }

// Supports implements Model.
func (m *ElectronModel) Supports(el element.Element) bool { return m.x.Supports(el) }

// Amplitude implements Model. The formula is singular at s = 0, which is
// reported as ErrOutOfFittedRange.
func (m *ElectronModel) Amplitude(el element.Element, s float64) (float64, error) {
	if s == 0 {
		return 0, fmt.Errorf("Electron.Amplitude(%v): s=0: %w", el, ErrOutOfFittedRange)
	}
	fx, err := m.x.Amplitude(el, s)
	if err != nil {
		return 0, fmt.Errorf("Electron.Amplitude: %w", err)
	}

	return mottBethe * (float64(el.Z()) - fx) / (s * s), nil
}
