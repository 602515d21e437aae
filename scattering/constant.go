package scattering

import (
	"fmt"

	"github.com/katalvlaran/lvxtal/element"
)

// ConstantModel scatters identically for every element and every s.
type ConstantModel struct {
	v float64
}

// Constant returns a model with amplitude v.
func Constant(v float64) *ConstantModel { return &ConstantModel{v: v} }

// Name implements Model.
func (m *ConstantModel) Name() string { return NameConstant }

// Supports implements Model.
func (m *ConstantModel) Supports(el element.Element) bool { return el.Valid() }

// Amplitude implements Model.
func (m *ConstantModel) Amplitude(el element.Element, s float64) (float64, error) {
	if !el.Valid() {
		return 0, fmt.Errorf("Constant.Amplitude(%d): %w", el.Z(), ErrUnsupportedElement)
	}

	return m.v, nil
}
