package scattering

import "errors"

var (
	// ErrUnsupportedElement indicates an element the model has no coefficients for.
	ErrUnsupportedElement = errors.New("scattering: unsupported element")

	// ErrOutOfFittedRange indicates s outside the range the model is valid for.
	ErrOutOfFittedRange = errors.New("scattering: s outside fitted range")

	// ErrNotFound indicates an unknown model name.
	ErrNotFound = errors.New("scattering: model not found")
)
