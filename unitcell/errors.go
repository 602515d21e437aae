package unitcell

import "errors"

var (
	// ErrInvalidGeometry indicates cell parameters that cannot describe a lattice:
	// a non-positive or non-finite length, an angle outside (0,π), or a
	// non-positive implied volume.
	ErrInvalidGeometry = errors.New("unitcell: invalid geometry")

	// ErrZeroVector indicates the (0,0,0) reciprocal vector, which has no d-spacing.
	ErrZeroVector = errors.New("unitcell: zero reciprocal vector")
)
