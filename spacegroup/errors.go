package spacegroup

import "errors"

var (
	// ErrOutOfRange indicates a space-group number outside 1..230.
	ErrOutOfRange = errors.New("spacegroup: number out of range")

	// ErrNotFound indicates an unknown symbol or a setting the group does not have.
	ErrNotFound = errors.New("spacegroup: not found")

	// ErrBadHall indicates a malformed Hall symbol.
	ErrBadHall = errors.New("spacegroup: malformed Hall symbol")
)
