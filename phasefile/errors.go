package phasefile

import "errors"

var (
	// ErrNotFound indicates a missing document file or directory.
	ErrNotFound = errors.New("phasefile: not found")

	// ErrUnsupportedFormat indicates an extension or format name other than TOML or YAML.
	ErrUnsupportedFormat = errors.New("phasefile: unsupported format")

	// ErrInvalidDocument indicates a document that decodes but cannot describe a phase.
	ErrInvalidDocument = errors.New("phasefile: invalid document")
)
