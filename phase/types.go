package phase

import (
	"errors"

	"github.com/katalvlaran/lvxtal/internal/logging"
)

// ErrInvalidArgument indicates a nil dependency or an argument out of range.
var ErrInvalidArgument = errors.New("phase: invalid argument")

// zeroIntensity is the relative intensity below which a class is an exact
// zero of the structure-factor sum, whatever the caller's threshold.
const zeroIntensity = 1e-10

// Options configures a Phase.
type Options struct {
	Logger logging.Logger
}

// Option represents a functional option for New.
type Option func(*Options)

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l logging.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: logging.NewNopLogger()}
}
