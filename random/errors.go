package random

import "errors"

var (
	// ErrSizeMismatch reports probability and element sequences of different lengths.
	ErrSizeMismatch = errors.New("probabilities and elements must be the same length")
	// ErrOutOfRange reports a probability outside [0, 1].
	ErrOutOfRange = errors.New("all probabilities must be between 0 and 1")
	// ErrMassExceeded reports probabilities whose sum falls outside [0, 1].
	ErrMassExceeded = errors.New("probabilities must sum to between 0 and 1")
	// ErrInvalidRange reports an integer range whose lower bound exceeds its upper bound.
	ErrInvalidRange = errors.New("invalid range")
)
