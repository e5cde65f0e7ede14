package lattice

import "errors"

var (
	// ErrInvalidDimension is returned when a lattice axis is shorter than
	// MinDimension.
	ErrInvalidDimension = errors.New("lattice: invalid dimension")
	// ErrOutOfBounds is returned by point queries outside the lattice.
	ErrOutOfBounds = errors.New("lattice: coordinate out of bounds")
	// ErrInvalidMaxLife is returned when maxLife is outside [1, MaxLifeLimit].
	ErrInvalidMaxLife = errors.New("lattice: invalid max life")
	// ErrInvalidProbability is returned when a seed probability is outside [0, 1].
	ErrInvalidProbability = errors.New("lattice: invalid seed probability")
	// ErrInvalidRule is returned for malformed survive/birth rule strings.
	ErrInvalidRule = errors.New("lattice: invalid rule")
	// ErrInvalidBoundary is returned for unknown boundary policy names.
	ErrInvalidBoundary = errors.New("lattice: invalid boundary")
)
