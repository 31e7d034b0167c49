package poly

import "errors"

var (
	// ErrZeroPolynomial is returned when an operation needs a non-zero polynomial.
	ErrZeroPolynomial = errors.New("poly: zero polynomial")

	// ErrFactorNotFound is returned when no rational factor vanishes at the given point.
	ErrFactorNotFound = errors.New("poly: no rational factor vanishes at the given point")

	// ErrDegreeTooLarge is returned when factor selection would exceed the configured degree.
	ErrDegreeTooLarge = errors.New("poly: polynomial degree exceeds the factor search limit")

	// ErrRootIndex is returned when a root index is outside [0, degree).
	ErrRootIndex = errors.New("poly: root index out of range")
)
