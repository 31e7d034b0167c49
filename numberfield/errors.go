package numberfield

import "errors"

var (
	// ErrNotAlgebraic is returned when an expression is provably not algebraic
	// over the rationals, e.g. pi or a free symbol.
	ErrNotAlgebraic = errors.New("numberfield: expression is not algebraic")

	// ErrEmbeddingNotFound is returned when an algebraic expression could not
	// be identified as an element of the requested field.
	ErrEmbeddingNotFound = errors.New("numberfield: embedding not found")

	// ErrNoGenerators is returned when a primitive element is requested for an
	// empty generator list.
	ErrNoGenerators = errors.New("numberfield: no generators")

	// ErrNoPrimitiveElement is returned when no trial combination of the
	// generators is in generic position.
	ErrNoPrimitiveElement = errors.New("numberfield: primitive element not found")
)
