package anp

import "errors"

var (
	// ErrDivisionByZero is returned when inverting or dividing by zero.
	ErrDivisionByZero = errors.New("anp: division by zero")

	// ErrNotInvertible is returned when an element shares a factor with a
	// reducible modulus.
	ErrNotInvertible = errors.New("anp: element is not invertible")
)
