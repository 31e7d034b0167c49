package domain

import "errors"

var (
	// ErrCoercion is returned when a value cannot be represented in a domain.
	ErrCoercion = errors.New("domain: cannot coerce value")

	// ErrZeroDenominator is returned for fractions with a zero denominator.
	ErrZeroDenominator = errors.New("domain: zero denominator")
)
