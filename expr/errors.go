package expr

import "errors"

var (
	// ErrFreeSymbol is returned when a numeric value is requested for an expression with free symbols.
	ErrFreeSymbol = errors.New("expr: expression contains a free symbol")

	// ErrUndefined is returned for undefined values such as division by zero.
	ErrUndefined = errors.New("expr: undefined value")

	// ErrUnknownFunction is returned for function names without a numeric definition.
	ErrUnknownFunction = errors.New("expr: unknown function")

	// ErrUnsupported is returned for expression forms an operation cannot handle.
	ErrUnsupported = errors.New("expr: unsupported expression")

	// ErrNotPolynomial is returned when an expression is not a polynomial in the requested variable.
	ErrNotPolynomial = errors.New("expr: not a polynomial")

	// ErrSyntax is returned when an expression string cannot be parsed.
	ErrSyntax = errors.New("expr: syntax error")
)
