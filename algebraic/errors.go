package algebraic

import (
	"errors"
	"fmt"

	"github.com/vitalvas/numfield/domain"
)

// ErrDomainConstruction is returned when a field is requested over a ground
// domain that is not the rational field.
var ErrDomainConstruction = errors.New("algebraic: ground domain must be a rational field")

// CoercionFailedError reports a value that could not be converted into a
// field. Err is one of numberfield.ErrNotAlgebraic,
// numberfield.ErrEmbeddingNotFound or a domain error.
type CoercionFailedError struct {
	Value domain.Value
	Field *Field
	Err   error
}

func (e *CoercionFailedError) Error() string {
	return fmt.Sprintf("algebraic: cannot convert %s to %s: %v", describe(e.Value), e.Field, e.Err)
}

func (e *CoercionFailedError) Unwrap() error {
	return e.Err
}

func describe(v domain.Value) string {
	switch x := v.(type) {
	case nil:
		return "<nil>"
	case domain.Int:
		return fmt.Sprintf("%d", int64(x))
	case domain.Fraction:
		return fmt.Sprintf("%d/%d", x.Num, x.Den)
	case domain.BigInt:
		if x.Value != nil {
			return x.Value.String()
		}
	case domain.BigRat:
		if x.Value != nil {
			return x.Value.RatString()
		}
	case domain.Float:
		if x.Value != nil {
			return x.Value.String()
		}
	case domain.Expr:
		if x.Value != nil {
			return x.Value.String()
		}
	case FieldValue:
		if x.Field != nil {
			return x.Element.String() + " in " + x.Field.String()
		}
	}
	return v.Kind().String() + " value"
}
