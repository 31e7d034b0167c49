package algebraic

import (
	"github.com/vitalvas/numfield/anp"
	"github.com/vitalvas/numfield/domain"
	"github.com/vitalvas/numfield/expr"
	"github.com/vitalvas/numfield/numberfield"
	"github.com/vitalvas/numfield/poly"
)

// FieldValue is an element of an algebraic field presented as a source value
// for conversion into another field.
type FieldValue struct {
	Field   *Field
	Element anp.Element
}

func (FieldValue) Kind() domain.Kind { return domain.KindAlgebraic }

// Value wraps a as a source value of kind domain.KindAlgebraic.
func (f *Field) Value(a anp.Element) FieldValue {
	return FieldValue{Field: f, Element: a}
}

type converter func(f *Field, v domain.Value) (anp.Element, error)

// converters routes each source kind to its conversion.
var converters = map[domain.Kind]converter{
	domain.KindInt:       fromGround,
	domain.KindFraction:  fromGround,
	domain.KindBigInt:    fromGround,
	domain.KindBigRat:    fromGround,
	domain.KindFloat:     fromGround,
	domain.KindAlgebraic: fromAlgebraic,
	domain.KindExpr:      fromExpr,
}

// Convert returns v as an element of f. Failures are reported as
// *CoercionFailedError.
func (f *Field) Convert(v domain.Value) (anp.Element, error) {
	if v == nil {
		return anp.Element{}, f.coercionFailed(v, domain.ErrCoercion)
	}

	conv, ok := converters[v.Kind()]
	if !ok {
		return anp.Element{}, f.coercionFailed(v, domain.ErrCoercion)
	}
	return conv(f, v)
}

// ConvertExpr identifies the expression e as an element of f.
func (f *Field) ConvertExpr(e expr.Expr) (anp.Element, error) {
	p, err := numberfield.ToNumberField(e, f.minpoly, f.ext, f.cfg)
	if err != nil {
		return anp.Element{}, f.coercionFailed(domain.Expr{Value: e}, err)
	}
	return anp.FromPoly(p, f.minpoly, f.dom), nil
}

func fromGround(f *Field, v domain.Value) (anp.Element, error) {
	q, err := f.dom.Convert(v)
	if err != nil {
		return anp.Element{}, f.coercionFailed(v, err)
	}
	return anp.FromPoly(poly.Const(q), f.minpoly, f.dom), nil
}

func fromAlgebraic(f *Field, v domain.Value) (anp.Element, error) {
	src, ok := v.(FieldValue)
	if !ok || src.Field == nil {
		return anp.Element{}, f.coercionFailed(v, domain.ErrCoercion)
	}

	if Equal(src.Field, f) {
		return anp.FromPoly(src.Element.Poly(), f.minpoly, f.dom), nil
	}
	return fromExpr(f, domain.Expr{Value: src.Field.ToExpr(src.Element)})
}

func fromExpr(f *Field, v domain.Value) (anp.Element, error) {
	src, ok := v.(domain.Expr)
	if !ok || src.Value == nil {
		return anp.Element{}, f.coercionFailed(v, domain.ErrCoercion)
	}
	return f.ConvertExpr(src.Value)
}

func (f *Field) coercionFailed(v domain.Value, err error) *CoercionFailedError {
	return &CoercionFailedError{Value: v, Field: f, Err: err}
}
