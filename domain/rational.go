package domain

import (
	"fmt"
	"math/big"

	"github.com/vitalvas/numfield/expr"
)

type rationalField struct{}

// QQ is the field of rational numbers. Elements are *big.Rat values owned by
// the caller.
var QQ Ring[*big.Rat] = rationalField{}

func (rationalField) String() string         { return "QQ" }
func (rationalField) IsField() bool          { return true }
func (rationalField) IsRationalField() bool  { return true }
func (rationalField) IsAlgebraicField() bool { return false }

func (rationalField) Zero() *big.Rat { return new(big.Rat) }
func (rationalField) One() *big.Rat  { return big.NewRat(1, 1) }

func (rationalField) Equal(a, b *big.Rat) bool { return a.Cmp(b) == 0 }

func (rationalField) IsPositive(a *big.Rat) bool    { return a.Sign() > 0 }
func (rationalField) IsNegative(a *big.Rat) bool    { return a.Sign() < 0 }
func (rationalField) IsNonPositive(a *big.Rat) bool { return a.Sign() <= 0 }
func (rationalField) IsNonNegative(a *big.Rat) bool { return a.Sign() >= 0 }

// Convert returns v as an exact rational. Floats convert to the exact value of
// their binary representation, so Float(0.1) is 3602879701896397/36028797018963968,
// unless Float.MaxDenominator asks for the closest rational with a bounded
// denominator.
func (rationalField) Convert(v Value) (*big.Rat, error) {
	switch x := v.(type) {
	case Int:
		return new(big.Rat).SetInt64(int64(x)), nil

	case Fraction:
		if x.Den == 0 {
			return nil, ErrZeroDenominator
		}
		return big.NewRat(x.Num, x.Den), nil

	case BigInt:
		if x.Value == nil {
			return nil, fmt.Errorf("%w: nil bigint", ErrCoercion)
		}
		return new(big.Rat).SetInt(x.Value), nil

	case BigRat:
		if x.Value == nil {
			return nil, fmt.Errorf("%w: nil bigrat", ErrCoercion)
		}
		return new(big.Rat).Set(x.Value), nil

	case Float:
		if x.Value == nil || x.Value.IsInf() {
			return nil, fmt.Errorf("%w: non-finite float", ErrCoercion)
		}
		if x.MaxDenominator < 0 {
			return nil, fmt.Errorf("%w: negative max denominator %d", ErrCoercion, x.MaxDenominator)
		}
		r, _ := x.Value.Rat(nil)
		if x.MaxDenominator > 0 {
			r = limitDenominator(r, big.NewInt(x.MaxDenominator))
		}
		return r, nil

	case Expr:
		if q, ok := expr.AsNumber(x.Value); ok {
			return new(big.Rat).Set(q), nil
		}
		return nil, fmt.Errorf("%w: %s is not a rational number", ErrCoercion, x.Value)
	}

	if v == nil {
		return nil, fmt.Errorf("%w: nil value", ErrCoercion)
	}
	return nil, fmt.Errorf("%w: %s value into QQ", ErrCoercion, v.Kind())
}

// limitDenominator returns the rational closest to r among those with
// denominator at most limit, using the continued fraction expansion of r.
// Ties go to the last convergent.
func limitDenominator(r *big.Rat, limit *big.Int) *big.Rat {
	if r.Denom().Cmp(limit) <= 0 {
		return new(big.Rat).Set(r)
	}

	abs := new(big.Rat).Abs(r)
	n := new(big.Int).Set(abs.Num())
	d := new(big.Int).Set(abs.Denom())

	p0, q0 := big.NewInt(0), big.NewInt(1)
	p1, q1 := big.NewInt(1), big.NewInt(0)

	a, m := new(big.Int), new(big.Int)
	for d.Sign() != 0 {
		a.DivMod(n, d, m)
		q2 := new(big.Int).Mul(a, q1)
		q2.Add(q2, q0)
		if q2.Cmp(limit) > 0 {
			break
		}

		p2 := new(big.Int).Mul(a, p1)
		p2.Add(p2, p0)
		p0, q0, p1, q1 = p1, q1, p2, q2
		n, d = d, new(big.Int).Set(m)
	}

	// semiconvergent with the largest admissible denominator
	k := new(big.Int).Sub(limit, q0)
	k.Quo(k, q1)
	lower := new(big.Rat).SetFrac(
		new(big.Int).Add(p0, new(big.Int).Mul(k, p1)),
		new(big.Int).Add(q0, new(big.Int).Mul(k, q1)),
	)
	upper := new(big.Rat).SetFrac(p1, q1)

	best := upper
	du := new(big.Rat).Sub(upper, abs)
	dl := new(big.Rat).Sub(lower, abs)
	if dl.Abs(dl).Cmp(du.Abs(du)) < 0 {
		best = lower
	}

	if r.Sign() < 0 {
		best.Neg(best)
	}
	return best
}
