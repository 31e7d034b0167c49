package numberfield

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/vitalvas/numfield/expr"
	"github.com/vitalvas/numfield/poly"
)

// maxExponent bounds the numerator of rational exponents.
const maxExponent = 1 << 12

// MinimalPolynomial returns the monic minimal polynomial of e over the
// rationals.
//
// Annihilating polynomials are composed bottom-up with resultants:
//
//	a + b:     res_y(A(x - y), B(y))
//	a * b:     res_y(y**deg(A) * A(x/y), B(y))
//	a**(p/q):  res_y(A(y), x**q - y**p)
//
// and at every node the irreducible factor vanishing at the numeric value of
// the node is kept.
func MinimalPolynomial(e expr.Expr, cfg Config) (poly.Poly, error) {
	return minimalPolynomial(e, cfg.normalized())
}

func minimalPolynomial(e expr.Expr, cfg Config) (poly.Poly, error) {
	switch v := e.(type) {
	case *expr.Number:
		return poly.New(new(big.Rat).Neg(v.Value), big.NewRat(1, 1)), nil

	case *expr.Imaginary:
		return poly.NewInt(1, 0, 1), nil

	case *expr.Symbol:
		return poly.Poly{}, fmt.Errorf("%w: %s", ErrNotAlgebraic, v.Name)

	case *expr.Func:
		return poly.Poly{}, fmt.Errorf("%w: %s", ErrNotAlgebraic, v)

	case *expr.RootOf:
		z, err := poly.Root(v.Poly, v.Index)
		if err != nil {
			return poly.Poly{}, err
		}
		return poly.MinimalFactor(v.Poly, z, cfg.MaxFactorDegree)

	case *expr.Add:
		return foldNode(e, v.Terms, cfg, func(a, b poly.Poly) poly.Poly {
			return poly.ResultantY(poly.ShiftSub(a, big.NewRat(1, 1)), poly.Lift(b))
		})

	case *expr.Mul:
		return foldNode(e, v.Factors, cfg, func(a, b poly.Poly) poly.Poly {
			return poly.ResultantY(poly.Homogenize(a), poly.Lift(b))
		})

	case *expr.Pow:
		return powMinimalPolynomial(v, cfg)
	}

	return poly.Poly{}, fmt.Errorf("%w: %T", ErrNotAlgebraic, e)
}

// foldNode combines the minimal polynomials of args pairwise with compose and
// reduces the result to the factor vanishing at the value of the partial node.
func foldNode(node expr.Expr, args []expr.Expr, cfg Config, compose func(a, b poly.Poly) poly.Poly) (poly.Poly, error) {
	acc, err := minimalPolynomial(args[0], cfg)
	if err != nil {
		return poly.Poly{}, err
	}

	for i := 1; i < len(args); i++ {
		next, err := minimalPolynomial(args[i], cfg)
		if err != nil {
			return poly.Poly{}, err
		}

		var partial expr.Expr
		switch node.(type) {
		case *expr.Add:
			partial = expr.NewAdd(args[:i+1]...)
		default:
			partial = expr.NewMul(args[:i+1]...)
		}

		z, err := expr.Evalf(partial)
		if err != nil {
			return poly.Poly{}, notAlgebraic(err)
		}

		acc, err = poly.MinimalFactor(compose(acc, next), z, cfg.MaxFactorDegree)
		if err != nil {
			return poly.Poly{}, err
		}
	}

	return acc, nil
}

func powMinimalPolynomial(p *expr.Pow, cfg Config) (poly.Poly, error) {
	exp, ok := expr.AsNumber(p.Exp)
	if !ok {
		if _, err := minimalPolynomial(p.Exp, cfg); err != nil {
			return poly.Poly{}, err
		}
		return poly.Poly{}, fmt.Errorf("%w: irrational exponent in %s", ErrNotAlgebraic, p)
	}

	base, err := minimalPolynomial(p.Base, cfg)
	if err != nil {
		return poly.Poly{}, err
	}

	if exp.Sign() == 0 {
		return poly.NewInt(-1, 1), nil
	}
	if !exp.Num().IsInt64() || !exp.Denom().IsInt64() {
		return poly.Poly{}, fmt.Errorf("%w: exponent %s", poly.ErrDegreeTooLarge, exp.RatString())
	}

	num, den := exp.Num().Int64(), exp.Denom().Int64()
	if num < 0 {
		if base.Coeff(0).Sign() == 0 {
			return poly.Poly{}, fmt.Errorf("%w: division by zero in %s", expr.ErrUndefined, p)
		}
		base = base.Reverse()
		num = -num
	}

	if den > int64(cfg.MaxFactorDegree) || num > maxExponent {
		return poly.Poly{}, fmt.Errorf("%w: exponent of %s", poly.ErrDegreeTooLarge, p)
	}

	z, err := expr.Evalf(p)
	if err != nil {
		return poly.Poly{}, notAlgebraic(err)
	}

	r := poly.ResultantY(poly.Lift(base), poly.PowerRelation(int(num), int(den)))
	return poly.MinimalFactor(r, z, cfg.MaxFactorDegree)
}

func notAlgebraic(err error) error {
	if errors.Is(err, expr.ErrFreeSymbol) {
		return fmt.Errorf("%w: %v", ErrNotAlgebraic, err)
	}
	return err
}
