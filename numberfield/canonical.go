package numberfield

import (
	"fmt"
	"math"
	"math/big"
	"math/cmplx"

	"github.com/vitalvas/numfield/expr"
	"github.com/vitalvas/numfield/poly"
)

// minTolerance is the smallest relative distance at which a numeric root is
// matched. Roots and values are computed in complex128, so requested
// precisions beyond this are capped.
const minTolerance = 1e-10

// Canonicalize returns the root of minpoly that ext denotes: RootOf(minpoly, n)
// for the first index n, in the order of poly.Roots, whose numeric value agrees
// with ext to digits significant digits, or to the accuracy of complex128
// when digits asks for more. A degree one minpoly yields its rational root.
//
// minpoly must be the minimal polynomial of ext. Canonicalize panics when no
// root matches, since that can only follow from a wrong minimal polynomial.
func Canonicalize(minpoly poly.Poly, ext expr.Expr, digits int) (expr.Expr, error) {
	if minpoly.Degree() == 1 {
		root := new(big.Rat).Quo(minpoly.Coeff(0), minpoly.LC())
		return expr.NewNumber(root.Neg(root)), nil
	}

	z, err := expr.Evalf(ext)
	if err != nil {
		return nil, notAlgebraic(err)
	}

	if digits <= 0 {
		digits = DefaultConfig().RootPrecision
	}
	tolerance := math.Max(math.Pow(10, -float64(digits+1)), minTolerance) * math.Max(1, cmplx.Abs(z))

	for n, r := range poly.Roots(minpoly) {
		if cmplx.Abs(r-z) <= tolerance {
			return expr.NewRootOf(minpoly, n), nil
		}
	}

	panic(fmt.Sprintf("numberfield: no root of %s matches %s", minpoly, ext))
}
