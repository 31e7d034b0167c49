package numberfield

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/vitalvas/numfield/expr"
	"github.com/vitalvas/numfield/poly"
)

// ToNumberField identifies a as an element of QQ(ext), where minpoly is the
// minimal polynomial of ext. The result p satisfies a = p(ext) with
// deg p < deg minpoly.
//
// ErrNotAlgebraic is returned when a is not algebraic; any other failure to
// place a in the field is reported as ErrEmbeddingNotFound.
func ToNumberField(a expr.Expr, minpoly poly.Poly, ext expr.Expr, cfg Config) (poly.Poly, error) {
	cfg = cfg.normalized()

	if q, ok := expr.AsNumber(a); ok {
		return poly.Const(q), nil
	}

	ma, err := minimalPolynomial(a, cfg)
	if err != nil {
		if errors.Is(err, ErrNotAlgebraic) {
			return poly.Poly{}, err
		}
		return poly.Poly{}, fmt.Errorf("%w: %s: %v", ErrEmbeddingNotFound, a, err)
	}

	d := minpoly.Degree()
	if ma.Degree() == 1 {
		return poly.Const(new(big.Rat).Neg(ma.Coeff(0))), nil
	}
	if d%ma.Degree() != 0 {
		return poly.Poly{}, fmt.Errorf("%w: degree %d of %s does not divide %d", ErrEmbeddingNotFound, ma.Degree(), a, d)
	}

	za, err := expr.Evalf(a)
	if err != nil {
		return poly.Poly{}, notAlgebraic(err)
	}
	zext, err := expr.Evalf(ext)
	if err != nil {
		return poly.Poly{}, notAlgebraic(err)
	}

	pe, err := primitive([]generator{
		{minpoly: minpoly, value: zext},
		{minpoly: ma, value: za},
	}, cfg)
	if err != nil {
		return poly.Poly{}, fmt.Errorf("%w: %v", ErrEmbeddingNotFound, err)
	}
	if pe.Minpoly.Degree() != d {
		return poly.Poly{}, fmt.Errorf("%w: %s generates a field of degree %d", ErrEmbeddingNotFound, a, pe.Minpoly.Degree())
	}

	coords, ok := solveCoordinates(pe.H[0], pe.H[1], pe.Minpoly)
	if !ok {
		return poly.Poly{}, fmt.Errorf("%w: singular system for %s", ErrEmbeddingNotFound, a)
	}
	return coords, nil
}

// solveCoordinates finds c with sum c_i * base**i = target modulo mod, where
// base generates QQ[x]/mod.
func solveCoordinates(base, target, mod poly.Poly) (poly.Poly, bool) {
	d := mod.Degree()

	// column i holds the coefficients of base**i mod m
	rows := make([][]*big.Rat, d)
	for r := range rows {
		rows[r] = make([]*big.Rat, d+1)
	}

	power := poly.NewInt(1)
	for i := 0; i < d; i++ {
		for r := 0; r < d; r++ {
			rows[r][i] = power.Coeff(r)
		}
		power = power.Mul(base).Rem(mod)
	}
	for r := 0; r < d; r++ {
		rows[r][d] = target.Coeff(r)
	}

	solution, ok := gaussSolve(rows)
	if !ok {
		return poly.Poly{}, false
	}
	return poly.New(solution...), true
}

// gaussSolve solves the square system held in the augmented matrix m,
// modifying it in place.
func gaussSolve(m [][]*big.Rat) ([]*big.Rat, bool) {
	n := len(m)
	tmp := new(big.Rat)

	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if m[r][col].Sign() != 0 {
				pivot = r
				break
			}
		}
		if pivot < 0 {
			return nil, false
		}
		m[col], m[pivot] = m[pivot], m[col]

		inv := new(big.Rat).Inv(m[col][col])
		for c := col; c <= n; c++ {
			m[col][c].Mul(m[col][c], inv)
		}

		for r := 0; r < n; r++ {
			if r == col || m[r][col].Sign() == 0 {
				continue
			}
			factor := new(big.Rat).Set(m[r][col])
			for c := col; c <= n; c++ {
				m[r][c].Sub(m[r][c], tmp.Mul(factor, m[col][c]))
			}
		}
	}

	solution := make([]*big.Rat, n)
	for r := range solution {
		solution[r] = m[r][n]
	}
	return solution, true
}
