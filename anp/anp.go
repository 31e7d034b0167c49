// Package anp implements dense elements of an algebraic number field: polynomials
// over the ground domain reduced modulo the field's minimal polynomial.
package anp

import (
	"math/big"
	"strings"

	"github.com/vitalvas/numfield/domain"
	"github.com/vitalvas/numfield/poly"
)

// Element is a field element kept as the remainder of a polynomial divided by
// the field's minimal polynomial. The zero element has no coefficients.
//
// Element is a value type. It carries the reduction modulus and the ground
// domain of its field but not the field itself.
type Element struct {
	p   poly.Poly
	mod poly.Poly
	dom domain.Ring[*big.Rat]
}

// New returns the element with coefficients rep, most significant first,
// reduced modulo mod. It panics if mod is not of positive degree.
func New(rep []*big.Rat, mod poly.Poly, dom domain.Ring[*big.Rat]) Element {
	coeffs := make([]*big.Rat, len(rep))
	for i, c := range rep {
		coeffs[len(rep)-1-i] = c
	}
	return FromPoly(poly.New(coeffs...), mod, dom)
}

// FromPoly returns p reduced modulo mod.
func FromPoly(p, mod poly.Poly, dom domain.Ring[*big.Rat]) Element {
	if mod.Degree() < 1 {
		panic("anp: modulus must have positive degree")
	}
	return Element{p: p.Rem(mod), mod: mod, dom: dom}
}

// Zero returns the additive identity.
func Zero(mod poly.Poly, dom domain.Ring[*big.Rat]) Element {
	return FromPoly(poly.Poly{}, mod, dom)
}

// One returns the multiplicative identity.
func One(mod poly.Poly, dom domain.Ring[*big.Rat]) Element {
	return FromPoly(poly.NewInt(1), mod, dom)
}

func (a Element) with(p poly.Poly) Element {
	return Element{p: p.Rem(a.mod), mod: a.mod, dom: a.dom}
}

func (a Element) check(b Element) {
	if !a.mod.Equal(b.mod) {
		panic("anp: elements of different fields")
	}
}

// Add returns a + b.
func (a Element) Add(b Element) Element {
	a.check(b)
	return a.with(a.p.Add(b.p))
}

// Sub returns a - b.
func (a Element) Sub(b Element) Element {
	a.check(b)
	return a.with(a.p.Sub(b.p))
}

// Mul returns a * b.
func (a Element) Mul(b Element) Element {
	a.check(b)
	return a.with(a.p.Mul(b.p))
}

// Neg returns -a.
func (a Element) Neg() Element {
	return a.with(a.p.Neg())
}

// Scale returns q * a for a ground scalar q.
func (a Element) Scale(q *big.Rat) Element {
	return a.with(a.p.Scale(q))
}

// Inverse returns 1 / a.
func (a Element) Inverse() (Element, error) {
	if a.IsZero() {
		return Element{}, ErrDivisionByZero
	}

	g, s, _ := poly.ExtGCD(a.p, a.mod)
	if g.Degree() != 0 {
		return Element{}, ErrNotInvertible
	}
	return a.with(s), nil
}

// Quo returns a / b.
func (a Element) Quo(b Element) (Element, error) {
	a.check(b)
	inv, err := b.Inverse()
	if err != nil {
		return Element{}, err
	}
	return a.Mul(inv), nil
}

// Pow returns a**n. Negative n requires a to be invertible.
func (a Element) Pow(n int) (Element, error) {
	base := a
	if n < 0 {
		inv, err := a.Inverse()
		if err != nil {
			return Element{}, err
		}
		base = inv
		n = -n
	}

	result := One(a.mod, a.dom)
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result, nil
}

// IsZero reports whether a is the zero element.
func (a Element) IsZero() bool {
	return a.p.IsZero()
}

// IsOne reports whether a is the multiplicative identity.
func (a Element) IsOne() bool {
	return a.p.IsOne()
}

// Equal reports whether a and b are the same element of the same field.
func (a Element) Equal(b Element) bool {
	return a.mod.Equal(b.mod) && a.p.Equal(b.p)
}

// LC returns the leading coefficient, or zero for the zero element.
func (a Element) LC() *big.Rat {
	if a.IsZero() {
		return new(big.Rat)
	}
	return a.p.LC()
}

// Rep returns the coefficients, most significant first. The zero element
// returns an empty slice.
func (a Element) Rep() []*big.Rat {
	coeffs := a.p.Coeffs()
	rep := make([]*big.Rat, len(coeffs))
	for i, c := range coeffs {
		rep[len(coeffs)-1-i] = c
	}
	return rep
}

// Len returns the number of stored coefficients.
func (a Element) Len() int {
	return a.p.Degree() + 1
}

// Degree returns the degree of the representing polynomial, -1 for zero.
func (a Element) Degree() int {
	return a.p.Degree()
}

// Poly returns the representing polynomial, constant term first.
func (a Element) Poly() poly.Poly {
	return a.p
}

// Mod returns the reduction modulus.
func (a Element) Mod() poly.Poly {
	return a.mod
}

// Domain returns the ground domain of the coefficients.
func (a Element) Domain() domain.Ring[*big.Rat] {
	return a.dom
}

// String formats a as its coefficient list, e.g. "[1, 0, -1/2]".
func (a Element) String() string {
	rep := a.Rep()
	parts := make([]string, len(rep))
	for i, c := range rep {
		parts[i] = c.RatString()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// LeadingCoeffSign returns the sign of the leading coefficient of a as judged
// by its ground domain: -1, 0 or +1.
//
// This is an approximation of the sign of the algebraic number, not an exact
// test. It agrees with the numeric sign only when the embedding of the
// generator makes the two coincide. In QQ<sqrt(2)> the element sqrt(2) - 2 has
// leading coefficient 1 and is reported positive although it is negative.
func LeadingCoeffSign(a Element) int {
	lc := a.LC()
	switch {
	case a.dom.IsPositive(lc):
		return 1
	case a.dom.IsNegative(lc):
		return -1
	}
	return 0
}
