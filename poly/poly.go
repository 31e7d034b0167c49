package poly

import (
	"math/big"
	"strings"
)

// Poly is a univariate polynomial with rational coefficients.
// coeffs[0] is the constant term. The slice is always trimmed so that the
// leading coefficient is non-zero; the zero polynomial has no coefficients.
//
// Poly values are immutable: every operation returns a fresh polynomial and
// never shares *big.Rat pointers with its operands.
type Poly struct {
	coeffs []*big.Rat
}

// New creates a polynomial from coefficients, constant term first.
func New(coeffs ...*big.Rat) Poly {
	out := make([]*big.Rat, len(coeffs))
	for i, c := range coeffs {
		if c == nil {
			out[i] = new(big.Rat)
			continue
		}
		out[i] = new(big.Rat).Set(c)
	}
	return trim(out)
}

// NewInt creates a polynomial from integer coefficients, constant term first.
// NewInt(-2, 0, 1) is x**2 - 2.
func NewInt(coeffs ...int64) Poly {
	out := make([]*big.Rat, len(coeffs))
	for i, c := range coeffs {
		out[i] = new(big.Rat).SetInt64(c)
	}
	return trim(out)
}

// X returns the polynomial x.
func X() Poly {
	return NewInt(0, 1)
}

// Const returns the constant polynomial q.
func Const(q *big.Rat) Poly {
	return New(q)
}

func trim(coeffs []*big.Rat) Poly {
	n := len(coeffs)
	for n > 0 && coeffs[n-1].Sign() == 0 {
		n--
	}
	return Poly{coeffs: coeffs[:n]}
}

// Degree returns the degree of p, or -1 for the zero polynomial.
func (p Poly) Degree() int {
	return len(p.coeffs) - 1
}

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool {
	return len(p.coeffs) == 0
}

// IsOne reports whether p is the constant 1.
func (p Poly) IsOne() bool {
	return len(p.coeffs) == 1 && p.coeffs[0].Cmp(ratOne) == 0
}

// Coeff returns a copy of the coefficient of x**i.
func (p Poly) Coeff(i int) *big.Rat {
	if i < 0 || i >= len(p.coeffs) {
		return new(big.Rat)
	}
	return new(big.Rat).Set(p.coeffs[i])
}

// Coeffs returns a copy of the coefficients, constant term first.
func (p Poly) Coeffs() []*big.Rat {
	out := make([]*big.Rat, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = new(big.Rat).Set(c)
	}
	return out
}

// LC returns a copy of the leading coefficient; zero for the zero polynomial.
func (p Poly) LC() *big.Rat {
	if p.IsZero() {
		return new(big.Rat)
	}
	return new(big.Rat).Set(p.coeffs[len(p.coeffs)-1])
}

// Equal reports whether p and q have identical coefficients.
func (p Poly) Equal(q Poly) bool {
	if len(p.coeffs) != len(q.coeffs) {
		return false
	}
	for i := range p.coeffs {
		if p.coeffs[i].Cmp(q.coeffs[i]) != 0 {
			return false
		}
	}
	return true
}

// Add returns p + q.
func (p Poly) Add(q Poly) Poly {
	n := max(len(p.coeffs), len(q.coeffs))
	out := make([]*big.Rat, n)
	for i := range out {
		out[i] = new(big.Rat)
		if i < len(p.coeffs) {
			out[i].Add(out[i], p.coeffs[i])
		}
		if i < len(q.coeffs) {
			out[i].Add(out[i], q.coeffs[i])
		}
	}
	return trim(out)
}

// Sub returns p - q.
func (p Poly) Sub(q Poly) Poly {
	return p.Add(q.Neg())
}

// Neg returns -p.
func (p Poly) Neg() Poly {
	out := make([]*big.Rat, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = new(big.Rat).Neg(c)
	}
	return Poly{coeffs: out}
}

// Scale returns q * p.
func (p Poly) Scale(q *big.Rat) Poly {
	if q.Sign() == 0 {
		return Poly{}
	}
	out := make([]*big.Rat, len(p.coeffs))
	for i, c := range p.coeffs {
		out[i] = new(big.Rat).Mul(c, q)
	}
	return Poly{coeffs: out}
}

// Mul returns p * q using the schoolbook product.
func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return Poly{}
	}
	out := make([]*big.Rat, len(p.coeffs)+len(q.coeffs)-1)
	for i := range out {
		out[i] = new(big.Rat)
	}
	tmp := new(big.Rat)
	for i, a := range p.coeffs {
		if a.Sign() == 0 {
			continue
		}
		for j, b := range q.coeffs {
			out[i+j].Add(out[i+j], tmp.Mul(a, b))
		}
	}
	return trim(out)
}

// Pow returns p**n for n >= 0.
func (p Poly) Pow(n int) Poly {
	result := NewInt(1)
	base := p
	for n > 0 {
		if n&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		n >>= 1
	}
	return result
}

// DivMod returns the quotient and remainder of p divided by q using
// polynomial long division over the rationals. It panics if q is zero.
func (p Poly) DivMod(q Poly) (Poly, Poly) {
	if q.IsZero() {
		panic("poly: division by zero polynomial")
	}
	if p.Degree() < q.Degree() {
		return Poly{}, p
	}

	rem := p.Coeffs()
	quo := make([]*big.Rat, p.Degree()-q.Degree()+1)
	for i := range quo {
		quo[i] = new(big.Rat)
	}

	lc := q.coeffs[len(q.coeffs)-1]
	tmp := new(big.Rat)
	for i := len(rem) - 1; i >= q.Degree(); i-- {
		if rem[i].Sign() == 0 {
			continue
		}
		factor := new(big.Rat).Quo(rem[i], lc)
		shift := i - q.Degree()
		quo[shift] = factor
		for j, c := range q.coeffs {
			rem[shift+j].Sub(rem[shift+j], tmp.Mul(factor, c))
		}
	}

	return trim(quo), trim(rem[:q.Degree()])
}

// Rem returns p mod q.
func (p Poly) Rem(q Poly) Poly {
	_, r := p.DivMod(q)
	return r
}

// Quo returns the quotient of p divided by q, discarding the remainder.
func (p Poly) Quo(q Poly) Poly {
	d, _ := p.DivMod(q)
	return d
}

// Monic returns p divided by its leading coefficient.
func (p Poly) Monic() Poly {
	if p.IsZero() {
		return p
	}
	return p.Scale(new(big.Rat).Inv(p.coeffs[len(p.coeffs)-1]))
}

// Derivative returns dp/dx.
func (p Poly) Derivative() Poly {
	if len(p.coeffs) <= 1 {
		return Poly{}
	}
	out := make([]*big.Rat, len(p.coeffs)-1)
	for i := 1; i < len(p.coeffs); i++ {
		out[i-1] = new(big.Rat).Mul(p.coeffs[i], new(big.Rat).SetInt64(int64(i)))
	}
	return trim(out)
}

// GCD returns the monic greatest common divisor of p and q.
func GCD(p, q Poly) Poly {
	for !q.IsZero() {
		p, q = q, p.Rem(q)
	}
	return p.Monic()
}

// ExtGCD returns g, s, t such that s*p + t*q = g, where g is the monic gcd.
func ExtGCD(p, q Poly) (g, s, t Poly) {
	r0, r1 := p, q
	s0, s1 := NewInt(1), Poly{}
	t0, t1 := Poly{}, NewInt(1)

	for !r1.IsZero() {
		quo, rem := r0.DivMod(r1)
		r0, r1 = r1, rem
		s0, s1 = s1, s0.Sub(quo.Mul(s1))
		t0, t1 = t1, t0.Sub(quo.Mul(t1))
	}

	if r0.IsZero() {
		return r0, s0, t0
	}
	inv := new(big.Rat).Inv(r0.LC())
	return r0.Scale(inv), s0.Scale(inv), t0.Scale(inv)
}

// IsSquareFree reports whether p has no repeated roots.
func (p Poly) IsSquareFree() bool {
	if p.Degree() <= 0 {
		return true
	}
	return GCD(p, p.Derivative()).Degree() == 0
}

// SquareFree returns the monic squarefree part of p.
func (p Poly) SquareFree() Poly {
	if p.Degree() <= 0 {
		return p.Monic()
	}
	g := GCD(p, p.Derivative())
	return p.Quo(g).Monic()
}

// Eval evaluates p at x using Horner's method.
func (p Poly) Eval(x *big.Rat) *big.Rat {
	result := new(big.Rat)
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result.Mul(result, x)
		result.Add(result, p.coeffs[i])
	}
	return result
}

// EvalComplex evaluates p at a complex point in floating point.
func (p Poly) EvalComplex(z complex128) complex128 {
	var result complex128
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		f, _ := p.coeffs[i].Float64()
		result = result*z + complex(f, 0)
	}
	return result
}

// Compose returns p(q(x)).
func (p Poly) Compose(q Poly) Poly {
	result := Poly{}
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		result = result.Mul(q).Add(Const(p.coeffs[i]))
	}
	return result
}

// Reverse returns x**deg(p) * p(1/x). For p with non-zero constant term, the
// roots of the result are the reciprocals of the roots of p.
func (p Poly) Reverse() Poly {
	out := make([]*big.Rat, len(p.coeffs))
	for i, c := range p.coeffs {
		out[len(p.coeffs)-1-i] = new(big.Rat).Set(c)
	}
	return trim(out)
}

// Primitive returns the integer coefficients of p scaled to content 1 with a
// positive leading coefficient.
func (p Poly) Primitive() []*big.Int {
	if p.IsZero() {
		return nil
	}

	lcm := big.NewInt(1)
	for _, c := range p.coeffs {
		d := c.Denom()
		g := new(big.Int).GCD(nil, nil, lcm, d)
		lcm.Mul(lcm, new(big.Int).Quo(d, g))
	}

	out := make([]*big.Int, len(p.coeffs))
	content := new(big.Int)
	for i, c := range p.coeffs {
		v := new(big.Int).Mul(c.Num(), new(big.Int).Quo(lcm, c.Denom()))
		out[i] = v
		content.GCD(nil, nil, content, new(big.Int).Abs(v))
	}

	if p.coeffs[len(p.coeffs)-1].Sign() < 0 {
		content.Neg(content)
	}
	for _, v := range out {
		v.Quo(v, content)
	}
	return out
}

// String formats p in the variable x, highest power first, e.g. "x**2 - 2".
func (p Poly) String() string {
	return p.Format("x")
}

// Format formats p in the given variable name.
func (p Poly) Format(variable string) string {
	if p.IsZero() {
		return "0"
	}

	var sb strings.Builder
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		c := p.coeffs[i]
		if c.Sign() == 0 {
			continue
		}

		abs := new(big.Rat).Abs(c)
		switch {
		case sb.Len() == 0 && c.Sign() < 0:
			sb.WriteString("-")
		case sb.Len() > 0 && c.Sign() < 0:
			sb.WriteString(" - ")
		case sb.Len() > 0:
			sb.WriteString(" + ")
		}

		if i == 0 || abs.Cmp(ratOne) != 0 {
			sb.WriteString(abs.RatString())
			if i > 0 {
				sb.WriteString("*")
			}
		}

		switch {
		case i == 1:
			sb.WriteString(variable)
		case i > 1:
			sb.WriteString(variable)
			sb.WriteString("**")
			sb.WriteString(big.NewInt(int64(i)).String())
		}
	}
	return sb.String()
}

var ratOne = big.NewRat(1, 1)
