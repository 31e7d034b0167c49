package poly

import (
	"math/big"
)

// Resultant computes the resultant of a and b over the rationals using the
// Euclidean remainder sequence:
//
//	res(a, b) = (-1)^(deg a * deg b) * lc(b)^(deg a - deg r) * res(b, r), r = a mod b
func Resultant(a, b Poly) *big.Rat {
	if a.IsZero() || b.IsZero() {
		return new(big.Rat)
	}

	result := big.NewRat(1, 1)
	for {
		da, db := a.Degree(), b.Degree()
		if db == 0 {
			return result.Mul(result, ratPow(b.coeffs[0], da))
		}

		r := a.Rem(b)
		if r.IsZero() {
			return new(big.Rat)
		}

		if (da*db)%2 == 1 {
			result.Neg(result)
		}
		result.Mul(result, ratPow(b.coeffs[len(b.coeffs)-1], da-r.Degree()))
		a, b = b, r
	}
}

func ratPow(q *big.Rat, n int) *big.Rat {
	result := big.NewRat(1, 1)
	base := new(big.Rat).Set(q)
	for n > 0 {
		if n&1 == 1 {
			result.Mul(result, base)
		}
		base.Mul(base, base)
		n >>= 1
	}
	return result
}

// Bivariate is a polynomial in x and y, stored as coefficients in y where
// each coefficient is a polynomial in x. ys[j] is the coefficient of y**j.
type Bivariate struct {
	ys []Poly
}

func newBivariate(ys []Poly) Bivariate {
	n := len(ys)
	for n > 0 && ys[n-1].IsZero() {
		n--
	}
	return Bivariate{ys: ys[:n]}
}

// DegreeY returns the degree in y, or -1 for zero.
func (b Bivariate) DegreeY() int {
	return len(b.ys) - 1
}

// DegreeX returns the maximal degree in x over all y-coefficients.
func (b Bivariate) DegreeX() int {
	d := -1
	for _, c := range b.ys {
		d = max(d, c.Degree())
	}
	return d
}

// LeadingY returns the coefficient of the highest power of y.
func (b Bivariate) LeadingY() Poly {
	if len(b.ys) == 0 {
		return Poly{}
	}
	return b.ys[len(b.ys)-1]
}

// EvalX substitutes x and returns the resulting polynomial in y.
func (b Bivariate) EvalX(x *big.Rat) Poly {
	out := make([]*big.Rat, len(b.ys))
	for j, c := range b.ys {
		out[j] = c.Eval(x)
	}
	return trim(out)
}

func (b Bivariate) add(o Bivariate) Bivariate {
	n := max(len(b.ys), len(o.ys))
	out := make([]Poly, n)
	for j := range out {
		if j < len(b.ys) {
			out[j] = out[j].Add(b.ys[j])
		}
		if j < len(o.ys) {
			out[j] = out[j].Add(o.ys[j])
		}
	}
	return newBivariate(out)
}

func (b Bivariate) mul(o Bivariate) Bivariate {
	if len(b.ys) == 0 || len(o.ys) == 0 {
		return Bivariate{}
	}
	out := make([]Poly, len(b.ys)+len(o.ys)-1)
	for i, p := range b.ys {
		for j, q := range o.ys {
			out[i+j] = out[i+j].Add(p.Mul(q))
		}
	}
	return newBivariate(out)
}

// Lift returns a(y) as a bivariate polynomial independent of x.
func Lift(a Poly) Bivariate {
	ys := make([]Poly, len(a.coeffs))
	for j, c := range a.coeffs {
		ys[j] = Const(c)
	}
	return newBivariate(ys)
}

// ShiftSub returns a(x - t*y).
func ShiftSub(a Poly, t *big.Rat) Bivariate {
	linear := newBivariate([]Poly{X(), Const(new(big.Rat).Neg(t))})
	result := Bivariate{}
	for i := len(a.coeffs) - 1; i >= 0; i-- {
		result = result.mul(linear).add(newBivariate([]Poly{Const(a.coeffs[i])}))
	}
	return result
}

// Homogenize returns y**n * a(x/y) where n = deg a. Its resultant with b(y)
// annihilates products of roots of a and b.
func Homogenize(a Poly) Bivariate {
	n := a.Degree()
	ys := make([]Poly, n+1)
	for i, c := range a.coeffs {
		mono := make([]*big.Rat, i+1)
		for k := range mono {
			mono[k] = new(big.Rat)
		}
		mono[i] = new(big.Rat).Set(c)
		ys[n-i] = trim(mono)
	}
	return newBivariate(ys)
}

// PowerRelation returns x**q - y**p for p, q >= 1.
func PowerRelation(p, q int) Bivariate {
	ys := make([]Poly, p+1)
	ys[0] = X().Pow(q)
	ys[p] = ys[p].Add(NewInt(-1))
	return newBivariate(ys)
}

// ResultantY eliminates y from p and q. The result is computed by evaluating
// both polynomials at distinct integer points x_k where neither leading
// y-coefficient vanishes, taking univariate resultants, and interpolating.
func ResultantY(p, q Bivariate) Poly {
	bound := p.DegreeX()*q.DegreeY() + q.DegreeX()*p.DegreeY()
	if bound < 0 {
		bound = 0
	}

	lp, lq := p.LeadingY(), q.LeadingY()
	xs := make([]*big.Rat, 0, bound+1)
	vs := make([]*big.Rat, 0, bound+1)

	for k := 0; len(xs) <= bound; k++ {
		x := samplePoint(k)
		if lp.Eval(x).Sign() == 0 || lq.Eval(x).Sign() == 0 {
			continue
		}
		xs = append(xs, x)
		vs = append(vs, Resultant(p.EvalX(x), q.EvalX(x)))
	}

	return Interpolate(xs, vs)
}

// samplePoint enumerates 0, 1, -1, 2, -2, ...
func samplePoint(k int) *big.Rat {
	v := int64((k + 1) / 2)
	if k%2 == 0 {
		v = -v
	}
	return new(big.Rat).SetInt64(v)
}

// Interpolate returns the unique polynomial of degree < len(xs) passing
// through the points (xs[i], ys[i]) using Lagrange interpolation.
// It returns the zero polynomial for empty or mismatched input.
func Interpolate(xs, ys []*big.Rat) Poly {
	if len(xs) != len(ys) || len(xs) == 0 {
		return Poly{}
	}

	// master = prod (x - x_j)
	master := NewInt(1)
	for _, xj := range xs {
		master = master.Mul(linear(xj))
	}
	dmaster := master.Derivative()

	result := Poly{}
	for i := range xs {
		if ys[i].Sign() == 0 {
			continue
		}

		// L_i(x) = master / (x - x_i) / master'(x_i)
		basis := master.Quo(linear(xs[i]))
		denominator := dmaster.Eval(xs[i])
		scale := new(big.Rat).Quo(ys[i], denominator)
		result = result.Add(basis.Scale(scale))
	}

	return result
}

func linear(root *big.Rat) Poly {
	return New(new(big.Rat).Neg(root), big.NewRat(1, 1))
}
