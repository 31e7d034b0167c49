package numberfield

import (
	"fmt"
	"math/big"

	"github.com/vitalvas/numfield/anp"
	"github.com/vitalvas/numfield/domain"
	"github.com/vitalvas/numfield/expr"
	"github.com/vitalvas/numfield/poly"
)

// PrimitiveElement describes a single generator theta of the field spanned by
// a list of generators g_0..g_{k-1}.
type PrimitiveElement struct {
	// Minpoly is the monic minimal polynomial of theta.
	Minpoly poly.Poly

	// Coeffs holds the integers c_i with theta = sum c_i * g_i.
	Coeffs []int64

	// H holds polynomials with g_i = H[i](theta), reduced modulo Minpoly.
	H []poly.Poly

	// Value is a numeric approximation of theta.
	Value complex128
}

// Expr returns theta as the expression sum c_i * g_i.
func (pe PrimitiveElement) Expr(gens []expr.Expr) expr.Expr {
	terms := make([]expr.Expr, 0, len(gens))
	for i, g := range gens {
		switch c := pe.Coeffs[i]; c {
		case 0:
		case 1:
			terms = append(terms, g)
		default:
			terms = append(terms, expr.NewMul(expr.Int(c), g))
		}
	}
	return expr.NewAdd(terms...)
}

type generator struct {
	minpoly poly.Poly
	value   complex128
}

// Primitive computes a primitive element for gens.
//
// Generators are folded in one at a time. With theta the primitive element of
// the generators seen so far and g the next one, theta' = theta + t*g is tried
// for t = 1, 2, ... in order. The first t whose elimination resultant
// res_y(m(x - t*y), f(y)) is squarefree puts theta and g in generic position,
// which makes theta' primitive for both.
func Primitive(gens []expr.Expr, cfg Config) (PrimitiveElement, error) {
	cfg = cfg.normalized()

	if len(gens) == 0 {
		return PrimitiveElement{}, ErrNoGenerators
	}

	items := make([]generator, len(gens))
	for i, g := range gens {
		f, err := minimalPolynomial(g, cfg)
		if err != nil {
			return PrimitiveElement{}, err
		}
		z, err := expr.Evalf(g)
		if err != nil {
			return PrimitiveElement{}, notAlgebraic(err)
		}
		items[i] = generator{minpoly: f, value: z}
	}

	return primitive(items, cfg)
}

func primitive(items []generator, cfg Config) (PrimitiveElement, error) {
	first := items[0]
	pe := PrimitiveElement{
		Minpoly: first.minpoly,
		Coeffs:  []int64{1},
		H:       []poly.Poly{poly.X().Rem(first.minpoly)},
		Value:   first.value,
	}

	for _, g := range items[1:] {
		if g.minpoly.Degree() == 1 {
			pe.Coeffs = append(pe.Coeffs, 0)
			pe.H = append(pe.H, poly.Const(new(big.Rat).Neg(g.minpoly.Coeff(0))))
			continue
		}

		next, err := combine(pe, g, cfg)
		if err != nil {
			return PrimitiveElement{}, err
		}
		pe = next
	}

	return pe, nil
}

func combine(pe PrimitiveElement, g generator, cfg Config) (PrimitiveElement, error) {
	m, f := pe.Minpoly, g.minpoly
	lifted := poly.Lift(f)

	for t := int64(1); t <= int64(cfg.MaxTrials); t++ {
		tr := new(big.Rat).SetInt64(t)

		r := poly.ResultantY(poly.ShiftSub(m, tr), lifted)
		if !r.IsSquareFree() {
			continue
		}

		value := pe.Value + complex(float64(t), 0)*g.value
		minpoly, err := poly.MinimalFactor(r, value, cfg.MaxFactorDegree)
		if err != nil {
			return PrimitiveElement{}, err
		}

		beta, err := generatorImage(m, f, tr, minpoly)
		if err != nil {
			return PrimitiveElement{}, err
		}

		// theta = theta' - t*g
		theta := anp.FromPoly(poly.X(), minpoly, domain.QQ).Sub(beta.Scale(tr))

		h := make([]poly.Poly, 0, len(pe.H)+1)
		for _, hi := range pe.H {
			h = append(h, evalAt(hi, theta).Poly())
		}
		h = append(h, beta.Poly())

		return PrimitiveElement{
			Minpoly: minpoly,
			Coeffs:  append(append([]int64(nil), pe.Coeffs...), t),
			H:       h,
			Value:   value,
		}, nil
	}

	return PrimitiveElement{}, fmt.Errorf("%w: after %d trials", ErrNoPrimitiveElement, cfg.MaxTrials)
}

// generatorImage returns g as an element of QQ(theta'), where theta' = theta + t*g,
// m(theta) = 0 and f(g) = 0. In generic position g is the only common root of
// f(y) and m(theta' - t*y), so their gcd over QQ(theta')[y] is linear.
func generatorImage(m, f poly.Poly, t *big.Rat, minpoly poly.Poly) (anp.Element, error) {
	theta := anp.FromPoly(poly.X(), minpoly, domain.QQ)
	linear := extPoly{theta, scalar(new(big.Rat).Neg(t), minpoly)}

	shifted := extPoly{}
	coeffs := m.Coeffs()
	for i := len(coeffs) - 1; i >= 0; i-- {
		shifted = shifted.mul(linear).add(extPoly{scalar(coeffs[i], minpoly)})
	}

	lifted := extPoly{}
	for _, c := range f.Coeffs() {
		lifted = append(lifted, scalar(c, minpoly))
	}

	g, err := lifted.trim().gcd(shifted.trim())
	if err != nil {
		return anp.Element{}, err
	}
	if g.degree() != 1 {
		return anp.Element{}, fmt.Errorf("%w: generator gcd has degree %d", ErrNoPrimitiveElement, g.degree())
	}

	// g1*y + g0 = 0
	root, err := g[0].Neg().Quo(g[1])
	if err != nil {
		return anp.Element{}, err
	}
	return root, nil
}

// evalAt returns p(a) computed with Horner's method in the field of a.
func evalAt(p poly.Poly, a anp.Element) anp.Element {
	result := anp.Zero(a.Mod(), a.Domain())
	coeffs := p.Coeffs()
	for i := len(coeffs) - 1; i >= 0; i-- {
		result = result.Mul(a).Add(scalar(coeffs[i], a.Mod()))
	}
	return result
}

func scalar(q *big.Rat, mod poly.Poly) anp.Element {
	return anp.FromPoly(poly.Const(q), mod, domain.QQ)
}

// extPoly is a polynomial in y over an algebraic number field, constant term
// first.
type extPoly []anp.Element

func (p extPoly) degree() int {
	return len(p) - 1
}

func (p extPoly) trim() extPoly {
	n := len(p)
	for n > 0 && p[n-1].IsZero() {
		n--
	}
	return p[:n]
}

func (p extPoly) add(q extPoly) extPoly {
	if len(p) < len(q) {
		p, q = q, p
	}
	out := make(extPoly, len(p))
	copy(out, p)
	for i, c := range q {
		out[i] = out[i].Add(c)
	}
	return out.trim()
}

func (p extPoly) mul(q extPoly) extPoly {
	if len(p) == 0 || len(q) == 0 {
		return extPoly{}
	}
	zero := anp.Zero(p[0].Mod(), p[0].Domain())
	out := make(extPoly, len(p)+len(q)-1)
	for i := range out {
		out[i] = zero
	}
	for i, a := range p {
		for j, b := range q {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	return out.trim()
}

func (p extPoly) rem(q extPoly) (extPoly, error) {
	inv, err := q[len(q)-1].Inverse()
	if err != nil {
		return nil, err
	}

	r := make(extPoly, len(p))
	copy(r, p)
	for len(r) >= len(q) {
		factor := r[len(r)-1].Mul(inv)
		shift := len(r) - len(q)
		for j, c := range q {
			r[shift+j] = r[shift+j].Sub(factor.Mul(c))
		}
		r = r.trim()
	}
	return r, nil
}

func (p extPoly) gcd(q extPoly) (extPoly, error) {
	for len(q) > 0 {
		r, err := p.rem(q)
		if err != nil {
			return nil, err
		}
		p, q = q, r
	}
	return p, nil
}
