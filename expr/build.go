package expr

import (
	"math/big"

	"github.com/vitalvas/numfield/poly"
)

// NewNumber returns the exact constant q.
func NewNumber(q *big.Rat) *Number {
	return &Number{Value: new(big.Rat).Set(q)}
}

// Int returns the integer constant n.
func Int(n int64) *Number {
	return &Number{Value: new(big.Rat).SetInt64(n)}
}

// Rat returns the rational constant a/b. It panics if b is zero.
func Rat(a, b int64) *Number {
	if b == 0 {
		panic("expr: denominator is zero")
	}
	return &Number{Value: big.NewRat(a, b)}
}

// NewSymbol returns a symbol with the given name.
func NewSymbol(name string) *Symbol {
	return &Symbol{Name: name}
}

// NewRootOf returns the index-th root of p.
func NewRootOf(p poly.Poly, index int) *RootOf {
	return &RootOf{Poly: p, Index: index}
}

// NewFunc returns the application name(args...).
func NewFunc(name string, args ...Expr) *Func {
	return &Func{Name: name, Args: args}
}

// AsNumber returns the value of e if it is a numeric constant.
func AsNumber(e Expr) (*big.Rat, bool) {
	n, ok := e.(*Number)
	if !ok {
		return nil, false
	}
	return n.Value, true
}

// NewAdd returns the sum of terms. Nested sums are flattened, numeric terms
// are folded into a single leading constant, structurally equal terms are
// combined and zero is dropped.
func NewAdd(terms ...Expr) Expr {
	constant := new(big.Rat)
	flat := make([]Expr, 0, len(terms))

	var collect func(Expr)
	collect = func(t Expr) {
		switch v := t.(type) {
		case *Add:
			for _, s := range v.Terms {
				collect(s)
			}
		case *Number:
			constant.Add(constant, v.Value)
		default:
			flat = append(flat, t)
		}
	}
	for _, t := range terms {
		collect(t)
	}

	flat = collectLikeTerms(flat)

	if constant.Sign() != 0 {
		flat = append([]Expr{&Number{Value: constant}}, flat...)
	}

	switch len(flat) {
	case 0:
		return Int(0)
	case 1:
		return flat[0]
	}
	return &Add{Terms: flat}
}

// collectLikeTerms merges terms that differ only in their numeric
// coefficient, keeping the position of the first occurrence. Terms whose
// coefficients cancel are dropped.
func collectLikeTerms(terms []Expr) []Expr {
	type group struct {
		coeff *big.Rat
		rest  Expr
	}

	groups := make([]group, 0, len(terms))
	for _, t := range terms {
		c, rest := splitCoeff(t)

		merged := false
		for i := range groups {
			if Equal(groups[i].rest, rest) {
				groups[i].coeff.Add(groups[i].coeff, c)
				merged = true
				break
			}
		}
		if !merged {
			groups = append(groups, group{coeff: c, rest: rest})
		}
	}

	out := make([]Expr, 0, len(groups))
	for _, g := range groups {
		if g.coeff.Sign() == 0 {
			continue
		}
		out = append(out, NewMul(&Number{Value: g.coeff}, g.rest))
	}
	return out
}

// splitCoeff returns the numeric coefficient of t and the remaining factor.
func splitCoeff(t Expr) (*big.Rat, Expr) {
	m, ok := t.(*Mul)
	if !ok || len(m.Factors) < 2 {
		return big.NewRat(1, 1), t
	}
	c, ok := m.Factors[0].(*Number)
	if !ok {
		return big.NewRat(1, 1), t
	}

	coeff := new(big.Rat).Set(c.Value)
	if len(m.Factors) == 2 {
		return coeff, m.Factors[1]
	}
	return coeff, &Mul{Factors: m.Factors[1:]}
}

// NewMul returns the product of factors. Nested products are flattened,
// numeric factors are folded into a single leading coefficient and one is
// dropped. A zero coefficient makes the whole product zero.
func NewMul(factors ...Expr) Expr {
	coeff := big.NewRat(1, 1)
	flat := make([]Expr, 0, len(factors))

	var collect func(Expr)
	collect = func(f Expr) {
		switch v := f.(type) {
		case *Mul:
			for _, s := range v.Factors {
				collect(s)
			}
		case *Number:
			coeff.Mul(coeff, v.Value)
		default:
			flat = append(flat, f)
		}
	}
	for _, f := range factors {
		collect(f)
	}

	if coeff.Sign() == 0 {
		return Int(0)
	}
	if coeff.Cmp(big.NewRat(1, 1)) != 0 {
		flat = append([]Expr{&Number{Value: coeff}}, flat...)
	}

	switch len(flat) {
	case 0:
		return Int(1)
	case 1:
		return flat[0]
	}
	return &Mul{Factors: flat}
}

// NewPow returns base**exp. Integer powers of numbers and of I are
// evaluated, as are rational powers of non-negative numbers that are exact.
func NewPow(base, exp Expr) Expr {
	e, ok := AsNumber(exp)
	if !ok {
		return &Pow{Base: base, Exp: exp}
	}

	if e.Sign() == 0 {
		return Int(1)
	}
	if e.Cmp(big.NewRat(1, 1)) == 0 {
		return base
	}

	switch b := base.(type) {
	case *Number:
		if v, ok := powNumber(b.Value, e); ok {
			return &Number{Value: v}
		}
	case *Imaginary:
		if e.IsInt() {
			k := new(big.Int).Mod(e.Num(), big.NewInt(4)).Int64()
			return []Expr{Int(1), I, Int(-1), NewMul(Int(-1), I)}[k]
		}
	}

	return &Pow{Base: base, Exp: exp}
}

// Sqrt returns the principal square root of x.
func Sqrt(x Expr) Expr {
	return NewPow(x, Rat(1, 2))
}

// Neg returns -x.
func Neg(x Expr) Expr {
	return NewMul(Int(-1), x)
}

// Sub returns a - b.
func Sub(a, b Expr) Expr {
	return NewAdd(a, Neg(b))
}

// Quo returns a / b.
func Quo(a, b Expr) Expr {
	return NewMul(a, NewPow(b, Int(-1)))
}

func powNumber(q, e *big.Rat) (*big.Rat, bool) {
	a := e.Num()
	k := e.Denom()

	if !k.IsInt64() || !a.IsInt64() {
		return nil, false
	}

	base := new(big.Rat).Set(q)
	if k.Int64() != 1 {
		if q.Sign() < 0 {
			return nil, false
		}
		num, ok := intRoot(q.Num(), int(k.Int64()))
		if !ok {
			return nil, false
		}
		den, ok := intRoot(q.Denom(), int(k.Int64()))
		if !ok {
			return nil, false
		}
		base.SetFrac(num, den)
	}

	n := a.Int64()
	if n < 0 {
		if base.Sign() == 0 {
			return nil, false
		}
		base.Inv(base)
		n = -n
	}

	result := big.NewRat(1, 1)
	for ; n > 0; n-- {
		result.Mul(result, base)
	}
	return result, true
}

// intRoot returns the exact k-th root of a non-negative integer if it exists.
func intRoot(n *big.Int, k int) (*big.Int, bool) {
	if n.Sign() < 0 || k < 1 {
		return nil, false
	}
	if k == 1 || n.Sign() == 0 {
		return new(big.Int).Set(n), true
	}

	bk := big.NewInt(int64(k))
	lo := big.NewInt(0)
	hi := new(big.Int).Lsh(big.NewInt(1), uint(n.BitLen()/k+1))
	one := big.NewInt(1)

	for lo.Cmp(hi) <= 0 {
		mid := new(big.Int).Add(lo, hi)
		mid.Rsh(mid, 1)
		p := new(big.Int).Exp(mid, bk, nil)
		switch p.Cmp(n) {
		case 0:
			return mid, true
		case -1:
			lo.Add(mid, one)
		default:
			hi.Sub(mid, one)
		}
	}
	return nil, false
}

// Equal reports whether a and b are structurally identical.
func Equal(a, b Expr) bool {
	switch x := a.(type) {
	case *Number:
		y, ok := b.(*Number)
		return ok && x.Value.Cmp(y.Value) == 0
	case *Symbol:
		y, ok := b.(*Symbol)
		return ok && x.Name == y.Name
	case *Imaginary:
		_, ok := b.(*Imaginary)
		return ok
	case *Add:
		y, ok := b.(*Add)
		return ok && equalAll(x.Terms, y.Terms)
	case *Mul:
		y, ok := b.(*Mul)
		return ok && equalAll(x.Factors, y.Factors)
	case *Pow:
		y, ok := b.(*Pow)
		return ok && Equal(x.Base, y.Base) && Equal(x.Exp, y.Exp)
	case *RootOf:
		y, ok := b.(*RootOf)
		return ok && x.Index == y.Index && x.Poly.Equal(y.Poly)
	case *Func:
		y, ok := b.(*Func)
		return ok && x.Name == y.Name && equalAll(x.Args, y.Args)
	}
	return false
}

func equalAll(a, b []Expr) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
