// Package algebraic provides algebraic number fields QQ(a_1, ..., a_k) over the
// rationals, represented through a single primitive generator.
package algebraic

import (
	"fmt"
	"math/big"

	"github.com/cespare/xxhash/v2"

	"github.com/vitalvas/numfield/anp"
	"github.com/vitalvas/numfield/domain"
	"github.com/vitalvas/numfield/expr"
	"github.com/vitalvas/numfield/numberfield"
	"github.com/vitalvas/numfield/poly"
)

// Field is an algebraic number field QQ(ext). A Field is immutable after
// construction and safe for concurrent use.
type Field struct {
	dom     domain.Ring[*big.Rat]
	ext     expr.Expr
	minpoly poly.Poly
	gens    []expr.Expr
	cfg     numberfield.Config

	zero anp.Element
	one  anp.Element
	unit anp.Element
	root anp.Element

	key  string
	hash uint64
}

var _ domain.Ring[anp.Element] = (*Field)(nil)

// New returns the field generated over dom by exts, using the default
// configuration.
func New(dom domain.Domain, exts ...expr.Expr) (*Field, error) {
	return NewWithConfig(numberfield.DefaultConfig(), dom, exts...)
}

// NewWithConfig returns the field generated over dom by exts.
//
// The generators are reduced to one primitive element, which is then replaced
// by the indexed root of its minimal polynomial it denotes numerically.
func NewWithConfig(cfg numberfield.Config, dom domain.Domain, exts ...expr.Expr) (*Field, error) {
	if dom == nil || !dom.IsRationalField() {
		return nil, fmt.Errorf("%w: got %v", ErrDomainConstruction, dom)
	}
	ground, ok := dom.(domain.Ring[*big.Rat])
	if !ok {
		return nil, fmt.Errorf("%w: %s has no rational elements", ErrDomainConstruction, dom)
	}

	pe, err := numberfield.Primitive(exts, cfg)
	if err != nil {
		return nil, fmt.Errorf("algebraic: primitive element of %v: %w", exts, err)
	}

	ext, err := numberfield.Canonicalize(pe.Minpoly, pe.Expr(exts), cfg.RootPrecision)
	if err != nil {
		return nil, fmt.Errorf("algebraic: canonical generator of %v: %w", exts, err)
	}

	f := &Field{
		dom:     ground,
		ext:     ext,
		minpoly: pe.Minpoly,
		gens:    append([]expr.Expr(nil), exts...),
		cfg:     cfg,
	}

	f.zero = anp.Zero(f.minpoly, ground)
	f.one = anp.One(f.minpoly, ground)
	f.unit = anp.FromPoly(poly.X(), f.minpoly, ground)

	f.root = f.zero
	for _, h := range pe.H {
		f.root = f.root.Add(anp.FromPoly(h, f.minpoly, ground))
	}

	f.key = ground.String() + "<" + ext.String() + ">"
	f.hash = xxhash.Sum64String(f.key)

	return f, nil
}

// Parse builds a field from generator expressions in text form.
func Parse(dom domain.Domain, srcs ...string) (*Field, error) {
	exts := make([]expr.Expr, len(srcs))
	for i, s := range srcs {
		e, err := expr.Parse(s)
		if err != nil {
			return nil, err
		}
		exts[i] = e
	}
	return New(dom, exts...)
}

// AlgebraicField returns the field generated by ext and the additional exts.
// f itself is not modified.
func (f *Field) AlgebraicField(exts ...expr.Expr) (*Field, error) {
	all := append([]expr.Expr{f.ext}, exts...)
	return NewWithConfig(f.cfg, f.dom, all...)
}

// Equal reports whether f and g have the same ground domain and canonical
// generator. Equal fields have equal hashes.
func Equal(f, g *Field) bool {
	if f == nil || g == nil {
		return f == g
	}
	return f.key == g.key
}

// Key returns the string identifying the field, e.g. "QQ<RootOf(x**2 - 2, 1)>".
func (f *Field) Key() string { return f.key }

// Hash returns a hash of Key.
func (f *Field) Hash() uint64 { return f.hash }

func (f *Field) String() string { return f.key }

func (f *Field) IsField() bool          { return true }
func (f *Field) IsRationalField() bool  { return false }
func (f *Field) IsAlgebraicField() bool { return true }

// Ext returns the canonical generator.
func (f *Field) Ext() expr.Expr { return f.ext }

// Minpoly returns the minimal polynomial of the generator.
func (f *Field) Minpoly() poly.Poly { return f.minpoly }

// Domain returns the ground domain.
func (f *Field) Domain() domain.Ring[*big.Rat] { return f.dom }

// Degree returns the degree of the field over its ground domain.
func (f *Field) Degree() int { return f.minpoly.Degree() }

// Gens returns the generators the field was requested with.
func (f *Field) Gens() []expr.Expr { return append([]expr.Expr(nil), f.gens...) }

// Config returns the configuration the field was built with.
func (f *Field) Config() numberfield.Config { return f.cfg }

func (f *Field) Zero() anp.Element { return f.zero }
func (f *Field) One() anp.Element  { return f.one }

// Unit returns the generator as an element of the field.
func (f *Field) Unit() anp.Element { return f.unit }

// Root returns the sum of the original generators as an element of the field.
func (f *Field) Root() anp.Element { return f.root }

// NewElement returns the element with the given coefficients in powers of the
// generator, most significant first.
func (f *Field) NewElement(coeffs ...*big.Rat) anp.Element {
	return anp.New(coeffs, f.minpoly, f.dom)
}

// ToExpr returns a as the expression sum c_i * ext**i.
func (f *Field) ToExpr(a anp.Element) expr.Expr {
	coeffs := a.Poly().Coeffs()
	terms := make([]expr.Expr, 0, len(coeffs))
	for i, c := range coeffs {
		if c.Sign() == 0 {
			continue
		}
		terms = append(terms, expr.NewMul(expr.NewNumber(c), expr.NewPow(f.ext, expr.Int(int64(i)))))
	}
	return expr.NewAdd(terms...)
}

func (f *Field) Equal(a, b anp.Element) bool { return a.Equal(b) }

// IsPositive, IsNegative, IsNonPositive and IsNonNegative judge the sign of
// the leading coefficient only. See anp.LeadingCoeffSign for when this
// differs from the sign of the number.
func (f *Field) IsPositive(a anp.Element) bool    { return anp.LeadingCoeffSign(a) > 0 }
func (f *Field) IsNegative(a anp.Element) bool    { return anp.LeadingCoeffSign(a) < 0 }
func (f *Field) IsNonPositive(a anp.Element) bool { return anp.LeadingCoeffSign(a) <= 0 }
func (f *Field) IsNonNegative(a anp.Element) bool { return anp.LeadingCoeffSign(a) >= 0 }

func (f *Field) Add(a, b anp.Element) anp.Element { return a.Add(b) }
func (f *Field) Sub(a, b anp.Element) anp.Element { return a.Sub(b) }
func (f *Field) Mul(a, b anp.Element) anp.Element { return a.Mul(b) }
func (f *Field) Neg(a anp.Element) anp.Element    { return a.Neg() }

func (f *Field) Quo(a, b anp.Element) (anp.Element, error)     { return a.Quo(b) }
func (f *Field) Inverse(a anp.Element) (anp.Element, error)    { return a.Inverse() }
func (f *Field) Pow(a anp.Element, n int) (anp.Element, error) { return a.Pow(n) }
