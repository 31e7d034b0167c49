package expr

import (
	"math/big"

	"github.com/vitalvas/numfield/poly"
)

// Expr is a node of a symbolic expression tree. Expressions are immutable;
// build them with the New* constructors, which keep trees in a light
// canonical form (flattened sums and products, folded numeric constants).
type Expr interface {
	String() string
	expr()
}

// Number is an exact rational constant.
type Number struct {
	Value *big.Rat
}

func (n *Number) expr() {}

// Symbol is a named constant (pi, E) or a free symbol.
type Symbol struct {
	Name string
}

func (s *Symbol) expr() {}

// Imaginary is the imaginary unit I.
type Imaginary struct{}

func (i *Imaginary) expr() {}

// Add is a sum of terms.
type Add struct {
	Terms []Expr
}

func (a *Add) expr() {}

// Mul is a product of factors.
type Mul struct {
	Factors []Expr
}

func (m *Mul) expr() {}

// Pow is Base raised to Exp. Rational exponents use the principal branch.
type Pow struct {
	Base Expr
	Exp  Expr
}

func (p *Pow) expr() {}

// RootOf is the Index-th root of Poly in the root order defined by poly.Roots.
type RootOf struct {
	Poly  poly.Poly
	Index int
}

func (r *RootOf) expr() {}

// Func is an application of an elementary function such as exp or sin.
type Func struct {
	Name string
	Args []Expr
}

func (f *Func) expr() {}

// Well-known constants.
var (
	Pi = &Symbol{Name: "pi"}
	E  = &Symbol{Name: "E"}
	I  = &Imaginary{}
)
