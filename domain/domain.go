// Package domain defines the ground domains algebraic fields are built over
// and the closed set of source value kinds the coercion layer accepts.
package domain

import (
	"math/big"

	"github.com/vitalvas/numfield/expr"
)

// Domain describes an exact arithmetic structure.
type Domain interface {
	String() string
	IsField() bool
	IsRationalField() bool
	IsAlgebraicField() bool
}

// Ring is a domain whose elements have the concrete Go type T.
type Ring[T any] interface {
	Domain

	Zero() T
	One() T
	Convert(v Value) (T, error)
	Equal(a, b T) bool

	IsPositive(a T) bool
	IsNegative(a T) bool
	IsNonPositive(a T) bool
	IsNonNegative(a T) bool
}

// Kind identifies the representation of a source value.
type Kind uint8

const (
	KindInt Kind = iota + 1
	KindFraction
	KindBigInt
	KindBigRat
	KindFloat
	KindAlgebraic
	KindExpr
)

var kindNames = map[Kind]string{
	KindInt:       "int",
	KindFraction:  "fraction",
	KindBigInt:    "bigint",
	KindBigRat:    "bigrat",
	KindFloat:     "float",
	KindAlgebraic: "algebraic",
	KindExpr:      "expr",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Value is a source value presented for conversion into a domain.
type Value interface {
	Kind() Kind
}

// Int is a machine-sized integer.
type Int int64

func (Int) Kind() Kind { return KindInt }

// Fraction is an exact rational with machine-sized numerator and denominator.
type Fraction struct {
	Num, Den int64
}

func (Fraction) Kind() Kind { return KindFraction }

// BigInt is an arbitrary-precision integer.
type BigInt struct {
	Value *big.Int
}

func (BigInt) Kind() Kind { return KindBigInt }

// BigRat is an arbitrary-precision rational.
type BigRat struct {
	Value *big.Rat
}

func (BigRat) Kind() Kind { return KindBigRat }

// Float is an arbitrary-precision binary floating-point approximation.
//
// With MaxDenominator zero a Float converts to the exact rational value of its
// binary representation. A positive MaxDenominator selects the closest
// rational whose denominator does not exceed it, so 0.1 becomes 1/10.
type Float struct {
	Value          *big.Float
	MaxDenominator int64
}

func (Float) Kind() Kind { return KindFloat }

// Expr is a symbolic expression.
type Expr struct {
	Value expr.Expr
}

func (Expr) Kind() Kind { return KindExpr }
