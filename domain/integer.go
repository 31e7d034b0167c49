package domain

import (
	"fmt"
	"math/big"
)

type integerRing struct{}

// ZZ is the ring of integers. It is not a field, so algebraic fields cannot be
// built over it.
var ZZ Ring[*big.Int] = integerRing{}

func (integerRing) String() string         { return "ZZ" }
func (integerRing) IsField() bool          { return false }
func (integerRing) IsRationalField() bool  { return false }
func (integerRing) IsAlgebraicField() bool { return false }

func (integerRing) Zero() *big.Int { return new(big.Int) }
func (integerRing) One() *big.Int  { return big.NewInt(1) }

func (integerRing) Equal(a, b *big.Int) bool { return a.Cmp(b) == 0 }

func (integerRing) IsPositive(a *big.Int) bool    { return a.Sign() > 0 }
func (integerRing) IsNegative(a *big.Int) bool    { return a.Sign() < 0 }
func (integerRing) IsNonPositive(a *big.Int) bool { return a.Sign() <= 0 }
func (integerRing) IsNonNegative(a *big.Int) bool { return a.Sign() >= 0 }

// Convert accepts any source value whose exact rational value is an integer.
func (integerRing) Convert(v Value) (*big.Int, error) {
	if x, ok := v.(Int); ok {
		return big.NewInt(int64(x)), nil
	}

	q, err := QQ.Convert(v)
	if err != nil {
		return nil, err
	}
	if !q.IsInt() {
		return nil, fmt.Errorf("%w: %s is not an integer", ErrCoercion, q.RatString())
	}
	return new(big.Int).Set(q.Num()), nil
}
