package poly

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("trims leading zeros", func(t *testing.T) {
		p := NewInt(1, 2, 0, 0)
		assert.Equal(t, 1, p.Degree())
	})

	t.Run("zero polynomial", func(t *testing.T) {
		p := NewInt(0, 0)
		assert.True(t, p.IsZero())
		assert.Equal(t, -1, p.Degree())
		assert.Equal(t, "0", p.String())
	})

	t.Run("copies coefficients", func(t *testing.T) {
		c := big.NewRat(3, 1)
		p := New(c)
		c.SetInt64(7)
		assert.Equal(t, 0, p.Coeff(0).Cmp(big.NewRat(3, 1)))
	})

	t.Run("nil coefficient is zero", func(t *testing.T) {
		p := New(nil, big.NewRat(1, 1))
		assert.True(t, p.Equal(X()))
	})
}

func TestPolyEval(t *testing.T) {
	// f(x) = 5 + 3x + 2x^2
	p := NewInt(5, 3, 2)

	tests := []struct {
		x        int64
		expected int64
	}{
		{0, 5},
		{1, 10},
		{2, 19},
		{3, 32},
	}

	for _, tt := range tests {
		result := p.Eval(big.NewRat(tt.x, 1))
		assert.Equal(t, 0, result.Cmp(big.NewRat(tt.expected, 1)), "f(%d)", tt.x)
	}

	assert.Equal(t, complex(19, 0), p.EvalComplex(2))
}

func TestPolyArithmetic(t *testing.T) {
	a := NewInt(1, 1)  // x + 1
	b := NewInt(-1, 1) // x - 1

	t.Run("addition", func(t *testing.T) {
		assert.True(t, a.Add(b).Equal(NewInt(0, 2)))
	})

	t.Run("subtraction cancels", func(t *testing.T) {
		assert.True(t, a.Sub(a).IsZero())
	})

	t.Run("multiplication", func(t *testing.T) {
		assert.True(t, a.Mul(b).Equal(NewInt(-1, 0, 1)))
	})

	t.Run("power", func(t *testing.T) {
		assert.True(t, a.Pow(3).Equal(NewInt(1, 3, 3, 1)))
		assert.True(t, a.Pow(0).IsOne())
	})

	t.Run("scale", func(t *testing.T) {
		assert.True(t, a.Scale(big.NewRat(1, 2)).Equal(New(big.NewRat(1, 2), big.NewRat(1, 2))))
		assert.True(t, a.Scale(new(big.Rat)).IsZero())
	})

	t.Run("division", func(t *testing.T) {
		quo, rem := NewInt(-1, 0, 0, 1).DivMod(b)
		assert.True(t, quo.Equal(NewInt(1, 1, 1)))
		assert.True(t, rem.IsZero())
	})

	t.Run("division with remainder", func(t *testing.T) {
		quo, rem := NewInt(-2, 0, 1).DivMod(NewInt(0, 2))
		assert.True(t, quo.Equal(New(new(big.Rat), big.NewRat(1, 2))))
		assert.True(t, rem.Equal(NewInt(-2)))
	})

	t.Run("division by zero panics", func(t *testing.T) {
		assert.Panics(t, func() {
			a.DivMod(Poly{})
		})
	})
}

func TestPolyCalculus(t *testing.T) {
	p := NewInt(1, 3, 3, 1)
	assert.True(t, p.Derivative().Equal(NewInt(3, 6, 3)))
	assert.True(t, NewInt(5).Derivative().IsZero())

	// p(q(x)) with p = x^2 - 2, q = x + 1
	composed := NewInt(-2, 0, 1).Compose(NewInt(1, 1))
	assert.True(t, composed.Equal(NewInt(-1, 2, 1)))

	assert.True(t, NewInt(1, 2, 3).Reverse().Equal(NewInt(3, 2, 1)))
}

func TestGCD(t *testing.T) {
	p := NewInt(-1, 1).Mul(NewInt(-2, 1))
	q := NewInt(-1, 1).Mul(NewInt(3, 1))

	assert.True(t, GCD(p, q).Equal(NewInt(-1, 1)))
	assert.True(t, GCD(p, NewInt(7)).IsOne())

	t.Run("extended", func(t *testing.T) {
		g, s, u := ExtGCD(p, q)
		assert.True(t, g.Equal(NewInt(-1, 1)))
		assert.True(t, s.Mul(p).Add(u.Mul(q)).Equal(g))
	})

	t.Run("inverse modulo irreducible", func(t *testing.T) {
		m := NewInt(-2, 0, 1)
		a := NewInt(1, 1)
		g, s, _ := ExtGCD(a, m)
		require.True(t, g.IsOne())
		assert.True(t, s.Mul(a).Rem(m).IsOne())
	})
}

func TestSquareFree(t *testing.T) {
	p := NewInt(-1, 1).Pow(2).Mul(NewInt(1, 1))
	assert.False(t, p.IsSquareFree())
	assert.True(t, p.SquareFree().Equal(NewInt(-1, 0, 1)))
	assert.True(t, NewInt(-2, 0, 1).IsSquareFree())
}

func TestPrimitive(t *testing.T) {
	tests := []struct {
		name     string
		p        Poly
		expected []int64
	}{
		{"fractions", New(big.NewRat(-1, 1), new(big.Rat), big.NewRat(1, 2)), []int64{-2, 0, 1}},
		{"content", NewInt(4, 6), []int64{2, 3}},
		{"negative leading", NewInt(2, -4), []int64{-1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ints := tt.p.Primitive()
			require.Len(t, ints, len(tt.expected))
			for i, v := range tt.expected {
				assert.Equal(t, v, ints[i].Int64())
			}
		})
	}

	assert.Nil(t, Poly{}.Primitive())
}

func TestPolyString(t *testing.T) {
	tests := []struct {
		p        Poly
		expected string
	}{
		{NewInt(-2, 0, 1), "x**2 - 2"},
		{NewInt(1, -10, 0, 1), "x**3 - 10*x + 1"},
		{NewInt(0, -1), "-x"},
		{New(big.NewRat(1, 3), big.NewRat(-1, 2)), "-1/2*x + 1/3"},
		{NewInt(7), "7"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.p.String())
		})
	}

	assert.Equal(t, "t**2 + 1", NewInt(1, 0, 1).Format("t"))
}
