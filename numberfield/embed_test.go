package numberfield

import (
	"math/big"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/numfield/expr"
	"github.com/vitalvas/numfield/poly"
)

func ratOf(a, b int64) *big.Rat {
	return big.NewRat(a, b)
}

func TestToNumberField(t *testing.T) {
	sqrt2 := expr.NewRootOf(poly.NewInt(-2, 0, 1), 1)
	sqrt2sqrt3 := expr.NewRootOf(poly.NewInt(1, 0, -10, 0, 1), 3)

	tests := []struct {
		name     string
		a        string
		minpoly  poly.Poly
		ext      expr.Expr
		expected poly.Poly
	}{
		{"rational", "3/5", sqrt2.Poly, sqrt2, poly.New(ratOf(3, 5))},
		{"generator", "sqrt(2)", sqrt2.Poly, sqrt2, poly.NewInt(0, 1)},
		{"multiple", "sqrt(8)", sqrt2.Poly, sqrt2, poly.NewInt(0, 2)},
		{"inverse", "1/sqrt(2)", sqrt2.Poly, sqrt2, poly.New(nil, ratOf(1, 2))},
		{"conjugate", "1 - sqrt(2)", sqrt2.Poly, sqrt2, poly.NewInt(1, -1)},
		{"rational in disguise", "sqrt(2)**2", sqrt2.Poly, sqrt2, poly.NewInt(2)},
		{"subfield generator", "sqrt(2)", sqrt2sqrt3.Poly, sqrt2sqrt3, poly.New(nil, ratOf(-9, 2), nil, ratOf(1, 2))},
		{"subfield product", "sqrt(6)", sqrt2sqrt3.Poly, sqrt2sqrt3, poly.New(ratOf(-5, 2), nil, ratOf(1, 2))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustParse(t, tt.a)

			p, err := ToNumberField(a, tt.minpoly, tt.ext, DefaultConfig())
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(p), "got %s", p)
			assert.Less(t, p.Degree(), tt.minpoly.Degree())

			want, err := expr.Evalf(a)
			require.NoError(t, err)
			z, err := expr.Evalf(tt.ext)
			require.NoError(t, err)
			assert.Less(t, cmplx.Abs(p.EvalComplex(z)-want), 1e-9)
		})
	}
}

func TestToNumberFieldErrors(t *testing.T) {
	sqrt2 := expr.NewRootOf(poly.NewInt(-2, 0, 1), 1)

	tests := []struct {
		name     string
		a        expr.Expr
		expected error
	}{
		{"pi", expr.Pi, ErrNotAlgebraic},
		{"symbol", expr.NewSymbol("x"), ErrNotAlgebraic},
		{"other quadratic field", expr.Sqrt(expr.Int(3)), ErrEmbeddingNotFound},
		{"imaginary unit", expr.I, ErrEmbeddingNotFound},
		{"cube root", expr.NewPow(expr.Int(2), expr.Rat(1, 3)), ErrEmbeddingNotFound},
		{"degree limit", expr.NewPow(expr.Int(2), expr.Rat(1, 50)), ErrEmbeddingNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToNumberField(tt.a, sqrt2.Poly, sqrt2, DefaultConfig())
			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestToNumberFieldRationalExtension(t *testing.T) {
	m := poly.NewInt(-2, 1)

	p, err := ToNumberField(mustParse(t, "sqrt(4) + 1/3"), m, expr.Int(2), DefaultConfig())
	require.NoError(t, err)
	assert.True(t, poly.New(ratOf(7, 3)).Equal(p))

	_, err = ToNumberField(mustParse(t, "sqrt(2)"), m, expr.Int(2), DefaultConfig())
	assert.ErrorIs(t, err, ErrEmbeddingNotFound)
}

func TestGaussSolve(t *testing.T) {
	m := [][]*big.Rat{
		{ratOf(2, 1), ratOf(1, 1), ratOf(5, 1)},
		{ratOf(1, 1), ratOf(-1, 1), ratOf(1, 1)},
	}
	x, ok := gaussSolve(m)
	require.True(t, ok)
	assert.Equal(t, "2", x[0].RatString())
	assert.Equal(t, "1", x[1].RatString())

	singular := [][]*big.Rat{
		{ratOf(1, 1), ratOf(2, 1), ratOf(1, 1)},
		{ratOf(2, 1), ratOf(4, 1), ratOf(2, 1)},
	}
	_, ok = gaussSolve(singular)
	assert.False(t, ok)
}
