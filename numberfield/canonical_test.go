package numberfield

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/numfield/expr"
	"github.com/vitalvas/numfield/poly"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name     string
		minpoly  poly.Poly
		ext      string
		expected string
	}{
		{"positive root", poly.NewInt(-2, 0, 1), "sqrt(2)", "RootOf(x**2 - 2, 1)"},
		{"negative root", poly.NewInt(-2, 0, 1), "-sqrt(2)", "RootOf(x**2 - 2, 0)"},
		{"sum", poly.NewInt(1, 0, -10, 0, 1), "sqrt(2) + sqrt(3)", "RootOf(x**4 - 10*x**2 + 1, 3)"},
		{"difference", poly.NewInt(1, 0, -10, 0, 1), "sqrt(3) - sqrt(2)", "RootOf(x**4 - 10*x**2 + 1, 2)"},
		{"imaginary unit", poly.NewInt(1, 0, 1), "I", "RootOf(x**2 + 1, 1)"},
		{"negative imaginary", poly.NewInt(1, 0, 1), "-I", "RootOf(x**2 + 1, 0)"},
		{"real cube root", poly.NewInt(-2, 0, 0, 1), "2**(1/3)", "RootOf(x**3 - 2, 0)"},
		{"rational", poly.New(ratOf(-3, 2), ratOf(1, 1)), "sqrt(9/4)", "3/2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Canonicalize(tt.minpoly, mustParse(t, tt.ext), 2)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, e.String())
		})
	}
}

func TestCanonicalizeMatchesValue(t *testing.T) {
	ext := mustParse(t, "(1 + sqrt(5))/2")
	m, err := MinimalPolynomial(ext, DefaultConfig())
	require.NoError(t, err)

	for _, digits := range []int{0, 1, 2, 6} {
		c, err := Canonicalize(m, ext, digits)
		require.NoError(t, err)

		want, err := expr.Evalf(ext)
		require.NoError(t, err)
		got, err := expr.Evalf(c)
		require.NoError(t, err)
		assert.InDelta(t, real(want), real(got), 1e-12)
	}
}

func TestCanonicalizeHighPrecision(t *testing.T) {
	tests := []struct {
		ext      string
		expected string
	}{
		{"sqrt(2)", "RootOf(x**2 - 2, 1)"},
		{"-sqrt(3)", "RootOf(x**2 - 3, 0)"},
		{"2**(1/3)", "RootOf(x**3 - 2, 0)"},
	}

	for _, digits := range []int{9, 15, 40} {
		for _, tt := range tests {
			t.Run(tt.ext, func(t *testing.T) {
				ext := mustParse(t, tt.ext)
				m, err := MinimalPolynomial(ext, DefaultConfig())
				require.NoError(t, err)

				var c expr.Expr
				require.NotPanics(t, func() {
					c, err = Canonicalize(m, ext, digits)
				})
				require.NoError(t, err)
				assert.Equal(t, tt.expected, c.String())
			})
		}
	}
}

func TestCanonicalizeHighPrecisionLargeDegree(t *testing.T) {
	gens := parseAll(t, "sqrt(2)", "sqrt(3)", "sqrt(5)", "sqrt(7)")
	pe, err := Primitive(gens, DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, 16, pe.Minpoly.Degree())

	require.NotPanics(t, func() {
		_, err = Canonicalize(pe.Minpoly, pe.Expr(gens), 15)
	})
	assert.NoError(t, err)
}

func TestCanonicalizeErrors(t *testing.T) {
	_, err := Canonicalize(poly.NewInt(-2, 0, 1), expr.NewSymbol("y"), 2)
	assert.ErrorIs(t, err, ErrNotAlgebraic)

	assert.Panics(t, func() {
		_, _ = Canonicalize(poly.NewInt(-3, 0, 1), mustParse(t, "sqrt(2)"), 2)
	})
}
