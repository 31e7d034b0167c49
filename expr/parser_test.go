package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitalvas/numfield/poly"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"integer", "7", "7"},
		{"decimal", "1.5", "3/2"},
		{"sum of roots", "sqrt(2) + sqrt(3)", "sqrt(2) + sqrt(3)"},
		{"difference", "1 - sqrt(2)", "1 - sqrt(2)"},
		{"exact root", "sqrt(4)", "2"},
		{"exact rational root", "sqrt(9/4)", "3/2"},
		{"cube root", "2**(1/3)", "2**(1/3)"},
		{"cbrt", "cbrt(2)", "2**(1/3)"},
		{"nth root", "root(5, 4)", "5**(1/4)"},
		{"caret power", "2^(1/3)", "2**(1/3)"},
		{"unary minus binds looser than power", "-x**2", "-x**2"},
		{"negative exponent", "2**-1", "1/2"},
		{"right associative power", "2**3**2", "512"},
		{"imaginary square", "I**2", "-1"},
		{"imaginary multiple", "2*I", "2*I"},
		{"constant folding", "1 + 2*3 - 4/2", "5"},
		{"grouping", "(1 + sqrt(2))*3", "3*(1 + sqrt(2))"},
		{"function", "exp(1)", "exp(1)"},
		{"rootof", "RootOf(x**2 - 2, 1)", "RootOf(x**2 - 2, 1)"},
		{"polynomial", "x**2 - 2", "-2 + x**2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, e.String())
		})
	}
}

func TestParseConstants(t *testing.T) {
	e, err := Parse("pi")
	require.NoError(t, err)
	assert.Same(t, Pi, e)

	e, err = Parse("E")
	require.NoError(t, err)
	assert.Same(t, E, e)

	e, err = Parse("I")
	require.NoError(t, err)
	assert.Same(t, I, e)
}

func TestParseRootOf(t *testing.T) {
	e, err := Parse("RootOf(y**3 - y - 1, 0)")
	require.NoError(t, err)

	r, ok := e.(*RootOf)
	require.True(t, ok)
	assert.True(t, r.Poly.Equal(poly.NewInt(-1, -1, 0, 1)))
	assert.Equal(t, 0, r.Index)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"dangling operator", "1 +"},
		{"unclosed paren", "(1"},
		{"trailing token", "1 2"},
		{"invalid character", "1 $ 2"},
		{"unknown function", "foo(1)"},
		{"wrong arity", "sqrt(1, 2)"},
		{"bad root index", "root(2, 1/2)"},
		{"rootof two variables", "RootOf(x*y, 0)"},
		{"rootof index out of range", "RootOf(x**2 - 2, 2)"},
		{"rootof constant", "RootOf(x - x, 0)"},
		{"rootof non polynomial", "RootOf(sqrt(x), 0)"},
		{"missing argument", "sqrt()"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			assert.ErrorIs(t, err, ErrSyntax)
		})
	}
}

func TestParserErrors(t *testing.T) {
	p := NewParser(NewLexer("(1 + 2"))
	_, err := p.Parse()
	require.Error(t, err)
	assert.Len(t, p.Errors(), 1)
}
