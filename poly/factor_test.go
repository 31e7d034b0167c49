package poly

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinimalFactor(t *testing.T) {
	tests := []struct {
		name     string
		p        Poly
		z        complex128
		expected Poly
	}{
		{"rational root", NewInt(-2, 0, 1).Mul(NewInt(-3, 1)), 3, NewInt(-3, 1)},
		{"irrational root", NewInt(-2, 0, 1).Mul(NewInt(-3, 1)), complex(math.Sqrt2, 0), NewInt(-2, 0, 1)},
		{"reducible square", NewInt(-4, 0, 1), 2, NewInt(-2, 1)},
		{"irreducible quartic", NewInt(1, 0, -10, 0, 1), complex(math.Sqrt2+math.Sqrt(3), 0), NewInt(1, 0, -10, 0, 1)},
		{"repeated factor", NewInt(36, 0, -12, 0, 1), complex(math.Sqrt(6), 0), NewInt(-6, 0, 1)},
		{"complex root", NewInt(1, 0, 1).Mul(NewInt(-2, 0, 1)), complex(0, 1), NewInt(1, 0, 1)},
		{"non-monic input", NewInt(-2, 0, 4), complex(1/math.Sqrt2, 0), NewInt(-1, 0, 2).Monic()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := MinimalFactor(tt.p, tt.z, 24)
			require.NoError(t, err)
			assert.True(t, f.Equal(tt.expected), "got %s", f)
		})
	}
}

func TestMinimalFactorErrors(t *testing.T) {
	t.Run("zero polynomial", func(t *testing.T) {
		_, err := MinimalFactor(Poly{}, 0, 24)
		assert.ErrorIs(t, err, ErrZeroPolynomial)
	})

	t.Run("constant polynomial", func(t *testing.T) {
		_, err := MinimalFactor(NewInt(3), 0, 24)
		assert.ErrorIs(t, err, ErrFactorNotFound)
	})

	t.Run("point is not a root", func(t *testing.T) {
		_, err := MinimalFactor(NewInt(-2, 0, 1), 5, 24)
		assert.ErrorIs(t, err, ErrFactorNotFound)
	})

	t.Run("degree limit", func(t *testing.T) {
		_, err := MinimalFactor(NewInt(1, 0, -10, 0, 1), complex(math.Sqrt2+math.Sqrt(3), 0), 3)
		assert.ErrorIs(t, err, ErrDegreeTooLarge)
	})
}

func TestCombinations(t *testing.T) {
	var got [][]int
	combinations(4, 2, func(idx []int) bool {
		got = append(got, append([]int(nil), idx...))
		return false
	})
	assert.Equal(t, [][]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}, got)

	calls := 0
	assert.True(t, combinations(3, 0, func([]int) bool {
		calls++
		return true
	}))
	assert.Equal(t, 1, calls)

	assert.False(t, combinations(2, 3, func([]int) bool { return true }))
}
