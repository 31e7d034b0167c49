package poly

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertRootsNear(t *testing.T, expected, actual []complex128) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.Less(t, cmplx.Abs(expected[i]-actual[i]), 1e-9, "root %d: expected %v, got %v", i, expected[i], actual[i])
	}
}

func TestRoots(t *testing.T) {
	s3 := math.Sqrt(3) / 2

	tests := []struct {
		name     string
		p        Poly
		expected []complex128
	}{
		{"linear", NewInt(-3, 2), []complex128{1.5}},
		{"real quadratic", NewInt(-2, 0, 1), []complex128{-math.Sqrt2, math.Sqrt2}},
		{"imaginary unit", NewInt(1, 0, 1), []complex128{complex(0, -1), complex(0, 1)}},
		{"roots of unity", NewInt(-1, 0, 0, 1), []complex128{1, complex(-0.5, -s3), complex(-0.5, s3)}},
		{"zero root", NewInt(0, -1, 0, 1), []complex128{-1, 0, 1}},
		{
			"quartic",
			NewInt(1, 0, -10, 0, 1),
			[]complex128{
				complex(-math.Sqrt2-math.Sqrt(3), 0),
				complex(math.Sqrt2-math.Sqrt(3), 0),
				complex(math.Sqrt(3)-math.Sqrt2, 0),
				complex(math.Sqrt2+math.Sqrt(3), 0),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assertRootsNear(t, tt.expected, Roots(tt.p))
		})
	}

	assert.Nil(t, Roots(NewInt(5)))
}

func TestRoot(t *testing.T) {
	r, err := Root(NewInt(-2, 0, 1), 1)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, real(r), 1e-12)

	_, err = Root(NewInt(-2, 0, 1), 2)
	assert.ErrorIs(t, err, ErrRootIndex)

	_, err = Root(NewInt(-2, 0, 1), -1)
	assert.ErrorIs(t, err, ErrRootIndex)
}

func TestRootOrderIsStable(t *testing.T) {
	p := NewInt(1, 0, -10, 0, 1)
	first := Roots(p)
	for iter := 0; iter < 5; iter++ {
		assert.Equal(t, first, Roots(p))
	}
}
