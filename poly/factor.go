package poly

import (
	"math"
	"math/big"
	"math/cmplx"
)

// nearIntegerTolerance bounds the relative distance of a numerically
// expanded coefficient from the nearest integer.
const nearIntegerTolerance = 1e-6

// MinimalFactor returns the monic irreducible factor of p that vanishes at
// the numeric point z.
//
// The roots of the squarefree part of p are approximated numerically and the
// root nearest to z is fixed. Subsets of the remaining roots are then tried in
// ascending size; a subset is accepted when lc * prod(x - r) rounds to an
// integer polynomial that divides p exactly. The first accepted subset is the
// minimal polynomial of z, since every rational factor vanishing at z is a
// multiple of it.
func MinimalFactor(p Poly, z complex128, maxDegree int) (Poly, error) {
	if p.IsZero() {
		return Poly{}, ErrZeroPolynomial
	}

	sf := p.SquareFree()
	n := sf.Degree()
	if n < 1 {
		return Poly{}, ErrFactorNotFound
	}
	if n > maxDegree {
		return Poly{}, ErrDegreeTooLarge
	}

	roots := Roots(sf)
	nearest := 0
	for i, r := range roots {
		if cmplx.Abs(r-z) < cmplx.Abs(roots[nearest]-z) {
			nearest = i
		}
	}
	if cmplx.Abs(roots[nearest]-z) > nearIntegerTolerance*math.Max(1, cmplx.Abs(z)) {
		return Poly{}, ErrFactorNotFound
	}

	if n == 1 {
		return sf, nil
	}

	ints := sf.Primitive()
	lead, _ := new(big.Float).SetInt(ints[n]).Float64()

	others := make([]int, 0, n-1)
	for i := range roots {
		if i != nearest {
			others = append(others, i)
		}
	}

	for size := 0; size < n; size++ {
		var found Poly
		ok := combinations(len(others), size, func(idx []int) bool {
			subset := make([]complex128, 0, size+1)
			subset = append(subset, roots[nearest])
			for _, i := range idx {
				subset = append(subset, roots[others[i]])
			}

			candidate, ok := rationalProduct(subset, lead)
			if !ok {
				return false
			}
			if !sf.Rem(candidate).IsZero() {
				return false
			}
			found = candidate
			return true
		})
		if ok {
			return found, nil
		}
	}

	return Poly{}, ErrFactorNotFound
}

// rationalProduct expands lead * prod(x - r) and, when every coefficient is
// numerically an integer, returns the monic rational polynomial it denotes.
func rationalProduct(roots []complex128, lead float64) (Poly, bool) {
	sum, prod := complex(0, 0), complex(1, 0)
	for _, r := range roots {
		sum += r
		prod *= r
	}
	scale := complex(lead, 0)
	if _, ok := nearInteger(sum * scale); !ok {
		return Poly{}, false
	}
	if _, ok := nearInteger(prod * scale); !ok {
		return Poly{}, false
	}

	// c[i] is the coefficient of x**i.
	c := []complex128{1}
	for _, r := range roots {
		next := make([]complex128, len(c)+1)
		for i, v := range c {
			next[i+1] += v
			next[i] -= v * r
		}
		c = next
	}

	coeffs := make([]*big.Rat, len(c))
	for i, v := range c {
		n, ok := nearInteger(v * scale)
		if !ok {
			return Poly{}, false
		}
		coeffs[i] = new(big.Rat).SetInt(n)
	}

	return New(coeffs...).Monic(), true
}

func nearInteger(v complex128) (*big.Int, bool) {
	if cmplx.IsNaN(v) || cmplx.IsInf(v) {
		return nil, false
	}
	tol := nearIntegerTolerance * math.Max(1, cmplx.Abs(v))
	if math.Abs(imag(v)) > tol {
		return nil, false
	}
	rounded := math.Round(real(v))
	if math.Abs(real(v)-rounded) > tol {
		return nil, false
	}
	n, _ := big.NewFloat(rounded).Int(nil)
	return n, true
}

// combinations calls fn for every k-subset of {0..n-1} in lexicographic order
// and stops at the first call that returns true.
func combinations(n, k int, fn func([]int) bool) bool {
	if k > n {
		return false
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}

	for {
		if fn(idx) {
			return true
		}

		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return false
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}
