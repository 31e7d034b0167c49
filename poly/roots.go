package poly

import (
	"math"
	"math/cmplx"
	"sort"
)

const (
	maxRootIterations = 1000
	rootTolerance     = 1e-15
	// realSnapTolerance is the relative size of an imaginary part below which
	// a computed root is treated as real.
	realSnapTolerance = 1e-10
)

// Roots returns numeric approximations of all complex roots of p, repeated
// according to multiplicity, in the canonical root order:
//
//   - real roots first, in ascending order;
//   - then non-real roots ordered by real part, then by imaginary part.
//
// The n-th root of a polynomial always refers to this order. Roots are found
// with the Aberth-Ehrlich iteration and refined with Newton steps.
func Roots(p Poly) []complex128 {
	n := p.Degree()
	if n < 1 {
		return nil
	}

	monic := p.Monic()
	c := make([]complex128, n+1)
	for i, r := range monic.coeffs {
		f, _ := r.Float64()
		c[i] = complex(f, 0)
	}

	if n == 1 {
		return []complex128{-c[0]}
	}

	z := initialGuesses(c)
	aberth(c, z)
	for i := range z {
		z[i] = polish(c, z[i])
	}

	sortRoots(z)
	return z
}

// Root returns the n-th root of p in the canonical root order.
func Root(p Poly, n int) (complex128, error) {
	roots := Roots(p)
	if n < 0 || n >= len(roots) {
		return 0, ErrRootIndex
	}
	return roots[n], nil
}

// initialGuesses spreads starting points on a circle whose radius is half
// of the Fujiwara bound on the root moduli.
func initialGuesses(c []complex128) []complex128 {
	n := len(c) - 1

	bound := 0.0
	for i := 1; i <= n; i++ {
		v := cmplx.Abs(c[n-i])
		if i == n {
			v /= 2
		}
		bound = math.Max(bound, math.Pow(v, 1/float64(i)))
	}
	radius := bound
	if radius == 0 {
		radius = 1
	}

	z := make([]complex128, n)
	for k := range z {
		angle := 2*math.Pi*float64(k)/float64(n) + 0.4
		z[k] = cmplx.Rect(radius, angle)
	}
	return z
}

func evalWithDerivative(c []complex128, z complex128) (complex128, complex128) {
	n := len(c) - 1
	p := c[n]
	dp := complex(0, 0)
	for i := n - 1; i >= 0; i-- {
		dp = dp*z + p
		p = p*z + c[i]
	}
	return p, dp
}

func aberth(c []complex128, z []complex128) {
	for iter := 0; iter < maxRootIterations; iter++ {
		converged := true

		for k := range z {
			p, dp := evalWithDerivative(c, z[k])
			if p == 0 {
				continue
			}
			if dp == 0 {
				z[k] += complex(rootTolerance, rootTolerance)
				converged = false
				continue
			}

			ratio := p / dp
			var sum complex128
			for j := range z {
				if j != k {
					sum += 1 / (z[k] - z[j])
				}
			}

			w := ratio / (1 - ratio*sum)
			z[k] -= w

			if cmplx.Abs(w) > rootTolerance*math.Max(1, cmplx.Abs(z[k])) {
				converged = false
			}
		}

		if converged {
			return
		}
	}
}

func polish(c []complex128, z complex128) complex128 {
	for iter := 0; iter < 3; iter++ {
		p, dp := evalWithDerivative(c, z)
		if dp == 0 {
			return z
		}
		next := z - p/dp
		np, _ := evalWithDerivative(c, next)
		if cmplx.Abs(np) >= cmplx.Abs(p) {
			return z
		}
		z = next
	}
	return z
}

func sortRoots(z []complex128) {
	for i, r := range z {
		if math.Abs(imag(r)) <= realSnapTolerance*math.Max(1, cmplx.Abs(r)) {
			z[i] = complex(real(r), 0)
		}
	}

	sort.SliceStable(z, func(i, j int) bool {
		return rootLess(z[i], z[j])
	})
}

func rootLess(a, b complex128) bool {
	aReal, bReal := imag(a) == 0, imag(b) == 0
	if aReal != bReal {
		return aReal
	}
	if aReal {
		return real(a) < real(b)
	}

	scale := math.Max(1, math.Max(cmplx.Abs(a), cmplx.Abs(b)))
	if math.Abs(real(a)-real(b)) > realSnapTolerance*scale {
		return real(a) < real(b)
	}
	return imag(a) < imag(b)
}
