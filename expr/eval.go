package expr

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/vitalvas/numfield/poly"
)

// Evalf returns a floating-point approximation of e. Rational exponents use
// the principal branch, matching the root chosen by NewPow for exact powers.
func Evalf(e Expr) (complex128, error) {
	switch v := e.(type) {
	case *Number:
		f, _ := v.Value.Float64()
		return complex(f, 0), nil

	case *Symbol:
		switch v.Name {
		case Pi.Name:
			return complex(math.Pi, 0), nil
		case E.Name:
			return complex(math.E, 0), nil
		}
		return 0, fmt.Errorf("%w: %s", ErrFreeSymbol, v.Name)

	case *Imaginary:
		return complex(0, 1), nil

	case *Add:
		var sum complex128
		for _, t := range v.Terms {
			z, err := Evalf(t)
			if err != nil {
				return 0, err
			}
			sum += z
		}
		return sum, nil

	case *Mul:
		prod := complex(1, 0)
		for _, f := range v.Factors {
			z, err := Evalf(f)
			if err != nil {
				return 0, err
			}
			prod *= z
		}
		return prod, nil

	case *Pow:
		return evalPow(v)

	case *RootOf:
		return poly.Root(v.Poly, v.Index)

	case *Func:
		return evalFunc(v)
	}

	return 0, fmt.Errorf("%w: %T", ErrUnsupported, e)
}

func evalPow(p *Pow) (complex128, error) {
	base, err := Evalf(p.Base)
	if err != nil {
		return 0, err
	}

	if e, ok := AsNumber(p.Exp); ok && e.IsInt() && e.Num().IsInt64() {
		n := e.Num().Int64()
		if n < 0 {
			if base == 0 {
				return 0, ErrUndefined
			}
			base = 1 / base
			n = -n
		}
		result := complex(1, 0)
		for ; n > 0; n-- {
			result *= base
		}
		return result, nil
	}

	exp, err := Evalf(p.Exp)
	if err != nil {
		return 0, err
	}
	if base == 0 {
		if real(exp) > 0 {
			return 0, nil
		}
		return 0, ErrUndefined
	}
	return cmplx.Pow(base, exp), nil
}

func evalFunc(f *Func) (complex128, error) {
	if len(f.Args) != 1 {
		return 0, fmt.Errorf("%w: %s expects 1 argument", ErrUnsupported, f.Name)
	}
	z, err := Evalf(f.Args[0])
	if err != nil {
		return 0, err
	}

	switch f.Name {
	case "exp":
		return cmplx.Exp(z), nil
	case "log":
		if z == 0 {
			return 0, ErrUndefined
		}
		return cmplx.Log(z), nil
	case "sin":
		return cmplx.Sin(z), nil
	case "cos":
		return cmplx.Cos(z), nil
	}
	return 0, fmt.Errorf("%w: %s", ErrUnknownFunction, f.Name)
}

// IsConstant reports whether e contains no free symbols.
func IsConstant(e Expr) bool {
	return len(FreeSymbols(e)) == 0
}

// FreeSymbols returns the names of symbols in e other than pi and E, in
// order of first appearance.
func FreeSymbols(e Expr) []string {
	var names []string
	seen := map[string]bool{}

	var walk func(Expr)
	walk = func(e Expr) {
		switch v := e.(type) {
		case *Symbol:
			if v.Name != Pi.Name && v.Name != E.Name && !seen[v.Name] {
				seen[v.Name] = true
				names = append(names, v.Name)
			}
		case *Add:
			for _, t := range v.Terms {
				walk(t)
			}
		case *Mul:
			for _, f := range v.Factors {
				walk(f)
			}
		case *Pow:
			walk(v.Base)
			walk(v.Exp)
		case *Func:
			for _, a := range v.Args {
				walk(a)
			}
		}
	}
	walk(e)
	return names
}

// ToPoly converts e into a polynomial in the named variable. Only sums and
// products of rational constants and non-negative integer powers of the
// variable are accepted.
func ToPoly(e Expr, variable string) (poly.Poly, error) {
	switch v := e.(type) {
	case *Number:
		return poly.Const(v.Value), nil

	case *Symbol:
		if v.Name == variable {
			return poly.X(), nil
		}

	case *Add:
		result := poly.Poly{}
		for _, t := range v.Terms {
			p, err := ToPoly(t, variable)
			if err != nil {
				return poly.Poly{}, err
			}
			result = result.Add(p)
		}
		return result, nil

	case *Mul:
		result := poly.NewInt(1)
		for _, f := range v.Factors {
			p, err := ToPoly(f, variable)
			if err != nil {
				return poly.Poly{}, err
			}
			result = result.Mul(p)
		}
		return result, nil

	case *Pow:
		n, ok := AsNumber(v.Exp)
		if ok && n.IsInt() && n.Sign() >= 0 && n.Num().IsInt64() {
			base, err := ToPoly(v.Base, variable)
			if err != nil {
				return poly.Poly{}, err
			}
			return base.Pow(int(n.Num().Int64())), nil
		}
	}

	return poly.Poly{}, fmt.Errorf("%w: %s is not a polynomial in %s", ErrNotPolynomial, e, variable)
}
