package expr

import (
	"math/big"
	"strconv"
	"strings"
)

func (n *Number) String() string {
	return n.Value.RatString()
}

func (s *Symbol) String() string {
	return s.Name
}

func (i *Imaginary) String() string {
	return "I"
}

func (a *Add) String() string {
	var sb strings.Builder
	for i, t := range a.Terms {
		s, negative := signedString(t)
		switch {
		case i == 0 && negative:
			sb.WriteString("-")
		case i > 0 && negative:
			sb.WriteString(" - ")
		case i > 0:
			sb.WriteString(" + ")
		}
		sb.WriteString(s)
	}
	return sb.String()
}

// signedString returns the string of |t| and whether t carries a negative
// leading coefficient.
func signedString(t Expr) (string, bool) {
	switch v := t.(type) {
	case *Number:
		if v.Value.Sign() < 0 {
			return new(big.Rat).Neg(v.Value).RatString(), true
		}
	case *Mul:
		if c, ok := AsNumber(v.Factors[0]); ok && c.Sign() < 0 {
			rest := append([]Expr{&Number{Value: new(big.Rat).Neg(c)}}, v.Factors[1:]...)
			return NewMul(rest...).String(), true
		}
	}
	return t.String(), false
}

func (m *Mul) String() string {
	factors := m.Factors
	prefix := ""
	if c, ok := AsNumber(factors[0]); ok && c.Cmp(big.NewRat(-1, 1)) == 0 {
		prefix = "-"
		factors = factors[1:]
	}

	parts := make([]string, len(factors))
	for i, f := range factors {
		switch v := f.(type) {
		case *Add:
			parts[i] = "(" + v.String() + ")"
		default:
			parts[i] = f.String()
		}
	}
	return prefix + strings.Join(parts, "*")
}

func (p *Pow) String() string {
	if e, ok := AsNumber(p.Exp); ok && e.Cmp(big.NewRat(1, 2)) == 0 {
		return "sqrt(" + p.Base.String() + ")"
	}

	base := p.Base.String()
	switch v := p.Base.(type) {
	case *Add, *Mul, *Pow:
		base = "(" + base + ")"
	case *Number:
		if !v.Value.IsInt() || v.Value.Sign() < 0 {
			base = "(" + base + ")"
		}
	}

	exp := p.Exp.String()
	if e, ok := AsNumber(p.Exp); !ok || !e.IsInt() || e.Sign() < 0 {
		switch p.Exp.(type) {
		case *Symbol, *Imaginary, *RootOf, *Func:
		default:
			exp = "(" + exp + ")"
		}
	}

	return base + "**" + exp
}

func (r *RootOf) String() string {
	return "RootOf(" + r.Poly.String() + ", " + strconv.Itoa(r.Index) + ")"
}

func (f *Func) String() string {
	args := make([]string, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.String()
	}
	return f.Name + "(" + strings.Join(args, ", ") + ")"
}
