package main

import (
	"encoding/json"
	"io"
	"math"
	"strconv"

	"github.com/vitalvas/numfield/expr"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// approx formats the numeric value of e, or "" when it has none.
func approx(e expr.Expr) string {
	z, err := expr.Evalf(e)
	if err != nil {
		return ""
	}

	re, im := real(z), imag(z)
	if math.Abs(im) <= 1e-12*math.Max(1, math.Abs(re)) {
		return strconv.FormatFloat(re, 'g', 12, 64)
	}
	return strconv.FormatComplex(z, 'g', 12, 128)
}
