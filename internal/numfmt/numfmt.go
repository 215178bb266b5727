// Package numfmt implements the numeric parsing and formatting rules shared
// by the selector evaluator, the data operators, and the temp-variable
// store: a cell is numeric iff parsing consumes it entirely, and a result
// is written back as an integer when it has no fractional part, or in
// shortest general form otherwise.
package numfmt

import (
	"math"
	"strconv"
)

// Parse reports whether s parses as a float64 in its entirety.
// strconv.ParseFloat already rejects any input with trailing garbage, which
// is exactly the "consumes the entire string" rule.
func Parse(s string) (float64, bool) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Format renders v without a decimal point when it has no fractional part,
// or in shortest general (%g-equivalent) form otherwise.
func Format(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
