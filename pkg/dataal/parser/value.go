package parser

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// TypeValue coerces a single raw cell into a typed value.
//
// nil and "" become nil. Numbers are returned unchanged. A string is parsed
// as a number after replacing ',' with '.'; when that fails the original
// string is returned, including date-like strings, which are never turned
// into time values. Any other type is returned unchanged.
func TypeValue(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	if s == "" {
		return nil
	}
	if f, ok := parseNumber(s); ok {
		return f
	}
	return s
}

// parseNumber parses s as a float, accepting ',' as the decimal separator.
// Surrounding whitespace is ignored; NaN and infinities are rejected.
func parseNumber(s string) (float64, bool) {
	t := strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	if t == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(t, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// isNumericCell reports whether a cell is a number or a string that parses
// as one.
func isNumericCell(v any) bool {
	switch x := v.(type) {
	case float64, float32, int, int64, int32:
		return true
	case string:
		_, ok := parseNumber(x)
		return ok
	}
	return false
}

// isBlank reports whether a label cell should be replaced by a placeholder:
// nil, empty or whitespace only.
func isBlank(v any) bool {
	if v == nil {
		return true
	}
	s, ok := v.(string)
	return ok && strings.TrimSpace(s) == ""
}

// Stringify renders a cell the way it appears in labels. nil becomes "".
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case float64:
		return formatNumber(x)
	case float32:
		return formatNumber(float64(x))
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case bool:
		return strconv.FormatBool(x)
	}
	return fmt.Sprint(v)
}

// formatNumber prints the shortest representation of f, switching to
// exponent form below 1e-6 and from 1e21 up.
func formatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign, digits := exp[:1], strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// labelOf stringifies a header cell, using placeholder for blank cells.
func labelOf(v any, placeholder string) string {
	if isBlank(v) {
		return placeholder
	}
	return Stringify(v)
}

// parseValue converts a decoded spreadsheet string into a cell.
// Returns nil for "", int64 for integers, float64 for decimals, or the
// original string.
func parseValue(s string) any {
	if s == "" {
		return nil
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	return s
}
