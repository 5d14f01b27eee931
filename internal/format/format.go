// Package format turns pipeline numbers into display strings. Pure and
// stateless; aggregation never stores formatted values, the presentation
// layer calls these at render time.
//
// Rounding uses shopspring/decimal's StringFixed (half away from zero) to
// match what users expect from currency display, instead of strconv's
// round-half-to-even.
package format

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Compact renders a USD amount in compact notation with one decimal:
// $1.5K, $2.3B, -$1.5K. Zero, NaN and infinities render as "$0".
func Compact(value float64) string {
	return CompactN(value, 1)
}

// CompactN is Compact with configurable decimal precision.
func CompactN(value float64, decimals int) string {
	if value == 0 || math.IsNaN(value) || math.IsInf(value, 0) {
		return "$0"
	}

	abs := math.Abs(value)
	sign := ""
	if value < 0 {
		sign = "-"
	}

	switch {
	case abs >= 1e12:
		return sign + "$" + fixed(abs/1e12, decimals) + "T"
	case abs >= 1e9:
		return sign + "$" + fixed(abs/1e9, decimals) + "B"
	case abs >= 1e6:
		return sign + "$" + fixed(abs/1e6, decimals) + "M"
	case abs >= 1e3:
		return sign + "$" + fixed(abs/1e3, decimals) + "K"
	}
	return sign + "$" + fixed(abs, decimals)
}

// Price renders a price with tiered precision: grouped 2 decimals above 1000,
// 2 decimals above 1, 4 above 0.01, else 6. Invalid input renders "$0.00".
func Price(price float64) string {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return "$0.00"
	}
	switch {
	case price >= 1000:
		return "$" + group(fixed(price, 2))
	case price >= 1:
		return "$" + fixed(price, 2)
	case price >= 0.01:
		return "$" + fixed(price, 4)
	}
	return "$" + fixed(price, 6)
}

// Percent renders a change percentage with two decimals and an explicit
// leading + for non-negative values. Invalid input renders "0.00%".
func Percent(change float64) string {
	if math.IsNaN(change) || math.IsInf(change, 0) {
		return "0.00%"
	}
	sign := ""
	if change >= 0 {
		sign = "+"
	}
	return sign + fixed(change, 2) + "%"
}

// Count renders an integer with thousands separators.
func Count(value int64) string {
	return group(decimal.NewFromInt(value).String())
}

// Change computes the percent move from open to current. A zero or missing
// open (or current) yields 0: a "no signal" default guarding the division,
// not a measured zero change.
func Change(open, current float64) float64 {
	if open == 0 || current == 0 ||
		math.IsNaN(open) || math.IsNaN(current) ||
		math.IsInf(open, 0) || math.IsInf(current, 0) {
		return 0
	}
	return (current - open) / open * 100
}

func fixed(v float64, decimals int) string {
	return decimal.NewFromFloat(v).StringFixed(int32(decimals))
}

// group inserts thousands separators into the integer part of a plain
// decimal string ("12345.67" -> "12,345.67").
func group(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteString(fracPart)
	return b.String()
}
