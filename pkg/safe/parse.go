// Package safe holds permissive numeric parsing for upstream API payloads.
// Kraken returns most numbers as strings inside positional arrays; individual
// malformed fields default to zero so one bad row never aborts a batch.
package safe

import (
	"math"
	"strconv"
)

// Float parses s as a float64. Empty, malformed, NaN and infinite values
// all collapse to 0.
func Float(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// FloatAt parses element i of a positional string array, 0 if out of range.
func FloatAt(arr []string, i int) float64 {
	if i < 0 || i >= len(arr) {
		return 0
	}
	return Float(arr[i])
}

// IntAt returns element i of a positional int array, 0 if out of range.
func IntAt(arr []int64, i int) int64 {
	if i < 0 || i >= len(arr) {
		return 0
	}
	return arr[i]
}
