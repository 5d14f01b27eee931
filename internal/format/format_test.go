package format

import (
	"math"
	"testing"
)

func TestCompact(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{0, "$0"},
		{math.NaN(), "$0"},
		{math.Inf(1), "$0"},
		{500, "$500.0"},
		{1500, "$1.5K"},
		{-1500, "-$1.5K"},
		{2_340_000, "$2.3M"},
		{7_800_000_000, "$7.8B"},
		{1.2e12, "$1.2T"},
	}

	for _, tt := range tests {
		if got := Compact(tt.value); got != tt.want {
			t.Errorf("Compact(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestCompactN(t *testing.T) {
	if got := CompactN(1_234_567, 2); got != "$1.23M" {
		t.Errorf("CompactN(1234567, 2) = %q, want $1.23M", got)
	}
	if got := CompactN(999, 0); got != "$999" {
		t.Errorf("CompactN(999, 0) = %q, want $999", got)
	}
}

func TestPrice(t *testing.T) {
	tests := []struct {
		price float64
		want  string
	}{
		{math.NaN(), "$0.00"},
		{1234.5, "$1,234.50"},
		{1234567.891, "$1,234,567.89"},
		{25.333, "$25.33"},
		{1, "$1.00"},
		{0.5432, "$0.5432"},
		{0.00123456, "$0.001235"},
	}

	for _, tt := range tests {
		if got := Price(tt.price); got != tt.want {
			t.Errorf("Price(%v) = %q, want %q", tt.price, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		change float64
		want   string
	}{
		{math.NaN(), "0.00%"},
		{0, "+0.00%"},
		{5.239, "+5.24%"},
		{-3.1, "-3.10%"},
	}

	for _, tt := range tests {
		if got := Percent(tt.change); got != tt.want {
			t.Errorf("Percent(%v) = %q, want %q", tt.change, got, tt.want)
		}
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		value int64
		want  string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-45678, "-45,678"},
	}

	for _, tt := range tests {
		if got := Count(tt.value); got != tt.want {
			t.Errorf("Count(%d) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestChange(t *testing.T) {
	tests := []struct {
		name          string
		open, current float64
		want          float64
	}{
		{"zero open guards division", 0, 100, 0},
		{"zero current is no signal", 100, 0, 0},
		{"doubled", 50, 100, 100},
		{"halved", 100, 50, -50},
		{"up 50 percent", 100, 150, 50},
		{"NaN open", math.NaN(), 100, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Change(tt.open, tt.current); got != tt.want {
				t.Errorf("Change(%v, %v) = %v, want %v", tt.open, tt.current, got, tt.want)
			}
		})
	}
}
