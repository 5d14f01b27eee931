package safe

import "testing"

func TestFloat(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1.5", 1.5},
		{"-2", -2},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"NaN", 0},
		{"+Inf", 0},
	}

	for _, tt := range tests {
		if got := Float(tt.in); got != tt.want {
			t.Errorf("Float(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFloatAt(t *testing.T) {
	arr := []string{"1.0", "42.5"}

	if got := FloatAt(arr, 1); got != 42.5 {
		t.Errorf("FloatAt(arr, 1) = %v, want 42.5", got)
	}
	if got := FloatAt(arr, 5); got != 0 {
		t.Errorf("FloatAt(arr, 5) = %v, want 0 for out of range", got)
	}
	if got := FloatAt(nil, 0); got != 0 {
		t.Errorf("FloatAt(nil, 0) = %v, want 0", got)
	}
}

func TestIntAt(t *testing.T) {
	arr := []int64{3, 7}

	if got := IntAt(arr, 1); got != 7 {
		t.Errorf("IntAt(arr, 1) = %v, want 7", got)
	}
	if got := IntAt(arr, -1); got != 0 {
		t.Errorf("IntAt(arr, -1) = %v, want 0", got)
	}
}
