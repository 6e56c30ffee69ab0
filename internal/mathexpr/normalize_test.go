package mathexpr

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercase", "X + 1", "x+1"},
		{"strip whitespace", "  2 x ^ 2  ", "2x**2"},
		{"drop multiplication star", "3*x", "3x"},
		{"drop multiplication sign", "3×x", "3x"},
		{"division sign", "4÷7", "4/7"},
		{"caret to double star", "x^3", "x**3"},
		{"typed double star preserved", "x**3", "x**3"},
		{"square brackets", "[x+1]", "(x+1)"},
		{"trailing integral constant", "x^2/2 + C", "x**2/2"},
		{"constant not stripped mid-expression", "c+1", "c+1"},
		{"empty", "", ""},
		{"whitespace only", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizePlusMinus(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"x = +/- 5", "x=±5"},
		{"x = -/+ 5", "x=±5"},
		{"x = +- 5", "x=±5"},
		{"x = -+ 5", "x=±5"},
		{"x = plus-minus 5", "x=±5"},
		{"x = plusminus 5", "x=±5"},
		{"x = ±5", "x=±5"},
		{"x = 5", "x=5"},
	}
	for _, tt := range tests {
		if got := NormalizePlusMinus(tt.in); got != tt.want {
			t.Errorf("NormalizePlusMinus(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFractionsToDecimal(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"1/2", "0.5"},
		{"x=1/4", "x=0.25"},
		{"-3/4", "-0.75"},
		{"1/0", "1/0"},
		{"0.5", "0.5"},
	}
	for _, tt := range tests {
		if got := FractionsToDecimal(tt.in); got != tt.want {
			t.Errorf("FractionsToDecimal(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
