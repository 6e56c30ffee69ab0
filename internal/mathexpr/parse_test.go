package mathexpr

import (
	"math"
	"testing"
)

func approxEq(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestParseNumbers(t *testing.T) {
	tests := []struct {
		in   string
		kind Kind
		val  float64
	}{
		{"5", KindNumber, 5},
		{"-5", KindNumber, -5},
		{"3.14", KindNumber, 3.14},
		{"-0.25", KindNumber, -0.25},
		{"1/2", KindFraction, 0.5},
		{"-3/4", KindFraction, -0.75},
		{"4 2/3", KindMixedFraction, 4 + 2.0/3.0},
		{"-1 1/2", KindMixedFraction, -1.5},
	}
	for _, tt := range tests {
		p := Parse(tt.in)
		if p.Kind != tt.kind {
			t.Errorf("Parse(%q).Kind = %v, want %v", tt.in, p.Kind, tt.kind)
			continue
		}
		if p.Value == nil || !approxEq(*p.Value, tt.val) {
			t.Errorf("Parse(%q).Value = %v, want %v", tt.in, p.Value, tt.val)
		}
	}
}

func TestParseEquations(t *testing.T) {
	p := Parse("7x=4")
	if p.Kind != KindEquation {
		t.Fatalf("kind = %v, want equation", p.Kind)
	}
	if p.Variable != "x" || p.Coefficient != 7 {
		t.Errorf("got var %q coef %v", p.Variable, p.Coefficient)
	}
	if p.Value == nil || !approxEq(*p.Value, 4.0/7.0) {
		t.Errorf("implied solution = %v, want 4/7", p.Value)
	}

	p = Parse("x=4")
	if p.Kind != KindSolution {
		t.Fatalf("kind = %v, want solution", p.Kind)
	}
	if p.Value == nil || !approxEq(*p.Value, 4) {
		t.Errorf("value = %v, want 4", p.Value)
	}

	p = Parse("x = 4")
	if p.Kind != KindSolution || p.Value == nil || !approxEq(*p.Value, 4) {
		t.Errorf("spaced solution: got %v", p)
	}

	p = Parse("2y=1/2")
	if p.Kind != KindEquation || p.Value == nil || !approxEq(*p.Value, 0.25) {
		t.Errorf("fractional rhs: got %v", p)
	}
}

func TestParseEquationNonNumericRHS(t *testing.T) {
	p := Parse("3x=y+1")
	if p.Kind != KindEquation {
		t.Fatalf("kind = %v, want equation", p.Kind)
	}
	if p.Value != nil {
		t.Errorf("value = %v, want nil for symbolic rhs", *p.Value)
	}
}

func TestParseUnknown(t *testing.T) {
	for _, in := range []string{"x**2+3x", "(x+1)(x+2)", "hello", "1/0"} {
		p := Parse(in)
		if p.Kind != KindUnknown {
			t.Errorf("Parse(%q).Kind = %v, want unknown", in, p.Kind)
		}
		if p.Value != nil {
			t.Errorf("Parse(%q).Value = %v, want nil", in, *p.Value)
		}
	}
}

func TestParsePreservesRaw(t *testing.T) {
	p := Parse("  X ** 2 ")
	if p.Raw != "x ** 2" {
		t.Errorf("raw = %q", p.Raw)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0.5, "0.5"},
		{5, "5"},
		{-0.75, "-0.75"},
		{2.5000, "2.5"},
	}
	for _, tt := range tests {
		if got := FormatValue(tt.in); got != tt.want {
			t.Errorf("FormatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
