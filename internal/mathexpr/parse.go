package mathexpr

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Kind classifies what a piece of answer text turned out to be.
type Kind int

const (
	KindUnknown Kind = iota
	KindNumber
	KindFraction
	KindMixedFraction
	KindEquation
	KindSolution
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindFraction:
		return "fraction"
	case KindMixedFraction:
		return "mixed-fraction"
	case KindEquation:
		return "equation"
	case KindSolution:
		return "solution"
	default:
		return "unknown"
	}
}

// Parsed is the structured reading of one answer string. Value is nil
// only for Unknown input or an equation whose right-hand side is not
// numeric.
type Parsed struct {
	Kind        Kind
	Value       *float64
	Variable    string
	Coefficient float64
	Numerator   float64
	Denominator float64
	Raw         string
}

// recognizer attempts one syntactic form. First hit wins.
type recognizer func(s string) (Parsed, bool)

var compactRecognizers = []recognizer{
	recognizeFraction,
	recognizeNumber,
	recognizeEquation,
	recognizeSolution,
}

var (
	mixedFractionRe = regexp.MustCompile(`^(-?\d+) (\d+)/(\d+)$`)
	fractionRe      = regexp.MustCompile(`^(-?\d+)/(-?\d+)$`)
	numberRe        = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
	equationRe      = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)([a-z])=(.+)$`)
	solutionRe      = regexp.MustCompile(`^([a-z])=(.+)$`)
)

// Parse reads answer text into a Parsed. The mixed-fraction form is
// tried against space-collapsed text first, since it is the one shape
// that needs its separating space; every other recognizer sees the
// text with whitespace fully stripped. Never errors; anything
// unrecognized comes back as KindUnknown with Raw preserved.
func Parse(text string) Parsed {
	spaced := strings.Join(strings.Fields(strings.ToLower(text)), " ")
	if p, ok := recognizeMixedFraction(spaced); ok {
		p.Raw = spaced
		return p
	}
	compact := strings.ReplaceAll(spaced, " ", "")
	for _, rec := range compactRecognizers {
		if p, ok := rec(compact); ok {
			p.Raw = spaced
			return p
		}
	}
	return Parsed{Kind: KindUnknown, Raw: spaced}
}

func recognizeMixedFraction(s string) (Parsed, bool) {
	m := mixedFractionRe.FindStringSubmatch(s)
	if m == nil {
		return Parsed{}, false
	}
	whole, err1 := strconv.ParseFloat(m[1], 64)
	num, den, err2 := parseRatio(m[2], m[3])
	if err1 != nil || err2 != nil || den == 0 {
		return Parsed{}, false
	}
	frac := num / den
	v := whole + frac
	if whole < 0 {
		v = whole - frac
	}
	return Parsed{
		Kind:        KindMixedFraction,
		Value:       &v,
		Numerator:   num,
		Denominator: den,
	}, true
}

func recognizeFraction(s string) (Parsed, bool) {
	m := fractionRe.FindStringSubmatch(s)
	if m == nil {
		return Parsed{}, false
	}
	num, den, err := parseRatio(m[1], m[2])
	if err != nil || den == 0 {
		return Parsed{}, false
	}
	v := num / den
	return Parsed{
		Kind:        KindFraction,
		Value:       &v,
		Numerator:   num,
		Denominator: den,
	}, true
}

func recognizeNumber(s string) (Parsed, bool) {
	if !numberRe.MatchString(s) {
		return Parsed{}, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Parsed{}, false
	}
	return Parsed{Kind: KindNumber, Value: &v}, true
}

// recognizeEquation handles <coef><var>=<rhs>, e.g. "7x=4". The stored
// Value is the implied solution rhs/coef so a learner's intermediate
// line can be scored against the final answer. An explicit coefficient
// is required here; the bare "x=4" form belongs to recognizeSolution.
func recognizeEquation(s string) (Parsed, bool) {
	m := equationRe.FindStringSubmatch(s)
	if m == nil {
		return Parsed{}, false
	}
	coef, err := strconv.ParseFloat(m[1], 64)
	if err != nil || coef == 0 {
		return Parsed{}, false
	}
	p := Parsed{Kind: KindEquation, Variable: m[2], Coefficient: coef}
	if rhs := numericValue(m[3]); rhs != nil {
		v := *rhs / coef
		p.Value = &v
	}
	return p, true
}

func recognizeSolution(s string) (Parsed, bool) {
	m := solutionRe.FindStringSubmatch(s)
	if m == nil {
		return Parsed{}, false
	}
	p := Parsed{Kind: KindSolution, Variable: m[1], Coefficient: 1}
	if rhs := numericValue(m[2]); rhs != nil {
		p.Value = rhs
	}
	return p, true
}

// numericValue resolves a right-hand side through the value-bearing
// recognizers only. The rhs arrives whitespace-stripped, so the
// mixed-fraction form cannot occur here. Nested equations do not
// resolve.
func numericValue(s string) *float64 {
	for _, rec := range []recognizer{recognizeFraction, recognizeNumber} {
		if p, ok := rec(s); ok {
			return p.Value
		}
	}
	return nil
}

func parseRatio(num, den string) (float64, float64, error) {
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, 0, err
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil {
		return 0, 0, err
	}
	return n, d, nil
}

// formatFloat renders a value the way a learner would type it: no
// exponent form, no trailing zeros.
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// FormatValue is the exported rendering used by CLI output.
func FormatValue(v float64) string { return formatFloat(v) }

// String renders a Parsed for diagnostics.
func (p Parsed) String() string {
	if p.Value != nil {
		return fmt.Sprintf("%s(%s)", p.Kind, formatFloat(*p.Value))
	}
	return fmt.Sprintf("%s(%q)", p.Kind, p.Raw)
}
