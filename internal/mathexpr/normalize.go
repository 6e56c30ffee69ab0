package mathexpr

import (
	"regexp"
	"strings"
)

// trailingConstRe matches the "+c" constant learners append to
// indefinite-integral answers. Stripped after whitespace removal.
var trailingConstRe = regexp.MustCompile(`\+c$`)

// glyphReplacer unifies operator and bracket glyph variants.
// Multiplication signs are dropped entirely (3x and 3*x compare equal).
// Typed ** folds to ^ before the drop so exponents are preserved, then
// ^ expands back to the canonical ** spelling.
var glyphReplacer = strings.NewReplacer(
	"×", "",
	"*", "",
	"÷", "/",
	"[", "(",
	"]", ")",
)

// Normalize canonicalizes raw answer text into a comparable string:
// lower-cased, whitespace stripped, operator and bracket glyphs unified,
// trailing integral constant removed. Empty or whitespace-only input
// normalizes to the empty string, which callers must treat as "not yet
// answered" rather than a parse failure.
func Normalize(text string) string {
	s := strings.ToLower(text)
	s = strings.Join(strings.Fields(s), "")
	s = trailingConstRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "**", "^")
	s = glyphReplacer.Replace(s)
	return strings.ReplaceAll(s, "^", "**")
}

// plusMinusForms lists the surface spellings learners use for the
// plus-minus sign, longest first so composite forms win.
var plusMinusForms = []string{
	"plus-minus",
	"plusminus",
	"+/-",
	"-/+",
	"+-",
	"-+",
}

// NormalizePlusMinus canonicalizes text and collapses every plus-minus
// spelling to the single ± rune. Quadratic roots arrive in many
// equivalent surface forms; unifying them here keeps the comparator
// notation-blind.
func NormalizePlusMinus(text string) string {
	s := Normalize(text)
	for _, form := range plusMinusForms {
		s = strings.ReplaceAll(s, form, "±")
	}
	return s
}

// FractionsToDecimal rewrites every a/b substring in canonical text as
// its decimal value, so "4/7" and "0.5714285714285714" compare equal at
// the string level.
var fractionSubRe = regexp.MustCompile(`(-?\d+)/(\d+)`)

func FractionsToDecimal(s string) string {
	return fractionSubRe.ReplaceAllStringFunc(s, func(m string) string {
		sub := fractionSubRe.FindStringSubmatch(m)
		num, den, err := parseRatio(sub[1], sub[2])
		if err != nil || den == 0 {
			return m
		}
		return formatFloat(num / den)
	})
}
