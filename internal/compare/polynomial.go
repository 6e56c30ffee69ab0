package compare

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/gradex/internal/mathexpr"
)

// term is the leading (coefficient, power) pair of a polynomial
// expression, read off by pattern matching rather than real parsing.
type term struct {
	coefficient float64
	power       int
}

var termPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(\d*\.?\d*)x\*\*(\d+)`),
	regexp.MustCompile(`(\d*\.?\d*)x(\d+)`),
	regexp.MustCompile(`(\d*\.?\d*)x`),
	regexp.MustCompile(`(\d+\.?\d*)`),
}

// extractTerm finds the first recognizable term in canonical text. An
// implicit coefficient reads as 1; a variable with no exponent marker
// reads as power 1.
func extractTerm(norm string) term {
	for _, pat := range termPatterns {
		m := pat.FindStringSubmatch(norm)
		if m == nil {
			continue
		}
		coef := 1.0
		if m[1] != "" && m[1] != "." {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				coef = v
			}
		}
		power := 0
		if len(m) > 2 && m[2] != "" {
			power, _ = strconv.Atoi(m[2])
		} else if strings.Contains(norm, "x") {
			power = 1
		}
		return term{coefficient: coef, power: power}
	}
	return term{}
}

// polynomialSimilarity scores two variable expressions 0..100 without
// symbolic algebra: 50 points for matching leading powers (20 for
// off-by-one), up to 30 for coefficient closeness, up to 20 for raw
// character-position overlap.
func polynomialSimilarity(a, b string) int {
	dec1 := mathexpr.FractionsToDecimal(mathexpr.Normalize(a))
	dec2 := mathexpr.FractionsToDecimal(mathexpr.Normalize(b))

	if dec1 == dec2 {
		return 100
	}

	t1 := extractTerm(dec1)
	t2 := extractTerm(dec2)

	score := 0.0
	switch {
	case t1.power == t2.power:
		score += 50
	case abs(t1.power-t2.power) == 1:
		score += 20
	}

	if t1.coefficient != 0 && t2.coefficient != 0 {
		diff := math.Abs(t1.coefficient - t2.coefficient)
		avg := (t1.coefficient + t2.coefficient) / 2
		closeness := math.Max(0, 1-diff/avg)
		score += closeness * 30
	}

	score += charOverlap(dec1, dec2) * 20

	if score > 100 {
		score = 100
	}
	return int(roundHalf(score))
}

// charOverlap is the fraction of positions where the two strings hold
// the same byte, over the longer length.
func charOverlap(a, b string) float64 {
	minLen := len(a)
	maxLen := len(b)
	if minLen > maxLen {
		minLen, maxLen = maxLen, minLen
	}
	if maxLen == 0 {
		return 0
	}
	matches := 0
	for i := 0; i < minLen; i++ {
		if a[i] == b[i] {
			matches++
		}
	}
	return float64(matches) / float64(maxLen)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func roundHalf(v float64) float64 { return math.Floor(v + 0.5) }
