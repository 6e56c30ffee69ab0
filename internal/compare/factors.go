package compare

import (
	"regexp"
	"sort"

	"github.com/abhisek/gradex/internal/mathexpr"
)

var (
	leadingCoefRe = regexp.MustCompile(`^(\d+)\(`)
	factorGroupRe = regexp.MustCompile(`\([^)]+\)`)
)

// extractFactors pulls the sorted factor set out of a factored
// expression: a leading numeric coefficient like the 2 in "2(x+3)"
// plus every parenthesized group.
func extractFactors(expr string) []string {
	norm := mathexpr.Normalize(expr)
	var factors []string
	if m := leadingCoefRe.FindStringSubmatch(norm); m != nil {
		factors = append(factors, m[1])
	}
	factors = append(factors, factorGroupRe.FindAllString(norm, -1)...)
	sort.Strings(factors)
	return factors
}

// countFactorGroups counts only the parenthesized groups, ignoring a
// leading coefficient.
func countFactorGroups(factors []string) int {
	n := 0
	for _, f := range factors {
		if len(f) > 0 && f[0] == '(' {
			n++
		}
	}
	return n
}

// factoredEqual requires the two sorted factor sets to match exactly.
// Order of factors never matters; (x+1)(x+2) and (x+2)(x+1) are the
// same answer.
func factoredEqual(learner, ref string) bool {
	if mathexpr.Normalize(learner) == mathexpr.Normalize(ref) {
		return true
	}
	lf := extractFactors(learner)
	rf := extractFactors(ref)
	if len(lf) != len(rf) {
		return false
	}
	for i := range lf {
		if lf[i] != rf[i] {
			return false
		}
	}
	return len(lf) > 0
}

// factoredSimilarity scores an incomplete factoring attempt. Credit is
// proportional to the share of expected factor groups found, scaled by
// the credit cap; a learner with as many groups as expected but a
// wrong set gets a flat consolation score, and no parentheses at all
// means no credit.
func (c *Comparator) factoredSimilarity(learner, ref string) int {
	learnerGroups := countFactorGroups(extractFactors(learner))
	refGroups := countFactorGroups(extractFactors(ref))

	if learnerGroups == 0 {
		return 0
	}
	if refGroups > 0 && learnerGroups < refGroups {
		return int(roundHalf(float64(learnerGroups) / float64(refGroups) * float64(c.cfg.FactorCreditCap)))
	}
	return 30
}
