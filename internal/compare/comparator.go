// Package compare grades free-text math answers against a reference
// answer without doing symbolic algebra. Equivalent notations (spacing,
// glyph variants, fractions vs decimals, plus-minus spellings, factor
// order) must all earn full credit; everything else degrades to a
// similarity score, never an error.
package compare

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/abhisek/gradex/internal/mathexpr"
)

// Comparator grades answers. It holds no per-call state; one instance
// serves any number of learners concurrently.
type Comparator struct {
	cfg Config
}

func New(cfg Config) *Comparator {
	return &Comparator{cfg: cfg}
}

// Compare reports whether the learner's answer is fully correct. An
// unsolved-but-consistent equation is not correct here; that earns
// intermediate credit through AnalyzeProgress only.
func (c *Comparator) Compare(learner, ref string, hint Hint) bool {
	ok, _ := c.match(learner, ref, hint)
	return ok
}

// match runs the decision chain and reports which branch decided.
func (c *Comparator) match(learner, ref string, hint Hint) (bool, Method) {
	nl := mathexpr.Normalize(learner)
	nr := mathexpr.Normalize(ref)
	if nl == "" || nr == "" {
		return false, MethodNoMatch
	}

	if hint == HintFactor {
		if nl == nr {
			return true, MethodExact
		}
		if factoredEqual(learner, ref) {
			return true, MethodFactored
		}
		return false, MethodNoMatch
	}

	if nl == nr {
		return true, MethodExact
	}

	lp := mathexpr.Parse(learner)
	rp := mathexpr.Parse(ref)
	if lp.Kind != mathexpr.KindEquation &&
		lp.Value != nil && rp.Value != nil &&
		lp.Variable == rp.Variable &&
		math.Abs(*lp.Value-*rp.Value) < c.cfg.Tolerance {
		return true, MethodNumeric
	}

	if matched, applicable := c.plusMinusCompare(learner, ref); applicable {
		if matched {
			return true, MethodPlusMinus
		}
		return false, MethodNoMatch
	}

	dl := mathexpr.FractionsToDecimal(nl)
	dr := mathexpr.FractionsToDecimal(nr)
	if dl == dr {
		return true, MethodNumeric
	}

	if strings.Contains(dl, "x") && strings.Contains(dr, "x") {
		if polynomialSimilarity(learner, ref) >= c.cfg.PolynomialAccept {
			return true, MethodPolynomial
		}
		return false, MethodNoMatch
	}

	if v1, ok1 := stripNumeric(dl); ok1 {
		if v2, ok2 := stripNumeric(dr); ok2 && math.Abs(v1-v2) < c.cfg.Tolerance {
			return true, MethodPartial
		}
	}

	return false, MethodNoMatch
}

// Similarity scores the answer 0..100 for partial credit.
func (c *Comparator) Similarity(learner, ref string, hint Hint) int {
	nl := mathexpr.Normalize(learner)
	nr := mathexpr.Normalize(ref)
	if nl == "" || nr == "" {
		return 0
	}

	if hint == HintFactor {
		if factoredEqual(learner, ref) {
			return 100
		}
		return c.factoredSimilarity(learner, ref)
	}

	if ok, _ := c.match(learner, ref, hint); ok {
		return 100
	}

	if strings.Contains(nl, "x") || strings.Contains(nr, "x") {
		return polynomialSimilarity(learner, ref)
	}

	return int(roundHalf(charOverlap(nl, nr) * 100))
}

// AnalyzeProgress is the rich per-keystroke verdict. Callers keep
// feedback monotone across keystrokes with MergeStatus.
func (c *Comparator) AnalyzeProgress(learner, ref string, hint Hint) Result {
	nl := mathexpr.Normalize(learner)
	nr := mathexpr.Normalize(ref)
	if nl == "" {
		return Result{Status: StatusEmpty, Method: MethodNoMatch}
	}

	if ok, method := c.match(learner, ref, hint); ok {
		return Result{
			Status:     StatusCorrect,
			Method:     method,
			Similarity: 100,
			Message:    msgCorrect,
			IsCorrect:  true,
		}
	}

	sim := c.Similarity(learner, ref, hint)
	lp := mathexpr.Parse(learner)
	rp := mathexpr.Parse(ref)

	if lp.Kind == mathexpr.KindEquation &&
		lp.Value != nil && rp.Value != nil &&
		math.Abs(*lp.Value-*rp.Value) < c.cfg.Tolerance {
		if sim < c.cfg.IntermediateFloor {
			sim = c.cfg.IntermediateFloor
		}
		return Result{
			Status:     StatusIntermediate,
			Method:     MethodPartial,
			Similarity: sim,
			Message:    msgIntermediate,
			IsPartial:  true,
		}
	}

	status := StatusTyping
	if lp.Value != nil && rp.Value != nil && *rp.Value != 0 {
		pct := math.Abs(*lp.Value-*rp.Value) / math.Abs(*rp.Value) * 100
		switch {
		case pct < c.cfg.AlmostPercent:
			status = StatusAlmost
		case pct < c.cfg.ProgressPercent:
			status = StatusProgress
		}
	} else if sim >= 50 {
		status = StatusProgress
	}

	if sim < c.cfg.EngagementFloor && charOverlap(nl, nr) > 0 {
		sim = c.cfg.EngagementFloor
	}

	return Result{
		Status:     status,
		Method:     MethodNoMatch,
		Similarity: sim,
		Message:    statusMessage(status),
		IsPartial:  status == StatusProgress || status == StatusAlmost,
	}
}

const (
	msgCorrect      = "התשובה נכונה!"
	msgIntermediate = "צעד נכון בדרך! עכשיו בודד את המשתנה"
	msgAlmost       = "קרוב מאוד! בדוק שוב את החישוב"
	msgProgress     = "אתה בכיוון הנכון, המשך!"
	msgTyping       = "ממשיכים לנסות..."
)

func statusMessage(s Status) string {
	switch s {
	case StatusAlmost:
		return msgAlmost
	case StatusProgress:
		return msgProgress
	case StatusTyping:
		return msgTyping
	default:
		return ""
	}
}

var (
	pmValueRe    = regexp.MustCompile(`±(\d+(?:\.\d+)?)`)
	signedNumRe  = regexp.MustCompile(`-?\d+(?:\.\d+)?`)
	nonNumericRe = regexp.MustCompile(`[^0-9.\-]`)
	leadingNumRe = regexp.MustCompile(`^-?\d*\.?\d+`)
)

// plusMinusCompare accepts the two roots of a quadratic in any of
// their surface forms: "x=±5" matches "x=5,x=-5", "x=5 or x=-5", and
// any plus-minus spelling on either side. Once either side declares a
// ± the verdict is final; letting "x=±3" fall through to fuzzy
// similarity against "x=±5" would score a near-perfect overlap and
// accept a wrong root.
func (c *Comparator) plusMinusCompare(learner, ref string) (matched, applicable bool) {
	l := mathexpr.NormalizePlusMinus(learner)
	r := mathexpr.NormalizePlusMinus(ref)

	lv := pmValue(l)
	rv := pmValue(r)
	switch {
	case lv != nil && rv != nil:
		return math.Abs(*lv-*rv) < c.cfg.Tolerance, true
	case lv != nil:
		return c.enumeratesBothRoots(r, *lv), true
	case rv != nil:
		return c.enumeratesBothRoots(l, *rv), true
	}
	return false, false
}

// pmValue reads the numeric value after the first ± sign, if any.
func pmValue(s string) *float64 {
	m := pmValueRe.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	return &v
}

// enumeratesBothRoots reports whether s spells out both +v and -v, the
// enumerated form of a ± solution set. Values are compared as whole
// numeric tokens, never substrings, so the 5 inside 15 does not count
// as a root and a duplicated root does not stand in for the missing one.
func (c *Comparator) enumeratesBothRoots(s string, v float64) bool {
	var pos, neg bool
	for _, tok := range signedNumRe.FindAllString(s, -1) {
		n, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			continue
		}
		switch {
		case math.Abs(n-v) < c.cfg.Tolerance:
			pos = true
		case math.Abs(n+v) < c.cfg.Tolerance:
			neg = true
		}
	}
	return pos && neg
}

// stripNumeric drops everything but digits, dots and minus signs, then
// reads the leading number. Forgiving on purpose: it rescues answers
// wrapped in scaffolding like "x = 0.57".
func stripNumeric(s string) (float64, bool) {
	stripped := nonNumericRe.ReplaceAllString(s, "")
	m := leadingNumRe.FindString(stripped)
	if m == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
