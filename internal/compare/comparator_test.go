package compare

import "testing"

func newTestComparator() *Comparator { return New(DefaultConfig()) }

func TestCompareEquivalentNotations(t *testing.T) {
	c := newTestComparator()
	tests := []struct {
		name    string
		learner string
		ref     string
		hint    Hint
		want    bool
	}{
		{"identical", "x=4/7", "x = 4/7", HintNone, true},
		{"fraction vs decimal", "0.5", "1/2", HintNone, true},
		{"decimal solution vs fraction solution", "x=0.571", "x=4/7", HintNone, true},
		{"mixed fraction vs decimal", "4 2/3", "4.6667", HintNone, true},
		{"caret vs double star", "x^2", "x**2", HintNone, true},
		{"explicit multiplication", "3*x", "3x", HintNone, true},
		{"integral constant", "x^2/2 + C", "x**2/2", HintNone, true},
		{"wrong value", "5", "7", HintNone, false},
		{"empty learner", "", "5", HintNone, false},
		{"empty reference", "5", "", HintNone, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Compare(tt.learner, tt.ref, tt.hint); got != tt.want {
				t.Errorf("Compare(%q, %q) = %v, want %v", tt.learner, tt.ref, got, tt.want)
			}
		})
	}
}

func TestCompareToleranceBoundary(t *testing.T) {
	c := newTestComparator()
	if !c.Compare("5", "5.0099", HintNone) {
		t.Error("5 vs 5.0099 should match within tolerance")
	}
	if c.Compare("5", "5.02", HintNone) {
		t.Error("5 vs 5.02 should miss tolerance")
	}
}

func TestCompareIdempotent(t *testing.T) {
	c := newTestComparator()
	for i := 0; i < 3; i++ {
		if !c.Compare("1/2", "0.5", HintNone) {
			t.Fatal("result changed across identical calls")
		}
	}
}

func TestComparePlusMinus(t *testing.T) {
	c := newTestComparator()
	tests := []struct {
		learner string
		ref     string
		want    bool
	}{
		{"x=±5", "x=5,x=-5", true},
		{"x=±5", "x=5 or x=-5", true},
		{"x=+/-5", "x=±5", true},
		{"x=plus-minus 5", "x=±5", true},
		{"x=-+5", "x=5,x=-5", true},
		{"x=±5", "x=±5.0", true},
		{"x=±5", "x=±3", false},
		{"x=±5", "x=5", false},
		{"x=15 or x=-5", "x=±5", false},
		{"x=-5, x=-5", "x=±5", false},
		{"x=±5", "x=15,x=-5", false},
	}
	for _, tt := range tests {
		if got := c.Compare(tt.learner, tt.ref, HintNone); got != tt.want {
			t.Errorf("Compare(%q, %q) = %v, want %v", tt.learner, tt.ref, got, tt.want)
		}
	}
}

func TestCompareFactored(t *testing.T) {
	c := newTestComparator()
	tests := []struct {
		learner string
		ref     string
		want    bool
	}{
		{"(x+1)(x+2)", "(x+2)(x+1)", true},
		{"2(x+3)", "2(x+3)", true},
		{"(x+1)", "(x+1)(x+2)", false},
		{"(x+3)(x+4)", "(x+1)(x+2)", false},
	}
	for _, tt := range tests {
		if got := c.Compare(tt.learner, tt.ref, HintFactor); got != tt.want {
			t.Errorf("factor Compare(%q, %q) = %v, want %v", tt.learner, tt.ref, got, tt.want)
		}
	}
}

func TestSimilarityFactorPartialCredit(t *testing.T) {
	c := newTestComparator()
	tests := []struct {
		name    string
		learner string
		ref     string
		want    int
	}{
		{"complete", "(x+1)(x+2)", "(x+2)(x+1)", 100},
		{"half the factors", "(x+1)", "(x+1)(x+2)", 35},
		{"no parens", "x+1", "(x+1)(x+2)", 0},
		{"same count wrong set", "(x+3)(x+4)", "(x+1)(x+2)", 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Similarity(tt.learner, tt.ref, HintFactor); got != tt.want {
				t.Errorf("Similarity = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSimilarityPolynomial(t *testing.T) {
	c := newTestComparator()

	sim := c.Similarity("3x**2", "2x**2", HintNone)
	if sim < 70 || sim >= 95 {
		t.Errorf("close polynomial similarity = %d, want high but below acceptance", sim)
	}
	if c.Compare("3x**2", "2x**2", HintNone) {
		t.Error("different coefficients must not compare equal")
	}

	if got := c.Similarity("x**2", "x^2", HintNone); got != 100 {
		t.Errorf("equivalent notation similarity = %d, want 100", got)
	}
}

func TestAnalyzeProgressIntermediateStep(t *testing.T) {
	c := newTestComparator()

	r := c.AnalyzeProgress("7x=4", "x=4/7", HintNone)
	if r.Status != StatusIntermediate {
		t.Fatalf("status = %v, want intermediate", r.Status)
	}
	if r.Similarity < 80 {
		t.Errorf("similarity = %d, want >= 80", r.Similarity)
	}
	if r.IsCorrect || !r.IsPartial {
		t.Errorf("flags = correct:%v partial:%v", r.IsCorrect, r.IsPartial)
	}
	if c.Compare("7x=4", "x=4/7", HintNone) {
		t.Error("unsolved equation must not grade as a final answer")
	}
}

func TestAnalyzeProgressBands(t *testing.T) {
	c := newTestComparator()
	tests := []struct {
		name    string
		learner string
		ref     string
		want    Status
	}{
		{"empty", "", "4.5", StatusEmpty},
		{"correct", "4.5", "4.5", StatusCorrect},
		{"almost within five percent", "4.6", "4.65", StatusAlmost},
		{"progress within twenty percent", "4.0", "4.5", StatusProgress},
		{"typing when far off", "9", "4.5", StatusTyping},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := c.AnalyzeProgress(tt.learner, tt.ref, HintNone)
			if r.Status != tt.want {
				t.Errorf("status = %v, want %v", r.Status, tt.want)
			}
		})
	}
}

func TestAnalyzeProgressEngagementFloor(t *testing.T) {
	c := newTestComparator()
	r := c.AnalyzeProgress("100000", "199999", HintNone)
	if r.Status != StatusTyping {
		t.Fatalf("status = %v, want typing", r.Status)
	}
	if r.Similarity != c.cfg.EngagementFloor {
		t.Errorf("similarity = %d, want engagement floor %d", r.Similarity, c.cfg.EngagementFloor)
	}
}

func TestAnalyzeProgressCorrectHasMessage(t *testing.T) {
	c := newTestComparator()
	r := c.AnalyzeProgress("1/2", "0.5", HintNone)
	if !r.IsCorrect || r.Similarity != 100 || r.Message == "" {
		t.Errorf("got %+v", r)
	}
	if r.Method != MethodNumeric {
		t.Errorf("method = %v, want numeric-match", r.Method)
	}
}

func TestMergeStatus(t *testing.T) {
	tests := []struct {
		prev, next, want Status
	}{
		{StatusCorrect, StatusTyping, StatusCorrect},
		{StatusTyping, StatusProgress, StatusProgress},
		{StatusAlmost, StatusAlmost, StatusAlmost},
		{StatusEmpty, StatusIntermediate, StatusIntermediate},
	}
	for _, tt := range tests {
		if got := MergeStatus(tt.prev, tt.next); got != tt.want {
			t.Errorf("MergeStatus(%v, %v) = %v, want %v", tt.prev, tt.next, got, tt.want)
		}
	}
}
