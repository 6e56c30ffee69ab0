package compare

// Hint tells the comparator what operation produced the reference
// answer, when the caller knows. Factoring answers are compared
// structurally rather than numerically.
type Hint string

const (
	HintNone      Hint = ""
	HintFactor    Hint = "factor"
	HintDerive    Hint = "derive"
	HintIntegrate Hint = "integrate"
)

// Method tags which comparison branch decided the outcome.
type Method string

const (
	MethodExact      Method = "exact-match"
	MethodNumeric    Method = "numeric-match"
	MethodPlusMinus  Method = "plus-minus-match"
	MethodPartial    Method = "partial-numeric"
	MethodFactored   Method = "factored-match"
	MethodPolynomial Method = "polynomial-similarity"
	MethodOracle     Method = "oracle-match"
	MethodNoMatch    Method = "no-match"
)

// Status is the live-feedback classification of an in-progress answer.
type Status int

const (
	StatusEmpty Status = iota
	StatusTyping
	StatusProgress
	StatusAlmost
	StatusIntermediate
	StatusCorrect
)

func (s Status) String() string {
	switch s {
	case StatusTyping:
		return "typing"
	case StatusProgress:
		return "progress"
	case StatusAlmost:
		return "almost"
	case StatusIntermediate:
		return "intermediate"
	case StatusCorrect:
		return "correct"
	default:
		return "empty"
	}
}

// MergeStatus keeps live feedback monotone: a learner who has already
// seen "correct" never gets walked back to "typing" by a later
// keystroke analysis. The comparator itself is stateless; callers
// thread their previous status through this.
func MergeStatus(prev, next Status) Status {
	if prev > next {
		return prev
	}
	return next
}

// Result is one comparison verdict. Constructed fresh per call, never
// mutated after return.
type Result struct {
	Status     Status
	Method     Method
	Similarity int
	Message    string
	IsCorrect  bool
	IsPartial  bool
}
