// Package oracle cross-checks symbolic answers (derivatives, integrals,
// factorizations) against an external math engine. The oracle is
// opportunistic: grading never requires it, and callers fall back to
// the local comparator whenever it is unavailable.
package oracle

import "context"

// Operation names the symbolic transformation to evaluate.
type Operation string

const (
	OpDerive    Operation = "derive"
	OpIntegrate Operation = "integrate"
	OpSimplify  Operation = "simplify"
	OpFactor    Operation = "factor"
	OpZeroes    Operation = "zeroes"
)

// Oracle evaluates one symbolic operation and returns the canonical
// result expression.
type Oracle interface {
	// Evaluate applies op to expression. The returned string is the
	// engine's canonical form, suitable for feeding back into the
	// local comparator.
	Evaluate(ctx context.Context, op Operation, expression string) (string, error)

	// Name identifies the backing engine for logging.
	Name() string
}

// CacheKey is the canonical cache key for one evaluation.
func CacheKey(op Operation, expression string) string {
	return string(op) + ":" + expression
}
