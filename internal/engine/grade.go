package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/gradex/internal/compare"
	"github.com/abhisek/gradex/internal/metrics"
	"github.com/abhisek/gradex/internal/oracle"
	"github.com/abhisek/gradex/internal/store"
)

// GradeRequest describes one answer to grade.
type GradeRequest struct {
	Topic      string
	Subtopic   string
	Difficulty metrics.Level

	LearnerAnswer   string
	ReferenceAnswer string
	Hint            compare.Hint

	// QuestionExpression is the expression the question was posed on.
	// When set and the hint is a derivative or integral, the answer is
	// additionally cross-checked against the oracle's own evaluation.
	QuestionExpression string
}

// GradeResult is the full verdict for one attempt.
type GradeResult struct {
	AttemptID  string
	Correct    bool
	Method     compare.Method
	Similarity int
	Message    string

	// OracleChecked reports whether an oracle cross-check ran, and
	// OracleResult holds the canonical form it produced.
	OracleChecked bool
	OracleResult  string
}

// GradeAttempt grades one answer and appends it to the attempt log.
// When the local comparator rejects a derivative or integral answer
// and an oracle is configured, the answer gets a second chance against
// the oracle's canonical result. An unreachable oracle never fails the
// grade; the local verdict stands.
func (e *Engine) GradeAttempt(ctx context.Context, req GradeRequest) (GradeResult, error) {
	if err := checkReference(req.ReferenceAnswer); err != nil {
		return GradeResult{}, err
	}
	if strings.TrimSpace(req.Topic) == "" {
		return GradeResult{}, fmt.Errorf("engine: empty topic")
	}
	if e.attempts == nil {
		return GradeResult{}, fmt.Errorf("engine: no attempt repository configured")
	}

	analysis := e.comparator.AnalyzeProgress(req.LearnerAnswer, req.ReferenceAnswer, req.Hint)
	result := GradeResult{
		Correct:    analysis.IsCorrect,
		Method:     analysis.Method,
		Similarity: analysis.Similarity,
		Message:    analysis.Message,
	}

	if !result.Correct {
		if op, ok := crossCheckOp(req.Hint); ok && e.oracle != nil && strings.TrimSpace(req.QuestionExpression) != "" {
			canonical, err := e.oracle.Evaluate(ctx, op, req.QuestionExpression)
			if err == nil {
				result.OracleChecked = true
				result.OracleResult = canonical
				verdict := e.comparator.AnalyzeProgress(req.LearnerAnswer, canonical, req.Hint)
				if verdict.IsCorrect {
					result.Correct = true
					result.Method = compare.MethodOracle
					result.Similarity = verdict.Similarity
					result.Message = verdict.Message
				}
			}
			// Oracle failures leave the local verdict in place.
		}
	}

	attemptID, err := e.attempts.AppendAttempt(ctx, store.AttemptEventData{
		Topic:           req.Topic,
		Subtopic:        req.Subtopic,
		Difficulty:      string(metrics.ParseLevel(string(req.Difficulty))),
		LearnerAnswer:   req.LearnerAnswer,
		ReferenceAnswer: req.ReferenceAnswer,
		Correct:         result.Correct,
		Method:          string(result.Method),
		Similarity:      result.Similarity,
	})
	if err != nil {
		return GradeResult{}, err
	}
	result.AttemptID = attemptID
	return result, nil
}

func crossCheckOp(hint compare.Hint) (oracle.Operation, bool) {
	switch hint {
	case compare.HintDerive:
		return oracle.OpDerive, true
	case compare.HintIntegrate:
		return oracle.OpIntegrate, true
	default:
		return "", false
	}
}
