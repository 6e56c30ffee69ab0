package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/abhisek/gradex/internal/compare"
	"github.com/abhisek/gradex/internal/difficulty"
	"github.com/abhisek/gradex/internal/metrics"
	"github.com/abhisek/gradex/internal/oracle"
	"github.com/abhisek/gradex/internal/store"
)

// Config bundles the tunables of the underlying packages.
type Config struct {
	Compare    compare.Config
	Metrics    metrics.Config
	Difficulty difficulty.Config
}

// DefaultConfig returns the standard engine configuration.
func DefaultConfig() Config {
	return Config{
		Compare:    compare.DefaultConfig(),
		Metrics:    metrics.DefaultConfig(),
		Difficulty: difficulty.DefaultConfig(),
	}
}

// Engine is the single entry point for grading answers and
// recommending difficulty. The comparator and recommender are pure;
// the attempt repository and oracle are the only I/O dependencies.
type Engine struct {
	comparator  *compare.Comparator
	aggregator  *metrics.Aggregator
	recommender *difficulty.Recommender
	attempts    store.AttemptRepo
	oracle      oracle.Oracle
}

// Option configures optional Engine dependencies.
type Option func(*Engine)

// WithOracle attaches a verification oracle used to cross-check
// derivative and integral answers during grading.
func WithOracle(o oracle.Oracle) Option {
	return func(e *Engine) { e.oracle = o }
}

// New creates an Engine. The attempt repository may be nil for purely
// stateless use (CompareAnswers, ScoreSimilarity, AnalyzeProgress,
// RecommendFromHistory).
func New(cfg Config, attempts store.AttemptRepo, opts ...Option) *Engine {
	e := &Engine{
		comparator:  compare.New(cfg.Compare),
		aggregator:  metrics.New(cfg.Metrics),
		recommender: difficulty.New(cfg.Difficulty),
		attempts:    attempts,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CompareAnswers reports whether the learner's answer matches the
// reference under notation-tolerant comparison.
func (e *Engine) CompareAnswers(learner, reference string, hint compare.Hint) (bool, error) {
	if err := checkReference(reference); err != nil {
		return false, err
	}
	return e.comparator.Compare(learner, reference, hint), nil
}

// ScoreSimilarity returns the 0-100 partial-credit score for the
// learner's answer against the reference.
func (e *Engine) ScoreSimilarity(learner, reference string, hint compare.Hint) (int, error) {
	if err := checkReference(reference); err != nil {
		return 0, err
	}
	return e.comparator.Similarity(learner, reference, hint), nil
}

// AnalyzeProgress classifies an in-progress answer for live feedback.
func (e *Engine) AnalyzeProgress(learner, reference string, hint compare.Hint) (compare.Result, error) {
	if err := checkReference(reference); err != nil {
		return compare.Result{}, err
	}
	return e.comparator.AnalyzeProgress(learner, reference, hint), nil
}

// RecommendFromHistory aggregates a caller-supplied attempt history
// and returns a difficulty recommendation. Pure variant of
// RecommendDifficulty for callers that hold their own history.
func (e *Engine) RecommendFromHistory(history []metrics.AttemptRecord) difficulty.Recommendation {
	return e.recommender.Recommend(e.aggregator.Aggregate(history))
}

// RecommendDifficulty loads the learner's recent attempts for a topic
// (empty topic means all topics) and returns a recommendation.
func (e *Engine) RecommendDifficulty(ctx context.Context, topic string) (difficulty.Recommendation, error) {
	perf, err := e.loadPerformance(ctx, topic)
	if err != nil {
		return difficulty.Recommendation{}, err
	}
	return e.recommender.Recommend(perf), nil
}

// ShouldAdjust reports whether the learner should move off the current
// difficulty level mid-session.
func (e *Engine) ShouldAdjust(ctx context.Context, current metrics.Level, topic string) (difficulty.Adjustment, error) {
	perf, err := e.loadPerformance(ctx, topic)
	if err != nil {
		return difficulty.Adjustment{}, err
	}
	rec := e.recommender.Recommend(perf)
	return e.recommender.ShouldAdjust(current, rec), nil
}

// Performance aggregates the stored history for a topic into the full
// metrics view.
func (e *Engine) Performance(ctx context.Context, topic string) (metrics.Performance, error) {
	return e.loadPerformance(ctx, topic)
}

func (e *Engine) loadPerformance(ctx context.Context, topic string) (metrics.Performance, error) {
	if e.attempts == nil {
		return metrics.Performance{}, fmt.Errorf("engine: no attempt repository configured")
	}
	attempts, err := e.attempts.RecentAttempts(ctx, topic, 0)
	if err != nil {
		return metrics.Performance{}, fmt.Errorf("load attempts: %w", err)
	}
	history := make([]metrics.AttemptRecord, 0, len(attempts))
	for _, a := range attempts {
		history = append(history, metrics.AttemptRecord{
			Correct:    a.Correct,
			Difficulty: metrics.ParseLevel(a.Difficulty),
			Topic:      a.Topic,
			Subtopic:   a.Subtopic,
			Timestamp:  a.Timestamp,
		})
	}
	return e.aggregator.Aggregate(history), nil
}

func checkReference(reference string) error {
	if strings.TrimSpace(reference) == "" {
		return fmt.Errorf("engine: empty reference answer")
	}
	return nil
}
