package engine

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/gradex/internal/compare"
	"github.com/abhisek/gradex/internal/difficulty"
	"github.com/abhisek/gradex/internal/metrics"
	"github.com/abhisek/gradex/internal/oracle"
	"github.com/abhisek/gradex/internal/store"
)

// fakeAttemptRepo keeps attempts in memory, newest first, like the
// real repository does.
type fakeAttemptRepo struct {
	attempts []store.Attempt
	appendEr error
	nextSeq  int64
}

func (f *fakeAttemptRepo) AppendAttempt(_ context.Context, data store.AttemptEventData) (string, error) {
	if f.appendEr != nil {
		return "", f.appendEr
	}
	f.nextSeq++
	a := store.Attempt{
		Sequence:        f.nextSeq,
		Timestamp:       time.Now(),
		AttemptID:       fmt.Sprintf("attempt-%d", f.nextSeq),
		Topic:           data.Topic,
		Subtopic:        data.Subtopic,
		Difficulty:      data.Difficulty,
		LearnerAnswer:   data.LearnerAnswer,
		ReferenceAnswer: data.ReferenceAnswer,
		Correct:         data.Correct,
		Method:          data.Method,
		Similarity:      data.Similarity,
	}
	f.attempts = append([]store.Attempt{a}, f.attempts...)
	return a.AttemptID, nil
}

func (f *fakeAttemptRepo) RecentAttempts(_ context.Context, topic string, limit int) ([]store.Attempt, error) {
	if limit <= 0 || limit > 50 {
		limit = 50
	}
	var out []store.Attempt
	for _, a := range f.attempts {
		if topic != "" && a.Topic != topic {
			continue
		}
		out = append(out, a)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func TestCompareAnswersRejectsEmptyReference(t *testing.T) {
	e := New(DefaultConfig(), nil)

	_, err := e.CompareAnswers("x=4", "  ", compare.HintNone)
	require.Error(t, err)

	_, err = e.ScoreSimilarity("x=4", "", compare.HintNone)
	require.Error(t, err)

	_, err = e.AnalyzeProgress("x=4", "", compare.HintNone)
	require.Error(t, err)
}

func TestCompareAnswersStateless(t *testing.T) {
	e := New(DefaultConfig(), nil)

	ok, err := e.CompareAnswers("X = 4", "x=4", compare.HintNone)
	require.NoError(t, err)
	assert.True(t, ok)

	sim, err := e.ScoreSimilarity("x=4", "x=4", compare.HintNone)
	require.NoError(t, err)
	assert.Equal(t, 100, sim)
}

func TestGradeAttemptAppendsEvent(t *testing.T) {
	repo := &fakeAttemptRepo{}
	e := New(DefaultConfig(), repo)
	ctx := context.Background()

	res, err := e.GradeAttempt(ctx, GradeRequest{
		Topic:           "linear-equations",
		Difficulty:      metrics.LevelMedium,
		LearnerAnswer:   "x=4",
		ReferenceAnswer: "x = 4",
	})
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.NotEmpty(t, res.AttemptID)
	assert.False(t, res.OracleChecked)

	require.Len(t, repo.attempts, 1)
	assert.Equal(t, "linear-equations", repo.attempts[0].Topic)
	assert.True(t, repo.attempts[0].Correct)
	assert.Equal(t, string(compare.MethodExact), repo.attempts[0].Method)
}

func TestGradeAttemptValidation(t *testing.T) {
	e := New(DefaultConfig(), &fakeAttemptRepo{})
	ctx := context.Background()

	_, err := e.GradeAttempt(ctx, GradeRequest{
		Topic:         "t",
		LearnerAnswer: "x",
	})
	require.Error(t, err, "empty reference")

	_, err = e.GradeAttempt(ctx, GradeRequest{
		LearnerAnswer:   "x",
		ReferenceAnswer: "x",
	})
	require.Error(t, err, "empty topic")
}

func TestGradeAttemptOracleRescue(t *testing.T) {
	repo := &fakeAttemptRepo{}
	mock := oracle.NewMockOracle(oracle.MockResult{Result: "2x"})
	e := New(DefaultConfig(), repo, WithOracle(mock))
	ctx := context.Background()

	// Reference is written in a form the local comparator rejects, but
	// the oracle's canonical result matches the learner's answer.
	res, err := e.GradeAttempt(ctx, GradeRequest{
		Topic:              "derivatives",
		Difficulty:         metrics.LevelHard,
		LearnerAnswer:      "2x",
		ReferenceAnswer:    "d/dx x^2",
		Hint:               compare.HintDerive,
		QuestionExpression: "x^2",
	})
	require.NoError(t, err)
	assert.True(t, res.Correct)
	assert.Equal(t, compare.MethodOracle, res.Method)
	assert.True(t, res.OracleChecked)
	assert.Equal(t, "2x", res.OracleResult)

	require.Equal(t, 1, mock.CallCount())
	assert.Equal(t, oracle.OpDerive, mock.Calls[0].Op)
	assert.Equal(t, "x^2", mock.Calls[0].Expression)
}

func TestGradeAttemptOracleUnavailableFallsBack(t *testing.T) {
	repo := &fakeAttemptRepo{}
	mock := oracle.NewMockOracle() // empty queue yields ErrUnavailable
	e := New(DefaultConfig(), repo, WithOracle(mock))
	ctx := context.Background()

	res, err := e.GradeAttempt(ctx, GradeRequest{
		Topic:              "derivatives",
		Difficulty:         metrics.LevelHard,
		LearnerAnswer:      "3x",
		ReferenceAnswer:    "2x",
		Hint:               compare.HintDerive,
		QuestionExpression: "x^2",
	})
	require.NoError(t, err)
	assert.False(t, res.Correct)
	assert.False(t, res.OracleChecked)
	require.Len(t, repo.attempts, 1)
}

func TestGradeAttemptNoOracleForPlainAnswers(t *testing.T) {
	mock := oracle.NewMockOracle(oracle.MockResult{Result: "never used"})
	e := New(DefaultConfig(), &fakeAttemptRepo{}, WithOracle(mock))
	ctx := context.Background()

	_, err := e.GradeAttempt(ctx, GradeRequest{
		Topic:           "fractions",
		LearnerAnswer:   "1/3",
		ReferenceAnswer: "1/2",
	})
	require.NoError(t, err)
	assert.Equal(t, 0, mock.CallCount())
}

func TestRecommendDifficultyFromStore(t *testing.T) {
	repo := &fakeAttemptRepo{}
	e := New(DefaultConfig(), repo)
	ctx := context.Background()

	// Ten correct medium answers: ready for challenge.
	for i := 0; i < 10; i++ {
		_, err := e.GradeAttempt(ctx, GradeRequest{
			Topic:           "quadratics",
			Difficulty:      metrics.LevelMedium,
			LearnerAnswer:   "x=4",
			ReferenceAnswer: "x=4",
		})
		require.NoError(t, err)
	}

	rec, err := e.RecommendDifficulty(ctx, "quadratics")
	require.NoError(t, err)
	assert.Equal(t, metrics.LevelHard, rec.Level)
	assert.Equal(t, difficulty.ReasonReadyForChallenge, rec.Reason)
}

func TestRecommendDifficultyRequiresRepo(t *testing.T) {
	e := New(DefaultConfig(), nil)
	_, err := e.RecommendDifficulty(context.Background(), "any")
	require.Error(t, err)
}

func TestRecommendFromHistoryPure(t *testing.T) {
	e := New(DefaultConfig(), nil)

	rec := e.RecommendFromHistory(nil)
	assert.Equal(t, difficulty.ReasonInsufficientData, rec.Reason)
	assert.Equal(t, metrics.LevelMedium, rec.Level)
}

func TestShouldAdjustEndToEnd(t *testing.T) {
	repo := &fakeAttemptRepo{}
	e := New(DefaultConfig(), repo)
	ctx := context.Background()

	for i := 0; i < 10; i++ {
		_, err := e.GradeAttempt(ctx, GradeRequest{
			Topic:           "quadratics",
			Difficulty:      metrics.LevelMedium,
			LearnerAnswer:   "x=4",
			ReferenceAnswer: "x=4",
		})
		require.NoError(t, err)
	}

	adj, err := e.ShouldAdjust(ctx, metrics.LevelMedium, "quadratics")
	require.NoError(t, err)
	assert.True(t, adj.ShouldAdjust)
	assert.Equal(t, metrics.LevelHard, adj.NewLevel)
}
