package difficulty

import (
	"testing"

	"github.com/abhisek/gradex/internal/metrics"
)

// perf builds a snapshot with sensible defaults for rule isolation.
func perf(mutate func(*metrics.Performance)) metrics.Performance {
	p := metrics.Performance{
		TotalQuestions: 20,
		RecentAccuracy: 60,
		Streak:         metrics.Streak{Count: 1, Type: "correct"},
		DifficultyBreakdown: map[metrics.Level]metrics.BucketStats{
			metrics.LevelEasy:   {},
			metrics.LevelMedium: {},
			metrics.LevelHard:   {},
		},
		TrendDirection:     metrics.TrendStable,
		RecentDifficulties: []metrics.Level{metrics.LevelMedium},
		HasEnoughData:      true,
	}
	if mutate != nil {
		mutate(&p)
	}
	return p
}

func bucket(total, correct, accuracy int) metrics.BucketStats {
	return metrics.BucketStats{Total: total, Correct: correct, Accuracy: accuracy}
}

func TestRecommendInsufficientData(t *testing.T) {
	r := New(DefaultConfig())
	rec := r.Recommend(perf(func(p *metrics.Performance) {
		p.HasEnoughData = false
		p.TotalQuestions = 2
		p.RecentAccuracy = 100
	}))
	if rec.Level != metrics.LevelMedium || rec.Reason != ReasonInsufficientData || rec.Confidence != 30 {
		t.Errorf("got %+v", rec)
	}
	if rec.Details.QuestionsNeeded != 1 {
		t.Errorf("questions needed = %d, want 1", rec.Details.QuestionsNeeded)
	}
}

func TestRecommendMastery(t *testing.T) {
	r := New(DefaultConfig())
	rec := r.Recommend(perf(func(p *metrics.Performance) {
		p.RecentAccuracy = 90
		p.DifficultyBreakdown[metrics.LevelHard] = bucket(5, 4, 75)
	}))
	if rec.Level != metrics.LevelHard || rec.Reason != ReasonMastery || rec.Confidence != 95 {
		t.Errorf("got %+v", rec)
	}
}

func TestRecommendMasteryViaStreak(t *testing.T) {
	r := New(DefaultConfig())
	rec := r.Recommend(perf(func(p *metrics.Performance) {
		p.RecentAccuracy = 70
		p.Streak = metrics.Streak{Count: 5, Type: "correct"}
		p.DifficultyBreakdown[metrics.LevelHard] = bucket(2, 2, 100)
	}))
	if rec.Reason != ReasonMastery {
		t.Errorf("reason = %s, want mastery", rec.Reason)
	}
}

func TestRecommendReadyForChallenge(t *testing.T) {
	r := New(DefaultConfig())
	rec := r.Recommend(perf(func(p *metrics.Performance) {
		p.RecentAccuracy = 88
		p.DifficultyBreakdown[metrics.LevelMedium] = bucket(6, 5, 85)
	}))
	if rec.Level != metrics.LevelHard || rec.Reason != ReasonReadyForChallenge || rec.Confidence != 85 {
		t.Errorf("got %+v", rec)
	}
}

func TestRecommendMaintainMedium(t *testing.T) {
	r := New(DefaultConfig())
	rec := r.Recommend(perf(func(p *metrics.Performance) {
		p.RecentAccuracy = 90
		p.DifficultyBreakdown[metrics.LevelMedium] = bucket(4, 2, 50)
	}))
	if rec.Level != metrics.LevelMedium || rec.Reason != ReasonMaintainMedium || rec.Confidence != 75 {
		t.Errorf("got %+v", rec)
	}
}

func TestRecommendNeedsFoundation(t *testing.T) {
	r := New(DefaultConfig())
	rec := r.Recommend(perf(func(p *metrics.Performance) {
		p.RecentAccuracy = 35
		p.DifficultyBreakdown[metrics.LevelEasy] = bucket(4, 2, 50)
	}))
	if rec.Level != metrics.LevelEasy || rec.Reason != ReasonNeedsFoundation || rec.Confidence != 90 {
		t.Errorf("got %+v", rec)
	}
}

func TestRecommendStruggling(t *testing.T) {
	r := New(DefaultConfig())
	rec := r.Recommend(perf(func(p *metrics.Performance) {
		p.RecentAccuracy = 25
		p.DifficultyBreakdown[metrics.LevelEasy] = bucket(4, 3, 80)
	}))
	if rec.Level != metrics.LevelEasy || rec.Reason != ReasonStruggling || rec.Confidence != 85 {
		t.Errorf("got %+v", rec)
	}
}

func TestRecommendMildStruggle(t *testing.T) {
	r := New(DefaultConfig())
	rec := r.Recommend(perf(func(p *metrics.Performance) {
		p.RecentAccuracy = 35
		p.DifficultyBreakdown[metrics.LevelEasy] = bucket(4, 3, 80)
	}))
	if rec.Level != metrics.LevelMedium || rec.Reason != ReasonMildStruggle || rec.Confidence != 70 {
		t.Errorf("got %+v", rec)
	}
}

func TestRecommendDeescalateViaStreak(t *testing.T) {
	r := New(DefaultConfig())
	rec := r.Recommend(perf(func(p *metrics.Performance) {
		p.RecentAccuracy = 50
		p.Streak = metrics.Streak{Count: 3, Type: "incorrect"}
	}))
	if rec.Reason != ReasonMildStruggle {
		t.Errorf("reason = %s, want mild_struggle", rec.Reason)
	}
}

func TestRecommendOptimalLevelUsesMode(t *testing.T) {
	r := New(DefaultConfig())
	rec := r.Recommend(perf(func(p *metrics.Performance) {
		p.RecentDifficulties = []metrics.Level{
			metrics.LevelHard, metrics.LevelHard, metrics.LevelMedium,
		}
	}))
	if rec.Level != metrics.LevelHard || rec.Reason != ReasonOptimalLevel || rec.Confidence != 80 {
		t.Errorf("got %+v", rec)
	}
}

func TestTrendOverrideUp(t *testing.T) {
	r := New(DefaultConfig())
	rec := r.Recommend(perf(func(p *metrics.Performance) {
		p.RecentAccuracy = 35
		p.DifficultyBreakdown[metrics.LevelEasy] = bucket(4, 2, 50)
		p.TrendDirection = metrics.TrendImproving
	}))
	if rec.Level != metrics.LevelMedium || rec.Reason != ReasonTrendingUp {
		t.Errorf("got %+v", rec)
	}
	if rec.Confidence != 90 {
		t.Errorf("override should keep the rule's confidence, got %d", rec.Confidence)
	}
}

func TestTrendOverrideDown(t *testing.T) {
	r := New(DefaultConfig())
	rec := r.Recommend(perf(func(p *metrics.Performance) {
		p.RecentAccuracy = 90
		p.DifficultyBreakdown[metrics.LevelHard] = bucket(5, 4, 75)
		p.TrendDirection = metrics.TrendDeclining
	}))
	if rec.Level != metrics.LevelMedium || rec.Reason != ReasonTrendingDown {
		t.Errorf("got %+v", rec)
	}
}

func TestTrendOverrideSkipsInsufficientData(t *testing.T) {
	r := New(DefaultConfig())
	rec := r.Recommend(perf(func(p *metrics.Performance) {
		p.HasEnoughData = false
		p.TrendDirection = metrics.TrendImproving
	}))
	if rec.Reason != ReasonInsufficientData || rec.Level != metrics.LevelMedium {
		t.Errorf("got %+v", rec)
	}
}

func TestShouldAdjust(t *testing.T) {
	r := New(DefaultConfig())

	confident := Recommendation{Level: metrics.LevelHard, Confidence: 85, Message: msgMastery}
	adj := r.ShouldAdjust(metrics.LevelMedium, confident)
	if !adj.ShouldAdjust || adj.NewLevel != metrics.LevelHard {
		t.Errorf("got %+v", adj)
	}

	same := Recommendation{Level: metrics.LevelMedium, Confidence: 95}
	adj = r.ShouldAdjust(metrics.LevelMedium, same)
	if adj.ShouldAdjust {
		t.Errorf("no change expected for equal level, got %+v", adj)
	}
	if adj.Reason != msgStaySame {
		t.Errorf("reason = %q", adj.Reason)
	}

	hesitant := Recommendation{Level: metrics.LevelHard, Confidence: 60}
	adj = r.ShouldAdjust(metrics.LevelMedium, hesitant)
	if adj.ShouldAdjust {
		t.Errorf("low confidence must not adjust, got %+v", adj)
	}
}

func TestMostFrequent(t *testing.T) {
	if got := mostFrequent(nil); got != metrics.LevelMedium {
		t.Errorf("empty mode = %v, want medium", got)
	}
	levels := []metrics.Level{metrics.LevelEasy, metrics.LevelHard, metrics.LevelEasy}
	if got := mostFrequent(levels); got != metrics.LevelEasy {
		t.Errorf("mode = %v, want easy", got)
	}
}
