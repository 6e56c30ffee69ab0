package metrics

import (
	"testing"
	"time"
)

// hist builds a newest-first history from outcome/difficulty pairs.
func hist(entries ...AttemptRecord) []AttemptRecord { return entries }

func attempt(correct bool, level Level) AttemptRecord {
	return AttemptRecord{Correct: correct, Difficulty: level}
}

func repeat(n int, correct bool, level Level) []AttemptRecord {
	out := make([]AttemptRecord, n)
	for i := range out {
		out[i] = attempt(correct, level)
	}
	return out
}

func TestAggregateEmpty(t *testing.T) {
	a := New(DefaultConfig())
	p := a.Aggregate(nil)
	if p.TotalQuestions != 0 || p.HasEnoughData {
		t.Errorf("got %+v", p)
	}
	if p.TrendDirection != TrendStable {
		t.Errorf("trend = %v, want stable", p.TrendDirection)
	}
	if len(p.DifficultyBreakdown) != 3 {
		t.Errorf("breakdown should carry all three buckets, got %v", p.DifficultyBreakdown)
	}
}

func TestHasEnoughData(t *testing.T) {
	a := New(DefaultConfig())
	if a.Aggregate(repeat(2, true, LevelMedium)).HasEnoughData {
		t.Error("2 attempts should not be enough")
	}
	if !a.Aggregate(repeat(3, true, LevelMedium)).HasEnoughData {
		t.Error("3 attempts should be enough")
	}
}

func TestStreakDetection(t *testing.T) {
	a := New(DefaultConfig())
	h := append(repeat(3, true, LevelMedium), attempt(false, LevelMedium), attempt(true, LevelMedium))
	p := a.Aggregate(h)
	if p.Streak.Count != 3 || p.Streak.Type != "correct" {
		t.Errorf("streak = %+v, want {3 correct}", p.Streak)
	}

	h = append(repeat(2, false, LevelEasy), attempt(true, LevelEasy))
	p = a.Aggregate(h)
	if p.Streak.Count != 2 || p.Streak.Type != "incorrect" {
		t.Errorf("streak = %+v, want {2 incorrect}", p.Streak)
	}
}

func TestRecentWindowAccuracy(t *testing.T) {
	a := New(DefaultConfig())
	// 10 correct followed by 10 older incorrect.
	h := append(repeat(10, true, LevelMedium), repeat(10, false, LevelMedium)...)
	p := a.Aggregate(h)
	if p.RecentAccuracy != 100 {
		t.Errorf("recent accuracy = %d, want 100", p.RecentAccuracy)
	}
	if p.OverallAccuracy != 50 {
		t.Errorf("overall accuracy = %d, want 50", p.OverallAccuracy)
	}
}

func TestDifficultyBreakdown(t *testing.T) {
	a := New(DefaultConfig())
	h := hist(
		attempt(true, LevelHard),
		attempt(false, LevelHard),
		attempt(true, LevelEasy),
		attempt(true, ""), // untagged counts as medium
	)
	p := a.Aggregate(h)
	if b := p.DifficultyBreakdown[LevelHard]; b.Total != 2 || b.Correct != 1 || b.Accuracy != 50 {
		t.Errorf("hard bucket = %+v", b)
	}
	if b := p.DifficultyBreakdown[LevelEasy]; b.Total != 1 || b.Accuracy != 100 {
		t.Errorf("easy bucket = %+v", b)
	}
	if b := p.DifficultyBreakdown[LevelMedium]; b.Total != 1 {
		t.Errorf("medium bucket = %+v", b)
	}
}

func TestTrend(t *testing.T) {
	a := New(DefaultConfig())

	// Newer half all correct, older half all wrong: improving.
	h := append(repeat(4, true, LevelMedium), repeat(4, false, LevelMedium)...)
	if got := a.Aggregate(h).TrendDirection; got != TrendImproving {
		t.Errorf("trend = %v, want improving", got)
	}

	// Reversed: declining.
	h = append(repeat(4, false, LevelMedium), repeat(4, true, LevelMedium)...)
	if got := a.Aggregate(h).TrendDirection; got != TrendDeclining {
		t.Errorf("trend = %v, want declining", got)
	}

	// Inside the deadband: stable.
	h = hist(
		attempt(true, LevelMedium), attempt(true, LevelMedium), attempt(false, LevelMedium),
		attempt(true, LevelMedium), attempt(true, LevelMedium), attempt(false, LevelMedium),
	)
	if got := a.Aggregate(h).TrendDirection; got != TrendStable {
		t.Errorf("trend = %v, want stable", got)
	}

	// Too few samples: always stable.
	h = append(repeat(3, true, LevelMedium), repeat(2, false, LevelMedium)...)
	if got := a.Aggregate(h).TrendDirection; got != TrendStable {
		t.Errorf("short history trend = %v, want stable", got)
	}
}

func TestActivityWindow(t *testing.T) {
	a := New(DefaultConfig())
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	h := hist(
		AttemptRecord{Correct: true, Difficulty: LevelMedium, Timestamp: now.Add(-time.Hour)},
		AttemptRecord{Correct: true, Difficulty: LevelMedium, Timestamp: now.Add(-23 * time.Hour)},
		AttemptRecord{Correct: false, Difficulty: LevelMedium, Timestamp: now.Add(-48 * time.Hour)},
	)
	p := a.AggregateAt(h, now)
	if p.Activity.TodayQuestions != 2 || !p.Activity.IsActive {
		t.Errorf("activity = %+v", p.Activity)
	}
	if !p.Activity.LastActivity.Equal(now.Add(-time.Hour)) {
		t.Errorf("last activity = %v", p.Activity.LastActivity)
	}

	p = a.AggregateAt(h[2:], now)
	if p.Activity.IsActive {
		t.Error("stale history should not read as active")
	}
}

func TestHistoryCap(t *testing.T) {
	a := New(DefaultConfig())
	h := append(repeat(50, true, LevelMedium), repeat(30, false, LevelMedium)...)
	p := a.Aggregate(h)
	if p.TotalQuestions != 50 {
		t.Errorf("total = %d, want capped at 50", p.TotalQuestions)
	}
	if p.OverallAccuracy != 100 {
		t.Errorf("overall = %d, want 100 after cap", p.OverallAccuracy)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"easy", LevelEasy},
		{"hard", LevelHard},
		{"medium", LevelMedium},
		{"", LevelMedium},
		{"extreme", LevelMedium},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
