// Package metrics derives a learner performance snapshot from a rolling
// attempt history. Everything here is recomputed per call from the
// supplied history; nothing is cached across calls.
package metrics

import (
	"math"
	"time"
)

// Level is a question difficulty bucket.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

// ParseLevel reads a stored difficulty string. Anything unrecognized
// lands on medium, matching how untagged attempts are bucketed.
func ParseLevel(s string) Level {
	switch Level(s) {
	case LevelEasy, LevelMedium, LevelHard:
		return Level(s)
	default:
		return LevelMedium
	}
}

// Label is the user-facing Hebrew name of the level.
func (l Level) Label() string {
	switch l {
	case LevelEasy:
		return "קל"
	case LevelHard:
		return "קשה"
	default:
		return "בינוני"
	}
}

// Emoji is the traffic-light marker shown next to the label.
func (l Level) Emoji() string {
	switch l {
	case LevelEasy:
		return "🟢"
	case LevelHard:
		return "🔴"
	default:
		return "🟡"
	}
}

// AttemptRecord is one graded attempt as supplied by the history
// store, newest first.
type AttemptRecord struct {
	Correct    bool
	Difficulty Level
	Topic      string
	Subtopic   string
	Timestamp  time.Time
}

// Streak is the run of identical outcomes at the head of the history.
type Streak struct {
	Count int
	Type  string // "correct", "incorrect", or "" with no history
}

// BucketStats tallies one difficulty bucket over the whole history.
type BucketStats struct {
	Total    int
	Correct  int
	Accuracy int
}

// Trend classifies the accuracy slope between the two halves of the
// history.
type Trend string

const (
	TrendImproving Trend = "improving"
	TrendDeclining Trend = "declining"
	TrendStable    Trend = "stable"
)

// Activity summarizes how recently the learner has been practicing.
type Activity struct {
	TodayQuestions int
	LastActivity   time.Time
	IsActive       bool
}

// Performance is the full derived snapshot the recommender consumes.
type Performance struct {
	TotalQuestions      int
	OverallAccuracy     int
	RecentAccuracy      int
	Streak              Streak
	DifficultyBreakdown map[Level]BucketStats
	TrendDirection      Trend
	RecentDifficulties  []Level
	Activity            Activity
	HasEnoughData       bool
}

// Config holds the aggregation windows.
type Config struct {
	// RecentWindow bounds the recent-accuracy sample.
	RecentWindow int
	// MinQuestions is the floor below which HasEnoughData is false.
	MinQuestions int
	// TrendMinSamples is the smallest history for which a trend is
	// computed at all.
	TrendMinSamples int
	// TrendDeadband is the accuracy-point gap either half must open
	// before the trend leaves stable. Hysteresis against flapping.
	TrendDeadband float64
	// ActivityWindow is the lookback for "practiced today".
	ActivityWindow time.Duration
	// HistoryCap truncates oversized histories defensively.
	HistoryCap int
}

func DefaultConfig() Config {
	return Config{
		RecentWindow:    10,
		MinQuestions:    3,
		TrendMinSamples: 6,
		TrendDeadband:   15,
		ActivityWindow:  24 * time.Hour,
		HistoryCap:      50,
	}
}

// Aggregator computes Performance snapshots.
type Aggregator struct {
	cfg Config
}

func New(cfg Config) *Aggregator {
	return &Aggregator{cfg: cfg}
}

// Aggregate derives the snapshot from a newest-first history.
func (a *Aggregator) Aggregate(history []AttemptRecord) Performance {
	return a.AggregateAt(history, time.Now())
}

// AggregateAt is Aggregate with an explicit clock.
func (a *Aggregator) AggregateAt(history []AttemptRecord, now time.Time) Performance {
	if len(history) > a.cfg.HistoryCap {
		history = history[:a.cfg.HistoryCap]
	}
	if len(history) == 0 {
		return Performance{
			DifficultyBreakdown: emptyBreakdown(),
			TrendDirection:      TrendStable,
		}
	}

	recent := history
	if len(recent) > a.cfg.RecentWindow {
		recent = recent[:a.cfg.RecentWindow]
	}

	recentDifficulties := make([]Level, len(recent))
	for i, r := range recent {
		recentDifficulties[i] = ParseLevel(string(r.Difficulty))
	}

	return Performance{
		TotalQuestions:      len(history),
		OverallAccuracy:     accuracy(history),
		RecentAccuracy:      accuracy(recent),
		Streak:              streak(history),
		DifficultyBreakdown: breakdown(history),
		TrendDirection:      a.trend(history),
		RecentDifficulties:  recentDifficulties,
		Activity:            a.activity(history, now),
		HasEnoughData:       len(history) >= a.cfg.MinQuestions,
	}
}

func accuracy(records []AttemptRecord) int {
	return int(math.Round(rawAccuracy(records)))
}

func rawAccuracy(records []AttemptRecord) float64 {
	if len(records) == 0 {
		return 0
	}
	correct := 0
	for _, r := range records {
		if r.Correct {
			correct++
		}
	}
	return float64(correct) / float64(len(records)) * 100
}

// streak counts the run of identical outcomes from the newest record
// back.
func streak(history []AttemptRecord) Streak {
	head := history[0].Correct
	count := 0
	for _, r := range history {
		if r.Correct != head {
			break
		}
		count++
	}
	typ := "incorrect"
	if head {
		typ = "correct"
	}
	return Streak{Count: count, Type: typ}
}

func emptyBreakdown() map[Level]BucketStats {
	return map[Level]BucketStats{
		LevelEasy:   {},
		LevelMedium: {},
		LevelHard:   {},
	}
}

// breakdown tallies the entire history, not just the recent window.
// Untagged difficulties count as medium.
func breakdown(history []AttemptRecord) map[Level]BucketStats {
	out := emptyBreakdown()
	for _, r := range history {
		level := ParseLevel(string(r.Difficulty))
		b := out[level]
		b.Total++
		if r.Correct {
			b.Correct++
		}
		out[level] = b
	}
	for level, b := range out {
		if b.Total > 0 {
			b.Accuracy = int(math.Round(float64(b.Correct) / float64(b.Total) * 100))
			out[level] = b
		}
	}
	return out
}

// trend compares the newer half of the history against the older half.
// History is newest-first, so the first half is the recent one.
func (a *Aggregator) trend(history []AttemptRecord) Trend {
	if len(history) < a.cfg.TrendMinSamples {
		return TrendStable
	}
	mid := len(history) / 2
	diff := rawAccuracy(history[:mid]) - rawAccuracy(history[mid:])
	switch {
	case diff > a.cfg.TrendDeadband:
		return TrendImproving
	case diff < -a.cfg.TrendDeadband:
		return TrendDeclining
	default:
		return TrendStable
	}
}

func (a *Aggregator) activity(history []AttemptRecord, now time.Time) Activity {
	today := 0
	for _, r := range history {
		if now.Sub(r.Timestamp) <= a.cfg.ActivityWindow {
			today++
		}
	}
	return Activity{
		TodayQuestions: today,
		LastActivity:   history[0].Timestamp,
		IsActive:       today > 0,
	}
}
