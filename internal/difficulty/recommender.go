// Package difficulty turns a performance snapshot into a difficulty
// recommendation. The policy is a guarded-rule list evaluated top to
// bottom; rules are mutually exclusive by construction, so each can be
// tested on its own.
package difficulty

import (
	"github.com/abhisek/gradex/internal/metrics"
)

// Reason codes for a recommendation.
const (
	ReasonInsufficientData  = "insufficient_data"
	ReasonMastery           = "mastery"
	ReasonReadyForChallenge = "ready_for_challenge"
	ReasonMaintainMedium    = "maintain_medium"
	ReasonNeedsFoundation   = "needs_foundation"
	ReasonStruggling        = "struggling"
	ReasonMildStruggle      = "mild_struggle"
	ReasonOptimalLevel      = "optimal_level"
	ReasonTrendingUp        = "trending_up"
	ReasonTrendingDown      = "trending_down"
)

// User-facing copy, kept in the platform's language.
const (
	msgInsufficientData  = "התחל מרמת בינוני - נאסוף עוד מידע"
	msgMastery           = "🔥 אתה שולט בחומר! שומרים על רמת קושי גבוהה"
	msgReadyForChallenge = "🚀 מצוין! זמן לעבור לשאלות קשות יותר"
	msgMaintainMedium    = "💪 ביצועים טובים! ממשיכים ברמת בינוני"
	msgNeedsFoundation   = "🤗 בואו נתחיל מהבסיס - אין בושה בזה!"
	msgStruggling        = "💙 בואו ניקח צעד אחורה ונחזק את הבסיס"
	msgMildStruggle      = "💪 קצת מאתגר? ממשיכים ברמת בינוני"
	msgOptimalLevel      = "✨ אתה ברמה המושלמת! ממשיכים כך"
	msgTrendingUp        = "📈 אני רואה שיפור! בואו נעלה רמה"
	msgTrendingDown      = "📉 בואו נתאמן עוד קצת ברמת בינוני"
	msgStaySame          = "ממשיכים באותה רמה"
)

// Details carries the evidence behind a recommendation so the UI can
// explain itself.
type Details struct {
	RecentAccuracy  int
	OverallAccuracy int
	Streak          metrics.Streak
	Trend           metrics.Trend
	Breakdown       map[metrics.Level]metrics.BucketStats
	QuestionsNeeded int
}

// Recommendation is one policy verdict. Constructed fresh per call,
// never persisted here.
type Recommendation struct {
	Level      metrics.Level
	Reason     string
	Confidence int
	Message    string
	Details    Details
}

// Adjustment is the mid-session verdict from ShouldAdjust.
type Adjustment struct {
	ShouldAdjust bool
	NewLevel     metrics.Level
	Current      metrics.Level
	Reason       string
	Confidence   int
}

// Recommender evaluates the policy. Stateless; safe for concurrent
// use.
type Recommender struct {
	cfg Config
}

func New(cfg Config) *Recommender {
	return &Recommender{cfg: cfg}
}

// rule pairs a guard with its outcome. The first rule whose guard
// fires decides.
type rule struct {
	when func(p metrics.Performance) bool
	pick func(p metrics.Performance) Recommendation
}

func (r *Recommender) rules() []rule {
	cfg := r.cfg
	escalating := func(p metrics.Performance) bool {
		return p.RecentAccuracy >= cfg.EscalateAccuracy ||
			(p.Streak.Type == "correct" && p.Streak.Count >= cfg.EscalateStreak)
	}
	deescalating := func(p metrics.Performance) bool {
		return p.RecentAccuracy < cfg.DeescalateAccuracy ||
			(p.Streak.Type == "incorrect" && p.Streak.Count >= cfg.DeescalateStreak)
	}

	return []rule{
		{
			when: func(p metrics.Performance) bool { return !p.HasEnoughData },
			pick: func(p metrics.Performance) Recommendation {
				rec := recommendation(metrics.LevelMedium, ReasonInsufficientData, 30, msgInsufficientData, p)
				rec.Details.QuestionsNeeded = cfg.MinQuestions - p.TotalQuestions
				return rec
			},
		},
		{
			when: func(p metrics.Performance) bool {
				hard := p.DifficultyBreakdown[metrics.LevelHard]
				return escalating(p) && hard.Total > 0 && hard.Accuracy >= cfg.HardMasteryAccuracy
			},
			pick: func(p metrics.Performance) Recommendation {
				return recommendation(metrics.LevelHard, ReasonMastery, 95, msgMastery, p)
			},
		},
		{
			when: func(p metrics.Performance) bool {
				med := p.DifficultyBreakdown[metrics.LevelMedium]
				return escalating(p) && med.Total > 0 && med.Accuracy >= cfg.MediumReadyAccuracy
			},
			pick: func(p metrics.Performance) Recommendation {
				return recommendation(metrics.LevelHard, ReasonReadyForChallenge, 85, msgReadyForChallenge, p)
			},
		},
		{
			when: escalating,
			pick: func(p metrics.Performance) Recommendation {
				return recommendation(metrics.LevelMedium, ReasonMaintainMedium, 75, msgMaintainMedium, p)
			},
		},
		{
			when: func(p metrics.Performance) bool {
				easy := p.DifficultyBreakdown[metrics.LevelEasy]
				return deescalating(p) && easy.Total > 0 && easy.Accuracy < cfg.EasyFoundationAccuracy
			},
			pick: func(p metrics.Performance) Recommendation {
				return recommendation(metrics.LevelEasy, ReasonNeedsFoundation, 90, msgNeedsFoundation, p)
			},
		},
		{
			when: func(p metrics.Performance) bool {
				return deescalating(p) && p.RecentAccuracy < cfg.StrugglingAccuracy
			},
			pick: func(p metrics.Performance) Recommendation {
				return recommendation(metrics.LevelEasy, ReasonStruggling, 85, msgStruggling, p)
			},
		},
		{
			when: deescalating,
			pick: func(p metrics.Performance) Recommendation {
				return recommendation(metrics.LevelMedium, ReasonMildStruggle, 70, msgMildStruggle, p)
			},
		},
		{
			when: func(p metrics.Performance) bool { return true },
			pick: func(p metrics.Performance) Recommendation {
				return recommendation(mostFrequent(p.RecentDifficulties), ReasonOptimalLevel, 80, msgOptimalLevel, p)
			},
		},
	}
}

// Recommend evaluates the rule list, then applies the trend override:
// clear momentum pulls an extreme recommendation back toward medium so
// the regime logic cannot freeze a learner at easy or hard.
func (r *Recommender) Recommend(p metrics.Performance) Recommendation {
	var rec Recommendation
	for _, rule := range r.rules() {
		if rule.when(p) {
			rec = rule.pick(p)
			break
		}
	}

	if rec.Reason == ReasonInsufficientData {
		return rec
	}

	switch {
	case p.TrendDirection == metrics.TrendImproving && rec.Level == metrics.LevelEasy:
		rec.Level = metrics.LevelMedium
		rec.Reason = ReasonTrendingUp
		rec.Message = msgTrendingUp
	case p.TrendDirection == metrics.TrendDeclining && rec.Level == metrics.LevelHard:
		rec.Level = metrics.LevelMedium
		rec.Reason = ReasonTrendingDown
		rec.Message = msgTrendingDown
	}
	return rec
}

// ShouldAdjust decides whether to change difficulty mid-session:
// only when the recommendation disagrees with the active level and is
// confident enough.
func (r *Recommender) ShouldAdjust(current metrics.Level, rec Recommendation) Adjustment {
	if rec.Level != current && rec.Confidence >= r.cfg.AdjustConfidence {
		return Adjustment{
			ShouldAdjust: true,
			NewLevel:     rec.Level,
			Current:      current,
			Reason:       rec.Message,
			Confidence:   rec.Confidence,
		}
	}
	return Adjustment{
		Current: current,
		Reason:  msgStaySame,
	}
}

func recommendation(level metrics.Level, reason string, confidence int, message string, p metrics.Performance) Recommendation {
	return Recommendation{
		Level:      level,
		Reason:     reason,
		Confidence: confidence,
		Message:    message,
		Details: Details{
			RecentAccuracy:  p.RecentAccuracy,
			OverallAccuracy: p.OverallAccuracy,
			Streak:          p.Streak,
			Trend:           p.TrendDirection,
			Breakdown:       p.DifficultyBreakdown,
		},
	}
}

// mostFrequent picks the mode of the recent difficulties; ties go to
// the earliest (newest) entry. Empty input means medium.
func mostFrequent(levels []metrics.Level) metrics.Level {
	if len(levels) == 0 {
		return metrics.LevelMedium
	}
	freq := map[metrics.Level]int{}
	best := levels[0]
	max := 0
	for _, l := range levels {
		freq[l]++
		if freq[l] > max {
			max = freq[l]
			best = l
		}
	}
	return best
}
