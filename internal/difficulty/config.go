package difficulty

// Config holds the policy thresholds. Defaults are the platform's
// long-standing grading behavior; they are exposed for tests and
// experiments, not casual tuning.
type Config struct {
	// MinQuestions mirrors the aggregator's enough-data floor, used
	// here to report how many attempts are still missing.
	MinQuestions int

	// EscalateAccuracy and EscalateStreak open the escalate regime.
	EscalateAccuracy int
	EscalateStreak   int

	// DeescalateAccuracy and DeescalateStreak open the de-escalate
	// regime.
	DeescalateAccuracy int
	DeescalateStreak   int

	// HardMasteryAccuracy gates recommending hard on proven hard
	// performance; MediumReadyAccuracy gates the first move to hard.
	HardMasteryAccuracy int
	MediumReadyAccuracy int

	// EasyFoundationAccuracy sends a struggling learner back to
	// basics; StrugglingAccuracy is the deep-struggle cutoff.
	EasyFoundationAccuracy int
	StrugglingAccuracy     int

	// AdjustConfidence is the minimum confidence for a mid-session
	// difficulty change. The sole defense against difficulty churn.
	AdjustConfidence int
}

func DefaultConfig() Config {
	return Config{
		MinQuestions:           3,
		EscalateAccuracy:       85,
		EscalateStreak:         5,
		DeescalateAccuracy:     40,
		DeescalateStreak:       3,
		HardMasteryAccuracy:    70,
		MediumReadyAccuracy:    80,
		EasyFoundationAccuracy: 60,
		StrugglingAccuracy:     30,
		AdjustConfidence:       70,
	}
}
