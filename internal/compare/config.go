package compare

// Config holds the comparator thresholds. The defaults reproduce the
// grading behavior the platform has always had; changing any of them
// changes which answers get credit, so treat them as pedagogy, not
// tuning knobs.
type Config struct {
	// Tolerance is the absolute numeric tolerance. Display rounds to
	// two decimals downstream, so 0.01 is the matching grain.
	Tolerance float64

	// PolynomialAccept is the minimum polynomial-similarity score at
	// which two variable expressions count as equivalent.
	PolynomialAccept int

	// FactorCreditCap caps proportional factoring credit below 100 so
	// a correct-but-incomplete factor set still reads as unfinished.
	FactorCreditCap int

	// EngagementFloor is the minimum similarity reported for a wrong
	// answer that still shows some character overlap with the
	// reference. Keeps near-miss typos from flashing zero credit.
	EngagementFloor int

	// AlmostPercent and ProgressPercent are the percent-error bands
	// for live feedback classification.
	AlmostPercent   float64
	ProgressPercent float64

	// IntermediateFloor is the minimum similarity attached to a valid
	// unsolved working step.
	IntermediateFloor int
}

func DefaultConfig() Config {
	return Config{
		Tolerance:         0.01,
		PolynomialAccept:  95,
		FactorCreditCap:   70,
		EngagementFloor:   20,
		AlmostPercent:     5,
		ProgressPercent:   20,
		IntermediateFloor: 80,
	}
}
