package store

import (
	"context"
	"time"
)

// maxRecentAttempts caps how many attempts a single query returns.
const maxRecentAttempts = 50

// Attempt is one graded answer as read back from the event log.
type Attempt struct {
	Sequence        int64
	Timestamp       time.Time
	AttemptID       string
	Topic           string
	Subtopic        string
	Difficulty      string
	LearnerAnswer   string
	ReferenceAnswer string
	Correct         bool
	Method          string
	Similarity      int
}

// AttemptEventData captures everything needed to append one attempt.
// Sequence, timestamp, and attempt ID are assigned by the repository.
type AttemptEventData struct {
	Topic           string
	Subtopic        string
	Difficulty      string
	LearnerAnswer   string
	ReferenceAnswer string
	Correct         bool
	Method          string
	Similarity      int
}

// OracleRequestEventData captures the data for a single oracle call event.
type OracleRequestEventData struct {
	Provider     string
	Operation    string
	Expression   string
	Result       string
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// AttemptRepo provides append and read access to graded attempts.
type AttemptRepo interface {
	// AppendAttempt records one graded attempt and returns its
	// assigned attempt ID.
	AppendAttempt(ctx context.Context, data AttemptEventData) (string, error)

	// RecentAttempts returns attempts newest first, capped at limit
	// (at most 50). An empty topic matches all topics.
	RecentAttempts(ctx context.Context, topic string, limit int) ([]Attempt, error)
}

// EventRepo provides append access to auxiliary events.
type EventRepo interface {
	// AppendOracleRequest records an oracle API call event.
	AppendOracleRequest(ctx context.Context, data OracleRequestEventData) error
}
