package store

import (
	"context"
	"fmt"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestAppendAttemptAssignsIDAndSequence(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	id1, err := repo.AppendAttempt(ctx, AttemptEventData{
		Topic:           "linear-equations",
		Difficulty:      "medium",
		LearnerAnswer:   "x=4",
		ReferenceAnswer: "x=4",
		Correct:         true,
		Method:          "exact-match",
		Similarity:      100,
	})
	if err != nil {
		t.Fatalf("append 1: %v", err)
	}
	id2, err := repo.AppendAttempt(ctx, AttemptEventData{
		Topic:           "linear-equations",
		Difficulty:      "medium",
		LearnerAnswer:   "x=5",
		ReferenceAnswer: "x=4",
		Correct:         false,
		Method:          "no-match",
		Similarity:      30,
	})
	if err != nil {
		t.Fatalf("append 2: %v", err)
	}

	if id1 == "" || id2 == "" {
		t.Fatal("expected non-empty attempt IDs")
	}
	if id1 == id2 {
		t.Fatal("expected distinct attempt IDs")
	}

	attempts, err := repo.RecentAttempts(ctx, "", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("len = %d, want 2", len(attempts))
	}
	if attempts[0].Sequence <= attempts[1].Sequence {
		t.Errorf("expected newest first, got sequences %d then %d",
			attempts[0].Sequence, attempts[1].Sequence)
	}
	if attempts[0].LearnerAnswer != "x=5" {
		t.Errorf("newest attempt answer = %q, want \"x=5\"", attempts[0].LearnerAnswer)
	}
}

func TestRecentAttemptsFiltersByTopic(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	topics := []string{"fractions", "derivatives", "fractions"}
	for i, topic := range topics {
		_, err := repo.AppendAttempt(ctx, AttemptEventData{
			Topic:           topic,
			Difficulty:      "easy",
			LearnerAnswer:   fmt.Sprintf("%d", i),
			ReferenceAnswer: "1",
			Correct:         i == 1,
			Method:          "numeric-match",
			Similarity:      100,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	attempts, err := repo.RecentAttempts(ctx, "fractions", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(attempts) != 2 {
		t.Fatalf("len = %d, want 2", len(attempts))
	}
	for _, a := range attempts {
		if a.Topic != "fractions" {
			t.Errorf("topic = %q, want \"fractions\"", a.Topic)
		}
	}

	all, err := repo.RecentAttempts(ctx, "", 10)
	if err != nil {
		t.Fatalf("recent all: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all topics len = %d, want 3", len(all))
	}
}

func TestRecentAttemptsCapsLimit(t *testing.T) {
	s := openTestStore(t)
	repo := s.AttemptRepo()
	ctx := context.Background()

	for i := 0; i < 60; i++ {
		_, err := repo.AppendAttempt(ctx, AttemptEventData{
			Topic:           "quadratics",
			Difficulty:      "hard",
			LearnerAnswer:   fmt.Sprintf("x=%d", i),
			ReferenceAnswer: "x=1",
			Correct:         false,
			Method:          "no-match",
			Similarity:      0,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	attempts, err := repo.RecentAttempts(ctx, "quadratics", 1000)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(attempts) != maxRecentAttempts {
		t.Errorf("len = %d, want %d", len(attempts), maxRecentAttempts)
	}

	// Zero limit also falls back to the cap.
	attempts, err = repo.RecentAttempts(ctx, "quadratics", 0)
	if err != nil {
		t.Fatalf("recent zero limit: %v", err)
	}
	if len(attempts) != maxRecentAttempts {
		t.Errorf("zero limit len = %d, want %d", len(attempts), maxRecentAttempts)
	}
}

func TestAppendOracleRequest(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendOracleRequest(ctx, OracleRequestEventData{
		Provider:   "newton",
		Operation:  "derive",
		Expression: "x^2",
		Result:     "2 x",
		LatencyMs:  42,
		Success:    true,
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	count, err := s.Client().OracleRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestSequenceSharedAcrossEventTypes(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	id, err := s.AttemptRepo().AppendAttempt(ctx, AttemptEventData{
		Topic:           "integrals",
		Difficulty:      "hard",
		LearnerAnswer:   "x**2",
		ReferenceAnswer: "x**2+c",
		Correct:         true,
		Method:          "exact-match",
		Similarity:      100,
	})
	if err != nil {
		t.Fatalf("append attempt: %v", err)
	}
	if id == "" {
		t.Fatal("expected attempt ID")
	}

	err = s.EventRepo().AppendOracleRequest(ctx, OracleRequestEventData{
		Provider:   "newton",
		Operation:  "integrate",
		Expression: "2x",
		Result:     "x^2",
		LatencyMs:  10,
		Success:    true,
	})
	if err != nil {
		t.Fatalf("append oracle: %v", err)
	}

	attempts, err := s.AttemptRepo().RecentAttempts(ctx, "", 10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	oracle, err := s.Client().OracleRequestEvent.Query().Only(ctx)
	if err != nil {
		t.Fatalf("query oracle event: %v", err)
	}
	if oracle.Sequence <= attempts[0].Sequence {
		t.Errorf("oracle sequence %d should follow attempt sequence %d",
			oracle.Sequence, attempts[0].Sequence)
	}
}
