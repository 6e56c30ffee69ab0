package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/gradex/ent"
	"github.com/abhisek/gradex/ent/attemptevent"
)

// attemptRepo implements AttemptRepo backed by ent.
type attemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *attemptRepo) AppendAttempt(ctx context.Context, data AttemptEventData) (string, error) {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return "", err
	}

	attemptID := uuid.NewString()

	_, err = r.client.AttemptEvent.Create().
		SetSequence(seq).
		SetAttemptID(attemptID).
		SetTopic(data.Topic).
		SetSubtopic(data.Subtopic).
		SetDifficulty(data.Difficulty).
		SetLearnerAnswer(data.LearnerAnswer).
		SetReferenceAnswer(data.ReferenceAnswer).
		SetCorrect(data.Correct).
		SetMethod(data.Method).
		SetSimilarity(data.Similarity).
		Save(ctx)
	if err != nil {
		return "", fmt.Errorf("append attempt: %w", err)
	}
	return attemptID, nil
}

func (r *attemptRepo) RecentAttempts(ctx context.Context, topic string, limit int) ([]Attempt, error) {
	if limit <= 0 || limit > maxRecentAttempts {
		limit = maxRecentAttempts
	}

	q := r.client.AttemptEvent.Query()
	if topic = strings.TrimSpace(topic); topic != "" {
		q = q.Where(attemptevent.TopicEQ(topic))
	}

	rows, err := q.
		Order(ent.Desc(attemptevent.FieldSequence)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}

	attempts := make([]Attempt, 0, len(rows))
	for _, row := range rows {
		attempts = append(attempts, Attempt{
			Sequence:        row.Sequence,
			Timestamp:       row.Timestamp,
			AttemptID:       row.AttemptID,
			Topic:           row.Topic,
			Subtopic:        row.Subtopic,
			Difficulty:      row.Difficulty,
			LearnerAnswer:   row.LearnerAnswer,
			ReferenceAnswer: row.ReferenceAnswer,
			Correct:         row.Correct,
			Method:          row.Method,
			Similarity:      row.Similarity,
		})
	}
	return attempts, nil
}
