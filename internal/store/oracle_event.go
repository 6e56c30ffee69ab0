package store

import (
	"context"
	"fmt"

	"github.com/abhisek/gradex/ent"
)

// eventRepo implements EventRepo backed by ent.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendOracleRequest(ctx context.Context, data OracleRequestEventData) error {
	seq, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	_, err = r.client.OracleRequestEvent.Create().
		SetSequence(seq).
		SetProvider(data.Provider).
		SetOperation(data.Operation).
		SetExpression(data.Expression).
		SetResult(data.Result).
		SetLatencyMs(data.LatencyMs).
		SetSuccess(data.Success).
		SetErrorMessage(data.ErrorMessage).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("append oracle request: %w", err)
	}
	return nil
}
