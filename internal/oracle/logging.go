package oracle

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/abhisek/gradex/internal/store"
)

// LoggingOracle is a decorator that records every evaluation as an
// event.
type LoggingOracle struct {
	inner     Oracle
	eventRepo store.EventRepo
}

// WithLogging wraps an Oracle with event logging.
func WithLogging(o Oracle, repo store.EventRepo) Oracle {
	return &LoggingOracle{inner: o, eventRepo: repo}
}

func (l *LoggingOracle) Evaluate(ctx context.Context, op Operation, expression string) (string, error) {
	start := time.Now()

	result, err := l.inner.Evaluate(ctx, op, expression)

	data := store.OracleRequestEventData{
		Provider:   l.inner.Name(),
		Operation:  string(op),
		Expression: expression,
		Result:     result,
		LatencyMs:  time.Since(start).Milliseconds(),
		Success:    err == nil,
	}
	if err != nil {
		data.ErrorMessage = err.Error()
	}

	// Log the event but don't fail the evaluation if logging fails.
	if logErr := l.eventRepo.AppendOracleRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log oracle request event: %v\n", logErr)
	}

	return result, err
}

func (l *LoggingOracle) Name() string { return l.inner.Name() }
