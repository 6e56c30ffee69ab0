package oracle

import (
	"context"
	"errors"
	"testing"
	"time"
)

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{
		MaxAttempts: attempts,
		InitialWait: time.Millisecond,
		MaxWait:     5 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func TestRetryRecoversFromTransientError(t *testing.T) {
	mock := NewMockOracle(
		MockResult{Err: &ErrUnavailable{}},
		MockResult{Err: &ErrUnavailable{}},
		MockResult{Result: "2 x"},
	)
	o := WithRetry(mock, fastRetry(3))

	result, err := o.Evaluate(context.Background(), OpDerive, "x^2")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if result != "2 x" {
		t.Errorf("result = %q", result)
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
}

func TestRetryGivesUpAfterMaxAttempts(t *testing.T) {
	mock := NewMockOracle(
		MockResult{Err: &ErrUnavailable{}},
		MockResult{Err: &ErrUnavailable{}},
		MockResult{Err: &ErrUnavailable{}},
	)
	o := WithRetry(mock, fastRetry(3))

	_, err := o.Evaluate(context.Background(), OpDerive, "x^2")
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
	if mock.CallCount() != 3 {
		t.Errorf("calls = %d, want 3", mock.CallCount())
	}
}

func TestRetryInvalidResultOnlyOnce(t *testing.T) {
	mock := NewMockOracle(
		MockResult{Err: &ErrInvalidResult{Err: errors.New("garbage")}},
		MockResult{Err: &ErrInvalidResult{Err: errors.New("garbage again")}},
		MockResult{Result: "never reached"},
	)
	o := WithRetry(mock, fastRetry(5))

	_, err := o.Evaluate(context.Background(), OpDerive, "x^2")
	var invalid *ErrInvalidResult
	if !errors.As(err, &invalid) {
		t.Errorf("err = %v, want ErrInvalidResult", err)
	}
	if mock.CallCount() != 2 {
		t.Errorf("calls = %d, want 2 (one retry for invalid results)", mock.CallCount())
	}
}

func TestRetryRespectsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	mock := NewMockOracle(MockResult{Err: &ErrUnavailable{}})
	o := WithRetry(mock, fastRetry(3))

	_, err := o.Evaluate(ctx, OpDerive, "x^2")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
