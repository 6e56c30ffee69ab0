package oracle

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newtonServer(t *testing.T, handler http.HandlerFunc) *NewtonOracle {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewNewtonOracle(NewtonConfig{BaseURL: srv.URL})
}

func TestNewtonEvaluate(t *testing.T) {
	var gotPath string
	o := newtonServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"operation":"derive","expression":"x^2","result":"2 x"}`))
	})

	result, err := o.Evaluate(context.Background(), OpDerive, "x^2 + 1")
	if err != nil {
		t.Fatalf("Evaluate: %v", err)
	}
	if result != "2 x" {
		t.Errorf("result = %q", result)
	}
	if gotPath != "/derive/x%5E2+1" && gotPath != "/derive/x%5E2%2B1" {
		t.Errorf("path = %q, want whitespace stripped and escaped", gotPath)
	}
}

func TestNewtonServerError(t *testing.T) {
	o := newtonServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := o.Evaluate(context.Background(), OpSimplify, "x+x")
	var unavail *ErrUnavailable
	if !errors.As(err, &unavail) {
		t.Errorf("err = %v, want ErrUnavailable", err)
	}
}

func TestNewtonRateLimit(t *testing.T) {
	o := newtonServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := o.Evaluate(context.Background(), OpSimplify, "x+x")
	var rl *ErrRateLimit
	if !errors.As(err, &rl) {
		t.Errorf("err = %v, want ErrRateLimit", err)
	}
}

func TestNewtonRetryAfterHeader(t *testing.T) {
	tests := []struct {
		name   string
		header string
		want   time.Duration
	}{
		{"delta seconds", "7", 7 * time.Second},
		{"http date ignored", "Fri, 29 Aug 2026 12:00:00 GMT", 0},
		{"unit suffix ignored", "5s", 0},
		{"negative ignored", "-3", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o := newtonServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Retry-After", tt.header)
				w.WriteHeader(http.StatusTooManyRequests)
			})

			_, err := o.Evaluate(context.Background(), OpSimplify, "x+x")
			var rl *ErrRateLimit
			if !errors.As(err, &rl) {
				t.Fatalf("err = %v, want ErrRateLimit", err)
			}
			if rl.RetryAfter != tt.want {
				t.Errorf("RetryAfter = %v, want %v", rl.RetryAfter, tt.want)
			}
		})
	}
}

func TestNewtonInvalidBody(t *testing.T) {
	o := newtonServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	})

	_, err := o.Evaluate(context.Background(), OpFactor, "x^2-1")
	var invalid *ErrInvalidResult
	if !errors.As(err, &invalid) {
		t.Errorf("err = %v, want ErrInvalidResult", err)
	}
}

func TestNewtonAPIError(t *testing.T) {
	o := newtonServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":"could not parse expression"}`))
	})

	_, err := o.Evaluate(context.Background(), OpFactor, "???")
	var invalid *ErrInvalidResult
	if !errors.As(err, &invalid) {
		t.Errorf("err = %v, want ErrInvalidResult", err)
	}
}
