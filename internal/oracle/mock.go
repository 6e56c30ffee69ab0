package oracle

import (
	"context"
	"sync"
)

// MockResult is a canned evaluation for the MockOracle.
type MockResult struct {
	Result string
	Err    error
}

// MockCall records one Evaluate invocation.
type MockCall struct {
	Op         Operation
	Expression string
}

// MockOracle is a deterministic Oracle for testing. It returns canned
// results in FIFO order and records all calls.
type MockOracle struct {
	mu      sync.Mutex
	results []MockResult
	Calls   []MockCall
}

func NewMockOracle(results ...MockResult) *MockOracle {
	return &MockOracle{results: results}
}

// Evaluate returns the next canned result or ErrUnavailable if the
// queue is empty.
func (m *MockOracle) Evaluate(_ context.Context, op Operation, expression string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{Op: op, Expression: expression})

	if len(m.results) == 0 {
		return "", &ErrUnavailable{Err: nil}
	}

	next := m.results[0]
	m.results = m.results[1:]
	if next.Err != nil {
		return "", next.Err
	}
	return next.Result, nil
}

func (m *MockOracle) Name() string { return "mock" }

// AddResult appends a canned result to the queue.
func (m *MockOracle) AddResult(r MockResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, r)
}

// CallCount returns the number of Evaluate calls made.
func (m *MockOracle) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
