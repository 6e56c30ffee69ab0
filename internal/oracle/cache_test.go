package oracle

import (
	"context"
	"fmt"
	"testing"
)

func TestLRUCacheEviction(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(2)

	c.Set(ctx, "a", "1")
	c.Set(ctx, "b", "2")
	c.Set(ctx, "c", "3") // evicts a

	if _, ok := c.Get(ctx, "a"); ok {
		t.Error("oldest entry should have been evicted")
	}
	if v, ok := c.Get(ctx, "b"); !ok || v != "2" {
		t.Errorf("b = %q, %v", v, ok)
	}
	if c.Len() != 2 {
		t.Errorf("len = %d, want 2", c.Len())
	}
}

func TestLRUCacheRecencyOrder(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(2)

	c.Set(ctx, "a", "1")
	c.Set(ctx, "b", "2")
	c.Get(ctx, "a")      // a is now most recent
	c.Set(ctx, "c", "3") // evicts b

	if _, ok := c.Get(ctx, "a"); !ok {
		t.Error("recently used entry should survive")
	}
	if _, ok := c.Get(ctx, "b"); ok {
		t.Error("least recently used entry should be gone")
	}
}

func TestLRUCacheStaysBounded(t *testing.T) {
	ctx := context.Background()
	c := NewLRUCache(16)
	for i := 0; i < 1000; i++ {
		c.Set(ctx, fmt.Sprintf("key-%d", i), "v")
	}
	if c.Len() != 16 {
		t.Errorf("len = %d, want 16", c.Len())
	}
}

func TestCachedOracleServesHits(t *testing.T) {
	ctx := context.Background()
	mock := NewMockOracle(MockResult{Result: "2 x"})
	o := WithCache(mock, NewLRUCache(8))

	for i := 0; i < 3; i++ {
		result, err := o.Evaluate(ctx, OpDerive, "x^2")
		if err != nil {
			t.Fatalf("Evaluate: %v", err)
		}
		if result != "2 x" {
			t.Errorf("result = %q", result)
		}
	}
	if mock.CallCount() != 1 {
		t.Errorf("engine calls = %d, want 1", mock.CallCount())
	}
}

func TestCachedOracleDoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	mock := NewMockOracle(
		MockResult{Err: &ErrUnavailable{}},
		MockResult{Result: "2 x"},
	)
	o := WithCache(mock, NewLRUCache(8))

	if _, err := o.Evaluate(ctx, OpDerive, "x^2"); err == nil {
		t.Fatal("first call should fail")
	}
	result, err := o.Evaluate(ctx, OpDerive, "x^2")
	if err != nil || result != "2 x" {
		t.Errorf("second call = %q, %v", result, err)
	}
}

func TestCachedOracleKeyIncludesOperation(t *testing.T) {
	ctx := context.Background()
	mock := NewMockOracle(
		MockResult{Result: "2 x"},
		MockResult{Result: "x^3/3"},
	)
	o := WithCache(mock, NewLRUCache(8))

	d, _ := o.Evaluate(ctx, OpDerive, "x^2")
	i, _ := o.Evaluate(ctx, OpIntegrate, "x^2")
	if d == i {
		t.Error("different operations on the same expression must not collide")
	}
	if mock.CallCount() != 2 {
		t.Errorf("engine calls = %d, want 2", mock.CallCount())
	}
}
