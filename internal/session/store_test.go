package session

import (
	"context"
	"errors"
	"testing"
	"time"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestMemoryStore_RoundTrip(t *testing.T) {
	s := New(nil, time.Hour) // nil redis -> memory store
	ctx := context.Background()

	if err := s.Put(ctx, "k1", doc{Name: "calendar", Count: 3}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	var got doc
	if err := s.Get(ctx, "k1", &got); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "calendar" || got.Count != 3 {
		t.Fatalf("round trip mismatch: %+v", got)
	}
}

func TestMemoryStore_Missing(t *testing.T) {
	s := New(nil, time.Hour)
	var got doc
	if err := s.Get(context.Background(), "nope", &got); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	s := New(nil, time.Hour)
	ctx := context.Background()
	if err := s.Put(ctx, "k1", doc{Name: "x"}); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	if err := s.Delete(ctx, "k1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	var got doc
	if err := s.Get(ctx, "k1", &got); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestMemoryStore_NoAliasing(t *testing.T) {
	s := New(nil, time.Hour)
	ctx := context.Background()
	d := doc{Name: "before"}
	if err := s.Put(ctx, "k1", d); err != nil {
		t.Fatalf("put failed: %v", err)
	}
	d.Name = "after" // mutating the caller's copy must not leak into the store
	var got doc
	if err := s.Get(ctx, "k1", &got); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.Name != "before" {
		t.Fatalf("stored value was aliased: %+v", got)
	}
}

func TestNewID_Unique(t *testing.T) {
	a, b := NewID(), NewID()
	if a == "" || a == b {
		t.Fatalf("expected distinct non-empty ids, got %q and %q", a, b)
	}
}
