package inmemory

import (
	"context"
	"testing"
)

func TestStore_RememberAndCount(t *testing.T) {
	s := New()
	ctx := context.Background()

	if s.Count() != 0 {
		t.Fatalf("Expected empty store, got: %d", s.Count())
	}

	_ = s.Remember(ctx, "user prefers terse answers")
	_ = s.Remember(ctx, "project uses tabs")

	if s.Count() != 2 {
		t.Errorf("Expected 2 entries, got: %d", s.Count())
	}
}

func TestStore_RecallByKeyword(t *testing.T) {
	s := New()
	ctx := context.Background()
	_ = s.Remember(ctx, "the build directory is ./out")
	_ = s.Remember(ctx, "user prefers terse answers")
	_ = s.Remember(ctx, "tests live next to the build scripts")

	got, err := s.Recall(ctx, "where is the build?", 5)
	if err != nil {
		t.Fatalf("Expected recall to succeed, got: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("Expected 2 matches for 'build', got: %v", got)
	}
	// Newest match first.
	if got[0] != "tests live next to the build scripts" {
		t.Errorf("Expected newest match first, got: %q", got[0])
	}
}

func TestStore_RecallFallsBackToRecent(t *testing.T) {
	s := New()
	ctx := context.Background()
	_ = s.Remember(ctx, "alpha")
	_ = s.Remember(ctx, "beta")
	_ = s.Remember(ctx, "gamma")

	got, err := s.Recall(ctx, "zzz-no-match", 2)
	if err != nil {
		t.Fatalf("Expected recall to succeed, got: %v", err)
	}
	if len(got) != 2 || got[0] != "gamma" || got[1] != "beta" {
		t.Errorf("Expected two newest entries, got: %v", got)
	}
}

func TestStore_RecallZeroLimit(t *testing.T) {
	s := New()
	_ = s.Remember(context.Background(), "anything")

	got, err := s.Recall(context.Background(), "anything", 0)
	if err != nil {
		t.Fatalf("Expected recall to succeed, got: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Expected empty result for zero limit, got: %v", got)
	}
}
