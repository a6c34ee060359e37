package storage

import (
	"context"
	"errors"
	"os"
	"testing"

	"svw.info/sudokulab/internal/domain"
)

func testPuzzle(id string, d domain.Difficulty) *domain.Puzzle {
	p := &domain.Puzzle{
		ID:         id,
		Seed:       1234,
		Difficulty: d,
		CreatedAt:  42,
		Name:       "fixture",
	}
	p.Board.Values[0][0] = 5
	p.Board.Fixed[0][0] = true
	return p
}

func TestFSSaveLoadRoundTrip(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()

	want := testPuzzle("abc", domain.Hard)
	if err := s.Save(ctx, want); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	got, err := s.Load(ctx, "abc")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got.ID != want.ID || got.Difficulty != want.Difficulty || got.Board != want.Board {
		t.Fatalf("round trip mismatch: got %+v", got)
	}
}

func TestFSLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	if _, err := s.Load(context.Background(), "nope"); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("got %v, want ErrNotExist", err)
	}
}

func TestFSListAcrossDifficulties(t *testing.T) {
	s := NewFS(t.TempDir())
	ctx := context.Background()
	for _, p := range []*domain.Puzzle{
		testPuzzle("a", domain.Easy),
		testPuzzle("b", domain.Medium),
		testPuzzle("c", domain.Hard),
	} {
		if err := s.Save(ctx, p); err != nil {
			t.Fatalf("Save failed: %v", err)
		}
	}
	metas, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(metas) != 3 {
		t.Fatalf("listed %d puzzles, want 3", len(metas))
	}
	seen := map[string]domain.Difficulty{}
	for _, m := range metas {
		seen[m.ID] = m.Difficulty
	}
	if seen["a"] != domain.Easy || seen["b"] != domain.Medium || seen["c"] != domain.Hard {
		t.Fatalf("difficulties not preserved: %v", seen)
	}
}

func TestFSSaveRequiresID(t *testing.T) {
	s := NewFS(t.TempDir())
	if err := s.Save(context.Background(), &domain.Puzzle{}); err == nil {
		t.Fatal("Save accepted a puzzle without an ID")
	}
}
