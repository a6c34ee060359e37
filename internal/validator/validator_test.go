package validator

import (
	"context"
	"testing"

	"svw.info/sudokulab/internal/domain"
)

var fullMatrix = [9][9]int{
	{1, 2, 3, 4, 5, 6, 7, 8, 9},
	{4, 5, 6, 7, 8, 9, 1, 2, 3},
	{7, 8, 9, 1, 2, 3, 4, 5, 6},
	{2, 1, 4, 3, 6, 5, 8, 9, 7},
	{3, 6, 5, 8, 9, 7, 2, 1, 4},
	{8, 9, 7, 2, 1, 4, 6, 3, 5},
	{5, 3, 1, 6, 4, 2, 9, 7, 8},
	{9, 4, 2, 5, 7, 8, 3, 6, 1},
	{6, 7, 8, 9, 3, 1, 5, 4, 2},
}

func contains(ps []domain.Position, p domain.Position) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}

func TestValidateCleanGrids(t *testing.T) {
	v := New()
	for _, g := range []*domain.Grid{domain.New(), domain.FromMatrix(fullMatrix)} {
		ok, conflicts, err := v.Validate(context.Background(), g)
		if err != nil {
			t.Fatalf("Validate failed: %v", err)
		}
		if !ok || len(conflicts) != 0 {
			t.Fatalf("clean grid reported conflicts: %v", conflicts)
		}
	}
}

func TestValidateReportsBothPeers(t *testing.T) {
	cases := []struct {
		name string
		a, b domain.Position
	}{
		{"row", domain.Position{Row: 4, Col: 1}, domain.Position{Row: 4, Col: 7}},
		{"column", domain.Position{Row: 0, Col: 2}, domain.Position{Row: 6, Col: 2}},
		{"box", domain.Position{Row: 0, Col: 0}, domain.Position{Row: 2, Col: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g := domain.New()
			g.Set(tc.a, 5, false)
			g.Set(tc.b, 5, false)
			ok, conflicts, err := New().Validate(context.Background(), g)
			if err != nil {
				t.Fatalf("Validate failed: %v", err)
			}
			if ok {
				t.Fatal("duplicate 5s not detected")
			}
			if !contains(conflicts, tc.a) || !contains(conflicts, tc.b) {
				t.Fatalf("both peers should be reported, got %v", conflicts)
			}
			if len(conflicts) != 2 {
				t.Fatalf("got %d conflict positions, want 2: %v", len(conflicts), conflicts)
			}
		})
	}
}

func TestValidateIgnoresNonPeerDuplicates(t *testing.T) {
	g := domain.New()
	g.Set(domain.Position{Row: 0, Col: 0}, 5, false)
	g.Set(domain.Position{Row: 4, Col: 4}, 5, false) // shares no unit
	ok, conflicts, err := New().Validate(context.Background(), g)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if !ok || len(conflicts) != 0 {
		t.Fatalf("unrelated cells flagged as conflicts: %v", conflicts)
	}
}
