package solver

import (
	"context"
	"math/rand"
	"testing"

	"svw.info/sudokulab/internal/domain"
)

// A classic, solvable Sudoku with a unique solution (0 = empty).
var samplePuzzle = [9][9]int{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

// A complete, conflict-free grid.
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

// unsatMatrix is fullMatrix with the 2 at (0,1) overwritten by a second 1
// (conflicting with its row and box) and the cell at (3,1) cleared. The
// cleared cell needs a 1, which its column now rules out, so its domain is
// empty and no completion exists.
func unsatMatrix() [9][9]int {
	m := fullMatrix
	m[0][1] = 1
	m[3][1] = 0
	return m
}

// checkComplete fails the test unless every row, column, and box of g
// holds each of the nine digits exactly once.
func checkComplete(t *testing.T, g *domain.Grid) {
	t.Helper()
	unit := func(kind string, idx int, cells []domain.Position) {
		var count [10]int
		for _, p := range cells {
			count[g.Value(p)]++
		}
		if count[0] != 0 {
			t.Fatalf("%s %d has %d empty cells", kind, idx, count[0])
		}
		for v := 1; v <= 9; v++ {
			if count[v] != 1 {
				t.Fatalf("%s %d holds digit %d %d times", kind, idx, v, count[v])
			}
		}
	}
	for i := 0; i < 9; i++ {
		var row, col, box []domain.Position
		for j := 0; j < 9; j++ {
			row = append(row, domain.Position{Row: i, Col: j})
			col = append(col, domain.Position{Row: j, Col: i})
			box = append(box, domain.Position{Row: (i/3)*3 + j/3, Col: (i%3)*3 + j%3})
		}
		unit("row", i, row)
		unit("column", i, col)
		unit("box", i, box)
	}
}

func TestSolveClassicPuzzle(t *testing.T) {
	g := domain.FromMatrix(samplePuzzle)
	ok, st := NewBacktracker().Solve(context.Background(), g)
	if !ok {
		t.Fatalf("Solve reported no solution (nodes=%d)", st.Nodes)
	}
	checkComplete(t, g)
	// givens untouched
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := samplePuzzle[r][c]; v != 0 {
				p := domain.Position{Row: r, Col: c}
				if int(g.Value(p)) != v || !g.Fixed(p) {
					t.Fatalf("given at %v was altered", p)
				}
			}
		}
	}
	t.Logf("solved in %v, nodes=%d", st.Duration, st.Nodes)
}

func TestSolveIsDeterministic(t *testing.T) {
	a := domain.FromMatrix(samplePuzzle)
	b := domain.FromMatrix(samplePuzzle)
	s := NewBacktracker()
	okA, _ := s.Solve(context.Background(), a)
	okB, _ := s.Solve(context.Background(), b)
	if !okA || !okB {
		t.Fatal("Solve failed on a solvable puzzle")
	}
	if a.Matrix() != b.Matrix() {
		t.Fatal("two solves of the same input produced different grids")
	}
}

func TestSolveFillsLastEmptyCell(t *testing.T) {
	m := fullMatrix
	want := m[4][4]
	m[4][4] = 0
	g := domain.FromMatrix(m)
	ok, _ := NewBacktracker().Solve(context.Background(), g)
	if !ok {
		t.Fatal("Solve reported no solution for a grid missing one cell")
	}
	if got := int(g.Value(domain.Position{Row: 4, Col: 4})); got != want {
		t.Fatalf("filled %d at the open cell, want %d", got, want)
	}
}

func TestSolveUnsatisfiableReturnsFalse(t *testing.T) {
	g := domain.FromMatrix(unsatMatrix())
	ok, _ := NewBacktracker().Solve(context.Background(), g)
	if ok {
		t.Fatal("Solve claimed success on a contradictory grid")
	}
	if !g.IsEmpty(domain.Position{Row: 3, Col: 1}) {
		t.Fatal("failed search left a tentative value behind")
	}
}

func TestSolveCompleteGridIsTrivial(t *testing.T) {
	g := domain.FromMatrix(fullMatrix)
	ok, st := NewBacktracker().Solve(context.Background(), g)
	if !ok {
		t.Fatal("Solve failed on an already complete grid")
	}
	if st.Nodes != 0 {
		t.Fatalf("no cells to search, yet %d nodes visited", st.Nodes)
	}
	if g.Matrix() != fullMatrix {
		t.Fatal("complete grid was modified")
	}
}

func TestFillIsSeededAndValid(t *testing.T) {
	a := domain.New()
	if !Fill(a, rand.New(rand.NewSource(42))) {
		t.Fatal("Fill failed on an empty grid")
	}
	checkComplete(t, a)

	b := domain.New()
	if !Fill(b, rand.New(rand.NewSource(42))) {
		t.Fatal("Fill failed on an empty grid")
	}
	if a.Matrix() != b.Matrix() {
		t.Fatal("same seed produced different completions")
	}

	c := domain.New()
	if !Fill(c, rand.New(rand.NewSource(7))) {
		t.Fatal("Fill failed on an empty grid")
	}
	checkComplete(t, c)
}
