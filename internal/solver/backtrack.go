package solver

import (
	"context"
	"time"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/ports"
)

// Backtracker solves by chronological depth-first search over the empty
// cells, pruning each step with the cell's current domain. There is no
// constraint propagation beyond that one-ply lookup.
type Backtracker struct{}

func NewBacktracker() *Backtracker { return &Backtracker{} }

// Solve fills g in place and reports whether a complete assignment exists.
// The target cells are the positions empty at call time, visited in
// row-major order with candidates tried ascending, so the result is
// deterministic for a given input. On failure every target cell is back to
// empty. The context is honored at entry only; a search in progress runs to
// completion.
func (s *Backtracker) Solve(ctx context.Context, g *domain.Grid) (bool, ports.Stats) {
	start := time.Now()
	if ctx.Err() != nil {
		return false, ports.Stats{Duration: time.Since(start)}
	}
	nodes := 0
	ok := solveFrom(g, g.EmptyPositions(), 0, &nodes)
	return ok, ports.Stats{Nodes: nodes, Duration: time.Since(start)}
}

// solveFrom assigns targets[i:] in order. First success wins; if no
// candidate leads to success the cell is reset and failure propagates. A
// cell with an empty domain fails without recursing.
func solveFrom(g *domain.Grid, targets []domain.Position, i int, nodes *int) bool {
	if i >= len(targets) {
		return true
	}
	p := targets[i]
	for _, v := range g.Domain(p) {
		*nodes++
		g.Set(p, v, false)
		if solveFrom(g, targets, i+1, nodes) {
			return true
		}
		g.Clear(p)
	}
	return false
}
