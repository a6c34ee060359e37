package solver

import (
	"context"
	"time"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/ports"
)

// EnumerateAll walks the entire search tree and returns every satisfying
// assignment in traversal order. The grid is restored to its input state
// before returning. This is combinatorially expensive on sparse grids (an
// empty grid has billions of completions); interactive callers should use
// EnumerateUpTo instead.
func (s *Backtracker) EnumerateAll(ctx context.Context, g *domain.Grid) ([]domain.Solution, ports.Stats) {
	return s.enumerate(ctx, g, 0)
}

// EnumerateUpTo behaves like EnumerateAll but stops as soon as limit
// solutions have been collected. The result is a prefix of what the
// unbounded enumeration would return. A limit <= 0 yields no solutions.
func (s *Backtracker) EnumerateUpTo(ctx context.Context, g *domain.Grid, limit int) ([]domain.Solution, ports.Stats) {
	if limit <= 0 {
		return nil, ports.Stats{}
	}
	return s.enumerate(ctx, g, limit)
}

func (s *Backtracker) enumerate(ctx context.Context, g *domain.Grid, limit int) ([]domain.Solution, ports.Stats) {
	start := time.Now()
	if ctx.Err() != nil {
		return nil, ports.Stats{Duration: time.Since(start)}
	}
	var acc []domain.Solution
	nodes := 0
	enumerateFrom(g, g.EmptyPositions(), 0, limit, &acc, &nodes)
	return acc, ports.Stats{Nodes: nodes, Duration: time.Since(start)}
}

// enumerateFrom snapshots a solution at every completion and keeps
// exploring. The bound can be hit deep in the recursion, so every frame
// re-checks it before trying another candidate; that short-circuits all
// pending siblings, not just the current one. limit == 0 means unbounded.
func enumerateFrom(g *domain.Grid, targets []domain.Position, i, limit int, acc *[]domain.Solution, nodes *int) {
	if limit > 0 && len(*acc) >= limit {
		return
	}
	if i >= len(targets) {
		*acc = append(*acc, g.Snapshot())
		return
	}
	p := targets[i]
	for _, v := range g.Domain(p) {
		if limit > 0 && len(*acc) >= limit {
			break
		}
		*nodes++
		g.Set(p, v, false)
		enumerateFrom(g, targets, i+1, limit, acc, nodes)
		g.Clear(p)
	}
}
