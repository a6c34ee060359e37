package solver

import (
	"math/rand"

	"svw.info/sudokulab/internal/domain"
)

// Fill completes g in place using a per-cell shuffled candidate order, so
// different rng states explore different completions. It is the randomized
// counterpart of Solve and is kept as a separate code path so the
// deterministic solver stays untouched by generation's randomness. The
// search still backtracks chronologically: shuffled greedy assignment hits
// local dead ends, and recovery from them is what makes this always succeed
// on an empty grid.
func Fill(g *domain.Grid, rng *rand.Rand) bool {
	return fillFrom(g, g.EmptyPositions(), 0, rng)
}

func fillFrom(g *domain.Grid, targets []domain.Position, i int, rng *rand.Rand) bool {
	if i >= len(targets) {
		return true
	}
	p := targets[i]
	cand := g.Domain(p)
	rng.Shuffle(len(cand), func(a, b int) { cand[a], cand[b] = cand[b], cand[a] })
	for _, v := range cand {
		g.Set(p, v, false)
		if fillFrom(g, targets, i+1, rng) {
			return true
		}
		g.Clear(p)
	}
	return false
}
