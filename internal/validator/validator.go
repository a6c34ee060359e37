package validator

import (
	"context"

	"svw.info/sudokulab/internal/domain"
)

// PeerValidator reports conflicts with a read-only scan over the peers
// table. It is not part of the search.
type PeerValidator struct{}

func New() *PeerValidator { return &PeerValidator{} }

// Validate returns every position whose non-empty value duplicates a peer's
// value, in row-major order. Both members of a conflicting pair are
// reported, each position at most once.
func (v *PeerValidator) Validate(ctx context.Context, g *domain.Grid) (bool, []domain.Position, error) {
	var conflicts []domain.Position
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			p := domain.Position{Row: r, Col: c}
			val := g.Value(p)
			if val == domain.Empty {
				continue
			}
			for _, q := range domain.Peers(p) {
				if g.Value(q) == val {
					conflicts = append(conflicts, p)
					break
				}
			}
		}
	}
	return len(conflicts) == 0, conflicts, nil
}
