package hint

import (
	"context"
	"fmt"

	"svw.info/sudokulab/internal/domain"
)

// Singles implements a minimal Hinter that suggests naked singles: the
// first empty cell, in scan order, whose domain is down to one digit.
type Singles struct{}

func NewSingles() *Singles { return &Singles{} }

func (h *Singles) Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error) {
	for _, p := range g.EmptyPositions() {
		d := g.Domain(p)
		if len(d) != 1 {
			continue
		}
		return domain.Hint{
			Message: fmt.Sprintf("Single: only %d fits here", d[0]),
			Cell:    p,
			Value:   uint8(d[0]),
		}, true, nil
	}
	return domain.Hint{}, false, nil
}
