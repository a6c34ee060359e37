package ports

import (
	"context"
	"time"

	"svw.info/sudokulab/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver runs searches over a grid. Every method mutates the grid it is
// given (enumeration restores it before returning); callers must not share
// one grid across concurrent calls. An unsatisfiable grid is a normal
// result: Solve reports false and enumeration returns an empty list.
type Solver interface {
	Solve(ctx context.Context, g *domain.Grid) (bool, Stats)
	EnumerateAll(ctx context.Context, g *domain.Grid) ([]domain.Solution, Stats)
	EnumerateUpTo(ctx context.Context, g *domain.Grid, limit int) ([]domain.Solution, Stats)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator reports every position whose value duplicates a peer's value.
type Validator interface {
	Validate(ctx context.Context, g *domain.Grid) (ok bool, conflicts []domain.Position, err error)
}

// Hinter returns the next logical assignment, if one can be found.
type Hinter interface {
	Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error)
}

// Storage persists and retrieves puzzles.
type Storage interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
