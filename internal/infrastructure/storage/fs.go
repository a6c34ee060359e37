package storage

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/sudokulab/internal/domain"
)

// FS stores puzzles as one JSON file per puzzle under a per-difficulty
// subdirectory of dir.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

var difficulties = []domain.Difficulty{domain.Easy, domain.Medium, domain.Hard}

func (s *FS) pathFor(id string, d domain.Difficulty) string {
	return filepath.Join(s.dir, d.String(), strings.TrimSpace(id)+".json")
}

func (s *FS) Save(ctx context.Context, p *domain.Puzzle) error {
	if p == nil || p.ID == "" {
		return errors.New("invalid puzzle: missing ID")
	}
	target := s.pathFor(p.ID, p.Difficulty)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(p)
}

func (s *FS) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	for _, d := range difficulties {
		data, err := os.ReadFile(s.pathFor(id, d))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		var out domain.Puzzle
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, err
		}
		return &out, nil
	}
	return nil, os.ErrNotExist
}

func (s *FS) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	var out []domain.PuzzleMeta
	for _, d := range difficulties {
		ents, err := os.ReadDir(filepath.Join(s.dir, d.String()))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, err
		}
		for _, e := range ents {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
				continue
			}
			data, err := os.ReadFile(filepath.Join(s.dir, d.String(), e.Name()))
			if err != nil {
				continue
			}
			var p domain.Puzzle
			if err := json.Unmarshal(data, &p); err != nil || p.ID == "" {
				continue
			}
			out = append(out, domain.PuzzleMeta{
				ID:         p.ID,
				Name:       p.Name,
				Difficulty: d,
				CreatedAt:  p.CreatedAt,
			})
		}
	}
	return out, nil
}
