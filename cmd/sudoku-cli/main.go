// Command sudoku-cli solves, checks, enumerates, and generates puzzles on
// the console. Grids are read from stdin as nine rows of digits where 0 or
// '.' marks an empty cell; spaces and block dividers are ignored, so the
// output of a previous run can be fed back in.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/generator"
	"svw.info/sudokulab/internal/solver"
	"svw.info/sudokulab/internal/validator"
)

func main() {
	gen := flag.String("generate", "", "generate a puzzle: easy|medium|hard")
	seed := flag.Int64("seed", 0, "generation seed (0 = time-based)")
	unique := flag.Bool("unique", false, "carve down to a unique solution")
	check := flag.Bool("check", false, "report conflicting cells instead of solving")
	count := flag.Int("count", 0, "enumerate up to N solutions instead of solving")
	flag.Parse()

	if err := run(*gen, *seed, *unique, *check, *count); err != nil {
		fmt.Fprintln(os.Stderr, "sudoku-cli:", err)
		os.Exit(1)
	}
}

func run(gen string, seed int64, unique, check bool, count int) error {
	ctx := context.Background()

	if gen != "" {
		diff, err := parseDifficulty(gen)
		if err != nil {
			return err
		}
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g := generator.New(solver.NewDLX())
		if unique {
			g = generator.NewUnique(solver.NewDLX())
		}
		p, st, err := g.Generate(ctx, seed, diff)
		if err != nil {
			return err
		}
		grid := p.Grid()
		fmt.Print(grid.String())
		fmt.Printf("difficulty=%s clues=%d seed=%d dur=%v\n", diff, grid.Clues(), seed, st.Duration.Round(time.Millisecond))
		return nil
	}

	grid, err := readGrid(os.Stdin)
	if err != nil {
		return err
	}

	switch {
	case check:
		ok, conflicts, err := validator.New().Validate(ctx, grid)
		if err != nil {
			return err
		}
		if ok {
			fmt.Println("no conflicts")
			return nil
		}
		for _, p := range conflicts {
			fmt.Printf("conflict at row %d, column %d: %d\n", p.Row+1, p.Col+1, grid.Value(p))
		}
		return nil

	case count > 0:
		sols, st := solver.NewBacktracker().EnumerateUpTo(ctx, grid, count)
		for i, s := range sols {
			fmt.Printf("solution %d:\n%s", i+1, s.String())
		}
		fmt.Printf("%d solution(s) dur=%v\n", len(sols), st.Duration.Round(time.Millisecond))
		return nil

	default:
		ok, st := solver.NewBacktracker().Solve(ctx, grid)
		if !ok {
			return fmt.Errorf("no solution (dur=%v)", st.Duration.Round(time.Millisecond))
		}
		fmt.Print(grid.String())
		return nil
	}
}

func parseDifficulty(s string) (domain.Difficulty, error) {
	switch s {
	case "easy":
		return domain.Easy, nil
	case "medium":
		return domain.Medium, nil
	case "hard":
		return domain.Hard, nil
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// readGrid collects 81 cell runes from r, tolerating the divider characters
// the renderer emits.
func readGrid(r io.Reader) (*domain.Grid, error) {
	var m [9][9]int
	n := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() && n < 81 {
		for _, ch := range sc.Text() {
			switch {
			case ch >= '0' && ch <= '9':
				m[n/9][n%9] = int(ch - '0')
				n++
			case ch == '.':
				n++ // empty
			case ch == ' ' || ch == '|' || ch == '-' || ch == '+':
				// divider noise
			default:
				return nil, fmt.Errorf("unexpected character %q in grid input", ch)
			}
			if n == 81 {
				break
			}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if n != 81 {
		return nil, fmt.Errorf("incomplete grid: got %d of 81 cells", n)
	}
	return domain.FromMatrix(m), nil
}
