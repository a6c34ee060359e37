package solver

import (
	"context"
	"time"

	"svw.info/sudokulab/internal/domain"
	"svw.info/sudokulab/internal/ports"
)

// DLX implements Algorithm X / Dancing Links for Sudoku. It satisfies the
// same Solver surface as Backtracker and is much faster as a uniqueness
// probe on sparse grids.
//
// Exact-cover mapping: 324 columns (constraints), 729 rows (r,c,v
// candidates). Columns: 0..80 -> cell (r,c) is assigned; 81..161 -> row r
// has digit v; 162..242 -> column c has digit v; 243..323 -> box b has
// digit v, b = (r/3)*3 + (c/3).
type DLX struct{}

func NewDLX() *DLX { return &DLX{} }

const (
	dlxCells   = 81
	dlxCols    = 4 * dlxCells   // 324
	dlxRows    = dlxCells * 9   // 729
	dlxColCell = 0
	dlxColRow  = 81
	dlxColCol  = 162
	dlxColBox  = 243
)

type dlxNode struct {
	left, right, up, down *dlxNode
	col                   *dlxColumn
	row                   int // 0..728 identifies (r,c,v)
}

type dlxColumn struct {
	dlxNode
	size   int
	active bool
}

type dlxMatrix struct {
	cols    [dlxCols]*dlxColumn
	rowHead [dlxRows]*dlxNode
	chosen  [dlxCells]*dlxNode
	depth   int
	nodes   int
	active  int // uncovered constraint columns
}

func newDLXMatrix() *dlxMatrix {
	m := &dlxMatrix{}
	for i := 0; i < dlxCols; i++ {
		c := &dlxColumn{active: true}
		c.up = &c.dlxNode
		c.down = &c.dlxNode
		m.cols[i] = c
	}
	m.active = dlxCols

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for v := 1; v <= 9; v++ {
				row := dlxRowIndex(r, c, v)
				var first, prev *dlxNode
				for _, colID := range dlxRowColumns(r, c, v) {
					col := m.cols[colID]
					n := &dlxNode{col: col, row: row}
					// vertical insert at the bottom of the column
					n.down = &col.dlxNode
					n.up = col.dlxNode.up
					col.dlxNode.up.down = n
					col.dlxNode.up = n
					col.size++
					// horizontal ring for the row's 4 nodes
					if first == nil {
						first = n
						n.left = n
						n.right = n
					} else {
						n.left = prev
						n.right = prev.right
						prev.right.left = n
						prev.right = n
					}
					prev = n
				}
				m.rowHead[row] = first
			}
		}
	}
	return m
}

func dlxRowIndex(r, c, v int) int { return (r*9+c)*9 + (v - 1) }

func dlxRowColumns(r, c, v int) [4]int {
	box := (r/3)*3 + c/3
	return [4]int{
		dlxColCell + r*9 + c,
		dlxColRow + r*9 + (v - 1),
		dlxColCol + c*9 + (v - 1),
		dlxColBox + box*9 + (v - 1),
	}
}

func dlxDecodeRow(row int) (r, c int, v domain.Value) {
	cell := row / 9
	return cell / 9, cell % 9, domain.Value(row%9 + 1)
}

func (m *dlxMatrix) cover(col *dlxColumn) {
	col.active = false
	m.active--
	for i := col.down; i != &col.dlxNode; i = i.down {
		for j := i.right; j != i; j = j.right {
			j.down.up = j.up
			j.up.down = j.down
			j.col.size--
		}
	}
}

func (m *dlxMatrix) uncover(col *dlxColumn) {
	for i := col.up; i != &col.dlxNode; i = i.up {
		for j := i.left; j != i; j = j.left {
			j.col.size++
			j.down.up = j
			j.up.down = j
		}
	}
	col.active = true
	m.active++
}

// chooseColumn picks the active column with the fewest candidates.
func (m *dlxMatrix) chooseColumn() *dlxColumn {
	var best *dlxColumn
	for _, c := range m.cols {
		if !c.active {
			continue
		}
		if best == nil || c.size < best.size {
			best = c
			if best.size == 0 {
				break
			}
		}
	}
	return best
}

// applyGiven selects the (r,c,v) row for a clue by covering its columns. It
// reports false when the clue conflicts with one applied earlier: any of
// the row's constraint columns already being covered means a peer holds the
// same digit (or the cell was assigned twice).
func (m *dlxMatrix) applyGiven(r, c int, v domain.Value) bool {
	head := m.rowHead[dlxRowIndex(r, c, int(v))]
	j := head
	for {
		if !j.col.active {
			return false
		}
		j = j.right
		if j == head {
			break
		}
	}
	for {
		m.cover(j.col)
		j = j.right
		if j == head {
			break
		}
	}
	return true
}

// fromGrid applies every non-empty cell of g as a given.
func (m *dlxMatrix) fromGrid(g *domain.Grid) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			p := domain.Position{Row: r, Col: c}
			if v := g.Value(p); v != domain.Empty {
				if !m.applyGiven(r, c, v) {
					return false
				}
			}
		}
	}
	return true
}

// search runs Algorithm X. emit is called at every full cover; returning
// true from it stops the search.
func (m *dlxMatrix) search(emit func() bool) bool {
	if m.active == 0 {
		return emit()
	}
	c := m.chooseColumn()
	if c == nil || c.size == 0 {
		return false
	}
	m.cover(c)
	for r := c.down; r != &c.dlxNode; r = r.down {
		m.nodes++
		m.chosen[m.depth] = r
		m.depth++
		for j := r.right; j != r; j = j.right {
			m.cover(j.col)
		}
		stop := m.search(emit)
		for j := r.left; j != r; j = j.left {
			m.uncover(j.col)
		}
		m.depth--
		if stop {
			m.uncover(c)
			return true
		}
	}
	m.uncover(c)
	return false
}

// Solve fills g in place from the first exact cover found. Conflicting
// givens make the cover infeasible, so they report false rather than being
// silently completed.
func (s *DLX) Solve(ctx context.Context, g *domain.Grid) (bool, ports.Stats) {
	start := time.Now()
	if ctx.Err() != nil {
		return false, ports.Stats{Duration: time.Since(start)}
	}
	m := newDLXMatrix()
	if !m.fromGrid(g) {
		return false, ports.Stats{Nodes: m.nodes, Duration: time.Since(start)}
	}
	solved := false
	m.search(func() bool {
		for i := 0; i < m.depth; i++ {
			r, c, v := dlxDecodeRow(m.chosen[i].row)
			g.Set(domain.Position{Row: r, Col: c}, v, false)
		}
		solved = true
		return true
	})
	return solved, ports.Stats{Nodes: m.nodes, Duration: time.Since(start)}
}

// EnumerateAll returns every satisfying assignment in cover order. Like the
// chronological enumerator this is combinatorially expensive on sparse
// grids; prefer EnumerateUpTo.
func (s *DLX) EnumerateAll(ctx context.Context, g *domain.Grid) ([]domain.Solution, ports.Stats) {
	return s.enumerate(ctx, g, 0)
}

// EnumerateUpTo stops once limit solutions have been collected. A limit
// <= 0 yields no solutions.
func (s *DLX) EnumerateUpTo(ctx context.Context, g *domain.Grid, limit int) ([]domain.Solution, ports.Stats) {
	if limit <= 0 {
		return nil, ports.Stats{}
	}
	return s.enumerate(ctx, g, limit)
}

func (s *DLX) enumerate(ctx context.Context, g *domain.Grid, limit int) ([]domain.Solution, ports.Stats) {
	start := time.Now()
	if ctx.Err() != nil {
		return nil, ports.Stats{Duration: time.Since(start)}
	}
	m := newDLXMatrix()
	if !m.fromGrid(g) {
		return nil, ports.Stats{Nodes: m.nodes, Duration: time.Since(start)}
	}
	var acc []domain.Solution
	m.search(func() bool {
		full := g.Clone()
		for i := 0; i < m.depth; i++ {
			r, c, v := dlxDecodeRow(m.chosen[i].row)
			full.Set(domain.Position{Row: r, Col: c}, v, false)
		}
		acc = append(acc, full.Snapshot())
		return limit > 0 && len(acc) >= limit
	})
	return acc, ports.Stats{Nodes: m.nodes, Duration: time.Since(start)}
}
