package domain

import "strings"

// Value is the content of a single cell: Empty or a digit 1-9.
type Value uint8

// Empty marks a cell with no assignment. It is never a candidate in any
// domain.
const Empty Value = 0

// Valid reports whether v is a digit 1-9.
func (v Value) Valid() bool { return v >= 1 && v <= 9 }

// Position identifies a cell on the board. Positions compare by value and
// are reported back to callers, e.g. as conflict locations.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Cell holds a value and whether it is a given clue. The fixed flag records
// provenance: the search never consults it, because it only ever touches
// cells that are empty when it starts.
type Cell struct {
	value Value
	fixed bool
}

// Value returns the cell's current value.
func (c Cell) Value() Value { return c.value }

// Fixed reports whether the cell is a given clue.
func (c Cell) Fixed() bool { return c.fixed }

// Grid is a 9x9 Sudoku board. It exclusively owns its 81 cells; a search
// mutates it in place, so a Grid must not be shared across concurrent or
// re-entrant calls. Use Clone for independent searches from the same state.
type Grid struct {
	cells [9][9]Cell
}

// New returns an empty grid.
func New() *Grid { return &Grid{} }

// FromMatrix builds a grid from a 9x9 matrix of small integers. Entries 1-9
// become fixed givens; anything out of range is normalized to an empty,
// unfixed cell. This is the sole import path.
func FromMatrix(m [9][9]int) *Grid {
	g := &Grid{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := m[r][c]; v >= 1 && v <= 9 {
				g.cells[r][c] = Cell{value: Value(v), fixed: true}
			}
		}
	}
	return g
}

// FromBoard rebuilds a grid from its wire form, keeping the stored fixed
// flags. Out-of-range values are normalized to empty.
func FromBoard(b Board) *Grid {
	g := &Grid{}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if v := Value(b.Values[r][c]); v.Valid() {
				g.cells[r][c] = Cell{value: v, fixed: b.Fixed[r][c]}
			}
		}
	}
	return g
}

// Matrix exports the grid as a matrix of small integers, 0 for empty.
func (g *Grid) Matrix() [9][9]int {
	var m [9][9]int
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			m[r][c] = int(g.cells[r][c].value)
		}
	}
	return m
}

// Board exports the grid in its wire/persistence form.
func (g *Grid) Board() Board {
	var b Board
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			b.Values[r][c] = uint8(g.cells[r][c].value)
			b.Fixed[r][c] = g.cells[r][c].fixed
		}
	}
	return b
}

// Value returns the value at p.
func (g *Grid) Value(p Position) Value { return g.cells[p.Row][p.Col].value }

// Fixed reports whether the cell at p is a given clue.
func (g *Grid) Fixed(p Position) bool { return g.cells[p.Row][p.Col].fixed }

// IsEmpty reports whether the cell at p holds no value.
func (g *Grid) IsEmpty(p Position) bool { return g.cells[p.Row][p.Col].value == Empty }

// Set assigns v to the cell at p and records whether it is a given.
// Out-of-range values are normalized to Empty with the fixed flag cleared.
func (g *Grid) Set(p Position, v Value, fixed bool) {
	if !v.Valid() {
		g.cells[p.Row][p.Col] = Cell{}
		return
	}
	g.cells[p.Row][p.Col] = Cell{value: v, fixed: fixed}
}

// Clear empties the cell at p and clears its fixed flag.
func (g *Grid) Clear(p Position) { g.cells[p.Row][p.Col] = Cell{} }

// EmptyPositions returns the empty cells in row-major scan order. This is
// the target-cell order every search uses.
func (g *Grid) EmptyPositions() []Position {
	out := make([]Position, 0, 81)
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g.cells[r][c].value == Empty {
				out = append(out, Position{Row: r, Col: c})
			}
		}
	}
	return out
}

// Clues counts the non-empty cells.
func (g *Grid) Clues() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g.cells[r][c].value != Empty {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep, independent copy sharing no cell with g.
func (g *Grid) Clone() *Grid {
	cp := *g
	return &cp
}

// Domain returns the digits still assignable to the empty cell at p, in
// ascending order: {1..9} minus every non-empty peer value. It is empty for
// an occupied cell. The result is always derived from the current board
// state; it is never cached, because the board mutates during search.
func (g *Grid) Domain(p Position) []Value {
	if g.cells[p.Row][p.Col].value != Empty {
		return nil
	}
	var used [10]bool
	for _, q := range Peers(p) {
		used[g.cells[q.Row][q.Col].value] = true
	}
	out := make([]Value, 0, 9)
	for v := Value(1); v <= 9; v++ {
		if !used[v] {
			out = append(out, v)
		}
	}
	return out
}

// String renders the grid for console inspection: nine rows of fixed-width
// cells with 3x3 blocks separated by dividers. Not a machine format.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r%3 == 0 && r != 0 {
			sb.WriteString("---------+---------+---------\n")
		}
		for c := 0; c < 9; c++ {
			if c%3 == 0 && c != 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(renderValue(g.cells[r][c].value))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func renderValue(v Value) string {
	if v == Empty {
		return " . "
	}
	return " " + string('0'+byte(v)) + " "
}
