package domain

import "strings"

// Solution is an immutable snapshot of the 81 values of a fully assigned
// board. It is independent of the grid that produced it and carries no
// fixed flags.
type Solution struct {
	values [9][9]Value
}

// Snapshot copies the grid's current values into a Solution.
func (g *Grid) Snapshot() Solution {
	var s Solution
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			s.values[r][c] = g.cells[r][c].value
		}
	}
	return s
}

// Value returns the value at row r, column c.
func (s Solution) Value(r, c int) Value { return s.values[r][c] }

// Matrix exports the solution as a matrix of small integers.
func (s Solution) Matrix() [9][9]int {
	var m [9][9]int
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			m[r][c] = int(s.values[r][c])
		}
	}
	return m
}

// String renders the solution in the same fixed-width layout as Grid.String.
func (s Solution) String() string {
	var sb strings.Builder
	for r := 0; r < 9; r++ {
		if r%3 == 0 && r != 0 {
			sb.WriteString("---------+---------+---------\n")
		}
		for c := 0; c < 9; c++ {
			if c%3 == 0 && c != 0 {
				sb.WriteByte('|')
			}
			sb.WriteString(renderValue(s.values[r][c]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
