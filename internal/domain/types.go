package domain

// Board is the wire and persistence form of a grid: current values plus the
// fixed mask marking given clues.
type Board struct {
	Values [9][9]uint8 `json:"values"`
	Fixed  [9][9]bool  `json:"fixed,omitempty"`
}

// Hint describes a suggested next assignment for the UI.
type Hint struct {
	Message string   `json:"message,omitempty"`
	Cell    Position `json:"cell"`
	Value   uint8    `json:"value,omitempty"`
}

// Puzzle is a persisted Sudoku with metadata.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty,omitempty"`
	Board      Board      `json:"board"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name  string `json:"name,omitempty"`
	Notes string `json:"notes,omitempty"`
}

// Grid rebuilds the playable grid from the stored board.
func (p *Puzzle) Grid() *Grid { return FromBoard(p.Board) }

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}
