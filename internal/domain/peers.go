package domain

// peersTable maps each cell to its 20 peers: the cells sharing its row,
// column, or 3x3 box, deduplicated and excluding the cell itself. The 9x9
// topology never changes, so the table is built once at package init and
// shared by every Grid.
var peersTable [81][]Position

func init() {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			var seen [9][9]bool
			peers := make([]Position, 0, 20)
			add := func(pr, pc int) {
				if (pr == r && pc == c) || seen[pr][pc] {
					return
				}
				seen[pr][pc] = true
				peers = append(peers, Position{Row: pr, Col: pc})
			}
			for i := 0; i < 9; i++ {
				add(r, i)
				add(i, c)
			}
			br, bc := (r/3)*3, (c/3)*3
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					add(br+dr, bc+dc)
				}
			}
			peersTable[r*9+c] = peers
		}
	}
}

// Peers returns the 20 peer positions of p. The returned slice is shared
// and must not be modified.
func Peers(p Position) []Position {
	return peersTable[p.Row*9+p.Col]
}
