package sudoku

// Hint recommends a single cell and the digit that belongs there.
type Hint struct {
	Row          int  `json:"row"`
	Col          int  `json:"col"`
	Value        int  `json:"value"`
	WasIncorrect bool `json:"is_incorrect"`
}

// SelectHint picks one cell to advise on, comparing the player's board
// against the reference solution. Incorrect entries take priority: the first
// wrong non-empty cell in row-major order is returned. Otherwise the empty
// cell with the fewest legal candidates wins, earlier cells winning ties.
// ok is false when the board is complete and correct.
func SelectHint(board, solution Grid) (h Hint, ok bool) {
	// First pass: a cell the player already filled in wrong
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if board[i][j] != 0 && board[i][j] != solution[i][j] {
				return Hint{Row: i, Col: j, Value: solution[i][j], WasIncorrect: true}, true
			}
		}
	}

	// Second pass: the most constrained empty cell
	minCandidates := 10
	for i := 0; i < 9; i++ {
		for j := 0; j < 9; j++ {
			if board[i][j] != 0 {
				continue
			}
			n := len(Candidates(board, i, j))
			if n > 0 && n < minCandidates {
				minCandidates = n
				h = Hint{Row: i, Col: j, Value: solution[i][j]}
				ok = true
			}
		}
	}
	return h, ok
}
