package sudoku

// Candidates returns the digits that could legally be placed at (row, col),
// sorted ascending. A digit qualifies when it does not already appear in the
// cell's row, column, or 3x3 box. The cell itself does not have to be empty
// to be queried; a digit it already holds counts as an occupant like any
// other.
func Candidates(board Grid, row, col int) []int {
	var taken [10]bool

	// Check the row
	for j := 0; j < 9; j++ {
		if board[row][j] != 0 {
			taken[board[row][j]] = true
		}
	}

	// Check the column
	for i := 0; i < 9; i++ {
		if board[i][col] != 0 {
			taken[board[i][col]] = true
		}
	}

	// Check the 3x3 box
	startRow, startCol := BoxOrigin(row, col)
	for i := startRow; i < startRow+3; i++ {
		for j := startCol; j < startCol+3; j++ {
			if board[i][j] != 0 {
				taken[board[i][j]] = true
			}
		}
	}

	out := make([]int, 0, 9)
	for v := 1; v <= 9; v++ {
		if !taken[v] {
			out = append(out, v)
		}
	}
	return out
}
