package sudoku

// Grid is a 9x9 digit grid. A zero value means the cell is empty.
type Grid [9][9]int

// BoxOrigin returns the top-left coordinates of the 3x3 box containing the cell.
func BoxOrigin(row, col int) (int, int) {
	return 3 * (row / 3), 3 * (col / 3)
}

// IsFull reports whether every cell holds a digit.
func (g Grid) IsFull() bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return false
			}
		}
	}
	return true
}
