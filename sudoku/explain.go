package sudoku

import (
	"fmt"
	"strconv"
	"strings"
)

// Explain renders the justification text for a hint. Coordinates in the text
// are 1-indexed. The supporting clauses list, in order, the other digits in
// the cell's row, column, and box; when correcting a wrong entry the cell's
// own value is left out of those lists.
func Explain(board Grid, h Hint) string {
	var b strings.Builder

	if h.WasIncorrect {
		fmt.Fprintf(&b, "The cell at row %d, column %d currently holds %d, which does not match the solution. The correct digit is %d because: ",
			h.Row+1, h.Col+1, board[h.Row][h.Col], h.Value)
	} else {
		fmt.Fprintf(&b, "The cell at row %d, column %d can be filled with %d because: ",
			h.Row+1, h.Col+1, h.Value)
	}

	// Row clause: skip the cell's own (wrong) value
	rowNums := make([]int, 0, 9)
	for j := 0; j < 9; j++ {
		if board[h.Row][j] != 0 && board[h.Row][j] != board[h.Row][h.Col] {
			rowNums = append(rowNums, board[h.Row][j])
		}
	}
	fmt.Fprintf(&b, "Row %d contains %s. The digit %d does not appear in this row. ",
		h.Row+1, digitList(rowNums), h.Value)

	// Column clause: skip the target cell itself when correcting
	colNums := make([]int, 0, 9)
	for i := 0; i < 9; i++ {
		if board[i][h.Col] != 0 && (i != h.Row || !h.WasIncorrect) {
			colNums = append(colNums, board[i][h.Col])
		}
	}
	fmt.Fprintf(&b, "Column %d contains %s. The digit %d does not appear in this column. ",
		h.Col+1, digitList(colNums), h.Value)

	// Box clause
	startRow, startCol := BoxOrigin(h.Row, h.Col)
	boxNums := make([]int, 0, 9)
	for i := startRow; i < startRow+3; i++ {
		for j := startCol; j < startCol+3; j++ {
			if board[i][j] != 0 && (i != h.Row || j != h.Col || !h.WasIncorrect) {
				boxNums = append(boxNums, board[i][j])
			}
		}
	}
	fmt.Fprintf(&b, "The 3x3 box around this cell contains %s. The digit %d does not appear in this box.",
		digitList(boxNums), h.Value)

	return b.String()
}

func digitList(nums []int) string {
	if len(nums) == 0 {
		return "no digits"
	}
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = strconv.Itoa(n)
	}
	return "the digits " + strings.Join(parts, ", ")
}
