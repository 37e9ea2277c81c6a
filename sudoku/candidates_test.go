package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBoard() Grid {
	return Grid{
		{5, 3, 0, 0, 7, 0, 0, 0, 0},
		{6, 0, 0, 1, 9, 5, 0, 0, 0},
		{0, 9, 8, 0, 0, 0, 0, 6, 0},
		{8, 0, 0, 0, 6, 0, 0, 0, 3},
		{4, 0, 0, 8, 0, 3, 0, 0, 1},
		{7, 0, 0, 0, 2, 0, 0, 0, 6},
		{0, 6, 0, 0, 0, 0, 2, 8, 0},
		{0, 0, 0, 4, 1, 9, 0, 0, 5},
		{0, 0, 0, 0, 8, 0, 0, 7, 9},
	}
}

func TestCandidatesExcludeRowColBox(t *testing.T) {
	board := sampleBoard()

	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			for _, v := range Candidates(board, r, c) {
				for j := 0; j < 9; j++ {
					if j != c {
						assert.NotEqual(t, v, board[r][j], "candidate %d at (%d,%d) already in row", v, r, c)
					}
					if j != r {
						assert.NotEqual(t, v, board[j][c], "candidate %d at (%d,%d) already in column", v, r, c)
					}
				}
				br, bc := BoxOrigin(r, c)
				for i := br; i < br+3; i++ {
					for j := bc; j < bc+3; j++ {
						if i != r || j != c {
							assert.NotEqual(t, v, board[i][j], "candidate %d at (%d,%d) already in box", v, r, c)
						}
					}
				}
			}
		}
	}
}

func TestCandidatesEmptyBoard(t *testing.T) {
	var board Grid
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, Candidates(board, 4, 4))
}

func TestCandidatesKnownCell(t *testing.T) {
	board := sampleBoard()
	// (0,2): row has 5,3,7; col has 8; box has 5,3,6,9,8
	require.Equal(t, []int{1, 2, 4}, Candidates(board, 0, 2))
}

func TestCandidatesFullyConstrained(t *testing.T) {
	board := Grid{
		{0, 2, 3, 4, 5, 6, 7, 8, 9},
	}
	board[1][0] = 1
	require.Empty(t, Candidates(board, 0, 0))
}

func TestCandidatesOnFilledCell(t *testing.T) {
	var board Grid
	board[0][0] = 5
	// Querying a filled cell is allowed; its digit counts as a row occupant.
	require.Equal(t, []int{1, 2, 3, 4, 6, 7, 8, 9}, Candidates(board, 0, 0))
}
