package board

// ReverseRows returns a board with the order of cells in every row flipped.
func ReverseRows(b Board) Board {
	out := make(Board, len(b))
	for i, row := range b {
		out[i] = reverseRow(row)
	}
	return out
}

// Transpose returns the matrix transpose: an R×C board becomes C×R with
// cell (i,j) moved to (j,i). Applying it twice yields the original board.
//
// On ragged input the width is that of the longest row and shorter rows are
// padded with empty cells, so no tile is dropped.
func Transpose(b Board) Board {
	cols := 0
	for _, row := range b {
		cols = max(cols, len(row))
	}
	out := New(cols, len(b))
	for i, row := range b {
		for j, v := range row {
			out[j][i] = v
		}
	}
	return out
}
