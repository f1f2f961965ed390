// Package board implements the pure tile-merge board operations: row
// compaction and merging, the reverse/transpose symmetries, four-way
// shifting and empty-cell lookup.
//
// Boards are treated as immutable values. Every exported function returns a
// fresh Board and never writes into the one it was given.
package board

import (
	"errors"
	"fmt"

	"github.com/samber/lo"
)

// Board is a rectangular grid of tile values indexed [row][col].
// A value of 0 marks an empty cell.
//
// Boards are expected to be rectangular; Validate checks this. The transforms
// tolerate ragged rows by padding short rows with empty cells up to the
// longest row, so no tile is ever dropped.
type Board [][]int

// Coord addresses a single cell of a specific board snapshot.
type Coord struct {
	Row int
	Col int
}

// Board validation errors.
var (
	ErrNotRectangular = errors.New("board: rows have different lengths")
	ErrNegativeTile   = errors.New("board: negative tile value")
)

// New returns an empty board with the given dimensions.
func New(rows, cols int) Board {
	b := make(Board, rows)
	for i := range b {
		b[i] = make([]int, cols)
	}
	return b
}

// Rows returns the number of rows.
func (b Board) Rows() int {
	return len(b)
}

// Cols returns the row width, taken from the first row.
func (b Board) Cols() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Clone returns a deep copy of the board.
func Clone(b Board) Board {
	if b == nil {
		return nil
	}
	out := make(Board, len(b))
	for i, row := range b {
		out[i] = append([]int(nil), row...)
	}
	return out
}

// Equal reports whether two boards hold the same values in the same shape.
func Equal(a, b Board) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if a[i][j] != b[i][j] {
				return false
			}
		}
	}
	return true
}

// Validate checks that the board is rectangular and holds no negative values.
// The engine itself never calls it; it is meant for input boundaries.
func Validate(b Board) error {
	cols := b.Cols()
	for i, row := range b {
		if len(row) != cols {
			return fmt.Errorf("%w: row %d has %d cells, want %d", ErrNotRectangular, i, len(row), cols)
		}
		for j, v := range row {
			if v < 0 {
				return fmt.Errorf("%w: %d at (%d,%d)", ErrNegativeTile, v, i, j)
			}
		}
	}
	return nil
}

// EmptyCells returns the coordinates of all empty cells in row-major order.
// A full board yields an empty slice.
func EmptyCells(b Board) []Coord {
	var cells []Coord
	for r, row := range b {
		for c, v := range row {
			if v == 0 {
				cells = append(cells, Coord{Row: r, Col: c})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(b Board) bool {
	for _, row := range b {
		for _, v := range row {
			if v == 0 {
				return true
			}
		}
	}
	return false
}

// Sum returns the total of all tile values.
func Sum(b Board) int {
	return lo.SumBy([][]int(b), func(row []int) int {
		return lo.Sum(row)
	})
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(b Board) int {
	maxVal := 0
	for _, row := range b {
		for _, v := range row {
			if v > maxVal {
				maxVal = v
			}
		}
	}
	return maxVal
}
