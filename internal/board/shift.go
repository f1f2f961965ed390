package board

import (
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Directions lists every direction in declaration order.
var Directions = []Direction{Left, Right, Up, Down}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	case Up:
		return "up"
	case Down:
		return "down"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// ParseDirection accepts a direction name or one of the w/a/s/d keys.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "l", "a":
		return Left, nil
	case "right", "r", "d":
		return Right, nil
	case "up", "u", "w":
		return Up, nil
	case "down", "s":
		return Down, nil
	}
	return 0, fmt.Errorf("board: unknown direction %q", s)
}

// MoveResult is the outcome of a single shift.
type MoveResult struct {
	Board Board
	Score int
}

// Changed reports whether the move produced a board different from before.
// Apply never rejects a move that changes nothing; callers decide.
func (r MoveResult) Changed(before Board) bool {
	return !Equal(r.Board, before)
}

// Apply shifts the board in the given direction.
// Right, Up and Down are reduced to the left shift through ReverseRows and
// Transpose. The score is the sum of per-row merge scores.
func Apply(b Board, dir Direction) MoveResult {
	switch dir {
	case Left:
		return shiftLeft(b)
	case Right:
		return shiftRight(b)
	case Up:
		res := shiftLeft(Transpose(b))
		res.Board = Transpose(res.Board)
		return res
	case Down:
		res := shiftRight(Transpose(b))
		res.Board = Transpose(res.Board)
		return res
	default:
		return MoveResult{Board: Clone(b)}
	}
}

func shiftLeft(b Board) MoveResult {
	out := make(Board, len(b))
	total := 0
	for i, row := range b {
		shifted, score := ShiftRowLeft(row)
		out[i] = shifted
		total += score
	}
	return MoveResult{Board: out, Score: total}
}

func shiftRight(b Board) MoveResult {
	res := shiftLeft(ReverseRows(b))
	res.Board = ReverseRows(res.Board)
	return res
}
