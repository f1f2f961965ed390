package tui

import (
	"fmt"

	"github.com/agegechkori/2048/internal/board"
	"github.com/agegechkori/2048/internal/tiles"
)

// Session owns one board and its running score. It sequences moves and
// tile placement; it does not judge whether the game is over.
type Session struct {
	variant string
	gen     *tiles.Generator
	board   board.Board
	score   int
	moves   int
}

// NewSession creates a session on an empty rows×cols board with the given
// number of starting tiles.
func NewSession(variant string, rows, cols, initialTiles int, gen *tiles.Generator) (*Session, error) {
	s := &Session{
		variant: variant,
		gen:     gen,
		board:   board.New(rows, cols),
	}
	for i := range initialTiles {
		next, err := gen.Place(s.board)
		if err != nil {
			return nil, fmt.Errorf("tui: placing starting tile %d: %w", i+1, err)
		}
		s.board = next
	}
	return s, nil
}

// ResumeSession continues from a stored board and score.
func ResumeSession(variant string, b board.Board, score int, gen *tiles.Generator) *Session {
	return &Session{
		variant: variant,
		gen:     gen,
		board:   board.Clone(b),
		score:   score,
	}
}

// Move shifts the board. If the board changed, the merge score is added and
// a new tile is placed. Returns whether the board changed. The only error is
// tiles.ErrNoEmptyCell, returned after the shift has been applied.
func (s *Session) Move(dir board.Direction) (bool, error) {
	res := board.Apply(s.board, dir)
	if !res.Changed(s.board) {
		return false, nil
	}

	s.board = res.Board
	s.score += res.Score
	s.moves++

	next, err := s.gen.Place(s.board)
	if err != nil {
		return true, err
	}
	s.board = next
	return true, nil
}

// Board returns a copy of the current board.
func (s *Session) Board() board.Board {
	return board.Clone(s.board)
}

// Score returns the accumulated merge score.
func (s *Session) Score() int {
	return s.score
}

// Moves returns the number of moves that changed the board.
func (s *Session) Moves() int {
	return s.moves
}

// Variant returns the session's variant key.
func (s *Session) Variant() string {
	return s.variant
}
