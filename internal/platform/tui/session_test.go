package tui

import (
	"errors"
	"testing"

	"github.com/agegechkori/2048/internal/board"
	"github.com/agegechkori/2048/internal/rng"
	"github.com/agegechkori/2048/internal/tiles"
)

var classic = tiles.MustDistribution([]tiles.TileOption{
	{Value: 2, Weight: 90},
	{Value: 4, Weight: 10},
})

func TestNewSessionPlacesInitialTiles(t *testing.T) {
	src := rng.NewSequence([]float64{0.5, 0.95}, []int{0, 14})
	s, err := NewSession("4x4/classic", 4, 4, 2, tiles.NewGenerator(classic, src))
	if err != nil {
		t.Fatalf("NewSession() failed: %v", err)
	}

	expected := board.Board{
		{2, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 4},
	}
	if got := s.Board(); !board.Equal(got, expected) {
		t.Errorf("initial board:\n%v\nwant\n%v", got, expected)
	}
	if s.Score() != 0 || s.Moves() != 0 {
		t.Errorf("fresh session score=%d moves=%d", s.Score(), s.Moves())
	}
}

func TestNewSessionTooManyTiles(t *testing.T) {
	gen := tiles.NewGenerator(classic, rng.NewSeeded(1))
	_, err := NewSession("1x1", 1, 1, 2, gen)
	if !errors.Is(err, tiles.ErrNoEmptyCell) {
		t.Errorf("NewSession(1x1, 2 tiles) error = %v, want ErrNoEmptyCell", err)
	}
}

func TestSessionMove(t *testing.T) {
	start := board.Board{
		{2, 0, 2, 0},
		{0, 4, 4, 2},
		{2, 2, 2, 2},
		{2, 4, 2, 4},
	}
	// After Left the empty cells are (0,1) (0,2) (0,3) (1,2) (1,3) (2,2) (2,3).
	src := rng.NewSequence([]float64{0.1}, []int{6})
	s := ResumeSession("4x4/classic", start, 100, tiles.NewGenerator(classic, src))

	moved, err := s.Move(board.Left)
	if err != nil {
		t.Fatalf("Move() failed: %v", err)
	}
	if !moved {
		t.Fatal("Move(Left) should change the board")
	}

	expected := board.Board{
		{4, 0, 0, 0},
		{8, 2, 0, 0},
		{4, 4, 0, 2},
		{2, 4, 2, 4},
	}
	if got := s.Board(); !board.Equal(got, expected) {
		t.Errorf("after Left:\n%v\nwant\n%v", got, expected)
	}
	if s.Score() != 120 {
		t.Errorf("score = %d, want 120", s.Score())
	}
	if s.Moves() != 1 {
		t.Errorf("moves = %d, want 1", s.Moves())
	}
}

func TestSessionMoveUnchangedSkipsPlacement(t *testing.T) {
	start := board.Board{
		{4, 2},
		{0, 0},
	}
	src := rng.NewSequence(nil, nil)
	s := ResumeSession("2x2", start, 0, tiles.NewGenerator(classic, src))

	moved, err := s.Move(board.Left)
	if err != nil || moved {
		t.Errorf("Move(Left) = %v, %v, want false, nil", moved, err)
	}
	if f, i := src.Draws(); f != 0 || i != 0 {
		t.Errorf("unchanged move consumed draws: %d floats, %d ints", f, i)
	}
}

func TestSessionBoardIsCopy(t *testing.T) {
	s := ResumeSession("2x2", board.Board{{2, 0}, {0, 0}}, 0, tiles.NewGenerator(classic, rng.NewSeeded(3)))
	b := s.Board()
	b[0][0] = 1024

	if s.Board()[0][0] != 2 {
		t.Error("Board() should return a copy")
	}
}
