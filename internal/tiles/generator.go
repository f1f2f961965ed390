package tiles

import (
	"errors"

	"github.com/agegechkori/2048/internal/board"
)

// ErrNoEmptyCell is returned when a tile is requested for a full board.
// It is an expected end-of-game condition, not a defect.
var ErrNoEmptyCell = errors.New("tiles: no empty cell")

// RandomSource is the randomness a Generator consumes.
type RandomSource interface {
	// Float64 returns a uniform value in [0,1).
	Float64() float64
	// IntRange returns a uniform integer in [lo,hi).
	IntRange(lo, hi int) int
}

// Generator places weighted random tiles on empty cells.
// It is as safe for concurrent use as its RandomSource.
type Generator struct {
	dist *Distribution
	src  RandomSource
}

// NewGenerator creates a generator drawing values from dist and randomness
// from src.
func NewGenerator(dist *Distribution, src RandomSource) *Generator {
	return &Generator{dist: dist, src: src}
}

// Distribution returns the value table used by the generator.
func (g *Generator) Distribution() *Distribution {
	return g.dist
}

// Next picks one of the given empty cells and a tile value for it.
// The cell is drawn before the value; tests replaying a fixed sequence rely
// on that order.
func (g *Generator) Next(empty []board.Coord) (board.Coord, int, error) {
	if len(empty) == 0 {
		return board.Coord{}, 0, ErrNoEmptyCell
	}
	cell := empty[g.src.IntRange(0, len(empty))]
	value := g.dist.Resolve(g.src.Float64())
	return cell, value, nil
}

// Place returns a copy of b with one new tile on a random empty cell.
// Exactly two draws are consumed from the source per successful call.
func (g *Generator) Place(b board.Board) (board.Board, error) {
	cell, value, err := g.Next(board.EmptyCells(b))
	if err != nil {
		return nil, err
	}
	out := board.Clone(b)
	out[cell.Row][cell.Col] = value
	return out, nil
}

// PlaceRandomTile places one tile on b using dist and src.
func PlaceRandomTile(b board.Board, dist *Distribution, src RandomSource) (board.Board, error) {
	return NewGenerator(dist, src).Place(b)
}
