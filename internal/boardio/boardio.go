// Package boardio encodes boards as row-major JSON integer matrices, e.g.
// [[2,0,2,0],[0,4,4,2]].
package boardio

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"

	"github.com/agegechkori/2048/internal/board"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Unmarshal decodes and validates a board.
func Unmarshal(data []byte) (board.Board, error) {
	var rows [][]int
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("boardio: cannot parse board: %w", err)
	}
	return validated(rows)
}

// Marshal encodes a board on a single line.
func Marshal(b board.Board) ([]byte, error) {
	if b == nil {
		b = board.Board{}
	}
	data, err := json.Marshal([][]int(b))
	if err != nil {
		return nil, fmt.Errorf("boardio: cannot encode board: %w", err)
	}
	return data, nil
}

// Decode reads a single board from r.
func Decode(r io.Reader) (board.Board, error) {
	var rows [][]int
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("boardio: cannot read board: %w", err)
	}
	return validated(rows)
}

// Encode writes b to w followed by a newline.
func Encode(w io.Writer, b board.Board) error {
	data, err := Marshal(b)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("boardio: cannot write board: %w", err)
	}
	return nil
}

func validated(rows [][]int) (board.Board, error) {
	b := board.Board(rows)
	if err := board.Validate(b); err != nil {
		return nil, fmt.Errorf("boardio: %w", err)
	}
	return b, nil
}
