package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agegechkori/2048/internal/board"
)

var (
	flagMoveBoard string
	flagMoveJSON  bool
)

var moveCmd = &cobra.Command{
	Use:   "move <left|right|up|down>",
	Short: "Shift a board in one direction",
	Long: `Read a board, shift it in the given direction and print the new
board followed by the merge score.

A move that changes nothing is not an error: the same board is printed
with score 0.

Examples:
  tiles move left --board board.json
  echo '[[2,2],[4,4]]' | tiles move right --json`,
	Args: cobra.ExactArgs(1),
	RunE: runMove,
}

func init() {
	moveCmd.Flags().StringVar(&flagMoveBoard, "board", "-", "Board JSON file (- for stdin)")
	moveCmd.Flags().BoolVar(&flagMoveJSON, "json", false, "Always print the board as JSON")
}

func runMove(cmd *cobra.Command, args []string) error {
	dir, err := board.ParseDirection(args[0])
	if err != nil {
		return err
	}

	b, err := readBoard(cmd.InOrStdin(), flagMoveBoard)
	if err != nil {
		return err
	}

	res := board.Apply(b, dir)
	logger.Debug("applied move", "dir", dir, "score", res.Score, "changed", res.Changed(b))

	out := cmd.OutOrStdout()
	if err := writeBoard(out, res.Board, flagMoveJSON); err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "score: %d\n", res.Score)
	return err
}
