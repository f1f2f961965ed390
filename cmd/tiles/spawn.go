package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agegechkori/2048/internal/board"
)

var (
	flagSpawnBoard string
	flagSpawnJSON  bool
	flagCount      int
)

var spawnCmd = &cobra.Command{
	Use:   "spawn",
	Short: "Place weighted random tiles on a board",
	Long: `Read a board and place one new tile (or --count tiles) on random
empty cells, using the configured spawn table.

Without --board a fresh empty board of the configured size is used.
Placing onto a full board fails with "no empty cell".

Examples:
  tiles spawn --count 2 --seed 42
  tiles spawn --board board.json --preset hard`,
	Args: cobra.NoArgs,
	RunE: runSpawn,
}

func init() {
	spawnCmd.Flags().StringVar(&flagSpawnBoard, "board", "", "Board JSON file (- for stdin, empty for a fresh board)")
	spawnCmd.Flags().IntVar(&flagCount, "count", 1, "Number of tiles to place")
	spawnCmd.Flags().BoolVar(&flagSpawnJSON, "json", false, "Always print the board as JSON")
}

func runSpawn(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	var b board.Board
	if flagSpawnBoard == "" {
		b = board.New(cfg.Board.Rows, cfg.Board.Cols)
	} else if b, err = readBoard(cmd.InOrStdin(), flagSpawnBoard); err != nil {
		return err
	}

	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}

	for i := range flagCount {
		next, err := gen.Place(b)
		if err != nil {
			return fmt.Errorf("tile %d of %d: %w", i+1, flagCount, err)
		}
		b = next
	}

	return writeBoard(cmd.OutOrStdout(), b, flagSpawnJSON)
}
