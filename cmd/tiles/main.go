// tiles is a command-line front end for the tile-merge board engine.
//
// Usage:
//
//	tiles move <dir>        - Shift a board left/right/up/down and print the score
//	tiles spawn             - Place one weighted random tile on a board
//	tiles dist              - Show the spawn table and its cumulative intervals
//	tiles play              - Play an interactive session in the terminal
//	tiles scores            - Show high scores for the configured variant
//	tiles history           - Show stored board snapshots
//
// Global flags:
//
//	--config <path>  - Custom YAML configuration
//	--preset <name>  - Spawn preset (classic, easy, hard, wild)
//	--seed <value>   - RNG seed for reproducible spawns
//	--db <path>      - Database path (default: ~/.tiles/scores.db)
//	--verbose        - Debug logging
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig  string
	flagPreset  string
	flagSeed    int64
	flagDBPath  string
	flagVerbose bool

	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "tiles"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tiles",
	Short: "Tile-merge board engine",
	Long: `tiles shifts and merges sliding-tile puzzle boards and spawns new
tiles from a weighted table.

Boards are read and written as row-major JSON matrices, for example
[[2,0,2,0],[0,4,4,2],[2,2,2,2],[2,4,2,4]].

Examples:
  echo '[[2,0,2,0],[0,4,4,2],[2,2,2,2],[2,4,2,4]]' | tiles move left
  tiles spawn --board board.json --seed 7
  tiles dist --preset wild
  tiles play --preset hard`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Spawn preset: classic, easy, hard, wild")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = config seed, then time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tiles/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(spawnCmd)
	rootCmd.AddCommand(distCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(historyCmd)
}
