package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agegechkori/2048/internal/board"
	"github.com/agegechkori/2048/internal/boardio"
	"github.com/agegechkori/2048/internal/platform/tui"
	"github.com/agegechkori/2048/internal/storage"
)

var (
	flagLimit  int
	flagClear  bool
	flagBrowse bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores for the configured variant",
	Long: `Display the top scores recorded by 'tiles play' for the configured
board size and spawn table.

Examples:
  tiles scores
  tiles scores --preset hard --limit 5
  tiles scores --clear
  tiles scores --browse`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show saved board snapshots",
	Long: `List the most recent board snapshots saved with Ctrl+S or on quit,
newest first. Boards are printed as JSON so they can be fed back into
'tiles move' and 'tiles spawn'.

Examples:
  tiles history
  tiles history --limit 1 | head -2`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all scores for the variant")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse scores of every preset interactively")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of entries to show")
}

func runScores(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	name := variant(cfg)

	store, err := storage.Open(flagDBPath, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagBrowse {
		if !isTerminal(cmd.OutOrStdout()) {
			return errors.New("--browse needs an interactive terminal")
		}
		return tui.RunScoreboard(store, presetVariants(cfg, name))
	}

	out := cmd.OutOrStdout()
	if flagClear {
		if err := store.ClearScores(name); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s\n", name)
		return nil
	}

	scores, err := store.TopScores(name, flagLimit)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", name)
	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'tiles play' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %s\n", "Rank", "Score", "Max", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %-8s  %s\n", "----", "-----", "---", "----")
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-10d  %-8d  %s\n", i+1, entry.Score, entry.MaxTile, dateStr)
	}

	if best, err := store.HighScore(name); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d\n", best)
	}
	return nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	name := variant(cfg)

	store, err := storage.Open(flagDBPath, logger)
	if err != nil {
		return err
	}
	defer store.Close()

	snaps, err := store.Snapshots(name, flagLimit)
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		return fmt.Errorf("%s: %w", name, storage.ErrNoSnapshot)
	}

	out := cmd.OutOrStdout()
	for _, snap := range snaps {
		data, err := boardio.Marshal(snap.Board)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "#%d  %s  score %d  max %d\n",
			snap.ID, snap.CreatedAt.Format("2006-01-02 15:04"), snap.Score, board.MaxTile(snap.Board))
		fmt.Fprintf(out, "%s\n", data)
	}
	return nil
}
