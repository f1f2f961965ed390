package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/agegechkori/2048/internal/platform/tui"
	"github.com/agegechkori/2048/internal/storage"
)

var flagResume bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play an interactive session",
	Long: `Start an interactive session on a fresh board of the configured size.

Controls:
  Arrows/WASD/HJKL  - Shift the board
  Ctrl+S            - Save a snapshot
  ?                 - Toggle help
  Q/Esc/Ctrl+C      - Quit (the score is recorded)

A move that changes nothing does not spawn a tile. When the board has no
empty cell left, spawning stops and the board can still be shifted.

Examples:
  tiles play
  tiles play --preset hard --seed 42
  tiles play --resume`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Resume from the latest saved snapshot")
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("play needs an interactive terminal")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	gen, err := newGenerator(cfg)
	if err != nil {
		return err
	}
	name := variant(cfg)

	// Scores are optional: play on without persistence if the store fails
	var recorder tui.Recorder
	store, err := storage.Open(flagDBPath, logger)
	if err != nil {
		logger.Warn("scores will not be saved", "err", err)
	} else {
		defer store.Close()
		recorder = store
	}

	var session *tui.Session
	if flagResume && store != nil {
		snap, err := store.LatestSnapshot(name)
		switch {
		case errors.Is(err, storage.ErrNoSnapshot):
			logger.Info("no snapshot to resume, starting fresh", "variant", name)
		case err != nil:
			return err
		default:
			logger.Debug("resuming snapshot", "id", snap.ID, "score", snap.Score)
			session = tui.ResumeSession(name, snap.Board, snap.Score, gen)
		}
	}
	if session == nil {
		session, err = tui.NewSession(name, cfg.Board.Rows, cfg.Board.Cols, cfg.Board.InitialTiles, gen)
		if err != nil {
			return err
		}
	}

	if err := tui.Run(session, recorder, logger); err != nil {
		return fmt.Errorf("running session: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Final score: %d\n", session.Score())
	return nil
}
