package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/agegechkori/2048/internal/board"
	"github.com/agegechkori/2048/internal/boardio"
	"github.com/agegechkori/2048/internal/config"
	"github.com/agegechkori/2048/internal/platform/tui"
	"github.com/agegechkori/2048/internal/rng"
	"github.com/agegechkori/2048/internal/tiles"
)

// loadConfig resolves the configuration and applies flag overrides.
func loadConfig() (config.TilesConfig, error) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	logger.Debug("loaded config", "source", src)

	if err := config.ApplyPreset(&cfg, flagPreset); err != nil {
		return cfg, err
	}
	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newGenerator builds the tile generator for cfg and logs the seed in use.
func newGenerator(cfg config.TilesConfig) (*tiles.Generator, error) {
	dist, err := cfg.Distribution()
	if err != nil {
		return nil, err
	}
	src := rng.NewSeeded(cfg.Seed)
	logger.Debug("random source ready", "seed", src.Seed())
	return tiles.NewGenerator(dist, src), nil
}

// variant names the board size and spawn table, used as the storage key.
func variant(cfg config.TilesConfig) string {
	spawn := cfg.Spawn.Preset
	if len(cfg.Spawn.Options) > 0 {
		spawn = "custom"
	}
	return fmt.Sprintf("%dx%d/%s", cfg.Board.Rows, cfg.Board.Cols, spawn)
}

// presetVariants lists current first, then every preset at the configured size.
func presetVariants(cfg config.TilesConfig, current string) []string {
	variants := []string{current}
	for _, name := range config.PresetNames() {
		v := fmt.Sprintf("%dx%d/%s", cfg.Board.Rows, cfg.Board.Cols, name)
		if v != current {
			variants = append(variants, v)
		}
	}
	return variants
}

// readBoard reads a JSON board from path, or from stdin when path is "" or "-".
func readBoard(stdin io.Reader, path string) (board.Board, error) {
	r := stdin
	if path != "" && path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("cannot open board %s: %w", path, err)
		}
		defer f.Close()
		r = f
	}
	return boardio.Decode(r)
}

// writeBoard prints the board styled on a terminal and as JSON otherwise,
// unless JSON output was requested explicitly.
func writeBoard(w io.Writer, b board.Board, asJSON bool) error {
	if asJSON || !isTerminal(w) {
		return boardio.Encode(w, b)
	}
	_, err := fmt.Fprintln(w, tui.RenderBoard(b))
	return err
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
