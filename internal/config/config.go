// Package config provides YAML-based configuration loading for the tile
// engine: board dimensions and the weighted spawn table.
package config

import (
	"errors"
	"fmt"

	"github.com/agegechkori/2048/internal/tiles"
)

// TilesConfig contains all configuration for a tile engine session.
type TilesConfig struct {
	Board BoardConfig `yaml:"board"`
	Spawn SpawnConfig `yaml:"spawn"`
	Seed  int64       `yaml:"seed"` // 0 = random based on time
}

// BoardConfig defines the board dimensions.
type BoardConfig struct {
	Rows         int `yaml:"rows"`
	Cols         int `yaml:"cols"`
	InitialTiles int `yaml:"initial_tiles"` // Tiles placed on a fresh board
}

// SpawnConfig selects the spawn table. Explicit options take precedence
// over the preset.
type SpawnConfig struct {
	Preset  string             `yaml:"preset"`
	Options []tiles.TileOption `yaml:"options"`
}

// ErrInvalidBoard is returned for board dimensions that cannot hold a tile.
var ErrInvalidBoard = errors.New("config: invalid board dimensions")

// Validate checks board dimensions and the spawn table.
func (c TilesConfig) Validate() error {
	if c.Board.Rows < 1 || c.Board.Cols < 1 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidBoard, c.Board.Rows, c.Board.Cols)
	}
	if c.Board.InitialTiles < 0 || c.Board.InitialTiles > c.Board.Rows*c.Board.Cols {
		return fmt.Errorf("%w: %d initial tiles on %dx%d", ErrInvalidBoard, c.Board.InitialTiles, c.Board.Rows, c.Board.Cols)
	}
	_, err := c.Distribution()
	return err
}

// SpawnOptions returns the effective option table.
func (c TilesConfig) SpawnOptions() ([]tiles.TileOption, error) {
	if len(c.Spawn.Options) > 0 {
		return c.Spawn.Options, nil
	}
	name := c.Spawn.Preset
	if name == "" {
		name = PresetClassic
	}
	return PresetOptions(name)
}

// Distribution builds the validated spawn distribution.
func (c TilesConfig) Distribution() (*tiles.Distribution, error) {
	options, err := c.SpawnOptions()
	if err != nil {
		return nil, err
	}
	d, err := tiles.NewDistribution(options)
	if err != nil {
		return nil, fmt.Errorf("config: spawn table: %w", err)
	}
	return d, nil
}
