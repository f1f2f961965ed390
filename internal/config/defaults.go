package config

import (
	_ "embed"
)

//go:embed defaults/tiles.yaml
var defaultTilesYAML []byte

// Default returns the hardcoded default configuration.
func Default() TilesConfig {
	return TilesConfig{
		Board: BoardConfig{
			Rows:         4,
			Cols:         4,
			InitialTiles: 2,
		},
		Spawn: SpawnConfig{
			Preset: PresetClassic,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTilesYAML
}
