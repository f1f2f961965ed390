package config

import (
	"fmt"
	"slices"

	"github.com/samber/lo"

	"github.com/agegechkori/2048/internal/tiles"
)

// Named spawn presets.
const (
	PresetClassic = "classic"
	PresetEasy    = "easy"
	PresetHard    = "hard"
	PresetWild    = "wild"
)

var presets = map[string][]tiles.TileOption{
	PresetClassic: {{Value: 2, Weight: 90}, {Value: 4, Weight: 10}},
	PresetEasy:    {{Value: 2, Weight: 95}, {Value: 4, Weight: 5}},
	PresetHard:    {{Value: 2, Weight: 75}, {Value: 4, Weight: 25}},
	PresetWild:    {{Value: 2, Weight: 70}, {Value: 4, Weight: 20}, {Value: 8, Weight: 10}},
}

// PresetNames returns the preset names in sorted order.
func PresetNames() []string {
	names := lo.Keys(presets)
	slices.Sort(names)
	return names
}

// PresetOptions returns a copy of the named preset table.
func PresetOptions(name string) ([]tiles.TileOption, error) {
	options, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("config: unknown spawn preset %q (available: %v)", name, PresetNames())
	}
	return slices.Clone(options), nil
}

// ApplyPreset switches the config to a named preset, dropping any explicit
// options. An empty name leaves the config unchanged.
func ApplyPreset(cfg *TilesConfig, name string) error {
	if name == "" {
		return nil
	}
	if _, err := PresetOptions(name); err != nil {
		return err
	}
	cfg.Spawn.Preset = name
	cfg.Spawn.Options = nil
	return nil
}
