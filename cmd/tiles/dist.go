package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/agegechkori/2048/internal/config"
)

var distCmd = &cobra.Command{
	Use:   "dist",
	Short: "Show the spawn table",
	Long: `Print the configured spawn table: each tile value, its weight in
percent and the upper bound of its cumulative interval. A uniform draw in
[0,1) selects the first option whose bound it does not exceed.

Examples:
  tiles dist
  tiles dist --preset wild`,
	Args: cobra.NoArgs,
	RunE: runDist,
}

func runDist(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dist, err := cfg.Distribution()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Spawn table - %s\n\n", variant(cfg))
	fmt.Fprintf(out, "  %-6s  %-6s  %s\n", "Value", "Weight", "Upper")
	fmt.Fprintf(out, "  %-6s  %-6s  %s\n", "-----", "------", "-----")

	intervals := dist.Intervals()
	for i, opt := range dist.Options() {
		fmt.Fprintf(out, "  %-6d  %-6s  %.2f\n", opt.Value, fmt.Sprintf("%d%%", opt.Weight), intervals[i])
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Presets: %v\n", config.PresetNames())
	return nil
}
