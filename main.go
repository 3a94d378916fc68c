// summit is a single-screen-at-a-time precision platformer.
//
// Usage:
//
//	summit                      - Play the built-in course
//	summit play --level x.tmx   - Play a Tiled or ASCII level
//	summit simulate             - Run the game headless from an input script
//	summit level                - Print a level grid and its contents
//	summit levels <dir>         - List the Tiled levels in a directory
//
// Global flags:
//
//	--tuning <path>   - YAML tuning overlay (default: ~/.summit/tuning.yaml)
//	--seed <value>    - Particle RNG seed
//	--log-level <lvl> - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/automoto/summit/config"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagTuning   string
	flagSeed     int64
	flagLogLevel string
	flagLevel    string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "summit",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "summit",
	Short: "Summit - climb a mountain of spikes, berries and dash crystals",
	Long: `Summit is a tile based precision platformer. Run, jump, wall jump and
air dash to the goal flag while collecting berries.

Controls:
  Arrows / WASD      - Move
  Space / Z / C      - Jump
  X / Shift          - Dash
  R / Enter          - Restart the run
  F1 / F2 / F11      - Toggle shake, cycle volume, toggle fullscreen`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagTuning, "tuning", "", "Path to a YAML tuning overlay")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 1, "Particle RNG seed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLevel, "level", "", "Level file (.tmx or ASCII grid); default is the built-in course")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(levelCmd)
	rootCmd.AddCommand(levelsCmd)
}

func setup(cmd *cobra.Command, args []string) error {
	lvl, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return err
	}
	logger.SetLevel(lvl)

	path, err := config.Load(flagTuning)
	if err != nil {
		return err
	}
	if path != "" {
		logger.Info("tuning applied", "path", path)
	}
	return nil
}
