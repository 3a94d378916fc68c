package main

import (
	"fmt"
	"io"

	"github.com/automoto/summit/game"
	"github.com/automoto/summit/shared/gamemath"
	"github.com/spf13/cobra"
)

var (
	flagFrames int
	flagScript string
	flagFPS    int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a level headless from an input script",
	Long: `Advance the game at a fixed frame rate while holding the actions named in
the script, then print how the run went.

A script is a comma separated list of action:start-end frame ranges (end
exclusive) or action:frame for a single frame tap. Actions are left, right,
up, down, jump, dash and restart.

Examples:
  summit simulate --frames 240 --script "right:0-200,jump:40"
  summit simulate --level ./ledge.tmx --script "right:0-90,jump:20-30,dash:45"`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 600, "Number of frames to simulate")
	simulateCmd.Flags().StringVar(&flagScript, "script", "", "Input script")
	simulateCmd.Flags().IntVar(&flagFPS, "fps", 60, "Simulated frame rate")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if flagFrames < 0 || flagFPS <= 0 {
		return fmt.Errorf("frames must be >= 0 and fps > 0")
	}
	lvl, err := loadLevel(flagLevel)
	if err != nil {
		return err
	}
	script, err := game.ParseScript(flagScript)
	if err != nil {
		return err
	}

	g := game.New(lvl, game.WithSeed(flagSeed), game.WithLogger(logger))
	res := game.RunScript(g, script, flagFrames, 1/float64(flagFPS))
	printResult(cmd.OutOrStdout(), res)
	return nil
}

func printResult(w io.Writer, res game.Result) {
	status := "in progress"
	if res.Won {
		status = "summit reached"
	}
	fmt.Fprintf(w, "frames    %d\n", res.Frames)
	fmt.Fprintf(w, "time      %s\n", gamemath.FormatTime(res.Time))
	fmt.Fprintf(w, "status    %s\n", status)
	fmt.Fprintf(w, "berries   %d/%d\n", res.Collected, res.Total)
	fmt.Fprintf(w, "deaths    %d\n", res.Deaths)
}
