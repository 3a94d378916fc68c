package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/automoto/summit/shared/leveldata"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// codeStyles colors grid cells when printing to a terminal.
var codeStyles = map[leveldata.Code]lipgloss.Style{
	leveldata.CodeEmpty:      lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	leveldata.CodeWall:       lipgloss.NewStyle().Foreground(lipgloss.Color("67")),
	leveldata.CodeSpikeUp:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	leveldata.CodeSpikeDown:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	leveldata.CodeSpikeLeft:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	leveldata.CodeSpikeRight: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	leveldata.CodeBerry:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
	leveldata.CodeCrystal:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	leveldata.CodeCheckpoint: lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
	leveldata.CodeSpawn:      lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	leveldata.CodeGoal:       lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
}

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Print a level grid and what it contains",
	Long: `Load a level the same way play does and print it back as an ASCII grid
followed by a summary of its contents.

Examples:
  summit level
  summit level --level ./ledge.tmx`,
	Args: cobra.NoArgs,
	RunE: runLevel,
}

// colorGrid styles runs of equal cells so a row costs few escape sequences.
func colorGrid(grid string) string {
	var b strings.Builder
	for i, row := range strings.Split(grid, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		runes := []rune(row)
		for start := 0; start < len(runes); {
			end := start + 1
			for end < len(runes) && runes[end] == runes[start] {
				end++
			}
			run := string(runes[start:end])
			if style, ok := codeStyles[leveldata.Code(runes[start])]; ok {
				run = style.Render(run)
			}
			b.WriteString(run)
			start = end
		}
	}
	return b.String()
}

func runLevel(cmd *cobra.Command, args []string) error {
	lvl, err := loadLevel(flagLevel)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, colorGrid(lvl.String()))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "size         %dx%d tiles\n", lvl.Width, lvl.Height)
	fmt.Fprintf(out, "spawn        %d,%d\n", lvl.Spawn.X, lvl.Spawn.Y)
	fmt.Fprintf(out, "spikes       %d\n", len(lvl.Spikes))
	fmt.Fprintf(out, "berries      %d\n", len(lvl.Berries))
	fmt.Fprintf(out, "crystals     %d\n", len(lvl.Crystals))
	fmt.Fprintf(out, "checkpoints  %d\n", len(lvl.Checkpoints))
	return nil
}

var levelsCmd = &cobra.Command{
	Use:   "levels <dir>",
	Short: "List the Tiled levels in a directory",
	Long: `Load every .tmx file in a directory and list it with its size and pickups.

Examples:
  summit levels ./levels
  summit play --level ./levels/ridge.tmx`,
	Args: cobra.ExactArgs(1),
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	levels, names, err := leveldata.LoadAllLevels(os.DirFS(args[0]), ".")
	if err != nil {
		return err
	}

	maxNameLen := 4 // "Name" header
	for _, name := range names {
		maxNameLen = max(maxNameLen, len(name))
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxNameLen, "Name", "Size", "Berries")
	fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxNameLen, "----", "----", "-------")
	for _, name := range names {
		lvl := levels[name]
		size := fmt.Sprintf("%dx%d", lvl.Width, lvl.Height)
		fmt.Fprintf(out, "  %-*s  %-7s  %d\n", maxNameLen, name, size, len(lvl.Berries))
	}
	return nil
}
