package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/automoto/summit/game"
	"github.com/automoto/summit/shared/leveldata"
)

func TestLoadLevelDefaultsToSummit(t *testing.T) {
	lvl, err := loadLevel("")
	if err != nil {
		t.Fatalf("loadLevel() error = %v", err)
	}
	want := leveldata.Summit()
	if lvl.Width != want.Width || lvl.Height != want.Height || len(lvl.Berries) != len(want.Berries) {
		t.Errorf("loadLevel(\"\") = %dx%d with %d berries, want the built-in course", lvl.Width, lvl.Height, len(lvl.Berries))
	}
}

func TestLoadLevelReadsTextGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "room.txt")
	grid := "######\r\n#P.oG#\r\n\r\n######\n"
	if err := os.WriteFile(path, []byte(grid), 0o644); err != nil {
		t.Fatal(err)
	}

	lvl, err := loadLevel(path)
	if err != nil {
		t.Fatalf("loadLevel() error = %v", err)
	}
	if lvl.Width != 6 || lvl.Height != 3 {
		t.Errorf("size = %dx%d, want 6x3", lvl.Width, lvl.Height)
	}
	if len(lvl.Berries) != 1 {
		t.Errorf("berries = %d, want 1", len(lvl.Berries))
	}
}

func TestLoadLevelReportsBadGrid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("####\n#..\n####\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := loadLevel(path)
	if err == nil || !strings.Contains(err.Error(), "bad.txt") {
		t.Errorf("loadLevel() error = %v, want one naming the file", err)
	}
}

func TestLoadLevelReadsTMX(t *testing.T) {
	lvl, err := loadLevel(filepath.Join("shared", "leveldata", "testdata", "ledge.tmx"))
	if err != nil {
		t.Fatalf("loadLevel() error = %v", err)
	}
	if lvl.Width != 8 || lvl.Height != 5 {
		t.Errorf("size = %dx%d, want 8x5", lvl.Width, lvl.Height)
	}
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, game.Result{Frames: 120, Time: 2, Won: true, Collected: 2, Total: 3, Deaths: 1})
	out := buf.String()
	for _, want := range []string{"frames    120", "time      00:02.00", "summit reached", "berries   2/3", "deaths    1"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestLevelsListsDirectory(t *testing.T) {
	var buf bytes.Buffer
	levelsCmd.SetOut(&buf)
	t.Cleanup(func() { levelsCmd.SetOut(nil) })

	if err := runLevels(levelsCmd, []string{filepath.Join("shared", "leveldata", "testdata")}); err != nil {
		t.Fatalf("runLevels() error = %v", err)
	}
	if !strings.Contains(buf.String(), "ledge") || !strings.Contains(buf.String(), "8x5") {
		t.Errorf("output = %q, want the ledge level and its size", buf.String())
	}
}

func TestColorGridKeepsCells(t *testing.T) {
	grid := leveldata.Summit().String()
	got := colorGrid(grid)
	// Styling only adds escape sequences; the visible cells stay in order.
	plain := strings.Map(func(r rune) rune {
		if r == '\x1b' {
			return -1
		}
		return r
	}, got)
	if !strings.Contains(got, "#") || strings.Count(got, "\n") != strings.Count(grid, "\n") {
		t.Errorf("colorGrid changed the row structure")
	}
	if len(plain) < len(grid) {
		t.Errorf("colorGrid lost cells: %d < %d", len(plain), len(grid))
	}
}
