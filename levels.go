package main

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/automoto/summit/shared/leveldata"
)

// loadLevel reads a Tiled map (.tmx) or a plain text grid. An empty path
// selects the built-in course.
func loadLevel(path string) (*leveldata.Level, error) {
	if path == "" {
		return leveldata.Summit(), nil
	}
	if strings.EqualFold(filepath.Ext(path), ".tmx") {
		return leveldata.LoadTMXLevel(os.DirFS(filepath.Dir(path)), filepath.Base(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var grid []string
	sc := bufio.NewScanner(bytes.NewReader(data))
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if line == "" {
			continue
		}
		grid = append(grid, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	lvl, err := leveldata.Parse(grid)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lvl, nil
}
