package leveldata

import (
	"errors"
	"fmt"
	"strings"

	"github.com/automoto/summit/config"
	"github.com/automoto/summit/shared/gamemath"
)

var (
	ErrEmptyGrid   = errors.New("empty grid")
	ErrRaggedGrid  = errors.New("rows differ in width")
	ErrUnknownCode = errors.New("unknown cell code")
)

// Parse extracts a level from an authoring grid. Cells are scanned
// top-to-bottom, left-to-right; marker cells are cleared to empty and become
// entity records in scan order. Without a spawn marker the player starts at
// tile (2, 2); without a goal marker the goal is the full tile at
// (width-3, height-3). When a marker repeats, the last one wins.
func Parse(grid []string) (*Level, error) {
	if len(grid) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len([]rune(grid[0]))
	if width == 0 {
		return nil, ErrEmptyGrid
	}
	height := len(grid)

	lvl := &Level{
		Width:  width,
		Height: height,
		Cells:  make([]Cell, width*height),
		Spawn:  Tile{X: 2, Y: 2},
		Goal: gamemath.NewRect(
			float64((width-3)*TileSize), float64((height-3)*TileSize), TileSize, TileSize,
		),
	}

	for y, row := range grid {
		runes := []rune(row)
		if len(runes) != width {
			return nil, fmt.Errorf("row %d has %d cells, expected %d: %w", y, len(runes), width, ErrRaggedGrid)
		}
		for x, r := range runes {
			c := Code(r)
			if !c.Valid() {
				return nil, fmt.Errorf("cell (%d, %d) %q: %w", x, y, r, ErrUnknownCode)
			}
			lvl.add(Tile{X: x, Y: y}, c)
		}
	}

	return lvl, nil
}

// MustParse is like Parse but panics on error.
func MustParse(grid []string) *Level {
	lvl, err := Parse(grid)
	if err != nil {
		panic(fmt.Sprintf("leveldata: %v", err))
	}
	return lvl
}

func (l *Level) add(t Tile, c Code) {
	px, py := t.Origin()
	cx, cy := px+TileSize/2, py+TileSize/2

	switch c {
	case CodeWall:
		l.Cells[t.Y*l.Width+t.X] = CellSolid
	case CodeSpikeUp:
		l.Spikes = append(l.Spikes, Spike{Tile: t, Orientation: Up})
	case CodeSpikeDown:
		l.Spikes = append(l.Spikes, Spike{Tile: t, Orientation: Down})
	case CodeSpikeLeft:
		l.Spikes = append(l.Spikes, Spike{Tile: t, Orientation: Left})
	case CodeSpikeRight:
		l.Spikes = append(l.Spikes, Spike{Tile: t, Orientation: Right})
	case CodeBerry:
		l.Berries = append(l.Berries, Berry{Tile: t, X: cx, Y: cy, Phase: berryPhase(t.X, t.Y)})
	case CodeCrystal:
		l.Crystals = append(l.Crystals, Crystal{Tile: t, X: cx, Y: cy})
	case CodeCheckpoint:
		l.Checkpoints = append(l.Checkpoints, Checkpoint{ID: len(l.Checkpoints), Tile: t, X: px, Y: py})
	case CodeSpawn:
		l.Spawn = t
	case CodeGoal:
		l.Goal = gamemath.NewRect(px, py, TileSize, TileSize).Inset(config.Pickup.GoalInset)
	}
}

// String renders the level back into an authoring grid with its markers.
func (l *Level) String() string {
	b := NewBuilder(l.Width, l.Height)
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			if l.Solid(x, y) {
				b.Set(x, y, CodeWall)
			}
		}
	}
	for _, s := range l.Spikes {
		b.Set(s.Tile.X, s.Tile.Y, s.Orientation.Code())
	}
	for _, br := range l.Berries {
		b.Set(br.Tile.X, br.Tile.Y, CodeBerry)
	}
	for _, c := range l.Crystals {
		b.Set(c.Tile.X, c.Tile.Y, CodeCrystal)
	}
	for _, c := range l.Checkpoints {
		b.Set(c.Tile.X, c.Tile.Y, CodeCheckpoint)
	}
	b.Set(l.Spawn.X, l.Spawn.Y, CodeSpawn)
	gx, gy := l.Goal.Center()
	b.Set(int(gx)/TileSize, int(gy)/TileSize, CodeGoal)
	return strings.Join(b.Grid(), "\n")
}
