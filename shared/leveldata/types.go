// Package leveldata turns an authoring grid of single-character cell codes
// into a level: an immutable tile grid plus the entity records extracted from
// marker cells. It has no dependencies on ebitengine or donburi.
package leveldata

import (
	"math"

	"github.com/automoto/summit/config"
	"github.com/automoto/summit/shared/gamemath"
)

// TileSize is the edge length of one grid cell in pixels.
const TileSize = config.TileSize

// Code is a single authoring-grid cell code.
type Code rune

const (
	CodeEmpty      Code = '.'
	CodeWall       Code = '#'
	CodeSpikeUp    Code = '^'
	CodeSpikeDown  Code = 'v'
	CodeSpikeLeft  Code = '<'
	CodeSpikeRight Code = '>'
	CodeBerry      Code = 'o'
	CodeCrystal    Code = 'C'
	CodeCheckpoint Code = 'K'
	CodeSpawn      Code = 'P'
	CodeGoal       Code = 'G'
)

// Valid reports whether c is one of the known cell codes.
func (c Code) Valid() bool {
	switch c {
	case CodeEmpty, CodeWall, CodeSpikeUp, CodeSpikeDown, CodeSpikeLeft, CodeSpikeRight,
		CodeBerry, CodeCrystal, CodeCheckpoint, CodeSpawn, CodeGoal:
		return true
	}
	return false
}

// Cell is the category of a parsed tile.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellSolid
)

// Orientation is the direction a spike points.
type Orientation int

const (
	Up Orientation = iota
	Down
	Left
	Right
)

func (o Orientation) String() string {
	switch o {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "unknown"
}

// Code returns the authoring code for the orientation.
func (o Orientation) Code() Code {
	switch o {
	case Down:
		return CodeSpikeDown
	case Left:
		return CodeSpikeLeft
	case Right:
		return CodeSpikeRight
	}
	return CodeSpikeUp
}

// Tile is a grid coordinate.
type Tile struct {
	X, Y int
}

// Origin returns the pixel position of the tile's top-left corner.
func (t Tile) Origin() (float64, float64) {
	return float64(t.X * TileSize), float64(t.Y * TileSize)
}

// Spike is a static hazard.
type Spike struct {
	Tile        Tile
	Orientation Orientation
}

// Rect returns the spike's hitbox, inset from its tile so the points are
// dangerous and the base is not.
func (s Spike) Rect() gamemath.Rect {
	x, y := s.Tile.Origin()
	switch s.Orientation {
	case Down:
		return gamemath.NewRect(x+2, y+5, TileSize-4, TileSize-5)
	case Left:
		return gamemath.NewRect(x+1, y+2, TileSize-5, TileSize-4)
	case Right:
		return gamemath.NewRect(x+5, y+2, TileSize-5, TileSize-4)
	}
	return gamemath.NewRect(x+2, y+1, TileSize-4, TileSize-5)
}

// Berry is a collectible, positioned by its center.
type Berry struct {
	Tile  Tile
	X, Y  float64
	Phase float64 // decorative bob offset in radians
}

// Crystal is a dash recharge pickup, positioned by its center.
type Crystal struct {
	Tile Tile
	X, Y float64
}

// Checkpoint is a respawn anchor. IDs follow scan order.
type Checkpoint struct {
	ID   int
	Tile Tile
	X, Y float64 // top-left corner of the tile
}

// Rect returns the checkpoint trigger area.
func (c Checkpoint) Rect() gamemath.Rect {
	return gamemath.NewRect(c.X, c.Y, TileSize, TileSize).Inset(config.Pickup.CheckpointInset)
}

// Level is a parsed level. The cell grid and entity lists never change after
// parsing; per-run entity state lives with the simulation.
type Level struct {
	Width, Height int
	Cells         []Cell // row-major

	Spikes      []Spike
	Berries     []Berry
	Crystals    []Crystal
	Checkpoints []Checkpoint
	Spawn       Tile
	Goal        gamemath.Rect
}

// PixelWidth returns the level width in pixels.
func (l *Level) PixelWidth() float64 { return float64(l.Width * TileSize) }

// PixelHeight returns the level height in pixels.
func (l *Level) PixelHeight() float64 { return float64(l.Height * TileSize) }

// InBounds reports whether (tx, ty) lies inside the grid.
func (l *Level) InBounds(tx, ty int) bool {
	return tx >= 0 && ty >= 0 && tx < l.Width && ty < l.Height
}

// Cell returns the category at (tx, ty). Out of bounds is solid.
func (l *Level) Cell(tx, ty int) Cell {
	if !l.InBounds(tx, ty) {
		return CellSolid
	}
	return l.Cells[ty*l.Width+tx]
}

// Solid reports whether (tx, ty) blocks movement.
func (l *Level) Solid(tx, ty int) bool {
	return l.Cell(tx, ty) == CellSolid
}

// berryPhase derives a stable animation offset from a tile coordinate so
// that parsing stays deterministic.
func berryPhase(x, y int) float64 {
	h := uint32(x)*73856093 ^ uint32(y)*19349663
	h ^= h >> 13
	h *= 0x5bd1e995
	h ^= h >> 15
	return float64(h%10000) / 10000 * 2 * math.Pi
}
