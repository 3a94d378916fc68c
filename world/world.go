// Package world holds the state one simulation instance owns. Every system
// receives a *World instead of reaching for package-level state, so several
// instances can run side by side.
package world

import (
	"io"
	"math/rand"

	"github.com/automoto/summit/config"
	"github.com/automoto/summit/input"
	"github.com/automoto/summit/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type World struct {
	ECS    donburi.World
	Level  *leveldata.Level
	Space  *resolv.Space // one cell per tile, solid tiles hold a tagged object
	Input  *input.Sampler
	Rand   *rand.Rand
	Logger *log.Logger

	// Viewport size in pixels, used to frame and clamp the camera.
	ViewWidth  float64
	ViewHeight float64
}

// New creates an empty world for lvl. Entities and the collision space are
// created by the factory package.
func New(lvl *leveldata.Level, seed int64, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &World{
		ECS:    donburi.NewWorld(),
		Level:  lvl,
		Input:  input.NewSampler(config.Controls),
		Rand:   rand.New(rand.NewSource(seed)),
		Logger: logger,

		ViewWidth:  float64(config.C.Width),
		ViewHeight: float64(config.C.Height),
	}
}
