// Package game owns one run of the platformer: the world, the frame loop
// and the read-only view handed to renderers.
package game

import (
	"io"

	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/input"
	"github.com/automoto/summit/shared/gamemath"
	"github.com/automoto/summit/shared/leveldata"
	"github.com/automoto/summit/systems"
	"github.com/automoto/summit/systems/factory"
	"github.com/automoto/summit/world"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

type Game struct {
	world  *world.World
	frames uint64
}

type options struct {
	seed   int64
	logger *log.Logger
	width  int
	height int
}

// Option configures a Game.
type Option func(*options)

// WithSeed seeds the particle randomness. Runs with equal seeds and inputs
// are identical.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

func WithLogger(l *log.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithViewport sets the view size the camera frames and clamps against.
func WithViewport(width, height int) Option {
	return func(o *options) {
		o.width = width
		o.height = height
	}
}

// New creates a game on lvl with the player standing on the spawn tile.
func New(lvl *leveldata.Level, opts ...Option) *Game {
	o := options{
		seed:   1,
		logger: log.New(io.Discard),
		width:  cfg.C.Width,
		height: cfg.C.Height,
	}
	for _, opt := range opts {
		opt(&o)
	}

	w := world.New(lvl, o.seed, o.logger)
	w.ViewWidth = float64(o.width)
	w.ViewHeight = float64(o.height)
	factory.Populate(w)
	systems.SnapCamera(w)

	g := &Game{world: w}
	g.Subscribe(func(ev systems.GameEvent) {
		w.Logger.Debug("event", "kind", ev.Kind, "x", ev.X, "y", ev.Y)
	})

	w.Logger.Info("run started",
		"width", lvl.Width, "height", lvl.Height,
		"berries", len(lvl.Berries), "checkpoints", len(lvl.Checkpoints))
	return g
}

// Input returns the sampler that front ends feed key transitions into.
func (g *Game) Input() *input.Sampler {
	return g.world.Input
}

// SetKeyDown reports a physical key transition for a control code.
func (g *Game) SetKeyDown(code string, down bool) {
	g.world.Input.SetKeyDown(code, down)
}

// Subscribe registers fn for every gameplay event. Events are delivered at
// the end of the tick that produced them, before rendering.
func (g *Game) Subscribe(fn func(systems.GameEvent)) {
	systems.GameEvents.Subscribe(g.world.ECS, func(_ donburi.World, ev systems.GameEvent) {
		fn(ev)
	})
}

// Tick runs one frame: update with dt clamped to the frame ceiling, event
// delivery, render, then clearing of this frame's press latches. render may
// be nil.
func (g *Game) Tick(dt float64, render func(View)) {
	dt = gamemath.Clamp(dt, 0, cfg.Run.FrameClamp)

	systems.Update(g.world, dt)
	systems.GameEvents.ProcessEvents(g.world.ECS)
	g.frames++

	if render != nil {
		render(g.View())
	}
	g.world.Input.EndFrame()
}

// Restart resets the run as if restart had been pressed.
func (g *Game) Restart() {
	systems.RestartRun(g.world)
	systems.GameEvents.ProcessEvents(g.world.ECS)
}

// Frames returns the number of ticks run so far.
func (g *Game) Frames() uint64 { return g.frames }

func (g *Game) Level() *leveldata.Level { return g.world.Level }

// Elapsed returns the run clock in seconds. It stops when the run is won.
func (g *Game) Elapsed() float64 { return systems.Run(g.world).Elapsed }

// FinalTime returns the time the goal was reached, or 0 before that.
func (g *Game) FinalTime() float64 { return systems.Run(g.world).WinTime }

// DisplayTime returns the time a HUD should show.
func (g *Game) DisplayTime() float64 {
	run := systems.Run(g.world)
	if run.Won {
		return run.WinTime
	}
	return run.Elapsed
}

func (g *Game) Collected() int { return systems.Run(g.world).Collected }

func (g *Game) TotalCollectibles() int { return len(g.world.Level.Berries) }

func (g *Game) Deaths() int { return systems.Run(g.world).Deaths }

func (g *Game) Won() bool { return systems.Run(g.world).Won }

// Dashes returns the player's remaining dash charges.
func (g *Game) Dashes() int {
	if p := g.player(); p != nil {
		return p.Dashes
	}
	return 0
}

// Alive reports whether the player is alive.
func (g *Game) Alive() bool {
	p := g.player()
	return p != nil && !p.Dead
}

// Message returns the status line while it is visible.
func (g *Game) Message() (string, bool) {
	msg := components.MessageState.Get(components.MessageState.MustFirst(g.world.ECS))
	return msg.Text, msg.Timer > 0
}

// Camera returns the view's top-left corner and the shake intensity.
func (g *Game) Camera() (x, y, shake float64) {
	e := components.Camera.MustFirst(g.world.ECS)
	pos := components.Camera.Get(e).Position
	return pos.X, pos.Y, components.ScreenShake.Get(e).Intensity
}

// PlayerState returns a display label for the player.
func (g *Game) PlayerState() systems.PlayerState {
	return systems.CurrentPlayerState(g.world)
}

func (g *Game) player() *components.PlayerData {
	e, ok := components.Player.First(g.world.ECS)
	if !ok {
		return nil
	}
	return components.Player.Get(e)
}
