package game

import (
	"math"
	"testing"

	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/shared/gamemath"
	"github.com/automoto/summit/shared/leveldata"
	"github.com/automoto/summit/systems"
)

const dt = 1.0 / 60

func newTestGame(t *testing.T, grid []string, opts ...Option) *Game {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	lvl, err := leveldata.Parse(grid)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return New(lvl, opts...)
}

var corridor = []string{
	"##########",
	"#........#",
	"#P.o.o..G#",
	"##########",
}

func TestNewStartsOnSpawn(t *testing.T) {
	g := newTestGame(t, corridor)
	v := g.View()

	if v.Player.Rect.X != 18 || v.Player.Rect.Y != 34 {
		t.Errorf("player at (%v, %v), expected (18, 34)", v.Player.Rect.X, v.Player.Rect.Y)
	}
	if !g.Alive() || g.Dashes() != cfg.Physics.MaxDashes {
		t.Errorf("alive=%v dashes=%d", g.Alive(), g.Dashes())
	}
	if g.TotalCollectibles() != 2 {
		t.Errorf("TotalCollectibles() = %d, expected 2", g.TotalCollectibles())
	}
	if text, ok := g.Message(); !ok || text != cfg.Run.IntroMessage {
		t.Errorf("Message() = %q, %v, expected the intro", text, ok)
	}
	if v.Overlay != cfg.Run.IntroMessage {
		t.Errorf("Overlay = %q", v.Overlay)
	}
}

func TestTickClampsDelta(t *testing.T) {
	g := newTestGame(t, corridor)

	g.Tick(5, nil)
	if g.Elapsed() != cfg.Run.FrameClamp {
		t.Errorf("Elapsed() = %v, expected one clamped frame %v", g.Elapsed(), cfg.Run.FrameClamp)
	}

	g.Tick(-1, nil)
	if g.Elapsed() != cfg.Run.FrameClamp {
		t.Errorf("Elapsed() = %v, a negative delta must not move the clock", g.Elapsed())
	}
	if g.Frames() != 2 {
		t.Errorf("Frames() = %d, expected 2", g.Frames())
	}
}

func TestPressIsClearedAfterRender(t *testing.T) {
	g := newTestGame(t, corridor)

	g.SetKeyDown("Space", true)
	var during []bool
	render := func(View) {
		during = append(during, g.Input().WasPressed("Space"))
	}
	g.Tick(dt, render)
	g.Tick(dt, render)

	if !during[0] {
		t.Error("press not visible during its own tick")
	}
	if during[1] {
		t.Error("press still visible on the next tick")
	}
	if !g.Input().IsDown("Space") {
		t.Error("hold must survive the latch clearing")
	}
}

func TestCollectAllThenWin(t *testing.T) {
	g := newTestGame(t, corridor)
	g.SetKeyDown("ArrowRight", true)

	elapsed, winFrame := 0.0, -1
	for frame := 0; frame < 180; frame++ {
		g.Tick(dt, nil)
		if winFrame < 0 {
			elapsed += dt
			if g.Won() {
				winFrame = frame
			}
		}
	}

	if winFrame < 0 {
		t.Fatal("never reached the goal")
	}
	if g.Collected() != g.TotalCollectibles() {
		t.Errorf("Collected() = %d, expected %d", g.Collected(), g.TotalCollectibles())
	}
	if g.FinalTime() != elapsed {
		t.Errorf("FinalTime() = %v, expected the clock at the winning frame %v", g.FinalTime(), elapsed)
	}
	if g.Elapsed() != g.FinalTime() || g.DisplayTime() != g.FinalTime() {
		t.Errorf("clock kept running after the win: %v", g.Elapsed())
	}
	if v := g.View(); v.Overlay == "" || !v.HUD.Won {
		t.Errorf("overlay = %q, expected a win summary", v.Overlay)
	}
}

func TestHazardDeathCountsOnce(t *testing.T) {
	g := newTestGame(t, []string{
		"#######",
		"#.....#",
		"#P^^^.#",
		"#######",
	})
	deaths := 0
	g.Subscribe(func(ev systems.GameEvent) {
		if ev.Kind == systems.EventDeath {
			deaths++
		}
	})

	g.SetKeyDown("ArrowRight", true)
	for i := 0; i < 10 && g.Alive(); i++ {
		g.Tick(dt, nil)
	}
	if g.Alive() {
		t.Fatal("walking into spikes did not kill")
	}
	g.SetKeyDown("ArrowRight", false)

	for i := 0; i < 10; i++ {
		g.Tick(dt, nil)
	}
	if g.Deaths() != 1 || deaths != 1 {
		t.Errorf("Deaths() = %d, events = %d, expected 1", g.Deaths(), deaths)
	}
}

func TestRestartFromInput(t *testing.T) {
	g := newTestGame(t, corridor)
	for i := 0; i < 30; i++ {
		g.Tick(dt, nil)
	}

	g.SetKeyDown("Enter", true)
	g.Tick(dt, nil)

	if g.Elapsed() != 0 {
		t.Errorf("Elapsed() = %v, expected the restart frame to skip the update", g.Elapsed())
	}
	if text, ok := g.Message(); !ok || text != cfg.Run.ResetMessage {
		t.Errorf("Message() = %q, %v", text, ok)
	}

	g.Tick(dt, nil)
	if g.Elapsed() != dt {
		t.Errorf("Elapsed() = %v, a held restart key must not restart again", g.Elapsed())
	}
}

// TestPropertiesOverScriptedRun checks frame invariants over a long run on
// the built-in level with a busy input script.
func TestPropertiesOverScriptedRun(t *testing.T) {
	g := newTestGame(t, leveldata.SummitGrid(), WithSeed(7))
	script, err := ParseScript("right:0-900,jump:20-40,jump:70,dash:90,up:90-100," +
		"jump:150-175,dash:200,left:260-330,jump:270-290,dash:300,down:300-310," +
		"jump:400-420,dash:430,jump:500-530,right:600-900,dash:640,jump:700-730")
	if err != nil {
		t.Fatalf("ParseScript() error = %v", err)
	}

	dashEvents := 0
	g.Subscribe(func(ev systems.GameEvent) {
		if ev.Kind == systems.EventDash {
			dashEvents++
		}
	})

	lvl := g.Level()
	prevDashes := g.Dashes()
	down := map[cfg.ActionID]bool{}
	for frame := 0; frame < 900; frame++ {
		for action := cfg.ActionMoveLeft; action < cfg.ActionCount; action++ {
			if want := script.Down(action, frame); want != down[action] {
				g.SetKeyDown(cfg.Controls.Group(action)[0], want)
				down[action] = want
			}
		}

		before := dashEvents
		var view View
		g.Tick(dt, func(v View) { view = v })

		if tile, ok := overlapsSolid(lvl, view.Player.Rect.Inset(1)); ok {
			t.Fatalf("frame %d: player %v inside solid tile %v", frame, view.Player.Rect, tile)
		}

		dashes := view.Player.Dashes
		if dashes < 0 || dashes > cfg.Physics.MaxDashes {
			t.Fatalf("frame %d: dashes %d out of range", frame, dashes)
		}
		if dashes < prevDashes && dashEvents == before {
			t.Fatalf("frame %d: dashes dropped %d -> %d without a dash", frame, prevDashes, dashes)
		}
		prevDashes = dashes

		active := 0
		for _, cp := range view.Checkpoints {
			if cp.Active {
				active++
			}
		}
		if active > 1 {
			t.Fatalf("frame %d: %d active checkpoints", frame, active)
		}
	}

	if dashEvents == 0 {
		t.Error("script never dashed")
	}
}

func overlapsSolid(lvl *leveldata.Level, r gamemath.Rect) (leveldata.Tile, bool) {
	const ts = leveldata.TileSize
	x0, x1 := int(math.Floor(r.X/ts)), int(math.Floor(r.Right()/ts))
	y0, y1 := int(math.Floor(r.Y/ts)), int(math.Floor(r.Bottom()/ts))
	for ty := y0; ty <= y1; ty++ {
		for tx := x0; tx <= x1; tx++ {
			tile := gamemath.NewRect(float64(tx*ts), float64(ty*ts), ts, ts)
			if lvl.Solid(tx, ty) && tile.Overlaps(r) {
				return leveldata.Tile{X: tx, Y: ty}, true
			}
		}
	}
	return leveldata.Tile{}, false
}

func TestSameSeedSameRun(t *testing.T) {
	run := func() View {
		g := newTestGame(t, leveldata.SummitGrid(), WithSeed(42))
		script, _ := ParseScript("right:0-200,jump:10-30,dash:40,jump:90-100")
		RunScript(g, script, 200, dt)
		return g.View()
	}

	a, b := run(), run()
	if a.Player != b.Player || a.HUD != b.HUD {
		t.Fatalf("runs diverged: %+v vs %+v", a.Player, b.Player)
	}
	if len(a.Particles) != len(b.Particles) {
		t.Fatalf("particle counts differ: %d vs %d", len(a.Particles), len(b.Particles))
	}
	for i := range a.Particles {
		if a.Particles[i] != b.Particles[i] {
			t.Fatalf("particle %d differs", i)
		}
	}
}

func TestViewIsASnapshot(t *testing.T) {
	g := newTestGame(t, corridor)
	v := g.View()
	v.Berries[0].Collected = true
	v.Player.Dashes = 99

	if g.View().Berries[0].Collected || g.Dashes() == 99 {
		t.Error("editing a view changed the game")
	}
}

func TestWithViewport(t *testing.T) {
	g := newTestGame(t, leveldata.SummitGrid(), WithViewport(320, 180))
	v := g.View()

	if v.ViewWidth != 320 || v.ViewHeight != 180 {
		t.Errorf("viewport = %vx%v", v.ViewWidth, v.ViewHeight)
	}
	_, py := v.Player.Rect.Center()
	if want := py - 180*cfg.Camera.FramingY; !approxEqual(v.CameraY, want) {
		t.Errorf("CameraY = %v, expected the snapped target %v", v.CameraY, want)
	}
}

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
