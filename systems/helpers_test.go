package systems

import (
	"testing"

	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/shared/leveldata"
	"github.com/automoto/summit/systems/factory"
	"github.com/automoto/summit/world"
	"github.com/yohamta/donburi"
)

const testDT = 1.0 / 60

// room is a 12x8 box with the spawn on the floor at tile (1, 6).
var room = []string{
	"############",
	"#..........#",
	"#..........#",
	"#..........#",
	"#..........#",
	"#..........#",
	"#P.........#",
	"############",
}

func newTestWorld(t *testing.T, grid []string) *world.World {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	lvl, err := leveldata.Parse(grid)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	w := world.New(lvl, 1, nil)
	factory.Populate(w)
	SnapCamera(w)
	return w
}

type player struct {
	data    *components.PlayerData
	physics *components.PhysicsData
	obj     *components.ObjectData
}

func getPlayer(t *testing.T, w *world.World) player {
	t.Helper()
	_, data, physics, obj, ok := playerParts(w)
	if !ok {
		t.Fatal("world has no player")
	}
	return player{data: data, physics: physics, obj: obj}
}

// recordEvents collects every event delivered to the world.
func recordEvents(w *world.World) *[]GameEvent {
	var got []GameEvent
	GameEvents.Subscribe(w.ECS, func(_ donburi.World, ev GameEvent) {
		got = append(got, ev)
	})
	return &got
}

// step runs one full frame, delivers its events and clears the press latches.
func step(w *world.World, dt float64) {
	Update(w, dt)
	GameEvents.ProcessEvents(w.ECS)
	w.Input.EndFrame()
}

func press(w *world.World, code string) {
	w.Input.SetKeyDown(code, true)
}

func release(w *world.World, code string) {
	w.Input.SetKeyDown(code, false)
}

// settle lets the spawned player land on the floor.
func settle(t *testing.T, w *world.World) {
	t.Helper()
	for i := 0; i < 10; i++ {
		step(w, testDT)
	}
	if !getPlayer(t, w).physics.OnGround {
		t.Fatal("player did not land")
	}
}

// lift puts the player in mid air with no contacts and no coyote time.
func lift(w *world.World, p player, x, y float64) {
	p.obj.X, p.obj.Y = x, y
	*p.physics = components.PhysicsData{}
	p.data.Coyote = 0
}

func countEvents(evs []GameEvent, kind EventKind) int {
	n := 0
	for _, ev := range evs {
		if ev.Kind == kind {
			n++
		}
	}
	return n
}

func approx(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
