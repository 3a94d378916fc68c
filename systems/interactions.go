package systems

import (
	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/shared/gamemath"
	"github.com/automoto/summit/tags"
	"github.com/automoto/summit/world"
	"github.com/yohamta/donburi"
)

type pendingBurst struct {
	x, y  float64
	burst cfg.Burst
}

// UpdateInteractions checks the player's resolved box against every
// entity. A death ends the checks for the frame; otherwise berries,
// crystals, checkpoints and the goal may all trigger on the same frame.
func UpdateInteractions(w *world.World, playerEntry *donburi.Entry) {
	obj := components.Object.Get(playerEntry)
	if obj.Y > w.Level.PixelHeight()+cfg.Run.FallMargin {
		KillPlayer(w)
		return
	}

	box := obj.Rect()
	if touchingHazard(w, box) {
		KillPlayer(w)
		return
	}

	collectBerries(w, box)
	useCrystals(w, playerEntry, box)
	UpdateCheckpoints(w, box)
	CheckGoal(w, box)
}

func touchingHazard(w *world.World, box gamemath.Rect) bool {
	hit := false
	tags.Hazard.Each(w.ECS, func(e *donburi.Entry) {
		if !hit && components.Hazard.Get(e).Rect.Overlaps(box) {
			hit = true
		}
	})
	return hit
}

func collectBerries(w *world.World, box gamemath.Rect) {
	run := runState(w)
	var bursts []pendingBurst

	tags.Berry.Each(w.ECS, func(e *donburi.Entry) {
		berry := components.Berry.Get(e)
		if berry.Collected {
			return
		}
		size := cfg.Pickup.BerrySize
		if !gamemath.CenteredRect(berry.X, berry.Y, size, size).Overlaps(box) {
			return
		}
		berry.Collected = true
		run.Collected++
		bursts = append(bursts, pendingBurst{berry.X, berry.Y, cfg.Bursts.Berry})
		publish(w, EventBerryCollected, berry.X, berry.Y)
	})

	spawnPending(w, bursts)
}

// useCrystals only consumes a crystal when the player is missing a charge.
func useCrystals(w *world.World, playerEntry *donburi.Entry, box gamemath.Rect) {
	player := components.Player.Get(playerEntry)
	var bursts []pendingBurst

	tags.Crystal.Each(w.ECS, func(e *donburi.Entry) {
		crystal := components.Crystal.Get(e)
		if crystal.Used || player.Dashes >= cfg.Physics.MaxDashes {
			return
		}
		size := cfg.Pickup.CrystalSize
		if !gamemath.CenteredRect(crystal.X, crystal.Y, size, size).Overlaps(box) {
			return
		}
		crystal.Used = true
		crystal.Timer = cfg.Pickup.CrystalRespawn
		player.Dashes = cfg.Physics.MaxDashes
		bursts = append(bursts, pendingBurst{crystal.X, crystal.Y, cfg.Bursts.Crystal})
		publish(w, EventCrystalUsed, crystal.X, crystal.Y)
	})

	spawnPending(w, bursts)
}

// Particles are created after iteration so the query is not mutated mid-walk.
func spawnPending(w *world.World, bursts []pendingBurst) {
	for _, b := range bursts {
		SpawnBurst(w, b.x, b.y, b.burst)
	}
}
