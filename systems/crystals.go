package systems

import (
	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/tags"
	"github.com/automoto/summit/world"
	"github.com/yohamta/donburi"
)

// UpdateCrystals counts down used crystals and restores them when their
// cooldown runs out.
func UpdateCrystals(w *world.World, dt float64) {
	var bursts []pendingBurst

	tags.Crystal.Each(w.ECS, func(e *donburi.Entry) {
		crystal := components.Crystal.Get(e)
		if !crystal.Used {
			return
		}
		crystal.Timer -= dt
		if crystal.Timer > 0 {
			return
		}
		crystal.Used = false
		crystal.Timer = 0
		bursts = append(bursts, pendingBurst{crystal.X, crystal.Y, cfg.Bursts.CrystalRestored})
		publish(w, EventCrystalRestored, crystal.X, crystal.Y)
	})

	spawnPending(w, bursts)
}

// ResetCrystals makes every crystal available again.
func ResetCrystals(w *world.World) {
	tags.Crystal.Each(w.ECS, func(e *donburi.Entry) {
		crystal := components.Crystal.Get(e)
		crystal.Used = false
		crystal.Timer = 0
	})
}
