package factory

import (
	"github.com/automoto/summit/archetypes"
	"github.com/automoto/summit/components"
	"github.com/automoto/summit/world"
)

// CreateLevelEntities creates one entity per parsed hazard, collectible,
// recharge pickup and checkpoint, in parse order, plus the goal.
func CreateLevelEntities(w *world.World) {
	lvl := w.Level

	for _, s := range lvl.Spikes {
		e := archetypes.Hazard.Spawn(w.ECS)
		components.Hazard.SetValue(e, components.HazardData{Spike: s, Rect: s.Rect()})
	}

	for _, b := range lvl.Berries {
		e := archetypes.Berry.Spawn(w.ECS)
		components.Berry.SetValue(e, components.BerryData{X: b.X, Y: b.Y, Phase: b.Phase})
	}

	for _, c := range lvl.Crystals {
		e := archetypes.Crystal.Spawn(w.ECS)
		components.Crystal.SetValue(e, components.CrystalData{X: c.X, Y: c.Y})
	}

	for _, c := range lvl.Checkpoints {
		e := archetypes.Checkpoint.Spawn(w.ECS)
		components.Checkpoint.SetValue(e, components.CheckpointData{ID: c.ID, Tile: c.Tile, X: c.X, Y: c.Y})
	}

	goal := archetypes.Goal.Spawn(w.ECS)
	components.Goal.SetValue(goal, components.GoalData{Rect: lvl.Goal})
}
