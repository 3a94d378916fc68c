package archetypes

import (
	"github.com/automoto/summit/components"
	"github.com/automoto/summit/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Physics,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Hazard,
	)
	Berry = newArchetype(
		tags.Berry,
		components.Berry,
	)
	Crystal = newArchetype(
		tags.Crystal,
		components.Crystal,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Checkpoint,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Goal,
	)
	Camera = newArchetype(
		components.Camera,
		components.ScreenShake,
	)
	Run = newArchetype(
		components.Run,
		components.MessageState,
	)
	Particle = newArchetype(
		tags.Particle,
		components.Particle,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(
		append(a.components, cs...)...,
	))
	return e
}
