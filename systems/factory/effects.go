package factory

import (
	"github.com/automoto/summit/archetypes"
	"github.com/automoto/summit/components"
	"github.com/automoto/summit/world"
	"github.com/yohamta/donburi"
)

// CreateParticle spawns one particle entity.
func CreateParticle(w *world.World, p components.ParticleData) *donburi.Entry {
	e := archetypes.Particle.Spawn(w.ECS)
	components.Particle.SetValue(e, p)
	return e
}
