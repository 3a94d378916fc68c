package systems

import (
	"math"

	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/systems/factory"
	"github.com/automoto/summit/tags"
	"github.com/automoto/summit/world"
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// SpawnBurst emits b.Count particles from (x, y) in random directions.
func SpawnBurst(w *world.World, x, y float64, b cfg.Burst) {
	p := cfg.Particles
	for i := 0; i < b.Count; i++ {
		angle := w.Rand.Float64() * math.Pi * 2
		force := b.Speed * (p.MinSpeed + w.Rand.Float64()*p.SpeedRange)
		life := p.MinLife + w.Rand.Float64()*p.LifeRange
		maxLife := p.MinLife + w.Rand.Float64()*p.LifeRange
		size := p.MinSize + w.Rand.Float64()*p.SizeRange

		factory.CreateParticle(w, components.ParticleData{
			Position: dmath.NewVec2(x, y),
			Velocity: dmath.NewVec2(math.Cos(angle)*force, math.Sin(angle)*force),
			Life:     life,
			MaxLife:  maxLife,
			Color:    b.Color,
			Size:     size,
		})
	}
}

// UpdateParticles ages every particle, removing the expired ones and
// integrating the rest.
func UpdateParticles(w *world.World, dt float64) {
	var expired []donburi.Entity

	tags.Particle.Each(w.ECS, func(e *donburi.Entry) {
		p := components.Particle.Get(e)
		p.Life -= dt
		if p.Life <= 0 {
			expired = append(expired, e.Entity())
			return
		}
		p.Velocity.Y += cfg.Particles.Gravity * dt
		p.Position.X += p.Velocity.X * dt
		p.Position.Y += p.Velocity.Y * dt
		p.Velocity.X *= cfg.Particles.Damping
		p.Velocity.Y *= cfg.Particles.Damping
	})

	for _, e := range expired {
		w.ECS.Remove(e)
	}
}

// ClearParticles removes every particle.
func ClearParticles(w *world.World) {
	var all []donburi.Entity
	tags.Particle.Each(w.ECS, func(e *donburi.Entry) {
		all = append(all, e.Entity())
	})
	for _, e := range all {
		w.ECS.Remove(e)
	}
}

// ParticleCount returns the number of live particles.
func ParticleCount(w *world.World) int {
	n := 0
	tags.Particle.Each(w.ECS, func(*donburi.Entry) { n++ })
	return n
}
