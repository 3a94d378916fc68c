package systems

import (
	"math"
	"testing"

	"github.com/automoto/summit/components"
	cfg "github.com/automoto/summit/config"
	"github.com/automoto/summit/tags"
	"github.com/yohamta/donburi"
)

func TestSpawnBurst(t *testing.T) {
	w := newTestWorld(t, room)
	b := cfg.Burst{Count: 12, Color: cfg.BerryRed, Speed: 80}

	SpawnBurst(w, 50, 60, b)

	if n := ParticleCount(w); n != 12 {
		t.Fatalf("ParticleCount() = %d, expected 12", n)
	}
	p := cfg.Particles
	tags.Particle.Each(w.ECS, func(e *donburi.Entry) {
		pd := components.Particle.Get(e)
		if pd.Position.X != 50 || pd.Position.Y != 60 {
			t.Errorf("particle starts at %v, expected the burst origin", pd.Position)
		}
		speed := math.Hypot(pd.Velocity.X, pd.Velocity.Y)
		if speed < b.Speed*p.MinSpeed-1e-9 || speed > b.Speed*(p.MinSpeed+p.SpeedRange)+1e-9 {
			t.Errorf("speed %v outside the burst band", speed)
		}
		if pd.Life < p.MinLife || pd.Life > p.MinLife+p.LifeRange {
			t.Errorf("life %v outside the band", pd.Life)
		}
		if pd.Color != cfg.BerryRed {
			t.Errorf("color = %v", pd.Color)
		}
	})
}

func TestParticlesExpire(t *testing.T) {
	w := newTestWorld(t, room)
	SpawnBurst(w, 50, 60, cfg.Bursts.Win)
	SpawnBurst(w, 80, 60, cfg.Bursts.Death)

	maxLife := cfg.Particles.MinLife + cfg.Particles.LifeRange
	frames := int(maxLife/testDT) + 2
	for i := 0; i < frames; i++ {
		UpdateParticles(w, testDT)
	}

	if n := ParticleCount(w); n != 0 {
		t.Errorf("ParticleCount() = %d after every lifetime elapsed, expected 0", n)
	}
}

func TestParticleIntegration(t *testing.T) {
	w := newTestWorld(t, room)
	SpawnBurst(w, 50, 60, cfg.Burst{Count: 1, Speed: 0})

	UpdateParticles(w, testDT)

	tags.Particle.Each(w.ECS, func(e *donburi.Entry) {
		pd := components.Particle.Get(e)
		wantVY := cfg.Particles.Gravity * testDT * cfg.Particles.Damping
		if !approx(pd.Velocity.Y, wantVY) {
			t.Errorf("Velocity.Y = %v, expected %v", pd.Velocity.Y, wantVY)
		}
		if pd.Position.Y <= 60 {
			t.Errorf("Position.Y = %v, expected gravity to pull it down", pd.Position.Y)
		}
	})
}

func TestClearParticles(t *testing.T) {
	w := newTestWorld(t, room)
	SpawnBurst(w, 0, 0, cfg.Bursts.Checkpoint)

	ClearParticles(w)

	if n := ParticleCount(w); n != 0 {
		t.Errorf("ParticleCount() = %d, expected 0", n)
	}
}

func TestBurstsAreSeeded(t *testing.T) {
	positions := func() []float64 {
		w := newTestWorld(t, room)
		SpawnBurst(w, 0, 0, cfg.Bursts.Dash)
		UpdateParticles(w, testDT)
		var xs []float64
		tags.Particle.Each(w.ECS, func(e *donburi.Entry) {
			xs = append(xs, components.Particle.Get(e).Position.X)
		})
		return xs
	}

	a, b := positions(), positions()
	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("particle %d: %v vs %v, same seed must give the same burst", i, a[i], b[i])
		}
	}
}
