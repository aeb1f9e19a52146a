package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

// ParticleSystem owns the live splash particles
type ParticleSystem struct {
	rng       *rand.Rand
	particles []entity.Particle
}

func NewParticleSystem(rng *rand.Rand) *ParticleSystem {
	return &ParticleSystem{
		rng:       rng,
		particles: make([]entity.Particle, 0, types.BurstSize*2),
	}
}

// SpawnBurst creates count particles at origin; size is the diameter of the
// thing that burst, particles start at half of it
func (ps *ParticleSystem) SpawnBurst(origin types.Vector2, count int, size float64) {
	for i := 0; i < count; i++ {
		vel := types.Vector2{
			X: ps.rng.Float64()*2*types.ParticleSpeed - types.ParticleSpeed,
			Y: ps.rng.Float64()*2*types.ParticleSpeed - types.ParticleSpeed,
		}
		ps.particles = append(ps.particles, entity.NewParticle(origin, vel, size, ps.rng.Intn(360)))
	}
}

// Update advances every live particle by one tick
func (ps *ParticleSystem) Update() {
	for i := range ps.particles {
		ps.particles[i].Update()
	}
}

// Collect drops dead particles by compacting the slice in place and returns
// how many were removed
func (ps *ParticleSystem) Collect() int {
	live := ps.particles[:0]
	for _, p := range ps.particles {
		if p.Alive() {
			live = append(live, p)
		}
	}
	removed := len(ps.particles) - len(live)
	clear(ps.particles[len(live):])
	ps.particles = live
	return removed
}

// Particles exposes the live set; callers must not keep it across ticks
func (ps *ParticleSystem) Particles() []entity.Particle {
	return ps.particles
}

func (ps *ParticleSystem) Len() int {
	return len(ps.particles)
}

func (ps *ParticleSystem) Clear() {
	clear(ps.particles)
	ps.particles = ps.particles[:0]
}
