package entity

import (
	"math"

	"gridsnake/game/types"
)

// Particle is a short lived splash square that shrinks until it disappears
type Particle struct {
	Position types.Vector2
	Velocity types.Vector2
	Size     float64
	Hue      int
	Age      int
	Gravity  float64
}

func NewParticle(pos, vel types.Vector2, size float64, hue int) Particle {
	return Particle{
		Position: pos,
		Velocity: vel,
		Size:     math.Abs(size / 2),
		Hue:      hue,
		Gravity:  types.ParticleGravity,
	}
}

// Update shrinks, ages and moves the particle, then bends its velocity
func (p *Particle) Update() {
	p.Size -= types.ParticleDecay
	p.Age++
	p.Position.Add(p.Velocity)
	p.Velocity.Y -= p.Gravity
}

func (p *Particle) Alive() bool {
	return p.Size > 0
}

func (p *Particle) Color() types.Color {
	return types.Hue(p.Hue)
}
