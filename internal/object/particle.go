package object

import (
	"math"
	"math/rand"
)

// Particle colors.
const (
	ColorWhite  = "#ffffff"
	ColorRed    = "#ff0000"
	ColorGold   = "#ffd700"
	ColorCrumb  = "#d4af37"
	ColorYellow = "#ffff00"
	ColorGlow   = "#39ff14"
)

// Particle is a short-lived visual effect. It never collides.
type Particle struct {
	Entity
	Life    float64 // 1 at birth, dead at 0
	Color   string
	Gravity float64
}

// Step moves the particle, applies gravity and fades it.
func (p *Particle) Step() {
	p.Move()
	p.VY += p.Gravity
	p.Life -= ParticleFade
	if p.Life <= 0 {
		p.Life = 0
		p.MarkDead()
	}
}

// Explosion creates count particles bursting from (x, y).
// Crumbs are faster, smaller on average and fall under gravity.
func Explosion(x, y float64, color string, count int, crumbs bool) []*Particle {
	spread, minSize, sizeRange, gravity := 15.0, 4.0, 4.0, 0.0
	if crumbs {
		spread, minSize, sizeRange, gravity = 20.0, 2.0, 6.0, CrumbGravity
	}

	out := make([]*Particle, 0, count)
	for i := 0; i < count; i++ {
		size := minSize + rand.Float64()*sizeRange
		out = append(out, &Particle{
			Entity: Entity{
				X:        x,
				Y:        y,
				VX:       (rand.Float64() - 0.5) * spread,
				VY:       (rand.Float64() - 0.5) * spread,
				Width:    size,
				Height:   size,
				Rotation: rand.Float64() * math.Pi,
			},
			Life:    1,
			Color:   color,
			Gravity: gravity,
		})
	}
	return out
}
