package object

import "math/rand"

// PowerUpKind tags power-up variants. Vestigal is the only one: it grants
// the triple-shot buff window.
type PowerUpKind int

const (
	PowerUpVestigal PowerUpKind = iota
)

func (k PowerUpKind) String() string {
	return "VESTIGAL"
}

// PowerUp is collected by shooting it.
type PowerUp struct {
	Entity
	Kind  PowerUpKind
	Pulse float64
}

// NewPowerUp pops a power-up out of (x, y) with a small upward kick.
func NewPowerUp(x, y float64) *PowerUp {
	return &PowerUp{
		Entity: Entity{
			X:      x,
			Y:      y,
			VX:     (rand.Float64() - 0.5) * 2,
			VY:     -5,
			Width:  PowerUpSize,
			Height: PowerUpSize,
		},
		Kind: PowerUpVestigal,
	}
}

// Step applies gravity and the cosmetic spin. Falling past the bottom edge kills it.
func (p *PowerUp) Step(screen Screen) {
	p.VY += PowerUpGravity
	p.Move()
	p.Rotation += PowerUpSpin
	p.Pulse += PowerUpPulseStep

	if p.Y > screen.H() {
		p.MarkDead()
	}
}
