// Package object defines the simulation entities and their per-tick motion.
//
// All velocities are per-tick deltas in viewport pixels. Nothing here is
// scaled by frame time, so a faster host refresh rate plays faster.
package object

import "math"

// Point is a 2D position.
type Point struct {
	X, Y float64
}

// Screen holds the viewport dimensions consumed by a tick.
type Screen struct {
	Width   int
	Height  int
	CenterX int
	CenterY int
}

// NewScreen returns a Screen with its center precomputed.
func NewScreen(width, height int) Screen {
	return Screen{
		Width:   width,
		Height:  height,
		CenterX: width / 2,
		CenterY: height / 2,
	}
}

// W returns the width as a float.
func (s Screen) W() float64 { return float64(s.Width) }

// H returns the height as a float.
func (s Screen) H() float64 { return float64(s.Height) }

// Contains reports whether (x, y) lies within the viewport rectangle, edges included.
func (s Screen) Contains(x, y float64) bool {
	return x >= 0 && x <= s.W() && y >= 0 && y <= s.H()
}

// PlayerPosition returns the turret position: bottom centre, lifted by PlayerOffsetY.
func (s Screen) PlayerPosition() (float64, float64) {
	return s.W() / 2, s.H() - PlayerOffsetY
}

// BoxOrigin returns the top-left corner of the nugget box.
func (s Screen) BoxOrigin() (float64, float64) {
	return s.W()/2 - BoxWidth/2, s.H() - BoxHeight - BoxLift
}

// Dimensions, in viewport pixels.
const (
	PlayerSize       = 80.0
	PlayerOffsetY    = 50.0
	PlayerClearance  = 150.0 // bottom bounce line for nuggets and the boss, measured from the bottom edge
	NuggetSize       = 70.0
	BossSize         = 200.0
	MiniNuggetSize   = 45.0
	ProjectileSize   = 40.0
	PowerUpSize      = 40.0
	BoxWidth         = 300.0
	BoxHeight        = 200.0
	BoxLift          = 120.0
	BoxSpawnOffsetY  = 50.0
	ProjectileSpeed  = 22.0
	TrailLength      = 5
	ParticleFade     = 0.02
	PowerUpGravity   = 0.2
	CrumbGravity     = 0.5
	TextFade         = 0.02
	TextDrag         = 0.9
	NuggetSpin       = 0.05
	NuggetDragFloor  = 4.0
	NuggetDrag       = 0.96
	BossSpin         = 0.01
	BossNudgeChance  = 0.02
	PowerUpSpin      = 0.05
	PowerUpPulseStep = 0.1
)

// Entity is the shared state of everything that moves and can die.
type Entity struct {
	ID            uint64
	X, Y          float64
	Width, Height float64
	VX, VY        float64
	Rotation      float64
	dead          bool
}

// MarkDead flags the entity for removal at the end of the tick.
// The flag is one-way.
func (e *Entity) MarkDead() {
	e.dead = true
}

// IsDead reports whether the entity is pending removal.
func (e *Entity) IsDead() bool {
	return e.dead
}

// Radius is half the entity width; every collider in the game is a circle.
func (e *Entity) Radius() float64 {
	return e.Width / 2
}

// Speed returns the velocity magnitude.
func (e *Entity) Speed() float64 {
	return math.Hypot(e.VX, e.VY)
}

// Move advances the position by one tick of velocity.
func (e *Entity) Move() {
	e.X += e.VX
	e.Y += e.VY
}

// Destructible is implemented by everything held in the entity pool.
type Destructible interface {
	MarkDead()
	IsDead() bool
}

