package object

import "math"

// AmmoKind is the fruit a projectile is drawn as. It has no gameplay effect.
type AmmoKind int

const (
	AmmoApple AmmoKind = iota
	AmmoBanana
)

// Next returns the ammo that follows k in the firing rotation.
func (k AmmoKind) Next() AmmoKind {
	if k == AmmoApple {
		return AmmoBanana
	}
	return AmmoApple
}

func (k AmmoKind) String() string {
	if k == AmmoBanana {
		return "BANANA"
	}
	return "APPLE"
}

// Trail is a ring of the last TrailLength positions of a projectile.
type Trail struct {
	points [TrailLength]Point
	head   int // index of the oldest sample
	n      int
}

// Push records a sample, evicting the oldest when full.
func (t *Trail) Push(p Point) {
	if t.n < TrailLength {
		t.points[(t.head+t.n)%TrailLength] = p
		t.n++
		return
	}
	t.points[t.head] = p
	t.head = (t.head + 1) % TrailLength
}

// Len returns the number of samples held.
func (t *Trail) Len() int {
	return t.n
}

// Points returns the samples oldest first, in a fresh slice.
func (t *Trail) Points() []Point {
	out := make([]Point, t.n)
	for i := 0; i < t.n; i++ {
		out[i] = t.points[(t.head+i)%TrailLength]
	}
	return out
}

// Projectile is a fruit fired from the turret. Single use, no penetration.
type Projectile struct {
	Entity
	Ammo  AmmoKind
	Trail Trail
}

// NewProjectile creates a projectile at (x, y) travelling along angle.
func NewProjectile(x, y, angle float64, ammo AmmoKind) *Projectile {
	return &Projectile{
		Entity: Entity{
			X:        x,
			Y:        y,
			Width:    ProjectileSize,
			Height:   ProjectileSize,
			VX:       math.Cos(angle) * ProjectileSpeed,
			VY:       math.Sin(angle) * ProjectileSpeed,
			Rotation: angle,
		},
		Ammo: ammo,
	}
}

// Step moves the projectile, faces it along its heading and records the
// trail. Leaving the viewport kills it.
func (p *Projectile) Step(screen Screen) {
	p.Move()
	p.Rotation = math.Atan2(p.VY, p.VX)
	p.Trail.Push(Point{X: p.X, Y: p.Y})

	if !screen.Contains(p.X, p.Y) {
		p.MarkDead()
	}
}
