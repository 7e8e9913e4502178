package object

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/tomz197/nuggethunt/internal/physics"
)

// EnemyKind tags the enemy variants.
type EnemyKind int

const (
	KindNugget EnemyKind = iota
	KindMiniNugget
	KindBoss
)

// String returns the kind name used in logs and the web protocol.
func (k EnemyKind) String() string {
	switch k {
	case KindNugget:
		return "NUGGET"
	case KindMiniNugget:
		return "MINI_NUGGET"
	case KindBoss:
		return "BOSS"
	default:
		return fmt.Sprintf("EnemyKind(%d)", int(k))
	}
}

// Enemy is a target. HP stays within [0, MaxHP].
type Enemy struct {
	Entity
	Kind  EnemyKind
	HP    int
	MaxHP int
}

// NewEnemy creates an enemy of the given kind with full health.
func NewEnemy(kind EnemyKind, x, y, size float64, hp int) *Enemy {
	if hp < 1 {
		hp = 1
	}
	return &Enemy{
		Entity: Entity{
			X:      x,
			Y:      y,
			Width:  size,
			Height: size,
		},
		Kind:  kind,
		HP:    hp,
		MaxHP: hp,
	}
}

// Damage removes n hit points, never going below zero.
// Returns true only on the call that takes HP from positive to zero.
func (e *Enemy) Damage(n int) bool {
	if e.HP <= 0 || n <= 0 {
		return false
	}
	e.HP -= n
	if e.HP < 0 {
		e.HP = 0
	}
	return e.HP == 0
}

// Alive reports whether the enemy still has hit points and is not pending removal.
func (e *Enemy) Alive() bool {
	return e.HP > 0 && !e.IsDead()
}

// Step integrates one tick of motion for the enemy's kind.
// bossMaxSpeed caps the boss after its random nudge.
func (e *Enemy) Step(screen Screen, bossMaxSpeed float64) {
	e.Move()

	switch e.Kind {
	case KindNugget:
		e.Rotation += NuggetSpin
		if e.Speed() > NuggetDragFloor {
			e.VX *= NuggetDrag
			e.VY *= NuggetDrag
		}
		e.bounceArena(screen)
	case KindBoss:
		e.Rotation += BossSpin
		if rand.Float64() < BossNudgeChance {
			e.VX += (rand.Float64() - 0.5) * 2
			e.VY += (rand.Float64() - 0.5) * 2
			e.VX, e.VY = physics.ClampSpeed(e.VX, e.VY, bossMaxSpeed)
		}
		e.bounceArena(screen)
	case KindMiniNugget:
		physics.Reflect(&e.X, &e.VX, 0, screen.W())
		physics.Reflect(&e.Y, &e.VY, 0, screen.H())
	}
}

// bounceArena keeps the enemy fully on screen and clear of the turret.
func (e *Enemy) bounceArena(screen Screen) {
	halfW := e.Width / 2
	halfH := e.Height / 2
	physics.Bounce(&e.X, &e.VX, halfW, screen.W()-halfW)
	physics.Bounce(&e.Y, &e.VY, halfH, screen.H()-PlayerClearance)
}

// LaunchFromBox creates a nugget leaving the box at launch speed.
// The launch cone points straight up with ±0.2 rad of spread, and the
// horizontal direction is mirrored at random.
func LaunchFromBox(screen Screen, minSpeed, maxSpeed float64) *Enemy {
	_, boxY := screen.BoxOrigin()
	angle := math.Pi/2 + (rand.Float64()*0.4 - 0.2)
	speed := minSpeed + rand.Float64()*(maxSpeed-minSpeed)
	dir := 1.0
	if rand.Float64() < 0.5 {
		dir = -1
	}

	n := NewEnemy(KindNugget, screen.W()/2, boxY+BoxSpawnOffsetY, NuggetSize, 1)
	n.VX = math.Cos(angle) * speed * dir
	n.VY = -math.Sin(angle) * speed
	n.Rotation = rand.Float64() * math.Pi
	return n
}

// NewBoss creates the boss just above the top edge, drifting down into view.
func NewBoss(screen Screen, hp int) *Enemy {
	b := NewEnemy(KindBoss, screen.W()/2, -BossSize, BossSize, hp)
	b.VX = 3
	b.VY = 2
	return b
}

// MiniBurst creates count mini nuggets spread evenly around (x, y), each
// with its own speed in [minSpeed, maxSpeed).
func MiniBurst(x, y float64, count int, minSpeed, maxSpeed float64) []*Enemy {
	minis := make([]*Enemy, 0, count)
	for i := 0; i < count; i++ {
		angle := 2 * math.Pi / float64(count) * float64(i)
		speed := minSpeed + rand.Float64()*(maxSpeed-minSpeed)
		m := NewEnemy(KindMiniNugget, x, y, MiniNuggetSize, 1)
		m.VX = math.Cos(angle) * speed
		m.VY = math.Sin(angle) * speed
		m.Rotation = rand.Float64() * math.Pi
		minis = append(minis, m)
	}
	return minis
}
