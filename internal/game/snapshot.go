package game

import (
	"time"

	"github.com/tomz197/nuggethunt/internal/object"
)

// Snapshot is an immutable copy of everything a renderer or HUD needs.
// It shares no memory with the live world.
type Snapshot struct {
	Tick   uint64
	Phase  Phase
	Screen object.Screen

	ShakeX, ShakeY float64
	AimAngle       float64
	Ammo           object.AmmoKind
	Buffed         bool
	BuffLeft       time.Duration

	Kills      int
	Points     int
	Combo      int
	ComboLeft  time.Duration
	ComboSpan  time.Duration
	BossHP     int
	BossMaxHP  int
	Timed      bool
	TimeLeft   time.Duration
	Spawned    int
	Quota      int
	WavePaused bool

	Enemies     []object.Enemy
	Projectiles []object.Projectile
	Particles   []object.Particle
	PowerUps    []object.PowerUp
	Texts       []object.FloatingText
	Stars       []object.Star
}

// snapshot copies the world. Entities pending removal are left out.
func (g *Game) snapshot() *Snapshot {
	w := g.world
	s := &Snapshot{
		Tick:       w.Tick,
		Phase:      w.Phase,
		Screen:     w.Screen,
		ShakeX:     w.Shake.OffsetX,
		ShakeY:     w.Shake.OffsetY,
		AimAngle:   w.AimAngle,
		Ammo:       w.Ammo,
		Buffed:     w.BuffActive(),
		Kills:      w.Kills,
		Points:     w.Points,
		Combo:      w.Combo,
		ComboLeft:  w.ComboRemaining(),
		ComboSpan:  g.profile.ComboWindow,
		BossHP:     w.BossHP,
		BossMaxHP:  w.BossMaxHP,
		Timed:      g.profile.Timed(),
		TimeLeft:   w.TimeLeft,
		Spawned:    g.spawner.Spawned(),
		Quota:      g.profile.Quota,
		WavePaused: g.spawner.WavePaused(),

		Enemies:     copyLive(w.Enemies),
		Projectiles: copyLive(w.Projectiles),
		Particles:   copyLive(w.Particles),
		PowerUps:    copyLive(w.PowerUps),
		Texts:       make([]object.FloatingText, 0, len(w.Texts)),
		Stars:       append([]object.Star(nil), w.Stars...),
	}
	if s.Buffed {
		s.BuffLeft = w.BuffUntil.Sub(w.Now)
	}
	for _, t := range w.Texts {
		if !t.Expired() {
			s.Texts = append(s.Texts, *t)
		}
	}
	return s
}

// copyLive dereferences every entity that is not pending removal.
func copyLive[T any, P interface {
	*T
	object.Destructible
}](src []P) []T {
	out := make([]T, 0, len(src))
	for _, p := range src {
		if !p.IsDead() {
			out = append(out, *p)
		}
	}
	return out
}
