package game

import (
	"github.com/tomz197/nuggethunt/internal/object"
	"github.com/tomz197/nuggethunt/internal/physics"
)

// gridCell must cover the largest hit distance, boss against projectile.
const gridCell = (object.BossSize + object.ProjectileSize) / 2

const (
	bossHitSparks   = 5
	crumbCount      = 8
	bossDeathBurst  = 100
	powerUpBurst    = 20
	powerUpBanner   = "VESTIGAL SISTER POWER!"
	bossDeathBanner = "CRUMBLING!"
)

// Resolver detects projectile contacts and applies their consequences.
type Resolver struct {
	grid *physics.SpatialGrid
}

// broadPhase rebuilds the grid over the live enemies.
func (r *Resolver) broadPhase(w *World) {
	sw, sh := w.Screen.W(), w.Screen.H()
	if r.grid == nil || !r.grid.Covers(sw, sh) {
		r.grid = physics.NewSpatialGrid(sw, sh, gridCell)
	} else {
		r.grid.Clear()
	}
	for i, e := range w.Enemies {
		if e.Alive() {
			r.grid.Insert(e.X, e.Y, i)
		}
	}
}

// Resolve runs projectile against enemy, then projectile against power-up.
func (r *Resolver) Resolve(g *Game) {
	w := g.world
	if len(w.Projectiles) == 0 {
		return
	}

	r.broadPhase(w)
	for _, p := range w.Projectiles {
		if p.IsDead() {
			continue
		}
		if e := r.firstContact(w, p); e != nil {
			r.hitEnemy(g, p, e)
		}
	}

	for _, pu := range w.PowerUps {
		if pu.IsDead() {
			continue
		}
		for _, p := range w.Projectiles {
			if p.IsDead() {
				continue
			}
			if physics.Hit(p.X, p.Y, p.Radius(), pu.X, pu.Y, pu.Radius()) {
				r.collect(g, p, pu)
				break
			}
		}
	}
}

// firstContact returns the live enemy touching p that comes first in
// collection order, or nil. The grid yields candidates unordered, so the
// lowest index wins.
func (r *Resolver) firstContact(w *World, p *object.Projectile) *object.Enemy {
	best := -1
	r.grid.QueryAround(p.X, p.Y, func(i int) bool {
		if best >= 0 && i > best {
			return false
		}
		e := w.Enemies[i]
		if e.Alive() && physics.Hit(p.X, p.Y, p.Radius(), e.X, e.Y, e.Radius()) {
			best = i
		}
		return false
	})
	if best < 0 {
		return nil
	}
	return w.Enemies[best]
}

// hitEnemy applies one projectile's damage and everything that follows from it.
func (r *Resolver) hitEnemy(g *Game, p *object.Projectile, e *object.Enemy) {
	w := g.world
	p.MarkDead()
	died := e.Damage(1)

	points := g.registerHit()
	w.Points += points
	g.hitFeedback(e.X, e.Y, points)

	if e.Kind == object.KindBoss {
		w.cue(CueBossHit)
		w.AddParticles(object.Explosion(p.X, p.Y, object.ColorRed, bossHitSparks, false))
	} else {
		w.cue(CueHit)
		w.AddParticles(object.Explosion(e.X, e.Y, object.ColorCrumb, crumbCount, true))
	}

	if e.Kind == object.KindBoss {
		w.BossHP, w.BossMaxHP = e.HP, e.MaxHP
	}
	if !died {
		return
	}
	e.MarkDead()
	w.Shake.Add(killShake)

	switch e.Kind {
	case object.KindBoss:
		w.Boss = nil
		w.AddParticles(object.Explosion(e.X, e.Y, object.ColorGold, bossDeathBurst, false))
		g.spawner.bossBurst(g, e.X, e.Y)
		w.AddText(object.NewFloatingText(e.X, e.Y, bossDeathBanner, object.ColorRed, 3))
	case object.KindNugget, object.KindMiniNugget:
		w.Kills++
		g.spawner.maybeDropPowerUp(g, e.X, e.Y)
	}
}

// collect consumes a power-up and opens the buff window.
func (r *Resolver) collect(g *Game, p *object.Projectile, pu *object.PowerUp) {
	w := g.world
	p.MarkDead()
	pu.MarkDead()
	w.BuffUntil = w.Now.Add(g.profile.BuffDuration)
	w.AddText(object.NewFloatingText(pu.X, pu.Y, powerUpBanner, object.ColorGlow, 2))
	w.AddParticles(object.Explosion(pu.X, pu.Y, object.ColorGlow, powerUpBurst, false))
	w.cue(CueWin)
	w.Shake.Add(powerUpShake)
}
