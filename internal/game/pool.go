package game

import "github.com/tomz197/nuggethunt/internal/object"

// Pool owns the live entity collections. Slices keep insertion order, which
// is also the order the resolver walks them in.
type Pool struct {
	Enemies     []*object.Enemy
	Projectiles []*object.Projectile
	Particles   []*object.Particle
	PowerUps    []*object.PowerUp
	Texts       []*object.FloatingText
	Stars       []object.Star

	nextID uint64
}

// id hands out the next entity id. Ids are never reused.
func (p *Pool) id() uint64 {
	p.nextID++
	return p.nextID
}

// AddEnemy assigns an id and appends the enemy.
func (p *Pool) AddEnemy(e *object.Enemy) *object.Enemy {
	e.ID = p.id()
	p.Enemies = append(p.Enemies, e)
	return e
}

// AddProjectile assigns an id and appends the projectile.
func (p *Pool) AddProjectile(pr *object.Projectile) *object.Projectile {
	pr.ID = p.id()
	p.Projectiles = append(p.Projectiles, pr)
	return pr
}

// AddParticles assigns ids and appends the particles.
func (p *Pool) AddParticles(ps []*object.Particle) {
	for _, pt := range ps {
		pt.ID = p.id()
	}
	p.Particles = append(p.Particles, ps...)
}

// AddPowerUp assigns an id and appends the power-up.
func (p *Pool) AddPowerUp(pu *object.PowerUp) *object.PowerUp {
	pu.ID = p.id()
	p.PowerUps = append(p.PowerUps, pu)
	return pu
}

// AddText appends a floating label.
func (p *Pool) AddText(t *object.FloatingText) {
	p.Texts = append(p.Texts, t)
}

// Compact drops every dead entity and expired label. Called once, at the end of a tick.
func (p *Pool) Compact() {
	p.Enemies = dropDead(p.Enemies)
	p.Projectiles = dropDead(p.Projectiles)
	p.Particles = dropDead(p.Particles)
	p.PowerUps = dropDead(p.PowerUps)
	p.Texts = removeIf(p.Texts, (*object.FloatingText).Expired)
}

// Clear empties every collection except the starfield. Ids keep counting.
func (p *Pool) Clear() {
	p.Enemies = nil
	p.Projectiles = nil
	p.Particles = nil
	p.PowerUps = nil
	p.Texts = nil
}

// dropDead removes the entities marked for removal, keeping order.
func dropDead[T object.Destructible](s []T) []T {
	return removeIf(s, func(v T) bool { return v.IsDead() })
}

// removeIf filters s in place, keeping order.
func removeIf[T any](s []T, drop func(T) bool) []T {
	kept := s[:0]
	for _, v := range s {
		if !drop(v) {
			kept = append(kept, v)
		}
	}
	clear(s[len(kept):])
	return kept
}
