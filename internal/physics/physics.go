// Package physics provides overlap tests, bounds handling and a broad-phase grid.
package physics

import "math"

// HitTolerance scales the summed radii in hit tests. Below 1 the hitbox is
// slightly smaller than the drawn shapes, which still reads as generous
// because projectiles are large.
const HitTolerance = 0.9

// DistanceSquared calculates the squared distance between two points.
// Use this when comparing distances to avoid the sqrt cost.
func DistanceSquared(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return dx*dx + dy*dy
}

// CirclesOverlap checks if two circles overlap.
func CirclesOverlap(x1, y1, r1, x2, y2, r2 float64) bool {
	minDist := r1 + r2
	return DistanceSquared(x1, y1, x2, y2) < minDist*minDist
}

// Hit reports a projectile-style hit: the centres are closer than the summed
// radii scaled by HitTolerance.
func Hit(x1, y1, r1, x2, y2, r2 float64) bool {
	return CirclesOverlap(x1, y1, r1*HitTolerance, x2, y2, r2*HitTolerance)
}

// Bounce reflects one axis of motion off the [lo, hi] interval.
//
// The velocity flips only while the position is outside the interval and
// still heading further out; the position is then clamped onto the bound.
// Something outside but already heading back in is left alone, which lets
// entities enter the arena from off-screen. Reports whether a bounce happened.
func Bounce(pos, vel *float64, lo, hi float64) bool {
	switch {
	case *pos < lo && *vel < 0:
		*vel = -*vel
		*pos = lo
		return true
	case *pos > hi && *vel > 0:
		*vel = -*vel
		*pos = hi
		return true
	}
	return false
}

// Reflect flips the velocity when the position has crossed [lo, hi] heading
// outward, without touching the position.
func Reflect(pos, vel *float64, lo, hi float64) bool {
	if (*pos < lo && *vel < 0) || (*pos > hi && *vel > 0) {
		*vel = -*vel
		return true
	}
	return false
}

// ClampSpeed scales (vx, vy) down to max magnitude. A zero vector is
// returned unchanged.
func ClampSpeed(vx, vy, max float64) (float64, float64) {
	speed := math.Hypot(vx, vy)
	if speed == 0 || speed <= max {
		return vx, vy
	}
	scale := max / speed
	return vx * scale, vy * scale
}
