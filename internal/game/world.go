package game

import (
	"time"

	"github.com/tomz197/nuggethunt/internal/object"
)

// World is the whole mutable simulation state. It is owned by Game and
// handed by pointer to each subsystem during a tick; nothing else keeps a
// reference to it.
type World struct {
	Pool

	Screen object.Screen
	Now    time.Time // game clock at the current tick
	Tick   uint64
	Phase  Phase

	// Boss is the live boss, also present in Enemies. It is nil exactly when
	// no boss with hit points exists.
	Boss *object.Enemy

	Kills  int // authoritative score: non-boss enemies destroyed
	Points int // combo-weighted hit points

	// BossHP is the value the HUD bar shows. It starts full and follows the
	// live boss once it arrives.
	BossHP    int
	BossMaxHP int

	Combo      int
	ComboTimer time.Duration
	Shake      Shake

	AimAngle  float64
	Ammo      object.AmmoKind
	BuffUntil time.Time
	TimeLeft  time.Duration

	cues []Cue // played after the tick
}

// NewWorld creates an empty world for the given viewport.
func NewWorld(screen object.Screen) *World {
	return &World{
		Screen:   screen,
		Phase:    PhaseStart,
		AimAngle: -1.5707963267948966, // straight up
	}
}

// cue queues a sound for the end of the tick.
func (w *World) cue(c Cue) {
	w.cues = append(w.cues, c)
}

// takeCues returns and clears the queued sounds.
func (w *World) takeCues() []Cue {
	c := w.cues
	w.cues = nil
	return c
}

// BuffActive reports whether the triple-shot window is open.
func (w *World) BuffActive() bool {
	return w.Now.Before(w.BuffUntil)
}

// LiveEnemies counts enemies not pending removal.
func (w *World) LiveEnemies() int {
	n := 0
	for _, e := range w.Enemies {
		if !e.IsDead() {
			n++
		}
	}
	return n
}

// reset clears entities, counters and timers, and scatters a new starfield.
// Entity ids keep counting so ids stay unique for the life of the world.
func (w *World) reset(stars, bossHP int) {
	w.Pool.Clear()
	w.Stars = object.Starfield(w.Screen, stars)
	w.Boss = nil
	w.Kills = 0
	w.Points = 0
	w.BossHP = bossHP
	w.BossMaxHP = bossHP
	w.Combo = 0
	w.ComboTimer = 0
	w.Shake = Shake{}
	w.Ammo = object.AmmoApple
	w.BuffUntil = time.Time{}
	w.TimeLeft = 0
	w.cues = nil
}
