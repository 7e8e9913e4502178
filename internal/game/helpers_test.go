package game

import (
	"testing"
	"time"

	"github.com/tomz197/nuggethunt/internal/config"
	"github.com/tomz197/nuggethunt/internal/object"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type cueRecorder struct {
	cues []Cue
}

func (r *cueRecorder) Play(c Cue) { r.cues = append(r.cues, c) }

func (r *cueRecorder) count(c Cue) int {
	n := 0
	for _, got := range r.cues {
		if got == c {
			n++
		}
	}
	return n
}

type hudRecorder struct {
	kills, points   int
	bossHP, bossMax int
	timeLeft        time.Duration
	phases          []Phase
}

func (h *hudRecorder) ScoreChanged(kills, points int)     { h.kills, h.points = kills, points }
func (h *hudRecorder) BossHPChanged(hp, maxHP int)        { h.bossHP, h.bossMax = hp, maxHP }
func (h *hudRecorder) TimeLeftChanged(left time.Duration) { h.timeLeft = left }
func (h *hudRecorder) PhaseChanged(_, to Phase)           { h.phases = append(h.phases, to) }

type harness struct {
	game  *Game
	clock *fakeClock
	cues  *cueRecorder
	hud   *hudRecorder
}

const (
	testWidth  = 1000
	testHeight = 800
)

func newHarness(t *testing.T, profile config.Profile) *harness {
	t.Helper()
	h := &harness{
		clock: newFakeClock(),
		cues:  &cueRecorder{},
		hud:   &hudRecorder{},
	}
	h.game = New(profile,
		WithClock(h.clock.Now),
		WithAudio(h.cues),
		WithHUD(h.hud),
		WithScreen(testWidth, testHeight),
	)
	return h
}

// tick advances the clock by one frame and runs a tick.
func (h *harness) tick() {
	h.clock.Advance(16 * time.Millisecond)
	h.game.Tick()
}

func (h *harness) world() *World { return h.game.World() }

// still places a motionless enemy.
func (h *harness) still(kind object.EnemyKind, x, y, size float64, hp int) *object.Enemy {
	e := object.NewEnemy(kind, x, y, size, hp)
	return h.world().AddEnemy(e)
}

// shot places a motionless projectile.
func (h *harness) shot(x, y float64) *object.Projectile {
	p := object.NewProjectile(x, y, 0, object.AmmoApple)
	p.VX, p.VY = 0, 0
	return h.world().AddProjectile(p)
}

// quiet is arcade without power-up drops, so hits are deterministic.
func quiet() config.Profile {
	p := config.Arcade()
	p.PowerUps = false
	p.PowerUpChance = 0
	return p
}

// arena parks the game in a phase where nothing spawns and no transition
// fires, so a test controls every entity.
func (h *harness) arena() {
	h.world().Phase = PhaseBossIntro
}
