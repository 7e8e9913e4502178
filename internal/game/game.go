// Package game is the simulation core: spawning, physics, combat, the phase
// machine and the feedback layer, advanced one tick at a time.
//
// A Game is not safe for concurrent use. Tick and the input methods must be
// called from a single goroutine; renderers read Snapshot copies.
package game

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/nuggethunt/internal/config"
	"github.com/tomz197/nuggethunt/internal/object"
)

// TripleShotSpread is the angle between the centre shot and each side shot.
const TripleShotSpread = 0.2

const fireShake = 5.0

// Game owns one world and every subsystem acting on it.
type Game struct {
	profile config.Profile
	world   *World

	spawner   *Spawner
	resolver  Resolver
	scheduler Scheduler

	clock func() time.Time
	log   *log.Logger
	audio AudioCues
	hud   HUD

	lastTick     time.Time
	resetPending bool
	published    hudState
}

// hudState is the last set of values pushed to the HUD.
type hudState struct {
	kills, points   int
	bossHP, bossMax int
	timeLeftSeconds int64
	initialised     bool
}

// Option configures a Game.
type Option func(*Game)

// WithClock replaces time.Now as the game clock.
func WithClock(clock func() time.Time) Option {
	return func(g *Game) { g.clock = clock }
}

// WithLogger sets the logger used for phase transitions.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithAudio sets the sound cue sink.
func WithAudio(a AudioCues) Option {
	return func(g *Game) { g.audio = a }
}

// WithHUD sets the overlay sink.
func WithHUD(h HUD) Option {
	return func(g *Game) { g.hud = h }
}

// WithScreen sets the initial viewport size.
func WithScreen(width, height int) Option {
	return func(g *Game) { g.world.Screen = object.NewScreen(width, height) }
}

// New creates a game in the START phase.
func New(profile config.Profile, opts ...Option) *Game {
	g := &Game{
		profile: profile,
		world:   NewWorld(object.NewScreen(800, 600)),
		spawner: NewSpawner(profile),
		clock:   time.Now,
		log:     log.New(io.Discard),
		audio:   nopAudio{},
		hud:     nopHUD{},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.world.Now = g.clock()
	g.reset()
	return g
}

// Profile returns the tuning the game runs with.
func (g *Game) Profile() config.Profile {
	return g.profile
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.world.Phase
}

// World exposes the live state. Callers must stay on the loop goroutine.
func (g *Game) World() *World {
	return g.world
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() *Snapshot {
	return g.snapshot()
}

// Tick advances the simulation by one step.
func (g *Game) Tick() {
	w := g.world
	now := g.clock()
	var elapsed time.Duration
	if !g.lastTick.IsZero() {
		elapsed = now.Sub(g.lastTick)
	}
	g.lastTick = now
	w.Now = now
	w.Tick++

	if w.Phase == PhaseStart && g.resetPending {
		g.reset()
	}

	g.scheduler.Run(now)
	g.stepJuice()
	g.spawner.Step(g)
	g.integrate()
	g.resolver.Resolve(g)
	w.Compact()
	g.checkPhase()
	g.countdown(elapsed)
	g.publish()
	g.flush()
}

// Start begins a fresh level. It only acts in the START phase.
func (g *Game) Start() {
	if g.world.Phase != PhaseStart {
		return
	}
	g.world.Now = g.clock()
	g.reset()
	g.setPhase(PhasePlaying)
	g.publish()
}

// Restart returns to the START phase from anywhere. Pending callbacks are
// cancelled now; the world itself is cleared on the next tick or Start.
func (g *Game) Restart() {
	g.cancelDeferred()
	g.resetPending = true
	g.setPhase(PhaseStart)
}

// Resize changes the viewport used from the next tick on. No entity is
// moved or removed.
func (g *Game) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	g.world.Screen = object.NewScreen(width, height)
}

// HandleAimUpdate points the turret at (x, y) in viewport pixels.
func (g *Game) HandleAimUpdate(x, y float64) {
	px, py := g.world.Screen.PlayerPosition()
	if x == px && y == py {
		return
	}
	g.world.AimAngle = math.Atan2(y-py, x-px)
}

// SetAimAngle points the turret along angle, in radians.
func (g *Game) SetAimAngle(angle float64) {
	g.world.AimAngle = angle
}

// HandleFireTrigger fires the current ammo along the aim, three shots while
// the buff window is open. It returns the number of projectiles created.
func (g *Game) HandleFireTrigger() int {
	w := g.world
	if !w.Phase.CanFire() {
		return 0
	}

	px, py := w.Screen.PlayerPosition()
	angles := []float64{w.AimAngle}
	if g.clock().Before(w.BuffUntil) {
		angles = append(angles, w.AimAngle-TripleShotSpread, w.AimAngle+TripleShotSpread)
	}
	for _, a := range angles {
		w.AddProjectile(object.NewProjectile(px, py, a, w.Ammo))
	}
	w.Ammo = w.Ammo.Next()
	w.Shake.Add(fireShake)
	w.cue(CueShoot)
	g.flush()
	return len(angles)
}

// reset clears the world and every timer for a new level.
func (g *Game) reset() {
	g.cancelDeferred()
	g.spawner.Reset()
	g.lastTick = time.Time{}
	g.world.reset(g.profile.Stars, g.profile.BossHP)
	g.world.TimeLeft = g.profile.TimeLimit
	g.resetPending = false
	g.published = hudState{}
}

// cancelDeferred drops the pending boss arrival, the only deferred callback.
func (g *Game) cancelDeferred() {
	g.spawner.CancelBoss(&g.scheduler)
}

// publish pushes HUD values that changed since the last push.
func (g *Game) publish() {
	w := g.world
	prev := g.published
	cur := hudState{
		kills:           w.Kills,
		points:          w.Points,
		bossHP:          w.BossHP,
		bossMax:         w.BossMaxHP,
		timeLeftSeconds: int64(math.Ceil(w.TimeLeft.Seconds())),
		initialised:     true,
	}
	if !prev.initialised || prev.kills != cur.kills || prev.points != cur.points {
		g.hud.ScoreChanged(cur.kills, cur.points)
	}
	if !prev.initialised || prev.bossHP != cur.bossHP || prev.bossMax != cur.bossMax {
		g.hud.BossHPChanged(cur.bossHP, cur.bossMax)
	}
	if g.profile.Timed() && (!prev.initialised || prev.timeLeftSeconds != cur.timeLeftSeconds) {
		g.hud.TimeLeftChanged(w.TimeLeft)
	}
	g.published = cur
}

// flush hands queued cues to the audio sink.
func (g *Game) flush() {
	for _, c := range g.world.takeCues() {
		g.audio.Play(c)
	}
}
