package game

import (
	"math/rand"
	"time"

	"github.com/tomz197/nuggethunt/internal/config"
	"github.com/tomz197/nuggethunt/internal/object"
)

// Spawner decides when enemies, the boss and power-ups enter the world.
type Spawner struct {
	profile config.Profile

	lastSpawn  time.Time
	spawned    int
	waveCount  int
	wavePaused bool
	pauseStart time.Time
	bossTimer  uint64 // scheduler id of the pending boss spawn, 0 when none
}

// NewSpawner creates a spawner for the profile.
func NewSpawner(profile config.Profile) *Spawner {
	return &Spawner{profile: profile}
}

// Reset forgets all spawn progress.
func (s *Spawner) Reset() {
	*s = Spawner{profile: s.profile}
}

// Spawned returns how many regular enemies have been emitted this level.
func (s *Spawner) Spawned() int {
	return s.spawned
}

// QuotaReached reports whether every regular enemy of the level was emitted.
func (s *Spawner) QuotaReached() bool {
	return s.spawned >= s.profile.Quota
}

// WavePaused reports whether the spawner is waiting between waves.
func (s *Spawner) WavePaused() bool {
	return s.wavePaused
}

// Step emits at most one regular enemy. It only acts while PLAYING.
func (s *Spawner) Step(g *Game) {
	w := g.world
	if w.Phase != PhasePlaying || s.QuotaReached() {
		return
	}

	if s.wavePaused {
		if w.Now.Sub(s.pauseStart) > s.profile.WaveDelay {
			s.wavePaused = false
			s.waveCount = 0
			g.announce("NEXT WAVE!", object.ColorRed)
		}
		return
	}

	if w.Now.Sub(s.lastSpawn) <= s.profile.SpawnInterval {
		return
	}

	w.AddEnemy(object.LaunchFromBox(w.Screen, s.profile.LaunchSpeedMin, s.profile.LaunchSpeedMax))
	s.spawned++
	s.waveCount++
	s.lastSpawn = w.Now
	w.cue(CueLaunch)

	if s.profile.Waved() && s.waveCount >= s.profile.WaveSize {
		s.wavePaused = true
		s.pauseStart = w.Now
	}
}

// ScheduleBoss queues the boss to arrive after the intro delay.
func (s *Spawner) ScheduleBoss(g *Game) {
	if s.bossTimer != 0 {
		return
	}
	s.bossTimer = g.scheduler.After(g.world.Now, s.profile.BossIntroDelay, func() {
		s.bossTimer = 0
		s.spawnBoss(g)
	})
}

// CancelBoss drops a pending boss arrival, if any.
func (s *Spawner) CancelBoss(sched *Scheduler) {
	if s.bossTimer == 0 {
		return
	}
	sched.Cancel(s.bossTimer)
	s.bossTimer = 0
}

// spawnBoss instantiates the boss. A callback that lands after the phase
// moved on does nothing.
func (s *Spawner) spawnBoss(g *Game) {
	w := g.world
	if w.Phase != PhaseBossIntro || w.Boss != nil {
		return
	}
	w.Boss = w.AddEnemy(object.NewBoss(w.Screen, s.profile.BossHP))
	w.Shake.Add(bossShake)
	w.cue(CueLaunch)
	g.setPhase(PhaseBossFight)
}

// bossBurst fragments a dead boss into mini nuggets.
func (s *Spawner) bossBurst(g *Game, x, y float64) {
	w := g.world
	for _, m := range object.MiniBurst(x, y, s.profile.MiniCount, s.profile.MiniSpeedMin, s.profile.MiniSpeedMax) {
		w.AddEnemy(m)
	}
	w.cue(CueLaunch)
	w.Shake.Add(burstShake)
}

// maybeDropPowerUp rolls the drop chance for a destroyed regular enemy.
func (s *Spawner) maybeDropPowerUp(g *Game, x, y float64) {
	if !s.profile.PowerUps || rand.Float64() >= s.profile.PowerUpChance {
		return
	}
	g.world.AddPowerUp(object.NewPowerUp(x, y))
}
