package game

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/nuggethunt/internal/config"
	"github.com/tomz197/nuggethunt/internal/object"
)

func TestNewGameWaitsInStart(t *testing.T) {
	h := newHarness(t, config.Arcade())

	assert.Equal(t, PhaseStart, h.game.Phase())
	for i := 0; i < 10; i++ {
		h.clock.Advance(3 * time.Second)
		h.game.Tick()
	}
	assert.Empty(t, h.world().Enemies, "nothing spawns before Start")
	assert.Len(t, h.world().Stars, 50)
	assert.Zero(t, h.game.HandleFireTrigger())
}

func TestClassicLevelReachesBossIntro(t *testing.T) {
	h := newHarness(t, config.Classic())
	h.game.Start()
	require.Equal(t, PhasePlaying, h.game.Phase())
	w := h.world()

	for i := 0; i < 15; i++ {
		h.clock.Advance(2001 * time.Millisecond)
		h.game.Tick()
		require.Len(t, w.Enemies, 1, "spawn %d", i+1)
		require.Equal(t, i+1, h.game.spawner.Spawned())

		e := w.Enemies[0]
		h.shot(e.X, e.Y)
		h.tick()
		require.Empty(t, w.Enemies, "kill %d", i+1)

		if i < 14 {
			require.Equal(t, PhasePlaying, h.game.Phase())
		}
	}

	assert.Equal(t, PhaseBossIntro, h.game.Phase(), "boss intro on the tick the last nugget dies")
	assert.Equal(t, 15, w.Kills)
	assert.Equal(t, 1500, w.Points)
	assert.Equal(t, 15, h.cues.count(CueLaunch))
	assert.Equal(t, 1, h.game.scheduler.Pending())

	for i := 0; i < 5; i++ {
		h.clock.Advance(100 * time.Millisecond)
		h.game.Tick()
	}
	assert.Equal(t, 15, h.game.spawner.Spawned(), "the quota is never exceeded")
	assert.Equal(t, PhaseBossIntro, h.game.Phase())
}

func TestClassicQuotaHoldsWithoutKills(t *testing.T) {
	h := newHarness(t, config.Classic())
	h.game.Start()
	w := h.world()

	for i := 0; i < 40; i++ {
		h.clock.Advance(2001 * time.Millisecond)
		h.game.Tick()
	}

	require.Equal(t, 15, h.game.spawner.Spawned())
	require.Len(t, w.Enemies, 15)
	require.Equal(t, PhasePlaying, h.game.Phase(), "live nuggets hold the boss back")
	assert.Equal(t, 15, h.cues.count(CueLaunch))

	// Park the nuggets apart so every shot touches exactly one of them.
	for i, e := range w.Enemies {
		e.X, e.Y = 60+float64(i)*60, 200
		e.VX, e.VY = 0, 0
		h.shot(e.X, e.Y)
	}
	h.tick()

	assert.Empty(t, w.Enemies)
	assert.Equal(t, 15, w.Kills)
	assert.Equal(t, PhaseBossIntro, h.game.Phase(), "boss intro on the tick the last nugget dies")
	assert.Equal(t, 15, h.game.spawner.Spawned())
}

func TestBossFightToWin(t *testing.T) {
	h := newHarness(t, quiet())
	h.game.Start()
	w := h.world()

	h.game.spawner.spawned = h.game.profile.Quota
	h.tick()
	require.Equal(t, PhaseBossIntro, h.game.Phase())

	h.clock.Advance(2500 * time.Millisecond)
	h.game.Tick()
	require.Equal(t, PhaseBossFight, h.game.Phase())
	require.NotNil(t, w.Boss)
	assert.Equal(t, 20, w.Boss.MaxHP)
	assert.Equal(t, 20, h.hud.bossMax)
	assert.Equal(t, float64(-object.BossSize)+2, w.Boss.Y, "the boss enters from above")

	boss := w.Boss
	boss.X, boss.Y, boss.VX, boss.VY = 500, 300, 0, 0
	for i := 0; i < 20; i++ {
		h.shot(boss.X, boss.Y)
		h.tick()
	}
	require.Nil(t, w.Boss)
	require.Len(t, w.Enemies, 15)
	for _, e := range w.Enemies {
		assert.Equal(t, object.KindMiniNugget, e.Kind)
	}

	h.tick()
	assert.Equal(t, PhaseBossFight, h.game.Phase(), "no win while minis remain")

	origin := w.Enemies[0]
	for range w.Enemies {
		h.shot(origin.X, origin.Y)
	}
	h.tick()

	assert.Empty(t, w.Enemies)
	assert.Equal(t, PhaseWon, h.game.Phase())
	assert.Equal(t, 1, h.cues.count(CueWin))
	assert.Equal(t, 15, w.Kills)
	assert.Equal(t, []Phase{PhasePlaying, PhaseBossIntro, PhaseBossFight, PhaseWon}, h.hud.phases)

	assert.Zero(t, h.game.HandleFireTrigger(), "no firing after the win")
}

func TestTripleShotDuringBuff(t *testing.T) {
	h := newHarness(t, quiet())
	h.game.Start()
	w := h.world()

	theta := -1.2
	h.game.SetAimAngle(theta)

	require.Equal(t, 1, h.game.HandleFireTrigger())
	require.Len(t, w.Projectiles, 1)
	assert.Equal(t, object.AmmoApple, w.Projectiles[0].Ammo)

	w.BuffUntil = h.clock.Now().Add(5 * time.Second)
	require.Equal(t, 3, h.game.HandleFireTrigger())
	require.Len(t, w.Projectiles, 4)

	want := []float64{theta, theta - 0.2, theta + 0.2}
	for i, p := range w.Projectiles[1:] {
		assert.InDelta(t, want[i], math.Atan2(p.VY, p.VX), 1e-9)
		assert.InDelta(t, object.ProjectileSpeed, p.Speed(), 1e-9)
		assert.Equal(t, object.AmmoBanana, p.Ammo)
	}

	h.clock.Advance(5 * time.Second)
	assert.Equal(t, 1, h.game.HandleFireTrigger(), "the buff window is closed at its end")
	assert.Equal(t, 3, h.cues.count(CueShoot))
}

func TestAimFollowsPointer(t *testing.T) {
	h := newHarness(t, quiet())
	px, py := h.world().Screen.PlayerPosition()

	h.game.HandleAimUpdate(px+100, py)
	assert.InDelta(t, 0, h.world().AimAngle, 1e-9)

	h.game.HandleAimUpdate(px, py-100)
	assert.InDelta(t, -math.Pi/2, h.world().AimAngle, 1e-9)
}

func TestResizeKeepsEntities(t *testing.T) {
	h := newHarness(t, quiet())
	h.arena()
	w := h.world()

	e := h.still(object.KindNugget, 900, 600, object.NuggetSize, 1)
	p := h.shot(950, 700)

	h.game.Resize(200, 100)

	assert.Equal(t, 900.0, e.X)
	assert.Equal(t, 600.0, e.Y)
	assert.Equal(t, 950.0, p.X)
	assert.False(t, e.IsDead())
	assert.False(t, p.IsDead())
	assert.Equal(t, 200, w.Screen.Width)
	assert.Equal(t, 100, w.Screen.Height)

	h.game.Resize(0, 100)
	assert.Equal(t, 200, w.Screen.Width, "degenerate sizes are ignored")
}

func TestRestartCancelsBossArrival(t *testing.T) {
	h := newHarness(t, quiet())
	h.game.Start()
	h.game.spawner.spawned = h.game.profile.Quota
	h.tick()
	require.Equal(t, PhaseBossIntro, h.game.Phase())
	require.Equal(t, 1, h.game.scheduler.Pending())

	h.game.Restart()
	assert.Equal(t, PhaseStart, h.game.Phase())
	assert.Zero(t, h.game.scheduler.Pending())
	assert.Zero(t, h.game.spawner.bossTimer)

	h.clock.Advance(3 * time.Second)
	h.game.Tick()
	assert.Equal(t, PhaseStart, h.game.Phase())
	assert.Nil(t, h.world().Boss)
	assert.Empty(t, h.world().Enemies)
	assert.Zero(t, h.game.spawner.Spawned())

	h.game.Start()
	assert.Equal(t, PhasePlaying, h.game.Phase())
}

func TestRestartResetsLazily(t *testing.T) {
	h := newHarness(t, quiet())
	h.game.Start()
	w := h.world()

	h.clock.Advance(3 * time.Second)
	h.game.Tick()
	require.Len(t, w.Enemies, 1)
	w.Kills = 7

	h.game.Restart()
	assert.Len(t, w.Enemies, 1, "the pool is cleared on the next tick")
	assert.Equal(t, 7, w.Kills)

	h.tick()
	assert.Empty(t, w.Enemies)
	assert.Zero(t, w.Kills)
	assert.Equal(t, 20, w.BossHP)
}

func TestWavesPauseAndAnnounce(t *testing.T) {
	h := newHarness(t, quiet())
	h.game.Start()
	w := h.world()

	step := func() {
		h.clock.Advance(2001 * time.Millisecond)
		h.game.Tick()
	}

	for i := 0; i < 5; i++ {
		step()
	}
	require.Equal(t, 5, h.game.spawner.Spawned())
	assert.True(t, h.game.spawner.WavePaused())

	step()
	assert.Equal(t, 5, h.game.spawner.Spawned(), "still inside the wave delay")

	step()
	assert.Equal(t, 5, h.game.spawner.Spawned(), "nothing spawns on the resume tick")
	assert.False(t, h.game.spawner.WavePaused())
	var labels []string
	for _, txt := range w.Texts {
		labels = append(labels, txt.Text)
	}
	assert.Contains(t, labels, "NEXT WAVE!")

	step()
	assert.Equal(t, 6, h.game.spawner.Spawned())
}

func TestTimedProfileRunsOut(t *testing.T) {
	h := newHarness(t, config.Timed())
	h.game.Start()

	h.game.Tick()
	assert.Equal(t, 90*time.Second, h.world().TimeLeft)

	for i := 0; i < 89; i++ {
		h.clock.Advance(time.Second)
		h.game.Tick()
	}
	assert.Equal(t, time.Second, h.world().TimeLeft)
	assert.Equal(t, PhasePlaying, h.game.Phase())

	h.clock.Advance(time.Second)
	h.game.Tick()
	assert.Equal(t, PhaseGameOver, h.game.Phase())
	assert.Zero(t, h.world().TimeLeft)
	assert.Zero(t, h.hud.timeLeft)
	assert.Zero(t, h.game.HandleFireTrigger())

	h.clock.Advance(time.Minute)
	h.game.Tick()
	assert.Equal(t, PhaseGameOver, h.game.Phase(), "terminal until restart")
}

func TestSnapshotIsDetached(t *testing.T) {
	h := newHarness(t, quiet())
	h.arena()

	e := h.still(object.KindNugget, 500, 400, object.NuggetSize, 1)
	h.tick()

	snap := h.game.Snapshot()
	require.Len(t, snap.Enemies, 1)
	assert.Equal(t, e.ID, snap.Enemies[0].ID)

	e.X = 10
	assert.Equal(t, 500.0, snap.Enemies[0].X)
	assert.Equal(t, PhaseBossIntro, snap.Phase)
	assert.Equal(t, 20, snap.BossMaxHP)
}
