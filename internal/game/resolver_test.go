package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/nuggethunt/internal/object"
)

func TestProjectileHitsOnlyFirstEnemy(t *testing.T) {
	h := newHarness(t, quiet())
	h.arena()

	first := h.still(object.KindNugget, 500, 400, object.NuggetSize, 1)
	second := h.still(object.KindNugget, 500, 400, object.NuggetSize, 1)
	shot := h.shot(500, 400)

	h.tick()

	assert.True(t, first.IsDead())
	assert.True(t, shot.IsDead())
	assert.False(t, second.IsDead())
	assert.Equal(t, 1, second.HP)

	w := h.world()
	require.Len(t, w.Enemies, 1)
	assert.Same(t, second, w.Enemies[0])
	assert.Empty(t, w.Projectiles)
	assert.Equal(t, 1, w.Kills)
	assert.Equal(t, 100, w.Points)
	assert.Equal(t, 1, h.cues.count(CueHit))
}

func TestBossHPNeverNegative(t *testing.T) {
	h := newHarness(t, quiet())
	h.arena()

	w := h.world()
	boss := h.still(object.KindBoss, 500, 300, object.BossSize, 2)
	w.Boss = boss
	h.shot(500, 300)
	h.shot(500, 300)
	third := h.shot(500, 300)

	h.tick()

	assert.Equal(t, 0, boss.HP)
	assert.True(t, boss.IsDead())
	assert.Nil(t, w.Boss)
	assert.False(t, third.IsDead(), "a dead boss absorbs no more projectiles")
	assert.Equal(t, 0, w.Kills, "the boss does not count as a kill")
	assert.Equal(t, 2, h.cues.count(CueBossHit))

	minis := 0
	for _, e := range w.Enemies {
		require.NotEqual(t, object.KindBoss, e.Kind)
		if e.Kind == object.KindMiniNugget {
			minis++
		}
	}
	assert.Equal(t, 15, minis)
}

func TestBossSingletonTracksPool(t *testing.T) {
	h := newHarness(t, quiet())
	h.arena()

	w := h.world()
	boss := h.still(object.KindBoss, 500, 300, object.BossSize, 3)
	w.Boss = boss

	for i := 0; i < 2; i++ {
		h.shot(boss.X, boss.Y)
		h.tick()
		require.NotNil(t, w.Boss)
		assert.Contains(t, w.Enemies, boss)
		assert.Equal(t, 3-(i+1), w.BossHP)
	}

	h.shot(boss.X, boss.Y)
	h.tick()
	assert.Nil(t, w.Boss)
	assert.NotContains(t, w.Enemies, boss)
	assert.Equal(t, 0, w.BossHP)
}

func TestComboScoringAndExpiry(t *testing.T) {
	h := newHarness(t, quiet())
	h.arena()
	w := h.world()

	for i := 0; i < 3; i++ {
		h.still(object.KindNugget, 500, 400, object.NuggetSize, 1)
		h.shot(500, 400)
		h.tick()
	}
	assert.Equal(t, 3, w.Combo)
	assert.Equal(t, 100+200+300, w.Points)
	assert.Equal(t, 2*time.Second, h.game.Snapshot().ComboLeft)
	assert.Equal(t, 2*time.Second, h.game.Snapshot().ComboSpan)

	var labels []string
	for _, txt := range w.Texts {
		labels = append(labels, txt.Text)
	}
	assert.Contains(t, labels, "300")
	assert.Contains(t, labels, "3x COMBO!")

	// The window is 2s and shrinks by 16ms per tick.
	for i := 0; i < 124; i++ {
		h.tick()
	}
	assert.Equal(t, 3, w.Combo)
	h.tick()
	assert.Equal(t, 0, w.Combo)
	assert.Zero(t, h.game.Snapshot().ComboLeft)

	h.still(object.KindNugget, 500, 400, object.NuggetSize, 1)
	h.shot(500, 400)
	h.tick()
	assert.Equal(t, 1, w.Combo)
	assert.Equal(t, 700, w.Points)
}

func TestFlatPointsWithoutCombo(t *testing.T) {
	p := quiet()
	p.ComboScoring = false
	h := newHarness(t, p)
	h.arena()

	for i := 0; i < 4; i++ {
		h.still(object.KindNugget, 500, 400, object.NuggetSize, 1)
		h.shot(500, 400)
		h.tick()
	}
	assert.Equal(t, 400, h.world().Points)
	assert.Equal(t, 4, h.world().Kills)
}

func TestPowerUpCollectionArmsBuff(t *testing.T) {
	h := newHarness(t, quiet())
	h.arena()
	w := h.world()

	pu := object.NewPowerUp(500, 400)
	pu.VX, pu.VY = 0, 0
	w.AddPowerUp(pu)
	h.shot(500, 400)

	h.tick()

	assert.True(t, pu.IsDead())
	assert.Empty(t, w.PowerUps)
	assert.Empty(t, w.Projectiles)
	assert.True(t, w.BuffActive())
	assert.Equal(t, h.clock.Now().Add(5*time.Second), w.BuffUntil)
	assert.Equal(t, 1, h.cues.count(CueWin))
	assert.Len(t, w.Particles, 20)
}

func TestPowerUpDropOnKill(t *testing.T) {
	p := quiet()
	p.PowerUps = true
	p.PowerUpChance = 1
	h := newHarness(t, p)
	h.arena()

	h.still(object.KindNugget, 500, 400, object.NuggetSize, 1)
	h.shot(500, 400)
	h.tick()

	require.Len(t, h.world().PowerUps, 1)
	assert.Equal(t, object.PowerUpVestigal, h.world().PowerUps[0].Kind)
}

func TestResolverFindsEnemiesOffTheTopEdge(t *testing.T) {
	h := newHarness(t, quiet())
	h.arena()

	// The boss enters from above the screen; a shot near the top edge
	// must still find it through the broad phase.
	boss := h.still(object.KindBoss, 500, -40, object.BossSize, 5)
	boss.VY = 1
	h.world().Boss = boss
	h.shot(500, 30)

	h.tick()
	assert.Equal(t, 4, boss.HP)
}
