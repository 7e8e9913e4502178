package object

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testScreen = NewScreen(1000, 800)

func TestMarkDeadIsOneWay(t *testing.T) {
	e := NewEnemy(KindNugget, 0, 0, NuggetSize, 1)
	assert.False(t, e.IsDead())
	e.MarkDead()
	e.MarkDead()
	assert.True(t, e.IsDead())
}

func TestDamageClampsAndReportsDeathOnce(t *testing.T) {
	e := NewEnemy(KindBoss, 0, 0, BossSize, 2)

	assert.False(t, e.Damage(1))
	assert.Equal(t, 1, e.HP)
	assert.True(t, e.Damage(5))
	assert.Equal(t, 0, e.HP)
	assert.False(t, e.Damage(1))
	assert.Equal(t, 0, e.HP)
	assert.False(t, e.Alive())
}

func TestNewEnemyHasAtLeastOneHP(t *testing.T) {
	e := NewEnemy(KindNugget, 0, 0, NuggetSize, 0)
	assert.Equal(t, 1, e.HP)
	assert.Equal(t, 1, e.MaxHP)
}

func TestNuggetBouncesInsideArena(t *testing.T) {
	n := NewEnemy(KindNugget, 40, 600, NuggetSize, 1)
	n.VX, n.VY = -10, 60

	n.Step(testScreen, 5)

	assert.Equal(t, NuggetSize/2, n.X)
	assert.Equal(t, testScreen.H()-PlayerClearance, n.Y)
	assert.Greater(t, n.VX, 0.0)
	assert.Less(t, n.VY, 0.0)
	assert.InDelta(t, NuggetSpin, n.Rotation, 1e-9)
}

func TestNuggetDragStopsAtFloor(t *testing.T) {
	n := NewEnemy(KindNugget, 500, 300, NuggetSize, 1)
	n.VX = 10
	n.Step(testScreen, 5)
	assert.InDelta(t, 10*NuggetDrag, n.VX, 1e-9)

	n.VX = 3
	n.Step(testScreen, 5)
	assert.InDelta(t, 3, n.VX, 1e-9)
}

func TestBossEntersFromAbove(t *testing.T) {
	b := NewBoss(testScreen, 20)
	require.Equal(t, -BossSize, b.Y)

	for i := 0; i < 10; i++ {
		b.Step(testScreen, 5)
	}
	assert.Greater(t, b.Y, -BossSize, "the boss keeps moving down into view")
	assert.LessOrEqual(t, b.Speed(), math.Max(5, math.Hypot(3, 2))+1e-9)
}

func TestBossSpeedStaysClamped(t *testing.T) {
	b := NewBoss(testScreen, 20)
	b.X, b.Y = 500, 300
	for i := 0; i < 5000; i++ {
		b.Step(testScreen, 5)
		require.LessOrEqual(t, b.Speed(), 5.0+1e-9)
	}
}

func TestMiniBounceUsesRawEdges(t *testing.T) {
	m := NewEnemy(KindMiniNugget, 2, 400, MiniNuggetSize, 1)
	m.VX = -5

	m.Step(testScreen, 5)

	assert.Equal(t, -3.0, m.X, "minis are not clamped")
	assert.Equal(t, 5.0, m.VX)
}

func TestLaunchFromBox(t *testing.T) {
	for i := 0; i < 100; i++ {
		n := LaunchFromBox(testScreen, 12, 18)
		_, boxY := testScreen.BoxOrigin()

		assert.Equal(t, testScreen.W()/2, n.X)
		assert.Equal(t, boxY+BoxSpawnOffsetY, n.Y)
		assert.Less(t, n.VY, 0.0, "launched upward")
		speed := n.Speed()
		assert.GreaterOrEqual(t, speed, 12.0-1e-9)
		assert.Less(t, speed, 18.0)
		assert.LessOrEqual(t, math.Abs(n.VX), math.Cos(math.Pi/2-0.2)*speed+1e-9)
	}
}

func TestMiniBurst(t *testing.T) {
	minis := MiniBurst(100, 200, 15, 3, 6)
	require.Len(t, minis, 15)
	for i, m := range minis {
		assert.Equal(t, KindMiniNugget, m.Kind)
		assert.Equal(t, MiniNuggetSize, m.Width)
		assert.Equal(t, 100.0, m.X)
		assert.Equal(t, 200.0, m.Y)
		want := 2 * math.Pi / 15 * float64(i)
		got := math.Atan2(m.VY, m.VX)
		if got < 0 {
			got += 2 * math.Pi
		}
		assert.InDelta(t, want, got, 1e-9)
		assert.GreaterOrEqual(t, m.Speed(), 3.0-1e-9)
		assert.Less(t, m.Speed(), 6.0)
	}
}

func TestProjectileTrailAndExit(t *testing.T) {
	p := NewProjectile(500, 100, -math.Pi/2, AmmoBanana)

	for i := 0; i < 4; i++ {
		p.Step(testScreen)
		require.False(t, p.IsDead())
	}
	assert.Equal(t, 4, p.Trail.Len())
	assert.InDelta(t, -math.Pi/2, p.Rotation, 1e-9)

	p.Step(testScreen)
	assert.True(t, p.IsDead(), "y went below zero")

	p.Step(testScreen)
	pts := p.Trail.Points()
	require.Len(t, pts, TrailLength)
	assert.InDelta(t, 100-2*ProjectileSpeed, pts[0].Y, 1e-9, "oldest sample first")
	assert.InDelta(t, 100-6*ProjectileSpeed, pts[TrailLength-1].Y, 1e-9)
}

func TestAmmoAlternates(t *testing.T) {
	assert.Equal(t, AmmoBanana, AmmoApple.Next())
	assert.Equal(t, AmmoApple, AmmoBanana.Next())
}

func TestParticleFadesOut(t *testing.T) {
	ps := Explosion(0, 0, ColorCrumb, 8, true)
	require.Len(t, ps, 8)
	p := ps[0]
	assert.Equal(t, CrumbGravity, p.Gravity)

	steps := 0
	for !p.IsDead() {
		p.Step()
		steps++
		require.Less(t, steps, 100)
	}
	assert.InDelta(t, 50, steps, 1)
	assert.Zero(t, p.Life)
}

func TestPowerUpFallsOffScreen(t *testing.T) {
	pu := NewPowerUp(500, 790)
	assert.Equal(t, -5.0, pu.VY)
	assert.GreaterOrEqual(t, pu.VX, -1.0)
	assert.Less(t, pu.VX, 1.0)

	for i := 0; i < 200 && !pu.IsDead(); i++ {
		pu.Step(testScreen)
	}
	assert.True(t, pu.IsDead())
	assert.Greater(t, pu.Y, testScreen.H())
}

func TestFloatingTextRisesAndExpires(t *testing.T) {
	txt := NewFloatingText(10, 100, "100", ColorWhite, 1)
	txt.Step()
	assert.InDelta(t, 98, txt.Y, 1e-9)
	assert.InDelta(t, -1.8, txt.VY, 1e-9)

	for i := 0; i < 60 && !txt.Expired(); i++ {
		txt.Step()
	}
	assert.True(t, txt.Expired())
}

func TestStarsWrap(t *testing.T) {
	stars := Starfield(testScreen, 50)
	require.Len(t, stars, 50)

	s := Star{Y: testScreen.H() - 0.1, Speed: 0.5}
	s.Step(testScreen)
	assert.Zero(t, s.Y)
}
