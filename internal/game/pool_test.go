package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/nuggethunt/internal/object"
)

func TestPoolAssignsUniqueIDs(t *testing.T) {
	var p Pool
	a := p.AddEnemy(object.NewEnemy(object.KindNugget, 0, 0, object.NuggetSize, 1))
	b := p.AddProjectile(object.NewProjectile(0, 0, 0, object.AmmoApple))
	c := p.AddPowerUp(object.NewPowerUp(0, 0))

	assert.Less(t, a.ID, b.ID)
	assert.Less(t, b.ID, c.ID)

	p.Clear()
	d := p.AddEnemy(object.NewEnemy(object.KindNugget, 0, 0, object.NuggetSize, 1))
	assert.Greater(t, d.ID, c.ID, "ids are not reused after a clear")
}

func TestPoolCompactDropsDeadKeepsOrder(t *testing.T) {
	var p Pool
	var enemies []*object.Enemy
	for i := 0; i < 5; i++ {
		enemies = append(enemies, p.AddEnemy(object.NewEnemy(object.KindNugget, float64(i), 0, object.NuggetSize, 1)))
	}
	enemies[1].MarkDead()
	enemies[3].MarkDead()
	p.AddText(&object.FloatingText{Text: "gone", Life: 0})
	p.AddText(&object.FloatingText{Text: "kept", Life: 0.5})

	p.Compact()

	require.Len(t, p.Enemies, 3)
	assert.Equal(t, []*object.Enemy{enemies[0], enemies[2], enemies[4]}, p.Enemies)
	for _, e := range p.Enemies {
		assert.False(t, e.IsDead())
	}
	require.Len(t, p.Texts, 1)
	assert.Equal(t, "kept", p.Texts[0].Text)
}

func TestClearKeepsStars(t *testing.T) {
	p := Pool{Stars: make([]object.Star, 3)}
	p.AddParticles(object.Explosion(0, 0, object.ColorRed, 4, false))
	require.Len(t, p.Particles, 4)

	p.Clear()
	assert.Empty(t, p.Particles)
	assert.Len(t, p.Stars, 3)
}
