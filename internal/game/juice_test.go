package game

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tomz197/nuggethunt/internal/object"
)

func TestShakeIsCappedAndDecays(t *testing.T) {
	var s Shake
	s.Add(15)
	s.Add(15)
	assert.Equal(t, MaxShake, s.Intensity)

	s.Step()
	assert.InDelta(t, MaxShake*0.9, s.Intensity, 1e-9)
	assert.LessOrEqual(t, s.OffsetX, MaxShake/2)
	assert.GreaterOrEqual(t, s.OffsetX, -MaxShake/2)

	for i := 0; i < 200; i++ {
		s.Step()
	}
	assert.Zero(t, s.Intensity)
	s.Step()
	assert.Zero(t, s.OffsetX)
	assert.Zero(t, s.OffsetY)
}

func TestShakeNeverMovesEntities(t *testing.T) {
	h := newHarness(t, quiet())
	h.arena()
	e := h.still(object.KindNugget, 500, 400, object.NuggetSize, 1)

	h.world().Shake.Add(MaxShake)
	h.tick()

	assert.Equal(t, 500.0, e.X)
	assert.Equal(t, 400.0, e.Y)
	assert.NotZero(t, h.world().Shake.Intensity)
}
