package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/tomz197/nuggethunt/internal/object"
)

const (
	MaxShake      = 20.0
	shakeDecay    = 0.9
	shakeSnap     = 0.05
	hitShake      = 2.0
	killShake     = 5.0
	bossShake     = 10.0
	burstShake    = 20.0
	powerUpShake  = 10.0
	comboTextFrom = 3 // combo text shows from the third chained hit
)

// Shake is the screen-shake state. The offset only moves the render
// transform; entity positions are never touched.
type Shake struct {
	Intensity float64
	OffsetX   float64
	OffsetY   float64
}

// Add raises the intensity, capped at MaxShake.
func (s *Shake) Add(amount float64) {
	s.Intensity = min(s.Intensity+amount, MaxShake)
}

// Step jitters the offset and decays the intensity.
func (s *Shake) Step() {
	if s.Intensity <= 0 {
		s.OffsetX, s.OffsetY = 0, 0
		return
	}
	s.OffsetX = (rand.Float64() - 0.5) * s.Intensity
	s.OffsetY = (rand.Float64() - 0.5) * s.Intensity
	s.Intensity *= shakeDecay
	if s.Intensity < shakeSnap {
		s.Intensity = 0
	}
}

// stepJuice advances the shake and the combo window by one tick.
func (g *Game) stepJuice() {
	w := g.world
	w.Shake.Step()

	if w.Combo > 0 {
		w.ComboTimer -= g.profile.ComboDecay
		if w.ComboTimer <= 0 {
			w.Combo = 0
			w.ComboTimer = 0
		}
	}
}

// registerHit extends the combo and returns the points the hit is worth.
func (g *Game) registerHit() int {
	w := g.world
	w.Combo++
	w.ComboTimer = g.profile.ComboWindow
	if !g.profile.ComboScoring {
		return g.profile.HitPoints
	}
	return g.profile.HitPoints * w.Combo
}

// hitFeedback shows the score label and, from the third chained hit, the combo label.
func (g *Game) hitFeedback(x, y float64, points int) {
	w := g.world
	w.Shake.Add(hitShake)
	w.AddText(object.NewFloatingText(x, y, fmt.Sprint(points), object.ColorWhite, 1+0.1*float64(w.Combo)))
	if w.Combo >= comboTextFrom {
		w.AddText(object.NewFloatingText(x, y-20, fmt.Sprintf("%dx COMBO!", w.Combo), object.ColorYellow, 1.2))
	}
}

// announce puts a large label at the centre of the screen.
func (g *Game) announce(text, color string) {
	s := g.world.Screen
	g.world.AddText(object.NewFloatingText(s.W()/2, s.H()/2, text, color, 2))
}

// ComboRemaining reports how long the current combo stays open.
func (w *World) ComboRemaining() time.Duration {
	if w.Combo == 0 {
		return 0
	}
	return w.ComboTimer
}
