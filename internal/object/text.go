package object

import "math/rand"

// FloatingText is a transient label drifting upward. It is not an entity
// and takes no part in collision.
type FloatingText struct {
	X, Y  float64
	Text  string
	Life  float64
	Color string
	VY    float64
	Scale float64
}

// NewFloatingText creates a label at full life rising at 2px per tick.
func NewFloatingText(x, y float64, text, color string, scale float64) *FloatingText {
	return &FloatingText{
		X:     x,
		Y:     y,
		Text:  text,
		Life:  1,
		Color: color,
		VY:    -2,
		Scale: scale,
	}
}

// Step drifts and fades the label.
func (t *FloatingText) Step() {
	t.Y += t.VY
	t.VY *= TextDrag
	t.Life -= TextFade
}

// Expired reports whether the label has faded out.
func (t *FloatingText) Expired() bool {
	return t.Life <= 0
}

// Star is a decorative background point.
type Star struct {
	X, Y       float64
	Size       float64
	Speed      float64
	Brightness float64
}

// Starfield scatters count stars over the screen.
func Starfield(screen Screen, count int) []Star {
	stars := make([]Star, count)
	for i := range stars {
		stars[i] = Star{
			X:          rand.Float64() * screen.W(),
			Y:          rand.Float64() * screen.H(),
			Size:       rand.Float64()*2 + 1,
			Speed:      rand.Float64()*0.5 + 0.1,
			Brightness: rand.Float64(),
		}
	}
	return stars
}

// Step lets the star fall, wrapping to the top.
func (s *Star) Step(screen Screen) {
	s.Y += s.Speed
	if s.Y > screen.H() {
		s.Y = 0
	}
}
