package client

import (
	"math"

	"github.com/tomz197/nuggethunt/internal/draw"
	"github.com/tomz197/nuggethunt/internal/game"
	"github.com/tomz197/nuggethunt/internal/object"
)

// Scene colours.
const (
	colorStarDim    = "#4a4a5a"
	colorStarMid    = "#8a8aa0"
	colorStarBright = "#ffffff"
	colorBox        = "#a0522d"
	colorBoxBand    = "#c0392b"
	colorTurret     = "#4fc3f7"
	colorSight      = "#ff5252"
	colorNugget     = "#d4a017"
	colorMini       = "#e6b422"
	colorBoss       = "#b8860b"
	colorBossCore   = "#8b4513"
	colorApple      = "#ff3b30"
	colorBanana     = "#ffe135"
	colorTrail      = "#665544"
	colorPowerUp    = "#39ff14"
)

const sightLength = 140.0

// drawWorld paints every entity of the snapshot onto the canvas,
// displaced by the screen shake.
func (c *Client) drawWorld(s *game.Snapshot) {
	cv := c.canvas
	ox, oy := s.ShakeX, s.ShakeY

	for _, st := range s.Stars {
		hex := colorStarDim
		switch {
		case st.Brightness > 0.8:
			hex = colorStarBright
		case st.Brightness > 0.4:
			hex = colorStarMid
		}
		cv.SetFloat(st.X+ox, st.Y+oy, cv.Color(hex))
	}

	c.drawBox(s.Screen, ox, oy)

	for i := range s.PowerUps {
		p := &s.PowerUps[i]
		r := p.Radius() * (1 + 0.15*math.Sin(p.Pulse))
		cv.DrawPolygon(cv.RegularPolygon(p.X+ox, p.Y+oy, r, p.Rotation, 4), cv.Color(colorPowerUp), true)
	}

	for i := range s.Enemies {
		c.drawEnemy(&s.Enemies[i], ox, oy)
	}

	trail := cv.Color(colorTrail)
	for i := range s.Projectiles {
		p := &s.Projectiles[i]
		for _, pt := range p.Trail.Points() {
			cv.SetFloat(pt.X+ox, pt.Y+oy, trail)
		}
		hex := colorApple
		if p.Ammo == object.AmmoBanana {
			hex = colorBanana
		}
		cv.FillCircle(p.X+ox, p.Y+oy, p.Radius()*0.6, cv.Color(hex))
	}

	for i := range s.Particles {
		p := &s.Particles[i]
		cv.FillCircle(p.X+ox, p.Y+oy, p.Radius()*p.Life, cv.Color(p.Color))
	}

	c.drawTurret(s, ox, oy)
}

// drawBox draws the nugget box the enemies launch from.
func (c *Client) drawBox(screen object.Screen, ox, oy float64) {
	cv := c.canvas
	bx, by := screen.BoxOrigin()
	bx += ox
	by += oy

	band := cv.BorrowPoints(4)
	band[0] = draw.Point{X: bx, Y: by + object.BoxHeight*0.3}
	band[1] = draw.Point{X: bx + object.BoxWidth, Y: by + object.BoxHeight*0.3}
	band[2] = draw.Point{X: bx + object.BoxWidth, Y: by + object.BoxHeight*0.6}
	band[3] = draw.Point{X: bx, Y: by + object.BoxHeight*0.6}
	cv.DrawPolygon(band, cv.Color(colorBoxBand), true)
	cv.StrokeRect(bx, by, object.BoxWidth, object.BoxHeight, cv.Color(colorBox))
}

// drawEnemy draws nuggets as spinning irregular blobs; the boss gets a core.
func (c *Client) drawEnemy(e *object.Enemy, ox, oy float64) {
	cv := c.canvas
	x, y := e.X+ox, e.Y+oy
	switch e.Kind {
	case object.KindBoss:
		cv.DrawPolygon(cv.RegularPolygon(x, y, e.Radius(), e.Rotation, 11), cv.Color(colorBoss), true)
		cv.FillCircle(x, y, e.Radius()*0.4, cv.Color(colorBossCore))
	case object.KindMiniNugget:
		cv.DrawPolygon(cv.RegularPolygon(x, y, e.Radius(), e.Rotation, 5), cv.Color(colorMini), true)
	default:
		cv.DrawPolygon(cv.RegularPolygon(x, y, e.Radius(), e.Rotation, 7), cv.Color(colorNugget), true)
	}
}

// drawTurret draws the turret and its aiming sight.
func (c *Client) drawTurret(s *game.Snapshot, ox, oy float64) {
	cv := c.canvas
	px, py := s.Screen.PlayerPosition()
	px += ox
	py += oy

	hex := colorTurret
	if s.Buffed {
		hex = colorPowerUp
	}
	cv.FillCircle(px, py, object.PlayerSize/4, cv.Color(hex))

	dx, dy := math.Cos(s.AimAngle), math.Sin(s.AimAngle)
	barrel := draw.Point{X: px + dx*object.PlayerSize/2, Y: py + dy*object.PlayerSize/2}
	cv.DrawLine(draw.Point{X: px, Y: py}, barrel, cv.Color(hex))
	if s.Phase.Active() {
		tip := draw.Point{X: px + dx*sightLength, Y: py + dy*sightLength}
		cv.DrawLine(barrel, tip, cv.Color(colorSight))
	}
}

// drawTexts writes floating labels over the canvas at their world positions.
// Written cells are marked dirty so the canvas repaints them next frame.
func (c *Client) drawTexts(s *game.Snapshot) {
	termWidth := c.canvas.TerminalWidth()
	termHeight := c.canvas.TerminalHeight()

	for _, t := range s.Texts {
		col, row := c.canvas.LogicalToTerminal(t.X+s.ShakeX, t.Y+s.ShakeY)
		n := draw.TextWidth(t.Text)
		col -= n / 2
		if row < 1 || row > termHeight || col < 1 || col+n > termWidth {
			continue
		}
		style := draw.ParseHex(t.Color).Foreground()
		if t.Scale >= 1.5 {
			style = draw.ColorBold + style
		}
		c.chunkWriter.WriteStyled(col, row, style, t.Text)
		c.canvas.MarkTextDirty(col, row, n)
	}
}
