package desktop

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/nuggethunt/internal/draw"
	"github.com/tomz197/nuggethunt/internal/game"
	"github.com/tomz197/nuggethunt/internal/object"
)

var (
	colorNugget  = hex("#d4a017", 1)
	colorMini    = hex("#e6b422", 1)
	colorBoss    = hex("#b8860b", 1)
	colorCore    = hex("#8b4513", 1)
	colorApple   = hex("#ff3b30", 1)
	colorBanana  = hex("#ffe135", 1)
	colorTrail   = hex("#ffffff", 0.3)
	colorTurret  = hex("#4fc3f7", 1)
	colorBuffed  = hex("#39ff14", 1)
	colorSight   = hex("#ff5252", 0.6)
	colorBox     = hex("#c0392b", 1)
	colorBoxBand = hex("#f5f5f5", 1)
	colorBoxEdge = hex("#a0522d", 1)
	colorText    = hex("#ffffff", 1)
	colorDim     = hex("#aaaaaa", 1)
	colorBarBack = hex("#333333", 1)
)

// hex converts "#rrggbb" to a colour with the given opacity.
func hex(s string, alpha float64) color.NRGBA {
	c := draw.ParseHex(s)
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(math.Round(clamp01(alpha) * 255))}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func (a *App) drawWorld(screen *ebiten.Image, s *game.Snapshot) {
	ox, oy := s.ShakeX, s.ShakeY

	for _, st := range s.Stars {
		vector.DrawFilledRect(screen, float32(st.X+ox), float32(st.Y+oy), float32(st.Size), float32(st.Size),
			hex("#ffffff", 0.3+0.7*st.Brightness), false)
	}

	a.drawBox(screen, s.Screen, ox, oy)

	for i := range s.PowerUps {
		p := &s.PowerUps[i]
		r := p.Radius() * (1 + 0.15*math.Sin(p.Pulse))
		if !a.drawSprite(screen, a.sprites.PowerUp, p.X+ox, p.Y+oy, r*2, p.Rotation) {
			a.fillPolygon(screen, p.X+ox, p.Y+oy, r, p.Rotation, 4, colorBuffed)
		}
	}

	for i := range s.Enemies {
		a.drawEnemy(screen, &s.Enemies[i], ox, oy)
	}

	for i := range s.Projectiles {
		p := &s.Projectiles[i]
		pts := p.Trail.Points()
		for j := 1; j < len(pts); j++ {
			vector.StrokeLine(screen, float32(pts[j-1].X+ox), float32(pts[j-1].Y+oy),
				float32(pts[j].X+ox), float32(pts[j].Y+oy), 4, colorTrail, true)
		}
		sprite, fill := a.sprites.Apple, colorApple
		if p.Ammo == object.AmmoBanana {
			sprite, fill = a.sprites.Banana, colorBanana
		}
		if !a.drawSprite(screen, sprite, p.X+ox, p.Y+oy, p.Width, p.Rotation) {
			vector.DrawFilledCircle(screen, float32(p.X+ox), float32(p.Y+oy), float32(p.Radius()*0.6), fill, true)
		}
	}

	for i := range s.Particles {
		p := &s.Particles[i]
		half := p.Radius()
		vector.DrawFilledRect(screen, float32(p.X+ox-half), float32(p.Y+oy-half), float32(half*2), float32(half*2),
			hex(p.Color, p.Life), false)
	}

	a.drawTurret(screen, s, ox, oy)

	for _, t := range s.Texts {
		a.drawText(screen, t.Text, t.X+ox, t.Y+oy, 1.5*t.Scale, hex(t.Color, t.Life), text.AlignCenter)
	}
}

func (a *App) drawBox(screen *ebiten.Image, scr object.Screen, ox, oy float64) {
	bx, by := scr.BoxOrigin()
	bx += ox
	by += oy
	if a.drawSprite(screen, a.sprites.Box, bx+object.BoxWidth/2, by+object.BoxHeight/2, object.BoxWidth, 0) {
		return
	}
	vector.DrawFilledRect(screen, float32(bx), float32(by), object.BoxWidth, object.BoxHeight, colorBox, false)
	vector.DrawFilledRect(screen, float32(bx), float32(by+object.BoxHeight*0.35), object.BoxWidth, object.BoxHeight*0.3, colorBoxBand, false)
	vector.StrokeRect(screen, float32(bx), float32(by), object.BoxWidth, object.BoxHeight, 3, colorBoxEdge, false)
}

func (a *App) drawEnemy(screen *ebiten.Image, e *object.Enemy, ox, oy float64) {
	x, y := e.X+ox, e.Y+oy
	switch e.Kind {
	case object.KindBoss:
		if !a.drawSprite(screen, a.sprites.Boss, x, y, e.Width, e.Rotation) {
			a.fillPolygon(screen, x, y, e.Radius(), e.Rotation, 11, colorBoss)
			vector.DrawFilledCircle(screen, float32(x), float32(y), float32(e.Radius()*0.4), colorCore, true)
		}
	case object.KindMiniNugget:
		if !a.drawSprite(screen, a.sprites.Mini, x, y, e.Width, e.Rotation) {
			a.fillPolygon(screen, x, y, e.Radius(), e.Rotation, 6, colorMini)
		}
	default:
		if !a.drawSprite(screen, a.sprites.Nugget, x, y, e.Width, e.Rotation) {
			a.fillPolygon(screen, x, y, e.Radius(), e.Rotation, 7, colorNugget)
		}
	}
}

func (a *App) drawTurret(screen *ebiten.Image, s *game.Snapshot, ox, oy float64) {
	px, py := s.Screen.PlayerPosition()
	px += ox
	py += oy
	c := colorTurret
	if s.Buffed {
		c = colorBuffed
	}
	dx, dy := math.Cos(s.AimAngle), math.Sin(s.AimAngle)
	if s.Phase.Active() {
		vector.StrokeLine(screen, float32(px), float32(py), float32(px+dx*object.PlayerSize*2), float32(py+dy*object.PlayerSize*2), 1, colorSight, true)
	}
	vector.StrokeLine(screen, float32(px), float32(py), float32(px+dx*object.PlayerSize*0.6), float32(py+dy*object.PlayerSize*0.6), 16, c, true)
	vector.DrawFilledCircle(screen, float32(px), float32(py), object.PlayerSize/4, c, true)
}

// drawSprite draws img centred on (x, y), scaled to size across and rotated.
// It reports false when there is no sprite to draw.
func (a *App) drawSprite(screen, img *ebiten.Image, x, y, size, rotation float64) bool {
	if img == nil {
		return false
	}
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(size/w, size/w)
	op.GeoM.Rotate(rotation)
	op.GeoM.Translate(x, y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
	return true
}

// fillPolygon fills a regular n-gon of radius r centred on (x, y). The
// outline is roughened a little so nuggets don't look machined.
func (a *App) fillPolygon(screen *ebiten.Image, x, y, r, rot float64, n int, c color.NRGBA) {
	if a.white == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		a.white = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}

	var path vector.Path
	for i := 0; i < n; i++ {
		angle := rot + 2*math.Pi*float64(i)/float64(n)
		k := r * (0.85 + 0.15*math.Sin(float64(i)*2.3))
		px, py := float32(x+math.Cos(angle)*k), float32(y+math.Sin(angle)*k)
		if i == 0 {
			path.MoveTo(px, py)
		} else {
			path.LineTo(px, py)
		}
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	cr, cg, cb, ca := float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 1, 1
		vs[i].ColorR, vs[i].ColorG, vs[i].ColorB, vs[i].ColorA = cr*ca, cg*ca, cb*ca, ca
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	screen.DrawTriangles(vs, is, a.white, op)
}

func (a *App) drawText(screen *ebiten.Image, s string, x, y, scale float64, c color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, a.face, op)
}

func (a *App) drawHUD(screen *ebiten.Image, s *game.Snapshot) {
	if !s.Phase.Active() {
		return
	}
	w := float64(a.width)
	a.drawText(screen, fmt.Sprintf("Kills %d   Points %d", s.Kills, s.Points), 16, 20, 2, colorText, text.AlignStart)
	if s.Combo > 1 {
		a.drawText(screen, fmt.Sprintf("Combo x%d", s.Combo), 16, 48, 2, colorBanana, text.AlignStart)
		if s.ComboSpan > 0 {
			frac := clamp01(float64(s.ComboLeft) / float64(s.ComboSpan))
			vector.DrawFilledRect(screen, 16, 62, float32(160*frac), 4, colorBanana, false)
		}
	}
	if s.Timed {
		secs := int(s.TimeLeft.Round(time.Second).Seconds())
		a.drawText(screen, fmt.Sprintf("Time %02d:%02d", secs/60, secs%60), w-16, 20, 2, colorText, text.AlignEnd)
	}
	if s.Buffed {
		a.drawText(screen, fmt.Sprintf("TRIPLE SHOT %.1fs", s.BuffLeft.Seconds()), w-16, 48, 2, colorBuffed, text.AlignEnd)
	}
	if s.Phase == game.PhasePlaying {
		a.drawText(screen, fmt.Sprintf("Nuggets %d/%d", s.Spawned, s.Quota), w/2, 20, 2, colorDim, text.AlignCenter)
	}
	if s.Phase == game.PhaseBossFight && s.BossMaxHP > 0 {
		barW := math.Min(400, w-40)
		x := (w - barW) / 2
		vector.DrawFilledRect(screen, float32(x), 12, float32(barW), 16, colorBarBack, false)
		vector.DrawFilledRect(screen, float32(x), 12, float32(barW*float64(s.BossHP)/float64(s.BossMaxHP)), 16, colorApple, false)
	}
}

func (a *App) drawOverlay(screen *ebiten.Image, s *game.Snapshot) {
	cx, cy := float64(a.width)/2, float64(a.height)/2
	blink := time.Now().UnixMilli()/600%2 == 0

	switch s.Phase {
	case game.PhaseStart:
		a.drawText(screen, "NUGGET HUNT", cx, cy-60, 6, colorNugget, text.AlignCenter)
		a.drawText(screen, "Aim with the mouse, click or tap to fire", cx, cy+10, 2, colorText, text.AlignCenter)
		if blink {
			a.drawText(screen, "Click to start", cx, cy+60, 2.5, colorTurret, text.AlignCenter)
		}
	case game.PhaseBossIntro:
		if time.Now().UnixMilli()/300%2 == 0 {
			a.drawText(screen, "BOSS INCOMING", cx, cy, 5, colorApple, text.AlignCenter)
		}
	case game.PhaseWon, game.PhaseGameOver:
		title, c := "GAME OVER", colorApple
		if s.Phase == game.PhaseWon {
			title, c = "YOU WIN", hex(object.ColorGold, 1)
		}
		a.drawText(screen, title, cx, cy-40, 6, c, text.AlignCenter)
		a.drawText(screen, fmt.Sprintf("Kills %d   Points %d", s.Kills, s.Points), cx, cy+20, 2.5, colorText, text.AlignCenter)
		if blink {
			a.drawText(screen, "Click to play again", cx, cy+60, 2, colorTurret, text.AlignCenter)
		}
	}
}

func (a *App) drawDebug(screen *ebiten.Image, s *game.Snapshot) {
	msg := fmt.Sprintf("TPS %.0f  FPS %.0f  tick %d  enemies %d  shots %d  particles %d",
		ebiten.ActualTPS(), ebiten.ActualFPS(), s.Tick, len(s.Enemies), len(s.Projectiles), len(s.Particles))
	ebitenutil.DebugPrintAt(screen, msg, 8, a.height-20)
}
