// Package desktop runs the game in a native window with ebiten.
package desktop

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/nuggethunt/internal/game"
)

// App adapts a game.Game to ebiten.Game. Each Update is exactly one Tick,
// so the simulation runs at ebiten's tick rate.
type App struct {
	game    *game.Game
	sprites *Sprites
	log     *log.Logger
	face    *text.GoXFace

	width, height int // current layout size
	pendingResize bool
	lastAimX      int
	lastAimY      int
	debug         bool

	// 1x1 white source for filled polygons, created on first draw.
	white *ebiten.Image
}

// NewApp creates the window adapter. sprites may be nil.
func NewApp(g *game.Game, sprites *Sprites, logger *log.Logger) *App {
	if sprites == nil {
		sprites = &Sprites{}
	}
	if logger == nil {
		logger = log.Default()
	}
	s := g.Snapshot().Screen
	return &App{
		game:    g,
		sprites: sprites,
		log:     logger,
		face:    text.NewGoXFace(basicfont.Face7x13),
		width:   s.Width,
		height:  s.Height,
	}
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		a.debug = !a.debug
	}
	if a.pendingResize {
		a.game.Resize(a.width, a.height)
		a.pendingResize = false
	}

	a.handlePointer()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		a.game.Restart()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		a.trigger()
	}

	a.game.Tick()
	return nil
}

// handlePointer aims at the cursor and at new touches, and fires on press.
func (a *App) handlePointer() {
	x, y := ebiten.CursorPosition()
	if x != a.lastAimX || y != a.lastAimY {
		a.lastAimX, a.lastAimY = x, y
		a.game.HandleAimUpdate(float64(x), float64(y))
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.game.HandleAimUpdate(float64(x), float64(y))
		a.trigger()
	}

	for _, id := range ebiten.AppendTouchIDs(nil) {
		tx, ty := ebiten.TouchPosition(id)
		a.game.HandleAimUpdate(float64(tx), float64(ty))
	}
	for range inpututil.AppendJustPressedTouchIDs(nil) {
		a.trigger()
	}
}

// trigger is the single "action" input: start, fire or back to the title.
func (a *App) trigger() {
	switch phase := a.game.Phase(); {
	case phase == game.PhaseStart:
		a.game.Start()
	case phase.Terminal():
		a.game.Restart()
	default:
		a.game.HandleFireTrigger()
	}
}

// Layout implements ebiten.Game. The viewport follows the window; the game
// picks the new size up on the next Update.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != a.width || outsideHeight != a.height) {
		a.width, a.height = outsideWidth, outsideHeight
		a.pendingResize = true
		a.log.Debug("window resized", "width", outsideWidth, "height", outsideHeight)
	}
	return a.width, a.height
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x0b, 0x0b, 0x14, 0xff})
	s := a.game.Snapshot()
	a.drawWorld(screen, s)
	a.drawHUD(screen, s)
	a.drawOverlay(screen, s)
	if a.debug {
		a.drawDebug(screen, s)
	}
}

// Compile-time check that App implements ebiten.Game.
var _ ebiten.Game = (*App)(nil)
