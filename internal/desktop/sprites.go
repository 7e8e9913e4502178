package desktop

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// minSpriteSize is the smallest edge, in pixels, a sprite may have.
const minSpriteSize = 8

// ErrSpriteTooSmall is returned for images below minSpriteSize on either edge.
var ErrSpriteTooSmall = errors.New("sprite too small")

// Sprites holds optional images. A nil field is drawn procedurally.
type Sprites struct {
	Nugget  *ebiten.Image
	Mini    *ebiten.Image
	Boss    *ebiten.Image
	Apple   *ebiten.Image
	Banana  *ebiten.Image
	PowerUp *ebiten.Image
	Box     *ebiten.Image
}

// spriteFiles maps file names in the asset directory to sprite slots.
func (s *Sprites) spriteFiles() map[string]**ebiten.Image {
	return map[string]**ebiten.Image{
		"nugget.png":  &s.Nugget,
		"mini.png":    &s.Mini,
		"boss.png":    &s.Boss,
		"apple.png":   &s.Apple,
		"banana.png":  &s.Banana,
		"powerup.png": &s.PowerUp,
		"box.png":     &s.Box,
	}
}

// LoadSprites reads every known sprite from dir. Missing, unreadable or
// undersized files are logged and left nil. An empty dir loads nothing.
func LoadSprites(dir string, logger *log.Logger) *Sprites {
	s := &Sprites{}
	if dir == "" {
		return s
	}
	if logger == nil {
		logger = log.Default()
	}

	loaded := 0
	for name, slot := range s.spriteFiles() {
		path := filepath.Join(dir, name)
		img, err := loadSprite(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				logger.Warn("sprite missing, drawing shapes instead", "path", path)
			} else {
				logger.Warn("sprite unusable, drawing shapes instead", "path", path, "err", err)
			}
			continue
		}
		*slot = img
		loaded++
	}
	logger.Info("sprites loaded", "dir", dir, "count", loaded)
	return s
}

func loadSprite(path string) (*ebiten.Image, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, err
	}
	img, src, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if err := checkSprite(src); err != nil {
		img.Deallocate()
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return img, nil
}

// checkSprite rejects images too small to scale up cleanly.
func checkSprite(img image.Image) error {
	b := img.Bounds()
	if b.Dx() < minSpriteSize || b.Dy() < minSpriteSize {
		return fmt.Errorf("%w: %dx%d", ErrSpriteTooSmall, b.Dx(), b.Dy())
	}
	return nil
}
