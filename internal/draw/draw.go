// Package draw renders to ANSI terminals: a scaled half-block canvas with a
// small colour palette, and a chunked writer for network-friendly output.
package draw

import (
	"fmt"
	"strconv"
	"strings"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
	BlockEmpty     = ' '
)

// Shade characters from lightest to darkest.
var Shades = []rune{' ', '░', '▒', '▓', '█'}

// ShadeLevel returns a shade character for a value between 0.0 (empty) and 1.0 (solid).
func ShadeLevel(intensity float64) rune {
	if intensity <= 0 {
		return Shades[0]
	}
	if intensity >= 1 {
		return Shades[len(Shades)-1]
	}
	return Shades[int(intensity*float64(len(Shades)-1))]
}

// ANSI attributes used by the overlays.
const (
	ColorReset      = "\033[0m"
	ColorBold       = "\033[1m"
	ColorBrightCyan = "\033[96m"
)

// Color is a palette index. Zero is "no pixel".
type Color uint8

// RGB is a 24-bit colour.
type RGB struct {
	R, G, B uint8
}

// ParseHex reads "#rrggbb" or "#rgb". Anything else is white.
func ParseHex(s string) RGB {
	s = strings.TrimPrefix(s, "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return RGB{255, 255, 255}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return RGB{255, 255, 255}
	}
	return RGB{uint8(v >> 16), uint8(v >> 8), uint8(v)}
}

// Foreground returns the truecolor SGR sequence for text.
func (c RGB) Foreground() string {
	return fmt.Sprintf("\033[38;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Background returns the truecolor SGR sequence for the cell background.
func (c RGB) Background() string {
	return fmt.Sprintf("\033[48;2;%d;%d;%dm", c.R, c.G, c.B)
}

// Palette maps colour names to indexes. Index 0 is reserved.
type Palette struct {
	index  map[string]Color
	colors []RGB
}

// NewPalette creates an empty palette.
func NewPalette() *Palette {
	return &Palette{
		index:  make(map[string]Color),
		colors: []RGB{{}},
	}
}

// Color returns the index for a hex colour, adding it when new. A full
// palette maps new colours to the last entry.
func (p *Palette) Color(hex string) Color {
	if c, ok := p.index[hex]; ok {
		return c
	}
	if len(p.colors) > 255 {
		return Color(len(p.colors) - 1)
	}
	p.colors = append(p.colors, ParseHex(hex))
	c := Color(len(p.colors) - 1)
	p.index[hex] = c
	return c
}

// RGB returns the colour behind an index.
func (p *Palette) RGB(c Color) RGB {
	if int(c) >= len(p.colors) {
		return RGB{255, 255, 255}
	}
	return p.colors[c]
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
