package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	assert.Equal(t, RGB{0xff, 0xd7, 0x00}, ParseHex("#ffd700"))
	assert.Equal(t, RGB{0xff, 0xff, 0xff}, ParseHex("#fff"))
	assert.Equal(t, RGB{255, 255, 255}, ParseHex("not a colour"))
}

func TestPaletteReusesIndexes(t *testing.T) {
	p := NewPalette()
	red := p.Color("#ff0000")
	gold := p.Color("#ffd700")
	assert.NotZero(t, red)
	assert.NotEqual(t, red, gold)
	assert.Equal(t, red, p.Color("#ff0000"))
	assert.Equal(t, RGB{255, 0, 0}, p.RGB(red))
}

func TestRenderOnlySendsChanges(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	red := c.Color("#ff0000")

	var out bytes.Buffer
	c.Render(&out)
	assert.Equal(t, 50, strings.Count(out.String(), " "), "first frame paints every cell")

	out.Reset()
	c.Render(&out)
	assert.Empty(t, out.String(), "unchanged frame sends nothing")

	c.SetFloat(2, 2, red)
	out.Reset()
	c.Render(&out)
	assert.Contains(t, out.String(), string(BlockUpperHalf))
	assert.Contains(t, out.String(), "38;2;255;0;0")

	c.Clear()
	out.Reset()
	c.Render(&out)
	assert.Equal(t, 1, strings.Count(out.String(), " "), "the cleared cell is blanked")
}

func TestCellCombinesHalves(t *testing.T) {
	c := NewScaledCanvas(1, 1, 1, 2)
	a := c.Color("#ff0000")
	b := c.Color("#00ff00")

	c.setPixel(0, 0, a)
	assert.Equal(t, cell{ch: BlockUpperHalf, fg: a}, c.cellAt(0, 0))

	c.setPixel(0, 1, a)
	assert.Equal(t, cell{ch: BlockFull, fg: a}, c.cellAt(0, 0))

	c.setPixel(0, 1, b)
	assert.Equal(t, cell{ch: BlockUpperHalf, fg: a, bg: b}, c.cellAt(0, 0))

	c.setPixel(0, 0, 0)
	assert.Equal(t, cell{ch: BlockLowerHalf, fg: b}, c.cellAt(0, 0))
}

func TestFillCircleStaysInBounds(t *testing.T) {
	c := NewScaledCanvas(20, 10, 100, 100)
	gold := c.Color("#ffd700")

	c.FillCircle(50, 50, 20, gold)
	c.FillCircle(-10, -10, 30, gold)

	set := 0
	for _, px := range c.pixels {
		if px == gold {
			set++
		}
	}
	require.NotZero(t, set)
	assert.Equal(t, gold, c.pixels[10*c.termWidth+10], "the centre is filled")
}

func TestMarkTextDirtyForcesRepaint(t *testing.T) {
	c := NewScaledCanvas(10, 5, 10, 10)
	var out bytes.Buffer
	c.Render(&out)

	c.MarkTextDirty(3, 2, 4)
	out.Reset()
	c.Render(&out)
	assert.Equal(t, 4, strings.Count(out.String(), " "))
}

func TestLogicalToTerminal(t *testing.T) {
	c := NewScaledCanvas(120, 45, 1200, 900)
	col, row := c.LogicalToTerminal(600, 450)
	assert.Equal(t, 61, col)
	assert.Equal(t, 23, row)
}
