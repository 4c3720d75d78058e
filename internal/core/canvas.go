package core

import (
	"math"
	"strings"
)

// Align controls horizontal text placement relative to an anchor point.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// SpriteDraw describes one sprite blit in world coordinates.
// Art is the terminal rendering of the current animation frame; graphical
// backends may ignore it and draw a shape of size W x H instead.
type SpriteDraw struct {
	Pos      Vec2
	W, H     float64
	Art      []string
	Color    Color
	Rotation float64 // radians, clockwise
	Opacity  float64 // 0..1
}

// Canvas is a drawing surface addressed in world coordinates.
// Games draw onto a Canvas and never see the backend behind it.
type Canvas interface {
	// Size returns the world dimensions covered by the canvas.
	Size() (w, h float64)
	Clear()
	DrawSprite(d SpriteDraw)
	DrawLine(from, to Vec2, c Color)
	DrawText(text string, at Vec2, align Align, c Color)
}

// ScreenCanvas projects a fixed-size world onto a character Screen.
type ScreenCanvas struct {
	screen *Screen
	worldW float64
	worldH float64
}

// NewScreenCanvas wraps a screen so that a worldW x worldH area fills it.
func NewScreenCanvas(s *Screen, worldW, worldH float64) *ScreenCanvas {
	return &ScreenCanvas{screen: s, worldW: worldW, worldH: worldH}
}

// Screen returns the underlying character buffer.
func (c *ScreenCanvas) Screen() *Screen {
	return c.screen
}

// Size implements Canvas.
func (c *ScreenCanvas) Size() (w, h float64) {
	return c.worldW, c.worldH
}

// Clear implements Canvas.
func (c *ScreenCanvas) Clear() {
	c.screen.Clear()
}

// Cell maps a world position to a screen cell.
func (c *ScreenCanvas) Cell(p Vec2) (x, y int) {
	x = int(math.Floor(p.X / c.worldW * float64(c.screen.Width())))
	y = int(math.Floor(p.Y / c.worldH * float64(c.screen.Height())))
	return x, y
}

// DrawSprite implements Canvas. The art block is centred on the sprite
// position; spaces are transparent. A sprite turned more than a quarter
// turn is drawn upside down, and low opacity dims its color.
func (c *ScreenCanvas) DrawSprite(d SpriteDraw) {
	if d.Opacity <= 0 || len(d.Art) == 0 {
		return
	}

	lines := d.Art
	if math.Cos(d.Rotation) < 0 {
		lines = make([]string, len(d.Art))
		for i, l := range d.Art {
			lines[len(d.Art)-1-i] = l
		}
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}

	cx, cy := c.Cell(d.Pos)
	x0 := cx - width/2
	y0 := cy - len(lines)/2
	color := d.Color.Dim(d.Opacity)

	for row, l := range lines {
		col := 0
		for _, r := range l {
			if r != ' ' {
				c.screen.SetColored(x0+col, y0+row, r, color)
			}
			col++
		}
	}
}

// DrawLine implements Canvas using a simple DDA walk over cells.
func (c *ScreenCanvas) DrawLine(from, to Vec2, color Color) {
	x0, y0 := c.Cell(from)
	x1, y1 := c.Cell(to)

	glyph := '·'
	switch {
	case x0 == x1:
		glyph = '│'
	case y0 == y1:
		glyph = '─'
	}

	steps := max(Abs(x1-x0), Abs(y1-y0))
	if steps == 0 {
		c.screen.SetColored(x0, y0, glyph, color)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(math.Round(t*float64(x1-x0)))
		y := y0 + int(math.Round(t*float64(y1-y0)))
		c.screen.SetColored(x, y, glyph, color)
	}
}

// DrawText implements Canvas.
func (c *ScreenCanvas) DrawText(text string, at Vec2, align Align, color Color) {
	x, y := c.Cell(at)
	n := len([]rune(strings.TrimRight(text, "\n")))
	switch align {
	case AlignCenter:
		x -= n / 2
	case AlignRight:
		x -= n
	}
	c.screen.DrawTextColored(x, y, text, color)
}
