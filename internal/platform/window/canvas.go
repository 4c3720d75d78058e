package window

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/agent8/internal/core"
)

// textScale enlarges the debug font so HUD text stays readable at 1280x720.
const textScale = 2

// Canvas draws onto an ebiten image in world coordinates. The window's
// logical size equals the world size, so no projection is needed.
type Canvas struct {
	dst    *ebiten.Image
	worldW float64
	worldH float64
	glyphs map[string]*ebiten.Image
}

// NewCanvas creates a canvas covering a worldW x worldH world.
func NewCanvas(worldW, worldH float64) *Canvas {
	return &Canvas{
		worldW: worldW,
		worldH: worldH,
		glyphs: make(map[string]*ebiten.Image),
	}
}

// Target sets the image the next frame is drawn on.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// Size implements core.Canvas.
func (c *Canvas) Size() (w, h float64) {
	return c.worldW, c.worldH
}

// Clear implements core.Canvas.
func (c *Canvas) Clear() {
	c.dst.Fill(color.Black)
}

// glyphImage renders an art block once in white, so it can be tinted on
// every draw.
func (c *Canvas) glyphImage(art []string) *ebiten.Image {
	key := artKey(art)
	if img, ok := c.glyphs[key]; ok {
		return img
	}
	w, h := artSize(art)
	img := ebiten.NewImage(max(w, 1), max(h, 1))
	ebitenutil.DebugPrintAt(img, key, 0, 0)
	c.glyphs[key] = img
	return img
}

// DrawSprite implements core.Canvas. The art is stretched over the
// sprite's W x H box, rotated about its centre and tinted.
func (c *Canvas) DrawSprite(d core.SpriteDraw) {
	if d.Opacity <= 0 || len(d.Art) == 0 {
		return
	}

	img := c.glyphImage(d.Art)
	iw, ih := img.Bounds().Dx(), img.Bounds().Dy()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-float64(iw)/2, -float64(ih)/2)
	if d.W > 0 && d.H > 0 {
		op.GeoM.Scale(d.W/float64(iw), d.H/float64(ih))
	}
	op.GeoM.Rotate(d.Rotation)
	op.GeoM.Translate(d.Pos.X, d.Pos.Y)
	op.ColorScale.ScaleWithColor(rgba(d.Color))
	op.ColorScale.ScaleAlpha(float32(min(d.Opacity, 1)))
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(img, op)
}

// DrawLine implements core.Canvas.
func (c *Canvas) DrawLine(from, to core.Vec2, clr core.Color) {
	vector.StrokeLine(c.dst,
		float32(from.X), float32(from.Y), float32(to.X), float32(to.Y),
		2, rgba(clr), true)
}

// DrawText implements core.Canvas.
func (c *Canvas) DrawText(text string, at core.Vec2, align core.Align, clr core.Color) {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	img := c.glyphImage(lines)
	w := float64(img.Bounds().Dx() * textScale)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(textScale, textScale)
	op.GeoM.Translate(at.X+alignOffset(w, align), at.Y)
	op.ColorScale.ScaleWithColor(rgba(clr))
	c.dst.DrawImage(img, op)
}
