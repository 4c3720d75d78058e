package engine

import (
	"github.com/vovakirdan/agent8/internal/core"
)

// Draw blits the object unrotated at full opacity.
func (w *World) Draw(c core.Canvas, o *Object) {
	w.draw(c, o, 0, 1)
}

// DrawRotated blits the object at its rotation with the given opacity.
func (w *World) DrawRotated(c core.Canvas, o *Object, opacity float64) {
	w.draw(c, o, o.Rotation, opacity)
}

func (w *World) draw(c core.Canvas, o *Object, rotation, opacity float64) {
	s, ok := w.sprites.Lookup(o.Sprite)
	if !ok {
		return
	}
	c.DrawSprite(core.SpriteDraw{
		Pos:      o.Pos,
		W:        s.W,
		H:        s.H,
		Art:      s.Art(o.Frame),
		Color:    s.Color,
		Rotation: rotation,
		Opacity:  opacity,
	})
}
