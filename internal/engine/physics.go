package engine

import (
	"github.com/vovakirdan/agent8/internal/core"
)

// Update advances an object by one step: it remembers the previous
// position, moves by the velocity, spins, accelerates and advances the
// animation counter.
func (w *World) Update(o *Object) {
	o.OldPos = o.Pos
	o.Pos = o.Pos.Add(o.Vel)
	o.Rotation += o.RotSpeed
	o.Vel = o.Vel.Add(o.Acc)

	o.FramePos += o.AnimSpeed
	if o.FramePos > 1 {
		o.Frame++
		o.FramePos -= 1
	}
}

// SetDirection points the object's velocity at angle radians (0 is up,
// clockwise positive) with the given speed.
func SetDirection(o *Object, speed, angle float64) {
	o.Vel = core.FromAngle(speed, angle)
}

// IsColliding reports whether two objects' collision circles overlap.
func IsColliding(a, b *Object) bool {
	return core.Circle{Center: a.Pos, Radius: a.Radius}.
		Overlaps(core.Circle{Center: b.Pos, Radius: b.Radius})
}

// bounds returns the object's sprite rectangle in world space.
// Objects without a known sprite are treated as a point.
func (w *World) bounds(o *Object) core.Box {
	sw, sh := 0.0, 0.0
	if s, ok := w.sprites.Lookup(o.Sprite); ok {
		sw, sh = s.W, s.H
	}
	return core.BoxAround(o.Pos, sw, sh)
}

// IsLeavingDisplay reports whether the object's sprite crosses a display
// edge while moving away from the display. Moving back inward never counts.
func (w *World) IsLeavingDisplay(o *Object, axis Axis) bool {
	b := w.bounds(o)
	if axis != AxisVertical {
		if b.Min.X < 0 && o.Vel.X < 0 {
			return true
		}
		if b.Max.X > w.width && o.Vel.X > 0 {
			return true
		}
	}
	if axis != AxisHorizontal {
		if b.Min.Y < 0 && o.Vel.Y < 0 {
			return true
		}
		if b.Max.Y > w.height && o.Vel.Y > 0 {
			return true
		}
	}
	return false
}

// IsVisible reports whether any part of the object's sprite is on screen.
func (w *World) IsVisible(o *Object) bool {
	b := w.bounds(o)
	if b.Min == b.Max {
		return o.Pos.X >= 0 && o.Pos.X < w.width && o.Pos.Y >= 0 && o.Pos.Y < w.height
	}
	return b.Intersects(core.Box{Max: core.V(w.width, w.height)})
}

// SetSprite switches the object's sprite and animation speed. The
// animation restarts only when the sprite actually changes.
func (w *World) SetSprite(o *Object, name string, animSpeed float64) {
	if o.Sprite != name {
		o.Sprite = name
		o.Frame = 0
		o.FramePos = 0
	}
	o.AnimSpeed = animSpeed
}

// IsAnimationComplete reports whether the object shows the last frame of
// its sprite's animation.
func (w *World) IsAnimationComplete(o *Object) bool {
	n := 1
	if s, ok := w.sprites.Lookup(o.Sprite); ok {
		n = s.FrameCount()
	}
	return o.Frame%n == n-1
}

