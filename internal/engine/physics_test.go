package engine

import (
	"math"
	"testing"

	"github.com/vovakirdan/agent8/internal/core"
)

func TestUpdateOrder(t *testing.T) {
	w := newTestWorld()
	o := w.Get(w.Create(kindPlayer, core.V(100, 100), 10, "box"))
	o.Vel = core.V(2, 3)
	o.Acc = core.V(0, 1)
	o.RotSpeed = 0.5

	w.Update(o)

	if o.OldPos != core.V(100, 100) {
		t.Errorf("OldPos = %+v, expected previous position", o.OldPos)
	}
	// Position uses the velocity from before acceleration
	if o.Pos != core.V(102, 103) {
		t.Errorf("Pos = %+v, expected (102, 103)", o.Pos)
	}
	if o.Vel != core.V(2, 4) {
		t.Errorf("Vel = %+v, expected (2, 4)", o.Vel)
	}
	if o.Rotation != 0.5 {
		t.Errorf("Rotation = %v, expected 0.5", o.Rotation)
	}
}

func TestUpdateAnimation(t *testing.T) {
	w := newTestWorld()
	o := w.Get(w.Create(kindPlayer, core.V(0, 0), 0, "anim"))
	w.SetSprite(o, "anim", 0.5)

	frames := []int{}
	for i := 0; i < 6; i++ {
		w.Update(o)
		frames = append(frames, o.Frame)
	}

	// Counter must exceed 1 before the frame advances
	want := []int{0, 0, 1, 1, 2, 2}
	for i := range want {
		if frames[i] != want[i] {
			t.Fatalf("frames = %v, expected %v", frames, want)
		}
	}
}

func TestSetSpriteResetsOnlyOnChange(t *testing.T) {
	w := newTestWorld()
	o := w.Get(w.Create(kindPlayer, core.V(0, 0), 0, "anim"))
	o.Frame = 2
	o.FramePos = 0.4

	w.SetSprite(o, "anim", 0.25)
	if o.Frame != 2 || o.FramePos != 0.4 {
		t.Error("same sprite should keep the animation position")
	}
	if o.AnimSpeed != 0.25 {
		t.Error("animation speed should always be updated")
	}

	w.SetSprite(o, "box", 0)
	if o.Frame != 0 || o.FramePos != 0 {
		t.Error("new sprite should restart the animation")
	}
}

func TestIsAnimationComplete(t *testing.T) {
	w := newTestWorld()
	o := w.Get(w.Create(kindPlayer, core.V(0, 0), 0, "anim"))

	for frame, want := range []bool{false, false, true, false, false, true} {
		o.Frame = frame
		if got := w.IsAnimationComplete(o); got != want {
			t.Errorf("frame %d: IsAnimationComplete() = %v, expected %v", frame, got, want)
		}
	}

	single := w.Get(w.Create(kindPlayer, core.V(0, 0), 0, "box"))
	if !w.IsAnimationComplete(single) {
		t.Error("single-frame sprite is always complete")
	}
}

func TestSetDirection(t *testing.T) {
	o := &Object{}
	SetDirection(o, 16, 0.25*math.Pi)

	want := 16 / math.Sqrt2
	if math.Abs(o.Vel.X-want) > 1e-9 || math.Abs(o.Vel.Y+want) > 1e-9 {
		t.Errorf("Vel = %+v, expected (%v, %v)", o.Vel, want, -want)
	}
}

func TestIsColliding(t *testing.T) {
	a := &Object{Pos: core.V(0, 0), Radius: 50}
	b := &Object{Pos: core.V(99, 0), Radius: 50}
	c := &Object{Pos: core.V(100, 0), Radius: 50}

	if !IsColliding(a, b) {
		t.Error("centres closer than radii sum should collide")
	}
	if IsColliding(a, c) {
		t.Error("touching circles should not collide")
	}
}

func TestIsLeavingDisplay(t *testing.T) {
	w := newTestWorld()

	tests := []struct {
		name string
		pos  core.Vec2
		vel  core.Vec2
		axis Axis
		want bool
	}{
		{"inside", core.V(640, 360), core.V(5, 5), AxisBoth, false},
		{"crossing top moving up", core.V(640, 40), core.V(0, -3), AxisBoth, true},
		{"crossing top moving down", core.V(640, 40), core.V(0, 3), AxisBoth, false},
		{"crossing bottom moving down", core.V(640, 690), core.V(0, 3), AxisBoth, true},
		{"crossing left moving left", core.V(30, 360), core.V(-8, 0), AxisBoth, true},
		{"crossing left, vertical only", core.V(30, 360), core.V(-8, 0), AxisVertical, false},
		{"crossing bottom, horizontal only", core.V(640, 690), core.V(0, 3), AxisHorizontal, false},
		{"crossing right moving right", core.V(1250, 360), core.V(32, 0), AxisHorizontal, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := w.Get(w.Create(kindTool, tc.pos, 10, "box"))
			o.Vel = tc.vel
			if got := w.IsLeavingDisplay(o, tc.axis); got != tc.want {
				t.Errorf("IsLeavingDisplay() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestIsVisible(t *testing.T) {
	w := newTestWorld()

	tests := []struct {
		name   string
		sprite string
		pos    core.Vec2
		want   bool
	}{
		{"centre", "box", core.V(640, 360), true},
		{"partly off left", "box", core.V(-40, 360), true},
		{"fully off left", "box", core.V(-51, 360), false},
		{"fully off right", "box", core.V(1331, 360), false},
		{"point inside", "", core.V(10, 10), true},
		{"point outside", "", core.V(-1, 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			o := w.Get(w.Create(kindCoin, tc.pos, 0, tc.sprite))
			if got := w.IsVisible(o); got != tc.want {
				t.Errorf("IsVisible() = %v, expected %v", got, tc.want)
			}
		})
	}
}
