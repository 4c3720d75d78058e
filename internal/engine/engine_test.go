package engine

import (
	"testing"

	"github.com/vovakirdan/agent8/internal/core"
)

func TestDiceRanges(t *testing.T) {
	d := NewDice(7)

	for i := 0; i < 1000; i++ {
		if r := d.Roll(50); r < 1 || r > 50 {
			t.Fatalf("Roll(50) = %d out of range", r)
		}
		if r := d.RollRange(-1, 1); r < -1 || r > 1 {
			t.Fatalf("RollRange(-1, 1) = %d out of range", r)
		}
	}

	if d.Roll(1) != 1 || d.Roll(0) != 1 {
		t.Error("Roll of a one-sided die is always 1")
	}
	if d.RollRange(3, 3) != 3 {
		t.Error("RollRange with equal bounds returns the bound")
	}
}

func TestDiceDeterministic(t *testing.T) {
	a, b := NewDice(12345), NewDice(12345)
	for i := 0; i < 100; i++ {
		if a.Roll(150) != b.Roll(150) {
			t.Fatalf("roll %d differs for the same seed", i)
		}
	}
}

func TestRecordingAudio(t *testing.T) {
	r := NewRecordingAudio()
	var a Audio = r

	a.StartLoop("music")
	a.Play("shoot")
	a.Play("shoot")
	a.StopLoop("music")

	if r.Count("shoot") != 2 {
		t.Errorf("Count(shoot) = %d, expected 2", r.Count("shoot"))
	}
	if r.Looping("music") {
		t.Error("music should be stopped")
	}
	if got := len(r.Events()); got != 4 {
		t.Errorf("recorded %d events, expected 4", got)
	}

	r.Reset()
	if len(r.Events()) != 0 {
		t.Error("Reset should forget events")
	}
}

type canvasRecorder struct {
	sprites []core.SpriteDraw
}

func (c *canvasRecorder) Size() (float64, float64) { return 1280, 720 }
func (c *canvasRecorder) Clear() {}
func (c *canvasRecorder) DrawSprite(d core.SpriteDraw) { c.sprites = append(c.sprites, d) }
func (c *canvasRecorder) DrawLine(core.Vec2, core.Vec2, core.Color) {}
func (c *canvasRecorder) DrawText(string, core.Vec2, core.Align, core.Color) {}

func TestDraw(t *testing.T) {
	w := newTestWorld()
	o := w.Get(w.Create(kindCoin, core.V(5, 6), 0, "anim"))
	o.Frame = 4
	o.Rotation = 1.5

	c := &canvasRecorder{}
	w.Draw(c, o)
	w.DrawRotated(c, o, 0.3)

	if len(c.sprites) != 2 {
		t.Fatalf("drew %d sprites, expected 2", len(c.sprites))
	}
	if c.sprites[0].Rotation != 0 || c.sprites[0].Opacity != 1 {
		t.Errorf("plain draw = %+v", c.sprites[0])
	}
	if c.sprites[1].Rotation != 1.5 || c.sprites[1].Opacity != 0.3 {
		t.Errorf("rotated draw = %+v", c.sprites[1])
	}
	// Frame 4 of a 3-frame sprite wraps to the second frame
	if art := c.sprites[0].Art; len(art) != 1 || art[0] != "2" {
		t.Errorf("art = %v, expected frame \"2\"", art)
	}

	unknown := w.Get(w.Create(kindCoin, core.V(0, 0), 0, "missing"))
	w.Draw(c, unknown)
	if len(c.sprites) != 2 {
		t.Error("objects with unknown sprites are not drawn")
	}
}
