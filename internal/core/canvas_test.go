package core

import (
	"math"
	"testing"
)

func TestScreenCanvasCell(t *testing.T) {
	c := NewScreenCanvas(NewScreen(128, 36), 1280, 720)

	tests := []struct {
		name   string
		p      Vec2
		cx, cy int
	}{
		{"origin", V(0, 0), 0, 0},
		{"centre", V(640, 360), 64, 18},
		{"bottom-right inside", V(1279, 719), 127, 35},
		{"left of display", V(-15, 0), -2, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := c.Cell(tc.p)
			if x != tc.cx || y != tc.cy {
				t.Errorf("Cell(%+v) = (%d, %d), expected (%d, %d)", tc.p, x, y, tc.cx, tc.cy)
			}
		})
	}
}

func TestScreenCanvasDrawSprite(t *testing.T) {
	s := NewScreen(20, 10)
	c := NewScreenCanvas(s, 200, 100)

	c.DrawSprite(SpriteDraw{
		Pos:     V(100, 50),
		Art:     []string{"ab", "cd"},
		Color:   ColorGreen,
		Opacity: 1,
	})

	if s.Get(9, 4) != 'a' || s.Get(10, 4) != 'b' || s.Get(9, 5) != 'c' || s.Get(10, 5) != 'd' {
		t.Errorf("sprite not centred on (10, 5):\n%s", s.String())
	}
	if s.GetCell(9, 4).Color != ColorGreen {
		t.Error("sprite should keep its color at full opacity")
	}
}

func TestScreenCanvasSpriteTransparencyAndFlip(t *testing.T) {
	s := NewScreen(20, 10)
	c := NewScreenCanvas(s, 200, 100)
	s.Fill('.')

	c.DrawSprite(SpriteDraw{
		Pos:      V(100, 50),
		Art:      []string{"x ", "yz"},
		Opacity:  1,
		Rotation: math.Pi,
	})

	// Upside down: "yz" is now on top
	if s.Get(9, 4) != 'y' || s.Get(10, 4) != 'z' {
		t.Errorf("expected flipped art on top row, got %q", s.Row(4))
	}
	if s.Get(9, 5) != 'x' {
		t.Errorf("expected 'x' on bottom row, got %q", s.Row(5))
	}
	// Space is transparent
	if s.Get(10, 5) != '.' {
		t.Errorf("space in art should not overwrite background, got %q", s.Get(10, 5))
	}
}

func TestScreenCanvasOpacity(t *testing.T) {
	s := NewScreen(20, 10)
	c := NewScreenCanvas(s, 200, 100)

	c.DrawSprite(SpriteDraw{Pos: V(50, 50), Art: []string{"o"}, Color: ColorYellow, Opacity: 0.5})
	if got := s.GetCell(5, 5).Color; got != ColorGray {
		t.Errorf("half opacity color = %v, expected gray", got)
	}

	c.DrawSprite(SpriteDraw{Pos: V(150, 50), Art: []string{"o"}, Color: ColorYellow, Opacity: 0})
	if s.Get(15, 5) != ' ' {
		t.Error("zero opacity sprite should not be drawn")
	}
}

func TestScreenCanvasDrawLineVertical(t *testing.T) {
	s := NewScreen(20, 10)
	c := NewScreenCanvas(s, 200, 100)

	c.DrawLine(V(55, 0), V(55, 45), ColorWhite)

	for y := 0; y <= 4; y++ {
		if s.Get(5, y) != '│' {
			t.Errorf("expected vertical line at (5, %d), got %q", y, s.Get(5, y))
		}
	}
	if s.Get(5, 5) != ' ' {
		t.Error("line should stop at its end point")
	}
}

func TestScreenCanvasDrawTextAlign(t *testing.T) {
	s := NewScreen(20, 5)
	c := NewScreenCanvas(s, 200, 50)

	c.DrawText("SCORE", V(100, 10), AlignCenter, ColorWhite)
	if s.Row(1) != "        SCORE       " {
		t.Errorf("centred text row = %q", s.Row(1))
	}

	c.DrawText("R", V(200, 30), AlignRight, ColorWhite)
	if s.Get(19, 3) != 'R' {
		t.Errorf("right-aligned text row = %q", s.Row(3))
	}
}
