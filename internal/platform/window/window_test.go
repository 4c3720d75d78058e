package window

import (
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/agent8/internal/core"
)

// fakeKeys is a scripted keyboard.
type fakeKeys struct {
	down map[ebiten.Key]bool
	just map[ebiten.Key]bool
}

func keys(down []ebiten.Key, just ...ebiten.Key) *fakeKeys {
	k := &fakeKeys{down: map[ebiten.Key]bool{}, just: map[ebiten.Key]bool{}}
	for _, d := range down {
		k.down[d] = true
	}
	for _, j := range just {
		k.just[j] = true
		k.down[j] = true
	}
	return k
}

func (k *fakeKeys) IsKeyPressed(key ebiten.Key) bool { return k.down[key] }
func (k *fakeKeys) IsKeyJustPressed(key ebiten.Key) bool { return k.just[key] }

type stubGame struct {
	state  core.GameState
	exit   bool
	resets int
	steps  []core.InputFrame
	reload int
}

func (g *stubGame) ID() string { return "stub" }
func (g *stubGame) Title() string { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *stubGame) State() core.GameState { return g.state }
func (g *stubGame) Render(core.Canvas) {}
func (g *stubGame) WorldSize() (w, h float64) { return 640, 360 }
func (g *stubGame) Reload() error { g.reload++; return nil }
func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, in.Clone())
	return core.StepResult{State: g.state, Exit: g.exit}
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name    string
		keys    *fakeKeys
		pressed []core.Action
		held    []core.Action
	}{
		{"nothing", keys(nil), nil, nil},
		{"hold up", keys([]ebiten.Key{ebiten.KeyArrowUp}), nil, []core.Action{core.ActionUp}},
		{"press w", keys(nil, ebiten.KeyW), []core.Action{core.ActionUp}, []core.Action{core.ActionUp}},
		{"fire while falling", keys([]ebiten.Key{ebiten.KeyS}, ebiten.KeySpace), []core.Action{core.ActionFire}, []core.Action{core.ActionDown, core.ActionFire}},
		{"escape", keys(nil, ebiten.KeyEscape), []core.Action{core.ActionExit}, nil},
		{"pause", keys(nil, ebiten.KeyP), []core.Action{core.ActionPause}, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := readInput(tc.keys)
			for _, a := range tc.pressed {
				if !f.Has(a) {
					t.Errorf("%v should be pressed", a)
				}
			}
			for _, a := range tc.held {
				if !f.IsHeld(a) {
					t.Errorf("%v should be held", a)
				}
			}
			if len(tc.pressed) == 0 && len(f.Pressed) != 0 {
				t.Errorf("unexpected presses %v", f.Pressed)
			}
		})
	}
}

func TestWindowUpdate(t *testing.T) {
	g := &stubGame{state: core.GameState{Phase: "PLAY"}}
	w := New(g, nil, core.RuntimeConfig{TickRate: 60, Seed: 3}, Options{})
	if g.resets != 1 {
		t.Fatalf("New should reset the game once, got %d", g.resets)
	}

	w.keys = keys([]ebiten.Key{ebiten.KeyArrowUp})
	if err := w.Update(); err != nil {
		t.Fatal(err)
	}
	if len(g.steps) != 1 || !g.steps[0].IsHeld(core.ActionUp) {
		t.Errorf("steps = %+v", g.steps)
	}

	w.keys = keys(nil, ebiten.KeyR)
	if err := w.Update(); err != nil || g.resets != 2 || len(g.steps) != 1 {
		t.Errorf("restart: err %v, resets %d, steps %d", err, g.resets, len(g.steps))
	}

	w.RequestReload()
	w.keys = keys(nil)
	_ = w.Update()
	_ = w.Update()
	if g.reload != 1 {
		t.Errorf("reloads = %d", g.reload)
	}

	w.keys = keys(nil, ebiten.KeyQ)
	if err := w.Update(); !errors.Is(err, ebiten.Termination) || w.Exited() {
		t.Errorf("quit: err %v, exited %v", err, w.Exited())
	}
}

func TestWindowExit(t *testing.T) {
	g := &stubGame{exit: true}
	w := New(g, nil, core.RuntimeConfig{}, Options{})
	w.keys = keys(nil, ebiten.KeyEscape)

	if err := w.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("err = %v", err)
	}
	if !w.Exited() {
		t.Error("an exit step should mark the window exited")
	}
}

func TestWindowLayoutIsWorld(t *testing.T) {
	w := New(&stubGame{}, nil, core.RuntimeConfig{}, Options{})
	if lw, lh := w.Layout(1920, 1080); lw != 640 || lh != 360 {
		t.Errorf("Layout() = %d, %d", lw, lh)
	}
}

func TestWindowKeepsBest(t *testing.T) {
	g := &stubGame{}
	w := New(g, nil, core.RuntimeConfig{}, Options{})
	w.keys = keys(nil)

	g.state = core.GameState{Score: 900, GameOver: true}
	_ = w.Update()
	if w.scores.Best() != 900 {
		t.Errorf("best = %d", w.scores.Best())
	}
}

func TestPalette(t *testing.T) {
	if rgba(core.ColorOrange) != palette[core.ColorOrange] {
		t.Error("orange should come from the palette")
	}
	if rgba(core.Color(200)) != palette[core.ColorBrightWhite] {
		t.Error("unknown colors draw white")
	}
}

func TestArtSizeAndAlign(t *testing.T) {
	w, h := artSize([]string{"ab", "abcd"})
	if w != 4*glyphW || h != 2*glyphH {
		t.Errorf("artSize() = %d, %d", w, h)
	}

	tests := []struct {
		align core.Align
		want  float64
	}{
		{core.AlignLeft, 0},
		{core.AlignCenter, -50},
		{core.AlignRight, -100},
	}
	for _, tc := range tests {
		if got := alignOffset(100, tc.align); got != tc.want {
			t.Errorf("alignOffset(100, %v) = %v, expected %v", tc.align, got, tc.want)
		}
	}
}
