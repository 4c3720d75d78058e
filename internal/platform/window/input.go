package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/agent8/internal/core"
)

// keyState is the keyboard as seen by one tick.
type keyState interface {
	IsKeyPressed(k ebiten.Key) bool
	IsKeyJustPressed(k ebiten.Key) bool
}

// ebitenKeys reads the real keyboard.
type ebitenKeys struct{}

func (ebitenKeys) IsKeyPressed(k ebiten.Key) bool { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) IsKeyJustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

type binding struct {
	action core.Action
	keys   []ebiten.Key
}

// bindings mirrors the terminal key map. A window reports real key
// releases, so no hold window is needed.
var bindings = []binding{
	{core.ActionUp, []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
	{core.ActionDown, []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
	{core.ActionFire, []ebiten.Key{ebiten.KeySpace}},
	{core.ActionConfirm, []ebiten.Key{ebiten.KeyEnter}},
	{core.ActionPause, []ebiten.Key{ebiten.KeyP}},
	{core.ActionExit, []ebiten.Key{ebiten.KeyEscape}},
	{core.ActionRestart, []ebiten.Key{ebiten.KeyR}},
	{core.ActionQuit, []ebiten.Key{ebiten.KeyQ}},
}

// readInput builds the input frame for this tick.
func readInput(ks keyState) core.InputFrame {
	frame := core.NewInputFrame()
	for _, b := range bindings {
		for _, k := range b.keys {
			switch {
			case ks.IsKeyJustPressed(k):
				frame.Set(b.action)
			case ks.IsKeyPressed(k):
				frame.Hold(b.action)
			}
		}
	}
	return frame
}
