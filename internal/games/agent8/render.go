package agent8

import (
	"fmt"

	"github.com/vovakirdan/agent8/internal/core"
	"github.com/vovakirdan/agent8/internal/engine"
)

// Render draws the game onto the canvas in world coordinates.
func (g *Game) Render(dst core.Canvas) {
	if g.world == nil {
		return
	}
	w, h := g.world.Size()

	// Agent8 on its rope
	p := g.world.Get(g.playerID)
	dst.DrawLine(core.V(p.Pos.X, 0), p.Pos, core.ColorWhite)
	g.world.DrawRotated(dst, p, 1)

	g.world.Draw(dst, g.world.Get(g.fanID))

	for _, kind := range []engine.Kind{KindTool, KindCoin, KindStar} {
		for _, id := range g.world.CollectIDs(kind) {
			g.world.DrawRotated(dst, g.world.Get(id), 1)
		}
	}
	for _, id := range g.world.CollectIDs(KindLaser) {
		g.world.Draw(dst, g.world.Get(id))
	}
	for _, id := range g.world.CollectIDs(KindDestroyed) {
		d := g.world.Get(id)
		if a := fadeOpacity(d.FadeFrame(), g.cfg.Fade.Frames); a > 0 {
			g.world.DrawRotated(dst, d, a)
		}
	}

	// HUD
	dst.DrawText(Instructions, core.V(w/2, h-30), core.AlignCenter, core.ColorGray)
	dst.DrawText(fmt.Sprintf("SCORE: %d", g.score), core.V(w/2, 50), core.AlignCenter, core.ColorBrightYellow)
	if g.paused {
		dst.DrawText("PAUSED", core.V(w/2, h/2), core.AlignCenter, core.ColorBrightWhite)
	}
}
