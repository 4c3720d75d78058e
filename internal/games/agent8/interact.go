package agent8

import (
	"github.com/vovakirdan/agent8/internal/engine"
)

// updateTools moves the tools, kills Agent8 on contact and drops tools
// that have flown off screen. Tools bounce off the top and bottom edges.
func (g *Game) updateTools() {
	p := g.world.Get(g.playerID)

	for _, id := range g.world.CollectIDs(KindTool) {
		t := g.world.Get(id)

		if g.state != StateDead && engine.IsColliding(t, p) {
			g.killPlayer()
		}

		g.world.Update(t)
		if g.world.IsLeavingDisplay(t, engine.AxisVertical) {
			t.Pos = t.OldPos
			t.Vel.Y *= -1
		}

		if !g.world.IsVisible(t) {
			g.world.Destroy(id)
		}
	}
}

// updateCoinsAndStars collects coins Agent8 touches and moves the star
// bursts that collecting leaves behind.
func (g *Game) updateCoinsAndStars() {
	p := g.world.Get(g.playerID)

	for _, id := range g.world.CollectIDs(KindCoin) {
		c := g.world.Get(id)
		collected := false

		if engine.IsColliding(c, p) {
			g.spawnStars(p.Pos)
			collected = true
			g.score += g.cfg.Scoring.Coin
			g.audio.Play(SoundCollect)
		}

		g.world.Update(c)

		// Removed last, after every use of c this frame.
		if !g.world.IsVisible(c) || collected {
			g.world.Destroy(id)
		}
	}

	for _, id := range g.world.CollectIDs(KindStar) {
		s := g.world.Get(id)
		g.world.Update(s)
		if !g.world.IsVisible(s) {
			g.world.Destroy(id)
		}
	}
}

// updateLasers resolves laser hits. Shooting a tool scores; shooting a coin
// costs points. A laser can hit a tool and a coin in the same frame and
// both count. Objects already knocked out this frame are not hit again.
func (g *Game) updateLasers() {
	lasers := g.world.CollectIDs(KindLaser)
	tools := g.world.CollectIDs(KindTool)
	coins := g.world.CollectIDs(KindCoin)

	for _, id := range lasers {
		l := g.world.Get(id)
		hit := false

		for _, tid := range tools {
			t := g.world.Get(tid)
			if t.Kind != KindTool || !engine.IsColliding(l, t) {
				continue
			}
			hit = true
			g.world.Reclassify(tid, KindDestroyed)
			g.score += g.cfg.Scoring.ToolHit
		}

		for _, cid := range coins {
			c := g.world.Get(cid)
			if c.Kind != KindCoin || !engine.IsColliding(l, c) {
				continue
			}
			hit = true
			g.world.Reclassify(cid, KindDestroyed)
			g.audio.Play(SoundError)
			g.score -= g.cfg.Scoring.CoinPenalty
		}

		g.score = max(g.score, 0)

		g.world.Update(l)
		if !g.world.IsVisible(l) || hit {
			g.world.Destroy(id)
		}
	}
}
