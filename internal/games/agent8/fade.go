package agent8

// updateDestroyed keeps knocked-out objects drifting while they fade and
// removes them once the fade runs out or they leave the screen.
func (g *Game) updateDestroyed() {
	fc := g.cfg.Fade
	for _, id := range g.world.CollectIDs(KindDestroyed) {
		d := g.world.Get(id)
		d.Fade += fc.Rate
		g.world.Update(d)

		if !g.world.IsVisible(d) || d.FadeFrame() >= fc.Frames {
			g.world.Destroy(id)
		}
	}
}

// fadeOpacity returns how strongly a fading object is drawn at fade step
// n. It blinks: even steps are not drawn at all.
func fadeOpacity(n, frames int) float64 {
	if n%2 == 0 || n >= frames {
		return 0
	}
	return float64(frames-n) / float64(frames)
}
