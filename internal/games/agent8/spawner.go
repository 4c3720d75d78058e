package agent8

import (
	"math"

	"github.com/vovakirdan/agent8/internal/core"
	"github.com/vovakirdan/agent8/internal/engine"
)

// updateFan rolls for new tools and coins at the fan, then bobs the fan
// up and down the right edge.
func (g *Game) updateFan() {
	fan := g.world.Get(g.fanID)

	die := g.difficulty.SpawnDie(g.cfg.Tools.SpawnDie, g.score, g.ticks)
	if g.dice.Roll(die) == die {
		g.spawnTool(fan.Pos)
	}
	if g.dice.Roll(g.cfg.Coins.SpawnDie) == 1 {
		g.spawnCoin(fan.Pos)
	}

	g.world.Update(fan)
	if g.world.IsLeavingDisplay(fan, engine.AxisBoth) {
		fan.Pos = fan.OldPos
		fan.Vel.Y *= -1
	}
}

func (g *Game) spawnTool(at core.Vec2) {
	tc := g.cfg.Tools
	speedUp := g.difficulty.Speed(1, g.score, g.ticks)

	t := g.world.Get(g.world.Create(KindTool, at, tc.DriverRadius, SpriteDriver))
	t.Vel = core.V(-tc.DriverSpeed*speedUp, float64(g.dice.RollRange(-1, 1))*tc.DriftSpeed)

	if g.dice.Roll(tc.SpannerDie) == 1 {
		g.world.SetSprite(t, SpriteSpanner, 0)
		t.Radius = tc.SpannerRadius
		t.Vel.X = -tc.SpannerSpeed * speedUp
		t.RotSpeed = tc.SpannerSpin
	}
	g.audio.Play(SoundTool)
	g.log.Debug("spawn tool", "sprite", t.Sprite, "vx", t.Vel.X, "vy", t.Vel.Y)
}

func (g *Game) spawnCoin(at core.Vec2) {
	cc := g.cfg.Coins
	c := g.world.Get(g.world.Create(KindCoin, at, cc.Radius, SpriteCoin))
	c.Vel = core.V(-cc.Speed, 0)
	c.RotSpeed = cc.Spin
	g.log.Debug("spawn coin", "y", c.Pos.Y)
}

// fireLaser launches a laser from Agent8's gun.
func (g *Game) fireLaser(p *engine.Object) {
	lc := g.cfg.Lasers
	pos := p.Pos.Add(core.V(lc.OffsetX, lc.OffsetY))
	l := g.world.Get(g.world.Create(KindLaser, pos, lc.Radius, SpriteLaser))
	l.Vel = core.V(lc.Speed, 0)
	g.audio.Play(SoundShoot)
}

// spawnStars bursts stars out of pos, evenly spread starting at 45°.
func (g *Game) spawnStars(pos core.Vec2) {
	sc := g.cfg.Stars
	for k := 0; k < sc.Count; k++ {
		s := g.world.Get(g.world.Create(KindStar, pos, 0, SpriteStar))
		s.RotSpeed = sc.Spin
		s.Acc = core.V(0, sc.Gravity)
		engine.SetDirection(s, sc.Speed, starAngle(k, sc.Count))
	}
}

// starAngle returns the launch angle of star k of n. With four stars the
// angles are 0.25π, 0.75π, 1.25π and 1.75π.
func starAngle(k, n int) float64 {
	return float64(2*k+1) / float64(n) * math.Pi
}
