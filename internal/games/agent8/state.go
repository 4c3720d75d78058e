package agent8

import (
	"github.com/vovakirdan/agent8/internal/core"
	"github.com/vovakirdan/agent8/internal/engine"
)

// PlayerState is Agent8's behaviour mode.
type PlayerState int

const (
	StateAppear PlayerState = iota // Dropping in from the top
	StateHalt                      // Braking after a fast fall
	StatePlay                      // Under player control
	StateDead                      // Hit by a tool, spinning away
)

// String returns the state name used in logs and the status line.
func (s PlayerState) String() string {
	switch s {
	case StateAppear:
		return "APPEAR"
	case StateHalt:
		return "HALT"
	case StatePlay:
		return "PLAY"
	case StateDead:
		return "DEAD"
	default:
		return "UNKNOWN"
	}
}

// Event is something that may move Agent8 to another state.
type Event int

const (
	EventNone             Event = iota
	EventReachedPlayfield       // Fell below the play line
	EventFallFast               // Released the keys while falling fast
	EventHaltDone               // Halt animation finished
	EventHit                    // Touched a live tool
	EventRespawn                // Fire pressed while dead
)

// States and Events list every value, for exhaustive checks.
var (
	States = []PlayerState{StateAppear, StateHalt, StatePlay, StateDead}
	Events = []Event{EventNone, EventReachedPlayfield, EventFallFast, EventHaltDone, EventHit, EventRespawn}
)

// transitions lists the pairs that change state. Every other pair keeps
// the current state, which makes Next total.
var transitions = map[PlayerState]map[Event]PlayerState{
	StateAppear: {
		EventReachedPlayfield: StatePlay,
		EventHit:              StateDead,
	},
	StateHalt: {
		EventHaltDone: StatePlay,
		EventHit:      StateDead,
	},
	StatePlay: {
		EventFallFast: StateHalt,
		EventHit:      StateDead,
	},
	StateDead: {
		EventRespawn: StateAppear,
	},
}

// Next returns the state that follows s on event e.
func Next(s PlayerState, e Event) PlayerState {
	if next, ok := transitions[s][e]; ok {
		return next
	}
	return s
}

// stateHandler runs one frame of a state's behaviour and reports what
// happened.
type stateHandler func(g *Game, p *engine.Object, in core.InputFrame) Event

var handlers = map[PlayerState]stateHandler{
	StateAppear: (*Game).handleAppear,
	StateHalt:   (*Game).handleHalt,
	StatePlay:   (*Game).handlePlay,
	StateDead:   (*Game).handleDead,
}

func (g *Game) transition(e Event) {
	next := Next(g.state, e)
	if next == g.state {
		return
	}
	g.log.Debug("player state", "from", g.state, "to", next, "tick", g.ticks)
	g.state = next
}

func (g *Game) handleAppear(p *engine.Object, _ core.InputFrame) Event {
	pc := g.cfg.Player
	p.Vel = core.V(0, pc.AppearSpeed)
	p.Acc = core.V(0, pc.Gravity)
	g.world.SetSprite(p, SpriteFall, 0)
	p.Rotation = 0

	if p.Pos.Y >= g.cfg.Display.Height*pc.PlayLine {
		return EventReachedPlayfield
	}
	return EventNone
}

func (g *Game) handleHalt(p *engine.Object, _ core.InputFrame) Event {
	p.Vel = p.Vel.Scale(g.cfg.Player.HaltDamping)
	if g.world.IsAnimationComplete(p) {
		return EventHaltDone
	}
	return EventNone
}

func (g *Game) handlePlay(p *engine.Object, in core.InputFrame) Event {
	pc := g.cfg.Player
	ev := EventNone

	switch {
	case in.IsHeld(core.ActionUp):
		p.Vel = core.V(0, -pc.ClimbSpeed)
		g.world.SetSprite(p, SpriteClimb, pc.ClimbAnim)
	case in.IsHeld(core.ActionDown):
		p.Acc = core.V(0, pc.DropAccel)
		g.world.SetSprite(p, SpriteFall, 0)
	case p.Vel.Y > pc.HaltThreshold:
		g.world.SetSprite(p, SpriteHalt, pc.HaltAnim)
		p.Acc = core.Vec2{}
		ev = EventFallFast
	default:
		g.world.SetSprite(p, SpriteHang, pc.HangAnim)
		p.Vel = p.Vel.Scale(pc.HangDamping)
		p.Acc = core.Vec2{}
	}

	if in.Has(core.ActionFire) {
		g.fireLaser(p)
	}
	return ev
}

func (g *Game) handleDead(p *engine.Object, in core.InputFrame) Event {
	pc := g.cfg.Player
	p.Acc = core.V(pc.DeadDriftX, pc.DeadGravity)
	p.Rotation += pc.DeadSpin

	if !in.Has(core.ActionFire) {
		return EventNone
	}

	p.Pos = core.V(pc.SpawnX, pc.SpawnY)
	p.Vel = core.Vec2{}
	p.Frame = 0
	g.audio.StartLoop(SoundMusic)
	g.score = 0

	for _, id := range g.world.CollectIDs(KindTool) {
		g.world.Reclassify(id, KindDestroyed)
	}
	g.log.Info("respawn", "deaths", g.deaths)
	return EventRespawn
}

// killPlayer handles a tool touching Agent8. It does nothing when Agent8
// is already dead.
func (g *Game) killPlayer() {
	if g.state == StateDead {
		return
	}
	g.audio.StopLoop(SoundMusic)
	g.audio.Play(SoundDie)
	g.deaths++
	g.log.Info("agent8 down", "score", g.score, "deaths", g.deaths)
	g.transition(EventHit)
}

// updateAgent8 runs the current state's handler, then moves Agent8 and
// keeps it on screen unless it is dead.
func (g *Game) updateAgent8(in core.InputFrame) {
	p := g.world.Get(g.playerID)

	g.transition(handlers[g.state](g, p, in))

	g.world.Update(p)
	if g.world.IsLeavingDisplay(p, engine.AxisBoth) && g.state != StateDead {
		p.Pos = p.OldPos
	}
}
