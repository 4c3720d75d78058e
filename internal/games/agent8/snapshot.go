package agent8

import (
	"math"

	"github.com/vovakirdan/agent8/internal/engine"
)

// Snapshot contains the complete game state for replay and determinism
// checks. Uses primitive types only for stable serialization.
type Snapshot struct {
	Tick    uint64
	Score   int
	State   string
	Paused  bool
	Deaths  int
	Objects []ObjectSnapshot
}

// ObjectSnapshot is one live object, in creation order.
type ObjectSnapshot struct {
	ID       int
	Kind     int
	X, Y     float64
	VX, VY   float64
	Rotation float64
	Frame    int
	Fade     float64
	Sprite   string
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   uint64(g.ticks), //#nosec G115 -- ticks are never negative
		Score:  g.score,
		State:  g.state.String(),
		Paused: g.paused,
		Deaths: g.deaths,
	}
	if g.world == nil {
		return snap
	}
	g.world.Each(func(o *engine.Object) {
		snap.Objects = append(snap.Objects, ObjectSnapshot{
			ID:       int(o.ID),
			Kind:     int(o.Kind),
			X:        o.Pos.X,
			Y:        o.Pos.Y,
			VX:       o.Vel.X,
			VY:       o.Vel.Y,
			Rotation: o.Rotation,
			Frame:    o.Frame,
			Fade:     o.Fade,
			Sprite:   o.Sprite,
		})
	})
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Deaths) //#nosec G115 -- hash computation
	h = h*31 + hashString(snap.State)
	if snap.Paused {
		h = h*31 + 1
	}
	h = h*31 + uint64(len(snap.Objects))

	for _, o := range snap.Objects {
		h = h*31 + uint64(o.ID)   //#nosec G115 -- hash computation
		h = h*31 + uint64(o.Kind) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(o.X)
		h = h*31 + math.Float64bits(o.Y)
		h = h*31 + math.Float64bits(o.VX)
		h = h*31 + math.Float64bits(o.VY)
		h = h*31 + math.Float64bits(o.Rotation)
		h = h*31 + uint64(o.Frame) //#nosec G115 -- hash computation
		h = h*31 + math.Float64bits(o.Fade)
		h = h*31 + hashString(o.Sprite)
	}
	return h
}

func hashString(s string) uint64 {
	var h uint64
	for i := 0; i < len(s); i++ {
		h = h*31 + uint64(s[i])
	}
	return h
}
