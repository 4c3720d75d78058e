// Package engine is a small sprite-object engine in the PlayBuffer style:
// an arena of game objects keyed by integer ids, one-step physics, circle
// collision, display-area tests, sprite animation counters, audio cues and
// dice rolls. It knows nothing about terminals or windows; objects are drawn
// onto a core.Canvas.
package engine

import (
	"github.com/vovakirdan/agent8/internal/core"
)

// Kind tags what an object is. Games define their own kinds; the world is
// told which kind is terminal at construction.
type Kind int

// ObjectID is a stable handle into the world. Ids are never reused.
type ObjectID int

// Object is a single entity in the world.
type Object struct {
	ID   ObjectID
	Kind Kind

	Pos    core.Vec2
	OldPos core.Vec2
	Vel    core.Vec2
	Acc    core.Vec2

	Rotation float64
	RotSpeed float64
	Radius   float64

	Sprite    string
	Frame     int
	FramePos  float64
	AnimSpeed float64

	// Fade counts fade steps since the object became terminal.
	Fade float64

	alive bool
}

// Alive reports whether the object has not been destroyed.
func (o *Object) Alive() bool {
	return o.alive
}

// FadeFrame returns the whole number of fade steps taken.
func (o *Object) FadeFrame() int {
	return int(o.Fade)
}

// Axis restricts display-area tests to one direction.
type Axis int

const (
	AxisBoth Axis = iota
	AxisHorizontal
	AxisVertical
)
