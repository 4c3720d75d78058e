package engine

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/agent8/internal/core"
)

// World owns every game object and the display area they live in.
//
// Destruction is deferred: Destroy only flips the liveness flag, so an
// object fetched earlier in a frame stays readable until Sweep reclaims it.
// Iteration order is creation order, which keeps simulations deterministic.
type World struct {
	width, height float64
	terminal      Kind
	sprites       *SpriteSheet

	objects map[ObjectID]*Object
	order   []ObjectID
	nextID  ObjectID
}

// NewWorld creates an empty world covering width x height.
// Objects reclassified to the terminal kind can never change kind again.
func NewWorld(width, height float64, terminal Kind, sprites *SpriteSheet) *World {
	if sprites == nil {
		sprites = NewSpriteSheet()
	}
	return &World{
		width:    width,
		height:   height,
		terminal: terminal,
		sprites:  sprites,
		objects:  make(map[ObjectID]*Object),
	}
}

// Size returns the display dimensions.
func (w *World) Size() (width, height float64) {
	return w.width, w.height
}

// Sprites returns the sprite sheet used for bounds and drawing.
func (w *World) Sprites() *SpriteSheet {
	return w.sprites
}

// Create adds a new live object and returns its id.
func (w *World) Create(kind Kind, pos core.Vec2, radius float64, sprite string) ObjectID {
	id := w.nextID
	w.nextID++

	w.objects[id] = &Object{
		ID:     id,
		Kind:   kind,
		Pos:    pos,
		OldPos: pos,
		Radius: radius,
		Sprite: sprite,
		alive:  true,
	}
	w.order = append(w.order, id)
	return id
}

// Get returns the object for id. Destroyed objects remain readable until
// the next Sweep. An unknown id is a programming error and panics.
func (w *World) Get(id ObjectID) *Object {
	o, ok := w.objects[id]
	if !ok {
		panic(fmt.Sprintf("engine: invalid object id %d", id))
	}
	return o
}

// Lookup returns the object for id without panicking.
func (w *World) Lookup(id ObjectID) (*Object, bool) {
	o, ok := w.objects[id]
	return o, ok
}

// ByType returns the first live object of the given kind.
// Asking for a kind with no live object panics.
func (w *World) ByType(kind Kind) *Object {
	for _, id := range w.order {
		o := w.objects[id]
		if o.alive && o.Kind == kind {
			return o
		}
	}
	panic(fmt.Sprintf("engine: no live object of kind %d", kind))
}

// CollectIDs returns the ids of all live objects of the given kind.
// The slice is a snapshot: objects created while iterating it are not in it.
func (w *World) CollectIDs(kind Kind) []ObjectID {
	var ids []ObjectID
	for _, id := range w.order {
		o := w.objects[id]
		if o.alive && o.Kind == kind {
			ids = append(ids, id)
		}
	}
	return ids
}

// Count returns the number of live objects of the given kind.
func (w *World) Count(kind Kind) int {
	n := 0
	for _, id := range w.order {
		o := w.objects[id]
		if o.alive && o.Kind == kind {
			n++
		}
	}
	return n
}

// Len returns the number of objects held, including destroyed ones
// waiting for Sweep.
func (w *World) Len() int {
	return len(w.objects)
}

// Destroy marks the object dead. It is idempotent.
func (w *World) Destroy(id ObjectID) {
	w.Get(id).alive = false
}

// Reclassify changes an object's kind. It refuses, returning false, when
// the object is already of the terminal kind. Entering the terminal kind
// restarts the fade counter.
func (w *World) Reclassify(id ObjectID, kind Kind) bool {
	o := w.Get(id)
	if o.Kind == w.terminal && kind != w.terminal {
		return false
	}
	if kind == w.terminal && o.Kind != w.terminal {
		o.Fade = 0
	}
	o.Kind = kind
	return true
}

// Sweep removes destroyed objects and returns how many were reclaimed.
func (w *World) Sweep() int {
	removed := 0
	w.order = slices.DeleteFunc(w.order, func(id ObjectID) bool {
		if w.objects[id].alive {
			return false
		}
		delete(w.objects, id)
		removed++
		return true
	})
	return removed
}

// Each calls fn for every live object in creation order.
func (w *World) Each(fn func(o *Object)) {
	for _, id := range w.order {
		if o := w.objects[id]; o.alive {
			fn(o)
		}
	}
}

// Clear removes every object. Ids keep increasing.
func (w *World) Clear() {
	clear(w.objects)
	w.order = w.order[:0]
}
