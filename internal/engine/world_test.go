package engine

import (
	"testing"

	"github.com/vovakirdan/agent8/internal/core"
)

const (
	kindPlayer Kind = iota
	kindTool
	kindCoin
	kindDead
)

func testSheet() *SpriteSheet {
	return NewSpriteSheet(
		Sprite{Name: "box", W: 100, H: 100, Frames: [][]string{{"#"}}},
		Sprite{Name: "anim", W: 10, H: 10, Frames: [][]string{{"1"}, {"2"}, {"3"}}},
	)
}

func newTestWorld() *World {
	return NewWorld(1280, 720, kindDead, testSheet())
}

func TestCreateAndGet(t *testing.T) {
	w := newTestWorld()
	a := w.Create(kindPlayer, core.V(10, 20), 50, "box")
	b := w.Create(kindTool, core.V(30, 40), 25, "box")

	if a == b {
		t.Fatal("ids must be unique")
	}

	o := w.Get(a)
	if o.Pos != core.V(10, 20) || o.OldPos != o.Pos || o.Radius != 50 || o.Kind != kindPlayer {
		t.Errorf("unexpected object %+v", o)
	}
	if !o.Alive() {
		t.Error("new object should be alive")
	}
}

func TestGetInvalidIDPanics(t *testing.T) {
	w := newTestWorld()

	defer func() {
		if recover() == nil {
			t.Error("Get with unknown id should panic")
		}
	}()
	w.Get(42)
}

func TestDeferredDestroy(t *testing.T) {
	w := newTestWorld()
	id := w.Create(kindTool, core.V(0, 0), 10, "box")
	other := w.Create(kindTool, core.V(0, 0), 10, "box")

	w.Destroy(id)
	w.Destroy(id) // idempotent

	// Still readable in the same frame
	if o := w.Get(id); o.Alive() {
		t.Error("destroyed object should report not alive")
	}
	if ids := w.CollectIDs(kindTool); len(ids) != 1 || ids[0] != other {
		t.Errorf("CollectIDs should skip destroyed objects, got %v", ids)
	}

	if n := w.Sweep(); n != 1 {
		t.Errorf("Sweep() = %d, expected 1", n)
	}
	if _, ok := w.Lookup(id); ok {
		t.Error("swept object should be gone")
	}
	if w.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", w.Len())
	}
}

func TestCollectIDsCreationOrderAndSnapshot(t *testing.T) {
	w := newTestWorld()
	var want []ObjectID
	for i := 0; i < 5; i++ {
		want = append(want, w.Create(kindCoin, core.V(float64(i), 0), 1, "box"))
	}

	ids := w.CollectIDs(kindCoin)
	w.Create(kindCoin, core.V(0, 0), 1, "box")

	if len(ids) != len(want) {
		t.Fatalf("got %d ids, expected %d", len(ids), len(want))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %d, expected %d", i, ids[i], want[i])
		}
	}
}

func TestReclassifyTerminal(t *testing.T) {
	w := newTestWorld()
	id := w.Create(kindTool, core.V(0, 0), 10, "box")
	o := w.Get(id)
	o.Fade = 4

	if !w.Reclassify(id, kindDead) {
		t.Fatal("reclassify to terminal should succeed")
	}
	if o.Fade != 0 {
		t.Error("entering terminal kind should restart the fade")
	}

	tests := []Kind{kindPlayer, kindTool, kindCoin}
	for _, k := range tests {
		if w.Reclassify(id, k) {
			t.Errorf("reclassify terminal object to %d should be refused", k)
		}
		if o.Kind != kindDead {
			t.Errorf("kind changed to %d", o.Kind)
		}
	}

	o.Fade = 3
	if !w.Reclassify(id, kindDead) {
		t.Error("terminal to terminal is a no-op that succeeds")
	}
	if o.Fade != 3 {
		t.Error("re-entering terminal kind should not restart the fade")
	}
}

func TestByType(t *testing.T) {
	w := newTestWorld()
	first := w.Create(kindPlayer, core.V(1, 1), 1, "box")
	w.Create(kindPlayer, core.V(2, 2), 1, "box")

	if got := w.ByType(kindPlayer); got.ID != first {
		t.Errorf("ByType returned %d, expected %d", got.ID, first)
	}

	w.Destroy(first)
	if got := w.ByType(kindPlayer); got.ID == first {
		t.Error("ByType should skip destroyed objects")
	}

	defer func() {
		if recover() == nil {
			t.Error("ByType with no live object should panic")
		}
	}()
	w.ByType(kindCoin)
}

func TestCountAndClear(t *testing.T) {
	w := newTestWorld()
	w.Create(kindCoin, core.V(0, 0), 1, "box")
	id := w.Create(kindCoin, core.V(0, 0), 1, "box")
	w.Destroy(id)

	if n := w.Count(kindCoin); n != 1 {
		t.Errorf("Count() = %d, expected 1", n)
	}

	w.Clear()
	if w.Len() != 0 {
		t.Error("Clear should empty the world")
	}
	next := w.Create(kindCoin, core.V(0, 0), 1, "box")
	if next <= id {
		t.Error("ids should keep increasing after Clear")
	}
}
