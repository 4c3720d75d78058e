// Package registry lets games announce themselves from init functions so
// the frontends and the CLI can find them by ID.
package registry

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"github.com/vovakirdan/agent8/internal/core"
)

// Game is a fixed-tick simulation a frontend can drive. Games never touch
// a terminal or window; they read an InputFrame and draw onto a Canvas.
type Game interface {
	// ID is the stable key used by the CLI and the scores table.
	ID() string

	// Title is the name shown in menus and window titles.
	Title() string

	// Reset starts a new run from the seed in cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by exactly one tick.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame in world coordinates onto a cleared
	// canvas.
	Render(dst core.Canvas)

	// State reports score and status without advancing the game.
	State() core.GameState
}

// Reloader is implemented by games that can apply a changed config file
// without restarting the run.
type Reloader interface {
	Reload() error
}

// Worlder is implemented by games with a fixed world size. Platforms use it
// to scale the world onto their surface.
type Worlder interface {
	WorldSize() (w, h float64)
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a fresh game instance.
type Factory func() Game

type entry struct {
	factory Factory
	title   string
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game. It panics on a duplicate ID, which can only be a
// programming error.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{factory: f, title: f().Title()}
}

// List returns the registered games sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	games := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		games = append(games, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(games, func(a, b GameInfo) int { return cmp.Compare(a.ID, b.ID) })
	return games
}

// Create returns a new instance of the game with the given ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
