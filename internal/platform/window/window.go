// Package window plays a game in a desktop window with Ebitengine. It is
// the graphical twin of the terminal frontend: same games, same input
// actions, same run bookkeeping.
package window

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/agent8/internal/config"
	"github.com/vovakirdan/agent8/internal/core"
	"github.com/vovakirdan/agent8/internal/platform/scorekeeper"
	"github.com/vovakirdan/agent8/internal/registry"
	"github.com/vovakirdan/agent8/internal/storage"
)

// Options configures a window session.
type Options struct {
	Player     string
	ConfigPath string      // Watched for changes when set
	Log        *log.Logger // Defaults to a discarding logger
	Scale      float64     // Window size relative to the world, default 1
}

type deathCounter interface {
	Deaths() int
}

// Window implements ebiten.Game around a registry.Game.
type Window struct {
	game   registry.Game
	canvas *Canvas
	keys   keyState
	scores *scorekeeper.Keeper
	config core.RuntimeConfig
	log    *log.Logger
	worldW float64
	worldH float64

	state  core.GameState
	reload atomic.Bool
	exited bool
}

// New creates a window session and resets the game.
func New(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) *Window {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Log
	if logger == nil {
		logger = log.New(io.Discard)
	}

	worldW, worldH := 1280.0, 720.0
	if w, ok := game.(registry.Worlder); ok {
		worldW, worldH = w.WorldSize()
	}

	w := &Window{
		game:   game,
		canvas: NewCanvas(worldW, worldH),
		keys:   ebitenKeys{},
		scores: scorekeeper.New(store, game.ID(), opts.Player, logger),
		config: cfg,
		log:    logger,
		worldW: worldW,
		worldH: worldH,
	}
	w.restart(cfg.Seed)
	return w
}

func (w *Window) restart(seed int64) {
	w.config.Seed = seed
	w.game.Reset(w.config)
	w.state = w.game.State()
	w.scores.Start(seed)
}

// RequestReload asks for the game config to be reloaded on the next tick.
// It is safe to call from any goroutine.
func (w *Window) RequestReload() {
	w.reload.Store(true)
}

// Update implements ebiten.Game. It runs one simulation tick.
func (w *Window) Update() error {
	if w.reload.Swap(false) {
		if r, ok := w.game.(registry.Reloader); ok {
			if err := r.Reload(); err != nil {
				w.log.Warn("config reload failed", "err", err)
			}
		}
	}

	in := readInput(w.keys)
	switch {
	case in.Has(core.ActionQuit):
		return ebiten.Termination
	case in.Has(core.ActionRestart):
		w.restart(time.Now().UnixNano())
		return nil
	}

	result := w.game.Step(in)
	if result.Exit {
		w.exited = true
		return ebiten.Termination
	}
	w.state = result.State

	deaths := 0
	if d, ok := w.game.(deathCounter); ok {
		deaths = d.Deaths()
	}
	w.scores.Observe(w.state, deaths)
	return nil
}

// Draw implements ebiten.Game.
func (w *Window) Draw(screen *ebiten.Image) {
	w.canvas.Target(screen)
	w.canvas.Clear()
	w.game.Render(w.canvas)

	status := fmt.Sprintf("%s  BEST: %d", w.state.Phase, w.scores.Best())
	w.canvas.DrawText(status, core.V(w.worldW-8, 8), core.AlignRight, core.ColorGray)
}

// Layout implements ebiten.Game. The logical screen is the world; Ebitengine
// scales it to the window.
func (w *Window) Layout(_, _ int) (int, int) {
	return int(w.worldW), int(w.worldH)
}

// Exited reports whether the game asked to leave, as opposed to a quit.
func (w *Window) Exited() bool {
	return w.exited
}

// Run opens a window and plays the game until it is closed. It returns
// true when the game itself asked to leave.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (exited bool, err error) {
	w := New(game, store, cfg, opts)

	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(w.worldW*scale), int(w.worldH*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(w.config.TickRate)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if _, ok := game.(registry.Reloader); ok && opts.ConfigPath != "" {
		go func() {
			err := config.Watch(ctx, opts.ConfigPath,
				func(config.Agent8Config) { w.RequestReload() },
				func(err error) { w.log.Warn("config watch", "err", err) },
			)
			if err != nil {
				w.log.Warn("config watch stopped", "err", err)
			}
		}()
	}

	if err := ebiten.RunGame(w); err != nil {
		return false, fmt.Errorf("window: %w", err)
	}
	return w.Exited(), nil
}
