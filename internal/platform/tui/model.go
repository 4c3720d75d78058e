package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/agent8/internal/config"
	"github.com/vovakirdan/agent8/internal/core"
	"github.com/vovakirdan/agent8/internal/platform/scorekeeper"
	"github.com/vovakirdan/agent8/internal/registry"
	"github.com/vovakirdan/agent8/internal/storage"
)

// Options configures a game session.
type Options struct {
	Player     string      // Name stored with each run
	ConfigPath string      // Watched for changes when set
	Log        *log.Logger // Defaults to a discarding logger
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	canvas    *core.ScreenCanvas
	config    core.RuntimeConfig
	keys      *KeyMapper
	tracker   *core.HoldTracker
	gameState core.GameState
	scores    *scorekeeper.Keeper
	log       *log.Logger
	quitting  bool
	exited    bool // Esc pressed: back to the menu
}

// deathCounter is implemented by games that count deaths per run.
type deathCounter interface {
	Deaths() int
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) *Model {
	// Use time-based seed if not specified
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

	worldW, worldH := float64(cfg.ScreenW), float64(cfg.ScreenH)
	if w, ok := game.(registry.Worlder); ok {
		worldW, worldH = w.WorldSize()
	}

	screen := core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1))
	m := &Model{
		game:    game,
		screen:  screen,
		canvas:  core.NewScreenCanvas(screen, worldW, worldH),
		config:  cfg,
		keys:    NewKeyMapper(),
		tracker: core.NewHoldTracker(cfg.HoldTicks),
		scores:  scorekeeper.New(store, game.ID(), opts.Player, logger),
		log:     logger,
	}
	return m
}

// Init starts the game and the tick loop.
func (m *Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.scores.Start(m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		return m, nil

	case tea.BlurMsg:
		m.tracker.Release()
		return m, nil

	case ReloadMsg:
		m.reload()
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.log.Warn("screenshot failed", "err", err)
		} else {
			m.log.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keys.MapKeyToTracker(msg, m.tracker) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m *Model) handleTick() (tea.Model, tea.Cmd) {
	in := m.tracker.Frame()

	if in.Has(core.ActionRestart) {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scores.Start(m.config.Seed)
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(in)
	if result.Exit {
		m.exited = true
		return m, tea.Quit
	}

	m.gameState = result.State

	deaths := 0
	if d, ok := m.game.(deathCounter); ok {
		deaths = d.Deaths()
	}
	m.scores.Observe(m.gameState, deaths)

	return m, tickCmd(m.config.TickRate)
}

func (m *Model) reload() {
	r, ok := m.game.(registry.Reloader)
	if !ok {
		return
	}
	if err := r.Reload(); err != nil {
		m.log.Warn("config reload failed", "err", err)
	}
}

// saveScreenshot writes the current frame as text and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	m.draw()

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".agent8", "screenshots")
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", err
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	return path, os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

func (m *Model) draw() {
	m.canvas.Clear()
	m.game.Render(m.canvas)
}

// View renders the current state to a string for display.
func (m *Model) View() string {
	if m.quitting || m.exited {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + RenderStatus(m.gameState, m.scores.Best(), m.screen.Width())
}

// Exited reports whether the player left with Esc rather than quitting.
func (m *Model) Exited() bool {
	return m.exited
}

// Run plays the game in the terminal until the player quits or presses
// Esc. It returns true when the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if _, ok := game.(registry.Reloader); ok && opts.ConfigPath != "" {
		go func() {
			err := config.Watch(ctx, opts.ConfigPath,
				func(config.Agent8Config) { p.Send(ReloadMsg{}) },
				func(err error) { model.log.Warn("config watch", "err", err) },
			)
			if err != nil {
				model.log.Warn("config watch stopped", "err", err)
			}
		}()
	}

	if _, err := p.Run(); err != nil {
		return false, err
	}
	return model.Exited(), nil
}
