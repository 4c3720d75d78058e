// Package agent8 implements Agent8, a side-on arcade shooter.
// Agent8 hangs from a rope on the left of the screen while a fan on the
// right throws deadly tools and collectable coins at it. Lasers knock tools
// out for points; shooting a coin costs points.
package agent8

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/agent8/internal/config"
	"github.com/vovakirdan/agent8/internal/core"
	"github.com/vovakirdan/agent8/internal/engine"
	"github.com/vovakirdan/agent8/internal/registry"
)

// Object kinds.
const (
	KindPlayer engine.Kind = iota
	KindFan
	KindTool
	KindCoin
	KindStar
	KindLaser
	KindDestroyed
)

// Sound cue names.
const (
	SoundMusic   = "music"
	SoundShoot   = "shoot"
	SoundTool    = "tool"
	SoundCollect = "collect"
	SoundError   = "error"
	SoundDie     = "die"
)

// ID is the registry and score-table key of the game.
const ID = "agent8"

// Instructions is the help line drawn at the bottom of the screen.
const Instructions = "ARROW KEYS TO MOVE UP AND DOWN AND SPACE TO FIRE"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// Games created through the registry log and play sound through these.
var (
	defaultLogger *log.Logger  = log.New(io.Discard)
	defaultAudio  engine.Audio = engine.Silent{}
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	defaultLogger = l
}

// SetAudio sets the audio output used by new games.
func SetAudio(a engine.Audio) {
	if a == nil {
		a = engine.Silent{}
	}
	defaultAudio = a
}

// Game implements Agent8. All state lives in the struct; two games never
// share anything.
type Game struct {
	cfg        config.Agent8Config
	fixedCfg   bool // cfg came from an option and is never reloaded from disk
	preset     config.DifficultyPreset
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager

	world *engine.World
	dice  *engine.Dice
	audio engine.Audio
	log   *log.Logger

	playerID engine.ObjectID
	fanID    engine.ObjectID

	score  int
	state  PlayerState
	paused bool
	ticks  int
	deaths int
}

// Option configures a Game.
type Option func(*Game)

// WithConfig uses cfg instead of loading the config file.
func WithConfig(cfg config.Agent8Config) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.fixedCfg = true
	}
}

// WithPreset applies a difficulty preset on top of the config file.
func WithPreset(p config.DifficultyPreset) Option {
	return func(g *Game) { g.preset = p }
}

// WithAudio sets the audio output.
func WithAudio(a engine.Audio) Option {
	return func(g *Game) { g.audio = a }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.log = l }
}

// New creates a new Agent8 game. Call Reset before stepping it.
func New(opts ...Option) *Game {
	g := &Game{
		preset: difficultyPreset,
		audio:  defaultAudio,
		log:    defaultLogger,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.log = g.log.With("game", ID)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Agent8"
}

// SetPreset changes the difficulty preset used from the next Reset on.
func (g *Game) SetPreset(p config.DifficultyPreset) {
	g.preset = p
}

// WorldSize returns the display area the game is played in.
func (g *Game) WorldSize() (w, h float64) {
	if g.world == nil {
		d := config.DefaultAgent8Config().Display
		return d.Width, d.Height
	}
	return g.world.Size()
}

// Reset starts a new run: Agent8 drops in, the fan starts bobbing and the
// music starts.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.fixedCfg {
		g.cfg = g.loadConfig()
	}
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.world = engine.NewWorld(g.cfg.Display.Width, g.cfg.Display.Height, KindDestroyed, Sprites())
	g.dice = engine.NewDice(runtime.Seed)

	pc := g.cfg.Player
	g.playerID = g.world.Create(KindPlayer, core.V(pc.SpawnX, pc.SpawnY), pc.Radius, SpriteFall)

	fc := g.cfg.Fan
	g.fanID = g.world.Create(KindFan, core.V(fc.X, fc.Y), 0, SpriteFan)
	fan := g.world.Get(g.fanID)
	fan.Vel = core.V(0, fc.Speed)
	fan.AnimSpeed = fc.AnimSpeed

	g.score = 0
	g.state = StateAppear
	g.paused = false
	g.ticks = 0
	g.deaths = 0

	g.audio.StopLoop(SoundMusic)
	g.audio.StartLoop(SoundMusic)
	g.log.Debug("reset", "seed", runtime.Seed, "difficulty", g.cfg.Difficulty.Progression.Type)
}

// loadConfig reads the config file and applies the CLI preset. A broken
// file is logged and the defaults are used.
func (g *Game) loadConfig() config.Agent8Config {
	cfg, err := config.LoadAgent8(configPath)
	if err != nil {
		g.log.Warn("using default config", "err", err)
		cfg = config.DefaultAgent8Config()
	}
	config.ApplyAgent8Preset(&cfg, g.preset)
	return cfg
}

// Reload re-reads the config file and applies the new tunables to the run
// in progress. Objects already in flight keep their speeds, and the world
// size never changes mid-run.
func (g *Game) Reload() error {
	if g.fixedCfg {
		return nil
	}
	cfg, err := config.LoadAgent8(configPath)
	if err != nil {
		return err
	}
	config.ApplyAgent8Preset(&cfg, g.preset)
	if g.world != nil {
		cfg.Display = g.cfg.Display
	}
	g.cfg = cfg
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
	g.log.Info("config reloaded")
	return nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if in.Has(core.ActionExit) {
		return core.StepResult{State: g.State(), Exit: true}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.ticks++

	g.updateAgent8(in)
	g.updateFan()
	g.updateTools()
	g.updateCoinsAndStars()
	g.updateLasers()
	g.updateDestroyed()

	g.world.Sweep()

	return core.StepResult{State: g.State()}
}

// State returns the current game state. The run counts as over while
// Agent8 is dead; firing starts the next one.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateDead,
		Paused:   g.paused,
		Phase:    g.state.String(),
	}
}

// PlayerState returns Agent8's current state.
func (g *Game) PlayerState() PlayerState {
	return g.state
}

// Deaths returns how many times Agent8 has died this run.
func (g *Game) Deaths() int {
	return g.deaths
}

// World exposes the object pool, mainly for tests and debugging.
func (g *Game) World() *engine.World {
	return g.world
}

// Register the game with the registry
func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}
