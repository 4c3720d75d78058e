package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/agent8/internal/audio"
	"github.com/vovakirdan/agent8/internal/config"
	"github.com/vovakirdan/agent8/internal/core"
	"github.com/vovakirdan/agent8/internal/games/agent8"
	"github.com/vovakirdan/agent8/internal/logging"
	"github.com/vovakirdan/agent8/internal/storage"
)

// session holds what every local command sets up before playing.
type session struct {
	log     *log.Logger
	store   *storage.Store
	sound   *audio.SoundManager
	preset  config.DifficultyPreset
	closers []io.Closer
}

// newSession configures logging, the game package, audio and storage from
// the global flags. The terminal belongs to the game, so logs only go to
// --log-file.
func newSession(withAudio bool) (*session, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return nil, err
	}

	s := &session{preset: preset, log: logging.Discard()}
	if flagLogFile != "" {
		logger, closer, err := logging.OpenFile(flagLogFile, flagLogLevel, "agent8")
		if err != nil {
			return nil, err
		}
		s.log = logger
		s.closers = append(s.closers, closer)
	}

	agent8.SetLogger(s.log)
	agent8.SetConfigPath(flagConfig)
	agent8.SetDifficultyPreset(preset)

	if withAudio {
		s.startAudio()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		s.log.Warn("scores disabled", "err", err)
	} else {
		s.store = store
		s.closers = append(s.closers, store)
	}
	return s, nil
}

// startAudio opens the speaker unless sound is muted by flag or config.
// A machine without a sound device plays silently.
func (s *session) startAudio() {
	if flagMute {
		return
	}
	cfg, err := config.LoadAgent8(flagConfig)
	if err != nil {
		s.log.Warn("config", "err", err)
	}
	if !cfg.Audio.Enabled {
		return
	}

	sm := audio.NewSoundManager(cfg.Audio.Volume)
	if err := sm.Initialize(); err != nil {
		s.log.Warn("sound disabled", "err", err)
		return
	}
	s.sound = sm
	agent8.SetAudio(sm)
}

func (s *session) Close() {
	if s.sound != nil {
		s.sound.Cleanup()
	}
	for i := len(s.closers) - 1; i >= 0; i-- {
		_ = s.closers[i].Close()
	}
}

// runtimeConfig builds the runtime config for the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:   width,
		ScreenH:   height,
		TickRate:  flagFPS,
		Seed:      flagSeed,
		HoldTicks: flagHold,
	}
}
