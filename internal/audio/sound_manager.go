// Package audio plays Agent8's sound cues through the system speaker.
// Every cue is synthesized, so the game ships without sample files.
package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Cue names understood by SoundManager.
const (
	CueMusic   = "music"
	CueShoot   = "shoot"
	CueTool    = "tool"
	CueCollect = "collect"
	CueError   = "error"
	CueDie     = "die"
)

// SoundManager manages all game audio. It satisfies engine.Audio; calls
// made before Initialize or after Cleanup are ignored.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	loops       map[string]*beep.Ctrl
	initialized bool
}

// NewSoundManager creates a sound manager at the given master volume
// (0 mutes, 1 is full scale).
func NewSoundManager(volume float64) *SoundManager {
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		loops:  make(map[string]*beep.Ctrl),
	}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return fmt.Errorf("audio: speaker init: %w", err)
	}

	speaker.Play(newVolume(sm.mixer, sm.volume))
	sm.initialized = true
	return nil
}

// Cleanup stops all sounds.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	for name, ctrl := range sm.loops {
		speaker.Lock()
		ctrl.Paused = true
		speaker.Unlock()
		delete(sm.loops, name)
	}
	speaker.Clear()
	sm.mixer.Clear()
	sm.initialized = false
}

// Play starts a one-shot cue. Unknown names are ignored.
func (sm *SoundManager) Play(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	s := Cue(name)
	if s == nil {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// StartLoop starts a looping cue. A loop that is already running keeps
// playing.
func (sm *SoundManager) StartLoop(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	if ctrl, ok := sm.loops[name]; ok {
		speaker.Lock()
		ctrl.Paused = false
		speaker.Unlock()
		return
	}

	s := loopCue(name)
	if s == nil {
		return
	}
	ctrl := &beep.Ctrl{Streamer: s, Paused: false}
	sm.loops[name] = ctrl
	speaker.Lock()
	sm.mixer.Add(ctrl)
	speaker.Unlock()
}

// StopLoop pauses a looping cue.
func (sm *SoundManager) StopLoop(name string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if ctrl, ok := sm.loops[name]; ok {
		speaker.Lock()
		ctrl.Paused = true
		speaker.Unlock()
	}
}

// Cue returns a finite streamer for a one-shot cue, or nil for an unknown
// name.
func Cue(name string) beep.Streamer {
	switch name {
	case CueShoot:
		// Falling zap
		return beep.Take(sampleRate.N(time.Millisecond*90),
			NewSweepGenerator(sampleRate, WaveSquare, 1400, 300, 0.25))
	case CueTool:
		// Whoosh as the fan throws
		return beep.Take(sampleRate.N(time.Millisecond*160),
			NewNoiseGenerator(sampleRate, 1, 0.3))
	case CueCollect:
		return beep.Seq(
			beep.Take(sampleRate.N(time.Millisecond*70), NewSweepGenerator(sampleRate, WaveSine, 988, 988, 0.35)),
			beep.Take(sampleRate.N(time.Millisecond*140), NewSweepGenerator(sampleRate, WaveSine, 1319, 1319, 0.35)),
		)
	case CueError:
		return beep.Take(sampleRate.N(time.Millisecond*150),
			NewSweepGenerator(sampleRate, WaveSquare, 120, 120, 0.2))
	case CueDie:
		return beep.Take(sampleRate.N(time.Millisecond*700),
			NewSweepGenerator(sampleRate, WaveSaw, 600, 60, 0.3))
	}
	return nil
}

func loopCue(name string) beep.Streamer {
	if name == CueMusic {
		return NewArpeggioGenerator(sampleRate, musicNotes, time.Millisecond*180, 0.12)
	}
	return nil
}

// musicNotes is the background bass line, A minor.
var musicNotes = []float64{110, 130.81, 164.81, 130.81, 98, 123.47, 146.83, 123.47}

// newVolume wraps s in a gain stage. Log2(0) is -Inf, so zero mutes.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}
