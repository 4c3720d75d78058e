package engine

import "sync"

// Audio plays named sound cues. Implementations must not block the
// simulation.
type Audio interface {
	Play(name string)
	StartLoop(name string)
	StopLoop(name string)
}

// Silent is an Audio that does nothing.
type Silent struct{}

func (Silent) Play(string) {}
func (Silent) StartLoop(string) {}
func (Silent) StopLoop(string) {}

// AudioEvent is one call recorded by RecordingAudio.
type AudioEvent struct {
	Op   string // "play", "start" or "stop"
	Name string
}

// RecordingAudio remembers every cue it is asked to play.
type RecordingAudio struct {
	mu     sync.Mutex
	events []AudioEvent
	loops  map[string]bool
}

// NewRecordingAudio creates an empty recorder.
func NewRecordingAudio() *RecordingAudio {
	return &RecordingAudio{loops: make(map[string]bool)}
}

func (r *RecordingAudio) record(op, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, AudioEvent{Op: op, Name: name})
	switch op {
	case "start":
		r.loops[name] = true
	case "stop":
		delete(r.loops, name)
	}
}

// Play implements Audio.
func (r *RecordingAudio) Play(name string) { r.record("play", name) }

// StartLoop implements Audio.
func (r *RecordingAudio) StartLoop(name string) { r.record("start", name) }

// StopLoop implements Audio.
func (r *RecordingAudio) StopLoop(name string) { r.record("stop", name) }

// Events returns a copy of everything recorded so far.
func (r *RecordingAudio) Events() []AudioEvent {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]AudioEvent, len(r.events))
	copy(out, r.events)
	return out
}

// Count returns how many times the named cue was played one-shot.
func (r *RecordingAudio) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Op == "play" && e.Name == name {
			n++
		}
	}
	return n
}

// Looping reports whether the named loop is currently running.
func (r *RecordingAudio) Looping(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.loops[name]
}

// Reset forgets all recorded events.
func (r *RecordingAudio) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
	clear(r.loops)
}
