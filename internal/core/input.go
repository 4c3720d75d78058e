package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - climb
	ActionDown           // S, Down arrow - drop
	ActionFire           // Space - shoot, respawn
	ActionPause          // P - pause/unpause game
	ActionExit           // Escape - leave the game
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B - go back to menu
	ActionRestart        // R key - restart game
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionExit:
		return "Exit"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input state for one simulation tick.
// Pressed holds edge-triggered actions (went down this tick); Held holds
// every action currently down, including the pressed ones.
type InputFrame struct {
	Pressed map[Action]bool
	Held    map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Set marks an action as pressed this frame. A pressed action is also held.
func (f *InputFrame) Set(a Action) {
	f.ensure()
	f.Pressed[a] = true
	f.Held[a] = true
}

// Hold marks an action as held without a press edge.
func (f *InputFrame) Hold(a Action) {
	f.ensure()
	f.Held[a] = true
}

func (f *InputFrame) ensure() {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
}

// Has returns true if the given action was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Pressed[a]
}

// IsHeld returns true if the given action is down this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Pressed)
	clear(f.Held)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	return clone
}

// HoldTracker turns a stream of discrete key events into held state.
// Terminals only report key presses and auto-repeats, never releases, so a
// key counts as held for a fixed number of ticks after its last event.
type HoldTracker struct {
	window    int
	remaining map[Action]int
	pressed   map[Action]bool
}

// NewHoldTracker creates a tracker that keeps keys held for window ticks.
// A window below 1 is treated as 1.
func NewHoldTracker(window int) *HoldTracker {
	return &HoldTracker{
		window:    max(window, 1),
		remaining: make(map[Action]int),
		pressed:   make(map[Action]bool),
	}
}

// Observe records a key event for an action.
// A press edge is reported only when the action was not already held.
func (h *HoldTracker) Observe(a Action) {
	if a == ActionNone {
		return
	}
	if h.remaining[a] == 0 {
		h.pressed[a] = true
	}
	h.remaining[a] = h.window
}

// Frame builds the input frame for the current tick and ages held keys.
func (h *HoldTracker) Frame() InputFrame {
	frame := NewInputFrame()
	for a := range h.pressed {
		frame.Set(a)
	}
	clear(h.pressed)

	for a, n := range h.remaining {
		frame.Hold(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
	return frame
}

// Release drops all held keys, e.g. when the game loses focus.
func (h *HoldTracker) Release() {
	clear(h.remaining)
	clear(h.pressed)
}
