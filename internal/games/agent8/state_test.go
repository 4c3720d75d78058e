package agent8

import "testing"

func TestTransitionTableIsTotal(t *testing.T) {
	valid := make(map[PlayerState]bool)
	for _, s := range States {
		valid[s] = true
	}

	for _, s := range States {
		for _, e := range Events {
			next := Next(s, e)
			if !valid[next] {
				t.Errorf("Next(%v, %v) = %v is not a state", s, e, next)
			}
			if again := Next(s, e); again != next {
				t.Errorf("Next(%v, %v) is not a function", s, e)
			}
		}
	}
}

func TestTransitions(t *testing.T) {
	tests := []struct {
		from PlayerState
		ev   Event
		to   PlayerState
	}{
		{StateAppear, EventReachedPlayfield, StatePlay},
		{StateAppear, EventHit, StateDead},
		{StateAppear, EventNone, StateAppear},
		{StateAppear, EventRespawn, StateAppear},
		{StatePlay, EventFallFast, StateHalt},
		{StatePlay, EventHit, StateDead},
		{StatePlay, EventHaltDone, StatePlay},
		{StateHalt, EventHaltDone, StatePlay},
		{StateHalt, EventHit, StateDead},
		{StateHalt, EventFallFast, StateHalt},
		{StateDead, EventRespawn, StateAppear},
		{StateDead, EventHit, StateDead},
		{StateDead, EventReachedPlayfield, StateDead},
	}

	for _, tc := range tests {
		if got := Next(tc.from, tc.ev); got != tc.to {
			t.Errorf("Next(%v, %v) = %v, expected %v", tc.from, tc.ev, got, tc.to)
		}
	}
}

func TestEveryStateHasHandler(t *testing.T) {
	for _, s := range States {
		if handlers[s] == nil {
			t.Errorf("no handler for %v", s)
		}
	}
}

func TestStateString(t *testing.T) {
	want := map[PlayerState]string{
		StateAppear:     "APPEAR",
		StateHalt:       "HALT",
		StatePlay:       "PLAY",
		StateDead:       "DEAD",
		PlayerState(42): "UNKNOWN",
	}
	for s, w := range want {
		if s.String() != w {
			t.Errorf("%d.String() = %q, expected %q", s, s.String(), w)
		}
	}
}
