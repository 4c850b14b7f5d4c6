package core

import "testing"

func TestInputStateDir(t *testing.T) {
	tests := []struct {
		name     string
		in       InputState
		expected int
	}{
		{"idle", InputState{}, 0},
		{"left", InputState{Left: true}, -1},
		{"right", InputState{Right: true}, 1},
		{"both cancel", InputState{Left: true, Right: true}, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Dir(); got != tc.expected {
				t.Errorf("Dir() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestHoldTrackerExpires(t *testing.T) {
	h := NewHoldTracker(3)
	h.Press(ActionLeft)

	for i := 0; i < 3; i++ {
		if s := h.Tick(); !s.Left {
			t.Fatalf("tick %d: left should still be held", i)
		}
	}

	if s := h.Tick(); s.Left || s.Right {
		t.Errorf("hold should have expired, got %+v", s)
	}
}

func TestHoldTrackerOppositeReleases(t *testing.T) {
	h := NewHoldTracker(5)
	h.Press(ActionLeft)
	h.Press(ActionRight)

	s := h.State()
	if s.Left {
		t.Error("pressing right should release left")
	}
	if !s.Right {
		t.Error("right should be held")
	}

	h.Release()
	if s := h.State(); s.Left || s.Right {
		t.Errorf("Release should drop both, got %+v", s)
	}
}

func TestHoldTrackerIgnoresOtherActions(t *testing.T) {
	h := NewHoldTracker(0)
	h.Press(ActionConfirm)
	h.Press(ActionQuit)

	if s := h.State(); s.Left || s.Right {
		t.Errorf("non-directional actions should not hold, got %+v", s)
	}
	if h.holdTicks != DefaultHoldTicks {
		t.Errorf("holdTicks = %d, expected default %d", h.holdTicks, DefaultHoldTicks)
	}
}

func TestActionString(t *testing.T) {
	if ActionLeft.String() != "Left" || ActionRight.String() != "Right" {
		t.Error("directional actions should have readable names")
	}
	if Action(99).String() != "Unknown" {
		t.Error("unknown actions should print Unknown")
	}
}
