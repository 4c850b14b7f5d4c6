package core

// Action is a semantic intent, abstracted from physical keys and touches.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A, H, left touch button
	ActionRight          // Right arrow, D, L, right touch button
	ActionConfirm        // Enter - submit name, close dialogs
	ActionBack           // Esc, B - leave the scoreboard
	ActionQuit           // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputState is the held state of the two directional intents at the moment
// the simulation reads it.
type InputState struct {
	Left  bool
	Right bool
}

// Dir returns -1, 0 or 1. Holding both directions cancels out.
func (s InputState) Dir() int {
	d := 0
	if s.Left {
		d--
	}
	if s.Right {
		d++
	}
	return d
}

// DefaultHoldTicks is how long a single key press counts as "held" on
// surfaces that only report presses.
const DefaultHoldTicks = 8

// HoldTracker turns discrete press events into held intents.
// Terminals deliver key repeats but never key-up, so every press holds the
// direction for a number of ticks and a press of the opposite direction
// releases the other one immediately.
type HoldTracker struct {
	holdTicks int
	left      int
	right     int
}

// NewHoldTracker creates a tracker. Non-positive holdTicks uses DefaultHoldTicks.
func NewHoldTracker(holdTicks int) *HoldTracker {
	if holdTicks <= 0 {
		holdTicks = DefaultHoldTicks
	}
	return &HoldTracker{holdTicks: holdTicks}
}

// Press registers a key-down for the given action.
func (h *HoldTracker) Press(a Action) {
	switch a {
	case ActionLeft:
		h.left = h.holdTicks
		h.right = 0
	case ActionRight:
		h.right = h.holdTicks
		h.left = 0
	}
}

// Release drops any held direction.
func (h *HoldTracker) Release() {
	h.left = 0
	h.right = 0
}

// State returns the current held state without advancing time.
func (h *HoldTracker) State() InputState {
	return InputState{Left: h.left > 0, Right: h.right > 0}
}

// Tick returns the held state for this tick and then ages the holds.
func (h *HoldTracker) Tick() InputState {
	s := h.State()
	if h.left > 0 {
		h.left--
	}
	if h.right > 0 {
		h.right--
	}
	return s
}
