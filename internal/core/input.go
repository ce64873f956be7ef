package core

// Action represents a semantic input action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionUp           // Up arrow, W
	ActionDown         // Down arrow, S
	ActionLeft         // Left arrow, A
	ActionRight        // Right arrow, D
	ActionQuit         // Q, Ctrl+C
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
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsSteer reports whether the action is a direction request.
func (a Action) IsSteer() bool {
	return a >= ActionUp && a <= ActionRight
}

// InputFrame buffers input between two simulation ticks.
// Only the most recent steering key is kept, matching a terminal that reports
// one pending key per poll. A quit request is sticky until Clear.
type InputFrame struct {
	last Action
	quit bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	switch {
	case a == ActionQuit:
		f.quit = true
	case a.IsSteer():
		f.last = a
	}
}

// Has returns true if the given action is pending this frame.
func (f InputFrame) Has(a Action) bool {
	if a == ActionQuit {
		return f.quit
	}
	return a != ActionNone && f.last == a
}

// Last returns the most recent steering action, or ActionNone.
func (f InputFrame) Last() Action {
	return f.last
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.last = ActionNone
	f.quit = false
}
