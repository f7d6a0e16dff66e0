package core

// Action represents a semantic game action, abstracted from physical key presses.
// Frontends resolve their own key codes to actions through the configured bindings.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A
	ActionRight        // Right arrow, D
	ActionUp           // Up arrow, W
	ActionDown         // Down arrow, S
	ActionFire         // Space
	ActionQuit         // Esc, Q, Ctrl+C, window close
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
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionFire:
		return "Fire"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Opposite returns the action on the other side of the same movement axis,
// or ActionNone for non-directional actions.
func (a Action) Opposite() Action {
	switch a {
	case ActionLeft:
		return ActionRight
	case ActionRight:
		return ActionLeft
	case ActionUp:
		return ActionDown
	case ActionDown:
		return ActionUp
	default:
		return ActionNone
	}
}

// Press is a discrete key-down event for an action.
type Press struct {
	Action Action
	Repeat bool // Generated by keyboard auto-repeat rather than a fresh press
}

// InputFrame is everything polled from an input source for one simulation tick:
// a snapshot of held actions plus the key-down events drained since the last tick.
type InputFrame struct {
	// Held maps actions to whether their key is currently down.
	Held map[Action]bool

	// Presses lists key-down events in arrival order.
	Presses []Press

	// Quit is set when the source asked the process to stop.
	Quit bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Held: make(map[Action]bool),
	}
}

// Hold marks an action as held for this frame.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// Holding returns true if the given action is held in this frame.
func (f InputFrame) Holding(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// Press appends a key-down event.
func (f *InputFrame) Press(a Action, repeat bool) {
	f.Presses = append(f.Presses, Press{Action: a, Repeat: repeat})
}

// FreshPresses counts non-repeating key-down events for an action.
func (f InputFrame) FreshPresses(a Action) int {
	n := 0
	for _, p := range f.Presses {
		if p.Action == a && !p.Repeat {
			n++
		}
	}
	return n
}
