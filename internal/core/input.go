package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - nudge left
	ActionRight          // D, Right arrow - nudge right
	ActionConfirm        // Enter, Space - continue / confirm selection
	ActionBack           // B - go back to menu
	ActionRestart        // R key - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P, Escape - pause/unpause game
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
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// PointerKind classifies a pointer (mouse or touch) event.
type PointerKind int

const (
	PointerPress   PointerKind = iota // Button pressed / touch started
	PointerMove                       // Moved while pressed
	PointerRelease                    // Button released / touch ended
)

// PointerEvent is a pointer event in screen cell coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y int
}

// InputFrame represents the input state for a single player during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Pointer holds pointer events in arrival order.
	Pointer []PointerEvent
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// AddPointer appends a pointer event to the frame.
func (f *InputFrame) AddPointer(kind PointerKind, x, y int) {
	f.Pointer = append(f.Pointer, PointerEvent{Kind: kind, X: x, Y: y})
}

// Clear resets all actions and pointer events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = f.Pointer[:0]
}
