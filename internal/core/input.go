package core

// Action represents a semantic game action, abstracted from physical key
// presses or mouse buttons. Games work with high-level intents rather than
// raw input events.
type Action int

const (
	ActionNone    Action = iota
	ActionFire           // Space, left click - fire one shot
	ActionUp             // W, Up arrow - nudge the reticle up
	ActionDown           // S, Down arrow - nudge the reticle down
	ActionLeft           // A, Left arrow - nudge the reticle left
	ActionRight          // D, Right arrow - nudge the reticle right
	ActionConfirm        // Enter - confirm selection in menus
	ActionBack           // B, Escape - go back
	ActionRestart        // R key - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFire:
		return "Fire"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
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

// InputFrame represents the input state sampled for one simulation tick.
// Discrete triggers (fire, restart) arrive as actions; continuous pointer
// motion arrives as an accumulated delta in screen cells, which the game
// scales to its own coordinate space.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// PointerDX and PointerDY hold the pointer movement accumulated since
	// the previous tick. The game integrates these into a clamped reticle
	// position; the platform never tracks absolute coordinates.
	PointerDX float64
	PointerDY float64
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

// AddPointerDelta accumulates pointer movement for this frame.
func (f *InputFrame) AddPointerDelta(dx, dy float64) {
	f.PointerDX += dx
	f.PointerDY += dy
}

// Clear resets all actions and the pointer delta for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.PointerDX = 0
	f.PointerDY = 0
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.PointerDX = f.PointerDX
	clone.PointerDY = f.PointerDY
	return clone
}
