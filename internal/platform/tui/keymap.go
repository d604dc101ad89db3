package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/duckhunt/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages to game input.
// This centralizes the bindings and makes them testable.
type KeyMapper struct {
	// Last seen mouse cell, used to turn absolute motion events into
	// deltas. Negative means no mouse event seen yet.
	lastMouseX int
	lastMouseY int
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{lastMouseX: -1, lastMouseY: -1}
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case " ", "enter", "f":
		return core.ActionFire, false
	case "w", "up":
		return core.ActionUp, false
	case "s", "down":
		return core.ActionDown, false
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame updates an input frame based on a mouse message.
// Motion becomes a pointer delta in screen cells; the caller scales it
// to field units. A left-button press fires.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, frame *core.InputFrame) {
	if km.lastMouseX >= 0 {
		frame.AddPointerDelta(float64(msg.X-km.lastMouseX), float64(msg.Y-km.lastMouseY))
	}
	km.lastMouseX = msg.X
	km.lastMouseY = msg.Y

	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		frame.Set(core.ActionFire)
	}
}

// ResetMouse forgets the last mouse position, so the next motion event
// produces no delta. Called on resize.
func (km *KeyMapper) ResetMouse() {
	km.lastMouseX = -1
	km.lastMouseY = -1
}
