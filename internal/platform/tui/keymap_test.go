package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/duckhunt/internal/core"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEscape}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key    string
		action core.Action
		quit   bool
	}{
		{"space", core.ActionFire, false},
		{"enter", core.ActionFire, false},
		{"f", core.ActionFire, false},
		{"w", core.ActionUp, false},
		{"up", core.ActionUp, false},
		{"s", core.ActionDown, false},
		{"down", core.ActionDown, false},
		{"a", core.ActionLeft, false},
		{"left", core.ActionLeft, false},
		{"d", core.ActionRight, false},
		{"right", core.ActionRight, false},
		{"p", core.ActionPause, false},
		{"esc", core.ActionPause, false},
		{"r", core.ActionRestart, false},
		{"q", core.ActionQuit, true},
		{"ctrl+c", core.ActionQuit, true},
		{"z", core.ActionNone, false},
	}

	for _, tt := range tests {
		action, quit := km.MapKey(keyMsg(tt.key))
		if action != tt.action || quit != tt.quit {
			t.Errorf("MapKey(%q) = (%v, %v), want (%v, %v)",
				tt.key, action, quit, tt.action, tt.quit)
		}
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if quit := km.MapKeyToFrame(keyMsg("space"), &frame); quit {
		t.Error("space reported as quit")
	}
	if !frame.Has(core.ActionFire) {
		t.Error("fire action not set in frame")
	}

	if quit := km.MapKeyToFrame(keyMsg("q"), &frame); !quit {
		t.Error("q not reported as quit")
	}
}

func TestMapMouseToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	// First motion event establishes the position, no delta.
	km.MapMouseToFrame(tea.MouseMsg{X: 10, Y: 5, Action: tea.MouseActionMotion}, &frame)
	if frame.PointerDX != 0 || frame.PointerDY != 0 {
		t.Errorf("first motion produced delta (%v, %v), want none", frame.PointerDX, frame.PointerDY)
	}

	// Subsequent motion produces the cell delta.
	km.MapMouseToFrame(tea.MouseMsg{X: 13, Y: 4, Action: tea.MouseActionMotion}, &frame)
	if frame.PointerDX != 3 || frame.PointerDY != -1 {
		t.Errorf("delta = (%v, %v), want (3, -1)", frame.PointerDX, frame.PointerDY)
	}

	// Left press fires without moving.
	km.MapMouseToFrame(tea.MouseMsg{X: 13, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	if !frame.Has(core.ActionFire) {
		t.Error("left press did not fire")
	}
	if frame.PointerDX != 3 || frame.PointerDY != -1 {
		t.Errorf("press changed delta to (%v, %v)", frame.PointerDX, frame.PointerDY)
	}

	// After a reset the next event is position-only again.
	km.ResetMouse()
	frame.Clear()
	km.MapMouseToFrame(tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionMotion}, &frame)
	if frame.PointerDX != 0 || frame.PointerDY != 0 {
		t.Errorf("motion after reset produced delta (%v, %v)", frame.PointerDX, frame.PointerDY)
	}
}

func TestRenderScreenGroupsRuns(t *testing.T) {
	s := core.NewScreen(4, 2)
	s.DrawTextColor(0, 0, "ab", core.ColorYellow)
	s.DrawTextColor(2, 0, "cd", core.ColorRed)

	out := RenderScreen(s)
	if out == "" {
		t.Fatal("RenderScreen returned empty string")
	}

	// One newline between the two rows regardless of styling.
	lines := 1
	for _, r := range out {
		if r == '\n' {
			lines++
		}
	}
	if lines != 2 {
		t.Errorf("rendered %d lines, want 2", lines)
	}
}
