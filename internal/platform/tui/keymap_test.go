package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dadispowerful/recycle/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause, false},
		{"r", runeKey('r'), core.ActionRestart, false},
		{"b", runeKey('b'), core.ActionBack, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action, quit := km.MapKey(tt.msg)
			if action != tt.action || quit != tt.quit {
				t.Errorf("MapKey(%q) = %v, %v; want %v, %v", tt.msg.String(), action, quit, tt.action, tt.quit)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := NewKeyMapper()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(runeKey('a'), &frame) {
		t.Error("a is not a quit key")
	}
	if !frame.Has(core.ActionLeft) {
		t.Error("frame should hold ActionLeft")
	}
	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should request quit")
	}
}

func TestMapMouse(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.MouseMsg
		kind core.PointerKind
		ok   bool
	}{
		{"left press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, core.PointerPress, true},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, 0, false},
		{"left drag", tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}, core.PointerMove, true},
		{"hover", tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, 0, false},
		{"release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}, core.PointerRelease, true},
		{"wheel", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := MapMouse(tt.msg)
			if ok != tt.ok || (ok && kind != tt.kind) {
				t.Errorf("MapMouse() = %v, %v; want %v, %v", kind, ok, tt.kind, tt.ok)
			}
		})
	}
}

func TestMapMouseToFrame(t *testing.T) {
	frame := core.NewInputFrame()
	MapMouseToFrame(tea.MouseMsg{X: 4, Y: 7, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, &frame)
	MapMouseToFrame(tea.MouseMsg{X: 5, Y: 7, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, &frame)
	MapMouseToFrame(tea.MouseMsg{X: 6, Y: 8, Action: tea.MouseActionRelease}, &frame)

	if len(frame.Pointer) != 2 {
		t.Fatalf("expected 2 pointer events, got %d", len(frame.Pointer))
	}
	first := frame.Pointer[0]
	if first.Kind != core.PointerPress || first.X != 4 || first.Y != 7 {
		t.Errorf("unexpected first event %+v", first)
	}
	if frame.Pointer[1].Kind != core.PointerRelease {
		t.Errorf("second event should be the release, got %+v", frame.Pointer[1])
	}
}

func TestMapKeyToMenuAction(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, MenuActionUp},
		{runeKey('k'), MenuActionUp},
		{tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		{runeKey('j'), MenuActionDown},
		{tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		{tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		{runeKey('b'), MenuActionBack},
		{runeKey('q'), MenuActionQuit},
		{runeKey('x'), MenuActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKeyToMenuAction(tt.msg); got != tt.want {
			t.Errorf("MapKeyToMenuAction(%q) = %v, want %v", tt.msg.String(), got, tt.want)
		}
	}
}
