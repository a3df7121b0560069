package tui

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
)

func updateSession(t *testing.T, m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	sm, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return sm, cmd
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	store := openStore(t)
	m := NewSessionModel(store, testConfig(), "alice", log.New(io.Discard))

	if !strings.Contains(m.View(), "R E C Y C L E") {
		t.Fatal("session should open on the menu")
	}

	m, cmd := updateSession(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel == nil {
		t.Fatal("enter should start the selected game")
	}
	if cmd == nil {
		t.Error("starting a game should start its tick loop")
	}
	if m.quitting {
		t.Error("starting a game must not end the session")
	}

	m, _ = updateSession(t, m, runeKey('p'))
	m, _ = updateSession(t, m, TickMsg{})
	m, _ = updateSession(t, m, runeKey('b'))
	if m.gameModel != nil {
		t.Fatal("b on a paused run should return to the menu")
	}

	m, _ = updateSession(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}

	m, cmd = updateSession(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Error("q on the scoreboard should end the session")
	}
}

func TestSessionResizeUpdatesConfig(t *testing.T) {
	m := NewSessionModel(nil, testConfig(), "bob", log.New(io.Discard))
	m, _ = updateSession(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.config.ScreenW != 120 || m.config.ScreenH != 40 {
		t.Errorf("config not resized: %+v", m.config)
	}
	if m.menu.Config().ScreenW != 120 {
		t.Error("menu should see the new size")
	}
}
