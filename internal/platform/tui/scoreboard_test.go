package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dadispowerful/recycle/internal/storage"
)

func scoreboardStore(t *testing.T, runs ...storage.ScoreEntry) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	for _, r := range runs {
		if _, err := store.SaveScore(r); err != nil {
			t.Fatalf("SaveScore(%+v) failed: %v", r, err)
		}
	}
	return store
}

func TestScoreboardShowsRunStats(t *testing.T) {
	store := scoreboardStore(t,
		storage.ScoreEntry{GameID: "recycling", Score: 12, Level: 4, Player: "alice"},
		storage.ScoreEntry{GameID: "recycling", Score: 6, Level: 2},
		storage.ScoreEntry{GameID: "other", Score: 99, Level: 9},
	)

	m := NewScoreboardModel(store, 100, 30)
	if m.game.ID != "recycling" {
		t.Fatalf("game = %q, want recycling", m.game.ID)
	}
	if len(m.scores) != 2 {
		t.Fatalf("scores = %d, want 2", len(m.scores))
	}

	view := m.View()
	for _, want := range []string{"HIGH SCORES - ", "Runs", "Average", "9.0", "Top level", "alice", "local"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "99") {
		t.Errorf("view shows another game's run:\n%s", view)
	}
}

func TestScoreboardEmptyStore(t *testing.T) {
	m := NewScoreboardModel(scoreboardStore(t), 60, 30)

	view := m.View()
	if !strings.Contains(view, "No scores recorded yet.") {
		t.Errorf("missing empty table message:\n%s", view)
	}
	if !strings.Contains(view, "No runs yet") {
		t.Errorf("missing empty stats message:\n%s", view)
	}
}

func TestScoreboardNilStore(t *testing.T) {
	m := NewScoreboardModel(nil, 80, 24)
	if m.scores != nil || m.stats != nil {
		t.Errorf("nil store loaded scores=%v stats=%v", m.scores, m.stats)
	}
	if !strings.Contains(m.View(), "No runs yet") {
		t.Error("nil store should render as empty")
	}
}

func TestScoreboardKeys(t *testing.T) {
	tests := []struct {
		name      string
		msg       tea.KeyMsg
		goingBack bool
		quitting  bool
	}{
		{"b goes back", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}}, true, false},
		{"esc goes back", tea.KeyMsg{Type: tea.KeyEsc}, true, false},
		{"q quits", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, false, true},
		{"tab does nothing", tea.KeyMsg{Type: tea.KeyTab}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewScoreboardModel(nil, 80, 24)
			next, cmd := m.Update(tt.msg)
			sb := next.(ScoreboardModel)
			if sb.IsGoingBack() != tt.goingBack || sb.IsQuitting() != tt.quitting {
				t.Errorf("back=%v quit=%v, want back=%v quit=%v",
					sb.IsGoingBack(), sb.IsQuitting(), tt.goingBack, tt.quitting)
			}
			if (tt.goingBack || tt.quitting) && cmd == nil {
				t.Error("expected a quit command")
			}
			if (tt.goingBack || tt.quitting) && sb.View() != "" {
				t.Error("view should be empty after leaving")
			}
		})
	}
}

func TestScoreboardResize(t *testing.T) {
	store := scoreboardStore(t, storage.ScoreEntry{GameID: "recycling", Score: 3, Level: 1})
	m := NewScoreboardModel(store, 100, 30)

	next, _ := m.Update(tea.WindowSizeMsg{Width: 50, Height: 40})
	sb := next.(ScoreboardModel)
	if sb.sideBySide() {
		t.Error("narrow terminal should stack stats above the table")
	}
	if len(sb.table.Rows()) != 1 {
		t.Errorf("rows after resize = %d, want 1", len(sb.table.Rows()))
	}
}
