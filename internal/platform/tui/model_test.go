package tui

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dadispowerful/recycle/internal/config"
	"github.com/dadispowerful/recycle/internal/core"
	"github.com/dadispowerful/recycle/internal/games/recycling"
	"github.com/dadispowerful/recycle/internal/storage"
)

// scriptedGame reports a fixed state on every step.
type scriptedGame struct {
	state  core.GameState
	resets int
	steps  int
	last   core.InputFrame
	facts  []string
}

func (g *scriptedGame) ID() string                      { return "scripted" }
func (g *scriptedGame) Title() string                   { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig)        { g.resets++ }
func (g *scriptedGame) Render(dst *core.Screen)         { dst.DrawText(0, 0, "scripted") }
func (g *scriptedGame) State() core.GameState           { return g.state }
func (g *scriptedGame) FactsConfig() config.FactsConfig { return config.FactsConfig{Count: 2} }
func (g *scriptedGame) SetFacts(list []string)          { g.facts = list }
func (g *scriptedGame) Fact() string                    { return "" }

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = core.InputFrame{Pointer: append([]core.PointerEvent(nil), in.Pointer...)}
	return core.StepResult{State: g.state}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func TestModelSavesScoreOnce(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{state: core.GameState{Score: 7, Level: 2, GameOver: true}}
	m := NewModel(game, store, testConfig(), WithPlayer("alice"))
	m.Init()

	for range 3 {
		m, _ = update(t, m, TickMsg{})
	}

	scores, err := store.AllScores("scripted")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("expected exactly one saved score, got %d", len(scores))
	}
	if scores[0].Score != 7 || scores[0].Level != 2 || scores[0].Player != "alice" {
		t.Errorf("unexpected saved entry %+v", scores[0])
	}
}

func TestModelSkipsZeroScore(t *testing.T) {
	store := openStore(t)
	game := &scriptedGame{state: core.GameState{GameOver: true}}
	m := NewModel(game, store, testConfig())
	m.Init()
	update(t, m, TickMsg{})

	scores, err := store.AllScores("scripted")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 0 {
		t.Errorf("a zero score should not be saved, got %d", len(scores))
	}
}

func TestModelRestartAfterGameOver(t *testing.T) {
	game := &scriptedGame{state: core.GameState{GameOver: true}}
	m := NewModel(game, nil, testConfig())
	m.Init()
	m, _ = update(t, m, TickMsg{})

	m, _ = update(t, m, runeKey('r'))
	m, cmd := update(t, m, TickMsg{})
	if game.resets != 2 {
		t.Errorf("restart should reset the game, resets = %d", game.resets)
	}
	if cmd == nil {
		t.Error("restart should keep the tick loop going")
	}
	if m.scoreSaved {
		t.Error("a new run should be able to save again")
	}
}

func TestModelPointerEventsReachGame(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, testConfig())
	m.Init()

	m, _ = update(t, m, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 5, Y: 4, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, TickMsg{})

	if len(game.last.Pointer) != 2 {
		t.Fatalf("game should see 2 pointer events, got %d", len(game.last.Pointer))
	}

	update(t, m, TickMsg{})
	if len(game.last.Pointer) != 0 {
		t.Error("pointer events should be cleared after a tick")
	}
}

func TestModelQuitAndBack(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, testConfig(), WithBackToMenu())
	m.Init()
	m, _ = update(t, m, TickMsg{})

	m, _ = update(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Error("back should be ignored while the run is active")
	}

	game.state.Paused = true
	m, _ = update(t, m, TickMsg{})
	m, _ = update(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("back should leave a paused run")
	}

	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("a quitting model renders nothing")
	}
}

func TestModelFactsMsg(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, testConfig())
	update(t, m, FactsMsg{Facts: []string{"one", "two"}, Err: errors.New("offline")})

	if len(game.facts) != 2 || game.facts[0] != "one" {
		t.Errorf("facts not installed: %v", game.facts)
	}
}

func TestModelViewStates(t *testing.T) {
	game := &scriptedGame{}
	m := NewModel(game, nil, testConfig())
	m.Init()

	if !strings.Contains(m.View(), "scripted") {
		t.Error("running view should show the game screen")
	}

	game.state = core.GameState{Paused: true}
	if !strings.Contains(m.View(), "Paused") {
		t.Error("paused view should show the pause modal")
	}

	game.state = core.GameState{Paused: true, LevelUp: true, Level: 3}
	if !strings.Contains(m.View(), "Level 3") {
		t.Error("level-up view should name the new level")
	}
}

func TestModelRunsRecyclingGame(t *testing.T) {
	game := recycling.New()
	m := NewModel(game, nil, testConfig())
	m.Init()

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{})
	if !m.GameState().Paused {
		t.Fatal("p should pause the run")
	}
	if tick := game.Loop().Tick(); tick != 0 {
		t.Errorf("paused run should not advance, tick = %d", tick)
	}

	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{})
	if m.GameState().Paused || game.Loop().Tick() != 1 {
		t.Errorf("second p should resume, state %+v tick %d", m.GameState(), game.Loop().Tick())
	}

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	if game.Loop().Tick() != 1 {
		t.Error("resize should keep the run")
	}
	if m.View() == "" {
		t.Error("view should render the field")
	}
}

func TestFetchFactsEmbedded(t *testing.T) {
	msg := fetchFactsCmd(config.FactsConfig{Count: 3}, 9)()
	fm, ok := msg.(FactsMsg)
	if !ok {
		t.Fatalf("unexpected message %T", msg)
	}
	if fm.Err != nil {
		t.Errorf("embedded facts should not fail: %v", fm.Err)
	}
	if len(fm.Facts) != 3 {
		t.Errorf("expected 3 facts, got %d", len(fm.Facts))
	}
}

func TestFetchFactsRemoteFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	msg := fetchFactsCmd(config.FactsConfig{URL: srv.URL, Count: 2, TimeoutSeconds: 1}, 9)()
	fm := msg.(FactsMsg)
	if fm.Err == nil {
		t.Error("remote failure should be reported")
	}
	if len(fm.Facts) != 2 {
		t.Errorf("fallback should still supply facts, got %d", len(fm.Facts))
	}
}

func TestTickCmdDefaultsRate(t *testing.T) {
	if tickCmd(0) == nil {
		t.Fatal("tickCmd should always return a command")
	}
}
