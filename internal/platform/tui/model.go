package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/dadispowerful/recycle/internal/config"
	"github.com/dadispowerful/recycle/internal/core"
	"github.com/dadispowerful/recycle/internal/registry"
	"github.com/dadispowerful/recycle/internal/storage"
)

// factsGame is implemented by games that show facts between levels.
type factsGame interface {
	FactsConfig() config.FactsConfig
	SetFacts(list []string)
	Fact() string
}

// resizableGame is implemented by games that can adapt to a new screen
// size without restarting the run.
type resizableGame interface {
	Resize(w, h int)
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	config     core.RuntimeConfig
	player     string
	keyMapper  *KeyMapper
	help       help.Model
	inputFrame core.InputFrame
	gameState  core.GameState
	allowBack  bool // Whether B returns to a menu
	quitting   bool
	backToMenu bool
	scoreSaved bool // Whether score has been saved for current game over
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger for game notices.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) { m.logger = l }
}

// WithPlayer records scores under the given player name.
func WithPlayer(name string) ModelOption {
	return func(m *Model) { m.player = name }
}

// WithBackToMenu lets B leave a paused or finished game.
func WithBackToMenu() ModelOption {
	return func(m *Model) { m.allowBack = true }
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		logger:     log.New(io.Discard),
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		help:       help.New(),
		inputFrame: core.NewInputFrame(),
	}
	m.help.ShowAll = true
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	// Note: gameState will be set on first tick (value receiver limitation)

	return tea.Batch(tickCmd(m.config.TickRate), m.factsCmd())
}

// factsCmd fetches facts for a new run, if the game shows any.
func (m Model) factsCmd() tea.Cmd {
	fg, ok := m.game.(factsGame)
	if !ok {
		return nil
	}
	return fetchFactsCmd(fg.FactsConfig(), m.config.Seed)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		MapMouseToFrame(msg, &m.inputFrame)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()

	case FactsMsg:
		return m.handleFacts(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	if action == core.ActionBack {
		if m.allowBack && (m.gameState.GameOver || m.gameState.Paused) {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	if rg, ok := m.game.(resizableGame); ok {
		rg.Resize(msg.Width, msg.Height)
		return m, nil
	}

	// Games without Resize restart with the new dimensions
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	// A restart is a new run with a fresh seed and fresh facts
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		m.logger.Debug("run restarted", "seed", m.config.Seed)
		return m, tea.Batch(tickCmd(m.config.TickRate), m.factsCmd())
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	for _, n := range result.Notices {
		m.logger.Debug(n, "game", m.game.ID(), "score", m.gameState.Score, "lives", m.gameState.Lives)
	}

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved {
		m.saveScore()
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m Model) saveScore() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	_, err := m.store.SaveScore(storage.ScoreEntry{
		GameID: m.game.ID(),
		Player: m.player,
		Score:  m.gameState.Score,
		Level:  m.gameState.Level,
	})
	if err != nil {
		// Best-effort save, game continues regardless
		m.logger.Warn("could not save score", "error", err)
	}
}

// handleFacts installs fetched facts into the game.
func (m Model) handleFacts(msg FactsMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.logger.Warn("fact source unavailable", "error", msg.Err)
	}
	if fg, ok := m.game.(factsGame); ok && len(msg.Facts) > 0 {
		fg.SetFacts(msg.Facts)
		m.logger.Debug("facts loaded", "count", len(msg.Facts))
	}
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".recycle", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.game.State()
	w, h := m.screen.Width(), m.screen.Height()

	switch {
	case state.LevelUp:
		fact := ""
		if fg, ok := m.game.(factsGame); ok {
			fact = fg.Fact()
		}
		return renderLevelUp(w, h, state.Level, fact)
	case state.Paused && !state.GameOver:
		return renderModal(w, h, "Paused", m.help.View(m.keyMapper.Keys()), "Press P to resume")
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// GameState returns the state seen at the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) error {
	_, err := RunModel(game, store, cfg, opts...)
	return err
}

// RunModel runs the game and returns the final model, so callers can tell
// a quit from a return to the menu.
func RunModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) (Model, error) {
	model := NewModel(game, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Press, drag and release drive the grab
	)

	final, err := p.Run()
	if err != nil {
		return model, fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return model, nil
}

// OpenDebugLog returns a logger writing to path, or a discarding logger
// when path is empty. The returned closer must be called on exit.
func OpenDebugLog(path string) (*log.Logger, io.Closer, error) {
	if path == "" {
		return log.New(io.Discard), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("tui: cannot open debug log: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "recycle",
		Level:           log.DebugLevel,
	})
	return logger, f, nil
}
