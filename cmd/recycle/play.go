package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dadispowerful/recycle/internal/core"
	"github.com/dadispowerful/recycle/internal/games/recycling"
	"github.com/dadispowerful/recycle/internal/platform/tui"
	"github.com/dadispowerful/recycle/internal/registry"
	"github.com/dadispowerful/recycle/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagDebugLog   string
	flagPlayer     string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. The game defaults to recycling.

Controls:
  Mouse drag   - Grab the trash and move it
  Left/Right   - Nudge the falling trash (also A/D)
  Enter/Space  - Continue after a level-up
  P/Esc        - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a screenshot to ~/.recycle/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest gravity, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  recycle play
  recycle play --difficulty easy
  recycle play --config ./my-recycling.yaml
  recycle play --debug-log /tmp/recycle.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagDebugLog, "debug-log", "", "Write game events to this file")
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your scores")
}

// terminalConfig builds a runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database, or returns nil with a warning.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		return nil
	}
	return store
}

// openLogger opens the debug log named by --debug-log.
func openLogger() (*log.Logger, io.Closer) {
	logger, closer, err := tui.OpenDebugLog(flagDebugLog)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return log.New(io.Discard), io.NopCloser(nil)
	}
	return logger, closer
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'recycle list' to see available games.")
		os.Exit(1)
	}

	// Set config path and difficulty before the game loads its config
	recycling.SetConfigPath(flagConfig)
	recycling.SetDifficultyPreset(flagDifficulty)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	logger, closer := openLogger()
	store := openStore()

	runErr := tui.Run(game, store, terminalConfig(),
		tui.WithLogger(logger),
		tui.WithPlayer(flagPlayer),
	)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}
	closer.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
