package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dadispowerful/recycle/internal/games/recycling"
	"github.com/dadispowerful/recycle/internal/platform/tui"
	"github.com/dadispowerful/recycle/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with the game menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select, Tab for scores.
Press B on a paused or finished game to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select game
  Tab          - High scores
  Q            - Quit

Examples:
  recycle menu
  recycle menu --fps 30
  recycle menu --db ./scores.db`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	menuCmd.Flags().StringVar(&flagDebugLog, "debug-log", "", "Write game events to this file")
	menuCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with your scores")
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	logger, closer := openLogger()
	defer closer.Close()

	recycling.SetConfigPath(flagConfig)
	recycling.SetDifficultyPreset(flagDifficulty)

	cfg := terminalConfig()

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		if menuResult.Quit {
			break
		}

		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			break
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each game unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		model, err := tui.RunModel(game, store, cfg,
			tui.WithLogger(logger),
			tui.WithPlayer(flagPlayer),
			tui.WithBackToMenu(),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
		if err != nil || model.IsQuitting() {
			break
		}
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
