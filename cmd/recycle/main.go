// recycle is a terminal arcade game: drag the falling trash into the can.
//
// Usage:
//
//	recycle play             - Play in the terminal
//	recycle menu             - Start menu with scoreboard
//	recycle list             - List available games
//	recycle serve            - Start SSH server for remote play
//	recycle scores           - Show high scores
//	recycle simulate         - Run a headless, seeded simulation
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.recycle/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/dadispowerful/recycle/internal/games/recycling"
)

const defaultGame = "recycling"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "recycle",
	Short: "Recycle - sort falling trash in your terminal",
	Long: `Recycle is a terminal arcade game. Trash falls from the top of the
field; grab it with the mouse and drop it into the can before it hits
the floor. Every few items the level goes up and gravity gets stronger.

Available commands:
  play      - Play directly
  menu      - Game menu with scoreboard
  list      - Show all available games
  serve     - Start SSH server for remote play
  scores    - View high scores
  simulate  - Headless seeded run with event log

Examples:
  recycle play
  recycle play --difficulty hard
  recycle menu
  recycle serve --ssh :2222
  recycle simulate --seed 42 --autoplay --plot`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.recycle/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
}
