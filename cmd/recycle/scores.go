package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dadispowerful/recycle/internal/registry"
	"github.com/dadispowerful/recycle/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show high scores",
	Long: `Display the top high scores with the level each run reached.

Examples:
  recycle scores
  recycle scores --limit 25
  recycle scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores for the game")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := defaultGame
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'recycle list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Cleared scores for %s.\n", title)
		return
	}

	scores, err := store.TopScores(gameID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'recycle play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-12s  %-6s  %-5s  %s\n", "Rank", "Player", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-12s  %-6s  %-5s  %s\n", "----", "------", "-----", "-----", "----")

	for i, entry := range scores {
		player := entry.Player
		if player == "" {
			player = "local"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-12s  %-6d  %-5d  %s\n", i+1, player, entry.Score, entry.Level, dateStr)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Best: %d  Average: %.1f  Highest level: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.BestLevel)
	}
}
