package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [campaign|endless]",
	Short: "Show high scores",
	Long: `Display the top high scores and overall stats of a game mode.

Examples:
  t2048 scores
  t2048 scores endless
  t2048 scores 2048 --limit 25`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

// modeName is the play argument for a game ID.
func modeName(gameID string) string {
	if gameID == t2048.IDEndless {
		return "endless"
	}
	return "campaign"
}

func runScores(_ *cobra.Command, args []string) {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	gameID, err := resolveMode(arg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 't2048 list' to see available modes.")
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

	scores, err := store.TopScores(gameID, max(flagScoresLimit, 1))
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 't2048 play %s' to set the first high score!\n", modeName(gameID))
		return
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-16s  %s\n", "Rank", "Score", "Tile", "Player", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-16s  %s\n", "----", "-----", "----", "------", "----")
	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-6d  %-16s  %s\n", i+1, e.Score, e.MaxTile, player, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetGameStats(gameID); err == nil {
		fmt.Println()
		fmt.Printf("Games: %d  Best: %d  Best tile: %d  Average: %.0f\n",
			stats.GamesCount, stats.HighScore, stats.BestTile, stats.AvgScore)
	}
}
