package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List game modes and campaign levels",
	Long:  `Shows the registered game modes and the levels of the configured campaign.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()

	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Println("Game modes:")
	fmt.Println()
	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	cfg := t2048.CurrentConfig()
	fmt.Println()
	fmt.Printf("Campaign (%dx%d board):\n", cfg.Board.Rows, cfg.Board.Cols)
	fmt.Println()
	fmt.Printf("  %-5s  %-20s  %-7s  %s\n", "Level", "Name", "Target", "4-odds")
	fmt.Printf("  %-5s  %-20s  %-7s  %s\n", "-----", "----", "------", "------")
	for _, l := range t2048.Levels() {
		fmt.Printf("  %-5d  %-20s  %-7d  %.0f%%\n", l.ID, l.Name, l.Target, l.FourProbability*100)
	}

	fmt.Println()
	fmt.Println("Run 't2048 play campaign' or 't2048 play endless' to play.")
}
