package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start 2048 with the interactive menu",
	Long: `Start 2048 in interactive menu mode.

The menu offers to resume saved games, start a new campaign or endless game,
pick a campaign level and browse the high scores. After a game you return
to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  t2048 menu
  t2048 menu --fps 30
  t2048 menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	svc := tui.Services{Owner: localOwner()}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	} else {
		svc.Scores = store
		svc.Saves = store
		defer store.Close()
	}

	if err := tui.RunSession(svc, runtimeConfig()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if store != nil {
			store.Close()
		}
		os.Exit(1)
	}
}
