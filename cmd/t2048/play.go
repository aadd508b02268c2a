package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

var (
	flagLevel int
	flagNew   bool
	flagSize  string
)

var playCmd = &cobra.Command{
	Use:   "play [campaign|endless]",
	Short: "Play 2048",
	Long: `Start playing 2048 directly, without the menu. The default mode is campaign.

A saved game of the chosen mode is resumed unless --new or --level is given.
Quitting with Q or going back with Esc saves the game in progress.

Controls:
  Arrows/WASD/HJKL - Slide tiles
  P                - Pause
  R                - Restart (after game over)
  Ctrl+S           - Screenshot to ~/.t2048/screenshots
  Q/Ctrl+C         - Save and quit

Difficulty options:
  easy   - 4s spawn half as often
  normal - Configured odds
  hard   - 4s spawn noticeably more often

Examples:
  t2048 play
  t2048 play endless
  t2048 play campaign --level 5
  t2048 play endless --size 5x5
  t2048 play --difficulty hard --config ./my-2048.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Campaign level to start at (1-based)")
	playCmd.Flags().BoolVar(&flagNew, "new", false, "Start a new game instead of resuming")
	playCmd.Flags().StringVar(&flagSize, "size", "", "Board size as ROWSxCOLS for a practice game (not saved or scored)")
}

func runPlay(_ *cobra.Command, args []string) {
	var arg string
	if len(args) > 0 {
		arg = args[0]
	}
	gameID, err := resolveMode(arg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	practice := flagSize != ""
	if practice {
		rows, cols, sizeErr := parseSize(flagSize)
		if sizeErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", sizeErr)
			os.Exit(1)
		}
		cfg := t2048.CurrentConfig()
		cfg.Board.Rows = rows
		cfg.Board.Cols = cols
		if sizeErr := cfg.Validate(); sizeErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", sizeErr)
			os.Exit(1)
		}
		t2048.SetConfig(cfg)
	}

	if flagLevel != 0 && (gameID != t2048.IDCampaign || flagLevel < 1 || flagLevel > t2048.LevelCount()) {
		fmt.Fprintf(os.Stderr, "Error: --level must be between 1 and %d and needs campaign mode\n", t2048.LevelCount())
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	if g, ok := game.(*t2048.Game); ok && flagLevel > 0 {
		g.SetStartLevel(flagLevel)
	}

	svc := tui.Services{Owner: localOwner()}
	var store *storage.Store
	if !practice {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
			// Continue without storage - game still works
		} else {
			svc.Scores = store
			svc.Saves = store
		}
	}

	resume := !flagNew && flagLevel == 0
	runErr := tui.Run(game, svc, runtimeConfig(), resume)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// parseSize parses a board size such as "5x5" or "4X6".
func parseSize(s string) (rows, cols int, err error) {
	r, c, ok := strings.Cut(strings.ToLower(strings.TrimSpace(s)), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q (want ROWSxCOLS, e.g. 5x5)", s)
	}
	rows, err = strconv.Atoi(r)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: bad row count", s)
	}
	cols, err = strconv.Atoi(c)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid size %q: bad column count", s)
	}
	if rows < 1 || cols < 1 || rows > 12 || cols > 12 {
		return 0, 0, fmt.Errorf("invalid size %q: rows and columns must be between 1 and 12", s)
	}
	return rows, cols, nil
}
