// t2048 is the 2048 sliding tile puzzle for the terminal.
//
// Usage:
//
//	t2048 list                    - List game modes
//	t2048 play [campaign|endless] - Play a mode directly
//	t2048 menu                    - Start the interactive menu
//	t2048 serve                   - Start SSH and HTTP servers for remote play
//	t2048 scores <mode>           - Show high scores for a mode
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.t2048/scores.db)
//	--config <path>       - Use a custom game config YAML
//	--difficulty <preset> - easy, normal or hard
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
)

func main() {
	// A missing .env is fine; the environment may be set some other way
	//nolint:errcheck
	godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "t2048",
	Short: "2048 - Slide and merge tiles in your terminal",
	Long: `2048 in the terminal: slide the tiles, merge equal ones, reach the target.

Available commands:
  list     - Show the game modes
  play     - Play a mode directly
  menu     - Interactive menu with resume and high scores
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  t2048 menu
  t2048 play endless
  t2048 play campaign --level 4
  t2048 serve --ssh :2222 --http :8080
  t2048 scores 2048`,
	SilenceUsage:      true,
	PersistentPreRunE: loadGameConfig,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.t2048/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// loadGameConfig loads the game config, applies the difficulty preset and
// hands the result to the game package before any game is created.
func loadGameConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	preset, err := config.ParseDifficultyPreset(flagDifficulty)
	if err != nil {
		return err
	}
	preset.Apply(&cfg)

	t2048.SetConfig(cfg)
	return nil
}

// runtimeConfig builds the runtime config from the flags and the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.RuntimeConfig{TickRate: flagFPS, Seed: flagSeed}
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	return cfg.WithDefaults()
}

// localOwner is the owner key of saves and scores made in the local terminal.
func localOwner() string {
	name := strings.TrimSpace(os.Getenv("USER"))
	if name == "" {
		name = "player"
	}
	return "local:" + name
}

// resolveMode maps a mode name or game ID to a registered game ID.
func resolveMode(arg string) (string, error) {
	switch strings.ToLower(arg) {
	case "", "campaign", t2048.IDCampaign:
		return t2048.IDCampaign, nil
	case "endless", t2048.IDEndless:
		return t2048.IDEndless, nil
	}
	return "", fmt.Errorf("unknown mode %q (want campaign or endless)", arg)
}
