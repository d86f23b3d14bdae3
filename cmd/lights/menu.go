package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lights/internal/games/lights"
	"github.com/vovakirdan/tui-lights/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a level from a menu",
	Long: `Start in interactive menu mode.

Pick a level, play it, and return to the menu when you quit the game.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Play level
  Tab          - Scoreboard
  Q            - Quit

Examples:
  lights menu
  lights menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	levels := lights.LevelsFromConfig(loadConfig())

	closeLog := setupLogging()
	defer closeLog()

	store := openStore()
	cfg := runtimeConfig()

	for {
		res, err := tui.RunMenu(levels, store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}
		cfg = res.Config

		if res.Quit {
			break
		}

		if res.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(levels, store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue
			}
			break
		}

		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}
		if err := tui.Run(lights.New(lights.WithStartLevel(res.LevelID)), store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}
	}

	if store != nil {
		store.Close()
	}
}
