package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lights/internal/config"
	"github.com/vovakirdan/tui-lights/internal/games/lights"
	lcore "github.com/vovakirdan/tui-lights/internal/games/lights/core"
	"github.com/vovakirdan/tui-lights/internal/platform/tui"
)

var (
	flagWidth  int
	flagHeight int
	flagWrap   bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start a puzzle on a configured level or a custom size.

With no level and no size flags the level menu is shown first.

Controls:
  Arrows/hjkl/wasd   - Move cursor
  Space/X/Enter      - Rotate clockwise
  Z/Backspace        - Rotate counter-clockwise
  Mouse left/right   - Rotate counter-clockwise/clockwise
  N/Tab              - New game
  1/2/3              - Level presets
  ] [  } {           - Width and height +/-1
  I                  - Toggle go-through edges
  C                  - Toggle cursor
  ?/F1               - Help
  R                  - New game after a win
  Q/Ctrl+C           - Quit

Examples:
  lights play
  lights play wrap
  lights play --width 12 --height 8
  lights play --width 9 --height 9 --wrap --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagWidth, "width", lcore.DefaultWidth, "Custom field width")
	playCmd.Flags().IntVar(&flagHeight, "height", lcore.DefaultHeight, "Custom field height")
	playCmd.Flags().BoolVar(&flagWrap, "wrap", false, "Custom field with go-through edges")
}

func runPlay(cmd *cobra.Command, args []string) {
	custom := cmd.Flags().Changed("width") || cmd.Flags().Changed("height") || cmd.Flags().Changed("wrap")
	if len(args) == 0 && !custom {
		runMenu(cmd, nil)
		return
	}

	lightsCfg := loadConfig()
	var opts []lights.Option
	switch {
	case len(args) == 1:
		if _, err := lightsCfg.Level(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			if errors.Is(err, config.ErrUnknownLevel) {
				fmt.Fprintln(os.Stderr, "Run 'lights levels' to see available levels.")
			}
			os.Exit(1)
		}
		opts = append(opts, lights.WithStartLevel(args[0]))
	default:
		opts = append(opts, lights.WithCustomLevel(flagWidth, flagHeight, flagWrap))
	}

	closeLog := setupLogging()
	defer closeLog()

	store := openStore()
	runErr := tui.Run(lights.New(opts...), store, runtimeConfig())
	if store != nil {
		store.Close()
	}
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
