// lights is the Turn on the Lights puzzle for the terminal.
//
// Usage:
//
//	lights play [level]      - Play a level (menu when no level is given)
//	lights menu              - Level picker, game and scoreboard loop
//	lights levels            - List configured levels
//	lights scores [level]    - Show results for a level or per-level stats
//	lights serve             - Start SSH server for remote play
//	lights config init       - Write the default lights.yaml
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible puzzles
//	--db <path>     - Set database path (default: ~/.lights/scores.db)
//	--config <path> - Use a specific lights.yaml
//	--log <path>    - Log file for interactive commands
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lights/internal/config"
	"github.com/vovakirdan/tui-lights/internal/core"
	"github.com/vovakirdan/tui-lights/internal/games/lights"
	"github.com/vovakirdan/tui-lights/internal/storage"
)

var (
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lights",
	Short: "Turn on the Lights - a net rotation puzzle",
	Long: `Turn on the Lights is a terminal puzzle. The grid is a network of
wires fed from the power source in the middle. Rotate the pieces until every
cell is connected and the light is on.

Available commands:
  play     - Play a level directly
  menu     - Interactive level picker
  levels   - List configured levels
  scores   - View results
  serve    - Start SSH server for remote play
  config   - Write the default lights.yaml (config init)

Examples:
  lights play
  lights play large
  lights play --width 12 --height 8 --wrap
  lights serve --ssh :2222
  lights scores small`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lights/scores.db", "Path to results database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom lights.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.lights/lights.log", "Log file for play and menu (empty disables logging)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// setupLogging points the game logger at the --log file. The alternate
// screen owns the terminal, so interactive commands never log to stderr.
// The returned func closes the file.
func setupLogging() func() {
	if flagLogPath == "" {
		return func() {}
	}
	path := expandHome(flagLogPath)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not create log directory: %v\n", err)
		return func() {}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		return func() {}
	}
	lights.SetLogger(log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "lights",
		Level:           log.DebugLevel,
	}))
	return func() { f.Close() }
}

// loadConfig loads lights.yaml or exits. A --config path that cannot be read is fatal.
func loadConfig() config.LightsConfig {
	cfg, err := config.LoadLights(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	lights.SetConfigPath(flagConfig)
	return cfg
}

// openStore opens the results database. Failure is a warning; the game runs
// without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open results database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig sizes the screen from the terminal, defaulting to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}
