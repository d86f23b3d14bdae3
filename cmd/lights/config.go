package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lights/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage lights.yaml",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default lights.yaml",
	Long: `Writes the built-in configuration so it can be edited. Without a path
the file goes to ~/.lights/configs/lights.yaml, which is picked up on the
next start.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runConfigInit,
}

var flagForce bool

func init() {
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) {
	path, err := configInitPath(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := config.WriteDefault(path, flagForce); err != nil {
		if errors.Is(err, config.ErrConfigExists) {
			fmt.Fprintf(os.Stderr, "Error: %v (use --force to overwrite)\n", err)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
	fmt.Printf("Wrote default config to %s\n", path)
}

// configInitPath picks the target file: the argument, else the user config path.
func configInitPath(args []string) (string, error) {
	if len(args) > 0 {
		return expandHome(args[0]), nil
	}
	if path := config.UserConfigPath(); path != "" {
		return path, nil
	}
	return "", errors.New("cannot locate home directory, pass a path")
}
