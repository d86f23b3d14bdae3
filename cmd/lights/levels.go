package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List configured levels",
	Long: `Shows the level presets from lights.yaml. Presets 1-3 are also
reachable in game with the number keys.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

var headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
var cellStyle = lipgloss.NewStyle().Padding(0, 1)

func styleRows(row, _ int) lipgloss.Style {
	if row == table.HeaderRow {
		return headerStyle
	}
	return cellStyle
}

func runLevels(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	t := table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(styleRows).
		Headers("#", "ID", "Name", "Size", "Go-through")

	start := cfg.StartLevel().ID
	for i, lvl := range cfg.Levels {
		id := lvl.ID
		if id == start {
			id += " *"
		}
		wrap := "no"
		if lvl.GoThrough {
			wrap = "yes"
		}
		t.Row(strconv.Itoa(i+1), id, lvl.Name, fmt.Sprintf("%dx%d", lvl.Width, lvl.Height), wrap)
	}

	fmt.Println(t.String())
	fmt.Println("* default level")
	fmt.Println()
	fmt.Println("Run 'lights play <id>' to play a level.")
}
