package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-lights/internal/core"
)

//go:embed defaults/lights.yaml
var defaultLightsYAML []byte

// DefaultLightsConfig returns the built-in configuration.
func DefaultLightsConfig() LightsConfig {
	return LightsConfig{
		DefaultLevel: "small",
		Levels: []LevelConfig{
			{ID: "small", Name: "Small", Width: 5, Height: 4},
			{ID: "large", Name: "Large", Width: 9, Height: 9},
			{ID: "wrap", Name: "Wrap", Width: 9, Height: 9, GoThrough: true},
		},
		Display: DisplayConfig{
			ShowCursor:     true,
			PluggedColor:   "bright_yellow",
			UnpluggedColor: "gray",
			PowerColor:     "bright_red",
			CursorColor:    "bright_cyan",
			FrameColor:     "white",
			WrapFrameColor: "magenta",
		},
	}
}

func defaultPalette() Palette {
	return Palette{
		Plugged:   core.ColorBrightYellow,
		Unplugged: core.ColorGray,
		Power:     core.ColorBrightRed,
		Cursor:    core.ColorBrightCyan,
		Frame:     core.ColorWhite,
		WrapFrame: core.ColorMagenta,
	}
}
