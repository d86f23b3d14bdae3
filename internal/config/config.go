// Package config loads the YAML configuration for Turn on the Lights:
// level presets, display colors and debug switches.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-lights/internal/core"
)

// ErrUnknownLevel is returned when a level ID is not configured.
var ErrUnknownLevel = errors.New("config: unknown level")

// LightsConfig is the full game configuration.
type LightsConfig struct {
	DefaultLevel string        `yaml:"default_level"`
	Levels       []LevelConfig `yaml:"levels"`
	Display      DisplayConfig `yaml:"display"`
	Debug        bool          `yaml:"debug"`
}

// LevelConfig is one selectable preset.
type LevelConfig struct {
	ID        string `yaml:"id"`
	Name      string `yaml:"name"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	GoThrough bool   `yaml:"go_through"`
}

// DisplayConfig controls rendering. Colors use core.ParseColor names.
type DisplayConfig struct {
	ShowCursor     bool   `yaml:"show_cursor"`
	PluggedColor   string `yaml:"plugged_color"`
	UnpluggedColor string `yaml:"unplugged_color"`
	PowerColor     string `yaml:"power_color"`
	CursorColor    string `yaml:"cursor_color"`
	FrameColor     string `yaml:"frame_color"`
	WrapFrameColor string `yaml:"wrap_frame_color"`
}

// Palette is DisplayConfig with colors resolved.
type Palette struct {
	Plugged   core.Color
	Unplugged core.Color
	Power     core.Color
	Cursor    core.Color
	Frame     core.Color
	WrapFrame core.Color
}

// Validate checks level IDs, the default level and color names.
func (c LightsConfig) Validate() error {
	if len(c.Levels) == 0 {
		return errors.New("config: no levels defined")
	}
	seen := make(map[string]bool, len(c.Levels))
	for i, l := range c.Levels {
		if l.ID == "" {
			return fmt.Errorf("config: level %d has no id", i)
		}
		if seen[l.ID] {
			return fmt.Errorf("config: duplicate level id %q", l.ID)
		}
		seen[l.ID] = true
	}
	if c.DefaultLevel != "" && !seen[c.DefaultLevel] {
		return fmt.Errorf("default_level %q: %w", c.DefaultLevel, ErrUnknownLevel)
	}
	if _, err := c.Display.Palette(); err != nil {
		return err
	}
	return nil
}

// Level returns the preset with the given ID.
func (c LightsConfig) Level(id string) (LevelConfig, error) {
	for _, l := range c.Levels {
		if l.ID == id {
			return l, nil
		}
	}
	return LevelConfig{}, fmt.Errorf("%q: %w", id, ErrUnknownLevel)
}

// StartLevel returns the default level, or the first one when unset.
func (c LightsConfig) StartLevel() LevelConfig {
	if l, err := c.Level(c.DefaultLevel); err == nil {
		return l
	}
	if len(c.Levels) > 0 {
		return c.Levels[0]
	}
	return DefaultLightsConfig().Levels[0]
}

// Palette resolves the configured color names. Empty names keep defaults.
func (d DisplayConfig) Palette() (Palette, error) {
	p := defaultPalette()
	fields := []struct {
		name string
		dst  *core.Color
	}{
		{d.PluggedColor, &p.Plugged},
		{d.UnpluggedColor, &p.Unplugged},
		{d.PowerColor, &p.Power},
		{d.CursorColor, &p.Cursor},
		{d.FrameColor, &p.Frame},
		{d.WrapFrameColor, &p.WrapFrame},
	}
	for _, f := range fields {
		if f.name == "" {
			continue
		}
		c, ok := core.ParseColor(f.name)
		if !ok {
			return p, fmt.Errorf("config: unknown color %q", f.name)
		}
		*f.dst = c
	}
	return p, nil
}
