package vpad

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Settings holds the per-context touch-mode table: for each configurable
// UI context, whether the player wants the pad, tap gestures, or both.
type Settings struct {
	modes [contextCount]TouchMode
}

// DefaultSettings returns a table with every context set to both sources.
func DefaultSettings() *Settings {
	s := &Settings{}
	for i := range s.modes {
		s.modes[i] = TouchAndGesture
	}
	return s
}

// Mode returns the configured touch mode for ctx. An out-of-range context
// is a programming error, not a runtime condition.
func (s *Settings) Mode(ctx Context) TouchMode {
	if ctx < 0 || ctx >= contextCount {
		panic(fmt.Sprintf("vpad: touch-mode lookup for unknown context %d", ctx))
	}
	return s.modes[ctx]
}

// SetMode overrides the touch mode for one context.
func (s *Settings) SetMode(ctx Context, m TouchMode) {
	if ctx < 0 || ctx >= contextCount {
		panic(fmt.Sprintf("vpad: touch-mode override for unknown context %d", ctx))
	}
	s.modes[ctx] = m
}

// settingsFile is the TOML shape of the user settings file. Each field is
// "pad", "tap", or "both"; omitted fields keep the default.
type settingsFile struct {
	Tap struct {
		Title     string `toml:"title"`
		Movies    string `toml:"movies"`
		Inventory string `toml:"inventory"`
		MapSystem string `toml:"map_system"`
		Pause     string `toml:"pause"`
		Options   string `toml:"options"`
		SaveLoad  string `toml:"save_load"`
		Dialog    string `toml:"dialog"`
	} `toml:"tap"`
}

// LoadSettings parses a TOML settings document into a Settings table.
// Unknown mode strings are rejected; omitted contexts default to "both".
func LoadSettings(data []byte) (*Settings, error) {
	var file settingsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}

	s := DefaultSettings()
	fields := []struct {
		ctx   Context
		value string
	}{
		{ContextTitle, file.Tap.Title},
		{ContextMovies, file.Tap.Movies},
		{ContextInventory, file.Tap.Inventory},
		{ContextMapSystem, file.Tap.MapSystem},
		{ContextPause, file.Tap.Pause},
		{ContextOptions, file.Tap.Options},
		{ContextSaveLoad, file.Tap.SaveLoad},
		{ContextDialog, file.Tap.Dialog},
	}
	for _, f := range fields {
		if f.value == "" {
			continue
		}
		m, err := parseTouchMode(f.value)
		if err != nil {
			return nil, err
		}
		s.modes[f.ctx] = m
	}
	return s, nil
}

func parseTouchMode(v string) (TouchMode, error) {
	switch v {
	case "pad":
		return TouchOnly, nil
	case "tap":
		return GestureOnly, nil
	case "both":
		return TouchAndGesture, nil
	}
	return 0, fmt.Errorf("parse settings: unknown touch mode %q", v)
}
