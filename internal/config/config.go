// Package config provides YAML/TOML configuration loading for the debris
// shooter: playfield geometry, entity tuning, pacing, key bindings and assets.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config contains all tunable parameters.
type Config struct {
	Playfield PlayfieldConfig `yaml:"playfield" toml:"playfield"`
	Ship      ShipConfig      `yaml:"ship" toml:"ship"`
	Bullets   BulletConfig    `yaml:"bullets" toml:"bullets"`
	Debris    DebrisConfig    `yaml:"debris" toml:"debris"`
	Timing    TimingConfig    `yaml:"timing" toml:"timing"`
	Controls  ControlsConfig  `yaml:"controls" toml:"controls"`
	Terminal  TerminalConfig  `yaml:"terminal" toml:"terminal"`
	Assets    AssetsConfig    `yaml:"assets" toml:"assets"`
}

// PlayfieldConfig defines the simulated area in pixels.
type PlayfieldConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Width        int `yaml:"width" toml:"width"`
	Height       int `yaml:"height" toml:"height"`
	Speed        int `yaml:"speed" toml:"speed"`                 // Pixels per tick on each axis
	BottomMargin int `yaml:"bottom_margin" toml:"bottom_margin"` // Gap below the ship at spawn
}

// BulletConfig defines the bullet pool.
type BulletConfig struct {
	Capacity int `yaml:"capacity" toml:"capacity"`
	Width    int `yaml:"width" toml:"width"`
	Height   int `yaml:"height" toml:"height"`
	Speed    int `yaml:"speed" toml:"speed"` // Pixels per tick, upward
}

// DebrisConfig defines the debris pool.
type DebrisConfig struct {
	Capacity int `yaml:"capacity" toml:"capacity"`
	MinSize  int `yaml:"min_size" toml:"min_size"` // Inclusive
	MaxSize  int `yaml:"max_size" toml:"max_size"` // Exclusive
	Speed    int `yaml:"speed" toml:"speed"`       // Pixels per tick, downward
}

// TimingConfig defines frame pacing.
type TimingConfig struct {
	TickInterval time.Duration `yaml:"tick_interval" toml:"tick_interval"`
}

// ControlsConfig lists key names per action. Names follow Bubble Tea's
// key strings ("left", "a", "space", "esc", "ctrl+c").
type ControlsConfig struct {
	Left  []string `yaml:"left" toml:"left"`
	Right []string `yaml:"right" toml:"right"`
	Up    []string `yaml:"up" toml:"up"`
	Down  []string `yaml:"down" toml:"down"`
	Fire  []string `yaml:"fire" toml:"fire"`
	Quit  []string `yaml:"quit" toml:"quit"`
}

// TerminalConfig tunes how held keys are synthesized from terminal key presses.
// Terminals never report key releases, so a press counts as held for a while.
type TerminalConfig struct {
	RepeatDelay  time.Duration `yaml:"repeat_delay" toml:"repeat_delay"`   // Keyboard delay before the first auto-repeat; also the hold after a fresh press
	RepeatHold   time.Duration `yaml:"repeat_hold" toml:"repeat_hold"`     // Hold extension per auto-repeat
	RepeatWindow time.Duration `yaml:"repeat_window" toml:"repeat_window"` // Gap between later auto-repeats
}

// AssetsConfig names the files loaded by the window frontend.
type AssetsConfig struct {
	Dir        string  `yaml:"dir" toml:"dir"`
	Background string  `yaml:"background" toml:"background"`
	Ship       string  `yaml:"ship" toml:"ship"`
	Debris     string  `yaml:"debris" toml:"debris"`
	Bullet     string  `yaml:"bullet" toml:"bullet"`
	Font       string  `yaml:"font" toml:"font"`
	FontSize   float64 `yaml:"font_size" toml:"font_size"`
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}

	positive("playfield.width", c.Playfield.Width)
	positive("playfield.height", c.Playfield.Height)
	positive("ship.width", c.Ship.Width)
	positive("ship.height", c.Ship.Height)
	positive("ship.speed", c.Ship.Speed)
	positive("bullets.capacity", c.Bullets.Capacity)
	positive("bullets.width", c.Bullets.Width)
	positive("bullets.height", c.Bullets.Height)
	positive("bullets.speed", c.Bullets.Speed)
	positive("debris.capacity", c.Debris.Capacity)
	positive("debris.min_size", c.Debris.MinSize)
	positive("debris.speed", c.Debris.Speed)

	if c.Ship.BottomMargin < 0 {
		errs = append(errs, fmt.Errorf("ship.bottom_margin must not be negative, got %d", c.Ship.BottomMargin))
	}
	if c.Debris.MaxSize <= c.Debris.MinSize {
		errs = append(errs, fmt.Errorf("debris.max_size (%d) must be greater than debris.min_size (%d)",
			c.Debris.MaxSize, c.Debris.MinSize))
	}
	if c.Playfield.Width < c.Ship.Width || c.Playfield.Height < c.Ship.Height+c.Ship.BottomMargin {
		errs = append(errs, errors.New("playfield must fit the ship and its bottom margin"))
	}
	// Respawn draws x from [0, width-size), so the widest debris needs room to spare.
	if c.Playfield.Width <= c.Debris.MaxSize-1 {
		errs = append(errs, fmt.Errorf("playfield.width (%d) must exceed the largest debris size (%d)",
			c.Playfield.Width, c.Debris.MaxSize-1))
	}
	if c.Timing.TickInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.tick_interval must be positive, got %s", c.Timing.TickInterval))
	}
	if c.Terminal.RepeatDelay < 0 || c.Terminal.RepeatHold < 0 || c.Terminal.RepeatWindow < 0 {
		errs = append(errs, errors.New("terminal hold durations must not be negative"))
	}
	if c.Terminal.RepeatWindow > c.Terminal.RepeatDelay {
		errs = append(errs, fmt.Errorf("terminal.repeat_window (%s) must not exceed terminal.repeat_delay (%s)",
			c.Terminal.RepeatWindow, c.Terminal.RepeatDelay))
	}
	for name, keys := range map[string][]string{
		"left": c.Controls.Left, "right": c.Controls.Right,
		"up": c.Controls.Up, "down": c.Controls.Down,
		"fire": c.Controls.Fire, "quit": c.Controls.Quit,
	} {
		if len(keys) == 0 {
			errs = append(errs, fmt.Errorf("controls.%s needs at least one key", name))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// TicksPerSecond returns the tick rate implied by the interval, rounded.
func (t TimingConfig) TicksPerSecond() int {
	if t.TickInterval <= 0 {
		return 0
	}
	return int((time.Second + t.TickInterval/2) / t.TickInterval)
}
