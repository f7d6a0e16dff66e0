package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/debris.yaml
var defaultYAML []byte

// DefaultConfig returns the hardcoded default configuration.
// It mirrors defaults/debris.yaml and backs it up if the embed fails to parse.
func DefaultConfig() Config {
	return Config{
		Playfield: PlayfieldConfig{
			Width:  700,
			Height: 750,
		},
		Ship: ShipConfig{
			Width:        60,
			Height:       60,
			Speed:        5,
			BottomMargin: 20,
		},
		Bullets: BulletConfig{
			Capacity: 10,
			Width:    20,
			Height:   20,
			Speed:    5,
		},
		Debris: DebrisConfig{
			Capacity: 15,
			MinSize:  20,
			MaxSize:  50,
			Speed:    2,
		},
		Timing: TimingConfig{
			TickInterval: 16 * time.Millisecond,
		},
		Controls: ControlsConfig{
			Left:  []string{"left", "a"},
			Right: []string{"right", "d"},
			Up:    []string{"up", "w"},
			Down:  []string{"down", "s"},
			Fire:  []string{"space"},
			Quit:  []string{"esc", "q", "ctrl+c"},
		},
		Terminal: TerminalConfig{
			RepeatDelay:  700 * time.Millisecond,
			RepeatHold:   100 * time.Millisecond,
			RepeatWindow: 60 * time.Millisecond,
		},
		Assets: AssetsConfig{
			Dir:        ".",
			Background: "two.png",
			Ship:       "rocket.png",
			Debris:     "asteroid.png",
			Bullet:     "bullet.png",
			Font:       "game_over.ttf",
			FontSize:   48,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
