package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/debris-shooter/internal/config"
	"github.com/vovakirdan/debris-shooter/internal/core"
	"github.com/vovakirdan/debris-shooter/internal/games/debris"
	"github.com/vovakirdan/debris-shooter/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a round in the terminal.

Controls (configurable under "controls"):
  ←/A →/D ↑/W ↓/S  - Move
  Space            - Fire
  Esc/Q/Ctrl+C     - Quit

Terminals do not report key releases, so a key counts as held for a short
while after each press (see "terminal" in the config).

Examples:
  debris play
  debris play --seed 42
  debris play --config ./my-debris.yaml --log-file debris.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	// The alt screen owns the terminal: log to a file or nowhere
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg := loadConfig(logger)
	rt := runtimeConfig(cfg)

	// Get terminal size
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rt.ScreenW = w
		rt.ScreenH = h
	}

	seed := rt.ResolveSeed()
	logger.Info("round starting", "frontend", "terminal", "seed", seed, "size", []int{rt.ScreenW, rt.ScreenH})

	if err := tui.Run(debris.New(cfg, seed), cfg, rt, logger); err != nil {
		logger.Error("terminal frontend failed", "error", err)
		closeLog()
		fail("%v", err)
	}
}

// runtimeConfig builds the per-process settings from flags and configuration.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.TickInterval = cfg.Timing.TickInterval
	rt.Seed = flagSeed
	return rt
}
