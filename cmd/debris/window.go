package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/debris-shooter/internal/games/debris"
	"github.com/vovakirdan/debris-shooter/internal/platform/window"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start a round in an Ebitengine window sized to the playfield.

Textures and the overlay font are read from "assets" in the config
(two.png, rocket.png, asteroid.png, bullet.png, game_over.ttf by default).
Missing files are logged and drawn as plain shapes.

Examples:
  debris window
  debris window --seed 42 --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func runWindow(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg := loadConfig(logger)
	seed := runtimeConfig(cfg).ResolveSeed()
	logger.Info("round starting", "frontend", "window", "seed", seed)

	if err := window.Run(debris.New(cfg, seed), cfg, logger); err != nil {
		logger.Error("window frontend failed", "error", err)
		closeLog()
		fail("%v", err)
	}
}
