package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/debris-shooter/internal/games/debris"
	"github.com/vovakirdan/debris-shooter/internal/pacing"
	"github.com/vovakirdan/debris-shooter/internal/pilot"
	"github.com/vovakirdan/debris-shooter/internal/platform/headless"
)

var (
	simTicks    int
	simPilot    string
	simRealtime bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless round driven by a pilot",
	Long: `Run a round without a display. A pilot supplies the input for every tick:
either a built-in pilot (see "debris pilots") or a Lua script exposing a
pilot(state) function.

The round runs on a virtual clock unless --realtime is set, and the
summary is printed as YAML.

Examples:
  debris sim
  debris sim --pilot sweeper --ticks 10000 --seed 7
  debris sim --pilot configs/pilots/dodger.lua --realtime`,
	Args: cobra.NoArgs,
	Run:  runSim,
}

func init() {
	simCmd.Flags().IntVar(&simTicks, "ticks", 3600, "Stop after this many ticks (0 = until game over)")
	simCmd.Flags().StringVar(&simPilot, "pilot", "gunner", "Built-in pilot ID or path to a .lua script")
	simCmd.Flags().BoolVar(&simRealtime, "realtime", false, "Pace ticks on the wall clock")
}

func runSim(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	cfg := loadConfig(logger)

	p, err := pilot.Open(simPilot)
	if err != nil {
		fail("%v", err)
	}
	if c, ok := p.(io.Closer); ok {
		defer c.Close()
	}

	seed := runtimeConfig(cfg).ResolveSeed()
	opts := headless.Options{
		MaxTicks: simTicks,
		Interval: cfg.Timing.TickInterval,
		Logger:   logger,
	}
	if simRealtime {
		opts.Clock = pacing.SystemClock{}
	}

	logger.Info("simulation starting", "pilot", p.ID(), "seed", seed, "max_ticks", simTicks)
	res, err := headless.New(debris.New(cfg, seed), p, opts).Run()
	if err != nil {
		logger.Error("simulation aborted", "tick", res.Ticks, "error", err)
		closeLog()
		fail("%v", err)
	}
	logger.Info("simulation finished", "ticks", res.Ticks, "score", res.Snapshot.Score, "status", res.Snapshot.Status)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(res); err != nil {
		fail("encode result: %v", err)
	}
	enc.Close()
}
