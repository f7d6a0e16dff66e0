// debris is a fixed-timestep space debris shooter for the terminal and the desktop.
//
// Usage:
//
//	debris                   - Play in the terminal (same as "debris play")
//	debris play              - Play in the terminal
//	debris window            - Play in a desktop window
//	debris sim               - Run a headless round driven by a pilot
//	debris pilots            - List built-in pilots
//	debris config            - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (.yaml, .yml or .toml)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/debris-shooter/internal/config"

	// Import pilots to register them
	_ "github.com/vovakirdan/debris-shooter/internal/pilot"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "debris",
	Short: "Space Debris Shooter - dodge and destroy falling debris",
	Long: `Space Debris Shooter is a fixed-timestep arcade shooter. Steer the ship,
shoot the debris falling from the top, and survive as long as you can:
a single hit ends the round.

Available commands:
  play     - Play in the terminal (default)
  window   - Play in a desktop window
  sim      - Run a headless round driven by a pilot
  pilots   - List built-in pilots
  config   - Print the effective configuration

Examples:
  debris
  debris window --seed 42
  debris sim --pilot sweeper --ticks 5000
  debris config --format toml > ~/.debris/config.toml`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config file (.yaml, .yml, .toml)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(pilotsCmd)
	rootCmd.AddCommand(configCmd)
}

// fail prints an error and exits with status 1.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// newLogger creates the process logger. Logs go to --log-file when set,
// otherwise to fallback (stderr, or nowhere while the terminal UI owns the screen).
// The returned closer releases the log file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	out := fallback
	closer := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closer = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "debris",
		Level:           level,
	})
	return logger, closer, nil
}

// loadConfig loads and validates the configuration for the current flags.
func loadConfig(logger *log.Logger) config.Config {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("configuration rejected", "source", source, "error", err)
		fail("%v", err)
	}
	logger.Debug("configuration loaded", "source", source)
	return cfg
}
