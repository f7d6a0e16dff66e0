package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/debris-shooter/internal/config"
)

var configFormat string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, after the search path
and --config are applied. The output is a complete file that can be
edited and passed back with --config.

Search path (first match wins):
  ~/.debris/config.yaml, ~/.debris/config.yml, ~/.debris/config.toml,
  ./configs/debris.yaml, ./configs/debris.yml, ./configs/debris.toml,
  then the built-in defaults

Examples:
  debris config
  debris config --format toml > debris.toml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&configFormat, "format", "yaml", "Output format: yaml or toml")
}

func runConfig(cmd *cobra.Command, args []string) {
	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	format, err := config.ParseFormat(configFormat)
	if err != nil {
		fail("%v", err)
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		fail("%v", err)
	}

	data, err := config.Encode(cfg, format)
	if err != nil {
		fail("%v", err)
	}
	logger.Debug("configuration encoded", "source", source, "format", configFormat)

	fmt.Printf("# loaded from: %s\n", source)
	os.Stdout.Write(data)
}
