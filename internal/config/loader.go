package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a configuration file syntax.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// SourceEmbedded is reported by Load when no file was found.
const SourceEmbedded = "embedded"

// fileNames lists the names probed in each search directory, in order.
var fileNames = []string{"config.yaml", "config.yml", "config.toml"}

// FormatFromPath picks a format from the file extension.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("config: unsupported file extension %q (want .yaml, .yml or .toml)", filepath.Ext(path))
	}
}

// ParseFormat validates a user-supplied format name.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(name)) {
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatTOML:
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("config: unknown format %q (want yaml or toml)", name)
	}
}

// Decode parses data on top of cfg, so keys missing from data keep their current values.
func Decode(data []byte, format Format, cfg *Config) error {
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("yaml unmarshal: %w", err)
		}
	case FormatTOML:
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return fmt.Errorf("toml decode: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q", format)
	}
	return nil
}

// Encode renders cfg in the given format.
func Encode(cfg Config, format Format) ([]byte, error) {
	switch format {
	case FormatYAML:
		return yaml.Marshal(cfg)
	case FormatTOML:
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("config: unknown format %q", format)
	}
}

// Load loads and validates the configuration.
// Search order: customPath -> ~/.debris/config.{yaml,yml,toml} -> ./configs/debris.{yaml,yml,toml} -> embedded default.
// Returns the path that was used, or SourceEmbedded.
func Load(customPath string) (Config, string, error) {
	cfg, err := embeddedDefaults()
	if err != nil {
		return cfg, "", err
	}

	// Try custom path first
	if customPath != "" {
		if err := loadFile(customPath, &cfg); err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, cfg.Validate()
	}

	for _, path := range searchPaths() {
		err := loadFile(path, &cfg)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return cfg, path, err
		}
		return cfg, path, cfg.Validate()
	}

	return cfg, SourceEmbedded, cfg.Validate()
}

// embeddedDefaults parses the embedded YAML, falling back to DefaultConfig.
func embeddedDefaults() (Config, error) {
	cfg := DefaultConfig()
	parsed := Config{}
	if err := yaml.Unmarshal(defaultYAML, &parsed); err != nil {
		return cfg, nil // Fallback to hardcoded if embed fails
	}
	return parsed, nil
}

// loadFile reads path and decodes it onto cfg.
func loadFile(path string, cfg *Config) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	if err := Decode(data, format, cfg); err != nil {
		return fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return nil
}

// searchPaths returns candidate config files in priority order.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		for _, name := range fileNames {
			paths = append(paths, filepath.Join(home, ".debris", name))
		}
	}
	for _, name := range fileNames {
		paths = append(paths, filepath.Join("configs", strings.Replace(name, "config", "debris", 1)))
	}
	return paths
}
