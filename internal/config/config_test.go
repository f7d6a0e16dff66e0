package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestEmbeddedMatchesHardcoded(t *testing.T) {
	cfg, err := embeddedDefaults()
	if err != nil {
		t.Fatalf("embeddedDefaults() error: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Errorf("embedded YAML and DefaultConfig() differ:\n%+v\n%+v", cfg, DefaultConfig())
	}
}

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"zero ship width", func(c *Config) { c.Ship.Width = 0 }, "ship.width"},
		{"inverted debris sizes", func(c *Config) { c.Debris.MinSize, c.Debris.MaxSize = 50, 20 }, "debris.max_size"},
		{"equal debris sizes", func(c *Config) { c.Debris.MaxSize = c.Debris.MinSize }, "debris.max_size"},
		{"narrow playfield", func(c *Config) { c.Playfield.Width = 40 }, "playfield"},
		{"zero interval", func(c *Config) { c.Timing.TickInterval = 0 }, "timing.tick_interval"},
		{"no fire key", func(c *Config) { c.Controls.Fire = nil }, "controls.fire"},
		{"negative margin", func(c *Config) { c.Ship.BottomMargin = -1 }, "bottom_margin"},
		{"zero bullet capacity", func(c *Config) { c.Bullets.Capacity = 0 }, "bullets.capacity"},
		{"repeat window past delay", func(c *Config) { c.Terminal.RepeatWindow = time.Second }, "terminal.repeat_window"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q should mention %q", err, tc.want)
			}
		})
	}
}

func TestTicksPerSecond(t *testing.T) {
	tests := []struct {
		interval time.Duration
		want     int
	}{
		{16 * time.Millisecond, 63},
		{time.Second / 60, 60},
		{time.Second, 1},
		{0, 0},
	}
	for _, tc := range tests {
		got := TimingConfig{TickInterval: tc.interval}.TicksPerSecond()
		if got != tc.want {
			t.Errorf("TicksPerSecond(%s) = %d, expected %d", tc.interval, got, tc.want)
		}
	}
}

func TestLoadCustomYAMLPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := "ship:\n  speed: 9\ntiming:\n  tick_interval: 20ms\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, source, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if source != path {
		t.Errorf("source = %q, expected %q", source, path)
	}
	if cfg.Ship.Speed != 9 {
		t.Errorf("Ship.Speed = %d, expected 9", cfg.Ship.Speed)
	}
	if cfg.Timing.TickInterval != 20*time.Millisecond {
		t.Errorf("TickInterval = %s, expected 20ms", cfg.Timing.TickInterval)
	}
	// Untouched keys keep defaults
	if cfg.Ship.Width != 60 || cfg.Debris.Capacity != 15 {
		t.Errorf("partial file should keep defaults, got ship.width=%d debris.capacity=%d",
			cfg.Ship.Width, cfg.Debris.Capacity)
	}
}

func TestLoadCustomTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.toml")
	data := `
[debris]
capacity = 4
speed = 3

[controls]
fire = ["space", "f"]
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Debris.Capacity != 4 || cfg.Debris.Speed != 3 {
		t.Errorf("debris = %+v, expected capacity 4 speed 3", cfg.Debris)
	}
	if !reflect.DeepEqual(cfg.Controls.Fire, []string{"space", "f"}) {
		t.Errorf("Controls.Fire = %v", cfg.Controls.Fire)
	}
	if cfg.Debris.MinSize != 20 {
		t.Errorf("Debris.MinSize = %d, expected default 20", cfg.Debris.MinSize)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom file should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("ship: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(bad); err == nil {
		t.Error("malformed YAML should fail")
	}

	ini := filepath.Join(dir, "config.ini")
	if err := os.WriteFile(ini, []byte("x=1"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(ini); err == nil || !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("unsupported extension should fail, got %v", err)
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("ship:\n  speed: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(invalid); err == nil || !strings.Contains(err.Error(), "ship.speed") {
		t.Errorf("invalid values should fail validation, got %v", err)
	}
}

func TestLoadSearchPath(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Chdir(work)

	// Nothing on disk: embedded defaults
	cfg, source, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if source != SourceEmbedded {
		t.Errorf("source = %q, expected %q", source, SourceEmbedded)
	}
	if !reflect.DeepEqual(cfg, DefaultConfig()) {
		t.Error("embedded load should equal defaults")
	}

	// Local configs directory is picked up
	if err := os.MkdirAll("configs", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join("configs", "debris.toml"), []byte("[ship]\nspeed = 7\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, source, err = Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if source != filepath.Join("configs", "debris.toml") || cfg.Ship.Speed != 7 {
		t.Errorf("expected local TOML config, got source=%q speed=%d", source, cfg.Ship.Speed)
	}

	// User config wins over the local one
	userDir := filepath.Join(home, ".debris")
	if err := os.MkdirAll(userDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(userDir, "config.yaml"), []byte("ship:\n  speed: 3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, source, err = Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if source != filepath.Join(userDir, "config.yaml") || cfg.Ship.Speed != 3 {
		t.Errorf("expected user YAML config, got source=%q speed=%d", source, cfg.Ship.Speed)
	}
}

func TestEncodeYAMLRoundTrip(t *testing.T) {
	want := DefaultConfig()
	want.Ship.Speed = 11

	data, err := Encode(want, FormatYAML)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	if !strings.Contains(string(data), "tick_interval: 16ms") {
		t.Errorf("durations should be written as strings:\n%s", data)
	}

	var got Config
	if err := Decode(data, FormatYAML, &got); err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n%+v\n%+v", got, want)
	}
}

func TestEncodeTOML(t *testing.T) {
	data, err := Encode(DefaultConfig(), FormatTOML)
	if err != nil {
		t.Fatalf("Encode() error: %v", err)
	}
	for _, section := range []string{"[playfield]", "[ship]", "[controls]", "[assets]"} {
		if !strings.Contains(string(data), section) {
			t.Errorf("TOML output missing %s:\n%s", section, data)
		}
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"yaml": FormatYAML, "YML": FormatYAML, "toml": FormatTOML} {
		got, err := ParseFormat(in)
		if err != nil || got != want {
			t.Errorf("ParseFormat(%q) = %q, %v; expected %q", in, got, err, want)
		}
	}
	if _, err := ParseFormat("json"); err == nil {
		t.Error("ParseFormat(json) should fail")
	}
}
