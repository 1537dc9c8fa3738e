package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeConfig(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("MkdirAll() failed: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	return path
}

// isolate points HOME and the working directory at an empty temp dir so the
// implicit search path finds nothing.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	return dir
}

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	isolate(t)

	cfg, err := LoadSmash("")
	if err != nil {
		t.Fatalf("LoadSmash() failed: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultSmashConfig()) {
		t.Errorf("embedded defaults differ from DefaultSmashConfig():\n got  %+v\n want %+v", cfg, DefaultSmashConfig())
	}
}

func TestDefaultRoundParameters(t *testing.T) {
	cfg := DefaultSmashConfig()

	if cfg.Round.TimeLimitMs != 120000 {
		t.Errorf("TimeLimitMs = %d, expected 120000", cfg.Round.TimeLimitMs)
	}
	if cfg.Obstacles.InitialCount != 3 {
		t.Errorf("InitialCount = %d, expected 3", cfg.Obstacles.InitialCount)
	}
	if !reflect.DeepEqual(cfg.Obstacles.Speeds, []int{1, 2}) {
		t.Errorf("Speeds = %v, expected [1 2]", cfg.Obstacles.Speeds)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	dir := isolate(t)
	path := writeConfig(t, dir, "custom.yaml", "round:\n  time_limit_ms: 30000\n")

	cfg, err := LoadSmash(path)
	if err != nil {
		t.Fatalf("LoadSmash() failed: %v", err)
	}
	if cfg.Round.TimeLimitMs != 30000 {
		t.Errorf("TimeLimitMs = %d, expected 30000", cfg.Round.TimeLimitMs)
	}
	// Unspecified sections keep their defaults
	if cfg.Field.Width != 240 || cfg.Obstacles.InitialCount != 3 {
		t.Errorf("partial config should keep defaults, got %+v", cfg)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	dir := isolate(t)

	if _, err := LoadSmash(filepath.Join(dir, "nope.yaml")); err == nil {
		t.Error("LoadSmash() with a missing custom path should fail")
	}
}

func TestLoadCustomPathInvalid(t *testing.T) {
	dir := isolate(t)

	tests := []struct {
		name    string
		body    string
		invalid bool // wraps ErrInvalidConfig rather than a YAML error
	}{
		{"malformed yaml", "field: [1, 2", false},
		{"zero time limit", "round:\n  time_limit_ms: 0\n", true},
		{"empty speeds", "obstacles:\n  speeds: []\n", true},
		{"negative speed", "obstacles:\n  speeds: [-1]\n", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, dir, tc.name+".yaml", tc.body)
			_, err := LoadSmash(path)
			if err == nil {
				t.Fatal("LoadSmash() should fail")
			}
			if errors.Is(err, ErrInvalidConfig) != tc.invalid {
				t.Errorf("errors.Is(err, ErrInvalidConfig) = %v, expected %v (err: %v)", !tc.invalid, tc.invalid, err)
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	dir := isolate(t)

	writeConfig(t, dir, filepath.Join("configs", configFileName), "round:\n  time_limit_ms: 5000\n")
	cfg, err := LoadSmash("")
	if err != nil {
		t.Fatalf("LoadSmash() failed: %v", err)
	}
	if cfg.Round.TimeLimitMs != 5000 {
		t.Errorf("local config should be used, TimeLimitMs = %d", cfg.Round.TimeLimitMs)
	}

	// User config wins over the local one
	writeConfig(t, dir, filepath.Join(".arcade", "configs", configFileName), "round:\n  time_limit_ms: 7000\n")
	cfg, err = LoadSmash("")
	if err != nil {
		t.Fatalf("LoadSmash() failed: %v", err)
	}
	if cfg.Round.TimeLimitMs != 7000 {
		t.Errorf("user config should win, TimeLimitMs = %d", cfg.Round.TimeLimitMs)
	}
}

func TestLoadSearchPathSkipsBrokenFiles(t *testing.T) {
	dir := isolate(t)
	writeConfig(t, dir, filepath.Join(".arcade", "configs", configFileName), "round:\n  time_limit_ms: -1\n")

	cfg, err := LoadSmash("")
	if err != nil {
		t.Fatalf("LoadSmash() failed: %v", err)
	}
	if cfg.Round.TimeLimitMs != 120000 {
		t.Errorf("broken user config should be skipped, TimeLimitMs = %d", cfg.Round.TimeLimitMs)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*SmashConfig)
	}{
		{"zero field", func(c *SmashConfig) { c.Field.Width = 0 }},
		{"zero actor", func(c *SmashConfig) { c.Actor.Height = 0 }},
		{"obstacle larger than field", func(c *SmashConfig) { c.Obstacles.Width = 300 }},
		{"speed larger than sprite", func(c *SmashConfig) { c.Obstacles.Speeds = []int{1, 40} }},
		{"no initial obstacles", func(c *SmashConfig) { c.Obstacles.InitialCount = 0 }},
		{"volume out of range", func(c *SmashConfig) { c.Audio.Volume = 1.5 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultSmashConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}
