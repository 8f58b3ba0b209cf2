package config

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/rs/zerolog"
)

func envOf(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestDefaults(t *testing.T) {
	cfg, err := Load(nil, envOf(nil))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Frontend != FrontendWindow {
		t.Errorf("Expected window frontend, got %s", cfg.Frontend)
	}
	if !cfg.Audio.Enabled || cfg.Audio.Volume != 0.5 {
		t.Errorf("Expected audio on at 0.5, got %+v", cfg.Audio)
	}
	if cfg.LogLevel != zerolog.InfoLevel || cfg.FPS != 60 || cfg.Seed != 0 {
		t.Errorf("Unexpected defaults: %+v", cfg)
	}
}

func TestEnvironment(t *testing.T) {
	cfg, err := Load(nil, envOf(map[string]string{
		"SNAKE_UI":        "tui",
		"SNAKE_AUDIO":     "false",
		"SNAKE_VOLUME":    "150",
		"SNAKE_LOG_LEVEL": "debug",
		"SNAKE_LOG_FILE":  "snake.log",
		"SNAKE_SEED":      "42",
		"SNAKE_FPS":       "30",
	}))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Frontend != FrontendTerminal {
		t.Errorf("Expected terminal frontend, got %s", cfg.Frontend)
	}
	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.Audio.Volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %f", cfg.Audio.Volume)
	}
	if cfg.LogLevel != zerolog.DebugLevel || cfg.LogFile != "snake.log" || cfg.Seed != 42 || cfg.FPS != 30 {
		t.Errorf("Unexpected config: %+v", cfg)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := Load(
		[]string{"-ui", "window", "-mute", "-seed", "7", "-volume", "20"},
		envOf(map[string]string{"SNAKE_UI": "terminal", "SNAKE_SEED": "1"}),
	)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Frontend != FrontendWindow || cfg.Seed != 7 || cfg.Audio.Enabled || cfg.Audio.Volume != 0.2 {
		t.Errorf("Expected flags to win, got %+v", cfg)
	}
}

func TestVolumeSurvivesFlagPass(t *testing.T) {
	for _, v := range []string{"29", "57", "58"} {
		cfg, err := Load(nil, envOf(map[string]string{"SNAKE_VOLUME": v}))
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		want, _ := strconv.Atoi(v)
		if cfg.Audio.Volume != float64(want)/100 {
			t.Errorf("SNAKE_VOLUME=%s: expected %v, got %v", v, float64(want)/100, cfg.Audio.Volume)
		}
	}
}

func TestInvalidValues(t *testing.T) {
	if _, err := Load(nil, envOf(map[string]string{"SNAKE_UI": "vr"})); !errors.Is(err, ErrUnknownFrontend) {
		t.Errorf("Expected ErrUnknownFrontend, got %v", err)
	}
	if _, err := Load([]string{"-ui", "web"}, envOf(nil)); !errors.Is(err, ErrUnknownFrontend) {
		t.Errorf("Expected ErrUnknownFrontend from flag, got %v", err)
	}
	if _, err := Load(nil, envOf(map[string]string{"SNAKE_SEED": "-3"})); err == nil {
		t.Error("Expected bad seed to fail")
	}
	if _, err := Load(nil, envOf(map[string]string{"SNAKE_FPS": "0"})); err == nil {
		t.Error("Expected zero fps to fail")
	}
	if _, err := Load([]string{"-board", "40"}, envOf(nil)); err == nil {
		t.Error("Expected unknown flag to fail")
	}
}

func TestLoadEnvFile(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("Expected missing file to be ignored, got %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("SNAKE_TEST_DOTENV=terminal\n"), 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SNAKE_TEST_DOTENV", "")
	os.Unsetenv("SNAKE_TEST_DOTENV")
	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := os.Getenv("SNAKE_TEST_DOTENV"); got != "terminal" {
		t.Errorf("Expected value from .env, got %q", got)
	}
}
