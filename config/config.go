package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"gridsnake/audio"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Frontend selects how the game is shown.
type Frontend string

const (
	FrontendWindow   Frontend = "window"
	FrontendTerminal Frontend = "terminal"
)

var ErrUnknownFrontend = errors.New("unknown frontend")

// Config is the runtime configuration. Board size is fixed and not part of it.
type Config struct {
	Frontend Frontend
	Audio    audio.Config
	LogLevel zerolog.Level
	LogFile  string
	Seed     uint64 // 0 picks a time based seed
	FPS      int
}

func Default() Config {
	return Config{
		Frontend: FrontendWindow,
		Audio:    audio.DefaultConfig(),
		LogLevel: zerolog.InfoLevel,
		FPS:      60,
	}
}

// LoadEnvFile reads a .env file into the process environment. A missing file is fine.
func LoadEnvFile(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// Load builds a Config from defaults, then environment, then command-line flags.
func Load(args []string, getenv func(string) string) (Config, error) {
	cfg := Default()
	if getenv == nil {
		getenv = os.Getenv
	}
	if err := cfg.applyEnv(getenv); err != nil {
		return cfg, err
	}
	if err := cfg.applyFlags(args); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := getenv("SNAKE_UI"); v != "" {
		f, err := ParseFrontend(v)
		if err != nil {
			return err
		}
		c.Frontend = f
	}

	if v := getenv("SNAKE_AUDIO"); v != "" {
		enabled, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("SNAKE_AUDIO: %w", err)
		}
		c.Audio.Enabled = enabled
	}

	// Volume is given as 0-100
	if v := getenv("SNAKE_VOLUME"); v != "" {
		vol, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SNAKE_VOLUME: %w", err)
		}
		c.Audio.Volume = clampVolume(vol)
	}

	if v := getenv("SNAKE_LOG_LEVEL"); v != "" {
		lvl, err := zerolog.ParseLevel(v)
		if err != nil {
			return fmt.Errorf("SNAKE_LOG_LEVEL: %w", err)
		}
		c.LogLevel = lvl
	}

	if v := getenv("SNAKE_LOG_FILE"); v != "" {
		c.LogFile = v
	}

	if v := getenv("SNAKE_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("SNAKE_SEED: %w", err)
		}
		c.Seed = seed
	}

	if v := getenv("SNAKE_FPS"); v != "" {
		fps, err := strconv.Atoi(v)
		if err != nil || fps <= 0 {
			return fmt.Errorf("SNAKE_FPS: invalid value %q", v)
		}
		c.FPS = fps
	}
	return nil
}

func (c *Config) applyFlags(args []string) error {
	fset := flag.NewFlagSet("snake", flag.ContinueOnError)
	fset.SetOutput(io.Discard)

	ui := fset.String("ui", string(c.Frontend), "Frontend: window or terminal")
	mute := fset.Bool("mute", !c.Audio.Enabled, "Disable sound effects")
	volume := fset.Int("volume", int(math.Round(c.Audio.Volume*100)), "Sound volume 0-100")
	level := fset.String("log-level", c.LogLevel.String(), "Log level")
	logFile := fset.String("log-file", c.LogFile, "Write logs to this file")
	seed := fset.Uint64("seed", c.Seed, "Food placement seed (0 = random)")
	fps := fset.Int("fps", c.FPS, "Frame rate of the render loop")

	if err := fset.Parse(args); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	f, err := ParseFrontend(*ui)
	if err != nil {
		return err
	}
	lvl, err := zerolog.ParseLevel(*level)
	if err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	if *fps <= 0 {
		return fmt.Errorf("fps: invalid value %d", *fps)
	}

	c.Frontend = f
	c.Audio.Enabled = !*mute
	c.Audio.Volume = clampVolume(*volume)
	c.LogLevel = lvl
	c.LogFile = *logFile
	c.Seed = *seed
	c.FPS = *fps
	return nil
}

func ParseFrontend(s string) (Frontend, error) {
	switch Frontend(strings.ToLower(strings.TrimSpace(s))) {
	case FrontendWindow, "gui", "raylib":
		return FrontendWindow, nil
	case FrontendTerminal, "tui", "tty":
		return FrontendTerminal, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFrontend, s)
	}
}

func clampVolume(v int) float64 {
	if v < 0 {
		v = 0
	}
	if v > 100 {
		v = 100
	}
	return float64(v) / 100.0
}
