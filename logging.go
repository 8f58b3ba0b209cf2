package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"gridsnake/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// setupLogging configures the global zerolog logger. The terminal frontend
// owns stderr, so without a log file its logs are dropped.
func setupLogging(cfg config.Config) (func(), error) {
	zerolog.SetGlobalLevel(cfg.LogLevel)

	var (
		out     io.Writer
		closeFn = func() {}
	)
	switch {
	case cfg.LogFile != "":
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeFn = func() { f.Close() }
	case cfg.Frontend == config.FrontendTerminal:
		out = io.Discard
	default:
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	}

	log.Logger = zerolog.New(out).With().Timestamp().Logger()
	return closeFn, nil
}
