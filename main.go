package main

import (
	"fmt"
	"os"
	"time"

	"gridsnake/audio"
	"gridsnake/config"
	"gridsnake/game"
	"gridsnake/ui"
	"gridsnake/ui/terminal"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

func main() {
	if err := config.LoadEnvFile(".env"); err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
	}

	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(2)
	}

	closeLog, err := setupLogging(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "snake: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("snake exited")
	}
}

func run(cfg config.Config) error {
	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	g := game.NewGame(rand.NewSource(seed))

	sfx := audio.NewPlayer(cfg.Audio)
	if err := sfx.Init(); err != nil {
		// Non-fatal, game can run without sound
		log.Warn().Err(err).Msg("audio unavailable")
	}
	defer sfx.Close()

	log.Info().
		Str("ui", string(cfg.Frontend)).
		Uint64("seed", seed).
		Bool("audio", cfg.Audio.Enabled).
		Msg("starting snake")

	switch cfg.Frontend {
	case config.FrontendTerminal:
		return runTerminal(g, sfx, cfg.FPS)
	default:
		ui.NewApp(g, sfx, cfg.FPS).Run("Snake")
		return nil
	}
}

func runTerminal(g *game.Game, sfx *audio.Player, fps int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	terminal.New(screen, g, sfx, fps).Run()
	return nil
}
