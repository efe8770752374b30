package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/plus3/stackfall/internal/audio"
	"github.com/plus3/stackfall/internal/config"
	"github.com/plus3/stackfall/internal/frontend/ebitenui"
	"github.com/plus3/stackfall/internal/frontend/term"
	"github.com/plus3/stackfall/internal/logging"
	"github.com/plus3/stackfall/playfield"
	"go.uber.org/zap"
)

// termLogFile receives logs while the terminal frontend owns the screen.
const termLogFile = "stackfall.log"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", "", "Path to a TOML config file.")
	ui := flag.String("ui", "", "Frontend to run: ebiten or term.")
	debug := flag.Bool("debug", false, "Show the inspector overlay (ebiten only).")
	seed := flag.Uint64("seed", 0, "Seed for the shape randomizer (0 picks one).")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *ui != "" {
		cfg.UI.Frontend = *ui
	}
	if *debug {
		cfg.UI.Debug = true
	}
	if *seed != 0 {
		cfg.Rules.Seed = *seed
	}

	var log *zap.Logger
	switch cfg.UI.Frontend {
	case "ebiten":
		log, err = logging.New(cfg.Logging)
	case "term":
		log, err = logging.ToFile(cfg.Logging, termLogFile)
	default:
		return fmt.Errorf("unknown frontend %q", cfg.UI.Frontend)
	}
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	pf, err := cfg.Playfield()
	if err != nil {
		return fmt.Errorf("playfield config: %w", err)
	}
	queue, shapeSeed, err := cfg.ShapeProvider()
	if err != nil {
		return err
	}

	clock := playfield.NewMonotonicClock()
	game, err := playfield.NewGame(pf, queue,
		playfield.WithLogger(log.Named("playfield")),
		playfield.WithStartTime(clock.Now()),
	)
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}
	log.Info("game started",
		zap.String("frontend", cfg.UI.Frontend),
		zap.String("randomizer", cfg.Rules.Randomizer),
		zap.Uint64("seed", shapeSeed),
	)

	if cfg.Audio.Enabled {
		player := audio.New(cfg.Audio, log.Named("audio"))
		if err := player.Init(); err != nil {
			log.Warn("audio disabled", zap.Error(err))
		} else {
			player.Attach(game.Events())
			defer player.Close()
		}
	}

	if cfg.UI.Frontend == "term" {
		screen, err := term.NewScreen()
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return term.New(screen, game, clock, term.Options{
			Preview: queue,
			Log:     log.Named("term"),
		}).Run(ctx)
	}

	return ebitenui.New(game, clock, ebitenui.Options{
		Title:   "Stackfall",
		Debug:   cfg.UI.Debug,
		Preview: queue,
		Log:     log.Named("ebiten"),
	}).Run()
}
