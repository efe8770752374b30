package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/plus3/stackfall/internal/config"
	"github.com/plus3/stackfall/internal/logging"
	"github.com/plus3/stackfall/playfield"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the soak should run for.")
	maxGames := flag.Int("games", 0, "Stop after this many finished games (0 for no limit).")
	cfgPath := flag.String("config", "", "Path to a TOML config file.")
	seed := flag.Uint64("seed", 0, "Seed for shapes and input (0 picks one).")
	randomizer := flag.String("randomizer", "", "Override the randomizer: uniform or bag.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *seed != 0 {
		cfg.Rules.Seed = *seed
	}
	if *randomizer != "" {
		cfg.Rules.Randomizer = *randomizer
	}

	log, err := logging.New(cfg.Logging)
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

	clock := &playfield.ManualClock{}
	game, err := playfield.NewGame(pf, queue, playfield.WithLogger(log.Named("playfield").WithOptions(zap.IncreaseLevel(zap.WarnLevel))))
	if err != nil {
		return fmt.Errorf("new game: %w", err)
	}

	report := &Report{
		Duration:       *duration,
		MaxGames:       *maxGames,
		Seed:           shapeSeed,
		Randomizer:     cfg.Rules.Randomizer,
		Columns:        pf.Columns,
		Rows:           pf.Rows,
		GCPauseMetrics: *gcPauseMetrics,
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info("soak started", zap.Duration("duration", *duration), zap.Uint64("seed", shapeSeed))
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	newSoaker(game, clock, shapeSeed, log).run(ctx, *maxGames, report)

	report.TotalTime = time.Since(startTime)
	report.SimulatedTime = clock.Now()
	report.UpdateTime.Finalize()
	report.Phases = game.Stats().Phases
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info("soak finished",
		zap.Int64("updates", report.TotalUpdates),
		zap.Int("games", len(report.Games)),
		zap.Int("violations", len(report.Violations)),
	)

	fmt.Println("\n\n--- Soak Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	fmt.Println("--- End of Report ---")

	if len(report.Violations) > 0 {
		return fmt.Errorf("%d grid integrity violations", len(report.Violations))
	}
	return nil
}
