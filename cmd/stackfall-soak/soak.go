package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/plus3/stackfall/playfield"
	"go.uber.org/zap"
)

// soaker plays games headlessly with random held keys on a manual clock.
type soaker struct {
	game     *playfield.Game
	clock    *playfield.ManualClock
	rng      *rand.Rand
	log      *zap.Logger
	interval time.Duration

	input  playfield.Input
	pieces int
	frames int64
}

func newSoaker(game *playfield.Game, clock *playfield.ManualClock, seed uint64, log *zap.Logger) *soaker {
	s := &soaker{
		game:     game,
		clock:    clock,
		rng:      rand.New(rand.NewPCG(seed, seed>>1|1)),
		log:      log,
		interval: game.Config().FrameInterval(),
	}
	game.Events().Subscribe(func(ev playfield.Event) {
		if ev.Kind == playfield.EventLocked {
			s.pieces++
		}
	})
	return s
}

// nextInput occasionally changes which keys are held, the way a player would.
func (s *soaker) nextInput() playfield.Input {
	if s.rng.IntN(8) == 0 {
		s.input = playfield.Input{
			Left:     s.rng.IntN(3) == 0,
			Right:    s.rng.IntN(3) == 0,
			Rotate:   s.rng.IntN(4) == 0,
			SoftDrop: s.rng.IntN(3) == 0,
		}
	}
	return s.input
}

// checkGrid verifies that every occupied cell holds a locked block that
// thinks it is in that cell.
func checkGrid(game *playfield.Game) error {
	grid := game.Grid()
	for y := 0; y < grid.Rows(); y++ {
		for x := 0; x < grid.Columns(); x++ {
			id := grid.At(x, y)
			if id == 0 {
				continue
			}
			b, ok := game.Block(id)
			if !ok {
				return fmt.Errorf("cell (%d,%d) holds dead block %d", x, y, id)
			}
			if !b.Locked {
				return fmt.Errorf("cell (%d,%d) holds unlocked block %d", x, y, id)
			}
			if bx, by := b.Pos.Cell(); bx != x || by != y {
				return fmt.Errorf("cell (%d,%d) holds block %d at (%d,%d)", x, y, id, bx, by)
			}
		}
	}
	return nil
}

// run plays until ctx ends or maxGames games have finished (0 means no limit).
func (s *soaker) run(ctx context.Context, maxGames int, report *Report) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		updateStart := time.Now()
		state := s.game.Update(s.clock.Advance(s.interval), s.nextInput())
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(updateStart))
		report.TotalUpdates++
		s.frames++

		if err := checkGrid(s.game); err != nil {
			report.Violations = append(report.Violations, err.Error())
			s.log.Error("grid integrity", zap.Error(err), zap.Int64("frame", report.TotalUpdates))
		}

		if state != playfield.StateGameOver {
			continue
		}

		score := s.game.Score()
		report.Games = append(report.Games, GameResult{
			Score:  score.Score,
			Level:  score.Level,
			Lines:  score.Lines,
			Pieces: s.pieces,
			Frames: s.frames,
		})
		s.log.Debug("game finished",
			zap.Int("game", len(report.Games)),
			zap.Int("score", score.Score),
			zap.Int("lines", score.Lines),
		)

		if maxGames > 0 && len(report.Games) >= maxGames {
			return
		}
		s.pieces, s.frames = 0, 0
		s.game.Reset(s.clock.Now())
	}
}
