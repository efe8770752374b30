package playfield

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidConfig is wrapped by every error returned from Config.Validate.
var ErrInvalidConfig = errors.New("invalid playfield config")

// Config holds the board dimensions, speeds and scoring rules of a game.
// A Config is copied into the Game on construction and never mutated afterwards.
type Config struct {
	Columns  int
	Rows     int
	CellSize int

	FallInterval   time.Duration
	SoftDropFactor float64
	MoveWait       time.Duration
	RotateWait     time.Duration
	FrameRate      int

	// ScoreTable maps the number of rows cleared by one lock to base points.
	ScoreTable    map[int]int
	LinesPerLevel int
	LevelSpeedup  float64

	// SpawnOffset is added to every shape offset when a piece spawns.
	SpawnOffset Vec2

	// StrictRotationFloor rejects rotations that place a block on row == Rows.
	// The default keeps the looser row > Rows bound.
	StrictRotationFloor bool
}

// DefaultConfig returns the classic 10x20 board settings.
func DefaultConfig() Config {
	const columns = 10
	return Config{
		Columns:        columns,
		Rows:           20,
		CellSize:       40,
		FallInterval:   200 * time.Millisecond,
		SoftDropFactor: 0.3,
		MoveWait:       200 * time.Millisecond,
		RotateWait:     200 * time.Millisecond,
		FrameRate:      60,
		ScoreTable:     map[int]int{1: 40, 2: 100, 3: 300, 4: 1200},
		LinesPerLevel:  10,
		LevelSpeedup:   0.75,
		SpawnOffset:    Vec2{X: columns / 2, Y: -1},
	}
}

// Validate reports the first setting that cannot drive a game.
func (c Config) Validate() error {
	switch {
	case c.Columns < 4:
		return fmt.Errorf("%w: columns must be at least 4, got %d", ErrInvalidConfig, c.Columns)
	case c.Rows < 4:
		return fmt.Errorf("%w: rows must be at least 4, got %d", ErrInvalidConfig, c.Rows)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %d", ErrInvalidConfig, c.CellSize)
	case c.FallInterval <= 0:
		return fmt.Errorf("%w: fall interval must be positive, got %s", ErrInvalidConfig, c.FallInterval)
	case c.MoveWait < 0 || c.RotateWait < 0:
		return fmt.Errorf("%w: input cooldowns must not be negative", ErrInvalidConfig)
	case c.SoftDropFactor <= 0 || c.SoftDropFactor > 1:
		return fmt.Errorf("%w: soft drop factor must be in (0, 1], got %g", ErrInvalidConfig, c.SoftDropFactor)
	case c.LevelSpeedup <= 0 || c.LevelSpeedup > 1:
		return fmt.Errorf("%w: level speedup must be in (0, 1], got %g", ErrInvalidConfig, c.LevelSpeedup)
	case c.LinesPerLevel <= 0:
		return fmt.Errorf("%w: lines per level must be positive, got %d", ErrInvalidConfig, c.LinesPerLevel)
	case c.FrameRate <= 0:
		return fmt.Errorf("%w: frame rate must be positive, got %d", ErrInvalidConfig, c.FrameRate)
	}

	for lines := 1; lines <= 4; lines++ {
		if _, ok := c.ScoreTable[lines]; !ok {
			return fmt.Errorf("%w: score table has no entry for %d lines", ErrInvalidConfig, lines)
		}
	}

	return nil
}

// SoftDropInterval is the vertical timer duration while soft drop is held.
func (c Config) SoftDropInterval(fall time.Duration) time.Duration {
	return scaleDuration(fall, c.SoftDropFactor)
}

// FrameInterval is the wall-clock time between two frames at FrameRate.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FrameRate)
}

func scaleDuration(d time.Duration, factor float64) time.Duration {
	return time.Duration(math.Round(float64(d) * factor))
}
