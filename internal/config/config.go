package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/plus3/stackfall/playfield"
)

type Config struct {
	Board   BoardConfig   `toml:"board"`
	Timing  TimingConfig  `toml:"timing"`
	Scoring ScoringConfig `toml:"scoring"`
	Rules   RulesConfig   `toml:"rules"`
	Logging LoggingConfig `toml:"logging"`
	Audio   AudioConfig   `toml:"audio"`
	UI      UIConfig      `toml:"ui"`
}

type BoardConfig struct {
	Columns  int `toml:"columns"`
	Rows     int `toml:"rows"`
	CellSize int `toml:"cell_size"` // pixels per cell in the window host
}

type TimingConfig struct {
	FallInterval   time.Duration `toml:"fall_interval"`
	SoftDropFactor float64       `toml:"soft_drop_factor"` // fall interval multiplier while down is held
	MoveWait       time.Duration `toml:"move_wait"`
	RotateWait     time.Duration `toml:"rotate_wait"`
	FrameRate      int           `toml:"frame_rate"`
}

type ScoringConfig struct {
	Table         map[string]int `toml:"table"` // lines cleared -> base points
	LinesPerLevel int            `toml:"lines_per_level"`
	LevelSpeedup  float64        `toml:"level_speedup"`
}

type RulesConfig struct {
	StrictRotationFloor bool   `toml:"strict_rotation_floor"`
	Randomizer          string `toml:"randomizer"` // "uniform" or "bag"
	Preview             int    `toml:"preview"`
	Seed                uint64 `toml:"seed"` // 0 picks a seed at startup
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"` // 0.0-1.0
}

type UIConfig struct {
	Frontend string `toml:"frontend"` // "ebiten" or "term"
	Debug    bool   `toml:"debug"`
}

// Load reads the TOML file at path over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := Parse(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse overlays TOML data onto cfg.
func Parse(data []byte, cfg *Config) error {
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("unknown key %q", undecoded[0].String())
	}
	return nil
}

func defaults() *Config {
	pf := playfield.DefaultConfig()

	table := make(map[string]int, len(pf.ScoreTable))
	for lines, points := range pf.ScoreTable {
		table[strconv.Itoa(lines)] = points
	}

	return &Config{
		Board: BoardConfig{
			Columns:  pf.Columns,
			Rows:     pf.Rows,
			CellSize: pf.CellSize,
		},
		Timing: TimingConfig{
			FallInterval:   pf.FallInterval,
			SoftDropFactor: pf.SoftDropFactor,
			MoveWait:       pf.MoveWait,
			RotateWait:     pf.RotateWait,
			FrameRate:      pf.FrameRate,
		},
		Scoring: ScoringConfig{
			Table:         table,
			LinesPerLevel: pf.LinesPerLevel,
			LevelSpeedup:  pf.LevelSpeedup,
		},
		Rules: RulesConfig{
			Randomizer: "uniform",
			Preview:    3,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		UI: UIConfig{
			Frontend: "ebiten",
		},
	}
}

// Playfield converts the board, timing, scoring and rules sections into a
// validated playfield.Config.
func (c *Config) Playfield() (playfield.Config, error) {
	table := make(map[int]int, len(c.Scoring.Table))
	for key, points := range c.Scoring.Table {
		lines, err := strconv.Atoi(key)
		if err != nil {
			return playfield.Config{}, fmt.Errorf("%w: score table key %q is not a line count", playfield.ErrInvalidConfig, key)
		}
		table[lines] = points
	}

	pf := playfield.Config{
		Columns:             c.Board.Columns,
		Rows:                c.Board.Rows,
		CellSize:            c.Board.CellSize,
		FallInterval:        c.Timing.FallInterval,
		SoftDropFactor:      c.Timing.SoftDropFactor,
		MoveWait:            c.Timing.MoveWait,
		RotateWait:          c.Timing.RotateWait,
		FrameRate:           c.Timing.FrameRate,
		ScoreTable:          table,
		LinesPerLevel:       c.Scoring.LinesPerLevel,
		LevelSpeedup:        c.Scoring.LevelSpeedup,
		SpawnOffset:         playfield.Vec2{X: float64(c.Board.Columns / 2), Y: -1},
		StrictRotationFloor: c.Rules.StrictRotationFloor,
	}
	if err := pf.Validate(); err != nil {
		return playfield.Config{}, err
	}
	return pf, nil
}

// ShapeProvider builds the next-shape queue described by the rules section.
// A zero seed is replaced by the current time.
func (c *Config) ShapeProvider() (*playfield.Queue, uint64, error) {
	seed := c.Rules.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	rnd, err := playfield.NewRandomizer(c.Rules.Randomizer, seed)
	if err != nil {
		return nil, 0, fmt.Errorf("rules: %w", err)
	}
	return playfield.NewQueue(rnd, c.Rules.Preview), seed, nil
}
