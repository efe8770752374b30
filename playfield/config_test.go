package playfield_test

import (
	"testing"
	"time"

	"github.com/plus3/stackfall/playfield"
	"github.com/stretchr/testify/assert"
)

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		modify func(*playfield.Config)
		ok     bool
	}{
		{"defaults", func(*playfield.Config) {}, true},
		{"narrow board", func(c *playfield.Config) { c.Columns = 3 }, false},
		{"short board", func(c *playfield.Config) { c.Rows = 2 }, false},
		{"zero cell size", func(c *playfield.Config) { c.CellSize = 0 }, false},
		{"zero fall interval", func(c *playfield.Config) { c.FallInterval = 0 }, false},
		{"negative move wait", func(c *playfield.Config) { c.MoveWait = -time.Millisecond }, false},
		{"zero rotate wait", func(c *playfield.Config) { c.RotateWait = 0 }, true},
		{"soft drop slower than gravity", func(c *playfield.Config) { c.SoftDropFactor = 1.5 }, false},
		{"level speedup of zero", func(c *playfield.Config) { c.LevelSpeedup = 0 }, false},
		{"no lines per level", func(c *playfield.Config) { c.LinesPerLevel = 0 }, false},
		{"zero frame rate", func(c *playfield.Config) { c.FrameRate = 0 }, false},
		{"score table missing tetris", func(c *playfield.Config) { delete(c.ScoreTable, 4) }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := playfield.DefaultConfig()
			tc.modify(&cfg)

			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, playfield.ErrInvalidConfig)
			}
		})
	}
}

func TestConfigIntervals(t *testing.T) {
	cfg := playfield.DefaultConfig()

	assert.Equal(t, 60*time.Millisecond, cfg.SoftDropInterval(cfg.FallInterval))
	assert.Equal(t, 45*time.Millisecond, cfg.SoftDropInterval(150*time.Millisecond))
	assert.Equal(t, time.Second/60, cfg.FrameInterval())
}
