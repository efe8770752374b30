package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/stackfall/playfield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	pf, err := cfg.Playfield()
	require.NoError(t, err)
	assert.Equal(t, playfield.DefaultConfig(), pf)
	assert.Equal(t, "ebiten", cfg.UI.Frontend)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadOverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stackfall.toml")
	err := os.WriteFile(path, []byte(`
[board]
columns = 12

[timing]
fall_interval = "500ms"

[scoring.table]
4 = 800

[rules]
randomizer = "bag"
seed = 99
strict_rotation_floor = true

[logging]
format = "json"
`), 0o644)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)

	pf, err := cfg.Playfield()
	require.NoError(t, err)

	assert.Equal(t, 12, pf.Columns)
	assert.Equal(t, 20, pf.Rows, "unset keys keep their defaults")
	assert.Equal(t, 500*time.Millisecond, pf.FallInterval)
	assert.Equal(t, map[int]int{1: 40, 2: 100, 3: 300, 4: 800}, pf.ScoreTable)
	assert.Equal(t, playfield.Vec2{X: 6, Y: -1}, pf.SpawnOffset)
	assert.True(t, pf.StrictRotationFloor)
	assert.Equal(t, "json", cfg.Logging.Format)

	queue, seed, err := cfg.ShapeProvider()
	require.NoError(t, err)
	assert.Equal(t, uint64(99), seed)
	assert.Len(t, queue.Peek(), 3)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name string
		body string
	}{
		{"malformed toml", "[board\ncolumns = 1"},
		{"unknown key", "[board]\nwidth = 10"},
		{"wrong type", "[board]\ncolumns = \"ten\""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".toml")
			require.NoError(t, os.WriteFile(path, []byte(tc.body), 0o644))

			_, err := Load(path)
			assert.ErrorContains(t, err, "parse config")
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "absent.toml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestPlayfieldRejectsInvalidValues(t *testing.T) {
	cfg := defaults()
	cfg.Board.Rows = 1
	_, err := cfg.Playfield()
	assert.ErrorIs(t, err, playfield.ErrInvalidConfig)

	cfg = defaults()
	cfg.Scoring.Table["four"] = 1200
	_, err = cfg.Playfield()
	assert.ErrorIs(t, err, playfield.ErrInvalidConfig)
}

func TestShapeProviderUnknownRandomizer(t *testing.T) {
	cfg := defaults()
	cfg.Rules.Randomizer = "gaussian"

	_, _, err := cfg.ShapeProvider()
	assert.Error(t, err)
}
