package playfield_test

import (
	"testing"

	"github.com/plus3/stackfall/playfield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBagRandomizerDealsEveryShape(t *testing.T) {
	rnd := playfield.NewBagRandomizer(7)

	for round := 0; round < 3; round++ {
		seen := map[playfield.ShapeKind]int{}
		for i := 0; i < len(playfield.Shapes); i++ {
			seen[rnd.Draw()]++
		}
		for _, kind := range playfield.Shapes {
			assert.Equal(t, 1, seen[kind], "round %d shape %s", round, kind)
		}
	}
}

func TestRandomizersAreSeeded(t *testing.T) {
	for _, name := range []string{"uniform", "bag"} {
		t.Run(name, func(t *testing.T) {
			a, err := playfield.NewRandomizer(name, 42)
			require.NoError(t, err)
			b, err := playfield.NewRandomizer(name, 42)
			require.NoError(t, err)

			for i := 0; i < 50; i++ {
				kind := a.Draw()
				assert.True(t, kind.Valid())
				assert.Equal(t, kind, b.Draw(), "draw %d", i)
			}
		})
	}
}

func TestNewRandomizerUnknown(t *testing.T) {
	_, err := playfield.NewRandomizer("gaussian", 1)
	assert.Error(t, err)
}

func TestQueuePreview(t *testing.T) {
	q := playfield.NewQueue(playfield.NewBagRandomizer(3), 3)

	preview := q.Peek()
	require.Len(t, preview, 3)

	assert.Equal(t, preview[0], q.NextShape())
	assert.Equal(t, preview[1:], q.Peek()[:2], "preview shifts forward by one")

	preview[0] = 99
	assert.NotEqual(t, playfield.ShapeKind(99), q.Peek()[0], "Peek returns a copy")
}

func TestFixedProviderRepeatsLast(t *testing.T) {
	p := playfield.NewFixedProvider(playfield.ShapeO, playfield.ShapeT)

	assert.Equal(t, playfield.ShapeO, p.NextShape())
	assert.Equal(t, playfield.ShapeT, p.NextShape())
	assert.Equal(t, playfield.ShapeT, p.NextShape())
}

func TestParseShape(t *testing.T) {
	kind, err := playfield.ParseShape("l")
	require.NoError(t, err)
	assert.Equal(t, playfield.ShapeL, kind)

	_, err = playfield.ParseShape("X")
	assert.Error(t, err)
}
