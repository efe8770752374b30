package ebitenui

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stackfall/playfield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func held(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, key := range keys {
			if key == k {
				return true
			}
		}
		return false
	}
}

func TestInputFrom(t *testing.T) {
	cases := []struct {
		name string
		keys []ebiten.Key
		want playfield.Input
	}{
		{"nothing held", nil, playfield.Input{}},
		{"arrows", []ebiten.Key{ebiten.KeyLeft, ebiten.KeyDown}, playfield.Input{Left: true, SoftDrop: true}},
		{"wasd", []ebiten.Key{ebiten.KeyD, ebiten.KeyW}, playfield.Input{Right: true, Rotate: true}},
		{"both directions", []ebiten.Key{ebiten.KeyA, ebiten.KeyRight}, playfield.Input{Left: true, Right: true}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inputFrom(held(tc.keys...)))
		})
	}
}

func TestHostLayout(t *testing.T) {
	game, err := playfield.NewGame(playfield.DefaultConfig(), playfield.NewFixedProvider(playfield.ShapeT))
	require.NoError(t, err)

	h := New(game, playfield.NewMonotonicClock(), Options{})

	w, ht := h.Layout(1920, 1080)
	assert.Equal(t, margin*3+10*40+panelWidth, w)
	assert.Equal(t, margin*2+20*40, ht)
}
