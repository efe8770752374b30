package term

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/stackfall/playfield"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionFor(t *testing.T) {
	cases := []struct {
		name string
		key  tcell.Key
		r    rune
		want action
	}{
		{"left arrow", tcell.KeyLeft, 0, actionLeft},
		{"vi right", tcell.KeyRune, 'l', actionRight},
		{"wasd rotate", tcell.KeyRune, 'w', actionRotate},
		{"down arrow", tcell.KeyDown, 0, actionSoftDrop},
		{"restart", tcell.KeyRune, 'r', actionRestart},
		{"escape", tcell.KeyEscape, 0, actionQuit},
		{"unbound rune", tcell.KeyRune, 'z', actionNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, actionFor(tc.key, tc.r))
		})
	}
}

func TestKeyStateHoldWindow(t *testing.T) {
	keys := newKeyState(100 * time.Millisecond)

	keys.press(actionLeft, 0)
	assert.Equal(t, playfield.Input{Left: true}, keys.input(50*time.Millisecond))
	assert.Equal(t, playfield.Input{}, keys.input(100*time.Millisecond), "released once the window passes")

	keys.press(actionSoftDrop, 100*time.Millisecond)
	keys.press(actionSoftDrop, 180*time.Millisecond)
	assert.True(t, keys.input(250*time.Millisecond).SoftDrop, "repeats extend the hold")

	keys.press(actionQuit, 0)
	keys.reset()
	assert.Equal(t, playfield.Input{}, keys.input(250*time.Millisecond))
}

func newSimHost(t *testing.T) (*Host, tcell.SimulationScreen, *playfield.ManualClock) {
	t.Helper()

	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(60, 30)

	clock := &playfield.ManualClock{}
	game, err := playfield.NewGame(playfield.DefaultConfig(), playfield.NewFixedProvider(playfield.ShapeI))
	require.NoError(t, err)

	return New(screen, game, clock, Options{}), screen, clock
}

func TestHostDrawsSettledBlocks(t *testing.T) {
	h, screen, clock := newSimHost(t)
	defer screen.Fini()

	for h.game.Grid().Count() == 0 {
		h.game.Update(clock.Advance(200*time.Millisecond), playfield.Input{})
	}
	h.draw()

	// The vertical I locks in column 5, rows 16..19.
	for y := 16; y < 20; y++ {
		r, _, _, _ := screen.GetContent(boardLeft+1+5*cellWidth, boardTop+1+y)
		assert.Equal(t, '█', r, "row %d", y)
	}
	r, _, _, _ := screen.GetContent(boardLeft+1+4*cellWidth, boardTop+1+19)
	assert.Equal(t, ' ', r)
}

func TestHostQuitsOnEscape(t *testing.T) {
	h, screen, _ := newSimHost(t)

	done := make(chan error)
	go func() {
		done <- h.Run(context.Background())
	}()

	time.Sleep(20 * time.Millisecond)
	screen.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("host did not stop on escape")
	}
}
