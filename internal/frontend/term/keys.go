package term

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/stackfall/playfield"
)

type action uint8

const (
	actionNone action = iota
	actionLeft
	actionRight
	actionRotate
	actionSoftDrop
	actionRestart
	actionQuit
)

// actionFor maps a key event to a game action. Arrows, WASD and vi keys all
// steer the piece.
func actionFor(key tcell.Key, r rune) action {
	switch key {
	case tcell.KeyLeft:
		return actionLeft
	case tcell.KeyRight:
		return actionRight
	case tcell.KeyUp:
		return actionRotate
	case tcell.KeyDown:
		return actionSoftDrop
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return actionQuit
	case tcell.KeyRune:
		switch r {
		case 'a', 'h':
			return actionLeft
		case 'd', 'l':
			return actionRight
		case 'w', 'k':
			return actionRotate
		case 's', 'j':
			return actionSoftDrop
		case 'r':
			return actionRestart
		case 'q':
			return actionQuit
		}
	}
	return actionNone
}

// keyState emulates held keys. Terminals only report presses, so a key
// counts as held until window has passed without a repeat.
type keyState struct {
	window time.Duration
	until  [actionSoftDrop + 1]time.Duration
}

func newKeyState(window time.Duration) *keyState {
	return &keyState{window: window}
}

func (k *keyState) press(a action, now time.Duration) {
	if a >= actionLeft && a <= actionSoftDrop {
		k.until[a] = now + k.window
	}
}

func (k *keyState) reset() {
	k.until = [actionSoftDrop + 1]time.Duration{}
}

func (k *keyState) held(a action, now time.Duration) bool {
	return now < k.until[a]
}

func (k *keyState) input(now time.Duration) playfield.Input {
	return playfield.Input{
		Left:     k.held(actionLeft, now),
		Right:    k.held(actionRight, now),
		Rotate:   k.held(actionRotate, now),
		SoftDrop: k.held(actionSoftDrop, now),
	}
}
