// Package debugui provides Dear ImGui inspector windows for a running playfield.Game.
// Hosts call Overlay.Render between the backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stackfall/playfield"
)

// Window is one inspector window. Render is called once per frame with the
// seconds elapsed since the previous frame.
type Window interface {
	Render(game *playfield.Game, deltaTime float32)
}

// InputState tracks whether Dear ImGui is consuming mouse or keyboard input.
// Hosts should not forward keys to the game while WantCaptureKeyboard is set.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay renders a set of windows over one game.
type Overlay struct {
	game    *playfield.Game
	windows []Window
	timer   *FrameTimer
	input   InputState
}

// New creates an overlay with the standard inspector windows and subscribes
// the event log to game.
func New(game *playfield.Game) *Overlay {
	o := &Overlay{
		game:  game,
		timer: NewFrameTimer(),
	}
	o.Add(NewPerformanceStats(120))
	o.Add(NewGridInspector())
	o.Add(NewScoreInspector())
	o.Add(NewEventLog(game.Events(), 200))
	o.Add(NewConfigInspector())
	return o
}

func (o *Overlay) Add(w Window) {
	o.windows = append(o.windows, w)
}

// Render updates the input capture state and draws every window.
func (o *Overlay) Render() {
	io := imgui.CurrentIO()
	o.input.WantCaptureMouse = io.WantCaptureMouse()
	o.input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	dt := o.timer.GetDeltaTime()
	for _, w := range o.windows {
		w.Render(o.game, dt)
	}
}

func (o *Overlay) InputState() InputState {
	return o.input
}
