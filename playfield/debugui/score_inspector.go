package debugui

import (
	"fmt"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stackfall/playfield"
)

// ScoreInspector shows scoring, the lock cycle state and the game timers.
type ScoreInspector struct{}

func NewScoreInspector() *ScoreInspector {
	return &ScoreInspector{}
}

// stateColor highlights the terminal state.
func stateColor(s playfield.State) imgui.Vec4 {
	if s == playfield.StateGameOver {
		return imgui.NewVec4(1.0, 0.3, 0.3, 1.0)
	}
	return imgui.NewVec4(0.0, 1.0, 0.0, 1.0)
}

func (si *ScoreInspector) Render(game *playfield.Game, deltaTime float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(380, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 260), imgui.CondOnce)
	if !imgui.BeginV("Score & Timers", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	state := game.State()
	imgui.TextColored(stateColor(state), state.String())
	if game.SoftDropping() {
		imgui.SameLine()
		imgui.Text("(soft drop)")
	}

	score := game.Score()
	imgui.Separator()
	imgui.Text(fmt.Sprintf("Score: %d", score.Score))
	imgui.Text(fmt.Sprintf("Level: %d", score.Level))
	imgui.Text(fmt.Sprintf("Lines: %d", score.Lines))
	imgui.Text(fmt.Sprintf("Fall Interval: %s", score.FallInterval))

	imgui.Separator()
	for _, timer := range game.Timers() {
		imgui.Text(timer.Name)
		if !timer.Active {
			imgui.SameLine()
			imgui.Text("(idle)")
			continue
		}

		var progress float32
		if timer.Duration > 0 {
			progress = 1 - float32(timer.Remaining)/float32(timer.Duration)
		}
		imgui.ProgressBarV(progress, imgui.NewVec2(-1, 0), fmt.Sprintf("%s / %s", timer.Remaining, timer.Duration))
	}

	imgui.End()
}
