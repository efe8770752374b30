package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stackfall/playfield"
)

// ConfigInspector is a read-only view of the settings the game runs with.
type ConfigInspector struct {
	lines []fieldLine
}

func NewConfigInspector() *ConfigInspector {
	return &ConfigInspector{}
}

func (ci *ConfigInspector) Render(game *playfield.Game, deltaTime float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(380, 600), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(320, 260), imgui.CondOnce)
	if !imgui.BeginV("Config", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	// Config never changes after the game is built.
	if ci.lines == nil {
		ci.lines = flatten(game.Config())
	}

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("ConfigTable", 2, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Field")
		imgui.TableSetupColumn("Value")
		imgui.TableHeadersRow()

		for _, line := range ci.lines {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			for i := 0; i < line.Depth; i++ {
				imgui.Indent()
			}
			imgui.Text(line.Name)
			for i := 0; i < line.Depth; i++ {
				imgui.Unindent()
			}
			imgui.TableNextColumn()
			if !line.Header {
				imgui.Text(line.Value)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}
