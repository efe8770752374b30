package debugui

import (
	"fmt"
	"image/color"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/stackfall/playfield"
)

type cell struct {
	x, y int
}

// GridInspector draws the settled grid as a table of cells. Clicking a cell
// shows the block stored there.
type GridInspector struct {
	selected *cell
}

func NewGridInspector() *GridInspector {
	return &GridInspector{}
}

func colorVec4(c color.RGBA) imgui.Vec4 {
	return imgui.NewVec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, float32(c.A)/255)
}

func (gi *GridInspector) Render(game *playfield.Game, deltaTime float32) {
	imgui.SetNextWindowPosV(imgui.NewVec2(10, 340), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(360, 520), imgui.CondOnce)
	if !imgui.BeginV("Grid Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	grid := game.Grid()
	imgui.Text(fmt.Sprintf("%dx%d, %d settled", grid.Columns(), grid.Rows(), grid.Count()))
	if full := grid.FullRows(); len(full) > 0 {
		imgui.SameLine()
		imgui.TextColored(imgui.NewVec4(1.0, 0.8, 0.0, 1.0), fmt.Sprintf("full rows %v", full))
	}
	imgui.Separator()

	gi.renderCells(grid, game)

	imgui.Separator()
	gi.renderSelection(grid, game)
	gi.renderActive(game)

	imgui.End()
}

func (gi *GridInspector) renderCells(grid *playfield.Grid, game *playfield.Game) {
	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsSizingFixedFit
	if !imgui.BeginTableV("GridCells", int32(grid.Columns()+1), tableFlags, imgui.NewVec2(0, 0), 0) {
		return
	}

	for y := 0; y < grid.Rows(); y++ {
		imgui.TableNextRow()
		imgui.TableNextColumn()
		imgui.Text(fmt.Sprintf("%2d", y))

		for x := 0; x < grid.Columns(); x++ {
			imgui.TableNextColumn()

			label := "."
			pushed := false
			if b, ok := game.Block(grid.At(x, y)); ok {
				label = "#"
				imgui.PushStyleColorVec4(imgui.ColText, colorVec4(b.Color))
				pushed = true
			}

			isSelected := gi.selected != nil && gi.selected.x == x && gi.selected.y == y
			if imgui.SelectableBoolV(fmt.Sprintf("%s##%d,%d", label, x, y), isSelected, 0, imgui.NewVec2(0, 0)) {
				gi.selected = &cell{x: x, y: y}
			}

			if pushed {
				imgui.PopStyleColor()
			}
		}
	}

	imgui.EndTable()
}

func (gi *GridInspector) renderSelection(grid *playfield.Grid, game *playfield.Game) {
	if gi.selected == nil {
		imgui.Text("No cell selected")
		return
	}

	x, y := gi.selected.x, gi.selected.y
	imgui.Text(fmt.Sprintf("Cell (%d, %d)", x, y))

	id := grid.At(x, y)
	b, ok := game.Block(id)
	if !ok {
		imgui.Text("empty")
		return
	}

	imgui.Indent()
	imgui.Text(fmt.Sprintf("Block ID: %d", id))
	imgui.Text(fmt.Sprintf("Pos: (%.0f, %.0f)", b.Pos.X, b.Pos.Y))
	imgui.Text(fmt.Sprintf("Screen: (%d, %d)", b.Screen.X, b.Screen.Y))
	imgui.TextColored(colorVec4(b.Color), fmt.Sprintf("Color: #%02x%02x%02x", b.Color.R, b.Color.G, b.Color.B))
	imgui.Text(fmt.Sprintf("Locked: %v", b.Locked))
	imgui.Unindent()
}

func (gi *GridInspector) renderActive(game *playfield.Game) {
	kind, blocks, ok := game.Active()
	if !ok {
		return
	}

	if imgui.TreeNodeStr(fmt.Sprintf("Falling %s", kind)) {
		for i, b := range blocks {
			imgui.BulletText(fmt.Sprintf("%d: (%.0f, %.0f)", i, b.Pos.X, b.Pos.Y))
		}
		imgui.Text(fmt.Sprintf("Drop distance: %d", game.DropDistance()))
		imgui.TreePop()
	}
}
