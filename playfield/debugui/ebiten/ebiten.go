// Package ebiten hosts the playfield debug overlay inside an Ebiten game loop.
package ebiten

import (
	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stackfall/playfield"
	"github.com/plus3/stackfall/playfield/debugui"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// Overlay pairs the backend with the inspector windows for one game. Call
// Update from ebiten.Game.Update, Draw last in ebiten.Game.Draw and Layout
// from ebiten.Game.Layout.
type Overlay struct {
	backend ImguiBackend
	windows *debugui.Overlay
}

// NewOverlay creates the ImGui window state. The caller still owns the ebiten
// window; title and size are only recorded by the backend.
func NewOverlay(game *playfield.Game, title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	return &Overlay{
		backend: ImguiBackend{EbitenBackend: backend},
		windows: debugui.New(game),
	}
}

func (o *Overlay) Update() {
	o.backend.BeginFrame()
	o.windows.Render()
	o.backend.EndFrame()
}

func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

func (o *Overlay) Layout(outsideWidth, outsideHeight int) {
	o.backend.Layout(outsideWidth, outsideHeight)
}

// WantsKeyboard reports whether an ImGui widget has keyboard focus.
func (o *Overlay) WantsKeyboard() bool {
	return o.windows.InputState().WantCaptureKeyboard
}
