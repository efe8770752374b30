package ebitenui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/stackfall/playfield"
	debugui_ebiten "github.com/plus3/stackfall/playfield/debugui/ebiten"
	"go.uber.org/zap"
)

const (
	margin     = 20
	panelWidth = 180
	debugWidth = 720
)

var (
	backgroundColor = color.RGBA{18, 18, 24, 255}
	boardColor      = color.RGBA{30, 30, 40, 255}
	borderColor     = color.RGBA{90, 90, 110, 255}
	ghostColor      = color.RGBA{255, 255, 255, 50}
	gameOverShade   = color.RGBA{0, 0, 0, 160}
)

// Previewer exposes upcoming shapes for the side panel.
type Previewer interface {
	Peek() []playfield.ShapeKind
}

type Options struct {
	Title   string
	Debug   bool
	Preview Previewer
	Log     *zap.Logger
}

// Host runs a game in an ebiten window.
type Host struct {
	game    *playfield.Game
	clock   *playfield.MonotonicClock
	preview Previewer
	overlay *debugui_ebiten.Overlay
	log     *zap.Logger
	title   string

	cellSize      int
	width, height int
}

// New prepares a host for game. clock must be the clock the game was started with.
func New(game *playfield.Game, clock *playfield.MonotonicClock, opts Options) *Host {
	cfg := game.Config()
	h := &Host{
		game:     game,
		clock:    clock,
		preview:  opts.Preview,
		log:      opts.Log,
		title:    opts.Title,
		cellSize: cfg.CellSize,
		width:    margin*3 + cfg.Columns*cfg.CellSize + panelWidth,
		height:   margin*2 + cfg.Rows*cfg.CellSize,
	}
	if h.log == nil {
		h.log = zap.NewNop()
	}
	if opts.Debug {
		h.width += debugWidth
		h.overlay = debugui_ebiten.NewOverlay(game, opts.Title, h.width, h.height)
	}
	return h
}

// Run blocks until the window is closed or the player quits.
func (h *Host) Run() error {
	ebiten.SetWindowSize(h.width, h.height)
	ebiten.SetWindowTitle(h.title)
	ebiten.SetTPS(h.game.Config().FrameRate)

	if err := ebiten.RunGame(h); err != nil {
		return fmt.Errorf("run window: %w", err)
	}
	return nil
}

// inputFrom maps held keys to game input. Arrows and WASD both work.
func inputFrom(pressed func(ebiten.Key) bool) playfield.Input {
	return playfield.Input{
		Left:     pressed(ebiten.KeyLeft) || pressed(ebiten.KeyA),
		Right:    pressed(ebiten.KeyRight) || pressed(ebiten.KeyD),
		Rotate:   pressed(ebiten.KeyUp) || pressed(ebiten.KeyW),
		SoftDrop: pressed(ebiten.KeyDown) || pressed(ebiten.KeyS),
	}
}

func (h *Host) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	now := h.clock.Now()
	if h.game.State() == playfield.StateGameOver && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		h.log.Info("restarting")
		h.game.Reset(now)
	}

	var in playfield.Input
	if h.overlay == nil || !h.overlay.WantsKeyboard() {
		in = inputFrom(ebiten.IsKeyPressed)
	}
	h.game.Update(now, in)

	if h.overlay != nil {
		h.overlay.Update()
	}
	return nil
}

func (h *Host) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	cfg := h.game.Config()
	boardW := float32(cfg.Columns * h.cellSize)
	boardH := float32(cfg.Rows * h.cellSize)
	vector.DrawFilledRect(screen, margin, margin, boardW, boardH, boardColor, false)
	vector.StrokeRect(screen, margin-1, margin-1, boardW+2, boardH+2, 2, borderColor, false)

	for b := range h.game.Settled() {
		h.drawBlock(screen, b.Screen.X, b.Screen.Y, b.Color)
	}

	if _, blocks, ok := h.game.Active(); ok {
		drop := h.game.DropDistance() * h.cellSize
		for _, b := range blocks {
			h.drawBlock(screen, b.Screen.X, b.Screen.Y+drop, ghostColor)
		}
		for _, b := range blocks {
			h.drawBlock(screen, b.Screen.X, b.Screen.Y, b.Color)
		}
	}

	h.drawPanel(screen, margin*2+int(boardW))

	if h.game.State() == playfield.StateGameOver {
		vector.DrawFilledRect(screen, margin, margin, boardW, boardH, gameOverShade, false)
		ebitenutil.DebugPrintAt(screen, "GAME OVER", margin+int(boardW)/2-27, margin+int(boardH)/2-10)
		ebitenutil.DebugPrintAt(screen, "Press R to restart", margin+int(boardW)/2-54, margin+int(boardH)/2+10)
	}

	if h.overlay != nil {
		h.overlay.Draw(screen)
	}
}

// drawBlock draws one cell at board pixel coordinates. Cells above the top
// row are not visible.
func (h *Host) drawBlock(screen *ebiten.Image, x, y int, c color.Color) {
	if y < 0 {
		return
	}
	size := float32(h.cellSize)
	vector.DrawFilledRect(screen, float32(margin+x)+1, float32(margin+y)+1, size-2, size-2, c, false)
}

func (h *Host) drawPanel(screen *ebiten.Image, x int) {
	score := h.game.Score()
	lines := []string{
		"SCORE", fmt.Sprintf("%d", score.Score), "",
		"LEVEL", fmt.Sprintf("%d", score.Level), "",
		"LINES", fmt.Sprintf("%d", score.Lines), "",
	}
	for i, line := range lines {
		ebitenutil.DebugPrintAt(screen, line, x, margin+i*16)
	}

	if h.preview == nil {
		return
	}

	y := margin + len(lines)*16
	ebitenutil.DebugPrintAt(screen, "NEXT", x, y)
	y += 24

	const previewCell = 16
	for _, kind := range h.preview.Peek() {
		def := kind.Def()
		for _, off := range def.Offsets {
			px := float32(x + 2*previewCell + int(off.X)*previewCell)
			py := float32(y + 2*previewCell + int(off.Y)*previewCell)
			vector.DrawFilledRect(screen, px, py, previewCell-1, previewCell-1, def.Color, false)
		}
		y += 5 * previewCell
	}
}

func (h *Host) Layout(outsideWidth, outsideHeight int) (int, int) {
	if h.overlay != nil {
		h.overlay.Layout(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return h.width, h.height
}
