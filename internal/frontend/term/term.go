package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/stackfall/playfield"
	"go.uber.org/zap"
)

const (
	defaultHoldWindow = 180 * time.Millisecond
	cellWidth         = 2 // terminal columns per board cell
	boardLeft         = 2
	boardTop          = 1
)

// Previewer exposes upcoming shapes for the side panel.
type Previewer interface {
	Peek() []playfield.ShapeKind
}

type Options struct {
	Preview    Previewer
	HoldWindow time.Duration
	Log        *zap.Logger
}

// Host runs a game in a terminal.
type Host struct {
	screen  tcell.Screen
	game    *playfield.Game
	clock   playfield.Clock
	keys    *keyState
	preview Previewer
	log     *zap.Logger
}

// NewScreen opens the terminal.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return screen, nil
}

// New wraps an initialized screen. clock must be the clock the game was started with.
func New(screen tcell.Screen, game *playfield.Game, clock playfield.Clock, opts Options) *Host {
	if opts.HoldWindow <= 0 {
		opts.HoldWindow = defaultHoldWindow
	}
	if opts.Log == nil {
		opts.Log = zap.NewNop()
	}
	return &Host{
		screen:  screen,
		game:    game,
		clock:   clock,
		keys:    newKeyState(opts.HoldWindow),
		preview: opts.Preview,
		log:     opts.Log,
	}
}

// Run drives the game until the player quits or ctx ends, then restores the terminal.
func (h *Host) Run(ctx context.Context) error {
	defer h.screen.Fini()

	ticker := time.NewTicker(h.game.Config().FrameInterval())
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-done:
				return
			}
		}
	}()

	h.draw()
	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-eventChan:
			if !h.handleEvent(ev) {
				return nil
			}

		case <-ticker.C:
			h.game.Update(h.clock.Now(), h.keys.input(h.clock.Now()))
			h.draw()
		}
	}
}

// handleEvent returns false when the player asked to quit.
func (h *Host) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		a := actionFor(ev.Key(), ev.Rune())
		switch a {
		case actionQuit:
			return false
		case actionRestart:
			if h.game.State() == playfield.StateGameOver {
				h.log.Info("restarting")
				h.keys.reset()
				h.game.Reset(h.clock.Now())
			}
		default:
			h.keys.press(a, h.clock.Now())
		}

	case *tcell.EventResize:
		h.screen.Sync()
	}
	return true
}

func styleFor(b playfield.Block) tcell.Style {
	c := tcell.NewRGBColor(int32(b.Color.R), int32(b.Color.G), int32(b.Color.B))
	return tcell.StyleDefault.Foreground(c)
}

func (h *Host) setCell(x, y int, r rune, style tcell.Style) {
	sx := boardLeft + 1 + x*cellWidth
	sy := boardTop + 1 + y
	for i := 0; i < cellWidth; i++ {
		h.screen.SetContent(sx+i, sy, r, nil, style)
	}
}

func (h *Host) drawText(x, y int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		h.screen.SetContent(x+i, y, r, nil, style)
	}
}

func (h *Host) draw() {
	h.screen.Clear()

	cfg := h.game.Config()
	border := tcell.StyleDefault.Foreground(tcell.ColorGray)
	right := boardLeft + 1 + cfg.Columns*cellWidth
	bottom := boardTop + 1 + cfg.Rows
	for y := boardTop; y <= bottom; y++ {
		h.screen.SetContent(boardLeft, y, '│', nil, border)
		h.screen.SetContent(right, y, '│', nil, border)
	}
	for x := boardLeft; x <= right; x++ {
		h.screen.SetContent(x, bottom, '─', nil, border)
	}
	h.screen.SetContent(boardLeft, bottom, '└', nil, border)
	h.screen.SetContent(right, bottom, '┘', nil, border)

	for b := range h.game.Settled() {
		x, y := b.Pos.Cell()
		h.setCell(x, y, '█', styleFor(b))
	}

	if _, blocks, ok := h.game.Active(); ok {
		drop := h.game.DropDistance()
		for _, b := range blocks {
			if x, y := b.Pos.Cell(); y+drop >= 0 {
				h.setCell(x, y+drop, '░', styleFor(b))
			}
		}
		for _, b := range blocks {
			if x, y := b.Pos.Cell(); y >= 0 {
				h.setCell(x, y, '█', styleFor(b))
			}
		}
	}

	h.drawPanel(right + 3)

	if h.game.State() == playfield.StateGameOver {
		msg := "GAME OVER"
		mid := boardLeft + 1 + (cfg.Columns*cellWidth-len(msg))/2
		h.drawText(mid, boardTop+cfg.Rows/2, msg, tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
		h.drawText(mid-1, boardTop+cfg.Rows/2+2, "r: restart", tcell.StyleDefault)
	}

	h.screen.Show()
}

func (h *Host) drawPanel(x int) {
	score := h.game.Score()
	label := tcell.StyleDefault.Foreground(tcell.ColorGray)
	value := tcell.StyleDefault.Bold(true)

	y := boardTop + 1
	for _, row := range []struct {
		name  string
		value int
	}{
		{"SCORE", score.Score},
		{"LEVEL", score.Level},
		{"LINES", score.Lines},
	} {
		h.drawText(x, y, row.name, label)
		h.drawText(x, y+1, fmt.Sprintf("%d", row.value), value)
		y += 3
	}

	if h.preview != nil {
		h.drawText(x, y, "NEXT", label)
		y += 2
		for _, kind := range h.preview.Peek() {
			def := kind.Def()
			style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(def.Color.R), int32(def.Color.G), int32(def.Color.B)))
			for _, off := range def.Offsets {
				px := x + 2 + int(off.X)*cellWidth
				py := y + 2 + int(off.Y)
				h.screen.SetContent(px, py, '█', nil, style)
				h.screen.SetContent(px+1, py, '█', nil, style)
			}
			y += 5
		}
	}

	h.drawText(x, y+1, "←→ move  ↑ rotate", label)
	h.drawText(x, y+2, "↓ drop   q quit", label)
}
