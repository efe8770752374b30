package ebiten_test

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/stackfall/playfield"
	debugui_ebiten "github.com/plus3/stackfall/playfield/debugui/ebiten"
)

// Game runs a playfield with the inspector overlay drawn on top.
type Game struct {
	game    *playfield.Game
	clock   *playfield.MonotonicClock
	overlay *debugui_ebiten.Overlay
}

func (g *Game) Update() error {
	in := playfield.Input{}
	if !g.overlay.WantsKeyboard() {
		in.Left = ebiten.IsKeyPressed(ebiten.KeyLeft)
		in.Right = ebiten.IsKeyPressed(ebiten.KeyRight)
	}
	g.game.Update(g.clock.Now(), in)

	g.overlay.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Draw the board
	// ...

	// Draw ImGui overlay on top
	g.overlay.Draw(screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.overlay.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

func Example() {
	clock := playfield.NewMonotonicClock()
	game, err := playfield.NewGame(playfield.DefaultConfig(),
		playfield.NewQueue(playfield.NewBagRandomizer(uint64(time.Now().UnixNano())), 3),
		playfield.WithStartTime(clock.Now()),
	)
	if err != nil {
		panic(err)
	}

	host := &Game{
		game:    game,
		clock:   clock,
		overlay: debugui_ebiten.NewOverlay(game, "stackfall debug", 1280, 900),
	}

	if err := ebiten.RunGame(host); err != nil {
		panic(err)
	}
}
