package playfield_test

import (
	"fmt"
	"time"

	"github.com/plus3/stackfall/playfield"
)

func ExampleGame() {
	cfg := playfield.DefaultConfig()
	cfg.Columns, cfg.Rows = 4, 6
	cfg.SpawnOffset = playfield.Vec2{X: 1, Y: -1}

	game, err := playfield.NewGame(cfg, playfield.NewFixedProvider(playfield.ShapeO))
	if err != nil {
		panic(err)
	}

	locks := 0
	game.Events().Subscribe(func(ev playfield.Event) {
		switch ev.Kind {
		case playfield.EventLocked:
			locks++
		case playfield.EventLinesCleared:
			fmt.Printf("lines=%d score=%d level=%d\n", ev.Lines, ev.Score, ev.Level)
		}
	})

	clock := &playfield.ManualClock{}
	for i, in := range []playfield.Input{{Left: true}, {Right: true}} {
		game.Update(clock.Advance(10*time.Millisecond), in)
		for locks <= i {
			game.Update(clock.Advance(cfg.FallInterval), playfield.Input{})
		}
	}

	fmt.Println(game.State(), game.Grid().Count())
	// Output:
	// lines=2 score=100 level=1
	// falling 0
}

func ExampleTimer() {
	fired := 0
	timer := playfield.NewTimer(100*time.Millisecond, true, func() { fired++ })
	timer.Activate(0)

	for now := time.Duration(0); now <= 500*time.Millisecond; now += 50 * time.Millisecond {
		timer.Update(now)
	}
	fmt.Println(fired, timer.Active())
	// Output: 5 true
}
