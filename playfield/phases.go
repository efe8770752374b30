package playfield

// inputPhase applies the held keys to the falling piece. Horizontal moves and
// rotation are one step per cooldown window; soft drop swaps the gravity
// interval on press and restores it on release.
type inputPhase struct {
	game *Game
}

func (p *inputPhase) Execute(frame *Frame) {
	g := p.game
	in := frame.Input

	if g.state != StateFalling {
		return
	}

	if !g.horizontal.Active() {
		if in.Left {
			g.piece.MoveHorizontal(-1)
			g.horizontal.Activate(frame.Now)
		}
		if in.Right {
			g.piece.MoveHorizontal(1)
			g.horizontal.Activate(frame.Now)
		}
	}

	if !g.rotate.Active() && in.Rotate {
		g.piece.Rotate(-1)
		g.rotate.Activate(frame.Now)
	}

	if !g.softDrop && in.SoftDrop {
		g.softDrop = true
		g.vertical.SetDuration(g.cfg.SoftDropInterval(g.score.FallInterval))
	}
	if g.softDrop && !in.SoftDrop {
		g.softDrop = false
		g.vertical.SetDuration(g.score.FallInterval)
	}
}

// timerPhase advances the gravity and cooldown timers. Gravity may run the
// whole lock chain inline.
type timerPhase struct {
	game *Game
}

func (p *timerPhase) Execute(frame *Frame) {
	g := p.game
	g.vertical.Update(frame.Now)
	g.horizontal.Update(frame.Now)
	g.rotate.Update(frame.Now)
}

// syncPhase recomputes every block's screen position.
type syncPhase struct {
	game *Game
}

func (p *syncPhase) Execute(frame *Frame) {
	p.game.syncBlocks()
}
