package playfield

import (
	"fmt"
	"iter"
	"time"

	"go.uber.org/zap"
)

// State is the phase of the lock cycle the game is in.
type State uint8

const (
	StateSpawned State = iota
	StateFalling
	StateLocking
	StateCleared
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateSpawned:
		return "spawned"
	case StateFalling:
		return "falling"
	case StateLocking:
		return "locking"
	case StateCleared:
		return "cleared"
	case StateGameOver:
		return "game-over"
	}
	return fmt.Sprintf("State(%d)", s)
}

// Option configures optional collaborators of a Game.
type Option func(*Game)

// WithLogger routes game diagnostics to log.
func WithLogger(log *zap.Logger) Option {
	return func(g *Game) {
		g.log = log
	}
}

// WithScoreSink registers the observer notified after every scoring update.
func WithScoreSink(sink ScoreSink) Option {
	return func(g *Game) {
		g.sink = sink
	}
}

// WithStartTime sets the clock reading the first gravity window starts at.
func WithStartTime(now time.Duration) Option {
	return func(g *Game) {
		g.now = now
	}
}

// Game owns the settled grid, the falling piece, scoring and the timers that
// drive them. All methods must be called from a single goroutine.
type Game struct {
	cfg      Config
	log      *zap.Logger
	provider ShapeProvider
	sink     ScoreSink

	arena *Arena
	grid  *Grid
	piece *Tetromino

	state    State
	score    Score
	now      time.Duration
	softDrop bool

	vertical   *Timer
	horizontal *Timer
	rotate     *Timer

	events   *Events
	pipeline *Pipeline
}

// NewGame validates cfg, spawns the first piece from provider and starts gravity.
func NewGame(cfg Config, provider ShapeProvider, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if provider == nil {
		return nil, fmt.Errorf("%w: nil shape provider", ErrInvalidConfig)
	}

	g := &Game{
		cfg:      cfg,
		log:      zap.NewNop(),
		provider: provider,
		arena:    NewArena(cfg.Columns*cfg.Rows + 4),
		grid:     NewGrid(cfg.Columns, cfg.Rows),
		events:   newEvents(),
		pipeline: NewPipeline(),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.vertical = NewTimer(cfg.FallInterval, true, g.moveDown)
	g.horizontal = NewTimer(cfg.MoveWait, false, nil)
	g.rotate = NewTimer(cfg.RotateWait, false, nil)

	g.pipeline.Register(&inputPhase{game: g})
	g.pipeline.Register(&timerPhase{game: g})
	g.pipeline.Register(&syncPhase{game: g})

	g.Reset(g.now)
	return g, nil
}

// Reset discards the field and score and starts a new game at now.
func (g *Game) Reset(now time.Duration) {
	g.now = now
	g.arena.Clear()
	g.grid.Reset()
	g.piece = nil
	g.score = NewScore(g.cfg)
	g.softDrop = false

	g.vertical.SetDuration(g.score.FallInterval)
	g.horizontal.Deactivate()
	g.rotate.Deactivate()

	g.spawn()
	g.vertical.Activate(now)
	g.syncBlocks()

	g.log.Debug("game started", zap.Int("columns", g.cfg.Columns), zap.Int("rows", g.cfg.Rows))
}

// Update runs one frame: input, timers (which may move, lock, clear and
// respawn), then block screen sync. Events raised during the frame are
// delivered before Update returns. Once the game is over Update does nothing.
func (g *Game) Update(now time.Duration, in Input) State {
	if g.state == StateGameOver {
		return g.state
	}

	g.now = now
	g.pipeline.Once(&Frame{
		Now:    now,
		Input:  in,
		Events: g.events,
	})
	return g.state
}

func (g *Game) setState(s State) {
	g.state = s
}

// spawn is the Spawned -> Falling transition.
func (g *Game) spawn() {
	g.setState(StateSpawned)

	kind := g.provider.NextShape()
	if !kind.Valid() {
		panic(fmt.Sprintf("playfield: shape provider returned %v", kind))
	}

	g.piece = NewTetromino(kind, g.cfg.SpawnOffset, g.arena, g.grid, g.cfg.StrictRotationFloor, g.handleLock)
	g.events.Emit(Event{Kind: EventSpawned, Shape: kind})

	g.setState(StateFalling)
}

func (g *Game) moveDown() {
	if g.state != StateFalling {
		return
	}
	g.piece.MoveDown()
}

// handleLock runs the chain after a piece has been written into the grid:
// game over check, row clear, scoring and respawn.
func (g *Game) handleLock() {
	g.setState(StateLocking)

	kind := g.piece.Kind()
	g.events.Emit(Event{Kind: EventLocked, Shape: kind})
	g.log.Debug("piece locked", zap.Stringer("shape", kind))

	if g.lockedAboveField() {
		g.endGame()
		return
	}
	g.discardBelowFloor()

	cleared := g.clearRows()
	g.setState(StateCleared)
	if cleared > 0 {
		g.applyScore(cleared)
	}

	g.spawn()
}

func (g *Game) lockedAboveField() bool {
	for _, id := range g.piece.Ids() {
		if b := g.arena.Get(id); b != nil && b.Pos.Y < 0 {
			return true
		}
	}
	return false
}

// discardBelowFloor drops locked blocks the grid cannot hold. Only reachable
// through the loose rotation floor.
func (g *Game) discardBelowFloor() {
	for _, id := range g.piece.Ids() {
		b := g.arena.Get(id)
		if b == nil {
			continue
		}
		if _, y := b.Pos.Cell(); y >= g.cfg.Rows {
			g.log.Warn("discarding block locked below the floor", zap.Float64("x", b.Pos.X), zap.Float64("y", b.Pos.Y))
			g.arena.Delete(id)
		}
	}
}

func (g *Game) endGame() {
	g.setState(StateGameOver)
	g.vertical.Deactivate()
	g.horizontal.Deactivate()
	g.rotate.Deactivate()

	g.events.Emit(Event{
		Kind:  EventGameOver,
		Lines: g.score.Lines,
		Score: g.score.Score,
		Level: g.score.Level,
	})
	g.log.Info("game over",
		zap.Int("score", g.score.Score),
		zap.Int("level", g.score.Level),
		zap.Int("lines", g.score.Lines),
	)
}

// clearRows removes every full row, shifts the surviving blocks down by the
// number of cleared rows beneath them and rebuilds the grid from the arena.
func (g *Game) clearRows() int {
	full := g.grid.FullRows()
	if len(full) == 0 {
		return 0
	}

	for _, y := range full {
		for x := 0; x < g.cfg.Columns; x++ {
			g.arena.Delete(g.grid.At(x, y))
		}
	}

	for _, b := range g.arena.All() {
		if !b.Locked {
			continue
		}
		_, y := b.Pos.Cell()
		linesBelow := 0
		for _, clearedY := range full {
			if clearedY > y {
				linesBelow++
			}
		}
		b.Pos.Y += float64(linesBelow)
	}

	g.grid.Rebuild(g.arena)

	g.log.Debug("rows cleared", zap.Ints("rows", full))
	return len(full)
}

func (g *Game) applyScore(lines int) {
	leveledUp := g.score.Apply(lines, g.cfg)

	g.events.Emit(Event{
		Kind:  EventLinesCleared,
		Lines: lines,
		Score: g.score.Score,
		Level: g.score.Level,
	})

	if leveledUp {
		g.vertical.SetDuration(g.score.FallInterval)
		g.events.Emit(Event{Kind: EventLevelUp, Level: g.score.Level, Score: g.score.Score, Lines: g.score.Lines})
		g.log.Info("level up",
			zap.Int("level", g.score.Level),
			zap.Duration("fall_interval", g.score.FallInterval),
		)
	}

	if g.sink != nil {
		g.sink.UpdateScore(g.score.Lines, g.score.Score, g.score.Level)
	}
}

func (g *Game) syncBlocks() {
	for _, b := range g.arena.All() {
		b.syncScreen(g.cfg.CellSize)
	}
}

// Config returns the settings the game was built with.
func (g *Game) Config() Config {
	return g.cfg
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Score() Score {
	return g.score
}

// Grid exposes the settled field for rendering. Callers must not modify it.
func (g *Game) Grid() *Grid {
	return g.grid
}

// Events is where hosts subscribe to lock, clear and game over notifications.
func (g *Game) Events() *Events {
	return g.events
}

// Active returns the falling piece. ok is false once the game is over.
func (g *Game) Active() (kind ShapeKind, blocks [4]Block, ok bool) {
	if g.piece == nil || g.state == StateGameOver {
		return 0, blocks, false
	}
	return g.piece.Kind(), g.piece.Blocks(), true
}

// Block looks up a live block by id.
func (g *Game) Block(id BlockId) (Block, bool) {
	b := g.arena.Get(id)
	if b == nil {
		return Block{}, false
	}
	return *b, true
}

// BlockCount is the number of live blocks, falling piece included.
func (g *Game) BlockCount() int {
	return g.arena.Len()
}

// Settled iterates the locked blocks in row-major order.
func (g *Game) Settled() iter.Seq[Block] {
	return func(yield func(Block) bool) {
		for y := 0; y < g.grid.Rows(); y++ {
			for x := 0; x < g.grid.Columns(); x++ {
				id := g.grid.At(x, y)
				if id == 0 {
					continue
				}
				if b := g.arena.Get(id); b != nil && !yield(*b) {
					return
				}
			}
		}
	}
}

// DropDistance is how far the falling piece would travel before locking.
func (g *Game) DropDistance() int {
	if g.piece == nil || g.state == StateGameOver {
		return 0
	}
	return g.piece.DropDistance()
}

// SoftDropping reports whether the faster gravity interval is in effect.
func (g *Game) SoftDropping() bool {
	return g.softDrop
}

// Stats returns per-phase timing of the frame pipeline.
func (g *Game) Stats() *PipelineStats {
	return g.pipeline.Stats()
}

// TimerInfo is a read-only view of one of the game timers.
type TimerInfo struct {
	Name      string
	Active    bool
	Duration  time.Duration
	Remaining time.Duration
}

// Timers reports the gravity, horizontal and rotation timers as of the last frame.
func (g *Game) Timers() []TimerInfo {
	named := []struct {
		name  string
		timer *Timer
	}{
		{"vertical_move", g.vertical},
		{"horizontal_move", g.horizontal},
		{"rotate", g.rotate},
	}

	out := make([]TimerInfo, len(named))
	for i, n := range named {
		out[i] = TimerInfo{
			Name:      n.name,
			Active:    n.timer.Active(),
			Duration:  n.timer.Duration(),
			Remaining: n.timer.Remaining(g.now),
		}
	}
	return out
}
