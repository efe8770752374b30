package playfield

// EventKind tags what happened during a frame.
type EventKind uint8

const (
	EventSpawned EventKind = iota
	EventLocked
	EventLinesCleared
	EventLevelUp
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventSpawned:
		return "spawned"
	case EventLocked:
		return "locked"
	case EventLinesCleared:
		return "lines-cleared"
	case EventLevelUp:
		return "level-up"
	case EventGameOver:
		return "game-over"
	}
	return "unknown"
}

// Event is a notification about the game, delivered after the frame that
// produced it has finished.
type Event struct {
	Kind  EventKind
	Shape ShapeKind
	Lines int
	Score int
	Level int
}

// Events buffers notifications raised while a frame runs and hands them to
// subscribers at the end of the frame, so listeners never observe a half
// finished lock chain.
type Events struct {
	pending     []Event
	subscribers []func(Event)
	defers      []func()
}

func newEvents() *Events {
	return &Events{}
}

// Subscribe registers fn to receive every flushed event.
func (e *Events) Subscribe(fn func(Event)) {
	e.subscribers = append(e.subscribers, fn)
}

// Emit queues an event for the next flush.
func (e *Events) Emit(ev Event) {
	e.pending = append(e.pending, ev)
}

// Defer queues a function to run after the events of this frame are delivered.
func (e *Events) Defer(fn func()) {
	e.defers = append(e.defers, fn)
}

// Pending returns the events queued so far in this frame.
func (e *Events) Pending() []Event {
	return e.pending
}

// Flush delivers queued events in order, runs deferred functions and resets
// the buffer.
func (e *Events) Flush() {
	for _, ev := range e.pending {
		for _, fn := range e.subscribers {
			fn(ev)
		}
	}

	for _, fn := range e.defers {
		fn()
	}

	e.pending = e.pending[:0]
	e.defers = e.defers[:0]
}
