package playfield

import "time"

// Timer is a countdown driven by an external clock. Update must be called
// once per frame with the current clock reading.
type Timer struct {
	duration time.Duration
	repeated bool
	fn       func()

	start  time.Duration
	active bool
}

// NewTimer creates an inactive timer. fn may be nil.
func NewTimer(duration time.Duration, repeated bool, fn func()) *Timer {
	return &Timer{
		duration: duration,
		repeated: repeated,
		fn:       fn,
	}
}

// Activate starts the countdown window at now.
func (t *Timer) Activate(now time.Duration) {
	t.active = true
	t.start = now
}

// Deactivate stops the timer; a pending expiry never fires.
func (t *Timer) Deactivate() {
	t.active = false
	t.start = 0
}

// Update fires the callback once the window has elapsed. Repeating timers
// restart their window at now after firing.
func (t *Timer) Update(now time.Duration) {
	if !t.active || now-t.start < t.duration {
		return
	}

	if t.fn != nil {
		t.fn()
	}

	// A callback that deactivated its own timer keeps it stopped.
	if !t.active {
		return
	}

	t.Deactivate()
	if t.repeated {
		t.Activate(now)
	}
}

// SetDuration takes effect on the next Update without reactivation.
func (t *Timer) SetDuration(d time.Duration) {
	t.duration = d
}

func (t *Timer) Duration() time.Duration {
	return t.duration
}

func (t *Timer) Active() bool {
	return t.active
}

func (t *Timer) Repeated() bool {
	return t.repeated
}

// Remaining is the time left in the current window, zero when inactive.
func (t *Timer) Remaining(now time.Duration) time.Duration {
	if !t.active {
		return 0
	}
	left := t.duration - (now - t.start)
	if left < 0 {
		return 0
	}
	return left
}
