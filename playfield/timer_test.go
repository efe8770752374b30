package playfield_test

import (
	"testing"
	"time"

	"github.com/plus3/stackfall/playfield"
)

func TestTimer(t *testing.T) {
	const ms = time.Millisecond

	t.Run("one-shot fires once at duration", func(t *testing.T) {
		fired := 0
		timer := playfield.NewTimer(100*ms, false, func() { fired++ })
		timer.Activate(0)

		timer.Update(50 * ms)
		timer.Update(99 * ms)
		if fired != 0 {
			t.Errorf("expected no fire before duration, got %d", fired)
		}

		timer.Update(100 * ms)
		if fired != 1 {
			t.Errorf("expected 1 fire at duration, got %d", fired)
		}
		if timer.Active() {
			t.Error("expected one-shot timer to be inactive after firing")
		}

		timer.Update(500 * ms)
		if fired != 1 {
			t.Errorf("expected inactive timer not to fire again, got %d", fired)
		}
	})

	t.Run("repeating timer restarts its window", func(t *testing.T) {
		fired := 0
		timer := playfield.NewTimer(100*ms, true, func() { fired++ })
		timer.Activate(0)

		timer.Update(120 * ms)
		if fired != 1 || !timer.Active() {
			t.Fatalf("expected fire and reactivation, got fired=%d active=%v", fired, timer.Active())
		}

		timer.Update(200 * ms)
		if fired != 1 {
			t.Errorf("expected window to restart at 120ms, got %d fires", fired)
		}

		timer.Update(220 * ms)
		if fired != 2 {
			t.Errorf("expected second fire at 220ms, got %d", fired)
		}
	})

	t.Run("deactivate cancels pending expiry", func(t *testing.T) {
		fired := 0
		timer := playfield.NewTimer(100*ms, true, func() { fired++ })
		timer.Activate(0)
		timer.Deactivate()

		timer.Update(1000 * ms)
		if fired != 0 {
			t.Errorf("expected no fire after deactivate, got %d", fired)
		}
		if timer.Remaining(1000*ms) != 0 {
			t.Errorf("expected zero remaining on inactive timer, got %s", timer.Remaining(1000*ms))
		}
	})

	t.Run("duration change applies without reactivation", func(t *testing.T) {
		fired := 0
		timer := playfield.NewTimer(200*ms, true, func() { fired++ })
		timer.Activate(0)

		timer.SetDuration(60 * ms)
		timer.Update(60 * ms)
		if fired != 1 {
			t.Errorf("expected shortened duration to fire at 60ms, got %d", fired)
		}
		if timer.Duration() != 60*ms {
			t.Errorf("expected duration 60ms, got %s", timer.Duration())
		}
	})

	t.Run("callback may stop a repeating timer", func(t *testing.T) {
		var timer *playfield.Timer
		timer = playfield.NewTimer(10*ms, true, func() { timer.Deactivate() })
		timer.Activate(0)

		timer.Update(10 * ms)
		if timer.Active() {
			t.Error("expected timer stopped by its callback to stay inactive")
		}
	})

	t.Run("nil callback still cycles", func(t *testing.T) {
		timer := playfield.NewTimer(200*ms, false, nil)
		timer.Activate(5 * ms)
		if got := timer.Remaining(105 * ms); got != 100*ms {
			t.Errorf("expected 100ms remaining, got %s", got)
		}

		timer.Update(205 * ms)
		if timer.Active() {
			t.Error("expected cooldown to expire")
		}
	})
}
