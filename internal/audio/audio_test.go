package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/plus3/stackfall/internal/config"
	"github.com/plus3/stackfall/playfield"
	"go.uber.org/zap"
)

func drain(s beep.Streamer) (total int, peak float64) {
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			return total, peak
		}
	}
}

func TestEffectDurations(t *testing.T) {
	sr := beep.SampleRate(44100)

	cases := []struct {
		name string
		ev   playfield.Event
		want time.Duration
	}{
		{"lock click", playfield.Event{Kind: playfield.EventLocked}, 50 * time.Millisecond},
		{"single clear", playfield.Event{Kind: playfield.EventLinesCleared, Lines: 1}, 60 * time.Millisecond},
		{"tetris clear", playfield.Event{Kind: playfield.EventLinesCleared, Lines: 4}, 240 * time.Millisecond},
		{"level up", playfield.Event{Kind: playfield.EventLevelUp}, 180 * time.Millisecond},
		{"game over", playfield.Event{Kind: playfield.EventGameOver}, 600 * time.Millisecond},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Effect(tc.ev, sr)
			if s == nil {
				t.Fatal("expected a streamer")
			}

			total, peak := drain(s)
			if total != sr.N(tc.want) {
				t.Errorf("expected %d samples, got %d", sr.N(tc.want), total)
			}
			if peak > 1.0 {
				t.Errorf("expected samples within [-1, 1], got peak %f", peak)
			}
		})
	}
}

func TestEffectSilentEvents(t *testing.T) {
	if s := Effect(playfield.Event{Kind: playfield.EventSpawned}, sampleRate); s != nil {
		t.Error("expected spawn to be silent")
	}
}

func TestNewVolumeMutes(t *testing.T) {
	s := newVolume(Effect(playfield.Event{Kind: playfield.EventLocked}, sampleRate), 0)

	total, peak := drain(s)
	if total == 0 {
		t.Fatal("expected muted stream to keep its length")
	}
	if peak != 0 {
		t.Errorf("expected silence, got peak %f", peak)
	}
}

func TestPlayerIgnoresEventsBeforeInit(t *testing.T) {
	p := New(config.AudioConfig{Enabled: true, Volume: 0.5}, zap.NewNop())
	p.Handle(playfield.Event{Kind: playfield.EventGameOver})
	p.Close()

	if p.mixer.Len() != 0 {
		t.Errorf("expected nothing queued, got %d streamers", p.mixer.Len())
	}
}
