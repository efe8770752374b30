package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/stackfall/internal/config"
	"github.com/plus3/stackfall/playfield"
	"go.uber.org/zap"
)

const sampleRate = beep.SampleRate(44100)

// Player turns game events into short tones on the speaker.
type Player struct {
	log    *zap.Logger
	volume float64
	mixer  *beep.Mixer
	ready  bool
}

func New(cfg config.AudioConfig, log *zap.Logger) *Player {
	return &Player{
		log:    log,
		volume: cfg.Volume,
		mixer:  &beep.Mixer{},
	}
}

// Init opens the speaker. Callers treat a failure as "play silent".
func (p *Player) Init() error {
	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	p.log.Debug("audio ready", zap.Int("sample_rate", int(sampleRate)))
	return nil
}

// Attach subscribes the player to a game's events.
func (p *Player) Attach(events *playfield.Events) {
	events.Subscribe(p.Handle)
}

func (p *Player) Handle(ev playfield.Event) {
	if !p.ready {
		return
	}
	s := Effect(ev, sampleRate)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(newVolume(s, p.volume))
	speaker.Unlock()
}

func (p *Player) Close() {
	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.ready = false
}

// Effect returns the tone for ev, or nil when the event is silent.
func Effect(ev playfield.Event, sr beep.SampleRate) beep.Streamer {
	switch ev.Kind {
	case playfield.EventLocked:
		return tone(sr, 220, 50*time.Millisecond)
	case playfield.EventLinesCleared:
		// One rising note per cleared row.
		notes := make([]beep.Streamer, 0, ev.Lines)
		for i := 0; i < ev.Lines; i++ {
			notes = append(notes, tone(sr, 523.25*math.Pow(2, float64(i)/4), 60*time.Millisecond))
		}
		return beep.Seq(notes...)
	case playfield.EventLevelUp:
		return beep.Seq(
			tone(sr, 659.25, 90*time.Millisecond),
			tone(sr, 880, 90*time.Millisecond),
		)
	case playfield.EventGameOver:
		return beep.Seq(
			tone(sr, 440, 150*time.Millisecond),
			tone(sr, 330, 150*time.Millisecond),
			tone(sr, 220, 300*time.Millisecond),
		)
	}
	return nil
}

func tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sr, freq)
	if err != nil {
		return beep.Silence(sr.N(d))
	}
	return beep.Take(sr.N(d), sine)
}

// math.Log2(0) is -Inf, so zero volume is explicit silence.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
