package debugui

import (
	"testing"
	"time"

	"github.com/plus3/stackfall/playfield"
)

func TestEventLogKeepsMostRecent(t *testing.T) {
	events := &playfield.Events{}
	log := NewEventLog(events, 3)

	for i := 1; i <= 5; i++ {
		events.Emit(playfield.Event{Kind: playfield.EventLinesCleared, Lines: 1, Score: i * 40})
	}
	events.Flush()

	if len(log.entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(log.entries))
	}
	if log.entries[0].Seq != 3 || log.entries[2].Seq != 5 {
		t.Errorf("expected entries 3..5, got %d..%d", log.entries[0].Seq, log.entries[2].Seq)
	}
}

func TestEventLogFilter(t *testing.T) {
	events := &playfield.Events{}
	log := NewEventLog(events, 10)

	events.Emit(playfield.Event{Kind: playfield.EventSpawned, Shape: playfield.ShapeT})
	events.Emit(playfield.Event{Kind: playfield.EventLocked, Shape: playfield.ShapeT})
	events.Emit(playfield.Event{Kind: playfield.EventLevelUp, Level: 2})
	events.Flush()

	if got := len(log.filtered()); got != 2 {
		t.Errorf("expected spawns hidden by default, got %d entries", got)
	}

	log.hideSpawns = false
	log.filterText = "LEVEL"
	entries := log.filtered()
	if len(entries) != 1 || entries[0].String() != "level-up 2" {
		t.Errorf("expected only the level-up entry, got %v", entries)
	}
}

func TestPerformanceStatsHistory(t *testing.T) {
	ps := NewPerformanceStats(4)
	stats := &playfield.PipelineStats{
		PhaseCount: 1,
		Phases:     []playfield.PhaseStats{{Name: "timerPhase", LastDuration: 2 * time.Millisecond}},
	}

	for _, dt := range []float32{0.010, 0.020, 0.030, 0.040, 0.050} {
		ps.record(dt, stats)
	}

	// The first sample was overwritten by the fifth.
	if avg := ps.averageFrameTime(); avg < 34.9 || avg > 35.1 {
		t.Errorf("expected 35ms average, got %f", avg)
	}

	ordered := ps.ordered(ps.frameHistory)
	if ordered[0] < 19.9 || ordered[0] > 20.1 || ordered[3] < 49.9 || ordered[3] > 50.1 {
		t.Errorf("expected oldest-first samples, got %v", ordered)
	}

	if len(ps.phaseNames) != 1 || ps.phaseHistory["timerPhase"][0] != 2 {
		t.Errorf("expected phase latency in ms, got %v", ps.phaseHistory)
	}
}

func TestFlattenConfig(t *testing.T) {
	lines := flatten(playfield.DefaultConfig())

	values := map[string]string{}
	for _, line := range lines {
		values[line.Name] = line.Value
	}

	cases := map[string]string{
		"Columns":             "10",
		"FallInterval":        "200ms",
		"SoftDropFactor":      "0.3",
		"ScoreTable":          "{1:40 2:100 3:300 4:1200}",
		"SpawnOffset":         "{X:5 Y:-1}",
		"StrictRotationFloor": "false",
	}
	for name, want := range cases {
		if values[name] != want {
			t.Errorf("expected %s=%q, got %q", name, want, values[name])
		}
	}
}
