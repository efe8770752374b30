package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/stackfall/playfield"
)

type Report struct {
	// Configuration
	Duration   time.Duration
	MaxGames   int
	Seed       uint64
	Randomizer string
	Columns    int
	Rows       int

	// Results
	TotalUpdates   int64
	TotalTime      time.Duration
	SimulatedTime  time.Duration
	UpdateTime     Stats
	Games          []GameResult
	Violations     []string
	Phases         []playfield.PhaseStats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// GameResult is the outcome of one game played to game over.
type GameResult struct {
	Score  int
	Level  int
	Lines  int
	Pieces int
	Frames int64
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Summary aggregates the finished games.
type Summary struct {
	Played    int
	BestScore int
	AvgScore  float64
	MaxLevel  int
	Lines     int
	Pieces    int
}

func (r *Report) Summary() Summary {
	var s Summary
	s.Played = len(r.Games)
	for _, g := range r.Games {
		s.BestScore = max(s.BestScore, g.Score)
		s.MaxLevel = max(s.MaxLevel, g.Level)
		s.Lines += g.Lines
		s.Pieces += g.Pieces
		s.AvgScore += float64(g.Score)
	}
	if s.Played > 0 {
		s.AvgScore /= float64(s.Played)
	}
	return s
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Playfield Soak Report

## Run Configuration
- **Run Duration:** {{.Duration}}
- **Game Limit:** {{if .MaxGames}}{{.MaxGames}}{{else}}none{{end}}
- **Board:** {{.Columns}}x{{.Rows}}
- **Randomizer:** {{.Randomizer}} (seed {{.Seed}})

## Games
{{with .Summary -}}
- **Played:** {{.Played}}
- **Best Score:** {{.BestScore}}
- **Avg Score:** {{printf "%.1f" .AvgScore}}
- **Max Level:** {{.MaxLevel}}
- **Lines Cleared:** {{.Lines}}
- **Pieces Locked:** {{.Pieces}}
{{- end}}

## Grid Integrity
{{if .Violations}}- **Violations:** {{len .Violations}}
{{range .Violations}}  - {{.}}
{{end}}{{else}}- no violations
{{end}}
## Performance Results
- **Total Updates:** {{.TotalUpdates}}
- **Total Test Time:** {{.TotalTime}}
- **Simulated Time:** {{.SimulatedTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}
{{range .Phases}}- **{{.Name}}:** avg {{.AvgDuration}}, max {{.MaxDuration}} over {{.ExecutionCount}} runs
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
