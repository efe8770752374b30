package playfield

import (
	"context"
	"reflect"
	"time"
)

// Frame carries the per-frame inputs through the pipeline phases.
type Frame struct {
	Now    time.Duration
	Input  Input
	Events *Events
}

// Phase is one step of the per-frame update.
type Phase interface {
	Execute(frame *Frame)
}

// PipelineStats provides statistics about pipeline execution.
type PipelineStats struct {
	PhaseCount      int
	TotalExecutions int64
	Phases          []PhaseStats
}

// PhaseStats provides execution statistics for a single phase.
type PhaseStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type phaseStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Pipeline runs phases in registration order and times each one.
type Pipeline struct {
	phases     []Phase
	phaseStats []*phaseStatsInternal
}

func NewPipeline() *Pipeline {
	return &Pipeline{
		phases: make([]Phase, 0),
	}
}

// Register appends a phase. Its stats are reported under the type name.
func (p *Pipeline) Register(phase Phase) {
	p.phases = append(p.phases, phase)

	phaseType := reflect.TypeOf(phase)
	if phaseType.Kind() == reflect.Ptr {
		phaseType = phaseType.Elem()
	}

	p.phaseStats = append(p.phaseStats, &phaseStatsInternal{
		name:        phaseType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes all phases for one frame, then flushes the frame's events.
func (p *Pipeline) Once(frame *Frame) {
	for i, phase := range p.phases {
		start := time.Now()
		phase.Execute(frame)
		duration := time.Since(start)

		stats := p.phaseStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	if frame.Events != nil {
		frame.Events.Flush()
	}
}

// Stats returns statistics about phase execution.
func (p *Pipeline) Stats() *PipelineStats {
	stats := &PipelineStats{
		PhaseCount: len(p.phases),
		Phases:     make([]PhaseStats, len(p.phaseStats)),
	}

	var totalExecs int64
	for i, internal := range p.phaseStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Phases[i] = PhaseStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}

// Run updates the game at the given interval until the context is cancelled
// or the game ends. It returns the final state.
func (g *Game) Run(ctx context.Context, interval time.Duration, clock Clock, source InputSource) State {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return g.state
		case <-ticker.C:
			if g.Update(clock.Now(), source.Poll()) == StateGameOver {
				return StateGameOver
			}
		}
	}
}
