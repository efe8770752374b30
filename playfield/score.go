package playfield

import "time"

// Score is the scoring and level progression state.
type Score struct {
	Score        int
	Level        int
	Lines        int
	FallInterval time.Duration
}

// NewScore returns the starting state for cfg: level 1, nothing cleared.
func NewScore(cfg Config) Score {
	return Score{
		Level:        1,
		FallInterval: cfg.FallInterval,
	}
}

// Apply credits lines cleared by a single lock. Points are the table value
// times the current level. It reports whether the level went up, in which
// case FallInterval has already been shortened.
func (s *Score) Apply(lines int, cfg Config) (leveledUp bool) {
	if lines <= 0 {
		return false
	}

	s.Lines += lines
	s.Score += cfg.ScoreTable[lines] * s.Level

	if s.Lines > cfg.LinesPerLevel*s.Level {
		s.Level++
		s.FallInterval = scaleDuration(s.FallInterval, cfg.LevelSpeedup)
		return true
	}
	return false
}

// ScoreSink observes every scoring update.
type ScoreSink interface {
	UpdateScore(lines, score, level int)
}

// ScoreSinkFunc adapts a function to ScoreSink.
type ScoreSinkFunc func(lines, score, level int)

func (f ScoreSinkFunc) UpdateScore(lines, score, level int) {
	f(lines, score, level)
}
