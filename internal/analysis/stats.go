package analysis

import (
	"dhping/internal/models"
	"sort"
	"sync"
	"time"
)

// Totals summarises every probe of a session.
type Totals struct {
	Probes  int
	Replied int
	Silent  int
	Failed  int
	// AvgRTT averages the round trip of replied probes only.
	AvgRTT time.Duration
}

// TargetStat holds per-target counters.
type TargetStat struct {
	Target  string
	Probes  int
	Replied int
	LastRTT time.Duration
}

// SessionStats tracks probe outcomes for one interactive session.
type SessionStats struct {
	mu      sync.Mutex
	totals  Totals
	rttSum  time.Duration
	targets map[string]*TargetStat
}

// NewSessionStats creates an empty tally.
func NewSessionStats() *SessionStats {
	return &SessionStats{
		targets: make(map[string]*TargetStat),
	}
}

// ProcessRecord adds one probe to the tally.
func (s *SessionStats) ProcessRecord(rec models.ProbeRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.totals.Probes++
	ts, ok := s.targets[rec.Target]
	if !ok {
		ts = &TargetStat{Target: rec.Target}
		s.targets[rec.Target] = ts
	}
	ts.Probes++

	switch rec.Outcome {
	case models.OutcomeReplied:
		s.totals.Replied++
		s.rttSum += rec.RTT
		s.totals.AvgRTT = s.rttSum / time.Duration(s.totals.Replied)
		ts.Replied++
		ts.LastRTT = rec.RTT
	case models.OutcomeSilent:
		s.totals.Silent++
	case models.OutcomeFailed:
		s.totals.Failed++
	}
}

// GetTotals returns the session summary.
func (s *SessionStats) GetTotals() Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totals
}

// GetTopTargets returns the most probed targets, most probed first.
func (s *SessionStats) GetTopTargets(limit int) []TargetStat {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats := make([]TargetStat, 0, len(s.targets))
	for _, ts := range s.targets {
		stats = append(stats, *ts)
	}

	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Probes != stats[j].Probes {
			return stats[i].Probes > stats[j].Probes
		}
		return stats[i].Target < stats[j].Target
	})

	if len(stats) > limit {
		return stats[:limit]
	}
	return stats
}
