package analysis

import (
	"dhping/internal/models"
	"testing"
	"time"
)

func TestSessionStats(t *testing.T) {
	stats := NewSessionStats()

	stats.ProcessRecord(models.ProbeRecord{Target: "10.0.0.1:7777", Outcome: models.OutcomeReplied, Bytes: 8, RTT: 10 * time.Millisecond})
	stats.ProcessRecord(models.ProbeRecord{Target: "10.0.0.1:7777", Outcome: models.OutcomeReplied, Bytes: 8, RTT: 30 * time.Millisecond})
	stats.ProcessRecord(models.ProbeRecord{Target: "10.0.0.2:7777", Outcome: models.OutcomeSilent})
	stats.ProcessRecord(models.ProbeRecord{Target: "10.0.0.3:7777", Outcome: models.OutcomeFailed})

	totals := stats.GetTotals()
	if totals.Probes != 4 {
		t.Errorf("expected 4 probes, got %d", totals.Probes)
	}
	if totals.Replied != 2 || totals.Silent != 1 || totals.Failed != 1 {
		t.Errorf("unexpected outcome split: %+v", totals)
	}
	if totals.AvgRTT != 20*time.Millisecond {
		t.Errorf("expected 20ms average, got %s", totals.AvgRTT)
	}

	top := stats.GetTopTargets(2)
	if len(top) != 2 {
		t.Fatalf("expected 2 targets, got %d", len(top))
	}
	if top[0].Target != "10.0.0.1:7777" || top[0].Probes != 2 || top[0].LastRTT != 30*time.Millisecond {
		t.Errorf("unexpected top target: %+v", top[0])
	}
	if top[1].Target != "10.0.0.2:7777" {
		t.Errorf("ties should sort by target, got %s", top[1].Target)
	}
}

func TestSessionStatsEmpty(t *testing.T) {
	stats := NewSessionStats()

	if totals := stats.GetTotals(); totals != (Totals{}) {
		t.Errorf("expected zero totals, got %+v", totals)
	}
	if top := stats.GetTopTargets(1); len(top) != 0 {
		t.Errorf("expected no targets, got %+v", top)
	}
}
