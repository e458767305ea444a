package analyzer

import (
	"testing"
	"time"
)

func TestAnalysisStats_Empty(t *testing.T) {
	s := NewAnalysisStats(time.Hour)
	snap := s.Snapshot()
	if snap.Count != 0 {
		t.Errorf("expected count 0, got %d", snap.Count)
	}
}

func TestAnalysisStats_Aggregates(t *testing.T) {
	s := NewAnalysisStats(time.Hour)
	for _, ms := range []int64{300, 100, 500, 200, 400} {
		s.Record(ms)
	}

	snap := s.Snapshot()
	if snap.Count != 5 {
		t.Fatalf("expected count 5, got %d", snap.Count)
	}
	if snap.MinMs != 100 || snap.MaxMs != 500 {
		t.Errorf("expected min 100 max 500, got %d/%d", snap.MinMs, snap.MaxMs)
	}
	if snap.AvgMs != 300 {
		t.Errorf("expected avg 300, got %f", snap.AvgMs)
	}
	if snap.P50Ms != 300 {
		t.Errorf("expected p50 300, got %f", snap.P50Ms)
	}
	if snap.P95Ms != 480 {
		t.Errorf("expected p95 480, got %f", snap.P95Ms)
	}
	if snap.P99Ms != 496 {
		t.Errorf("expected p99 496, got %f", snap.P99Ms)
	}
}

func TestAnalysisStats_NegativeClamped(t *testing.T) {
	s := NewAnalysisStats(time.Hour)
	s.Record(-50)

	snap := s.Snapshot()
	if snap.MinMs != 0 {
		t.Errorf("expected negative sample clamped to 0, got %d", snap.MinMs)
	}
}

func TestAnalysisStats_WindowEviction(t *testing.T) {
	s := NewAnalysisStats(20 * time.Millisecond)
	s.Record(100)
	time.Sleep(50 * time.Millisecond)
	s.Record(200)

	snap := s.Snapshot()
	if snap.Count != 1 {
		t.Fatalf("expected old sample evicted, count 1, got %d", snap.Count)
	}
	if snap.MinMs != 200 {
		t.Errorf("expected surviving sample 200, got %d", snap.MinMs)
	}
}
