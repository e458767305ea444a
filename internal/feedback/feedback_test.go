package feedback

import (
	"io"
	"log/slog"
	"math"
	"strings"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestGenerate_HighBand(t *testing.T) {
	g := NewGenerator(testLogger())

	res := g.Generate(0.9, nil)
	if len(res.Strengths) != 2 {
		t.Fatalf("expected 2 strengths, got %v", res.Strengths)
	}
	if !strings.Contains(res.Strengths[0], "highly relevant") {
		t.Errorf("expected high-band statement, got %q", res.Strengths[0])
	}
	if res.Strengths[1] != "No matching skills found. Consider adding more relevant skills to your resume." {
		t.Errorf("unexpected skills statement: %q", res.Strengths[1])
	}
	if res.Score != 0.9 {
		t.Errorf("expected score 0.9, got %f", res.Score)
	}
}

func TestGenerate_MidBandWithSkills(t *testing.T) {
	g := NewGenerator(testLogger())

	res := g.Generate(0.75, []string{"Python", "Java"})
	if !strings.Contains(res.Strengths[0], "fairly relevant") {
		t.Errorf("expected mid-band statement, got %q", res.Strengths[0])
	}
	if res.Strengths[1] != "Matching skills found: Java, Python" {
		t.Errorf("skills should be sorted and comma-joined, got %q", res.Strengths[1])
	}
}

func TestGenerate_LowBand(t *testing.T) {
	g := NewGenerator(testLogger())

	res := g.Generate(0.1, nil)
	if !strings.Contains(res.Strengths[0], "low relevance") {
		t.Errorf("expected low-band statement, got %q", res.Strengths[0])
	}
}

func TestGenerate_BandBoundariesExclusive(t *testing.T) {
	g := NewGenerator(testLogger())

	// The thresholds are strict greater-than comparisons.
	if res := g.Generate(0.8, nil); !strings.Contains(res.Strengths[0], "fairly relevant") {
		t.Errorf("score 0.8 should fall to the middle band, got %q", res.Strengths[0])
	}
	if res := g.Generate(0.5, nil); !strings.Contains(res.Strengths[0], "low relevance") {
		t.Errorf("score 0.5 should fall to the low band, got %q", res.Strengths[0])
	}
}

func TestGenerate_ScoreAboveOne(t *testing.T) {
	g := NewGenerator(testLogger())

	res := g.Generate(5.0, []string{"Python"})
	if !strings.Contains(res.Strengths[0], "highly relevant") {
		t.Errorf("scores above 1.0 land in the high band, got %q", res.Strengths[0])
	}
	if res.Score != 5.0 {
		t.Errorf("expected score passed through, got %f", res.Score)
	}
}

func TestGenerate_NonFiniteScoreFallsBack(t *testing.T) {
	g := NewGenerator(testLogger())

	for _, score := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		res := g.Generate(score, []string{"Python"})
		if len(res.Strengths) != 1 || res.Strengths[0] != "An error occurred while generating feedback." {
			t.Errorf("score %f: expected fallback entry, got %v", score, res.Strengths)
		}
		if res.Score != 0 {
			t.Errorf("score %f: expected fallback score 0, got %f", score, res.Score)
		}
	}
}

func TestGenerate_DoesNotMutateInput(t *testing.T) {
	g := NewGenerator(testLogger())

	skills := []string{"SQL", "Java", "Python"}
	g.Generate(0.9, skills)
	if skills[0] != "SQL" || skills[1] != "Java" || skills[2] != "Python" {
		t.Errorf("input slice was reordered: %v", skills)
	}
}
