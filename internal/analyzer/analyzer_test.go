package analyzer

import (
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/resumate-app/resumate/internal/taxonomy"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestAnalyze_ResumeCoversJobDescription(t *testing.T) {
	a := New(taxonomy.Default(), testLogger())

	tokens := strings.Fields("Python, Java, SQL")
	res := a.Analyze(tokens, "Looking for a software engineer with experience in Java, Python, and SQL")

	wantHard := []string{"Java", "Python", "SQL"}
	if !reflect.DeepEqual(res.MatchingHardSkills, wantHard) {
		t.Errorf("hard skills: expected %v, got %v", wantHard, res.MatchingHardSkills)
	}
	if len(res.MatchingSoftSkills) != 0 {
		t.Errorf("expected no soft skill matches, got %v", res.MatchingSoftSkills)
	}
	if len(res.MatchingEducation) != 0 {
		t.Errorf("expected no education matches, got %v", res.MatchingEducation)
	}
	if res.Score != 1.0 {
		t.Errorf("expected score 1.0, got %f", res.Score)
	}
}

func TestAnalyze_EmptyJobDescriptionScoresZero(t *testing.T) {
	a := New(taxonomy.Default(), testLogger())

	res := a.Analyze(strings.Fields("Python Java SQL"), "")
	if res.Score != 0 {
		t.Errorf("expected score 0 with empty job description, got %f", res.Score)
	}
	if len(res.MatchingHardSkills) != 3 {
		t.Errorf("resume matches should still be reported, got %v", res.MatchingHardSkills)
	}
}

func TestAnalyze_EmptyResume(t *testing.T) {
	a := New(taxonomy.Default(), testLogger())

	res := a.Analyze(nil, "Looking for Python developers")
	if res.Score != 0 {
		t.Errorf("expected score 0, got %f", res.Score)
	}
	if len(res.MatchingHardSkills)+len(res.MatchingSoftSkills)+len(res.MatchingEducation) != 0 {
		t.Errorf("expected no matches, got %+v", res)
	}
}

func TestAnalyze_ScoreCanExceedOne(t *testing.T) {
	a := New(taxonomy.Default(), testLogger())

	// Five distinct resume matches against one job-description match. The
	// numerator is not clipped to the job description's phrases.
	res := a.Analyze(strings.Fields("Python Java SQL Git AWS"), "Python only")
	if res.Score != 5.0 {
		t.Errorf("expected score 5.0, got %f", res.Score)
	}
}

func TestAnalyze_SubstringOverMatch(t *testing.T) {
	a := New(taxonomy.Default(), testLogger())

	// "Java" is contained in "JavaScript"; substring matching reports both.
	res := a.Analyze([]string{"JavaScript"}, "JavaScript role")

	want := []string{"Java", "JavaScript"}
	if !reflect.DeepEqual(res.MatchingHardSkills, want) {
		t.Errorf("expected %v, got %v", want, res.MatchingHardSkills)
	}
	if res.Score != 1.0 {
		t.Errorf("expected score 1.0, got %f", res.Score)
	}
}

func TestAnalyze_CaseInsensitive(t *testing.T) {
	a := New(taxonomy.Default(), testLogger())

	res := a.Analyze([]string{"PYTHON", "communication"}, "python and COMMUNICATION skills")
	if len(res.MatchingHardSkills) != 1 || res.MatchingHardSkills[0] != "Python" {
		t.Errorf("expected Python match, got %v", res.MatchingHardSkills)
	}
	if len(res.MatchingSoftSkills) != 1 || res.MatchingSoftSkills[0] != "communication" {
		t.Errorf("expected communication match, got %v", res.MatchingSoftSkills)
	}
}

func TestMatchingSkills_SortedUnion(t *testing.T) {
	res := MatchResult{
		MatchingHardSkills: []string{"Python", "Java"},
		MatchingSoftSkills: []string{"communication"},
		MatchingEducation:  []string{"B.S.", "Python"},
	}

	want := []string{"B.S.", "Java", "Python", "communication"}
	if got := res.MatchingSkills(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}
