package pipeline

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/resumate-app/resumate/internal/analyzer"
	"github.com/resumate-app/resumate/internal/phrase"
	"github.com/resumate-app/resumate/internal/taxonomy"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testService() *analyzer.Service {
	return analyzer.NewService(taxonomy.Default(), phrase.DefaultPhrases(), 0, time.Hour, testLogger())
}

func TestWorker_ProcessCompletes(t *testing.T) {
	w := NewWorker(testService(), testLogger(), 5*time.Second)

	resume := []byte("Name: John Doe\nSkills: Python, Java, SQL")
	job := NewJob("resume.txt", "Looking for a software engineer with experience in Java, Python, and SQL", resume)

	w.Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusCompleted {
		t.Fatalf("expected completed, got %s (%v)", snap.Status, snap.Errors)
	}
	if snap.Result == nil {
		t.Fatal("expected a result")
	}
	if snap.Result.Analysis.Score != 1.0 {
		t.Errorf("expected score 1.0, got %f", snap.Result.Analysis.Score)
	}
	if snap.Sections["skills"] != "Python, Java, SQL" {
		t.Errorf("unexpected skills section %q", snap.Sections["skills"])
	}
	if len(snap.MatchedPhrases) == 0 || snap.MatchedPhrases[0] != "John Doe" {
		t.Errorf("expected John Doe first among matched phrases, got %v", snap.MatchedPhrases)
	}
}

func TestWorker_ProcessFailsOnUnsupportedFormat(t *testing.T) {
	w := NewWorker(testService(), testLogger(), 5*time.Second)

	job := NewJob("resume.exe", "anything", []byte("MZ"))
	w.Process(context.Background(), job)

	snap := job.Snapshot()
	if snap.Status != StatusFailed {
		t.Fatalf("expected failed, got %s", snap.Status)
	}
	if len(snap.Errors) == 0 {
		t.Error("expected the failure to be recorded")
	}
	if snap.Result != nil {
		t.Error("failed job must not carry a result")
	}
}

func TestWorker_ProcessFailsOnCorruptDocument(t *testing.T) {
	w := NewWorker(testService(), testLogger(), 5*time.Second)

	job := NewJob("resume.pdf", "anything", []byte("not a pdf"))
	w.Process(context.Background(), job)

	if got := job.Snapshot().Status; got != StatusFailed {
		t.Errorf("expected failed, got %s", got)
	}
}
