package pipeline

import (
	"testing"
	"time"
)

func TestNewJob(t *testing.T) {
	job := NewJob("resume.pdf", "Looking for Python developers", []byte("data"))

	if job.ID == "" {
		t.Error("job must get an ID")
	}
	if job.Status != StatusQueued {
		t.Errorf("expected status queued, got %s", job.Status)
	}
	if job.Filename != "resume.pdf" {
		t.Errorf("unexpected filename %q", job.Filename)
	}
	if string(job.FileData()) != "data" {
		t.Errorf("unexpected file data %q", job.FileData())
	}
	if job.JobDescription() != "Looking for Python developers" {
		t.Errorf("unexpected job description %q", job.JobDescription())
	}
}

func TestNewJob_UniqueIDs(t *testing.T) {
	seen := make(map[string]bool)
	for range 50 {
		job := NewJob("resume.pdf", "", nil)
		if seen[job.ID] {
			t.Fatalf("duplicate job ID %s", job.ID)
		}
		seen[job.ID] = true
	}
}

func TestJob_StatusTransitions(t *testing.T) {
	job := NewJob("resume.pdf", "", nil)
	before := job.UpdatedAt

	time.Sleep(time.Millisecond)
	job.SetStatus(StatusExtracting, "extracting text")

	if job.Status != StatusExtracting || job.Phase != "extracting text" {
		t.Errorf("unexpected state %s/%s", job.Status, job.Phase)
	}
	if !job.UpdatedAt.After(before) {
		t.Error("UpdatedAt should advance on status change")
	}
}

func TestJob_SnapshotErrorsNeverNil(t *testing.T) {
	job := NewJob("resume.pdf", "", nil)

	snap := job.Snapshot()
	if snap.Errors == nil {
		t.Error("snapshot errors must be non-nil for JSON")
	}

	job.AddError("boom")
	snap = job.Snapshot()
	if len(snap.Errors) != 1 || snap.Errors[0] != "boom" {
		t.Errorf("unexpected errors %v", snap.Errors)
	}
}

func TestJobStore_PutGet(t *testing.T) {
	store := NewJobStore(time.Hour)
	job := NewJob("resume.pdf", "", nil)

	store.Put(job)
	if got := store.Get(job.ID); got != job {
		t.Error("expected stored job back")
	}
	if got := store.Get("unknown"); got != nil {
		t.Errorf("expected nil for unknown ID, got %v", got)
	}
}

func TestJobStore_CleanupEvictsExpired(t *testing.T) {
	store := NewJobStore(10 * time.Millisecond)

	old := NewJob("old.pdf", "", nil)
	store.Put(old)

	time.Sleep(30 * time.Millisecond)

	fresh := NewJob("fresh.pdf", "", nil)
	store.Put(fresh)

	store.Cleanup()
	if store.Get(old.ID) != nil {
		t.Error("expected expired job evicted")
	}
	if store.Get(fresh.ID) == nil {
		t.Error("expected fresh job retained")
	}
}
