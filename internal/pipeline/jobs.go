package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/resumate-app/resumate/internal/analyzer"
	"github.com/resumate-app/resumate/internal/sections"
)

// JobStatus represents the state of an analysis job.
type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusExtracting JobStatus = "extracting"
	StatusSegmenting JobStatus = "segmenting"
	StatusAnalyzing  JobStatus = "analyzing"
	StatusCompleted  JobStatus = "completed"
	StatusFailed     JobStatus = "failed"
)

// Job tracks one résumé analysis request from submission to result.
type Job struct {
	mu sync.Mutex

	ID       string    `json:"job_id"`
	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Filename string    `json:"filename"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	fileData       []byte
	jobDescription string
	result         *analyzer.Report
	sectionMap     sections.Map
	matchedPhrases []string
	errors         []string
}

// NewJob builds a queued job for the given upload.
func NewJob(filename, jobDescription string, fileData []byte) *Job {
	now := time.Now()
	return &Job{
		ID:             newJobID(filename, now),
		Status:         StatusQueued,
		Phase:          "queued",
		Filename:       filename,
		CreatedAt:      now,
		UpdatedAt:      now,
		fileData:       fileData,
		jobDescription: jobDescription,
	}
}

// newJobID derives a request-unique identifier from the filename and
// submission time.
func newJobID(filename string, now time.Time) string {
	h := sha256.Sum256(fmt.Appendf(nil, "%s-%d", filename, now.UnixNano()))
	return fmt.Sprintf("%x", h[:])[:20]
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records a processing error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.UpdatedAt = time.Now()
}

// SetSections stores the segmented résumé.
func (j *Job) SetSections(m sections.Map) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.sectionMap = m
	j.UpdatedAt = time.Now()
}

// SetResult stores the analysis report and matched phrases.
func (j *Job) SetResult(report analyzer.Report, phrases []string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.result = &report
	j.matchedPhrases = phrases
	j.UpdatedAt = time.Now()
}

// FileData returns the raw upload bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

// JobDescription returns the job-description text the résumé is scored
// against.
func (j *Job) JobDescription() string {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.jobDescription
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID             string           `json:"job_id"`
	Status         JobStatus        `json:"status"`
	Phase          string           `json:"phase"`
	Filename       string           `json:"filename"`
	Errors         []string         `json:"errors"`
	Result         *analyzer.Report `json:"result,omitempty"`
	Sections       sections.Map     `json:"sections,omitempty"`
	MatchedPhrases []string         `json:"matched_phrases,omitempty"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.errors
	if errs == nil {
		errs = []string{}
	}
	return JobSnapshot{
		ID:             j.ID,
		Status:         j.Status,
		Phase:          j.Phase,
		Filename:       j.Filename,
		Errors:         errs,
		Result:         j.result,
		Sections:       j.sectionMap,
		MatchedPhrases: j.matchedPhrases,
	}
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes jobs whose last update is older than the TTL.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}
