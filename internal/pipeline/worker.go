package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/resumate-app/resumate/internal/analyzer"
	"github.com/resumate-app/resumate/internal/sections"
)

// Worker processes a single analysis job.
type Worker struct {
	svc            *analyzer.Service
	log            *slog.Logger
	extractTimeout time.Duration
}

func NewWorker(svc *analyzer.Service, log *slog.Logger, extractTimeout time.Duration) *Worker {
	return &Worker{
		svc:            svc,
		log:            log,
		extractTimeout: extractTimeout,
	}
}

// Process runs the full analysis pipeline for a job. Extraction failures
// fail the job; matching and feedback never do.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	// Phase 1: extract, bounded by the extraction timeout.
	job.SetStatus(StatusExtracting, "extracting text")
	extractCtx, cancel := context.WithTimeout(ctx, w.extractTimeout)
	defer cancel()

	text, err := w.svc.ExtractText(extractCtx, job.FileData(), job.Filename)
	if err != nil {
		log.Error("extraction failed", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "extracting text")
		return
	}

	// Phase 2: segment for context. Matching below runs on the raw text,
	// not the segmented view.
	job.SetStatus(StatusSegmenting, "segmenting sections")
	job.SetSections(sections.Identify(text))

	// Phase 3: analyze + compose feedback. Never fails; degraded results
	// come back as zero-signal reports.
	job.SetStatus(StatusAnalyzing, "analyzing content")
	report := w.svc.AnalyzeAndFeedback(text, job.JobDescription())
	phrases := w.svc.MatchedPhrases(text)
	job.SetResult(report, phrases)

	log.Info("analysis complete",
		"score", report.Analysis.Score,
		"matching_skills", len(report.Analysis.MatchingSkills()),
		"matched_phrases", len(phrases),
	)
	job.SetStatus(StatusCompleted, "done")
}
