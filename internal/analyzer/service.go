package analyzer

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/resumate-app/resumate/internal/extractor"
	"github.com/resumate-app/resumate/internal/feedback"
	"github.com/resumate-app/resumate/internal/phrase"
	"github.com/resumate-app/resumate/internal/sections"
	"github.com/resumate-app/resumate/internal/taxonomy"
)

// Report combines the raw match analysis with the composed feedback.
type Report struct {
	Analysis MatchResult     `json:"analysis"`
	Feedback feedback.Result `json:"feedback"`
}

// Service is the entry point the request-handling boundary calls into.
// It owns the analysis dependencies and a rolling latency window; all of its
// methods are safe for concurrent use.
type Service struct {
	analyzer *Analyzer
	feedback *feedback.Generator
	phrases  *phrase.Matcher
	log      *slog.Logger

	// Stats tracks per-analysis latency for the stats endpoint.
	Stats *AnalysisStats

	maxDocumentBytes int64
}

// NewService wires the core pipeline. The taxonomy is injected, not global;
// maxDocumentBytes bounds extraction input (0 means unlimited).
func NewService(tax taxonomy.Taxonomy, phrases []string, maxDocumentBytes int64, statsWindow time.Duration, log *slog.Logger) *Service {
	return &Service{
		analyzer:         New(tax, log),
		feedback:         feedback.NewGenerator(log),
		phrases:          phrase.New(phrases, log),
		log:              log,
		Stats:            NewAnalysisStats(statsWindow),
		maxDocumentBytes: maxDocumentBytes,
	}
}

// ExtractText converts document bytes into plain text. Failures are typed:
// extractor.ErrUnsupportedFormat, extractor.ErrDocumentTooLarge,
// extractor.ErrTimeoutExceeded, or an *extractor.ExtractionError for corrupt
// input.
func (s *Service) ExtractText(ctx context.Context, data []byte, filename string) (string, error) {
	text, err := extractor.Extract(ctx, data, filename, s.maxDocumentBytes)
	if err != nil {
		s.log.Error("extraction failed", "filename", filename, "error", err)
		return "", err
	}
	return text, nil
}

// ExtractAndSegment converts document bytes into the labeled section map.
// It fails with the same typed errors as ExtractText.
func (s *Service) ExtractAndSegment(ctx context.Context, data []byte, filename string) (sections.Map, error) {
	text, err := s.ExtractText(ctx, data, filename)
	if err != nil {
		return nil, err
	}
	return sections.Identify(text), nil
}

// AnalyzeAndFeedback scores the résumé text against the job description and
// composes feedback. It never fails for string inputs: internal degradation
// surfaces as a zero-signal result, not an error.
func (s *Service) AnalyzeAndFeedback(resumeText, jobDescription string) Report {
	start := time.Now()

	analysis := s.analyzer.Analyze(strings.Fields(resumeText), jobDescription)
	fb := s.feedback.Generate(analysis.Score, analysis.MatchingSkills())

	s.Stats.Record(time.Since(start).Milliseconds())
	return Report{Analysis: analysis, Feedback: fb}
}

// MatchedPhrases reports the configured literal phrases found in text, in
// order of appearance.
func (s *Service) MatchedPhrases(text string) []string {
	return s.phrases.Match(text)
}
