package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/resumate-app/resumate/internal/analyzer"
	"github.com/resumate-app/resumate/internal/extractor"
	"github.com/resumate-app/resumate/internal/feedback"
	"github.com/resumate-app/resumate/internal/pipeline"
)

// analyzeResponse is the synchronous analysis payload.
type analyzeResponse struct {
	Analysis       analyzer.MatchResult `json:"analysis"`
	Feedback       feedback.Result      `json:"feedback"`
	MatchedPhrases []string             `json:"matched_phrases"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	upload, ok := s.readResumeUpload(w, r, true)
	if !ok {
		return
	}

	text, err := s.svc.ExtractText(r.Context(), upload.data, upload.filename)
	if err != nil {
		s.writeExtractionError(w, err)
		return
	}

	report := s.svc.AnalyzeAndFeedback(text, upload.jobDescription)
	phrases := s.svc.MatchedPhrases(text)
	if phrases == nil {
		phrases = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(analyzeResponse{
		Analysis:       report.Analysis,
		Feedback:       report.Feedback,
		MatchedPhrases: phrases,
	})
}

func (s *Server) handleAnalyzeAsync(w http.ResponseWriter, r *http.Request) {
	upload, ok := s.readResumeUpload(w, r, true)
	if !ok {
		return
	}

	if !extractor.IsSupportedExtension(upload.filename) {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(upload.filename)), http.StatusBadRequest)
		return
	}

	job := pipeline.NewJob(upload.filename, upload.jobDescription, upload.data)
	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":   job.ID,
		"status":   job.Status,
		"poll_url": fmt.Sprintf("/api/analyze/%s", job.ID),
	})
}

func (s *Server) handleAnalyzeStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job.Snapshot())
}

// resumeUpload is a validated multipart analysis request.
type resumeUpload struct {
	filename       string
	data           []byte
	jobDescription string
}

// readResumeUpload parses the multipart form shared by the analysis
// endpoints. It writes the error response itself and reports ok=false when
// the request is unusable.
func (s *Server) readResumeUpload(w http.ResponseWriter, r *http.Request, requireJobDescription bool) (resumeUpload, bool) {
	// Limit total request size, with headroom for form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return resumeUpload{}, false
	}
	defer r.MultipartForm.RemoveAll()

	jobDescription := r.FormValue("job_description")
	if requireJobDescription && strings.TrimSpace(jobDescription) == "" {
		jsonError(w, "job_description is required", http.StatusBadRequest)
		return resumeUpload{}, false
	}

	file, header, err := r.FormFile("resume_file")
	if err != nil {
		jsonError(w, "resume_file is required: "+err.Error(), http.StatusBadRequest)
		return resumeUpload{}, false
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read resume_file", http.StatusInternalServerError)
		return resumeUpload{}, false
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return resumeUpload{}, false
	}

	return resumeUpload{
		filename:       sanitizeFilename(header.Filename),
		data:           data,
		jobDescription: jobDescription,
	}, true
}

// writeExtractionError maps extraction failures onto HTTP statuses.
func (s *Server) writeExtractionError(w http.ResponseWriter, err error) {
	var extErr *extractor.ExtractionError
	switch {
	case errors.Is(err, extractor.ErrUnsupportedFormat):
		jsonError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, extractor.ErrDocumentTooLarge):
		jsonError(w, err.Error(), http.StatusRequestEntityTooLarge)
	case errors.Is(err, extractor.ErrTimeoutExceeded):
		jsonError(w, err.Error(), http.StatusGatewayTimeout)
	case errors.As(err, &extErr):
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
	default:
		jsonError(w, err.Error(), http.StatusInternalServerError)
	}
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func sanitizeFilename(name string) string {
	// Strip path components, keep only the base name.
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, "/", "_")
	name = strings.ReplaceAll(name, "\\", "_")
	name = strings.ReplaceAll(name, "..", "_")
	if name == "" || name == "." {
		name = "unnamed"
	}
	return name
}
