package api

import (
	"encoding/json"
	"net/http"

	"github.com/resumate-app/resumate/internal/sections"
)

// handleSections extracts a document and returns its labeled section map
// without running the relevance analysis.
func (s *Server) handleSections(w http.ResponseWriter, r *http.Request) {
	upload, ok := s.readResumeUpload(w, r, false)
	if !ok {
		return
	}

	m, err := s.svc.ExtractAndSegment(r.Context(), upload.data, upload.filename)
	if err != nil {
		s.writeExtractionError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"filename":      upload.filename,
		"section_order": sections.Names(),
		"sections":      m,
	})
}
