package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/jobmatch-checker/internal/ingest"
)

var validate = validator.New()

// AnalyzeRequest represents the request body for /analyze. Exactly one of
// JDText and JDURL must be set.
type AnalyzeRequest struct {
	JDText string `json:"jd_text,omitempty" validate:"required_without=JDURL,excluded_with=JDURL"`
	JDURL  string `json:"jd_url,omitempty" validate:"omitempty,url"`
	CVText string `json:"cv_text" validate:"required"`
}

// handleAnalyze runs one full analysis and returns the match report.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	jdText := req.JDText
	if req.JDURL != "" {
		fetched, err := ingest.JobText(r.Context(), req.JDURL)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, "Failed to fetch job posting: "+err.Error())
			return
		}
		jdText = fetched
	}

	report, err := s.engine.AnalyzeTexts(r.Context(), jdText, req.CVText)
	if err != nil {
		// One opaque failure; no partial report crosses this boundary.
		log.Printf("[analyze] %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Analysis failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":             "ok",
		"version":            Version,
		"api_key_configured": s.apiKeySet,
	})
}

// handleConfig reports the feature configuration without exposing secrets.
func (s *Server) handleConfig(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"version":           Version,
		"gemini_configured": s.apiKeySet,
		"features": map[string]bool{
			"url_ingestion": true,
			"api_endpoints": true,
		},
	})
}
