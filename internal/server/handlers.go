package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/resume-screener/internal/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// AnalyzeRequest represents the request body for /analyze
type AnalyzeRequest struct {
	ResumeText string `json:"resume_text" validate:"required"`
	Domain     string `json:"domain" validate:"required"`
}

// AnalyzeResponse represents the response for /analyze
type AnalyzeResponse struct {
	RunID           uuid.UUID              `json:"run_id"`
	Result          *types.CompositeResult `json:"result"`
	DomainScores    []types.DomainScore    `json:"domain_scores"`
	Recommendations []types.DomainScore    `json:"recommendations"`
}

// DomainsResponse represents the response for /domains
type DomainsResponse struct {
	Domains []string `json:"domains"`
}

// handleAnalyze scores a resume against a domain and returns the full
// analysis, including better-fit recommendations.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := validate.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			s.errorResponse(w, http.StatusBadRequest, verrs[0].Field()+" is required")
			return
		}
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	analysis, err := s.analyzer.Analyze(r.Context(), req.ResumeText, req.Domain)
	if err != nil {
		if _, ok := s.jds.Get(req.Domain); !ok {
			s.errorResponse(w, http.StatusNotFound, "Unknown domain: "+req.Domain)
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "Analysis failed: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, AnalyzeResponse{
		RunID:           analysis.RunID,
		Result:          analysis.Result,
		DomainScores:    analysis.DomainScores.Entries,
		Recommendations: analysis.Recommendations,
	})
}

// handleDomains lists the domains available for analysis.
func (s *Server) handleDomains(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, DomainsResponse{Domains: s.jds.Domains()})
}
