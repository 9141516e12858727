package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/resume-scorer/internal/types"
)

// maxRequestBody caps the request body size for scoring requests.
const maxRequestBody = 1 << 20 // 1 MiB

// handleScore scores a resume against a job description.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.New().String()
	w.Header().Set("X-Request-ID", requestID)

	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBody)

	var req types.ScoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if err := req.Validate(); err != nil {
		log.Printf("[score] %s rejected: %v", requestID, err)
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	result := s.engine.Score(r.Context(), req.ResumeText, req.JobDescription, req.CompanyName)
	log.Printf("[score] %s company=%q final=%.1f method=%s",
		requestID, req.CompanyName, result.FinalScore, result.Breakdown.MethodUsed)

	s.jsonResponse(w, http.StatusOK, types.NewScoreResponse(result))
}

// handleRoot describes the service.
func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		s.errorResponse(w, http.StatusNotFound, "not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{
		"service": "resume-scorer",
		"endpoints": map[string]string{
			"POST /score": "Score a resume against a job description",
			"GET /health": "Health check",
		},
	})
}
