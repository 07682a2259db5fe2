// internal/server/handlers_scoring.go
package server

import (
	"net/http"

	"recruit-backoffice/internal/scoring"
)

func (s *Server) handleScoringCalculate(w http.ResponseWriter, r *http.Request) {
	var input scoring.Input
	if err := decodeBody(r, &input); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, s.deps.Scoring.Calculate(&input))
}

func (s *Server) handleGetCandidateScoring(w http.ResponseWriter, r *http.Request) {
	input, err := s.deps.Scoring.GetCandidateScoring(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, input)
}

func (s *Server) handleUpdateCandidateScoring(w http.ResponseWriter, r *http.Request) {
	var input scoring.Input
	if err := decodeBody(r, &input); err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	result, err := s.deps.Scoring.UpdateCandidateScoring(r.Context(), r.PathValue("id"), &input)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
