// internal/server/handlers_jobopening.go
package server

import "net/http"

func (s *Server) handleJobList(w http.ResponseWriter, r *http.Request) {
	out, err := s.deps.Jobs.List(r.Context(), r.URL.Query())
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeRaw(w, http.StatusOK, out)
}

func (s *Server) handleJobCreate(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	out, err := s.deps.Jobs.Create(r.Context(), payload)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeRaw(w, http.StatusCreated, out)
}

func (s *Server) handleJobGet(w http.ResponseWriter, r *http.Request) {
	out, err := s.deps.Jobs.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeRaw(w, http.StatusOK, out)
}

func (s *Server) handleJobUpdate(w http.ResponseWriter, r *http.Request) {
	var payload map[string]interface{}
	if err := decodeBody(r, &payload); err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	out, err := s.deps.Jobs.Update(r.Context(), r.PathValue("id"), payload)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeRaw(w, http.StatusOK, out)
}

func (s *Server) handleJobDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.deps.Jobs.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleJobSearch(w http.ResponseWriter, r *http.Request) {
	out, err := s.deps.Jobs.Search(r.Context(), r.URL.Query().Get("term"))
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeRaw(w, http.StatusOK, out)
}

func (s *Server) handleJobToggleStatus(w http.ResponseWriter, r *http.Request) {
	out, err := s.deps.Jobs.ToggleStatus(r.Context(), r.PathValue("id"))
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeRaw(w, http.StatusOK, out)
}

func (s *Server) handleJobAssignCandidate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		CandidateID string `json:"candidate_id"`
	}
	if err := decodeBody(r, &body); err != nil {
		writeError(w, r, s.logger, err)
		return
	}

	out, err := s.deps.Jobs.AssignCandidate(r.Context(), r.PathValue("id"), body.CandidateID)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeRaw(w, http.StatusOK, out)
}
