// internal/server/handlers_handoff.go
package server

import (
	"encoding/json"
	"io"
	"net/http"

	"recruit-backoffice/internal/common/errors"
)

func (s *Server) handleHandoffPut(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	payload, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
	if err != nil {
		writeError(w, r, s.logger, errors.NewInvalidParameterError("payload", "unreadable body"))
		return
	}

	token, err := s.deps.Handoff.Put(r.Context(), json.RawMessage(payload))
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"token": token})
}

func (s *Server) handleHandoffClaim(w http.ResponseWriter, r *http.Request) {
	payload, err := s.deps.Handoff.Claim(r.Context(), r.PathValue("token"))
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeRaw(w, http.StatusOK, payload)
}
