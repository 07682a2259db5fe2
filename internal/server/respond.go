// internal/server/respond.go
package server

import (
	"encoding/json"
	"net/http"

	"recruit-backoffice/internal/common/errors"
	"recruit-backoffice/internal/common/logger"
)

// errorEnvelope is the wire shape of every failure response.
type errorEnvelope struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Details   string `json:"details,omitempty"`
	Retryable bool   `json:"retryable"`
	RequestID string `json:"request_id,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// writeRaw forwards an upstream JSON payload untouched.
func writeRaw(w http.ResponseWriter, status int, body json.RawMessage) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if len(body) > 0 {
		_, _ = w.Write(body)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	stdErr := errors.Normalize(err)
	status := errors.HTTPStatus(stdErr.Code)

	if status >= 500 {
		log.Error("request failed", map[string]interface{}{
			"path":    r.URL.Path,
			"code":    string(stdErr.Code),
			"details": stdErr.Details,
		})
	} else {
		log.Warn("request rejected", map[string]interface{}{
			"path": r.URL.Path,
			"code": string(stdErr.Code),
		})
	}

	writeJSON(w, status, errorEnvelope{Error: errorBody{
		Code:      string(stdErr.Code),
		Message:   stdErr.Message,
		Details:   stdErr.Details,
		Retryable: stdErr.Retryable,
		RequestID: requestIDFrom(r.Context()),
	}})
}

func decodeBody(r *http.Request, out interface{}) error {
	defer r.Body.Close()
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(out); err != nil {
		return errors.NewInvalidParameterError("body", "invalid JSON: "+err.Error())
	}
	return nil
}
