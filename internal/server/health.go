// internal/server/health.go
package server

import (
	"context"
	"net/http"
	"time"
)

type healthReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// handleHealth reports per-dependency reachability. The endpoint answers
// 200 as long as the process itself is serving; a degraded dependency
// shows up in the body, not the status code, because every feature here
// degrades independently.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	report := healthReport{Status: "ok", Checks: make(map[string]string, len(s.deps.Probes))}
	for name, probe := range s.deps.Probes {
		if err := probe(ctx); err != nil {
			report.Status = "degraded"
			report.Checks[name] = err.Error()
			continue
		}
		report.Checks[name] = "ok"
	}

	writeJSON(w, http.StatusOK, report)
}
