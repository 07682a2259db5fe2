// internal/server/handlers_calendar.go
package server

import (
	"net/http"
	"strconv"
	"time"

	"recruit-backoffice/internal/common/errors"
)

// handleCalendarMonth serves the grid view. Month and year default to the
// current date when omitted.
func (s *Server) handleCalendarMonth(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	month, year := int(now.Month()), now.Year()

	if raw := r.URL.Query().Get("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, s.logger, errors.NewInvalidParameterError("month", "must be an integer"))
			return
		}
		month = m
	}
	if raw := r.URL.Query().Get("year"); raw != "" {
		y, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, s.logger, errors.NewInvalidParameterError("year", "must be an integer"))
			return
		}
		year = y
	}

	view, err := s.deps.Calendar.MonthView(r.Context(), month, year)
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (s *Server) handleCalendarDay(w http.ResponseWriter, r *http.Request) {
	details, err := s.deps.Calendar.DayDetails(r.Context(), r.PathValue("date"), r.URL.Query().Get("type"))
	if err != nil {
		writeError(w, r, s.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

// handleCalendarRefresh publishes the refresh trigger. The response never
// waits for subscribers; the signal is fire and forget.
func (s *Server) handleCalendarRefresh(w http.ResponseWriter, r *http.Request) {
	s.deps.Notify.PublishRefresh(r.Context())
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "triggered"})
}
