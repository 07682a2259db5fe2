// internal/calendar/models.go
package calendar

import "recruit-backoffice/internal/models"

// StatsResponse is the upstream calendar-stats payload: one bucket per day
// plus monthly rollup totals keyed by event-type code.
type StatsResponse struct {
	Events []DayBucket    `json:"events"`
	Totals map[string]int `json:"totals"`
}

// DayBucket carries one day's events. EventCounts is the backend's own
// per-type tally; the client recount exists only as a fallback.
type DayBucket struct {
	Date        string         `json:"date"`
	EventCounts map[string]int `json:"event_counts"`
	Events      []RawEvent     `json:"events"`
}

// RawEvent is an upstream event before boundary normalization. Type may be
// a consolidated "A+B" code. The candidate/client_job/status_history maps
// use variant field spellings, which is why they stay untyped until
// normalization.
type RawEvent struct {
	Type          string                 `json:"type"`
	Candidate     map[string]interface{} `json:"candidate"`
	ClientJob     map[string]interface{} `json:"client_job,omitempty"`
	StatusHistory map[string]interface{} `json:"status_history,omitempty"`
}

// MonthView is the display-ready month: per-day counts for the grid plus
// rollup totals.
type MonthView struct {
	Month      int            `json:"month"`
	Year       int            `json:"year"`
	Days       []DaySummary   `json:"days"`
	Totals     map[string]int `json:"totals"`
	GrandTotal int            `json:"grandTotal"`
}

type DaySummary struct {
	Date   string         `json:"date"`
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

// DayDetails is one day's filterable detail list.
type DayDetails struct {
	Date   string         `json:"date"`
	Filter string         `json:"filter,omitempty"`
	Events []DisplayEvent `json:"events"`
	Counts map[string]int `json:"counts"`
}

// DisplayEvent is a normalized event ready for list rendering. Key is a
// synthetic composite identity guaranteeing uniqueness when the same
// candidate appears in several events on one day; it carries no meaning
// and is never sent upstream.
type DisplayEvent struct {
	Key           string               `json:"key"`
	Type          string               `json:"type"`
	Types         []string             `json:"types"`
	DisplayName   string               `json:"displayName"`
	Color         string               `json:"color"`
	Candidate     models.Candidate     `json:"candidate"`
	ClientJob     models.ClientJob     `json:"clientJob"`
	StatusHistory models.StatusHistory `json:"statusHistory"`
}
