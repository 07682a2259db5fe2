// internal/models/candidate.go
package models

import "strconv"

// Candidate is the canonical candidate shape used everywhere inside the
// service. Upstream payloads spell the same fields several ways, so the
// normalization below runs once at the boundary; render and transform code
// never falls back between variant field names.
type Candidate struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Mobile        string `json:"mobile"`
	ExecutiveName string `json:"executiveName"`
}

// ClientJob identifies the opening a calendar event is attached to.
type ClientJob struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	ClientName string `json:"clientName"`
}

// StatusHistory carries the follow-up remarks shown in day detail lists.
type StatusHistory struct {
	Remarks string `json:"remarks"`
	Status  string `json:"status"`
	Date    string `json:"date"`
}

// NormalizeCandidate maps an upstream candidate object onto the canonical
// shape, coalescing the variant field names the backend emits.
func NormalizeCandidate(raw map[string]interface{}) Candidate {
	return Candidate{
		ID:            firstString(raw, "id", "candidate_id"),
		Name:          firstString(raw, "name", "candidate_name", "full_name"),
		Email:         firstString(raw, "email", "candidate_email"),
		Mobile:        firstString(raw, "mobile", "candidate_mobile", "phone"),
		ExecutiveName: firstString(raw, "executive_name", "executive", "assigned_executive"),
	}
}

// NormalizeClientJob maps an upstream client-job object onto the canonical
// shape.
func NormalizeClientJob(raw map[string]interface{}) ClientJob {
	return ClientJob{
		ID:         firstString(raw, "id", "client_job_id", "job_id"),
		Title:      firstString(raw, "title", "job_title", "position"),
		ClientName: firstString(raw, "client_name", "client", "company_name"),
	}
}

// NormalizeStatusHistory maps an upstream status-history object onto the
// canonical shape.
func NormalizeStatusHistory(raw map[string]interface{}) StatusHistory {
	return StatusHistory{
		Remarks: firstString(raw, "remarks", "remark", "notes"),
		Status:  firstString(raw, "status", "current_status"),
		Date:    firstString(raw, "date", "updated_at", "created_at"),
	}
}

func firstString(raw map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			if s, ok := v.(string); ok && s != "" {
				return s
			}
			// Upstream ids sometimes arrive as JSON numbers.
			if f, ok := v.(float64); ok {
				return trimFloat(f)
			}
		}
	}
	return ""
}

func trimFloat(f float64) string {
	if f == float64(int64(f)) {
		return strconv.FormatInt(int64(f), 10)
	}
	return ""
}
