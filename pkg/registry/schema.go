// pkg/registry/schema.go
package registry

import "recruit-backoffice/internal/scoring"

// Registry is the externally swappable lookup data the calculation modules
// run on: calendar event-type definitions and an optional scoring rubric
// override. Shipping defaults live in Default(); a JSON file can replace
// any section without touching control flow.
type Registry struct {
	Version     string         `json:"version"`
	LastUpdated string         `json:"lastUpdated"`
	EventTypes  []EventTypeDef `json:"eventTypes"`

	// GroupedTypes lets one filter key expand to several literal event
	// codes. The current table only carries single-element groups but the
	// mechanism supports more.
	GroupedTypes map[string][]string `json:"groupedTypes"`

	// ExactMatchTypes never match inside a consolidated "A+B" code, in
	// either direction.
	ExactMatchTypes []string `json:"exactMatchTypes"`

	Rubric *scoring.Rubric `json:"rubric,omitempty"`
}

type EventTypeDef struct {
	Code        string `json:"code"`
	DisplayName string `json:"displayName"`
	Color       string `json:"color"`
}
