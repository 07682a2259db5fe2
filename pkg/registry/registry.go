// pkg/registry/registry.go
package registry

import (
	"encoding/json"
	"os"

	"recruit-backoffice/internal/scoring"
)

// Load reads a registry file and fills any section the file omits from the
// shipped defaults.
func Load(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var reg Registry
	if err := json.Unmarshal(data, &reg); err != nil {
		return nil, err
	}
	applyDefaults(&reg)
	return &reg, nil
}

// LoadOrDefault returns the shipped defaults when no path is configured or
// the file is unreadable. Starting up is preferable to failing over lookup
// data we carry built in.
func LoadOrDefault(path string) *Registry {
	if path == "" {
		return Default()
	}
	reg, err := Load(path)
	if err != nil {
		return Default()
	}
	return reg
}

// Default returns the lookup tables currently in force.
func Default() *Registry {
	return &Registry{
		Version: "1.0",
		EventTypes: []EventTypeDef{
			{Code: "NFD", DisplayName: "Next Follow-up Date", Color: "#f59e0b"},
			{Code: "IF", DisplayName: "Interview Fixed", Color: "#3b82f6"},
			{Code: "EDJ", DisplayName: "Expected Date of Joining", Color: "#10b981"},
			{Code: "PS", DisplayName: "Profile Submission", Color: "#8b5cf6"},
			{Code: "ATND", DisplayName: "Attendance", Color: "#ef4444"},
		},
		GroupedTypes: map[string][]string{
			"ATND": {"ATND"},
		},
		ExactMatchTypes: []string{"PS"},
		Rubric:          scoring.DefaultRubric(),
	}
}

func applyDefaults(reg *Registry) {
	def := Default()
	if len(reg.EventTypes) == 0 {
		reg.EventTypes = def.EventTypes
	}
	if reg.GroupedTypes == nil {
		reg.GroupedTypes = def.GroupedTypes
	}
	if reg.ExactMatchTypes == nil {
		reg.ExactMatchTypes = def.ExactMatchTypes
	}
	if reg.Rubric == nil {
		reg.Rubric = def.Rubric
	}
}
