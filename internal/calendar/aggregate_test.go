// internal/calendar/aggregate_test.go
package calendar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruit-backoffice/pkg/registry"
)

func testAggregator(t *testing.T) *Aggregator {
	t.Helper()
	return NewAggregator(registry.Default())
}

func TestMatches(t *testing.T) {
	agg := testAggregator(t)

	tests := []struct {
		name      string
		eventType string
		filter    string
		expected  bool
	}{
		{"empty filter matches everything", "NFD", "", true},
		{"plain exact", "IF", "IF", true},
		{"plain mismatch", "IF", "NFD", false},
		{"consolidated matches first member", "IF+NFD", "IF", true},
		{"consolidated matches second member", "IF+NFD", "NFD", true},
		{"consolidated does not match outsider", "IF+NFD", "EDJ", false},
		{"standalone profile submission matches its own filter", "PS", "PS", true},
		{"profile submission filter rejects consolidated carrier", "IF+PS", "PS", false},
		{"consolidated carrier never matches via its exact-match member", "IF+PS", "PS", false},
		{"consolidated carrier still matches its plain member", "IF+PS", "IF", true},
		{"standalone profile submission rejects other filters", "PS", "IF", false},
		{"grouped filter expands to its members", "ATND", "ATND", true},
		{"empty event type never matches a filter", "", "IF", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, agg.Matches(tt.eventType, tt.filter))
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"space separator rewritten", "2025-03-14 10:30:00+00:00", "2025-03-14T10:30:00+00:00"},
		{"already rfc3339 untouched", "2025-03-14T10:30:00+00:00", "2025-03-14T10:30:00+00:00"},
		{"bare date untouched", "2025-03-14", "2025-03-14"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeDate(tt.raw))
		})
	}
}

func TestBucketKey(t *testing.T) {
	assert.Equal(t, "2025-03-14", BucketKey("2025-03-14 10:30:00+00:00"))
	assert.Equal(t, "2025-03-14", BucketKey("2025-03-14T00:00:00Z"))
	assert.Equal(t, "2025-03-14", BucketKey("2025-03-14"))
}

func TestDayCounts(t *testing.T) {
	agg := testAggregator(t)

	t.Run("backend counts win when present", func(t *testing.T) {
		bucket := DayBucket{
			Date:        "2025-03-14",
			EventCounts: map[string]int{"IF": 7},
			Events: []RawEvent{
				{Type: "NFD"},
			},
		}
		assert.Equal(t, map[string]int{"IF": 7}, agg.DayCounts(bucket))
	})

	t.Run("recount splits consolidated types", func(t *testing.T) {
		bucket := DayBucket{
			Date: "2025-03-14",
			Events: []RawEvent{
				{Type: "IF+NFD"},
				{Type: "IF"},
				{Type: ""},
			},
		}
		assert.Equal(t, map[string]int{"IF": 2, "NFD": 1}, agg.DayCounts(bucket))
	})

	t.Run("recount counts standalone profile submissions only", func(t *testing.T) {
		bucket := DayBucket{
			Date: "2025-03-14",
			Events: []RawEvent{
				{Type: "PS"},
				{Type: "IF+PS"},
			},
		}
		// The consolidated event contributes only its plain member, which
		// agrees with what the filter would return for each code.
		assert.Equal(t, map[string]int{"PS": 1, "IF": 1}, agg.DayCounts(bucket))
	})
}

func TestBuildMonthView(t *testing.T) {
	agg := testAggregator(t)

	t.Run("uses backend totals when present", func(t *testing.T) {
		resp := &StatsResponse{
			Events: []DayBucket{
				{Date: "2025-03-14 09:00:00+00:00", EventCounts: map[string]int{"IF": 2}},
				{Date: "2025-03-15", EventCounts: map[string]int{"NFD": 1}},
			},
			Totals: map[string]int{"IF": 2, "NFD": 1},
		}

		view := agg.BuildMonthView(resp, 3, 2025)
		assert.Equal(t, 3, view.Month)
		assert.Equal(t, 2025, view.Year)
		assert.Equal(t, 3, view.GrandTotal)
		require.Len(t, view.Days, 2)
		assert.Equal(t, "2025-03-14", view.Days[0].Date)
		assert.Equal(t, 2, view.Days[0].Total)
	})

	t.Run("recomputes totals when backend omits them", func(t *testing.T) {
		resp := &StatsResponse{
			Events: []DayBucket{
				{Date: "2025-03-14", Events: []RawEvent{{Type: "IF+NFD"}, {Type: "PS"}}},
				{Date: "2025-03-15", Events: []RawEvent{{Type: "IF"}}},
			},
		}

		view := agg.BuildMonthView(resp, 3, 2025)
		assert.Equal(t, map[string]int{"IF": 2, "NFD": 1, "PS": 1}, view.Totals)
		assert.Equal(t, 4, view.GrandTotal)
	})

	t.Run("empty month", func(t *testing.T) {
		view := agg.BuildMonthView(&StatsResponse{}, 2, 2025)
		assert.Empty(t, view.Days)
		assert.Zero(t, view.GrandTotal)
	})
}

func TestBuildDayDetails(t *testing.T) {
	agg := testAggregator(t)

	bucket := DayBucket{
		Date: "2025-03-14 00:00:00+00:00",
		Events: []RawEvent{
			{
				Type:      "IF+NFD",
				Candidate: map[string]interface{}{"id": float64(101), "candidate_name": "Priya"},
				ClientJob: map[string]interface{}{"id": "J-9", "job_title": "QA Engineer"},
			},
			{
				Type:      "PS",
				Candidate: map[string]interface{}{"id": float64(102), "name": "Arun"},
			},
			{
				Type:      "IF",
				Candidate: map[string]interface{}{"id": float64(101), "candidate_name": "Priya"},
				ClientJob: map[string]interface{}{"id": "J-9"},
			},
		},
	}

	t.Run("unfiltered keeps every event", func(t *testing.T) {
		details := agg.BuildDayDetails(bucket, "")
		assert.Equal(t, "2025-03-14", details.Date)
		require.Len(t, details.Events, 3)
	})

	t.Run("filter keeps consolidated members", func(t *testing.T) {
		details := agg.BuildDayDetails(bucket, "IF")
		require.Len(t, details.Events, 2)
		assert.Equal(t, "IF+NFD", details.Events[0].Type)
		assert.Equal(t, "IF", details.Events[1].Type)
	})

	t.Run("profile submission filter is exact", func(t *testing.T) {
		details := agg.BuildDayDetails(bucket, "PS")
		require.Len(t, details.Events, 1)
		assert.Equal(t, "PS", details.Events[0].Type)
	})

	t.Run("keys stay unique for repeated candidates", func(t *testing.T) {
		details := agg.BuildDayDetails(bucket, "")
		seen := make(map[string]bool)
		for _, ev := range details.Events {
			assert.False(t, seen[ev.Key], "duplicate key %s", ev.Key)
			seen[ev.Key] = true
		}
		assert.Equal(t, "101-J-9-IF+NFD-0", details.Events[0].Key)
		assert.Equal(t, "101-J-9-IF-2", details.Events[2].Key)
	})

	t.Run("consolidated display joins member labels", func(t *testing.T) {
		details := agg.BuildDayDetails(bucket, "IF")
		assert.Equal(t, "Interview Fixed + Next Follow-up Date", details.Events[0].DisplayName)
		assert.Equal(t, "#3b82f6", details.Events[0].Color)
		assert.Equal(t, []string{"IF", "NFD"}, details.Events[0].Types)
	})

	t.Run("unknown code falls back to the raw code", func(t *testing.T) {
		details := agg.BuildDayDetails(DayBucket{
			Date:   "2025-03-14",
			Events: []RawEvent{{Type: "XYZ"}},
		}, "")
		require.Len(t, details.Events, 1)
		assert.Equal(t, "XYZ", details.Events[0].DisplayName)
		assert.Empty(t, details.Events[0].Color)
	})
}
