// internal/calendar/aggregate.go
package calendar

import (
	"fmt"
	"strings"

	"recruit-backoffice/internal/models"
	"recruit-backoffice/pkg/registry"
)

// consolidatedSeparator joins multiple logical event kinds inside a single
// upstream type string, e.g. "IF+NFD".
const consolidatedSeparator = "+"

// Aggregator turns upstream day buckets into display-ready groups, counts
// and detail lists. It is stateless; all lookup data comes from the
// injected registry.
type Aggregator struct {
	types      map[string]registry.EventTypeDef
	groups     map[string][]string
	exactMatch map[string]bool
}

func NewAggregator(reg *registry.Registry) *Aggregator {
	if reg == nil {
		reg = registry.Default()
	}

	types := make(map[string]registry.EventTypeDef, len(reg.EventTypes))
	for _, def := range reg.EventTypes {
		types[def.Code] = def
	}
	exact := make(map[string]bool, len(reg.ExactMatchTypes))
	for _, code := range reg.ExactMatchTypes {
		exact[code] = true
	}

	return &Aggregator{
		types:      types,
		groups:     reg.GroupedTypes,
		exactMatch: exact,
	}
}

// Matches reports whether an event's type string satisfies a single-type
// filter. Consolidated "A+B" types match either member, with one deliberate
// asymmetry: exact-match codes (profile submission) never match inside a
// consolidated code and a consolidated filter member never pulls them in.
func (a *Aggregator) Matches(eventType, filter string) bool {
	if filter == "" {
		return true
	}

	if a.exactMatch[filter] {
		return eventType == filter
	}

	codes := a.expandGroup(filter)
	for _, part := range strings.Split(eventType, consolidatedSeparator) {
		if a.exactMatch[part] && eventType != part {
			// An exact-match code inside a consolidated string never
			// participates in membership matching.
			continue
		}
		for _, code := range codes {
			if part == code {
				return true
			}
		}
	}
	return false
}

// expandGroup resolves a filter key through the grouped-type table. Keys
// without a group entry stand for themselves.
func (a *Aggregator) expandGroup(filter string) []string {
	if group, ok := a.groups[filter]; ok && len(group) > 0 {
		return group
	}
	return []string{filter}
}

// NormalizeDate rewrites the upstream "YYYY-MM-DD HH:MM:SS+00:00" spelling
// into RFC 3339 shape before any parsing. No timezone conversion happens
// anywhere in this package: the backend already emits agency-local dates.
func NormalizeDate(raw string) string {
	return strings.Replace(raw, " ", "T", 1)
}

// BucketKey truncates a normalized date to its calendar day.
func BucketKey(raw string) string {
	return strings.SplitN(NormalizeDate(raw), "T", 2)[0]
}

// DayCounts returns the per-type tally for a bucket. The backend's own
// event_counts map wins when present; the recount fallback counts
// consolidated membership exactly the way the filter does.
func (a *Aggregator) DayCounts(bucket DayBucket) map[string]int {
	if len(bucket.EventCounts) > 0 {
		return bucket.EventCounts
	}

	counts := make(map[string]int)
	for _, event := range bucket.Events {
		if event.Type == "" {
			continue
		}
		if a.exactMatch[event.Type] {
			counts[event.Type]++
			continue
		}
		for _, part := range strings.Split(event.Type, consolidatedSeparator) {
			if part == "" || a.exactMatch[part] {
				continue
			}
			counts[part]++
		}
	}
	return counts
}

// BuildMonthView reshapes the upstream response into grid-ready day
// summaries plus the monthly rollup.
func (a *Aggregator) BuildMonthView(resp *StatsResponse, month, year int) *MonthView {
	view := &MonthView{
		Month:  month,
		Year:   year,
		Days:   make([]DaySummary, 0, len(resp.Events)),
		Totals: resp.Totals,
	}

	if view.Totals == nil {
		view.Totals = make(map[string]int)
		for _, bucket := range resp.Events {
			for code, n := range a.DayCounts(bucket) {
				view.Totals[code] += n
			}
		}
	}
	for _, n := range view.Totals {
		view.GrandTotal += n
	}

	for _, bucket := range resp.Events {
		counts := a.DayCounts(bucket)
		total := 0
		for _, n := range counts {
			total += n
		}
		view.Days = append(view.Days, DaySummary{
			Date:   BucketKey(bucket.Date),
			Counts: counts,
			Total:  total,
		})
	}

	return view
}

// BuildDayDetails normalizes and filters one day's events for the detail
// list.
func (a *Aggregator) BuildDayDetails(bucket DayBucket, filter string) *DayDetails {
	details := &DayDetails{
		Date:   BucketKey(bucket.Date),
		Filter: filter,
		Events: make([]DisplayEvent, 0, len(bucket.Events)),
		Counts: a.DayCounts(bucket),
	}

	for i, event := range bucket.Events {
		if !a.Matches(event.Type, filter) {
			continue
		}
		details.Events = append(details.Events, a.transformEvent(event, i))
	}

	return details
}

func (a *Aggregator) transformEvent(event RawEvent, index int) DisplayEvent {
	candidate := models.NormalizeCandidate(event.Candidate)
	clientJob := models.NormalizeClientJob(event.ClientJob)

	types := strings.Split(event.Type, consolidatedSeparator)
	displayName, color := a.describeType(types)

	return DisplayEvent{
		// Uniqueness only: the same candidate can appear in several events
		// on the same day.
		Key:           fmt.Sprintf("%s-%s-%s-%d", candidate.ID, clientJob.ID, event.Type, index),
		Type:          event.Type,
		Types:         types,
		DisplayName:   displayName,
		Color:         color,
		Candidate:     candidate,
		ClientJob:     clientJob,
		StatusHistory: models.NormalizeStatusHistory(event.StatusHistory),
	}
}

// describeType labels a (possibly consolidated) type. Consolidated events
// join member labels; the color comes from the first member with a
// definition.
func (a *Aggregator) describeType(types []string) (string, string) {
	names := make([]string, 0, len(types))
	color := ""
	for _, code := range types {
		if def, ok := a.types[code]; ok {
			names = append(names, def.DisplayName)
			if color == "" {
				color = def.Color
			}
		} else {
			names = append(names, code)
		}
	}
	return strings.Join(names, " + "), color
}
