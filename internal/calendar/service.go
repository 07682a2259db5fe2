// internal/calendar/service.go
package calendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sync"
	"time"

	"recruit-backoffice/internal/common/database"
	"recruit-backoffice/internal/common/errors"
	httpclient "recruit-backoffice/internal/common/http"
	"recruit-backoffice/internal/common/logger"
	"recruit-backoffice/internal/common/metrics"
	"recruit-backoffice/internal/common/validation"
)

const cacheKeyPrefix = "calendar:month:"

// statsSchema is the boundary contract for the upstream calendar-stats
// payload. Validation runs before any transform touches the data.
var statsSchema = map[string]interface{}{
	"type":     "object",
	"required": []interface{}{"events"},
	"properties": map[string]interface{}{
		"events": map[string]interface{}{
			"type": "array",
			"items": map[string]interface{}{
				"type":     "object",
				"required": []interface{}{"date"},
				"properties": map[string]interface{}{
					"date":         map[string]interface{}{"type": "string"},
					"event_counts": map[string]interface{}{"type": "object"},
					"events":       map[string]interface{}{"type": "array"},
				},
			},
		},
		"totals": map[string]interface{}{"type": "object"},
	},
}

// Service fetches month stats from the upstream backend, caches the raw
// response briefly in Redis and serves display transforms. There is no
// request cancellation and no de-duplication beyond the boolean in-flight
// guard: a fetch for a month already being fetched is skipped and the
// caller gets whatever the cache holds.
type Service struct {
	rest     *httpclient.RESTClient
	cache    *database.RedisClient
	agg      *Aggregator
	logger   logger.Logger
	cacheTTL time.Duration

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewService(rest *httpclient.RESTClient, cache *database.RedisClient, agg *Aggregator, cacheTTL time.Duration, log logger.Logger) *Service {
	return &Service{
		rest:     rest,
		cache:    cache,
		agg:      agg,
		logger:   log.WithFields(map[string]interface{}{"component": "calendar"}),
		cacheTTL: cacheTTL,
		inFlight: make(map[string]bool),
	}
}

// Aggregator exposes the pure transform layer for callers that already
// hold a payload.
func (s *Service) Aggregator() *Aggregator {
	return s.agg
}

// MonthView returns the display-ready view for a month.
func (s *Service) MonthView(ctx context.Context, month, year int) (*MonthView, error) {
	stats, err := s.monthStats(ctx, month, year)
	if err != nil {
		return nil, err
	}
	return s.agg.BuildMonthView(stats, month, year), nil
}

// DayDetails returns one day's detail list, filtered by an event-type code
// when filter is non-empty. The date must be a calendar day (YYYY-MM-DD).
func (s *Service) DayDetails(ctx context.Context, date, filter string) (*DayDetails, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, errors.NewInvalidParameterError("date", "expected YYYY-MM-DD")
	}

	stats, err := s.monthStats(ctx, int(day.Month()), day.Year())
	if err != nil {
		return nil, err
	}

	for _, bucket := range stats.Events {
		if BucketKey(bucket.Date) == date {
			return s.agg.BuildDayDetails(bucket, filter), nil
		}
	}

	// No bucket means no events that day, not an error.
	return &DayDetails{
		Date:   date,
		Filter: filter,
		Events: []DisplayEvent{},
		Counts: map[string]int{},
	}, nil
}

// InvalidateAll drops every cached month. Called when a refresh trigger
// arrives on the broadcast channel.
func (s *Service) InvalidateAll(ctx context.Context) {
	client := s.cache.GetClient()
	iter := client.Scan(ctx, 0, cacheKeyPrefix+"*", 100).Iterator()
	dropped := 0
	for iter.Next(ctx) {
		if err := client.Del(ctx, iter.Val()).Err(); err == nil {
			dropped++
		}
	}
	if err := iter.Err(); err != nil {
		s.logger.Warn("cache invalidation scan failed", map[string]interface{}{"error": err})
		return
	}
	metrics.CalendarCacheEvents.WithLabelValues("invalidate").Add(float64(dropped))
	s.logger.Info("calendar cache invalidated", map[string]interface{}{"keys": dropped})
}

func (s *Service) monthStats(ctx context.Context, month, year int) (*StatsResponse, error) {
	if month < 1 || month > 12 {
		return nil, errors.NewInvalidParameterError("month", "must be 1-12")
	}
	if year < 2000 || year > 2100 {
		return nil, errors.NewInvalidParameterError("year", "out of range")
	}

	key := fmt.Sprintf("%s%04d-%02d", cacheKeyPrefix, year, month)

	if cached, err := s.cache.Get(ctx, key); err == nil {
		var stats StatsResponse
		if err := json.Unmarshal([]byte(cached), &stats); err == nil {
			metrics.CalendarCacheEvents.WithLabelValues("hit").Inc()
			return &stats, nil
		}
	}
	metrics.CalendarCacheEvents.WithLabelValues("miss").Inc()

	s.mu.Lock()
	if s.inFlight[key] {
		s.mu.Unlock()
		// Another request is already fetching this month; the UI keeps
		// showing what it has until the next trigger.
		return nil, errors.NewCacheUnavailableError(fmt.Errorf("fetch already in progress for %s", key))
	}
	s.inFlight[key] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inFlight, key)
		s.mu.Unlock()
	}()

	stats, err := s.fetchMonthStats(ctx, month, year)
	if err != nil {
		metrics.UpstreamRequestsTotal.WithLabelValues("calendar-stats", "error").Inc()
		return nil, err
	}
	metrics.UpstreamRequestsTotal.WithLabelValues("calendar-stats", "success").Inc()

	if data, err := json.Marshal(stats); err == nil {
		if err := s.cache.Set(ctx, key, data, s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache month stats", map[string]interface{}{
				"key":   key,
				"error": err,
			})
		}
	}

	return stats, nil
}

func (s *Service) fetchMonthStats(ctx context.Context, month, year int) (*StatsResponse, error) {
	query := url.Values{}
	query.Set("month", fmt.Sprintf("%04d-%02d", year, month))
	query.Set("year", fmt.Sprintf("%d", year))

	var raw map[string]interface{}
	if err := s.rest.Get(ctx, "/candidates/calendar-stats/", query, &raw); err != nil {
		return nil, err
	}

	if err := validation.ValidateAgainstSchema(raw, statsSchema); err != nil {
		return nil, errors.NewUpstreamBadResponseError(err)
	}

	data, err := json.Marshal(raw)
	if err != nil {
		return nil, errors.NewUpstreamBadResponseError(err)
	}
	var stats StatsResponse
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, errors.NewUpstreamBadResponseError(err)
	}

	s.logger.Debug("month stats fetched", map[string]interface{}{
		"month": month,
		"year":  year,
		"days":  len(stats.Events),
	})

	return &stats, nil
}
