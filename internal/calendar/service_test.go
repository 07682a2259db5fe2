// internal/calendar/service_test.go
package calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruit-backoffice/internal/common/config"
	"recruit-backoffice/internal/common/database"
	"recruit-backoffice/internal/common/errors"
	httpclient "recruit-backoffice/internal/common/http"
	"recruit-backoffice/internal/common/logger"
	"recruit-backoffice/pkg/registry"
)

type serviceFixture struct {
	svc      *Service
	redis    *miniredis.Miniredis
	upstream *httptest.Server
	hits     *atomic.Int64
}

func newServiceFixture(t *testing.T, handler http.HandlerFunc) *serviceFixture {
	t.Helper()

	mr := miniredis.RunT(t)
	cache, err := database.NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	hits := &atomic.Int64{}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(upstream.Close)

	rest := httpclient.NewRESTClient(upstream.URL, 5*time.Second, nil)
	svc := NewService(rest, cache, NewAggregator(registry.Default()), time.Minute, logger.NewTestLogger(t))

	return &serviceFixture{svc: svc, redis: mr, upstream: upstream, hits: hits}
}

func statsHandler(t *testing.T, resp StatsResponse) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/candidates/calendar-stats/", r.URL.Path)
		assert.Equal(t, "2025-03", r.URL.Query().Get("month"))
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}
}

func TestMonthViewFetchesAndCaches(t *testing.T) {
	fx := newServiceFixture(t, statsHandler(t, StatsResponse{
		Events: []DayBucket{
			{Date: "2025-03-14 09:00:00+00:00", EventCounts: map[string]int{"IF": 2, "NFD": 1}},
		},
		Totals: map[string]int{"IF": 2, "NFD": 1},
	}))

	ctx := context.Background()

	view, err := fx.svc.MonthView(ctx, 3, 2025)
	require.NoError(t, err)
	assert.Equal(t, 3, view.GrandTotal)
	require.Len(t, view.Days, 1)
	assert.Equal(t, "2025-03-14", view.Days[0].Date)

	assert.True(t, fx.redis.Exists("calendar:month:2025-03"))

	// Second call is served from the cache.
	_, err = fx.svc.MonthView(ctx, 3, 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(1), fx.hits.Load())
}

func TestMonthViewRejectsBadParams(t *testing.T) {
	fx := newServiceFixture(t, statsHandler(t, StatsResponse{}))

	tests := []struct {
		name  string
		month int
		year  int
	}{
		{"month zero", 0, 2025},
		{"month thirteen", 13, 2025},
		{"year far past", 3, 1900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fx.svc.MonthView(context.Background(), tt.month, tt.year)
			var stdErr *errors.StandardError
			require.ErrorAs(t, err, &stdErr)
			assert.Equal(t, errors.ErrCodeInvalidParameter, stdErr.Code)
		})
	}
	assert.Zero(t, fx.hits.Load())
}

func TestMonthViewUpstreamFailure(t *testing.T) {
	fx := newServiceFixture(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"boom"}`, http.StatusInternalServerError)
	})

	_, err := fx.svc.MonthView(context.Background(), 3, 2025)
	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeUpstreamRequestFailed, stdErr.Code)
	assert.False(t, fx.redis.Exists("calendar:month:2025-03"))
}

func TestMonthViewRejectsMalformedPayload(t *testing.T) {
	fx := newServiceFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totals":{"IF":1}}`))
	})

	_, err := fx.svc.MonthView(context.Background(), 3, 2025)
	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeUpstreamBadResponse, stdErr.Code)
}

func TestMonthViewInFlightGuard(t *testing.T) {
	fx := newServiceFixture(t, statsHandler(t, StatsResponse{Events: []DayBucket{}}))

	fx.svc.mu.Lock()
	fx.svc.inFlight["calendar:month:2025-03"] = true
	fx.svc.mu.Unlock()

	_, err := fx.svc.MonthView(context.Background(), 3, 2025)
	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeCacheUnavailable, stdErr.Code)
	assert.True(t, stdErr.Retryable)
	assert.Zero(t, fx.hits.Load())
}

func TestDayDetails(t *testing.T) {
	fx := newServiceFixture(t, statsHandler(t, StatsResponse{
		Events: []DayBucket{
			{
				Date: "2025-03-14 00:00:00+00:00",
				Events: []RawEvent{
					{Type: "IF+NFD", Candidate: map[string]interface{}{"id": float64(1), "name": "Priya"}},
					{Type: "PS", Candidate: map[string]interface{}{"id": float64(2), "name": "Arun"}},
				},
			},
		},
	}))

	ctx := context.Background()

	t.Run("filters within the day bucket", func(t *testing.T) {
		details, err := fx.svc.DayDetails(ctx, "2025-03-14", "NFD")
		require.NoError(t, err)
		require.Len(t, details.Events, 1)
		assert.Equal(t, "Priya", details.Events[0].Candidate.Name)
	})

	t.Run("day without a bucket yields an empty list", func(t *testing.T) {
		details, err := fx.svc.DayDetails(ctx, "2025-03-20", "")
		require.NoError(t, err)
		assert.Empty(t, details.Events)
		assert.Equal(t, "2025-03-20", details.Date)
	})

	t.Run("rejects malformed dates", func(t *testing.T) {
		_, err := fx.svc.DayDetails(ctx, "14-03-2025", "")
		var stdErr *errors.StandardError
		require.ErrorAs(t, err, &stdErr)
		assert.Equal(t, errors.ErrCodeInvalidParameter, stdErr.Code)
	})
}

func TestInvalidateAll(t *testing.T) {
	fx := newServiceFixture(t, statsHandler(t, StatsResponse{Events: []DayBucket{}}))

	ctx := context.Background()
	_, err := fx.svc.MonthView(ctx, 3, 2025)
	require.NoError(t, err)
	require.True(t, fx.redis.Exists("calendar:month:2025-03"))

	fx.svc.InvalidateAll(ctx)
	assert.False(t, fx.redis.Exists("calendar:month:2025-03"))

	// Next view re-fetches.
	_, err = fx.svc.MonthView(ctx, 3, 2025)
	require.NoError(t, err)
	assert.Equal(t, int64(2), fx.hits.Load())
}
