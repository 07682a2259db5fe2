// internal/handoff/store_test.go
package handoff

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recruit-backoffice/internal/common/config"
	"recruit-backoffice/internal/common/database"
	"recruit-backoffice/internal/common/errors"
	"recruit-backoffice/internal/common/logger"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	redis, err := database.NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = redis.Close() })
	return NewStore(redis, 10*time.Minute, logger.NewTestLogger(t)), mr
}

func TestPutAndClaim(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	payload := json.RawMessage(`{"candidate_id":"417","date":"2025-03-14"}`)
	token, err := store.Put(ctx, payload)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	got, err := store.Claim(ctx, token)
	require.NoError(t, err)
	assert.JSONEq(t, string(payload), string(got))
}

func TestClaimIsOneShot(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	token, err := store.Put(ctx, json.RawMessage(`{"x":1}`))
	require.NoError(t, err)

	_, err = store.Claim(ctx, token)
	require.NoError(t, err)

	_, err = store.Claim(ctx, token)
	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeHandoffNotFound, stdErr.Code)
}

func TestClaimExpiredToken(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	token, err := store.Put(ctx, json.RawMessage(`{"x":1}`))
	require.NoError(t, err)

	mr.FastForward(11 * time.Minute)

	_, err = store.Claim(ctx, token)
	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeHandoffNotFound, stdErr.Code)
}

func TestPutRejectsInvalidPayloads(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	tests := []struct {
		name    string
		payload json.RawMessage
	}{
		{"empty", nil},
		{"not json", json.RawMessage(`{"unclosed":`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := store.Put(ctx, tt.payload)
			var stdErr *errors.StandardError
			require.ErrorAs(t, err, &stdErr)
			assert.Equal(t, errors.ErrCodeInvalidParameter, stdErr.Code)
		})
	}
}

func TestClaimEmptyToken(t *testing.T) {
	store, _ := newTestStore(t)

	_, err := store.Claim(context.Background(), "")
	var stdErr *errors.StandardError
	require.ErrorAs(t, err, &stdErr)
	assert.Equal(t, errors.ErrCodeInvalidParameter, stdErr.Code)
}

func TestTokensAreUnique(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		token, err := store.Put(ctx, json.RawMessage(`{"i":1}`))
		require.NoError(t, err)
		assert.False(t, seen[token])
		seen[token] = true
	}
}
