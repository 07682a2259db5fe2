// internal/handoff/store.go

// Package handoff is the drill-down payload store: a list view parks a
// payload under a generated token, the detail view claims it exactly once.
// Entries are short-lived and transient by design; this is never a durable
// store.
package handoff

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"recruit-backoffice/internal/common/database"
	"recruit-backoffice/internal/common/errors"
	"recruit-backoffice/internal/common/logger"
)

const keyPrefix = "handoff:"

type Store struct {
	redis  *database.RedisClient
	ttl    time.Duration
	logger logger.Logger
}

func NewStore(redisClient *database.RedisClient, ttl time.Duration, log logger.Logger) *Store {
	return &Store{
		redis:  redisClient,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"component": "handoff"}),
	}
}

// Put stores a payload and returns its claim token.
func (s *Store) Put(ctx context.Context, payload json.RawMessage) (string, error) {
	if len(payload) == 0 || !json.Valid(payload) {
		return "", errors.NewInvalidParameterError("payload", "must be valid JSON")
	}

	token := uuid.New().String()
	if err := s.redis.Set(ctx, keyPrefix+token, []byte(payload), s.ttl); err != nil {
		return "", errors.NewCacheUnavailableError(err)
	}

	s.logger.Debug("handoff stored", map[string]interface{}{"token": token})
	return token, nil
}

// Claim returns a payload and deletes it in the same operation. A second
// claim of the same token fails: the entry either expired or was already
// consumed, and the two cases are indistinguishable on purpose.
func (s *Store) Claim(ctx context.Context, token string) (json.RawMessage, error) {
	if token == "" {
		return nil, errors.NewInvalidParameterError("token", "must not be empty")
	}

	payload, err := s.redis.GetDel(ctx, keyPrefix+token)
	if err == redis.Nil {
		return nil, errors.NewHandoffNotFoundError(token)
	}
	if err != nil {
		return nil, errors.NewCacheUnavailableError(err)
	}

	return json.RawMessage(payload), nil
}
