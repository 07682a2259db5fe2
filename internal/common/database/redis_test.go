// internal/common/database/redis_test.go
package database

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetAndGet(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}
	ctx := context.Background()

	mock.ExpectSet("calendar:month:2025-03", []byte(`{"events":[]}`), time.Minute).SetVal("OK")
	require.NoError(t, client.Set(ctx, "calendar:month:2025-03", []byte(`{"events":[]}`), time.Minute))

	mock.ExpectGet("calendar:month:2025-03").SetVal(`{"events":[]}`)
	val, err := client.Get(ctx, "calendar:month:2025-03")
	require.NoError(t, err)
	assert.Equal(t, `{"events":[]}`, val)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMiss(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectGet("absent").RedisNil()
	_, err := client.Get(context.Background(), "absent")
	assert.ErrorIs(t, err, redis.Nil)
}

func TestGetDelIsOneShot(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}
	ctx := context.Background()

	mock.ExpectGetDel("handoff:tok").SetVal(`{"x":1}`)
	val, err := client.GetDel(ctx, "handoff:tok")
	require.NoError(t, err)
	assert.Equal(t, `{"x":1}`, val)

	mock.ExpectGetDel("handoff:tok").RedisNil()
	_, err = client.GetDel(ctx, "handoff:tok")
	assert.ErrorIs(t, err, redis.Nil)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestPublish(t *testing.T) {
	db, mock := redismock.NewClientMock()
	client := &RedisClient{Client: db}

	mock.ExpectPublish("calendar:refresh", []byte(`{"type":"CALENDAR_REFRESH_TRIGGER"}`)).SetVal(1)
	require.NoError(t, client.Publish(context.Background(), "calendar:refresh", []byte(`{"type":"CALENDAR_REFRESH_TRIGGER"}`)))
	require.NoError(t, mock.ExpectationsWereMet())
}
