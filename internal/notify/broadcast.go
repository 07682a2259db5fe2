// internal/notify/broadcast.go

// Package notify carries the cross-instance refresh signal over Redis
// pub/sub. It is fire and forget: no delivery or ordering guarantee, and
// subscribers treat any message on the channel as a trigger.
package notify

import (
	"context"
	"encoding/json"

	"recruit-backoffice/internal/common/database"
	"recruit-backoffice/internal/common/logger"
)

// RefreshTrigger is the only message type currently published.
const RefreshTrigger = "CALENDAR_REFRESH_TRIGGER"

type message struct {
	Type string `json:"type"`
}

// Broadcaster publishes and subscribes on one named channel.
type Broadcaster struct {
	redis   *database.RedisClient
	channel string
	logger  logger.Logger
}

func NewBroadcaster(redis *database.RedisClient, channel string, log logger.Logger) *Broadcaster {
	return &Broadcaster{
		redis:   redis,
		channel: channel,
		logger:  log.WithFields(map[string]interface{}{"component": "notify", "channel": channel}),
	}
}

// PublishRefresh fires the trigger. Publish failures are logged and
// swallowed: a lost signal costs one stale view until the next refetch,
// never correctness.
func (b *Broadcaster) PublishRefresh(ctx context.Context) {
	payload, _ := json.Marshal(message{Type: RefreshTrigger})
	if err := b.redis.Publish(ctx, b.channel, payload); err != nil {
		b.logger.Warn("refresh publish failed", map[string]interface{}{"error": err})
		return
	}
	b.logger.Debug("refresh trigger published", nil)
}

// Listen blocks until ctx is done, invoking onTrigger for every message
// received. Any message counts, malformed payloads included: the channel's
// contract is "a message arrived", not its content.
func (b *Broadcaster) Listen(ctx context.Context, onTrigger func(context.Context)) {
	sub := b.redis.Subscribe(ctx, b.channel)
	defer sub.Close()

	ch := sub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			b.logger.Debug("broadcast received", map[string]interface{}{"payload": msg.Payload})
			onTrigger(ctx)
		}
	}
}
