package notification

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"

	coreport "github.com/amirhossein-jamali/locker-rental/internal/domain/port/core"
	"github.com/amirhossein-jamali/locker-rental/internal/domain/port/event"
)

// DefaultChannel is used when no channel is configured
const DefaultChannel = "locker-rental.events"

// RedisConfig holds the connection settings of the publisher
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

// RedisPublisher publishes events as JSON on a redis pub/sub channel
type RedisPublisher struct {
	client  *redis.Client
	channel string
	logger  coreport.Logger
}

var _ event.Notifier = (*RedisPublisher)(nil)

// NewRedisPublisher connects to redis. An unreachable server is logged, not fatal:
// publishing fails until it comes back.
func NewRedisPublisher(ctx context.Context, cfg RedisConfig, logger coreport.Logger) *RedisPublisher {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Warn("Unable to reach redis", map[string]any{
			"addr":  cfg.Addr,
			"error": err.Error(),
		})
	} else {
		logger.Info("Connected to redis", map[string]any{"addr": cfg.Addr})
	}

	channel := cfg.Channel
	if channel == "" {
		channel = DefaultChannel
	}

	return &RedisPublisher{client: client, channel: channel, logger: logger}
}

// Publish sends the event to the channel
func (p *RedisPublisher) Publish(ctx context.Context, evt event.Event) error {
	payload, err := encodeEvent(withID(evt))
	if err != nil {
		return err
	}

	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish %s to %s: %w", evt.Type, p.channel, err)
	}
	return nil
}

// Ping verifies redis connectivity
func (p *RedisPublisher) Ping(ctx context.Context) error {
	return p.client.Ping(ctx).Err()
}

// Close closes the client
func (p *RedisPublisher) Close() error {
	return p.client.Close()
}

func encodeEvent(evt event.Event) ([]byte, error) {
	payload, err := json.Marshal(evt)
	if err != nil {
		return nil, fmt.Errorf("encode event %s: %w", evt.Type, err)
	}
	return payload, nil
}
