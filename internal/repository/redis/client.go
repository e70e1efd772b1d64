package redis

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/iamasit07/4-in-a-row/console/internal/domain"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// Publisher sends game events to a Redis pub/sub channel.
type Publisher struct {
	client  *redis.Client
	channel string
	enabled bool
}

func newOptions(addr, password string) (*redis.Options, error) {
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		opts, err := redis.ParseURL(addr)
		if err != nil {
			return nil, errors.Wrap(err, "invalid REDIS_URL")
		}
		if password != "" {
			opts.Password = password
		}
		return opts, nil
	}
	return &redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	}, nil
}

// NewPublisher connects to Redis. An unreachable server is not fatal: the
// publisher is returned disabled and every Publish becomes a no-op.
func NewPublisher(ctx context.Context, addr, password, channel string) (*Publisher, error) {
	opts, err := newOptions(addr, password)
	if err != nil {
		return nil, err
	}
	opts.DialTimeout = 2 * time.Second

	p := &Publisher{
		client:  redis.NewClient(opts),
		channel: channel,
	}

	// Test connection
	if err := p.client.Ping(ctx).Err(); err != nil {
		log.Printf("[REDIS] Warning: Could not connect to Redis: %v. Game events will not be published.", err)
		return p, nil
	}

	p.enabled = true
	log.Printf("[REDIS] Connected successfully, publishing to %s", channel)
	return p, nil
}

// IsEnabled returns whether Redis is available
func (p *Publisher) IsEnabled() bool {
	return p != nil && p.enabled
}

// Publish implements game.Publisher.
func (p *Publisher) Publish(ctx context.Context, message domain.ServerMessage) error {
	if !p.IsEnabled() {
		return nil
	}
	payload, err := json.Marshal(message)
	if err != nil {
		return errors.Wrap(err, "encode event")
	}
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return errors.Wrapf(err, "publish to %s", p.channel)
	}
	return nil
}

// Close closes the Redis connection
func (p *Publisher) Close() error {
	if p != nil && p.client != nil {
		return p.client.Close()
	}
	return nil
}
