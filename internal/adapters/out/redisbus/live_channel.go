// Package redisbus delivers status events to live sockets through Redis pub/sub.
// Every user has a channel named "<prefix>:user:<id>"; whichever process holds
// that user's socket subscribes to it.
package redisbus

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shipflow/internal/core/domain/model/kernel"
	"shipflow/internal/core/ports"

	goredis "github.com/redis/go-redis/v9"
)

const ChannelName = "live"

// Connect opens a client and pings the server once.
func Connect(ctx context.Context, addr string) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

type LiveChannel struct {
	rdb    goredis.UniversalClient
	prefix string
}

var _ ports.NotificationChannel = (*LiveChannel)(nil)

func NewLiveChannel(rdb goredis.UniversalClient, prefix string) *LiveChannel {
	return &LiveChannel{rdb: rdb, prefix: prefix}
}

func (c *LiveChannel) Name() string { return ChannelName }

// Addresses always returns the user's pub/sub channel. Whether anybody listens
// is unknown to the publisher.
func (c *LiveChannel) Addresses(_ context.Context, recipient kernel.UUID) ([]string, error) {
	return []string{c.topic(recipient)}, nil
}

func (c *LiveChannel) Send(ctx context.Context, address string, event ports.StatusEvent) error {
	raw, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encode status event: %w", err)
	}
	if err = c.rdb.Publish(ctx, address, raw).Err(); err != nil {
		return fmt.Errorf("publish to %s: %w", address, err)
	}
	return nil
}

// Retire is a no-op: a pub/sub channel never goes stale.
func (c *LiveChannel) Retire(context.Context, string) error { return nil }

// Subscribe streams the events published for recipient until ctx ends or the
// returned close function is called. Payloads that do not decode are skipped.
func (c *LiveChannel) Subscribe(ctx context.Context, recipient kernel.UUID) (<-chan ports.StatusEvent, func() error, error) {
	sub := c.rdb.Subscribe(ctx, c.topic(recipient))
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, nil, fmt.Errorf("redis subscribe: %w", err)
	}

	events := make(chan ports.StatusEvent)
	go func() {
		defer close(events)
		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				_ = sub.Close()
				return
			case m, ok := <-messages:
				if !ok || m == nil {
					return
				}
				var event ports.StatusEvent
				if err := json.Unmarshal([]byte(m.Payload), &event); err != nil {
					continue
				}
				select {
				case events <- event:
				case <-ctx.Done():
					_ = sub.Close()
					return
				}
			}
		}
	}()

	return events, sub.Close, nil
}

func (c *LiveChannel) topic(recipient kernel.UUID) string {
	return c.prefix + ":user:" + recipient.String()
}
