// internal/cache/redis.go
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNoClient is returned when an Outbox is used without a Redis client.
var ErrNoClient = errors.New("outbox has no redis client")

// DefaultPrefix namespaces outbox keys when none is configured.
const DefaultPrefix = "uno"

// ConnectRedis opens a client to addr and checks it with a PING.
func ConnectRedis(addr string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}
	return rdb, nil
}

// Outbox delivers queued player messages to per-player Redis lists, where
// a chat bridge or client can pick them up with LPOP/BLPOP.
type Outbox struct {
	Client *redis.Client
	Prefix string
}

// NewOutbox returns an outbox writing under prefix, or DefaultPrefix.
func NewOutbox(client *redis.Client, prefix string) *Outbox {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Outbox{Client: client, Prefix: prefix}
}

// Key is the list a player's messages are pushed to.
func (o *Outbox) Key(matchID uuid.UUID, playerID int) string {
	return fmt.Sprintf("%s:%s:%d", o.Prefix, matchID, playerID)
}

// Deliver appends msgs, in order, to the player's list.
func (o *Outbox) Deliver(ctx context.Context, matchID uuid.UUID, playerID int, msgs []string) error {
	if len(msgs) == 0 {
		return nil
	}
	if o.Client == nil {
		return ErrNoClient
	}
	values := make([]interface{}, len(msgs))
	for i, m := range msgs {
		values[i] = m
	}
	key := o.Key(matchID, playerID)
	if err := o.Client.RPush(ctx, key, values...).Err(); err != nil {
		return fmt.Errorf("failed to RPush to Redis list '%s': %w", key, err)
	}
	return nil
}
