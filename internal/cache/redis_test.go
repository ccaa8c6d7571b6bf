// internal/cache/redis_test.go
package cache

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestOutboxKey(t *testing.T) {
	id := uuid.MustParse("6f1c2a4e-7d1b-4c3a-9e55-0b8f3e2d1a90")

	o := NewOutbox(nil, "")
	assert.Equal(t, "uno:6f1c2a4e-7d1b-4c3a-9e55-0b8f3e2d1a90:3", o.Key(id, 3))

	o = NewOutbox(nil, "table9")
	assert.Equal(t, "table9:6f1c2a4e-7d1b-4c3a-9e55-0b8f3e2d1a90:0", o.Key(id, 0))
}

func TestDeliverWithoutClient(t *testing.T) {
	o := NewOutbox(nil, "")
	ctx := context.Background()

	assert.NoError(t, o.Deliver(ctx, uuid.New(), 1, nil))
	assert.ErrorIs(t, o.Deliver(ctx, uuid.New(), 1, []string{"hi"}), ErrNoClient)
}

func TestDeliverUnreachable(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 200 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer rdb.Close()

	err := NewOutbox(rdb, "").Deliver(context.Background(), uuid.New(), 0, []string{"hi"})
	assert.ErrorContains(t, err, "failed to RPush")
}

func TestConnectRedisUnreachable(t *testing.T) {
	_, err := ConnectRedis("127.0.0.1:1", 0)
	assert.ErrorContains(t, err, "failed to connect to Redis at 127.0.0.1:1")
}
