package redislock

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Lock is a minimal SET NX lock used to serialize payment application per
// restaurant. Keys expire on their own, so a crashed holder cannot wedge a
// restaurant forever.
type Lock struct {
	client *redis.Client
}

func NewLock(client *redis.Client) *Lock {
	return &Lock{
		client: client,
	}
}

func (l *Lock) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	return l.client.SetNX(ctx, key, "1", ttl).Result()
}

func (l *Lock) Release(ctx context.Context, key string) error {
	return l.client.Del(ctx, key).Err()
}
