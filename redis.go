package localstore

import (
	"context"

	"github.com/go-redis/redis/v8"
)

// Redis implements Medium on a Redis database. Entries are plain string
// values with no expiration, so the persisted layout is readable with
// ordinary redis-cli GET/SET.
type Redis struct {
	r redis.Cmdable
}

// NewRedis creates a Redis-backed medium from any Cmdable (client, cluster
// client or pipeline-compatible wrapper).
func NewRedis(r redis.Cmdable) *Redis {
	return &Redis{r: r}
}

func (m *Redis) GetItem(ctx context.Context, key string) (string, bool, error) {
	val, err := m.r.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (m *Redis) SetItem(ctx context.Context, key, value string) error {
	return m.r.Set(ctx, key, value, 0).Err()
}

func (m *Redis) RemoveItem(ctx context.Context, key string) error {
	return m.r.Del(ctx, key).Err()
}

// Clear flushes the whole logical database, not just one namespace.
func (m *Redis) Clear(ctx context.Context) error {
	return m.r.FlushDB(ctx).Err()
}
