package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// staleWindow is how many TTLs an entry is kept in redis for stale reads.
const staleWindow = 10

// Redis shares cached results between API replicas.
type Redis struct {
	rdb    *goredis.Client
	prefix string
	ttl    time.Duration
	clock  Clock
}

type redisEnvelope struct {
	StoredAt time.Time       `json:"stored_at"`
	Value    json.RawMessage `json:"value"`
}

// NewRedis connects to addr and verifies the connection with a ping.
func NewRedis(ctx context.Context, addr, prefix string, ttl time.Duration) (*Redis, error) {
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &Redis{rdb: rdb, prefix: prefix, ttl: ttl, clock: SystemClock}, nil
}

func (r *Redis) Get(ctx context.Context, key string) (Entry, bool, error) {
	raw, err := r.rdb.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, err
	}
	return decodeEnvelope(raw, r.clock.Now(), r.ttl)
}

func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	raw, err := encodeEnvelope(value, r.clock.Now())
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, r.prefix+key, raw, r.ttl*staleWindow).Err()
}

func (r *Redis) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = r.prefix + k
	}
	return r.rdb.Del(ctx, full...).Err()
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}

func encodeEnvelope(value []byte, now time.Time) ([]byte, error) {
	return json.Marshal(redisEnvelope{StoredAt: now, Value: value})
}

func decodeEnvelope(raw []byte, now time.Time, ttl time.Duration) (Entry, bool, error) {
	var env redisEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Entry{}, false, fmt.Errorf("decode cache envelope: %w", err)
	}
	return Entry{
		Value:    env.Value,
		StoredAt: env.StoredAt,
		Fresh:    now.Sub(env.StoredAt) < ttl,
	}, true, nil
}
