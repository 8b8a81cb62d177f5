// Package cache keeps recently computed query results for a short time.
// Entries outlive their TTL so a stale copy can be served when the backing
// store is unavailable.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"review-insight/config"
)

// Clock abstracts time so expiry can be tested.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock is the wall clock.
var SystemClock Clock = systemClock{}

// Entry is a cached payload and whether it is still within its TTL.
type Entry struct {
	Value    []byte
	StoredAt time.Time
	Fresh    bool
}

type Cache interface {
	// Get returns the entry for key, expired or not. found is false on a miss.
	Get(ctx context.Context, key string) (entry Entry, found bool, err error)
	Set(ctx context.Context, key string, value []byte) error
	Invalidate(ctx context.Context, keys ...string) error
}

// Result tells where a GetOrLoad value came from.
type Result string

const (
	Hit   Result = "hit"
	Miss  Result = "miss"
	Stale Result = "stale"
)

// GetOrLoad returns the fresh cached value for key or calls load and caches
// its result. If load fails and an expired copy exists, the copy is returned
// with Stale and a nil error.
func GetOrLoad[T any](ctx context.Context, c Cache, key string, load func(context.Context) (T, error)) (T, Result, error) {
	var zero T

	entry, found, err := c.Get(ctx, key)
	if err != nil {
		config.ErrorWithFields("cache read failed", config.Fields{"key": key, "error": err.Error()})
		found = false
	}

	if found && entry.Fresh {
		var v T
		if err := json.Unmarshal(entry.Value, &v); err == nil {
			return v, Hit, nil
		}
		found = false
	}

	v, loadErr := load(ctx)
	if loadErr == nil {
		if raw, err := json.Marshal(v); err == nil {
			if err := c.Set(ctx, key, raw); err != nil {
				config.ErrorWithFields("cache write failed", config.Fields{"key": key, "error": err.Error()})
			}
		}
		return v, Miss, nil
	}

	if found {
		var stale T
		if err := json.Unmarshal(entry.Value, &stale); err == nil {
			config.WarnWithFields("serving stale cache entry", config.Fields{
				"key":       key,
				"stored_at": entry.StoredAt,
				"error":     loadErr.Error(),
			})
			return stale, Stale, nil
		}
	}
	return zero, Miss, loadErr
}
