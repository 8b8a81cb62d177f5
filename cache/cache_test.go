package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestMemory() (*Memory, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)}
	return NewMemory(time.Minute, clock), clock
}

func TestMemory_Expiry(t *testing.T) {
	ctx := context.Background()
	m, clock := newTestMemory()

	require.NoError(t, m.Set(ctx, "k", []byte(`1`)))

	e, found, err := m.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, e.Fresh)

	clock.Advance(61 * time.Second)
	e, found, _ = m.Get(ctx, "k")
	assert.True(t, found)
	assert.False(t, e.Fresh)
}

func TestMemory_Invalidate(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestMemory()

	require.NoError(t, m.Set(ctx, "a", []byte(`1`)))
	require.NoError(t, m.Set(ctx, "b", []byte(`2`)))
	require.NoError(t, m.Invalidate(ctx, "a"))

	_, found, _ := m.Get(ctx, "a")
	assert.False(t, found)
	_, found, _ = m.Get(ctx, "b")
	assert.True(t, found)
}

func TestGetOrLoad(t *testing.T) {
	ctx := context.Background()
	m, clock := newTestMemory()
	calls := 0
	load := func(context.Context) ([]string, error) {
		calls++
		return []string{"x"}, nil
	}

	v, res, err := GetOrLoad(ctx, m, "list", load)
	require.NoError(t, err)
	assert.Equal(t, Miss, res)
	assert.Equal(t, []string{"x"}, v)

	_, res, _ = GetOrLoad(ctx, m, "list", load)
	assert.Equal(t, Hit, res)
	assert.Equal(t, 1, calls)

	clock.Advance(2 * time.Minute)
	_, res, _ = GetOrLoad(ctx, m, "list", load)
	assert.Equal(t, Miss, res)
	assert.Equal(t, 2, calls)
}

func TestGetOrLoad_ServesStaleOnError(t *testing.T) {
	ctx := context.Background()
	m, clock := newTestMemory()
	require.NoError(t, m.Set(ctx, "list", []byte(`["old"]`)))
	clock.Advance(5 * time.Minute)

	failing := func(context.Context) ([]string, error) { return nil, errors.New("db down") }

	v, res, err := GetOrLoad(ctx, m, "list", failing)
	require.NoError(t, err)
	assert.Equal(t, Stale, res)
	assert.Equal(t, []string{"old"}, v)
}

func TestGetOrLoad_ErrorWithoutCopy(t *testing.T) {
	m, _ := newTestMemory()
	boom := errors.New("db down")

	_, _, err := GetOrLoad(context.Background(), m, "missing", func(context.Context) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
}

func TestRedisEnvelope(t *testing.T) {
	stored := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	raw, err := encodeEnvelope([]byte(`{"a":1}`), stored)
	require.NoError(t, err)

	e, found, err := decodeEnvelope(raw, stored.Add(30*time.Second), time.Minute)
	require.NoError(t, err)
	assert.True(t, found)
	assert.True(t, e.Fresh)
	assert.JSONEq(t, `{"a":1}`, string(e.Value))

	e, _, _ = decodeEnvelope(raw, stored.Add(2*time.Minute), time.Minute)
	assert.False(t, e.Fresh)

	_, _, err = decodeEnvelope([]byte("nope"), stored, time.Minute)
	assert.Error(t, err)
}
