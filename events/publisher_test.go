package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"review-insight/eventbus"
	"review-insight/models"
)

type captureBus struct {
	eventbus.EventBus
	topic string
	event eventbus.Event
	err   error
}

func (b *captureBus) Publish(_ context.Context, topic string, evt eventbus.Event) error {
	b.topic = topic
	b.event = evt
	return b.err
}

func TestPublishReviewCreated(t *testing.T) {
	bus := &captureBus{}
	pub := NewReviewPublisher(bus, eventbus.NewTopic("review-insight.review.events"), "api")
	fixed := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)
	pub.now = func() time.Time { return fixed }

	review := models.Review{ID: models.IntID(42), User: "sari", ProductName: "Kemeja", Rating: 5, Comment: "bagus"}
	require.NoError(t, pub.PublishReviewCreated(context.Background(), review))

	assert.Equal(t, "review-insight.review.events", bus.topic)
	assert.NotEmpty(t, bus.event.ID)
	assert.Equal(t, len(eventbus.RetryDelays), bus.event.MaxRetry)

	got, err := eventbus.DecodeJSON[ReviewCreatedEvent](bus.event)
	require.NoError(t, err)
	assert.Equal(t, ReviewCreated, got.Type)
	assert.Equal(t, "api", got.Source)
	assert.True(t, fixed.Equal(got.Timestamp))
	assert.True(t, got.Review.ID.Equal(models.IntID(42)))
	assert.Equal(t, "bagus", got.Review.Comment)
}

func TestPublishReviewCreatedError(t *testing.T) {
	bus := &captureBus{err: errors.New("broker unavailable")}
	pub := NewReviewPublisher(bus, eventbus.NewTopic("t"), "api")

	err := pub.PublishReviewCreated(context.Background(), models.Review{ID: models.IntID(1)})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "review.created")
	assert.ErrorIs(t, err, bus.err)
}
