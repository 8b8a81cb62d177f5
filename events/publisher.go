package events

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"review-insight/eventbus"
	"review-insight/models"
)

const eventVersion = "1.0"

// ReviewPublisher publishes review events to the review topic.
type ReviewPublisher struct {
	bus      eventbus.EventBus
	topic    eventbus.Topic
	source   string
	maxRetry int
	now      func() time.Time
}

func NewReviewPublisher(bus eventbus.EventBus, topic eventbus.Topic, source string) *ReviewPublisher {
	return &ReviewPublisher{
		bus:      bus,
		topic:    topic,
		source:   source,
		maxRetry: len(eventbus.RetryDelays),
		now:      time.Now,
	}
}

func (p *ReviewPublisher) PublishReviewCreated(ctx context.Context, review models.Review) error {
	payload := ReviewCreatedEvent{
		BaseEvent: BaseEvent{
			Type:      ReviewCreated,
			Timestamp: p.now(),
			Source:    p.source,
			Version:   eventVersion,
		},
		Review: review,
	}
	evt, err := eventbus.NewJSONEvent(uuid.New().String(), payload, p.maxRetry)
	if err != nil {
		return err
	}
	if err := p.bus.Publish(ctx, p.topic.Base(), evt); err != nil {
		return fmt.Errorf("publish %s for review %s: %w", ReviewCreated, review.ID, err)
	}
	return nil
}
