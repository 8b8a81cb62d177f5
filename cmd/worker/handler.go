package main

import (
	"context"
	"encoding/json"
	"errors"

	"review-insight/analyzer"
	"review-insight/config"
	"review-insight/eventbus"
	"review-insight/events"
	"review-insight/models"
)

type reviewClassifier interface {
	ClassifyReview(ctx context.Context, review models.Review) (*models.SentimentRecord, error)
}

// newReviewEventHandler classifies the review carried by review.created
// events. Other event types on the topic are acknowledged and ignored, as are
// reviews that can never be classified.
func newReviewEventHandler(classifier reviewClassifier) eventbus.EventHandler {
	return func(ctx context.Context, ev eventbus.Event) error {
		// BaseEvent.Type is top-level in the payload
		var peek struct {
			Type string `json:"type"`
		}
		if err := json.Unmarshal(ev.Payload, &peek); err != nil {
			return err
		}

		switch events.EventType(peek.Type) {
		case events.ReviewCreated:
			v, err := eventbus.DecodeJSON[events.ReviewCreatedEvent](ev)
			if err != nil {
				return err
			}
			rec, err := classifier.ClassifyReview(ctx, v.Review)
			if isPermanent(err) {
				config.WarnWithFields("review event dropped", config.Fields{
					"event_id":  ev.ID,
					"review_id": v.Review.ID.String(),
					"error":     err.Error(),
				})
				return nil
			}
			if err != nil {
				return err
			}
			config.InfoWithFields("review classified", config.Fields{
				"event_id":  ev.ID,
				"review_id": v.Review.ID.String(),
				"label":     rec.Label,
			})
			return nil
		default:
			return nil
		}
	}
}

// isPermanent reports errors that retrying the same review cannot fix.
func isPermanent(err error) bool {
	return errors.Is(err, analyzer.ErrInvalidRating) || errors.Is(err, analyzer.ErrMissingField)
}
