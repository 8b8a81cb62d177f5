package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"review-insight/analyzer"
	"review-insight/eventbus"
	"review-insight/events"
	"review-insight/models"
)

type fakeClassifier struct {
	got []models.Review
	err error
}

func (f *fakeClassifier) ClassifyReview(_ context.Context, review models.Review) (*models.SentimentRecord, error) {
	f.got = append(f.got, review)
	if f.err != nil {
		return nil, f.err
	}
	return &models.SentimentRecord{Label: models.LabelPositive}, nil
}

func reviewCreated(t *testing.T, review models.Review) eventbus.Event {
	t.Helper()
	evt, err := eventbus.NewJSONEvent("", events.ReviewCreatedEvent{
		BaseEvent: events.BaseEvent{Type: events.ReviewCreated, Source: "api"},
		Review:    review,
	}, 0)
	require.NoError(t, err)
	return evt
}

func TestReviewEventHandlerClassifies(t *testing.T) {
	fc := &fakeClassifier{}
	h := newReviewEventHandler(fc)

	require.NoError(t, h(context.Background(), reviewCreated(t, models.Review{ID: models.IntID(9), Comment: "mantap"})))
	require.Len(t, fc.got, 1)
	assert.Equal(t, "mantap", fc.got[0].Comment)
	assert.True(t, fc.got[0].ID.Equal(models.IntID(9)))
}

func TestReviewEventHandlerPropagatesFailure(t *testing.T) {
	fc := &fakeClassifier{err: errors.New("mongo down")}
	h := newReviewEventHandler(fc)

	err := h(context.Background(), reviewCreated(t, models.Review{ID: models.IntID(9)}))
	assert.EqualError(t, err, "mongo down")
}

func TestReviewEventHandlerAcksUnclassifiableReviews(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{"invalid rating", fmt.Errorf("%w: got 9", analyzer.ErrInvalidRating), false},
		{"missing product id", fmt.Errorf("%w: product id", analyzer.ErrMissingField), false},
		{"store failure", fmt.Errorf("upsert sentiment: %w", errors.New("mongo down")), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeClassifier{err: tt.err}
			h := newReviewEventHandler(fc)

			err := h(context.Background(), reviewCreated(t, models.Review{ID: models.IntID(9), Rating: 9}))
			if tt.wantErr {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, fc.got, 1)
		})
	}
}

func TestReviewEventHandlerIgnoresOtherTypes(t *testing.T) {
	fc := &fakeClassifier{}
	h := newReviewEventHandler(fc)

	evt, err := eventbus.NewJSONEvent("", map[string]string{"type": "product.updated"}, 0)
	require.NoError(t, err)
	require.NoError(t, h(context.Background(), evt))
	assert.Empty(t, fc.got)

	assert.Error(t, h(context.Background(), eventbus.Event{Payload: []byte(`not json`)}))
}
