package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"review-insight/analyzer"
	"review-insight/cache"
	"review-insight/config"
	"review-insight/dto"
	"review-insight/models"
)

const (
	reviewsByProductLimit = 50
	defaultPublishTimeout = 5 * time.Second
)

// ReviewEventPublisher hands new reviews to an asynchronous classifier.
type ReviewEventPublisher interface {
	PublishReviewCreated(ctx context.Context, review models.Review) error
}

type ReviewService struct {
	reviews    ReviewStore
	sentiments SentimentStore
	classifier *ClassificationService
	publisher  ReviewEventPublisher
	cache      cache.Cache

	publishTimeout time.Duration
}

// NewReviewService wires the review endpoints. publisher may be nil, in which
// case new reviews are classified inline.
func NewReviewService(reviews ReviewStore, sentiments SentimentStore, classifier *ClassificationService, c cache.Cache, publisher ReviewEventPublisher) *ReviewService {
	return &ReviewService{
		reviews:    reviews,
		sentiments: sentiments,
		classifier: classifier,
		publisher:  publisher,
		cache:      c,

		publishTimeout: defaultPublishTimeout,
	}
}

// WithPublishTimeout bounds how long Create waits on the publisher before
// classifying inline. Non-positive values keep the default.
func (s *ReviewService) WithPublishTimeout(d time.Duration) *ReviewService {
	if d > 0 {
		s.publishTimeout = d
	}
	return s
}

func (s *ReviewService) List(ctx context.Context) ([]models.Review, error) {
	out, res, err := cache.GetOrLoad(ctx, s.cache, cacheKeyReviews, s.reviews.List)
	if err != nil {
		return nil, err
	}
	config.DebugWithFields("listed reviews", config.Fields{"count": len(out), "cache": res})
	return out, nil
}

func (s *ReviewService) ByProductName(ctx context.Context, name string) ([]models.Review, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrInvalidInput)
	}
	return s.reviews.FindByProductName(ctx, name, reviewsByProductLimit)
}

func (s *ReviewService) ByRating(ctx context.Context, rating int) ([]models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("%w: got %d", analyzer.ErrInvalidRating, rating)
	}
	return s.reviews.FindByRating(ctx, rating)
}

// Create stores a review and gets it classified, either through the event
// bus or inline. Classification failures do not fail the request.
func (s *ReviewService) Create(ctx context.Context, req dto.CreateReviewRequest) (*models.Review, error) {
	if req.Rating < 1 || req.Rating > 5 {
		return nil, fmt.Errorf("%w: got %d", analyzer.ErrInvalidRating, req.Rating)
	}
	review := models.Review{
		ProductID:   strings.TrimSpace(req.ProductID),
		User:        req.User,
		ProductName: req.ProductName,
		Rating:      req.Rating,
		Comment:     req.Comment,
		Link:        req.Link,
	}
	if err := s.reviews.Insert(ctx, &review); err != nil {
		return nil, err
	}
	s.invalidate(ctx, cacheKeyReviews)

	if s.publisher != nil {
		pubCtx, cancel := context.WithTimeout(ctx, s.publishTimeout)
		err := s.publisher.PublishReviewCreated(pubCtx, review)
		cancel()
		if err == nil {
			return &review, nil
		}
		config.WarnWithFields("publish review event failed, classifying inline", config.Fields{
			"ulasan_id": review.ID.String(),
			"error":     err.Error(),
		})
	}

	if _, err := s.classifier.ClassifyReview(ctx, review); err != nil {
		config.WarnWithFields("review stored without sentiment", config.Fields{
			"ulasan_id": review.ID.String(),
			"error":     err.Error(),
		})
	}
	return &review, nil
}

// Delete removes a review together with its sentiment record.
func (s *ReviewService) Delete(ctx context.Context, id models.FlexID) error {
	if id.IsZero() {
		return ErrInvalidID
	}
	deleted, err := s.reviews.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}

	if _, err := s.sentiments.DeleteByReviewID(ctx, id); err != nil {
		config.ErrorWithFields("delete sentiment record failed", config.Fields{
			"ulasan_id": id.String(),
			"error":     err.Error(),
		})
	}
	s.invalidate(ctx, append([]string{cacheKeyReviews}, derivedCacheKeys...)...)
	return nil
}

func (s *ReviewService) invalidate(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, keys...); err != nil {
		config.WarnWithFields("cache invalidation failed", config.Fields{"keys": keys, "error": err.Error()})
	}
}
