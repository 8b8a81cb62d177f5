package services

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"golang.org/x/sync/errgroup"

	"review-insight/analyzer"
	"review-insight/cache"
	"review-insight/config"
	"review-insight/dto"
	"review-insight/models"
)

const (
	defaultClassifyBatchSize = 500
	maxReportedErrors        = 10
	bulkUpsertConcurrency    = 4
)

// ClassificationService derives sentiment records from reviews and persists
// them, one at a time or in bulk.
type ClassificationService struct {
	reviews    ReviewStore
	sentiments SentimentStore
	products   ProductStore
	cache      cache.Cache
	batchSize  int
}

func NewClassificationService(reviews ReviewStore, sentiments SentimentStore, products ProductStore, c cache.Cache, batchSize int) *ClassificationService {
	if batchSize <= 0 {
		batchSize = defaultClassifyBatchSize
	}
	return &ClassificationService{
		reviews:    reviews,
		sentiments: sentiments,
		products:   products,
		cache:      c,
		batchSize:  batchSize,
	}
}

// ClassifyReview classifies one review and upserts its record. A review
// without produk_id gets it from the catalogue entry with the same name.
func (s *ClassificationService) ClassifyReview(ctx context.Context, review models.Review) (*models.SentimentRecord, error) {
	if review.ProductID == "" {
		review.ProductID = s.resolveProductID(ctx, review.ProductName)
	}

	rec, err := analyzer.Classify(review)
	if err != nil {
		return nil, err
	}
	if err := s.sentiments.Upsert(ctx, &rec); err != nil {
		return nil, fmt.Errorf("upsert sentiment for review %s: %w", review.ID, err)
	}
	s.invalidate(ctx)

	config.InfoWithFields("classified review", config.Fields{
		"ulasan_id": review.ID.String(),
		"produk_id": rec.ProductID.String(),
		"label":     rec.Label,
	})
	return &rec, nil
}

func (s *ClassificationService) ClassifyByID(ctx context.Context, id models.FlexID) (*models.SentimentRecord, error) {
	review, err := s.reviews.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	return s.ClassifyReview(ctx, *review)
}

// ClassifyAll reclassifies every stored review. Reviews that cannot be
// classified are counted as skipped; the run only fails on store errors.
func (s *ClassificationService) ClassifyAll(ctx context.Context) (*dto.ClassifyReportDTO, error) {
	reviews, err := s.reviews.List(ctx)
	if err != nil {
		return nil, err
	}

	report := &dto.ClassifyReportDTO{Total: len(reviews)}
	names := map[string]string{}
	recs := make([]models.SentimentRecord, 0, len(reviews))
	for _, rv := range reviews {
		if rv.ProductID == "" {
			id, ok := names[rv.ProductName]
			if !ok {
				id = s.resolveProductID(ctx, rv.ProductName)
				names[rv.ProductName] = id
			}
			rv.ProductID = id
		}

		rec, err := analyzer.Classify(rv)
		if err != nil {
			report.Skipped++
			if len(report.Errors) < maxReportedErrors {
				report.Errors = append(report.Errors, fmt.Sprintf("ulasan %s: %v", rv.ID, err))
			}
			continue
		}
		recs = append(recs, rec)
	}

	var (
		mu      sync.Mutex
		written int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(bulkUpsertConcurrency)
	for start := 0; start < len(recs); start += s.batchSize {
		batch := recs[start:min(start+s.batchSize, len(recs))]
		g.Go(func() error {
			n, err := s.sentiments.BulkUpsert(gctx, batch)
			if err != nil {
				return err
			}
			mu.Lock()
			written += n
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("bulk upsert sentiments: %w", err)
	}
	report.Classified = len(recs)
	s.invalidate(ctx)

	config.InfoWithFields("classified all reviews", config.Fields{
		"total":      report.Total,
		"classified": report.Classified,
		"skipped":    report.Skipped,
		"written":    written,
	})
	return report, nil
}

func (s *ClassificationService) resolveProductID(ctx context.Context, name string) string {
	if name == "" || s.products == nil {
		return ""
	}
	p, err := s.products.FindByName(ctx, name)
	if err != nil {
		if notFound(err) != ErrNotFound {
			config.WarnWithFields("product id lookup failed", config.Fields{"produk": name, "error": err.Error()})
		}
		return ""
	}
	return strconv.FormatInt(p.ProductID, 10)
}

func (s *ClassificationService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, derivedCacheKeys...); err != nil {
		config.WarnWithFields("cache invalidation failed", config.Fields{"error": err.Error()})
	}
}
