package dataset

import (
	"context"
	"fmt"
	"io"

	"review-insight/config"
	"review-insight/dto"
	"review-insight/models"
)

type ProductWriter interface {
	ReplaceAll(ctx context.Context, products []models.Product) (int, error)
}

type ReviewWriter interface {
	ReplaceAll(ctx context.Context, reviews []models.Review) (int, error)
}

type SentimentClearer interface {
	DeleteAll(ctx context.Context) (int64, error)
}

type Classifier interface {
	ClassifyAll(ctx context.Context) (*dto.ClassifyReportDTO, error)
}

// Report summarises one import run.
type Report struct {
	Products        int                    `json:"products"`
	SkippedProducts int                    `json:"skipped_products"`
	Reviews         int                    `json:"reviews"`
	SkippedReviews  int                    `json:"skipped_reviews"`
	Classification  *dto.ClassifyReportDTO `json:"classification,omitempty"`
}

// Importer replaces the product and review collections with a dataset and
// classifies every imported review.
type Importer struct {
	products   ProductWriter
	reviews    ReviewWriter
	sentiments SentimentClearer
	classifier Classifier
}

func NewImporter(products ProductWriter, reviews ReviewWriter, sentiments SentimentClearer, classifier Classifier) *Importer {
	return &Importer{products: products, reviews: reviews, sentiments: sentiments, classifier: classifier}
}

// Run decodes both files before touching the store, so a malformed file
// leaves the existing collections in place. A nil products reader keeps the
// current catalogue.
func (im *Importer) Run(ctx context.Context, productsJSON, reviewsJSON io.Reader) (*Report, error) {
	var report Report

	var products []models.Product
	if productsJSON != nil {
		var err error
		products, report.SkippedProducts, err = LoadProducts(productsJSON)
		if err != nil {
			return nil, err
		}
	}
	reviews, skipped, err := LoadReviews(reviewsJSON)
	if err != nil {
		return nil, err
	}
	report.SkippedReviews = skipped

	if productsJSON != nil {
		n, err := im.products.ReplaceAll(ctx, products)
		if err != nil {
			return nil, fmt.Errorf("replace products: %w", err)
		}
		report.Products = n
		config.InfoWithFields("products imported", config.Fields{"count": n, "skipped": report.SkippedProducts})
	}

	// records of the previous dataset point at review ids that no longer exist
	if _, err := im.sentiments.DeleteAll(ctx); err != nil {
		return nil, fmt.Errorf("clear sentiments: %w", err)
	}

	n, err := im.reviews.ReplaceAll(ctx, reviews)
	if err != nil {
		return nil, fmt.Errorf("replace reviews: %w", err)
	}
	report.Reviews = n
	config.InfoWithFields("reviews imported", config.Fields{"count": n, "skipped": report.SkippedReviews})

	cls, err := im.classifier.ClassifyAll(ctx)
	if err != nil {
		return &report, fmt.Errorf("classify reviews: %w", err)
	}
	report.Classification = cls
	return &report, nil
}
