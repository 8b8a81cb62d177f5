package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"review-insight/models"
	"review-insight/repositories"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidID     = errors.New("invalid id")
	ErrInvalidInput  = errors.New("invalid input")
	ErrEmptyKeywords = errors.New("keywords are required")
)

// Cache keys shared by the services. Writes to reviews or sentiment records
// invalidate the derived keys.
const (
	cacheKeyReviews     = "ulasan:all"
	cacheKeyTopKeywords = "sentimen:top-keywords"
	cacheKeyAnalysis    = "sentimen:analysis"
)

var derivedCacheKeys = []string{cacheKeyTopKeywords, cacheKeyAnalysis}

type SentimentStore interface {
	Upsert(ctx context.Context, rec *models.SentimentRecord) error
	BulkUpsert(ctx context.Context, recs []models.SentimentRecord) (int64, error)
	List(ctx context.Context) ([]models.SentimentRecord, error)
	Count(ctx context.Context) (int64, error)
	CountByLabel(ctx context.Context) (map[models.Label]int64, error)
	Comments(ctx context.Context, label models.Label, limit int64) ([]string, error)
	Recent(ctx context.Context, label models.Label, limit int64) ([]models.SentimentRecord, error)
	Sample(ctx context.Context, n int) ([]models.SentimentRecord, error)
	DistinctProductCount(ctx context.Context) (int64, error)
	FindByProductID(ctx context.Context, productID models.FlexID) ([]models.SentimentRecord, error)
	DeleteByReviewID(ctx context.Context, reviewID models.FlexID) (int64, error)
}

type ReviewStore interface {
	List(ctx context.Context) ([]models.Review, error)
	FindByProductName(ctx context.Context, name string, limit int64) ([]models.Review, error)
	FindByRating(ctx context.Context, rating int) ([]models.Review, error)
	FindByID(ctx context.Context, id models.FlexID) (*models.Review, error)
	Insert(ctx context.Context, rv *models.Review) error
	Delete(ctx context.Context, id models.FlexID) (bool, error)
	Count(ctx context.Context) (int64, error)
	AverageRating(ctx context.Context, name string) (float64, int64, error)
	MostReviewed(ctx context.Context) (*repositories.ReviewCount, error)
}

type ProductStore interface {
	Search(ctx context.Context, f repositories.ProductFilter) ([]models.Product, error)
	BestSelling(ctx context.Context, limit int64) ([]models.Product, error)
	TopRated(ctx context.Context, limit int64) ([]models.Product, error)
	Insert(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, id primitive.ObjectID, fields bson.M) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
	Count(ctx context.Context) (int64, error)
	FindByProductID(ctx context.Context, id models.FlexID) (*models.Product, error)
	FindByName(ctx context.Context, name string) (*models.Product, error)
	WithSentiments(ctx context.Context, page, limit int64) ([]models.ProductSentimentSummary, int64, error)
}

type AILogStore interface {
	Insert(ctx context.Context, log models.AILog) error
}

var (
	_ SentimentStore = (*repositories.SentimentRepository)(nil)
	_ ReviewStore    = (*repositories.ReviewRepository)(nil)
	_ ProductStore   = (*repositories.ProductRepository)(nil)
	_ AILogStore     = (*repositories.AILogRepository)(nil)
)

// notFound maps the driver's no-documents error onto ErrNotFound.
func notFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	return err
}
