package services

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"review-insight/config"
	"review-insight/dto"
	"review-insight/models"
	"review-insight/repositories"
)

const (
	DefaultRecommendationLimit = 50
	DefaultTopRatedLimit       = 5
	DefaultSentimentPageSize   = 10
)

// updatableProductFields are the document keys a PUT may change.
var updatableProductFields = map[string]struct{}{
	"no": {}, "product_id": {}, "nama_produk": {}, "kategori": {}, "terjual": {},
	"rating": {}, "harga": {}, "ukuran": {}, "kondisi": {}, "deskripsi": {},
	"deskripsi_HTML": {}, "stok": {}, "link_Gambar 1": {}, "link_Gambar 2": {},
	"link_Gambar 3": {}, "link": {},
}

type ProductService struct {
	products   ProductStore
	reviews    ReviewStore
	sentiments SentimentStore
}

func NewProductService(products ProductStore, reviews ReviewStore, sentiments SentimentStore) *ProductService {
	return &ProductService{products: products, reviews: reviews, sentiments: sentiments}
}

func (s *ProductService) Search(ctx context.Context, f repositories.ProductFilter) ([]models.Product, error) {
	return s.products.Search(ctx, f)
}

// Recommendations returns the best selling products.
func (s *ProductService) Recommendations(ctx context.Context, limit int64) ([]models.Product, error) {
	if limit <= 0 {
		limit = DefaultRecommendationLimit
	}
	return s.products.BestSelling(ctx, limit)
}

func (s *ProductService) TopRated(ctx context.Context, limit int64) ([]models.Product, error) {
	if limit <= 0 {
		limit = DefaultTopRatedLimit
	}
	return s.products.TopRated(ctx, limit)
}

func (s *ProductService) Create(ctx context.Context, p models.Product) (*models.Product, error) {
	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("%w: nama_produk is required", ErrInvalidInput)
	}
	p.ID = primitive.NilObjectID
	if err := s.products.Insert(ctx, &p); err != nil {
		return nil, err
	}
	config.InfoWithFields("created product", config.Fields{"id": p.ID.Hex(), "nama_produk": p.Name})
	return &p, nil
}

// Update applies the known fields of the patch; unknown keys are ignored.
func (s *ProductService) Update(ctx context.Context, id string, patch map[string]any) (*models.Product, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrInvalidID
	}
	fields := bson.M{}
	for k, v := range patch {
		if _, ok := updatableProductFields[k]; ok {
			fields[k] = v
		}
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: no updatable fields", ErrInvalidInput)
	}

	p, err := s.products.Update(ctx, oid, fields)
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrInvalidID
	}
	deleted, err := s.products.Delete(ctx, oid)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// AverageRating averages the ratings of reviews for the named product,
// formatted with three decimals. No reviews yields "0.000".
func (s *ProductService) AverageRating(ctx context.Context, name string) (*dto.ProductRatingDTO, error) {
	avg, _, err := s.reviews.AverageRating(ctx, name)
	if err != nil {
		return nil, err
	}
	return &dto.ProductRatingDTO{Rating: fmt.Sprintf("%.3f", avg)}, nil
}

func (s *ProductService) Count(ctx context.Context) (int64, error) {
	return s.products.Count(ctx)
}

func (s *ProductService) Detail(ctx context.Context, id string) (*models.Product, error) {
	pid := models.ParseFlexID(id)
	if pid.IsZero() {
		return nil, ErrInvalidID
	}
	p, err := s.products.FindByProductID(ctx, pid)
	if err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

// Reviews returns the sentiment records of a product, newest first.
func (s *ProductService) Reviews(ctx context.Context, id string) ([]models.SentimentRecord, error) {
	pid := models.ParseFlexID(id)
	if pid.IsZero() {
		return nil, ErrInvalidID
	}
	return s.sentiments.FindByProductID(ctx, pid)
}

func (s *ProductService) WithSentiments(ctx context.Context, page, limit int64) (dto.Pagination[models.ProductSentimentSummary], error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = DefaultSentimentPageSize
	}
	items, total, err := s.products.WithSentiments(ctx, page, limit)
	if err != nil {
		return dto.Pagination[models.ProductSentimentSummary]{}, err
	}
	return dto.NewPagination(items, total, page, limit), nil
}
