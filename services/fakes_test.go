package services

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"review-insight/models"
	"review-insight/repositories"
	"review-insight/summarizer"
)

var errStoreDown = errors.New("store down")

type fakeSentiments struct {
	mu   sync.Mutex
	recs []models.SentimentRecord
	err  error
}

func (f *fakeSentiments) Upsert(_ context.Context, rec *models.SentimentRecord) error {
	if f.err != nil {
		return f.err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.recs {
		if f.recs[i].ReviewID.Equal(rec.ReviewID) {
			f.recs[i] = *rec
			return nil
		}
	}
	f.recs = append(f.recs, *rec)
	return nil
}

func (f *fakeSentiments) BulkUpsert(ctx context.Context, recs []models.SentimentRecord) (int64, error) {
	for i := range recs {
		if err := f.Upsert(ctx, &recs[i]); err != nil {
			return 0, err
		}
	}
	return int64(len(recs)), nil
}

func (f *fakeSentiments) List(context.Context) ([]models.SentimentRecord, error) {
	return f.recs, f.err
}

func (f *fakeSentiments) Count(context.Context) (int64, error) {
	return int64(len(f.recs)), f.err
}

func (f *fakeSentiments) CountByLabel(context.Context) (map[models.Label]int64, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := map[models.Label]int64{}
	for _, r := range f.recs {
		out[r.Label]++
	}
	return out, nil
}

func (f *fakeSentiments) Comments(_ context.Context, label models.Label, limit int64) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []string
	for _, r := range f.recs {
		if r.Label == label && int64(len(out)) < limit {
			out = append(out, r.Comment)
		}
	}
	return out, nil
}

func (f *fakeSentiments) Recent(_ context.Context, label models.Label, limit int64) ([]models.SentimentRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []models.SentimentRecord
	for _, r := range f.recs {
		if r.Label == label && int64(len(out)) < limit {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeSentiments) Sample(_ context.Context, n int) ([]models.SentimentRecord, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.recs[:min(n, len(f.recs))], nil
}

func (f *fakeSentiments) DistinctProductCount(context.Context) (int64, error) {
	seen := map[string]bool{}
	for _, r := range f.recs {
		seen[r.ProductID.String()] = true
	}
	return int64(len(seen)), f.err
}

func (f *fakeSentiments) FindByProductID(_ context.Context, id models.FlexID) ([]models.SentimentRecord, error) {
	var out []models.SentimentRecord
	for _, r := range f.recs {
		if r.ProductID.Equal(id) {
			out = append(out, r)
		}
	}
	return out, f.err
}

func (f *fakeSentiments) DeleteByReviewID(_ context.Context, id models.FlexID) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.recs[:0]
	var n int64
	for _, r := range f.recs {
		if r.ReviewID.Equal(id) {
			n++
			continue
		}
		kept = append(kept, r)
	}
	f.recs = kept
	return n, nil
}

type fakeReviews struct {
	items []models.Review
	err   error
}

func (f *fakeReviews) List(context.Context) ([]models.Review, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]models.Review(nil), f.items...), nil
}

func (f *fakeReviews) FindByProductName(_ context.Context, name string, limit int64) ([]models.Review, error) {
	var out []models.Review
	for _, r := range f.items {
		if strings.Contains(strings.ToLower(r.ProductName), strings.ToLower(name)) && int64(len(out)) < limit {
			out = append(out, r)
		}
	}
	return out, f.err
}

func (f *fakeReviews) FindByRating(_ context.Context, rating int) ([]models.Review, error) {
	var out []models.Review
	for _, r := range f.items {
		if r.Rating == rating {
			out = append(out, r)
		}
	}
	return out, f.err
}

func (f *fakeReviews) FindByID(_ context.Context, id models.FlexID) (*models.Review, error) {
	for _, r := range f.items {
		if r.ID.Equal(id) {
			return &r, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeReviews) Insert(_ context.Context, rv *models.Review) error {
	if f.err != nil {
		return f.err
	}
	rv.ID = models.ObjectIDOf(primitive.NewObjectID())
	f.items = append(f.items, *rv)
	return nil
}

func (f *fakeReviews) Delete(_ context.Context, id models.FlexID) (bool, error) {
	for i, r := range f.items {
		if r.ID.Equal(id) {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true, nil
		}
	}
	return false, f.err
}

func (f *fakeReviews) Count(context.Context) (int64, error) {
	return int64(len(f.items)), f.err
}

func (f *fakeReviews) AverageRating(_ context.Context, name string) (float64, int64, error) {
	var sum, n int64
	for _, r := range f.items {
		if r.ProductName == name {
			sum += int64(r.Rating)
			n++
		}
	}
	if n == 0 {
		return 0, 0, f.err
	}
	return float64(sum) / float64(n), n, f.err
}

func (f *fakeReviews) MostReviewed(context.Context) (*repositories.ReviewCount, error) {
	counts := map[string]int64{}
	var best *repositories.ReviewCount
	for _, r := range f.items {
		counts[r.ProductName]++
		if best == nil || counts[r.ProductName] > best.Count {
			best = &repositories.ReviewCount{ProductName: r.ProductName, Count: counts[r.ProductName]}
		}
	}
	return best, f.err
}

type fakeProducts struct {
	items   []models.Product
	err     error
	patches []bson.M
}

func (f *fakeProducts) Search(context.Context, repositories.ProductFilter) ([]models.Product, error) {
	return f.items, f.err
}

func (f *fakeProducts) BestSelling(_ context.Context, limit int64) ([]models.Product, error) {
	return f.items[:min(int(limit), len(f.items))], f.err
}

func (f *fakeProducts) TopRated(_ context.Context, limit int64) ([]models.Product, error) {
	return f.items[:min(int(limit), len(f.items))], f.err
}

func (f *fakeProducts) Insert(_ context.Context, p *models.Product) error {
	p.ID = primitive.NewObjectID()
	f.items = append(f.items, *p)
	return f.err
}

func (f *fakeProducts) Update(_ context.Context, id primitive.ObjectID, fields bson.M) (*models.Product, error) {
	f.patches = append(f.patches, fields)
	for _, p := range f.items {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeProducts) Delete(_ context.Context, id primitive.ObjectID) (bool, error) {
	for i, p := range f.items {
		if p.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return true, nil
		}
	}
	return false, f.err
}

func (f *fakeProducts) Count(context.Context) (int64, error) {
	return int64(len(f.items)), f.err
}

func (f *fakeProducts) FindByProductID(_ context.Context, id models.FlexID) (*models.Product, error) {
	want, ok := id.Int()
	for _, p := range f.items {
		if ok && p.ProductID == want {
			return &p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeProducts) FindByName(_ context.Context, name string) (*models.Product, error) {
	for _, p := range f.items {
		if p.Name == name {
			return &p, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeProducts) WithSentiments(_ context.Context, page, limit int64) ([]models.ProductSentimentSummary, int64, error) {
	return []models.ProductSentimentSummary{{ProductID: 1, Name: "Kaos", SentimentCount: 2}}, 11, f.err
}

type fakeAILogs struct {
	mu      sync.Mutex
	entries []models.AILog
}

func (f *fakeAILogs) Insert(_ context.Context, log models.AILog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.entries = append(f.entries, log)
	return nil
}

type fakeGenerator struct {
	text  string
	err   error
	calls int
	last  summarizer.Request
}

func (f *fakeGenerator) Generate(_ context.Context, req summarizer.Request) (*summarizer.Result, error) {
	f.calls++
	f.last = req
	if f.err != nil {
		return nil, f.err
	}
	return &summarizer.Result{
		Text:       f.text,
		ModelName:  "gemini-test",
		TokenUsage: summarizer.TokenUsage{InputTokens: 10, OutputTokens: 20, TotalTokens: 30},
	}, nil
}

type fakePublisher struct {
	published []models.Review
	err       error
	// block holds the publish until the caller's context ends.
	block bool
}

func (f *fakePublisher) PublishReviewCreated(ctx context.Context, review models.Review) error {
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, review)
	return nil
}

func sentimentRecord(reviewID, productID int64, rating int, label models.Label, comment string) models.SentimentRecord {
	return models.SentimentRecord{
		ReviewID:  models.IntID(reviewID),
		ProductID: models.IntID(productID),
		Rating:    rating,
		Label:     label,
		Comment:   comment,
		User:      "budi",
	}
}
