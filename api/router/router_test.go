package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"review-insight/cache"
	"review-insight/config"
	"review-insight/dto"
	"review-insight/models"
	"review-insight/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stub stores embed the interfaces so only the methods a test touches need
// implementing; anything else panics and fails the test.
type stubSentiments struct {
	services.SentimentStore
	recs []models.SentimentRecord
}

func (s *stubSentiments) Upsert(_ context.Context, rec *models.SentimentRecord) error {
	s.recs = append(s.recs, *rec)
	return nil
}

func (s *stubSentiments) Count(context.Context) (int64, error) { return int64(len(s.recs)), nil }

func (s *stubSentiments) CountByLabel(context.Context) (map[models.Label]int64, error) {
	out := map[models.Label]int64{}
	for _, r := range s.recs {
		out[r.Label]++
	}
	return out, nil
}

func (s *stubSentiments) DeleteByReviewID(context.Context, models.FlexID) (int64, error) {
	return 0, nil
}

type stubReviews struct {
	services.ReviewStore
	items []models.Review
}

func (s *stubReviews) Insert(_ context.Context, rv *models.Review) error {
	rv.ID = models.ObjectIDOf(primitive.NewObjectID())
	s.items = append(s.items, *rv)
	return nil
}

func (s *stubReviews) Delete(context.Context, models.FlexID) (bool, error) { return false, nil }

func (s *stubReviews) FindByRating(_ context.Context, rating int) ([]models.Review, error) {
	var out []models.Review
	for _, r := range s.items {
		if r.Rating == rating {
			out = append(out, r)
		}
	}
	return out, nil
}

type stubProducts struct {
	services.ProductStore
}

func (stubProducts) Count(context.Context) (int64, error) { return 4, nil }

func (stubProducts) FindByName(context.Context, string) (*models.Product, error) {
	return &models.Product{ProductID: 1001}, nil
}

func (stubProducts) FindByProductID(context.Context, models.FlexID) (*models.Product, error) {
	return nil, mongo.ErrNoDocuments
}

type testServer struct {
	engine     *gin.Engine
	sentiments *stubSentiments
	reviews    *stubReviews
}

func newTestServer(health func(context.Context) error) *testServer {
	sentiments := &stubSentiments{}
	reviews := &stubReviews{}
	products := stubProducts{}
	c := cache.NewMemory(time.Minute, cache.SystemClock)
	analysis := config.AnalysisConfig{KeywordSampleLimit: 1000, TopKeywords: 7, NegativeSampleSize: 100, RecentSampleSize: 3}

	sentimentSvc := services.NewSentimentService(sentiments, products, c, analysis)
	classifier := services.NewClassificationService(reviews, sentiments, products, c, 500)

	engine := New(config.ServerConfig{AllowedOrigins: []string{"http://localhost:5173"}, BodyLimitMB: 1}, Deps{
		Sentiments:     sentimentSvc,
		Classification: classifier,
		Reviews:        services.NewReviewService(reviews, sentiments, classifier, c, nil),
		Products:       services.NewProductService(products, reviews, sentiments),
		Statistics:     services.NewStatisticService(products, reviews),
		Insights:       services.NewInsightService(nil, nil, nil, sentimentSvc, config.LLMConfig{}),
		Health:         health,
	})
	return &testServer{engine: engine, sentiments: sentiments, reviews: reviews}
}

func (s *testServer) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.engine.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	rec := newTestServer(func(context.Context) error { return nil }).do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = newTestServer(func(context.Context) error { return errors.New("no reachable servers") }).do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "degraded")
}

func TestCreateReview(t *testing.T) {
	srv := newTestServer(nil)

	rec := srv.do(http.MethodPost, "/api/ulasan", `{"pengguna":"budi","produk":"Kaos","rating":2,"komentar":"bahan jelek, pengiriman lambat"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var got models.Review
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "budi", got.User)
	assert.False(t, got.ID.IsZero())

	require.Len(t, srv.sentiments.recs, 1)
	rec0 := srv.sentiments.recs[0]
	assert.Equal(t, models.LabelNegative, rec0.Label)
	assert.True(t, rec0.ProductID.Equal(models.IntID(1001)))
	assert.Equal(t, models.AspectNegative, rec0.Aspects.Quality.Label)
	assert.Equal(t, models.AspectNegative, rec0.Aspects.Shipping.Label)
}

func TestCreateReviewValidation(t *testing.T) {
	srv := newTestServer(nil)

	tests := []struct {
		name string
		body string
	}{
		{name: "missing comment", body: `{"pengguna":"budi","produk":"Kaos","rating":4}`},
		{name: "rating too high", body: `{"pengguna":"budi","produk":"Kaos","rating":6,"komentar":"ok"}`},
		{name: "rating zero", body: `{"pengguna":"budi","produk":"Kaos","rating":0,"komentar":"ok"}`},
		{name: "malformed json", body: `{"pengguna":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := srv.do(http.MethodPost, "/api/ulasan", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body dto.ErrorResponseDTO
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body.Error)
		})
	}
	assert.Empty(t, srv.reviews.items)
}

func TestReviewsByRating(t *testing.T) {
	srv := newTestServer(nil)
	srv.reviews.items = []models.Review{{ID: models.IntID(1), Rating: 5}}

	rec := srv.do(http.MethodGet, "/api/ulasan/rating/5", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	for _, bad := range []string{"0", "6", "lima"} {
		rec := srv.do(http.MethodGet, "/api/ulasan/rating/"+bad, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, bad)
	}
}

func TestDeleteMissingReview(t *testing.T) {
	rec := newTestServer(nil).do(http.MethodDelete, "/api/ulasan/42", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSentimentStats(t *testing.T) {
	srv := newTestServer(nil)
	srv.sentiments.recs = []models.SentimentRecord{
		{Label: models.LabelPositive},
		{Label: models.LabelPositive},
		{Label: models.LabelNeutral},
		{Label: models.LabelNegative},
	}

	rec := srv.do(http.MethodGet, "/api/sentimen/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.SentimentStatsDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.EqualValues(t, 4, got.TotalReviews)
	assert.EqualValues(t, 4, got.TotalProducts)
	require.Len(t, got.SentimentDistribution, 3)
	assert.Equal(t, 50.0, got.SentimentDistribution[0].Value)
}

func TestAnalyzeFallsBackWithoutModel(t *testing.T) {
	srv := newTestServer(nil)

	rec := srv.do(http.MethodPost, "/api/analyze", `{"sentimentStats":{"positive":73.5,"neutral":15.8,"negative":10.7,"totalReviews":1248},"keywordsData":[{"name":"bagus","value":150,"sentiment":"positive"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.AnalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Success)
	assert.True(t, got.Analysis.Fallback)
	assert.Contains(t, got.Analysis.Summary, "1248 ulasan")
}

func TestAnalyzeKeywords(t *testing.T) {
	srv := newTestServer(nil)

	rec := srv.do(http.MethodPost, "/api/analyze/keywords", `{"keywords":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = srv.do(http.MethodPost, "/api/analyze/keywords", `{"keywords":[{"name":"bagus","value":3,"sentiment":"positive"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var got dto.KeywordsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Insights.Fallback)
	assert.NotEmpty(t, got.Insights.KeywordInsights)
}

func TestUpdateProductInvalidID(t *testing.T) {
	rec := newTestServer(nil).do(http.MethodPut, "/api/produk/not-an-id", `{"harga":1000}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProductCount(t *testing.T) {
	rec := newTestServer(nil).do(http.MethodGet, "/api/produk/count", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":4}`, rec.Body.String())
}

func TestProductDetailNotFound(t *testing.T) {
	rec := newTestServer(nil).do(http.MethodGet, "/api/produk/detail/77", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSearchProductsRejectsBadPrice(t *testing.T) {
	rec := newTestServer(nil).do(http.MethodGet, "/api/produk?harga_min=murah", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestIDHeader(t *testing.T) {
	rec := newTestServer(nil).do(http.MethodGet, "/api/produk/count", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}
