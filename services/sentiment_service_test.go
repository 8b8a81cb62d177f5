package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"review-insight/analyzer"
	"review-insight/cache"
	"review-insight/config"
	"review-insight/models"
)

func testAnalysisConfig() config.AnalysisConfig {
	return config.AnalysisConfig{
		KeywordSampleLimit: 1000,
		TopKeywords:        7,
		NegativeSampleSize: 100,
		RecentSampleSize:   3,
		ClassifyBatchSize:  500,
	}
}

func newSentimentService(s *fakeSentiments, p *fakeProducts) *SentimentService {
	return NewSentimentService(s, p, cache.NewMemory(time.Minute, cache.SystemClock), testAnalysisConfig())
}

func TestSentimentService_Stats(t *testing.T) {
	store := &fakeSentiments{recs: []models.SentimentRecord{
		sentimentRecord(1, 10, 5, models.LabelPositive, "bagus"),
		sentimentRecord(2, 10, 4, models.LabelPositive, "oke"),
		sentimentRecord(3, 11, 1, models.LabelNegative, "rusak"),
	}}
	products := &fakeProducts{items: []models.Product{{ProductID: 10}, {ProductID: 11}}}

	got, err := newSentimentService(store, products).Stats(context.Background())
	require.NoError(t, err)

	assert.EqualValues(t, 3, got.TotalReviews)
	assert.EqualValues(t, 2, got.TotalProducts)
	require.Len(t, got.SentimentDistribution, 2)
	assert.Equal(t, models.LabelPositive, got.SentimentDistribution[0].Name)
	assert.Equal(t, 66.7, got.SentimentDistribution[0].Value)
	assert.EqualValues(t, 2, got.SentimentDistribution[0].Count)
	assert.Equal(t, models.LabelNegative, got.SentimentDistribution[1].Name)
	assert.Equal(t, 33.3, got.SentimentDistribution[1].Value)
}

func TestSentimentService_TopKeywords(t *testing.T) {
	store := &fakeSentiments{recs: []models.SentimentRecord{
		sentimentRecord(1, 10, 5, models.LabelPositive, "Bahan adem"),
		sentimentRecord(2, 10, 5, models.LabelPositive, "adem dan rapi"),
		sentimentRecord(3, 11, 1, models.LabelNegative, "bau"),
	}}

	got := newSentimentService(store, &fakeProducts{}).TopKeywords(context.Background())

	require.NotEmpty(t, got)
	assert.Equal(t, analyzer.KeywordStat{Name: "adem", Value: 2, Sentiment: models.LabelPositive}, got[0])
}

func TestSentimentService_TopKeywordsFallback(t *testing.T) {
	t.Run("empty store", func(t *testing.T) {
		got := newSentimentService(&fakeSentiments{}, &fakeProducts{}).TopKeywords(context.Background())
		assert.Equal(t, analyzer.FallbackKeywords(), got)
	})

	t.Run("store failure", func(t *testing.T) {
		store := &fakeSentiments{err: errStoreDown}
		got := newSentimentService(store, &fakeProducts{}).TopKeywords(context.Background())
		assert.Equal(t, analyzer.FallbackKeywords(), got)
	})
}

func TestSentimentService_TopKeywordsCached(t *testing.T) {
	store := &fakeSentiments{recs: []models.SentimentRecord{
		sentimentRecord(1, 10, 5, models.LabelPositive, "bagus"),
	}}
	svc := newSentimentService(store, &fakeProducts{})

	first := svc.TopKeywords(context.Background())
	store.err = errStoreDown
	second := svc.TopKeywords(context.Background())

	assert.Equal(t, first, second)
}

func TestSentimentService_Analysis(t *testing.T) {
	recs := []models.SentimentRecord{}
	for i := 0; i < 6; i++ {
		recs = append(recs, sentimentRecord(int64(i+1), 10, 5, models.LabelPositive, "bagus"))
	}
	recs = append(recs,
		sentimentRecord(7, 10, 3, models.LabelNeutral, "biasa"),
		sentimentRecord(8, 10, 1, models.LabelNegative, "terlalu mahal"),
		sentimentRecord(9, 10, 1, models.LabelNegative, "mahal dan paket lama"),
		sentimentRecord(10, 10, 2, models.LabelNegative, "bahan jelek"),
	)

	got, err := newSentimentService(&fakeSentiments{recs: recs}, &fakeProducts{}).Analysis(context.Background())
	require.NoError(t, err)

	assert.Equal(t, analyzer.Distribution{Positive: 60, Neutral: 10, Negative: 30}, got.SentimentDistribution)
	require.NotEmpty(t, got.TopIssues)
	assert.Equal(t, "harga", got.TopIssues[0].Aspect)
	assert.Equal(t, 2, got.TopIssues[0].Count)
	assert.Equal(t, 66.7, got.TopIssues[0].Percentage)
	assert.Contains(t, got.Recommendation, "Rekomendasi:")
}

func TestSentimentService_AnalysisStoreFailure(t *testing.T) {
	_, err := newSentimentService(&fakeSentiments{err: errStoreDown}, &fakeProducts{}).Analysis(context.Background())
	assert.ErrorIs(t, err, errStoreDown)
}

func TestSentimentService_Recent(t *testing.T) {
	store := &fakeSentiments{recs: []models.SentimentRecord{
		sentimentRecord(1, 10, 5, models.LabelPositive, "bagus"),
		sentimentRecord(2, 99, 1, models.LabelNegative, "rusak"),
	}}
	products := &fakeProducts{items: []models.Product{{ProductID: 10, Name: "Kaos Polos"}}}

	got, err := newSentimentService(store, products).Recent(context.Background())
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "Kaos Polos", got[0].ProductName)
	assert.Equal(t, "bagus", got[0].Text)
	assert.Equal(t, "budi", got[0].Customer)
	assert.Equal(t, defaultProductName, got[1].ProductName)
}

func TestSentimentService_Snapshot(t *testing.T) {
	store := &fakeSentiments{recs: []models.SentimentRecord{
		sentimentRecord(1, 10, 5, models.LabelPositive, ""),
		sentimentRecord(2, 10, 3, models.LabelNeutral, ""),
	}}

	got, err := newSentimentService(store, &fakeProducts{}).Snapshot(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 50.0, got.Positive)
	assert.Equal(t, 50.0, got.Neutral)
	assert.Equal(t, 0.0, got.Negative)
	assert.EqualValues(t, 2, got.TotalReviews)
}

func TestSentimentService_ProductCount(t *testing.T) {
	store := &fakeSentiments{recs: []models.SentimentRecord{
		sentimentRecord(1, 10, 5, models.LabelPositive, ""),
		sentimentRecord(2, 10, 3, models.LabelNeutral, ""),
		sentimentRecord(3, 12, 3, models.LabelNeutral, ""),
	}}

	n, err := newSentimentService(store, &fakeProducts{}).ProductCount(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}
