package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"review-insight/analyzer"
	"review-insight/config"
	"review-insight/dto"
	"review-insight/models"
	"review-insight/quota"
	"review-insight/summarizer"
)

var fixedNow = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

func testLLMConfig() config.LLMConfig {
	return config.LLMConfig{
		Provider:  "gemini",
		ModelName: "gemini-2.0-flash",
		Dashboard: config.GenerationConfig{Temperature: 0.4, MaxOutputTokens: 1024, TimeoutSeconds: 30},
		Keywords:  config.GenerationConfig{Temperature: 0.3, MaxOutputTokens: 512, TimeoutSeconds: 15},
	}
}

func newInsightService(gen summarizer.Generator, limiter *quota.Limiter, logs AILogStore, store *fakeSentiments) *InsightService {
	svc := NewInsightService(gen, limiter, logs, newSentimentService(store, &fakeProducts{}), testLLMConfig())
	svc.now = func() time.Time { return fixedNow }
	return svc
}

var sampleKeywords = []analyzer.KeywordStat{
	{Name: "bagus", Value: 10, Sentiment: models.LabelPositive},
	{Name: "lambat", Value: 3, Sentiment: models.LabelNegative},
}

func TestInsightService_Dashboard(t *testing.T) {
	gen := &fakeGenerator{text: "Berikut hasilnya:\n```json\n{\"summary\":\"Ringkas\",\"trends\":\"Tren\",\"insights\":[\"a\"],\"improvements\":\"b\",\"recommendations\":[\"c\"]}\n```"}
	logs := &fakeAILogs{}
	svc := newInsightService(gen, nil, logs, &fakeSentiments{})

	got := svc.Dashboard(context.Background(), dto.AnalyzeRequest{
		SentimentStats: &summarizer.SentimentSnapshot{Positive: 70, Neutral: 20, Negative: 10, TotalReviews: 100},
		KeywordsData:   sampleKeywords,
	})

	assert.False(t, got.Fallback)
	assert.Equal(t, "Ringkas", got.Summary)
	assert.Equal(t, fixedNow, got.GeneratedAt)

	assert.Equal(t, float32(0.4), gen.last.Temperature)
	assert.EqualValues(t, 1024, gen.last.MaxOutputTokens)
	assert.Equal(t, 30*time.Second, gen.last.Timeout)
	assert.Contains(t, gen.last.Prompt, "Sentimen Positif: 70%")
	assert.Contains(t, gen.last.Prompt, "- bagus (positive): 10 kali")

	require.Len(t, logs.entries, 1)
	assert.Equal(t, purposeDashboard, logs.entries[0].Purpose)
	assert.False(t, logs.entries[0].Fallback)
	assert.EqualValues(t, 30, logs.entries[0].TotalTokens)
	assert.Nil(t, logs.entries[0].ErrorMessage)
}

func TestInsightService_DashboardComputesMissingInput(t *testing.T) {
	gen := &fakeGenerator{text: `{"summary":"ok"}`}
	store := &fakeSentiments{recs: []models.SentimentRecord{
		sentimentRecord(1, 10, 5, models.LabelPositive, "adem"),
		sentimentRecord(2, 10, 1, models.LabelNegative, "bau"),
	}}
	svc := newInsightService(gen, nil, nil, store)

	got := svc.Dashboard(context.Background(), dto.AnalyzeRequest{})

	assert.False(t, got.Fallback)
	assert.Contains(t, gen.last.Prompt, "Total Ulasan: 2")
	assert.Contains(t, gen.last.Prompt, "- adem (positive): 1 kali")
}

func TestInsightService_DashboardFallbacks(t *testing.T) {
	stats := &summarizer.SentimentSnapshot{Positive: 73.5, Neutral: 15.8, Negative: 10.7, TotalReviews: 1248}
	want := summarizer.FallbackDashboard(*stats, fixedNow)

	tests := []struct {
		name string
		gen  summarizer.Generator
	}{
		{name: "not configured", gen: nil},
		{name: "call failure", gen: &fakeGenerator{err: errors.New("deadline exceeded")}},
		{name: "malformed reply", gen: &fakeGenerator{text: "maaf, tidak bisa"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newInsightService(tt.gen, nil, nil, &fakeSentiments{})

			got := svc.Dashboard(context.Background(), dto.AnalyzeRequest{SentimentStats: stats, KeywordsData: sampleKeywords})

			assert.Equal(t, want, got)
			assert.Contains(t, got.Summary, "Analisis dari 1248 ulasan menunjukkan sentimen positif sebesar 73.5%")
		})
	}
}

func TestInsightService_QuotaExhausted(t *testing.T) {
	gen := &fakeGenerator{text: `{"keywordInsights":["a"],"recommendations":["b"]}`}
	logs := &fakeAILogs{}
	svc := newInsightService(gen, quota.NewLimiter(0, 1), logs, &fakeSentiments{})
	ctx := context.Background()

	first, err := svc.Keywords(ctx, sampleKeywords)
	require.NoError(t, err)
	assert.False(t, first.Fallback)

	second, err := svc.Keywords(ctx, sampleKeywords)
	require.NoError(t, err)
	assert.Equal(t, summarizer.UnavailableKeywordInsights(), second)
	assert.Equal(t, 1, gen.calls)

	require.Len(t, logs.entries, 2)
	assert.True(t, logs.entries[1].Fallback)
	require.NotNil(t, logs.entries[1].ErrorMessage)
	assert.Contains(t, *logs.entries[1].ErrorMessage, "quota")
}

func TestInsightService_Keywords(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		svc := newInsightService(&fakeGenerator{}, nil, nil, &fakeSentiments{})
		_, err := svc.Keywords(context.Background(), nil)
		assert.ErrorIs(t, err, ErrEmptyKeywords)
	})

	t.Run("decoded", func(t *testing.T) {
		gen := &fakeGenerator{text: `{"keywordInsights":["Pelanggan suka bahan"],"recommendations":["Pertahankan"]}`}
		svc := newInsightService(gen, nil, nil, &fakeSentiments{})

		got, err := svc.Keywords(context.Background(), sampleKeywords)
		require.NoError(t, err)
		assert.Equal(t, []string{"Pelanggan suka bahan"}, got.KeywordInsights)
		assert.False(t, got.Fallback)
		assert.Equal(t, float32(0.3), gen.last.Temperature)
		assert.Equal(t, 15*time.Second, gen.last.Timeout)
	})

	t.Run("malformed", func(t *testing.T) {
		svc := newInsightService(&fakeGenerator{text: "{tidak valid"}, nil, nil, &fakeSentiments{})
		got, err := svc.Keywords(context.Background(), sampleKeywords)
		require.NoError(t, err)
		assert.Equal(t, summarizer.FallbackKeywordInsights(), got)
	})

	t.Run("call failure", func(t *testing.T) {
		svc := newInsightService(&fakeGenerator{err: errors.New("503")}, nil, nil, &fakeSentiments{})
		got, err := svc.Keywords(context.Background(), sampleKeywords)
		require.NoError(t, err)
		assert.Equal(t, summarizer.UnavailableKeywordInsights(), got)
	})
}
