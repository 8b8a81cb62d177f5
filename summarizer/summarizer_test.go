package summarizer_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"review-insight/analyzer"
	"review-insight/config"
	"review-insight/models"
	"review-insight/summarizer"
	"review-insight/trace"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "bare object", in: `{"a":1}`, want: `{"a":1}`},
		{name: "markdown fence", in: "```json\n{\"a\":1}\n```", want: `{"a":1}`},
		{name: "prose around", in: "Berikut hasilnya: {\"a\":{\"b\":2}} semoga membantu", want: `{"a":{"b":2}}`},
		{name: "no braces", in: "  maaf  ", want: "maaf"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, summarizer.ExtractJSON(tt.in))
		})
	}
}

func TestDecodeReply(t *testing.T) {
	got, err := summarizer.DecodeReply[summarizer.KeywordInsights]("ok:\n{\"keywordInsights\":[\"x\"],\"recommendations\":[\"y\"]}")
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, got.KeywordInsights)
	assert.False(t, got.Fallback)

	_, err = summarizer.DecodeReply[summarizer.KeywordInsights]("{not json}")
	assert.Error(t, err)
}

func TestDashboardPrompt(t *testing.T) {
	p := summarizer.DashboardPrompt(
		summarizer.SentimentSnapshot{Positive: 70, Neutral: 10.5, Negative: 19.5, TotalReviews: 200},
		[]analyzer.KeywordStat{{Name: "bagus", Value: 12, Sentiment: models.LabelPositive}},
	)
	assert.Contains(t, p, "- Sentimen Positif: 70%")
	assert.Contains(t, p, "- Sentimen Netral: 10.5%")
	assert.Contains(t, p, "- Total Ulasan: 200")
	assert.Contains(t, p, "- bagus (positive): 12 kali")
}

func TestFallbackDashboard(t *testing.T) {
	now := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	got := summarizer.FallbackDashboard(summarizer.SentimentSnapshot{Positive: 73.5, Neutral: 15.8, Negative: 10.7, TotalReviews: 1248}, now)

	assert.True(t, got.Fallback)
	assert.Equal(t, now, got.GeneratedAt)
	assert.Equal(t, "Analisis dari 1248 ulasan menunjukkan sentimen positif sebesar 73.5%, dengan 15.8% netral dan 10.7% negatif, yang mengindikasikan tingkat kepuasan pelanggan yang baik.", got.Summary)
	assert.Len(t, got.Insights, 3)
	assert.Len(t, got.Recommendations, 4)
}

func TestNewGeminiGenerator_RequiresKey(t *testing.T) {
	_, err := summarizer.NewGeminiGenerator(context.Background(), config.LLMConfig{Provider: "google"}, "")
	assert.ErrorIs(t, err, summarizer.ErrNotConfigured)

	_, err = summarizer.NewGeminiGenerator(context.Background(), config.LLMConfig{Provider: "openai"}, "key")
	assert.Error(t, err)
}

func TestHTTPClientForwardsTrace(t *testing.T) {
	var gotID, gotSpan string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-Id")
		gotSpan = r.Header.Get("X-Span-Id")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	ctx := trace.WithRequestAndSpan(context.Background(), "req-42", 0)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/v1beta/models", nil)
	require.NoError(t, err)

	resp, err := summarizer.NewHTTPClient(time.Second).Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "req-42", gotID)
	assert.Equal(t, "1", gotSpan)
}
