package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"review-insight/models"
)

func TestTopKeywords_EmptyInputReturnsFallback(t *testing.T) {
	got, fallback := TopKeywords(nil, nil, DefaultKeywordLexicon(), 7)

	assert.True(t, fallback)
	assert.Equal(t, []KeywordStat{
		{Name: "bagus", Value: 150, Sentiment: models.LabelPositive},
		{Name: "cepat", Value: 120, Sentiment: models.LabelPositive},
		{Name: "sesuai", Value: 100, Sentiment: models.LabelPositive},
		{Name: "kecewa", Value: 80, Sentiment: models.LabelNegative},
		{Name: "lambat", Value: 70, Sentiment: models.LabelNegative},
		{Name: "murah", Value: 60, Sentiment: models.LabelPositive},
		{Name: "rusak", Value: 50, Sentiment: models.LabelNegative},
	}, got)
}

func TestTopKeywords_CountsOncePerComment(t *testing.T) {
	lex := KeywordLexicon{Positive: []string{"bagus"}, Negative: []string{"rusak"}}

	got, fallback := TopKeywords(
		[]string{"Bagus bagus BAGUS", "bagus"},
		[]string{"rusak"},
		lex, 7)

	require.False(t, fallback)
	assert.Equal(t, []KeywordStat{
		{Name: "bagus", Value: 2, Sentiment: models.LabelPositive},
		{Name: "rusak", Value: 1, Sentiment: models.LabelNegative},
	}, got)
}

func TestTopKeywords_TiesKeepPositivesFirst(t *testing.T) {
	lex := KeywordLexicon{Positive: []string{"adem", "keren"}, Negative: []string{"bau"}}

	got, _ := TopKeywords(
		[]string{"keren", "adem"},
		[]string{"bau"},
		lex, 7)

	// keren was seen before adem, and all three tie on 1.
	require.Len(t, got, 3)
	assert.Equal(t, "keren", got[0].Name)
	assert.Equal(t, "adem", got[1].Name)
	assert.Equal(t, "bau", got[2].Name)
}

func TestTopKeywords_Limit(t *testing.T) {
	lex := KeywordLexicon{Positive: []string{"a", "b", "c"}, Negative: []string{"x", "y"}}

	got, _ := TopKeywords([]string{"a b c", "a b", "a"}, []string{"x y", "x"}, lex, 3)

	require.Len(t, got, 3)
	assert.Equal(t, KeywordStat{Name: "a", Value: 3, Sentiment: models.LabelPositive}, got[0])
	assert.Equal(t, KeywordStat{Name: "b", Value: 2, Sentiment: models.LabelPositive}, got[1])
	assert.Equal(t, KeywordStat{Name: "x", Value: 2, Sentiment: models.LabelNegative}, got[2])
}

func TestTopKeywords_SubstringMatching(t *testing.T) {
	// "ga" matches inside "harga".
	got, _ := TopKeywords(nil, []string{"harga naik"}, DefaultKeywordLexicon(), 7)
	require.Len(t, got, 1)
	assert.Equal(t, "ga", got[0].Name)
}

func TestTopIssues_PriceAndShipping(t *testing.T) {
	comments := []string{
		"terlalu mahal",
		"mahal sekali",
		"Mahal",
		"mahal untuk kaos",
		"agak mahal",
		"pengiriman lama",
		"barang lama sampai",
		"kirim lama",
	}
	dist := Distribution{Positive: 60, Neutral: 10, Negative: 30}

	report := TopIssues(comments, len(comments), dist)

	assert.Equal(t, []IssueStat{
		{Aspect: "harga", Count: 5, Percentage: 62.5},
		{Aspect: "pengiriman", Count: 3, Percentage: 37.5},
	}, report.Issues)
	assert.Contains(t, report.Recommendation, "Ulasan negatif (30.0%) terutama terkait dengan harga dan pengiriman. ")
	assert.Contains(t, report.Recommendation, "Rekomendasi: Evaluasi strategi harga atau berikan penawaran khusus untuk meningkatkan persepsi nilai.")
}

func TestTopIssues_KeepsTopThreeInTaxonomyOrder(t *testing.T) {
	comments := []string{"warna beda", "ukuran kecil", "bahan kusut", "jelek"}

	report := TopIssues(comments, 4, Distribution{})

	require.Len(t, report.Issues, 3)
	assert.Equal(t, "kualitas", report.Issues[0].Aspect)
	assert.Equal(t, "ukuran", report.Issues[1].Aspect)
	assert.Equal(t, "warna", report.Issues[2].Aspect)
	assert.Contains(t, report.Recommendation, "terkait dengan kualitas, ukuran dan warna. ")
}

func TestTopIssues_NoIssues(t *testing.T) {
	report := TopIssues(nil, 0, Distribution{Positive: 70})

	assert.Empty(t, report.Issues)
	assert.Equal(t,
		"Berdasarkan analisis sentimen, sebagian besar pelanggan puas dengan produk (70.0%). "+
			"Rekomendasi: Pertahankan kualitas produk dan layanan saat ini, sambil terus memantau umpan balik pelanggan.",
		report.Recommendation)
}

func TestRecommendationOpening(t *testing.T) {
	tests := []struct {
		positive float64
		want     string
	}{
		{85.2, "sebagian besar pelanggan puas dengan produk (85.2%). "},
		{50, "cukup banyak pelanggan puas dengan produk (50.0%), namun masih ada ruang untuk perbaikan. "},
		{49.9, "tingkat kepuasan pelanggan perlu ditingkatkan karena hanya 49.9% ulasan yang positif. "},
	}
	for _, tt := range tests {
		t.Run(tt.want[:10], func(t *testing.T) {
			got := recommend(Distribution{Positive: tt.positive}, nil)
			assert.Contains(t, got, tt.want)
		})
	}
}

func TestDistribute(t *testing.T) {
	t.Run("zero total", func(t *testing.T) {
		got := Distribute(map[models.Label]int64{}, 0)
		assert.Equal(t, Distribution{}, got)
	})

	t.Run("seven of ten positive", func(t *testing.T) {
		got := Distribute(map[models.Label]int64{
			models.LabelPositive: 7,
			models.LabelNeutral:  1,
			models.LabelNegative: 2,
		}, 10)
		assert.Equal(t, Distribution{Positive: 70.0, Neutral: 10.0, Negative: 20.0}, got)

		report := TopIssues(nil, 0, got)
		assert.Contains(t, report.Recommendation, "sebagian besar pelanggan puas dengan produk (70.0%)")
	})
}

func TestPercentageRounding(t *testing.T) {
	assert.Equal(t, 33.3, Percentage(1, 3))
	assert.Equal(t, 66.7, Percentage(2, 3))
	assert.Equal(t, 0.0, Percentage(5, 0))
}
