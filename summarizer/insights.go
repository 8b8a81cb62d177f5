package summarizer

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"review-insight/analyzer"
)

// SentimentSnapshot is the label distribution sent to the model.
type SentimentSnapshot struct {
	Positive     float64 `json:"positive"`
	Neutral      float64 `json:"neutral"`
	Negative     float64 `json:"negative"`
	TotalReviews int64   `json:"totalReviews"`
}

// DashboardAnalysis is the narrative shown on the dashboard.
type DashboardAnalysis struct {
	Summary         string    `json:"summary"`
	Trends          string    `json:"trends"`
	Insights        []string  `json:"insights"`
	Improvements    string    `json:"improvements"`
	Recommendations []string  `json:"recommendations"`
	GeneratedAt     time.Time `json:"generatedAt"`
	Fallback        bool      `json:"fallback"`
}

type KeywordInsights struct {
	KeywordInsights []string `json:"keywordInsights"`
	Recommendations []string `json:"recommendations"`
	Fallback        bool     `json:"fallback"`
}

var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

// ExtractJSON returns the substring from the first '{' to the last '}', or
// the trimmed text when it contains no braces.
func ExtractJSON(text string) string {
	if m := jsonObjectPattern.FindString(text); m != "" {
		return m
	}
	return strings.TrimSpace(text)
}

// DecodeReply extracts and decodes the JSON object embedded in a model reply.
func DecodeReply[T any](text string) (T, error) {
	var out T
	if err := json.Unmarshal([]byte(ExtractJSON(text)), &out); err != nil {
		return out, fmt.Errorf("decode model reply: %w", err)
	}
	return out, nil
}

func keywordLines(keywords []analyzer.KeywordStat) string {
	lines := make([]string, len(keywords))
	for i, k := range keywords {
		lines[i] = fmt.Sprintf("- %s (%s): %d kali", k.Name, k.Sentiment, k.Value)
	}
	return strings.Join(lines, "\n")
}

// formatNumber prints 70 as "70" and 73.5 as "73.5".
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func DashboardPrompt(s SentimentSnapshot, keywords []analyzer.KeywordStat) string {
	return fmt.Sprintf(`Analisis data sentimen berikut dari toko fashion online:

Data Sentimen:
- Sentimen Positif: %s%%
- Sentimen Netral: %s%%
- Sentimen Negatif: %s%%
- Total Ulasan: %d

Kata Kunci Populer:
%s

Berikan respons dalam format JSON dengan struktur:
{
  "summary": "Ringkasan singkat analisis sentimen (1-2 kalimat)",
  "trends": "Tren utama berdasarkan kata kunci (1-2 kalimat)",
  "insights": ["Wawasan 1", "Wawasan 2", "Wawasan 3"],
  "improvements": "Area yang perlu perbaikan (1-2 kalimat)",
  "recommendations": ["Rekomendasi 1", "Rekomendasi 2", "Rekomendasi 3", "Rekomendasi 4"]
}
`, formatNumber(s.Positive), formatNumber(s.Neutral), formatNumber(s.Negative), s.TotalReviews, keywordLines(keywords))
}

func KeywordsPrompt(keywords []analyzer.KeywordStat) string {
	return fmt.Sprintf(`Analisis kata kunci berikut dari ulasan produk fashion:
%s

Berikan wawasan tentang apa yang pelanggan sukai atau tidak sukai berdasarkan kata kunci ini.
Respons dalam format JSON dengan struktur:
{
  "keywordInsights": ["Wawasan 1", "Wawasan 2", "Wawasan 3"],
  "recommendations": ["Rekomendasi 1", "Rekomendasi 2"]
}
`, keywordLines(keywords))
}

// FallbackDashboard is served when the model fails or replies with invalid JSON.
func FallbackDashboard(s SentimentSnapshot, now time.Time) DashboardAnalysis {
	return DashboardAnalysis{
		Summary: fmt.Sprintf("Analisis dari %d ulasan menunjukkan sentimen positif sebesar %s%%, dengan %s%% netral dan %s%% negatif, yang mengindikasikan tingkat kepuasan pelanggan yang baik.",
			s.TotalReviews, formatNumber(s.Positive), formatNumber(s.Neutral), formatNumber(s.Negative)),
		Trends: "Kata kunci 'bagus', 'cepat', dan 'sesuai' mendominasi ulasan positif, sementara 'kecewa' dan 'lambat' menonjol dalam ulasan negatif, menunjukkan kualitas produk dan kecepatan pengiriman menjadi faktor penting.",
		Insights: []string{
			"Kepuasan pelanggan tertinggi terkait dengan kualitas produk dan kecepatan pengiriman.",
			"Sebagian besar keluhan pelanggan berfokus pada keterlambatan pengiriman dan beberapa masalah kualitas.",
			"Kategori T-Shirt menerima sentimen positif tertinggi dibandingkan kategori lain.",
		},
		Improvements: "Area yang perlu peningkatan terutama pada konsistensi waktu pengiriman dan komunikasi status pesanan yang lebih baik kepada pelanggan.",
		Recommendations: []string{
			"Optimalkan proses pengiriman untuk mengurangi keluhan keterlambatan.",
			"Tingkatkan QC pada produk yang mendapat ulasan negatif tentang kualitas.",
			"Gunakan kata kunci positif (bagus, cepat, sesuai) dalam materi pemasaran.",
			"Kembangkan program loyalitas untuk pelanggan yang secara konsisten memberikan ulasan positif.",
		},
		GeneratedAt: now,
		Fallback:    true,
	}
}

// FallbackKeywordInsights is served when the reply could not be decoded.
func FallbackKeywordInsights() KeywordInsights {
	return KeywordInsights{
		KeywordInsights: []string{
			"Kata kunci positif seperti 'bagus' dan 'cepat' menunjukkan kepuasan terhadap kualitas produk dan pengiriman.",
			"Pelanggan secara konsisten memuji kesesuaian produk dengan deskripsi yang diberikan.",
			"Keluhan utama terkait dengan masalah keterlambatan dan kekecewaan terhadap beberapa aspek produk.",
		},
		Recommendations: []string{
			"Pertahankan dan tingkatkan aspek kualitas dan pengiriman yang sering dipuji.",
			"Atasi masalah keterlambatan dengan meningkatkan proses logistik.",
		},
		Fallback: true,
	}
}

// UnavailableKeywordInsights is served when the model could not be reached.
func UnavailableKeywordInsights() KeywordInsights {
	return KeywordInsights{
		KeywordInsights: []string{
			"Kata kunci positif menunjukkan kepuasan terhadap kualitas produk.",
			"Pelanggan mengapresiasi kecepatan pengiriman dan layanan.",
			"Kata kunci negatif menunjukkan area yang perlu perhatian.",
		},
		Recommendations: []string{
			"Tingkatkan aspek yang sering mendapat ulasan positif.",
			"Atasi masalah yang teridentifikasi dari kata kunci negatif.",
		},
		Fallback: true,
	}
}
