package analyzer

import (
	"math"
	"strconv"

	"review-insight/models"
)

// Distribution is the share of each overall label, in percent.
type Distribution struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

// Percentage returns count/total*100 rounded to one decimal, or 0 when total is 0.
func Percentage(count, total int64) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(count)/float64(total)*1000) / 10
}

func Distribute(counts map[models.Label]int64, total int64) Distribution {
	return Distribution{
		Positive: Percentage(counts[models.LabelPositive], total),
		Neutral:  Percentage(counts[models.LabelNeutral], total),
		Negative: Percentage(counts[models.LabelNegative], total),
	}
}

// formatPercent renders a percentage with exactly one decimal, e.g. "70.0".
func formatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64)
}
