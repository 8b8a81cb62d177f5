package analyzer

import (
	"sort"
	"strings"

	"review-insight/models"
)

const DefaultKeywordLimit = 7

// KeywordStat is one entry of the popular keyword chart.
type KeywordStat struct {
	Name      string       `json:"name"`
	Value     int          `json:"value"`
	Sentiment models.Label `json:"sentiment"`
}

// TopKeywords counts lexicon hits in positive and negative comments and
// returns the `limit` most frequent words. A word counts at most once per
// comment. Ties keep first-seen order, positives before negatives. When
// nothing matched, the placeholder list is returned and the flag is true.
func TopKeywords(positive, negative []string, lex KeywordLexicon, limit int) ([]KeywordStat, bool) {
	if limit <= 0 {
		limit = DefaultKeywordLimit
	}

	combined := append(
		countKeywords(positive, lex.Positive, models.LabelPositive),
		countKeywords(negative, lex.Negative, models.LabelNegative)...,
	)
	sort.SliceStable(combined, func(i, j int) bool {
		return combined[i].Value > combined[j].Value
	})
	if len(combined) > limit {
		combined = combined[:limit]
	}

	if len(combined) == 0 {
		return FallbackKeywords(), true
	}
	return combined, false
}

// countKeywords returns per-word comment counts sorted by count, descending.
func countKeywords(comments, words []string, sentiment models.Label) []KeywordStat {
	index := map[string]int{}
	var stats []KeywordStat

	for _, c := range comments {
		if c == "" {
			continue
		}
		text := strings.ToLower(c)
		for _, w := range words {
			if !strings.Contains(text, w) {
				continue
			}
			if i, ok := index[w]; ok {
				stats[i].Value++
				continue
			}
			index[w] = len(stats)
			stats = append(stats, KeywordStat{Name: w, Value: 1, Sentiment: sentiment})
		}
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].Value > stats[j].Value
	})
	return stats
}
