package analyzer

import (
	"sort"
	"strings"
)

const maxIssues = 3

// IssueStat counts negative comments mentioning one complaint aspect.
type IssueStat struct {
	Aspect     string  `json:"aspect"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type IssueReport struct {
	Issues         []IssueStat `json:"topIssues"`
	Recommendation string      `json:"recommendation"`
}

// TopIssues tags each negative comment against the complaint taxonomy (a
// comment may hit several aspects), keeps the three most frequent aspects and
// writes a recommendation. Percentages are relative to sampleSize.
func TopIssues(comments []string, sampleSize int, dist Distribution) IssueReport {
	counts := make([]int, len(issueRules))
	for _, c := range comments {
		if c == "" {
			continue
		}
		text := strings.ToLower(c)
		for i, rule := range issueRules {
			if containsAny(text, rule.substrings) {
				counts[i]++
			}
		}
	}

	order := make([]int, len(issueRules))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return counts[order[a]] > counts[order[b]]
	})

	issues := []IssueStat{}
	var top []issueRule
	for _, i := range order {
		if counts[i] == 0 || len(issues) == maxIssues {
			break
		}
		issues = append(issues, IssueStat{
			Aspect:     issueRules[i].aspect,
			Count:      counts[i],
			Percentage: Percentage(int64(counts[i]), int64(sampleSize)),
		})
		top = append(top, issueRules[i])
	}

	return IssueReport{
		Issues:         issues,
		Recommendation: recommend(dist, top),
	}
}

func recommend(dist Distribution, top []issueRule) string {
	var b strings.Builder
	b.WriteString("Berdasarkan analisis sentimen, ")

	pos := formatPercent(dist.Positive)
	switch {
	case dist.Positive >= 70:
		b.WriteString("sebagian besar pelanggan puas dengan produk (" + pos + "%). ")
	case dist.Positive >= 50:
		b.WriteString("cukup banyak pelanggan puas dengan produk (" + pos + "%), namun masih ada ruang untuk perbaikan. ")
	default:
		b.WriteString("tingkat kepuasan pelanggan perlu ditingkatkan karena hanya " + pos + "% ulasan yang positif. ")
	}

	if len(top) > 0 {
		names := make([]string, len(top))
		for i, r := range top {
			names[i] = r.aspect
		}
		b.WriteString("Ulasan negatif (" + formatPercent(dist.Negative) + "%) terutama terkait dengan " + joinIndonesian(names) + ". ")
	}

	b.WriteString("Rekomendasi: ")
	if len(top) > 0 {
		b.WriteString(top[0].recommendation)
	} else {
		b.WriteString(noIssueRecommendation)
	}
	return b.String()
}

// joinIndonesian joins "a", "a dan b", "a, b dan c".
func joinIndonesian(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	}
	return strings.Join(items[:len(items)-1], ", ") + " dan " + items[len(items)-1]
}
