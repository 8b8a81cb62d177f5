package dto

import (
	"review-insight/analyzer"
	"review-insight/summarizer"
)

// AnalyzeRequest is the optional body of POST /api/analyze.
type AnalyzeRequest struct {
	SentimentStats *summarizer.SentimentSnapshot `json:"sentimentStats"`
	KeywordsData   []analyzer.KeywordStat        `json:"keywordsData"`
}

type AnalyzeResponse struct {
	Success  bool                         `json:"success"`
	Analysis summarizer.DashboardAnalysis `json:"analysis"`
}

type KeywordsRequest struct {
	Keywords []analyzer.KeywordStat `json:"keywords"`
}

type KeywordsResponse struct {
	Success  bool                       `json:"success"`
	Insights summarizer.KeywordInsights `json:"insights"`
}
