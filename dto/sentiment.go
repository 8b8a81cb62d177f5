package dto

import (
	"review-insight/analyzer"
	"review-insight/models"
)

// DistributionItemDTO is one slice of the sentiment pie chart.
type DistributionItemDTO struct {
	Name  models.Label `json:"name" example:"positive"`
	Value float64      `json:"value" example:"72.4"`
	Count int64        `json:"count" example:"905"`
}

type SentimentStatsDTO struct {
	TotalReviews          int64                 `json:"totalUlasan"`
	TotalProducts         int64                 `json:"totalProduk"`
	SentimentDistribution []DistributionItemDTO `json:"sentimentDistribution"`
}

// RecentReviewDTO is a sentiment record formatted for the dashboard feed.
type RecentReviewDTO struct {
	ID          models.FlexID `json:"id" swaggertype:"string"`
	ProductID   models.FlexID `json:"produkId" swaggertype:"string"`
	Text        string        `json:"text"`
	Customer    string        `json:"customer"`
	Sentiment   models.Label  `json:"sentiment"`
	Rating      int           `json:"rating"`
	ProductName string        `json:"productName"`
}

type SentimentAnalysisDTO struct {
	SentimentDistribution analyzer.Distribution `json:"sentimentDistribution"`
	TopIssues             []analyzer.IssueStat  `json:"topIssues"`
	Recommendation        string                `json:"recommendation"`
}

// ClassifyReportDTO summarises a classification run.
type ClassifyReportDTO struct {
	Total      int      `json:"total"`
	Classified int      `json:"classified"`
	Skipped    int      `json:"skipped"`
	Errors     []string `json:"errors,omitempty"`
}
