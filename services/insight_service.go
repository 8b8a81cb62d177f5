package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"review-insight/analyzer"
	"review-insight/config"
	"review-insight/dto"
	"review-insight/models"
	"review-insight/quota"
	"review-insight/summarizer"
)

const (
	purposeDashboard = "dashboard"
	purposeKeywords  = "keywords"

	aiLogWriteTimeout = 5 * time.Second
)

var (
	ErrQuotaExceeded  = errors.New("narrative generation quota exceeded")
	errMalformedReply = errors.New("malformed model reply")
)

// InsightService produces narrative dashboard analysis through a text
// generator. Every failure degrades to a deterministic fallback payload.
type InsightService struct {
	generator  summarizer.Generator
	limiter    *quota.Limiter
	logs       AILogStore
	sentiments *SentimentService
	llm        config.LLMConfig
	now        func() time.Time
}

// NewInsightService accepts a nil generator (no API key), limiter or log store.
func NewInsightService(generator summarizer.Generator, limiter *quota.Limiter, logs AILogStore, sentiments *SentimentService, llm config.LLMConfig) *InsightService {
	return &InsightService{
		generator:  generator,
		limiter:    limiter,
		logs:       logs,
		sentiments: sentiments,
		llm:        llm,
		now:        time.Now,
	}
}

// Dashboard analyses the given statistics and keywords, computing whichever
// of the two the request left out.
func (s *InsightService) Dashboard(ctx context.Context, in dto.AnalyzeRequest) summarizer.DashboardAnalysis {
	var snapshot summarizer.SentimentSnapshot
	if in.SentimentStats != nil {
		snapshot = *in.SentimentStats
	} else {
		var err error
		snapshot, err = s.sentiments.Snapshot(ctx)
		if err != nil {
			config.ErrorWithFields("sentiment snapshot failed, using fallback analysis", config.Fields{"error": err.Error()})
			return summarizer.FallbackDashboard(summarizer.SentimentSnapshot{}, s.now())
		}
	}

	keywords := in.KeywordsData
	if len(keywords) == 0 {
		keywords = s.sentiments.TopKeywords(ctx)
	}

	var analysis summarizer.DashboardAnalysis
	err := s.generate(ctx, purposeDashboard, summarizer.DashboardPrompt(snapshot, keywords), s.llm.Dashboard, func(text string) error {
		var derr error
		analysis, derr = summarizer.DecodeReply[summarizer.DashboardAnalysis](text)
		return derr
	})
	if err != nil {
		config.WarnWithFields("dashboard analysis fell back", config.Fields{"error": err.Error()})
		return summarizer.FallbackDashboard(snapshot, s.now())
	}

	analysis.GeneratedAt = s.now()
	analysis.Fallback = false
	return analysis
}

// Keywords explains the given keyword list. An empty list is rejected.
func (s *InsightService) Keywords(ctx context.Context, keywords []analyzer.KeywordStat) (summarizer.KeywordInsights, error) {
	if len(keywords) == 0 {
		return summarizer.KeywordInsights{}, ErrEmptyKeywords
	}

	var insights summarizer.KeywordInsights
	err := s.generate(ctx, purposeKeywords, summarizer.KeywordsPrompt(keywords), s.llm.Keywords, func(text string) error {
		var derr error
		insights, derr = summarizer.DecodeReply[summarizer.KeywordInsights](text)
		return derr
	})
	switch {
	case err == nil:
		insights.Fallback = false
		return insights, nil
	case errors.Is(err, errMalformedReply):
		config.WarnWithFields("keyword insights reply malformed", config.Fields{"error": err.Error()})
		return summarizer.FallbackKeywordInsights(), nil
	default:
		config.WarnWithFields("keyword insights unavailable", config.Fields{"error": err.Error()})
		return summarizer.UnavailableKeywordInsights(), nil
	}
}

// generate reserves quota, calls the model, decodes the reply and records
// the call in ai_logs.
func (s *InsightService) generate(ctx context.Context, purpose, prompt string, gen config.GenerationConfig, decode func(string) error) error {
	if s.generator == nil {
		return summarizer.ErrNotConfigured
	}

	entry := models.AILog{
		Purpose:     purpose,
		ModelName:   s.llm.ModelName,
		InputPrompt: prompt,
		RequestedAt: s.now().UTC(),
	}

	err := s.reserve(ctx)
	if err == nil {
		var res *summarizer.Result
		res, err = s.generator.Generate(ctx, summarizer.Request{
			Purpose:         purpose,
			Prompt:          prompt,
			Temperature:     gen.Temperature,
			MaxOutputTokens: gen.MaxOutputTokens,
			Timeout:         gen.Timeout(),
		})
		if err == nil {
			entry.OutputResponse = res.Text
			entry.InputTokens = res.TokenUsage.InputTokens
			entry.OutputTokens = res.TokenUsage.OutputTokens
			entry.TotalTokens = res.TokenUsage.TotalTokens
			if res.ModelName != "" {
				entry.ModelName = res.ModelName
			}
			entry.ModelVersion = res.ModelVersion
			if derr := decode(res.Text); derr != nil {
				err = fmt.Errorf("%w: %v", errMalformedReply, derr)
			}
		}
	}

	entry.CompletedAt = s.now().UTC()
	entry.DurationMs = entry.CompletedAt.Sub(entry.RequestedAt).Milliseconds()
	entry.Fallback = err != nil
	if err != nil {
		msg := err.Error()
		entry.ErrorMessage = &msg
	}
	s.record(ctx, entry)
	return err
}

func (s *InsightService) reserve(ctx context.Context) error {
	if s.limiter == nil {
		return nil
	}
	ok, err := s.limiter.WaitAndReserve(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return ErrQuotaExceeded
	}
	return nil
}

func (s *InsightService) record(ctx context.Context, entry models.AILog) {
	if s.logs == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), aiLogWriteTimeout)
	defer cancel()
	if err := s.logs.Insert(ctx, entry); err != nil {
		config.ErrorWithFields("write ai log failed", config.Fields{"purpose": entry.Purpose, "error": err.Error()})
	}
}
