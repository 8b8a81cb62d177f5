package services

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"review-insight/analyzer"
	"review-insight/cache"
	"review-insight/config"
	"review-insight/dto"
	"review-insight/models"
	"review-insight/summarizer"
)

const defaultProductName = "Produk"

// SentimentService serves the read side of the sentiment dashboard.
type SentimentService struct {
	sentiments SentimentStore
	products   ProductStore
	cache      cache.Cache
	cfg        config.AnalysisConfig
	lexicon    analyzer.KeywordLexicon
}

func NewSentimentService(sentiments SentimentStore, products ProductStore, c cache.Cache, cfg config.AnalysisConfig) *SentimentService {
	return &SentimentService{
		sentiments: sentiments,
		products:   products,
		cache:      c,
		cfg:        cfg,
		lexicon:    analyzer.DefaultKeywordLexicon(),
	}
}

func (s *SentimentService) List(ctx context.Context) ([]models.SentimentRecord, error) {
	return s.sentiments.List(ctx)
}

func (s *SentimentService) Stats(ctx context.Context) (*dto.SentimentStatsDTO, error) {
	total, err := s.sentiments.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalProducts, err := s.products.Count(ctx)
	if err != nil {
		return nil, err
	}
	counts, err := s.sentiments.CountByLabel(ctx)
	if err != nil {
		return nil, err
	}

	items := []dto.DistributionItemDTO{}
	for _, label := range models.Labels {
		n, ok := counts[label]
		if !ok || n == 0 {
			continue
		}
		items = append(items, dto.DistributionItemDTO{
			Name:  label,
			Value: analyzer.Percentage(n, total),
			Count: n,
		})
	}

	config.InfoWithFields("fetched sentiment statistics", config.Fields{
		"total_reviews":  total,
		"total_products": totalProducts,
		"labels":         len(items),
	})
	return &dto.SentimentStatsDTO{
		TotalReviews:          total,
		TotalProducts:         totalProducts,
		SentimentDistribution: items,
	}, nil
}

// TopKeywords never fails: store errors yield a stale cached copy or the
// placeholder list.
func (s *SentimentService) TopKeywords(ctx context.Context) []analyzer.KeywordStat {
	kws, _, err := cache.GetOrLoad(ctx, s.cache, cacheKeyTopKeywords, s.computeTopKeywords)
	if err != nil {
		config.ErrorWithFields("top keywords failed, using placeholder data", config.Fields{"error": err.Error()})
		return analyzer.FallbackKeywords()
	}
	return kws
}

func (s *SentimentService) computeTopKeywords(ctx context.Context) ([]analyzer.KeywordStat, error) {
	var positive, negative []string
	limit := int64(s.cfg.KeywordSampleLimit)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		positive, err = s.sentiments.Comments(gctx, models.LabelPositive, limit)
		return err
	})
	g.Go(func() error {
		var err error
		negative, err = s.sentiments.Comments(gctx, models.LabelNegative, limit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	kws, fallback := analyzer.TopKeywords(positive, negative, s.lexicon, s.cfg.TopKeywords)
	fields := config.Fields{
		"positive_reviews": len(positive),
		"negative_reviews": len(negative),
		"keywords":         len(kws),
	}
	if fallback {
		config.WarnWithFields("no keywords found, using placeholder data", fields)
	} else {
		config.InfoWithFields("extracted top keywords", fields)
	}
	return kws, nil
}

// Recent returns random records formatted for the dashboard feed.
func (s *SentimentService) Recent(ctx context.Context) ([]dto.RecentReviewDTO, error) {
	recs, err := s.sentiments.Sample(ctx, s.cfg.RecentSampleSize)
	if err != nil {
		return nil, err
	}

	out := make([]dto.RecentReviewDTO, len(recs))
	g, gctx := errgroup.WithContext(ctx)
	for i, rec := range recs {
		out[i] = dto.RecentReviewDTO{
			ID:          rec.ReviewID,
			ProductID:   rec.ProductID,
			Text:        rec.Comment,
			Customer:    rec.User,
			Sentiment:   rec.Label,
			Rating:      rec.Rating,
			ProductName: defaultProductName,
		}
		if rec.ProductID.IsZero() {
			continue
		}
		g.Go(func() error {
			p, err := s.products.FindByProductID(gctx, rec.ProductID)
			if err != nil {
				if !errors.Is(notFound(err), ErrNotFound) {
					config.ErrorWithFields("product name lookup failed", config.Fields{
						"produk_id": rec.ProductID.String(),
						"error":     err.Error(),
					})
				}
				return nil
			}
			if p.Name != "" {
				out[i].ProductName = p.Name
			}
			return nil
		})
	}
	_ = g.Wait()
	return out, nil
}

func (s *SentimentService) ProductCount(ctx context.Context) (int64, error) {
	return s.sentiments.DistinctProductCount(ctx)
}

// Analysis returns the label distribution, the top complaint aspects of the
// newest negative records and a recommendation. The result is cached.
func (s *SentimentService) Analysis(ctx context.Context) (*dto.SentimentAnalysisDTO, error) {
	out, _, err := cache.GetOrLoad(ctx, s.cache, cacheKeyAnalysis, s.computeAnalysis)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *SentimentService) computeAnalysis(ctx context.Context) (dto.SentimentAnalysisDTO, error) {
	dist, _, err := s.distribution(ctx)
	if err != nil {
		return dto.SentimentAnalysisDTO{}, err
	}

	negatives, err := s.sentiments.Recent(ctx, models.LabelNegative, int64(s.cfg.NegativeSampleSize))
	if err != nil {
		return dto.SentimentAnalysisDTO{}, err
	}
	comments := make([]string, len(negatives))
	for i, rec := range negatives {
		comments[i] = rec.Comment
	}

	report := analyzer.TopIssues(comments, len(negatives), dist)
	config.InfoWithFields("generated sentiment analysis", config.Fields{
		"negative_sample": len(negatives),
		"issues":          len(report.Issues),
	})
	return dto.SentimentAnalysisDTO{
		SentimentDistribution: dist,
		TopIssues:             report.Issues,
		Recommendation:        report.Recommendation,
	}, nil
}

// Snapshot is the distribution handed to narrative generation.
func (s *SentimentService) Snapshot(ctx context.Context) (summarizer.SentimentSnapshot, error) {
	dist, total, err := s.distribution(ctx)
	if err != nil {
		return summarizer.SentimentSnapshot{}, err
	}
	return summarizer.SentimentSnapshot{
		Positive:     dist.Positive,
		Neutral:      dist.Neutral,
		Negative:     dist.Negative,
		TotalReviews: total,
	}, nil
}

func (s *SentimentService) distribution(ctx context.Context) (analyzer.Distribution, int64, error) {
	total, err := s.sentiments.Count(ctx)
	if err != nil {
		return analyzer.Distribution{}, 0, err
	}
	counts, err := s.sentiments.CountByLabel(ctx)
	if err != nil {
		return analyzer.Distribution{}, 0, err
	}
	return analyzer.Distribute(counts, total), total, nil
}
