package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"review-insight/dto"
)

type StatisticService struct {
	products ProductStore
	reviews  ReviewStore
}

func NewStatisticService(products ProductStore, reviews ReviewStore) *StatisticService {
	return &StatisticService{products: products, reviews: reviews}
}

// Overview counts products and reviews and finds the most reviewed product.
func (s *StatisticService) Overview(ctx context.Context) (*dto.StatisticsDTO, error) {
	out := &dto.StatisticsDTO{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := s.products.Count(gctx)
		out.TotalProducts = n
		return err
	})
	g.Go(func() error {
		n, err := s.reviews.Count(gctx)
		out.TotalReviews = n
		return err
	})
	g.Go(func() error {
		top, err := s.reviews.MostReviewed(gctx)
		if err != nil || top == nil {
			return err
		}
		out.MostReviewed = &dto.MostReviewedDTO{ProductName: top.ProductName, ReviewCount: top.Count}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
