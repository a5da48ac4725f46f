package service

import (
	"cmp"
	"context"
	"slices"

	"eco-restaurants/internal/domains/restaurant/model"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// aggregateStats runs the four store aggregations concurrently. The first
// failure cancels the rest and is returned as is.
func aggregateStats(ctx context.Context, store statsStore) (*model.Stats, error) {
	var (
		total, withPool int64
		categories      map[string]int64
		rating          model.RatingSummary
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		total, err = store.Count(gctx, model.Predicate{})
		return err
	})
	g.Go(func() (err error) {
		hasPool := true
		withPool, err = store.Count(gctx, model.Predicate{HasPool: &hasPool})
		return err
	})
	g.Go(func() (err error) {
		categories, err = store.CountByCategory(gctx)
		return err
	})
	g.Go(func() (err error) {
		rating, err = store.AverageRating(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := &model.Stats{
		TotalRestaurants:     total,
		RestaurantsWithPool:  withPool,
		CategoryDistribution: categoryDistribution(categories),
		RatedRestaurants:     rating.Count,
	}
	if total > 0 {
		stats.PoolPercentage = round2(float64(withPool) / float64(total) * 100)
	}
	if rating.Count > 0 {
		stats.AverageRating = round2(rating.Average)
	}
	return stats, nil
}

type statsStore interface {
	Count(ctx context.Context, p model.Predicate) (int64, error)
	CountByCategory(ctx context.Context) (map[string]int64, error)
	AverageRating(ctx context.Context) (model.RatingSummary, error)
}

// categoryDistribution orders by count descending, then category id.
func categoryDistribution(counts map[string]int64) []model.CategoryCount {
	dist := make([]model.CategoryCount, 0, len(counts))
	for category, count := range counts {
		dist = append(dist, model.CategoryCount{Category: category, Count: count})
	}
	slices.SortFunc(dist, func(a, b model.CategoryCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Category, b.Category)
	})
	return dist
}

func round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
