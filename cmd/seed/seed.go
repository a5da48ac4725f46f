package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"eco-restaurants/internal/domains/restaurant/model"
	"eco-restaurants/internal/domains/restaurant/repository"
	"eco-restaurants/internal/domains/restaurant/service"
	"eco-restaurants/pkg/logger"

	"github.com/rs/zerolog/log"
)

//go:embed restaurants.json
var defaultData []byte

// seeder loads sample restaurants through the ordinary create path, so
// seeded records obey the same validation and name uniqueness.
type seeder struct {
	store   repository.Store
	service service.ServiceInterface
	confirm func(prompt string) bool
}

func loadData(raw []byte) ([]model.CreateRestaurantRequest, error) {
	var data []model.CreateRestaurantRequest
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to decode seed data: %w", err)
	}
	return data, nil
}

// run seeds data. When the store is not empty it asks before wiping it and
// does nothing if the answer is no. It reports how many records were created.
func (s *seeder) run(ctx context.Context, data []model.CreateRestaurantRequest) (int, error) {
	existing, err := s.store.Count(ctx, model.Predicate{})
	if err != nil {
		return 0, err
	}

	if existing > 0 {
		log.Info().Int64("existing", existing).Msg("ℹ️  Store already has restaurants")
		if !s.confirm("Clear and recreate the data? (y/n): ") {
			log.Info().Msg("❌ Seed cancelled")
			return 0, nil
		}
		removed, err := s.store.DeleteAll(ctx)
		if err != nil {
			return 0, err
		}
		log.Info().Int64("removed", removed).Msg("🗑️  Previous data removed")
	}

	created := 0
	for i := range data {
		if _, err := s.service.CreateRestaurant(ctx, &data[i]); err != nil {
			return created, fmt.Errorf("failed to seed %q: %w", data[i].Name, err)
		}
		created++
	}
	log.Info().Int("created", created).Msg("✅ Restaurants inserted")

	stats, err := s.service.GetStats(ctx)
	if err != nil {
		return created, err
	}
	logger.Info("📈 Final statistics", map[string]interface{}{
		"total":                 stats.TotalRestaurants,
		"with_pool":             stats.RestaurantsWithPool,
		"pool_percentage":       stats.PoolPercentage,
		"average_rating":        stats.AverageRating,
		"category_distribution": stats.CategoryDistribution,
	})

	return created, nil
}
