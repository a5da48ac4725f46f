package service

import (
	"context"
	"errors"
	"testing"

	"eco-restaurants/internal/domains/restaurant/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStatsEmptyStore(t *testing.T) {
	svc, _ := newTestService(t)

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(0), stats.TotalRestaurants)
	assert.Equal(t, 0.0, stats.PoolPercentage)
	assert.Equal(t, 0.0, stats.AverageRating)
	assert.Equal(t, int64(0), stats.RatedRestaurants)
	assert.Empty(t, stats.CategoryDistribution)
}

func TestGetStatsAverageRating(t *testing.T) {
	svc, _ := newTestService(t)
	mustCreate(t, svc, createReq("Pousada Farol das Estrelas", false, ptr(4.0)))
	mustCreate(t, svc, createReq("Na Telha", false, ptr(4.2)))
	mustCreate(t, svc, createReq("Mr. Brasa", false, ptr(3.9)))
	mustCreate(t, svc, createReq("O Boteco", false, nil))

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4.03, stats.AverageRating)
	assert.Equal(t, int64(3), stats.RatedRestaurants)
	assert.Equal(t, int64(4), stats.TotalRestaurants)
}

func TestGetStatsPoolPercentage(t *testing.T) {
	svc, _ := newTestService(t)
	mustCreate(t, svc, createReq("Resto Da Vila", true, nil, "piscina"))
	mustCreate(t, svc, createReq("Na Telha", false, nil))
	mustCreate(t, svc, createReq("Mr. Brasa", false, nil))

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), stats.RestaurantsWithPool)
	assert.Equal(t, 33.33, stats.PoolPercentage)
}

func TestGetStatsCategoryDistribution(t *testing.T) {
	svc, _ := newTestService(t)
	mustCreate(t, svc, createReq("Resto Da Vila", true, nil, "restaurants", "piscina"))
	mustCreate(t, svc, createReq("Na Telha", false, nil, "restaurants"))

	stats, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []model.CategoryCount{
		{Category: "restaurants", Count: 2},
		{Category: "piscina", Count: 1},
	}, stats.CategoryDistribution)
}

func TestGetStatsStoreUnavailable(t *testing.T) {
	svc, store := newTestService(t)
	store.fail = errConnRefused

	_, err := svc.GetStats(context.Background())
	assert.True(t, errors.Is(err, model.ErrStoreUnavailable))
}

func TestCategoryDistributionOrder(t *testing.T) {
	dist := categoryDistribution(map[string]int64{
		"rio-guama":     1,
		"restaurants":   5,
		"piscina":       2,
		"igarape-combu": 2,
		"hospedagem":    1,
	})

	assert.Equal(t, []model.CategoryCount{
		{Category: "restaurants", Count: 5},
		{Category: "igarape-combu", Count: 2},
		{Category: "piscina", Count: 2},
		{Category: "hospedagem", Count: 1},
		{Category: "rio-guama", Count: 1},
	}, dist)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 4.03, round2(12.1/3))
	assert.Equal(t, 33.33, round2(100.0/3))
	assert.Equal(t, 66.67, round2(200.0/3))
	assert.Equal(t, 0.0, round2(0))
	assert.Equal(t, 5.0, round2(5))
}
