package main

import (
	"context"
	"testing"

	"eco-restaurants/internal/domains/restaurant/model"
	"eco-restaurants/internal/domains/restaurant/repository"
	"eco-restaurants/internal/domains/restaurant/service"
	"eco-restaurants/internal/infrastructure/lock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSeeder(answer bool) (*seeder, *int) {
	store := repository.NewMemoryStore()
	asked := 0
	return &seeder{
		store:   store,
		service: service.NewRestaurantService(store, lock.NewLocalLocker(), model.DefaultCatalog()),
		confirm: func(string) bool {
			asked++
			return answer
		},
	}, &asked
}

func TestDefaultDataIsValid(t *testing.T) {
	data, err := loadData(defaultData)
	require.NoError(t, err)
	require.Len(t, data, 15)

	catalog := model.DefaultCatalog()
	for _, req := range data {
		assert.NoError(t, req.Validate(catalog), req.Name)
	}
}

func TestSeedEmptyStore(t *testing.T) {
	s, asked := newSeeder(false)
	data, err := loadData(defaultData)
	require.NoError(t, err)

	created, err := s.run(context.Background(), data)
	require.NoError(t, err)
	assert.Equal(t, 15, created)
	assert.Equal(t, 0, *asked)

	stats, err := s.service.GetStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(15), stats.TotalRestaurants)
	assert.Equal(t, int64(1), stats.RestaurantsWithPool)
}

func TestSeedAsksBeforeOverwriting(t *testing.T) {
	data, err := loadData(defaultData)
	require.NoError(t, err)
	ctx := context.Background()

	declined, asked := newSeeder(false)
	_, err = declined.run(ctx, data[:2])
	require.NoError(t, err)
	created, err := declined.run(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, 0, created)
	assert.Equal(t, 1, *asked)

	count, err := declined.store.Count(ctx, model.Predicate{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	accepted, _ := newSeeder(true)
	_, err = accepted.run(ctx, data[:2])
	require.NoError(t, err)
	created, err = accepted.run(ctx, data)
	require.NoError(t, err)
	assert.Equal(t, 15, created)
}

func TestLoadDataRejectsGarbage(t *testing.T) {
	_, err := loadData([]byte("not json"))
	assert.Error(t, err)
}
