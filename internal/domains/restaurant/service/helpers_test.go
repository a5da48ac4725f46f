package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"eco-restaurants/internal/domains/restaurant/model"
	"eco-restaurants/internal/domains/restaurant/repository"
	"eco-restaurants/internal/infrastructure/lock"

	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

// fakeClock advances one second per call so timestamps are distinct.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

// countingStore records how often the store is queried and can be told to
// fail every call.
type countingStore struct {
	repository.Store
	finds atomic.Int32
	fail  error
}

func (s *countingStore) Find(ctx context.Context, q model.Query) ([]*model.Restaurant, error) {
	s.finds.Add(1)
	if s.fail != nil {
		return nil, s.fail
	}
	return s.Store.Find(ctx, q)
}

func (s *countingStore) Count(ctx context.Context, p model.Predicate) (int64, error) {
	if s.fail != nil {
		return 0, s.fail
	}
	return s.Store.Count(ctx, p)
}

func (s *countingStore) Delete(ctx context.Context, id string) (bool, error) {
	if s.fail != nil {
		return false, s.fail
	}
	return s.Store.Delete(ctx, id)
}

var errConnRefused = model.NewStoreUnavailable("find restaurants", errors.New("connection refused"))

func newTestService(t *testing.T) (ServiceInterface, *countingStore) {
	t.Helper()
	store := &countingStore{Store: repository.NewMemoryStore()}
	clock := &fakeClock{now: time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)}
	svc := NewRestaurantService(store, lock.NewLocalLocker(), model.DefaultCatalog(),
		WithQueryTimeout(5*time.Second),
		WithClock(clock.Now),
	)
	return svc, store
}

func createReq(name string, pool bool, rating *float64, categories ...string) *model.CreateRestaurantRequest {
	if len(categories) == 0 {
		categories = []string{"restaurants"}
	}
	return &model.CreateRestaurantRequest{
		Name:       name,
		Image:      "https://example.com/image.jpg",
		HasPool:    pool,
		Hours:      "Almoço - das 11h às 15h",
		Phones:     []string{"(91) 99999-0000"},
		Categories: categories,
		Location:   "Icoaraci",
		Rating:     rating,
	}
}

func mustCreate(t *testing.T, svc ServiceInterface, req *model.CreateRestaurantRequest) *model.Restaurant {
	t.Helper()
	r, err := svc.CreateRestaurant(context.Background(), req)
	require.NoError(t, err)
	return r
}

// seedDirectory loads a small directory resembling the sample data.
func seedDirectory(t *testing.T, svc ServiceInterface) {
	t.Helper()
	for _, req := range []*model.CreateRestaurantRequest{
		createReq("Pousada Bar e Restaurante Farol das Estrelas", false, ptr(4.0), "restaurants", "hospedagem"),
		createReq("Na Telha", false, ptr(4.2), "restaurants", "rio-guama"),
		createReq("Mr. Brasa Gastronomia E Entretenimento", false, ptr(3.9), "restaurants", "igarape-combu"),
		createReq("Resto Da Vila", true, ptr(4.4), "restaurants", "piscina", "igarape-combu"),
		createReq("White House Icoaraci", false, ptr(5.0)),
		createReq("Restaurante Maia", false, ptr(4.3), "restaurants", "furo-paciencia"),
		createReq("O Boteco", false, nil),
		createReq("Tokyo Temakeria", false, ptr(4.0)),
		createReq("Balneário do Combu", true, nil, "piscina", "igarape-combu"),
		createReq("Ponto Do Chef", false, ptr(3.4)),
	} {
		mustCreate(t, svc, req)
	}
}

func restaurantNames(rs []*model.Restaurant) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.Name
	}
	return out
}
