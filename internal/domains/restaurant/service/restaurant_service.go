package service

import (
	"context"
	"time"

	"eco-restaurants/internal/domains/restaurant/model"
	"eco-restaurants/internal/domains/restaurant/repository"
	"eco-restaurants/internal/infrastructure/lock"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// restaurantService implements ServiceInterface
type restaurantService struct {
	store        repository.Store
	catalog      *model.Catalog
	guard        *nameGuard
	queryTimeout time.Duration
	now          func() time.Time
}

// Option customizes the service at construction.
type Option func(*restaurantService)

// WithQueryTimeout bounds every store call. Zero disables the bound.
func WithQueryTimeout(d time.Duration) Option {
	return func(s *restaurantService) { s.queryTimeout = d }
}

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *restaurantService) { s.now = now }
}

// NewRestaurantService creates a new restaurant service instance
func NewRestaurantService(store repository.Store, locker lock.Locker, catalog *model.Catalog, opts ...Option) ServiceInterface {
	s := &restaurantService{
		store:   store,
		catalog: catalog,
		guard:   &nameGuard{locker: locker, store: store},
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// readContext bounds a read by the query timeout.
func (s *restaurantService) readContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.queryTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.queryTimeout)
}

// writeContext detaches a write from the caller's cancellation, so a client
// disconnect cannot abandon a write halfway. It stays bounded by the query
// timeout.
func (s *restaurantService) writeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return s.readContext(context.WithoutCancel(ctx))
}

// ListRestaurants returns one page of restaurants matching filter
func (s *restaurantService) ListRestaurants(ctx context.Context, filter model.ListFilter) ([]*model.Restaurant, error) {
	q, err := CompileFilter(filter)
	if err != nil {
		return nil, err
	}

	ctx, cancel := s.readContext(ctx)
	defer cancel()

	return s.store.Find(ctx, q)
}

// GetRestaurant retrieves a restaurant by ID
func (s *restaurantService) GetRestaurant(ctx context.Context, id string) (*model.Restaurant, error) {
	ctx, cancel := s.readContext(ctx)
	defer cancel()

	r, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, model.NewRestaurantNotFound(id)
	}
	return r, nil
}

// SuggestNames returns up to MaxSuggestions names: exact matches first,
// then prefix matches, then the rest, each group by name.
func (s *restaurantService) SuggestNames(ctx context.Context, query string) ([]string, error) {
	if query == "" {
		return nil, model.NewInvalidArgument("query must not be empty", nil)
	}

	ctx, cancel := s.readContext(ctx)
	defer cancel()

	names, err := s.store.FindNames(ctx, query)
	if err != nil {
		return nil, err
	}
	return rankSuggestions(names, query, model.MaxSuggestions), nil
}

// CreateRestaurant validates req and inserts it under the name guard
func (s *restaurantService) CreateRestaurant(ctx context.Context, req *model.CreateRestaurantRequest) (*model.Restaurant, error) {
	if req == nil {
		return nil, model.NewInvalidArgument("request cannot be nil", nil)
	}
	if err := req.Validate(s.catalog); err != nil {
		return nil, model.NewInvalidArgument("invalid restaurant", err)
	}

	restaurant := req.ToEntity()
	restaurant.ID = uuid.NewString()
	restaurant.CreatedAt = s.now().UTC()
	restaurant.UpdatedAt = restaurant.CreatedAt

	ctx, cancel := s.writeContext(ctx)
	defer cancel()

	err := s.guard.claim(ctx, restaurant.Name, "", func() error {
		return s.store.Insert(ctx, restaurant)
	})
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("restaurant_id", restaurant.ID).
		Str("name", restaurant.Name).
		Msg("restaurant created")

	return restaurant, nil
}

// UpdateRestaurant merges the set fields of req into the restaurant
func (s *restaurantService) UpdateRestaurant(ctx context.Context, id string, req *model.UpdateRestaurantRequest) (*model.Restaurant, error) {
	if req == nil {
		return nil, model.NewInvalidArgument("request cannot be nil", nil)
	}
	if err := req.Validate(s.catalog); err != nil {
		return nil, model.NewInvalidArgument("invalid restaurant", err)
	}

	ctx, cancel := s.writeContext(ctx)
	defer cancel()

	var updated *model.Restaurant
	write := func() error {
		var err error
		updated, err = s.store.Update(ctx, id, req, s.now().UTC())
		if err != nil {
			return err
		}
		if updated == nil {
			return model.NewRestaurantNotFound(id)
		}
		return nil
	}

	var err error
	if req.Name != nil {
		err = s.guard.claim(ctx, *req.Name, id, write)
	} else {
		err = write()
	}
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("restaurant_id", id).
		Strs("fields", setFields(req)).
		Msg("restaurant updated")

	return updated, nil
}

// DeleteRestaurant removes a restaurant
func (s *restaurantService) DeleteRestaurant(ctx context.Context, id string) error {
	ctx, cancel := s.writeContext(ctx)
	defer cancel()

	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return model.NewRestaurantNotFound(id)
	}

	log.Info().Str("restaurant_id", id).Msg("restaurant deleted")
	return nil
}

// GetStats aggregates the whole record set
func (s *restaurantService) GetStats(ctx context.Context) (*model.Stats, error) {
	ctx, cancel := s.readContext(ctx)
	defer cancel()

	return aggregateStats(ctx, s.store)
}

// ListCategories returns the fixed category catalogue
func (s *restaurantService) ListCategories() []model.Category {
	return s.catalog.All()
}

// setFields lists the JSON names of the fields an update sets.
func setFields(req *model.UpdateRestaurantRequest) []string {
	fields := make([]string, 0, 12)
	add := func(set bool, name string) {
		if set {
			fields = append(fields, name)
		}
	}
	add(req.Name != nil, "name")
	add(req.Image != nil, "image")
	add(req.Instagram != nil, "instagram")
	add(req.HasPool != nil, "hasPool")
	add(req.Hours != nil, "hours")
	add(req.Phones != nil, "phones")
	add(req.Email != nil, "email")
	add(req.Categories != nil, "categories")
	add(req.Location != nil, "location")
	add(req.Comments != nil, "comments")
	add(req.Rating != nil, "rating")
	add(req.Cuisine != nil, "cuisine")
	return fields
}
