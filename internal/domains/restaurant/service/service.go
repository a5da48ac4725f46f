package service

import (
	"context"

	"eco-restaurants/internal/domains/restaurant/model"
)

// ServiceInterface defines the business operations of the restaurant domain
type ServiceInterface interface {
	// ListRestaurants validates and compiles the filter, then returns one page
	// of matching restaurants ordered by name.
	ListRestaurants(ctx context.Context, filter model.ListFilter) ([]*model.Restaurant, error)

	// GetRestaurant retrieves a restaurant by ID
	GetRestaurant(ctx context.Context, id string) (*model.Restaurant, error)

	// SuggestNames returns up to five names matching query, most relevant first
	SuggestNames(ctx context.Context, query string) ([]string, error)

	// CreateRestaurant validates the request and inserts a new restaurant
	CreateRestaurant(ctx context.Context, req *model.CreateRestaurantRequest) (*model.Restaurant, error)

	// UpdateRestaurant applies a partial update
	UpdateRestaurant(ctx context.Context, id string, req *model.UpdateRestaurantRequest) (*model.Restaurant, error)

	// DeleteRestaurant removes a restaurant
	DeleteRestaurant(ctx context.Context, id string) error

	// GetStats aggregates the whole record set
	GetStats(ctx context.Context) (*model.Stats, error)

	// ListCategories returns the fixed category catalogue
	ListCategories() []model.Category
}
