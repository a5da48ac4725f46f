package repository

import (
	"context"
	"time"

	"eco-restaurants/internal/domains/restaurant/model"
)

// Store defines the record store capabilities the restaurant domain needs.
//
// Store implementations own name-key uniqueness: Insert and Update fail
// with a Conflict error when another record already holds the key. Driver
// failures are reported as StoreUnavailable errors.
type Store interface {
	// Find returns the records matching q.Predicate, ordered by name then
	// id, after skipping q.Skip and keeping at most q.Limit.
	Find(ctx context.Context, q model.Query) ([]*model.Restaurant, error)

	// FindNames returns the names containing substr, case-insensitively.
	FindNames(ctx context.Context, substr string) ([]string, error)

	// FindByID returns nil when no record has the id.
	FindByID(ctx context.Context, id string) (*model.Restaurant, error)

	// FindByNameKey returns the record holding key, ignoring excludeID.
	// Returns nil when the key is free.
	FindByNameKey(ctx context.Context, key, excludeID string) (*model.Restaurant, error)

	Insert(ctx context.Context, r *model.Restaurant) error

	// Update merges the set fields of patch into the record atomically and
	// stamps updatedAt. Returns nil when no record has the id.
	Update(ctx context.Context, id string, patch *model.UpdateRestaurantRequest, updatedAt time.Time) (*model.Restaurant, error)

	// Delete reports whether a record was removed.
	Delete(ctx context.Context, id string) (bool, error)

	// DeleteAll removes every record and returns how many were removed.
	DeleteAll(ctx context.Context) (int64, error)

	Count(ctx context.Context, p model.Predicate) (int64, error)

	// CountByCategory counts, per category id, the records listing it.
	CountByCategory(ctx context.Context) (map[string]int64, error)

	// AverageRating averages the non-null ratings.
	AverageRating(ctx context.Context) (model.RatingSummary, error)
}
