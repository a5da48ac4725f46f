package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"eco-restaurants/internal/domains/restaurant/model"
	"eco-restaurants/pkg/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const pgUniqueViolation = "23505"

// postgresStore implements Store on a pgx pool.
type postgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a Store backed by the restaurants table.
// EnsureSchema must have run against the same database.
func NewPostgresStore(pool *pgxpool.Pool) Store {
	return &postgresStore{pool: pool}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRestaurant(row rowScanner) (*model.Restaurant, error) {
	var r model.Restaurant
	err := row.Scan(
		&r.ID,
		&r.Name,
		&r.Image,
		&r.Instagram,
		&r.HasPool,
		&r.Hours,
		&r.Phones,
		&r.Email,
		&r.Categories,
		&r.Location,
		&r.Comments,
		&r.Rating,
		&r.Cuisine,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// mapError turns driver errors into domain errors. Unique violations can
// only come from name_key, so they become Conflict.
func mapError(op, name string, err error) error {
	var rErr *model.RestaurantError
	if errors.As(err, &rErr) {
		return err
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return model.NewNameTaken(name)
	}
	return model.NewStoreUnavailable(op, err)
}

func (s *postgresStore) Find(ctx context.Context, q model.Query) ([]*model.Restaurant, error) {
	query, args := buildFind(q)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("find restaurants", "", err)
	}
	defer rows.Close()

	restaurants := make([]*model.Restaurant, 0)
	for rows.Next() {
		r, err := scanRestaurant(rows)
		if err != nil {
			return nil, mapError("find restaurants", "", fmt.Errorf("failed to scan restaurant row: %w", err))
		}
		restaurants = append(restaurants, r)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("find restaurants", "", err)
	}

	return restaurants, nil
}

func (s *postgresStore) FindNames(ctx context.Context, substr string) ([]string, error) {
	where, args := buildWhere(model.Predicate{NameContains: substr})
	query := fmt.Sprintf("SELECT name FROM restaurants %s", where)

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("find names", "", err)
	}
	names, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, mapError("find names", "", err)
	}
	return names, nil
}

func (s *postgresStore) FindByID(ctx context.Context, id string) (*model.Restaurant, error) {
	query := fmt.Sprintf("SELECT %s FROM restaurants WHERE id = $1", restaurantColumns)

	r, err := scanRestaurant(s.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapError("find restaurant", "", err)
	}
	return r, nil
}

func (s *postgresStore) FindByNameKey(ctx context.Context, key, excludeID string) (*model.Restaurant, error) {
	query := fmt.Sprintf("SELECT %s FROM restaurants WHERE name_key = $1 AND id <> $2", restaurantColumns)

	r, err := scanRestaurant(s.pool.QueryRow(ctx, query, key, excludeID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, mapError("find restaurant by name", "", err)
	}
	return r, nil
}

func (s *postgresStore) Insert(ctx context.Context, r *model.Restaurant) error {
	query := `
    INSERT INTO restaurants (id, name, name_key, image, instagram, has_pool, hours, phones, email,
      categories, location, comments, rating, cuisine, created_at, updated_at)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
  `
	_, err := s.pool.Exec(ctx, query,
		r.ID, r.Name, r.NameKey(), r.Image, r.Instagram, r.HasPool, r.Hours, r.Phones, r.Email,
		r.Categories, r.Location, r.Comments, r.Rating, r.Cuisine, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return mapError("insert restaurant", r.Name, err)
	}
	return nil
}

func (s *postgresStore) Update(ctx context.Context, id string, patch *model.UpdateRestaurantRequest, updatedAt time.Time) (*model.Restaurant, error) {
	var name string
	if patch.Name != nil {
		name = *patch.Name
	}

	updated, err := database.WithTransactionResult(ctx, s.pool, func(tx pgx.Tx) (*model.Restaurant, error) {
		query := fmt.Sprintf("SELECT %s FROM restaurants WHERE id = $1 FOR UPDATE", restaurantColumns)
		current, err := scanRestaurant(tx.QueryRow(ctx, query, id))
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, nil
			}
			return nil, err
		}

		patch.ApplyTo(current)
		current.UpdatedAt = updatedAt

		_, err = tx.Exec(ctx, `
      UPDATE restaurants SET
        name = $2, name_key = $3, image = $4, instagram = $5, has_pool = $6, hours = $7,
        phones = $8, email = $9, categories = $10, location = $11, comments = $12,
        rating = $13, cuisine = $14, updated_at = $15
      WHERE id = $1
    `,
			id, current.Name, current.NameKey(), current.Image, current.Instagram, current.HasPool,
			current.Hours, current.Phones, current.Email, current.Categories, current.Location,
			current.Comments, current.Rating, current.Cuisine, current.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		return current, nil
	})
	if err != nil {
		return nil, mapError("update restaurant", name, err)
	}
	return updated, nil
}

func (s *postgresStore) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM restaurants WHERE id = $1`, id)
	if err != nil {
		return false, mapError("delete restaurant", "", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (s *postgresStore) DeleteAll(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, `DELETE FROM restaurants`)
	if err != nil {
		return 0, mapError("delete restaurants", "", err)
	}
	return tag.RowsAffected(), nil
}

func (s *postgresStore) Count(ctx context.Context, p model.Predicate) (int64, error) {
	where, args := buildWhere(p)
	query := fmt.Sprintf("SELECT COUNT(*) FROM restaurants %s", where)

	var count int64
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, mapError("count restaurants", "", err)
	}
	return count, nil
}

func (s *postgresStore) CountByCategory(ctx context.Context) (map[string]int64, error) {
	// DISTINCT per record so a repeated id in one list counts once.
	query := `
    SELECT c.category, COUNT(*)
    FROM restaurants r
    CROSS JOIN LATERAL (SELECT DISTINCT unnest(r.categories) AS category) c
    GROUP BY c.category
  `
	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, mapError("count categories", "", err)
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var category string
		var count int64
		if err := rows.Scan(&category, &count); err != nil {
			return nil, mapError("count categories", "", err)
		}
		counts[category] = count
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("count categories", "", err)
	}
	return counts, nil
}

func (s *postgresStore) AverageRating(ctx context.Context) (model.RatingSummary, error) {
	query := `SELECT COALESCE(AVG(rating), 0), COUNT(rating) FROM restaurants`

	var summary model.RatingSummary
	if err := s.pool.QueryRow(ctx, query).Scan(&summary.Average, &summary.Count); err != nil {
		return model.RatingSummary{}, mapError("average rating", "", err)
	}
	return summary, nil
}
