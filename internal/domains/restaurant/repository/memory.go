package repository

import (
	"context"
	"sync"
	"time"

	"eco-restaurants/internal/domains/restaurant/model"
)

// memoryStore keeps records in a map guarded by a RWMutex. Reads share the
// lock; writes check name-key uniqueness while holding it exclusively.
type memoryStore struct {
	mu      sync.RWMutex
	records map[string]*model.Restaurant
	keys    map[string]string // name key -> id
}

// NewMemoryStore returns an empty in-process store.
func NewMemoryStore() Store {
	return &memoryStore{
		records: make(map[string]*model.Restaurant),
		keys:    make(map[string]string),
	}
}

func (s *memoryStore) Find(ctx context.Context, q model.Query) ([]*model.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.NewStoreUnavailable("find restaurants", err)
	}

	s.mu.RLock()
	matched := make([]*model.Restaurant, 0, len(s.records))
	for _, r := range s.records {
		if q.Predicate.Matches(r) {
			matched = append(matched, r.Clone())
		}
	}
	s.mu.RUnlock()

	model.SortByName(matched)
	return model.Page(matched, q.Skip, q.Limit), nil
}

func (s *memoryStore) FindNames(ctx context.Context, substr string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.NewStoreUnavailable("find names", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0)
	for _, r := range s.records {
		if model.ContainsFold(r.Name, substr) {
			names = append(names, r.Name)
		}
	}
	return names, nil
}

func (s *memoryStore) FindByID(ctx context.Context, id string) (*model.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.NewStoreUnavailable("find restaurant", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.records[id].Clone(), nil
}

func (s *memoryStore) FindByNameKey(ctx context.Context, key, excludeID string) (*model.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.NewStoreUnavailable("find restaurant by name", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.keys[key]
	if !ok || id == excludeID {
		return nil, nil
	}
	return s.records[id].Clone(), nil
}

func (s *memoryStore) Insert(ctx context.Context, r *model.Restaurant) error {
	if err := ctx.Err(); err != nil {
		return model.NewStoreUnavailable("insert restaurant", err)
	}

	key := r.NameKey()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.keys[key]; taken {
		return model.NewNameTaken(r.Name)
	}
	s.records[r.ID] = r.Clone()
	s.keys[key] = r.ID
	return nil
}

func (s *memoryStore) Update(ctx context.Context, id string, patch *model.UpdateRestaurantRequest, updatedAt time.Time) (*model.Restaurant, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.NewStoreUnavailable("update restaurant", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.records[id]
	if !ok {
		return nil, nil
	}

	updated := current.Clone()
	patch.ApplyTo(updated)
	updated.UpdatedAt = updatedAt

	oldKey, newKey := current.NameKey(), updated.NameKey()
	if newKey != oldKey {
		if _, taken := s.keys[newKey]; taken {
			return nil, model.NewNameTaken(updated.Name)
		}
		delete(s.keys, oldKey)
		s.keys[newKey] = id
	}
	s.records[id] = updated
	return updated.Clone(), nil
}

func (s *memoryStore) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, model.NewStoreUnavailable("delete restaurant", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.records[id]
	if !ok {
		return false, nil
	}
	delete(s.keys, r.NameKey())
	delete(s.records, id)
	return true, nil
}

func (s *memoryStore) DeleteAll(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, model.NewStoreUnavailable("delete restaurants", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	n := int64(len(s.records))
	s.records = make(map[string]*model.Restaurant)
	s.keys = make(map[string]string)
	return n, nil
}

func (s *memoryStore) Count(ctx context.Context, p model.Predicate) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, model.NewStoreUnavailable("count restaurants", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var n int64
	for _, r := range s.records {
		if p.Matches(r) {
			n++
		}
	}
	return n, nil
}

func (s *memoryStore) CountByCategory(ctx context.Context) (map[string]int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, model.NewStoreUnavailable("count categories", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[string]int64)
	for _, r := range s.records {
		seen := make(map[string]struct{}, len(r.Categories))
		for _, c := range r.Categories {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
			counts[c]++
		}
	}
	return counts, nil
}

func (s *memoryStore) AverageRating(ctx context.Context) (model.RatingSummary, error) {
	if err := ctx.Err(); err != nil {
		return model.RatingSummary{}, model.NewStoreUnavailable("average rating", err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum float64
	var n int64
	for _, r := range s.records {
		if r.Rating != nil {
			sum += *r.Rating
			n++
		}
	}
	if n == 0 {
		return model.RatingSummary{}, nil
	}
	return model.RatingSummary{Average: sum / float64(n), Count: n}, nil
}
