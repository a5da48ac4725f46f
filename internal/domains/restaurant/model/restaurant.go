package model

import (
	"time"
)

const (
	MaxNameLength = 200
	MinRating     = 0.0
	MaxRating     = 5.0

	// DefaultComments is stored when a restaurant is created without comments.
	DefaultComments = "Nenhum comentário"
)

// Restaurant is the only persisted entity of the directory.
type Restaurant struct {
	ID         string    `json:"id" db:"id"`
	Name       string    `json:"name" db:"name"`
	Image      string    `json:"image" db:"image"`
	Instagram  *string   `json:"instagram" db:"instagram"`
	HasPool    bool      `json:"hasPool" db:"has_pool"`
	Hours      string    `json:"hours" db:"hours"`
	Phones     []string  `json:"phones" db:"phones"`
	Email      *string   `json:"email" db:"email"`
	Categories []string  `json:"categories" db:"categories"`
	Location   string    `json:"location" db:"location"`
	Comments   string    `json:"comments" db:"comments"`
	Rating     *float64  `json:"rating" db:"rating"`
	Cuisine    *string   `json:"cuisine" db:"cuisine"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" db:"updated_at"`
}

// NameKey is the uniqueness key of the restaurant's name.
func (r *Restaurant) NameKey() string {
	return NameKey(r.Name)
}

// HasCategory reports whether id is one of the restaurant's categories.
func (r *Restaurant) HasCategory(id string) bool {
	for _, c := range r.Categories {
		if c == id {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so callers never share slices or pointers with
// a store's internal state.
func (r *Restaurant) Clone() *Restaurant {
	if r == nil {
		return nil
	}
	c := *r
	c.Phones = append([]string(nil), r.Phones...)
	c.Categories = append([]string(nil), r.Categories...)
	c.Instagram = cloneString(r.Instagram)
	c.Email = cloneString(r.Email)
	c.Cuisine = cloneString(r.Cuisine)
	if r.Rating != nil {
		v := *r.Rating
		c.Rating = &v
	}
	return &c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
