package model

import (
	"errors"
	"math"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ========================================
// WRITE DTOs
// ========================================

// CreateRestaurantRequest - POST /api/restaurants
type CreateRestaurantRequest struct {
	Name       string   `json:"name"`
	Image      string   `json:"image"`
	Instagram  *string  `json:"instagram,omitempty"`
	HasPool    bool     `json:"hasPool"`
	Hours      string   `json:"hours"`
	Phones     []string `json:"phones"`
	Email      *string  `json:"email,omitempty"`
	Categories []string `json:"categories"`
	Location   string   `json:"location"`
	Comments   *string  `json:"comments,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
	Cuisine    *string  `json:"cuisine,omitempty"`
}

func (r CreateRestaurantRequest) Validate(catalog *Catalog) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.RuneLength(1, MaxNameLength).Error("name must be 1-200 characters"),
		),
		validation.Field(&r.Image, validation.Required.Error("image is required")),
		validation.Field(&r.Hours, validation.Required.Error("hours is required")),
		validation.Field(&r.Phones,
			validation.Required.Error("at least one phone must be provided"),
			validation.Each(validation.Required.Error("phone must not be empty")),
		),
		validation.Field(&r.Email, is.EmailFormat.Error("invalid email format")),
		validation.Field(&r.Categories,
			validation.Required.Error("at least one category must be provided"),
			validation.Each(categoryRule(catalog)),
		),
		validation.Field(&r.Location, validation.Required.Error("location is required")),
		validation.Field(&r.Rating, ratingRule),
	)
}

// ToEntity builds a restaurant from the request. ID and timestamps are set
// by the service.
func (r *CreateRestaurantRequest) ToEntity() *Restaurant {
	comments := DefaultComments
	if r.Comments != nil {
		comments = *r.Comments
	}
	restaurant := &Restaurant{
		Name:       r.Name,
		Image:      r.Image,
		Instagram:  r.Instagram,
		HasPool:    r.HasPool,
		Hours:      r.Hours,
		Phones:     r.Phones,
		Email:      r.Email,
		Categories: r.Categories,
		Location:   r.Location,
		Comments:   comments,
		Rating:     r.Rating,
		Cuisine:    r.Cuisine,
	}
	return restaurant.Clone()
}

// UpdateRestaurantRequest - PUT /api/restaurants/:id
// Nil fields are left unchanged. Phones and Categories are unset when nil
// and rejected when present but empty.
type UpdateRestaurantRequest struct {
	Name       *string  `json:"name,omitempty"`
	Image      *string  `json:"image,omitempty"`
	Instagram  *string  `json:"instagram,omitempty"`
	HasPool    *bool    `json:"hasPool,omitempty"`
	Hours      *string  `json:"hours,omitempty"`
	Phones     []string `json:"phones,omitempty"`
	Email      *string  `json:"email,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Location   *string  `json:"location,omitempty"`
	Comments   *string  `json:"comments,omitempty"`
	Rating     *float64 `json:"rating,omitempty"`
	Cuisine    *string  `json:"cuisine,omitempty"`
}

func (r UpdateRestaurantRequest) Validate(catalog *Catalog) error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.NilOrNotEmpty.Error("name must not be empty"),
			validation.RuneLength(1, MaxNameLength).Error("name must be 1-200 characters"),
		),
		validation.Field(&r.Image, validation.NilOrNotEmpty.Error("image must not be empty")),
		validation.Field(&r.Hours, validation.NilOrNotEmpty.Error("hours must not be empty")),
		validation.Field(&r.Phones,
			validation.When(r.Phones != nil,
				validation.Required.Error("at least one phone must be provided"),
				validation.Each(validation.Required.Error("phone must not be empty")),
			),
		),
		validation.Field(&r.Email, is.EmailFormat.Error("invalid email format")),
		validation.Field(&r.Categories,
			validation.When(r.Categories != nil,
				validation.Required.Error("at least one category must be provided"),
				validation.Each(categoryRule(catalog)),
			),
		),
		validation.Field(&r.Location, validation.NilOrNotEmpty.Error("location must not be empty")),
		validation.Field(&r.Rating, ratingRule),
	)
}

// IsEmpty reports whether no field is set.
func (r *UpdateRestaurantRequest) IsEmpty() bool {
	return r.Name == nil && r.Image == nil && r.Instagram == nil && r.HasPool == nil &&
		r.Hours == nil && r.Phones == nil && r.Email == nil && r.Categories == nil &&
		r.Location == nil && r.Comments == nil && r.Rating == nil && r.Cuisine == nil
}

// ApplyTo merges the set fields into restaurant. UpdatedAt is the caller's job.
func (r *UpdateRestaurantRequest) ApplyTo(restaurant *Restaurant) {
	if r.Name != nil {
		restaurant.Name = *r.Name
	}
	if r.Image != nil {
		restaurant.Image = *r.Image
	}
	if r.Instagram != nil {
		restaurant.Instagram = cloneString(r.Instagram)
	}
	if r.HasPool != nil {
		restaurant.HasPool = *r.HasPool
	}
	if r.Hours != nil {
		restaurant.Hours = *r.Hours
	}
	if r.Phones != nil {
		restaurant.Phones = append([]string(nil), r.Phones...)
	}
	if r.Email != nil {
		restaurant.Email = cloneString(r.Email)
	}
	if r.Categories != nil {
		restaurant.Categories = append([]string(nil), r.Categories...)
	}
	if r.Location != nil {
		restaurant.Location = *r.Location
	}
	if r.Comments != nil {
		restaurant.Comments = *r.Comments
	}
	if r.Rating != nil {
		v := *r.Rating
		restaurant.Rating = &v
	}
	if r.Cuisine != nil {
		restaurant.Cuisine = cloneString(r.Cuisine)
	}
}

// ========================================
// READ DTOs
// ========================================

const (
	DefaultListLimit = 50
	MaxListLimit     = 100
	MaxSuggestions   = 5
)

// ListFilter - GET /api/restaurants query parameters, already type-coerced.
type ListFilter struct {
	Search    *string
	Category  *string
	HasPool   *bool
	RatingMin *float64
	RatingMax *float64
	Limit     *int
	Skip      *int
}

func (f ListFilter) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.RatingMin, ratingRule),
		validation.Field(&f.RatingMax, ratingRule),
		validation.Field(&f.Limit, validation.By(intBetween(1, MaxListLimit))),
		validation.Field(&f.Skip, validation.By(intAtLeast(0))),
	)
}

// CategoryCount is one bucket of the category distribution.
type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

// RatingSummary is the raw average over non-null ratings.
type RatingSummary struct {
	Average float64
	Count   int64
}

// Stats - GET /api/restaurants/stats/overview
type Stats struct {
	TotalRestaurants     int64           `json:"total_restaurants"`
	RestaurantsWithPool  int64           `json:"restaurants_with_pool"`
	PoolPercentage       float64         `json:"pool_percentage"`
	CategoryDistribution []CategoryCount `json:"category_distribution"`
	AverageRating        float64         `json:"average_rating"`
	RatedRestaurants     int64           `json:"rated_restaurants"`
}

// ========================================
// RULES
// ========================================

var ratingRule = validation.By(func(value interface{}) error {
	rating, ok := value.(*float64)
	if !ok || rating == nil {
		return nil
	}
	if math.IsNaN(*rating) || *rating < MinRating || *rating > MaxRating {
		return errors.New("must be between 0 and 5")
	}
	return nil
})

func categoryRule(catalog *Catalog) validation.Rule {
	return validation.By(func(value interface{}) error {
		id, _ := value.(string)
		if id == CategoryAll || !catalog.Contains(id) {
			return errors.New("must be one of: " + strings.Join(catalog.RecordIDs(), ", "))
		}
		return nil
	})
}

func intBetween(min, max int) validation.RuleFunc {
	return func(value interface{}) error {
		v, ok := value.(*int)
		if !ok || v == nil {
			return nil
		}
		if *v < min || *v > max {
			return validation.NewError("validation_out_of_range", "must be between {{.min}} and {{.max}}").
				SetParams(map[string]interface{}{"min": min, "max": max})
		}
		return nil
	}
}

func intAtLeast(min int) validation.RuleFunc {
	return func(value interface{}) error {
		v, ok := value.(*int)
		if !ok || v == nil {
			return nil
		}
		if *v < min {
			return validation.NewError("validation_min", "must be no less than {{.min}}").
				SetParams(map[string]interface{}{"min": min})
		}
		return nil
	}
}
