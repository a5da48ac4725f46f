package service

import (
	"eco-restaurants/internal/domains/restaurant/model"
)

// CompileFilter validates the bounds of a list filter and turns it into a
// store query. Nothing reaches the store when validation fails.
//
// An empty search and the "all" category impose no restriction. A rating
// range with min > max is accepted and simply matches nothing.
func CompileFilter(filter model.ListFilter) (model.Query, error) {
	if err := filter.Validate(); err != nil {
		return model.Query{}, model.NewInvalidArgument("invalid filter", err)
	}

	q := model.Query{
		Skip:  0,
		Limit: model.DefaultListLimit,
	}
	if filter.Limit != nil {
		q.Limit = *filter.Limit
	}
	if filter.Skip != nil {
		q.Skip = *filter.Skip
	}

	if filter.Search != nil {
		q.Predicate.NameContains = *filter.Search
	}
	if filter.Category != nil && *filter.Category != model.CategoryAll {
		q.Predicate.Category = *filter.Category
	}
	if filter.HasPool != nil {
		v := *filter.HasPool
		q.Predicate.HasPool = &v
	}
	if filter.RatingMin != nil {
		v := *filter.RatingMin
		q.Predicate.RatingMin = &v
	}
	if filter.RatingMax != nil {
		v := *filter.RatingMax
		q.Predicate.RatingMax = &v
	}

	return q, nil
}
