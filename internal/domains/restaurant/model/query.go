package model

import (
	"cmp"
	"slices"
)

// Predicate is the compiled, store-facing form of a list filter. Zero
// values impose no restriction; all set fields are ANDed.
type Predicate struct {
	NameContains string   // case-insensitive substring of Name
	Category     string   // membership in Categories
	HasPool      *bool    // exact match
	RatingMin    *float64 // inclusive
	RatingMax    *float64 // inclusive
}

// Query is a predicate plus a page. Results are always ordered by name
// ascending, then id ascending.
type Query struct {
	Predicate Predicate
	Skip      int
	Limit     int
}

// HasRatingBound reports whether the predicate restricts ratings.
func (p Predicate) HasRatingBound() bool {
	return p.RatingMin != nil || p.RatingMax != nil
}

// Matches evaluates the predicate against a single record.
func (p Predicate) Matches(r *Restaurant) bool {
	if p.NameContains != "" && !ContainsFold(r.Name, p.NameContains) {
		return false
	}
	if p.Category != "" && !r.HasCategory(p.Category) {
		return false
	}
	if p.HasPool != nil && r.HasPool != *p.HasPool {
		return false
	}
	if p.HasRatingBound() {
		if r.Rating == nil {
			return false
		}
		if p.RatingMin != nil && *r.Rating < *p.RatingMin {
			return false
		}
		if p.RatingMax != nil && *r.Rating > *p.RatingMax {
			return false
		}
	}
	return true
}

// CompareByName is the listing order: name, then id, both byte-wise.
func CompareByName(a, b *Restaurant) int {
	if c := cmp.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.ID, b.ID)
}

// SortByName sorts restaurants in listing order.
func SortByName(rs []*Restaurant) {
	slices.SortFunc(rs, CompareByName)
}

// Page applies skip/limit to an already ordered slice.
func Page[T any](items []T, skip, limit int) []T {
	if skip >= len(items) {
		return []T{}
	}
	end := len(items)
	if limit >= 0 && skip+limit < end {
		end = skip + limit
	}
	return items[skip:end]
}
