package service

import (
	"cmp"
	"slices"

	"eco-restaurants/internal/domains/restaurant/model"
)

// Relevance ranks, lower is better.
const (
	rankExact = iota
	rankPrefix
	rankContains
)

func relevance(name, query string) int {
	switch {
	case model.NameKey(name) == model.NameKey(query):
		return rankExact
	case model.HasPrefixFold(name, query):
		return rankPrefix
	default:
		return rankContains
	}
}

// rankSuggestions orders names by relevance to query, then by name, and
// keeps the first limit.
func rankSuggestions(names []string, query string, limit int) []string {
	type ranked struct {
		name string
		rank int
	}

	items := make([]ranked, len(names))
	for i, n := range names {
		items[i] = ranked{name: n, rank: relevance(n, query)}
	}
	slices.SortFunc(items, func(a, b ranked) int {
		if c := cmp.Compare(a.rank, b.rank); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})

	items = model.Page(items, 0, limit)
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.name
	}
	return out
}
