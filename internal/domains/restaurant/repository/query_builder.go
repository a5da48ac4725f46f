package repository

import (
	"fmt"

	"eco-restaurants/internal/domains/restaurant/model"
	"eco-restaurants/internal/shared/utils"
)

const restaurantColumns = `id, name, image, instagram, has_pool, hours, phones, email,
	categories, location, comments, rating, cuisine, created_at, updated_at`

// listOrder matches model.CompareByName: byte-wise name, then id.
const listOrder = `ORDER BY name COLLATE "C", id COLLATE "C"`

// buildWhere compiles a predicate into a WHERE clause and its positional
// arguments. An empty predicate yields an empty clause.
//
// Name search runs against name_key, which holds the folded name, so the
// database and the in-memory store agree on what "case-insensitive" means.
func buildWhere(p model.Predicate) (string, []interface{}) {
	var clauses []string
	var args []interface{}

	next := func(clause string, arg interface{}) {
		args = append(args, arg)
		clauses = append(clauses, fmt.Sprintf(clause, len(args)))
	}

	if p.NameContains != "" {
		next(`name_key LIKE '%%' || $%d || '%%'`, utils.EscapeLike(model.NameKey(p.NameContains)))
	}
	if p.Category != "" {
		next(`$%d = ANY(categories)`, p.Category)
	}
	if p.HasPool != nil {
		next(`has_pool = $%d`, *p.HasPool)
	}
	if p.RatingMin != nil {
		next(`rating >= $%d`, *p.RatingMin)
	}
	if p.RatingMax != nil {
		next(`rating <= $%d`, *p.RatingMax)
	}

	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + utils.JoinWithAnd(clauses), args
}

// buildFind returns the paged SELECT for q.
func buildFind(q model.Query) (string, []interface{}) {
	where, args := buildWhere(q.Predicate)

	query := fmt.Sprintf("SELECT %s FROM restaurants %s %s", restaurantColumns, where, listOrder)
	if q.Limit >= 0 {
		args = append(args, q.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	args = append(args, q.Skip)
	query += fmt.Sprintf(" OFFSET $%d", len(args))

	return query, args
}
