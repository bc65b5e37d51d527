package store

import (
	"fmt"
	"strings"
)

const (
	defaultLimit = 50
	maxLimit     = 1000
)

// SortField is a sortable listing column.
type SortField string

// Sortable fields.
const (
	SortByScore          SortField = "score"
	SortByPrice          SortField = "price"
	SortByModelYear      SortField = "model_year"
	SortByMileage        SortField = "mileage"
	SortByFetchedAt      SortField = "fetched_at"
	SortByConditionScore SortField = "condition_score"
)

// sortColumns maps allowed sort fields to their SQL column names.
var sortColumns = map[SortField]string{
	SortByScore:          "score",
	SortByPrice:          "price",
	SortByModelYear:      "model_year",
	SortByMileage:        "mileage",
	SortByFetchedAt:      "fetched_at",
	SortByConditionScore: "condition_score",
}

// SortFields returns every sortable field name.
func SortFields() []string {
	return []string{
		string(SortByScore),
		string(SortByPrice),
		string(SortByModelYear),
		string(SortByMileage),
		string(SortByFetchedAt),
		string(SortByConditionScore),
	}
}

// ParseSortField validates a sort field name.
func ParseSortField(s string) (SortField, error) {
	f := SortField(s)
	if _, ok := sortColumns[f]; !ok {
		return "", fmt.Errorf("unknown sort field %q", s)
	}
	return f, nil
}

// ListingQuery defines optional filters for listing queries.
type ListingQuery struct {
	MinPrice   *float64
	MaxPrice   *float64
	MinYear    *int
	MaxYear    *int
	MinMileage *int
	MaxMileage *int
	MinScore   *int

	SortBy    SortField // default score
	Ascending bool      // default descending
	Limit     int       // default 50, capped at 1000
	Offset    int
}

// EffectiveLimit returns the limit after defaults and capping.
func (q *ListingQuery) EffectiveLimit() int {
	switch {
	case q.Limit <= 0:
		return defaultLimit
	case q.Limit > maxLimit:
		return maxLimit
	default:
		return q.Limit
	}
}

const baseListingsSelect = `SELECT ` + listingColumns + ` FROM listings`

const countListingsSelect = "SELECT COUNT(*) FROM listings"

// ToSQL builds the WHERE clause, ORDER BY, LIMIT, and OFFSET for a listing query.
// It returns two SQL strings (one for the data query, one for the count query)
// and the positional parameters.
func (q *ListingQuery) ToSQL() (dataSQL, countSQL string, args []any) {
	var conditions []string

	add := func(expr string, v any) {
		args = append(args, v)
		conditions = append(conditions, fmt.Sprintf(expr, len(args)))
	}

	if q.MinPrice != nil {
		add("price >= $%d", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		add("price <= $%d", *q.MaxPrice)
	}
	if q.MinYear != nil {
		add("model_year >= $%d", *q.MinYear)
	}
	if q.MaxYear != nil {
		add("model_year <= $%d", *q.MaxYear)
	}
	if q.MinMileage != nil {
		add("mileage >= $%d", *q.MinMileage)
	}
	if q.MaxMileage != nil {
		add("mileage <= $%d", *q.MaxMileage)
	}
	if q.MinScore != nil {
		add("score >= $%d", *q.MinScore)
	}

	var whereClause string
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	column, ok := sortColumns[q.SortBy]
	if !ok {
		column = sortColumns[SortByScore]
	}
	direction := "DESC"
	if q.Ascending {
		direction = "ASC"
	}
	orderClause := fmt.Sprintf("%s %s NULLS LAST, id ASC", column, direction)

	offset := max(q.Offset, 0)

	dataSQL = fmt.Sprintf(
		"%s%s ORDER BY %s LIMIT %d OFFSET %d",
		baseListingsSelect, whereClause, orderClause, q.EffectiveLimit(), offset,
	)

	countSQL = countListingsSelect + whereClause

	return dataSQL, countSQL, args
}
