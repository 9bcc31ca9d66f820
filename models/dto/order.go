package dto

import "fmt"

// OrderDirection sort direction
type OrderDirection int

const (
	OrderByASC OrderDirection = iota + 1
	OrderByDESC
)

// OrderParam sorting request, bound from query parameters
type OrderParam struct {
	Key       string         `query:"orderKey"`
	Direction OrderDirection `query:"orderDirection"`
}

// ParseOrder renders the param as a gorm order clause, defaulting to
// "id DESC" so listings stay newest-first. The key must appear in the
// caller's sortable column list; anything else falls back to id, which
// keeps the raw query value out of the ORDER BY clause.
func (a OrderParam) ParseOrder(sortable ...string) string {
	key := "id"
	for _, column := range sortable {
		if column == a.Key {
			key = column
			break
		}
	}

	direction := "DESC"
	if a.Direction == OrderByASC {
		direction = "ASC"
	}

	return fmt.Sprintf("%s %s", key, direction)
}
