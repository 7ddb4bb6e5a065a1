package database

import (
	"fmt"
	"sort"
	"strings"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
	DefaultSort  = "-created_at"
)

// Sortable fields per table, mapped to their column.
var (
	NoteSortFields = map[string]string{
		"id":         "id",
		"title":      "title",
		"content":    "content",
		"created_at": "created_at",
		"updated_at": "updated_at",
	}
	ActionItemSortFields = map[string]string{
		"id":          "id",
		"description": "description",
		"completed":   "completed",
		"created_at":  "created_at",
		"updated_at":  "updated_at",
	}
)

// InvalidSortError is returned for a sort field outside the allow-list
type InvalidSortError struct {
	Field   string
	Allowed []string
}

func (e *InvalidSortError) Error() string {
	return fmt.Sprintf("invalid sort field: %s. Allowed fields: %s", e.Field, strings.Join(e.Allowed, ", "))
}

// OrderBy is a validated ordering clause
type OrderBy struct {
	Column     string
	Descending bool
}

// SQL renders the clause with id as tie-breaker so pages are stable.
func (o OrderBy) SQL() string {
	dir := "ASC"
	if o.Descending {
		dir = "DESC"
	}
	if o.Column == "id" {
		return "id " + dir
	}
	return o.Column + " " + dir + ", id " + dir
}

// ParseSort turns "field" or "-field" into an ordering, checking the field
// against allowed. Any number of leading "-" means descending. An empty string
// falls back to DefaultSort.
func ParseSort(raw string, allowed map[string]string) (OrderBy, error) {
	if raw == "" {
		raw = DefaultSort
	}

	descending := strings.HasPrefix(raw, "-")
	field := strings.TrimLeft(raw, "-")

	column, ok := allowed[field]
	if !ok {
		return OrderBy{}, &InvalidSortError{Field: field, Allowed: allowedFields(allowed)}
	}

	return OrderBy{Column: column, Descending: descending}, nil
}

func allowedFields(allowed map[string]string) []string {
	fields := make([]string, 0, len(allowed))
	for f := range allowed {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// likePattern builds a case-folded LIKE pattern for a substring search,
// escaping the LIKE wildcards in the user's text.
func likePattern(q string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(foldCase(q)) + "%"
}
