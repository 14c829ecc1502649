// Package search implements the case-insensitive substring filter used by
// every list view. It is a pure predicate: order is preserved and applying it
// twice with the same query is the same as applying it once.
package search

import "strings"

// Field extracts one searchable string from a record.
type Field[T any] func(T) string

// Matches reports whether the case-folded query is a substring of any field.
// An empty query matches everything.
func Matches[T any](item T, query string, fields ...Field[T]) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f(item)), q) {
			return true
		}
	}
	return false
}

// Filter returns the items matching query. With an empty query the input
// slice itself is returned.
func Filter[T any](items []T, query string, fields ...Field[T]) []T {
	if query == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if Matches(item, query, fields...) {
			out = append(out, item)
		}
	}
	return out
}
