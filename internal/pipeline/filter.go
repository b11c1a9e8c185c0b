package pipeline

import "strings"

// Filterable is anything a list view can filter.
type Filterable interface {
	FilterName() string
	FilterCategory() string
}

// Filter is the pair of list predicates. Zero value matches everything.
type Filter struct {
	// Search matches the name by case-insensitive substring.
	Search string
	// Category matches exactly and case-sensitively; empty disables it.
	Category string
}

// IsZero reports whether the filter matches everything.
func (f Filter) IsZero() bool {
	return f.Search == "" && f.Category == ""
}

// Matches applies both predicates.
func (f Filter) Matches(item Filterable) bool {
	if f.Search != "" && !containsFold(item.FilterName(), f.Search) {
		return false
	}
	if f.Category != "" && item.FilterCategory() != f.Category {
		return false
	}
	return true
}

// Visible returns the items matching the filter, in input order. The
// input slice is never modified; a zero filter returns it unchanged.
func Visible[T Filterable](items []T, f Filter) []T {
	if f.IsZero() {
		return items
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if f.Matches(it) {
			out = append(out, it)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
