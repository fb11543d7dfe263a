// internal/viewstate/filter.go
package viewstate

import "strings"

// Filters are pure over the last fetched snapshot; they never re-fetch.
// Pages apply the equality filter first, then the search filter.

// Search keeps items whose text (as extracted by textFn) case-insensitively
// contains q. An empty or blank q keeps everything.
func Search[T any](items []T, q string, textFn func(T) []string) []T {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		for _, text := range textFn(item) {
			if strings.Contains(strings.ToLower(text), q) {
				out = append(out, item)
				break
			}
		}
	}
	return out
}

// ByField keeps items whose field (as extracted by fieldFn) equals want.
// The "All"/"All Categories" sentinels pass everything through; any other
// value is matched exactly, since categories are free-form seller input.
func ByField[T any](items []T, want string, fieldFn func(T) string) []T {
	if want == "" || want == "All" || want == "All Categories" {
		return items
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		if fieldFn(item) == want {
			out = append(out, item)
		}
	}
	return out
}
