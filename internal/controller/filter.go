package controller

import "strings"

// Predicate decides whether an item stays in a filtered view.
type Predicate[T any] func(T) bool

// Filter keeps the items matching every predicate. Nil predicates are
// ignored. The input slice is not modified.
func Filter[T any](items []T, preds ...Predicate[T]) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matchesAll(item, preds) {
			out = append(out, item)
		}
	}
	return out
}

func matchesAll[T any](item T, preds []Predicate[T]) bool {
	for _, pred := range preds {
		if pred != nil && !pred(item) {
			return false
		}
	}
	return true
}

// MatchText matches items where any field contains query, ignoring case.
// An empty query matches everything.
func MatchText[T any](query string, fields func(T) []string) Predicate[T] {
	needle := strings.ToLower(query)
	if needle == "" {
		return nil
	}
	return func(item T) bool {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				return true
			}
		}
		return false
	}
}

// MatchExact restricts items to those whose key equals want. An empty want
// matches everything.
func MatchExact[T any, K ~string](want K, key func(T) K) Predicate[T] {
	if want == "" {
		return nil
	}
	return func(item T) bool {
		return key(item) == want
	}
}

// Count returns how many items satisfy pred.
func Count[T any](items []T, pred Predicate[T]) int {
	n := 0
	for _, item := range items {
		if pred(item) {
			n++
		}
	}
	return n
}
