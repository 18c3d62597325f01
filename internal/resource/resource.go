// Package resource projects stored entities into their wire representation.
//
// A projection exposes the entity's own scalar fields. A has-many relation is
// rendered as a nested array keyed by the relation name only when it is part of
// the relation set handed in by the caller; otherwise the key is absent. The
// projector never reaches back into the store, so whatever was not loaded up
// front cannot be fetched one row at a time while rendering.
package resource

// collection projects items in order. The result is never nil so an empty
// collection encodes as [] rather than null.
func collection[T, R any](items []T, project func(*T) R) []R {
	out := make([]R, 0, len(items))
	for i := range items {
		out = append(out, project(&items[i]))
	}
	return out
}

// nested projects a loaded relation, or returns nil when it was not requested.
// A requested relation with no rows still renders as [].
func nested[T, R any](loaded bool, items []T, project func(*T) R) *[]R {
	if !loaded {
		return nil
	}
	out := collection(items, project)
	return &out
}
