// Package model defines the stored entities, the relation set used
// to request eager loading, and the request payloads accepted by the
// resource handlers.
package model

import "slices"

// Relation names a has-many association that can be eagerly loaded.
type Relation string

const (
	RelationPosts    Relation = "posts"
	RelationComments Relation = "comments"
)

// Relations is the explicit set of relations a caller asks the store to
// load and the projector to render. A relation that is not in the set is
// never fetched and never rendered.
type Relations []Relation

// With builds a relation set. With() is the empty set.
func With(rels ...Relation) Relations {
	out := make(Relations, 0, len(rels))
	for _, rel := range rels {
		if !slices.Contains(out, rel) {
			out = append(out, rel)
		}
	}
	return out
}

// Has reports whether rel is part of the set.
func (r Relations) Has(rel Relation) bool {
	return slices.Contains(r, rel)
}
