// Package graph carries the classic structures the library ships for
// prototyping: adjacency-list graph builders, a Fenwick (binary indexed)
// tree, and a disjoint-set union.
//
// All types follow the same permissive bounds policy: out-of-range indices
// never panic, they degrade to a silent no-op or a sentinel (-1, false, 0).
// Callers needing strict validation check bounds before calling.
package graph
