// Package opt provides Option[T], a container expressing presence or
// absence of a value without nil sentinels.
//
// Same-type transformations are methods (Map, Then, Otherwise); the
// type-changing variants are package functions (Map, Then, Flatten) because
// Go methods cannot introduce new type parameters.
//
// The package also carries safe indexing helpers (At, AtOr, CharAt) that
// return an Option instead of panicking on out-of-range access.
package opt
