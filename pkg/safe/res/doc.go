// Package res provides Result[T], a container expressing success-with-value
// or failure-with-error as data, as an explicit alternative to sentinel
// returns and panics.
//
// Common usage:
// - Ok/Err/Errf: construct results directly
// - Try: lift a (value, error) return pair
// - Map/Then/Otherwise: transform, chain, or recover without unwrapping
// - Finally: collapse to a concrete value via handlers
// - ToOption/FromOption: bridge to and from opt.Option
//
// Same-type transformations are methods; the type-changing variants are
// package functions, matching the split in package opt.
package res
