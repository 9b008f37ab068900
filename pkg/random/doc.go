// Package random models randomness as an injected capability rather than
// process-wide global state: helpers take a Source, callers pass a seeded
// Rand (or their own implementation) and keep reproducibility in hand.
package random
