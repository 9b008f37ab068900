// Package mathx provides checked arithmetic returning res.Result where a
// plain return would have to panic or lie, plus the small numeric helpers
// (gcd, modular power, clamping) a prototyping kit needs at hand.
package mathx
