package opt

// At returns the element of s at idx. Negative indices count from the end,
// Python style; anything still out of range yields None.
func At[T any](s []T, idx int) Option[T] {
	n := len(s)
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return None[T]()
	}
	return Some(s[idx])
}

// AtOr is At with an eager fallback.
func AtOr[T any](s []T, idx int, def T) T {
	return At(s, idx).ValueOr(def)
}

// CharAt returns the byte of s at idx, with the same negative-index rules
// as At.
func CharAt(s string, idx int) Option[byte] {
	n := len(s)
	if idx < 0 {
		idx += n
	}
	if idx < 0 || idx >= n {
		return None[byte]()
	}
	return Some(s[idx])
}
