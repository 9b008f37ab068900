package graph

// FenwickTree maintains additive deltas over positions [0, n) and answers
// prefix-sum queries in O(log n) after O(log n) point updates. The size is
// fixed at construction.
//
// Internally cell i aggregates a power-of-two-sized range ending at i,
// using 1-based indexing mapped from the 0-based external positions.
type FenwickTree struct {
	tree []int64
	n    int
}

// NewFenwickTree allocates a zeroed tree over positions [0, n).
func NewFenwickTree(n int) *FenwickTree {
	if n < 0 {
		n = 0
	}
	return &FenwickTree{tree: make([]int64, n+1), n: n}
}

// Update adds delta to position i. Out-of-range positions are ignored.
func (t *FenwickTree) Update(i int, delta int64) {
	if i < 0 || i >= t.n {
		return
	}
	for i++; i <= t.n; i += i & (-i) {
		t.tree[i] += delta
	}
}

// Query returns the sum over [0, i] inclusive. Negative i yields 0; i past
// the end is clamped to the last position.
func (t *FenwickTree) Query(i int) int64 {
	if i < 0 {
		return 0
	}
	if i >= t.n {
		i = t.n - 1
	}
	var sum int64
	for i++; i > 0; i -= i & (-i) {
		sum += t.tree[i]
	}
	return sum
}

// RangeQuery returns the sum over [l, r] inclusive, 0 when the range is
// empty or lies entirely outside [0, n).
func (t *FenwickTree) RangeQuery(l, r int) int64 {
	if l > r || r < 0 || l >= t.n {
		return 0
	}
	if l > 0 {
		return t.Query(r) - t.Query(l-1)
	}
	return t.Query(r)
}

// Size returns the number of logical positions.
func (t *FenwickTree) Size() int {
	return t.n
}
