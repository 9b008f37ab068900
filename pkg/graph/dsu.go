package graph

// DSU tracks a dynamic partition of {0, ..., n-1} into disjoint sets with
// path compression and union by rank, giving near-O(1) amortized merges
// and membership queries. The element count is fixed at construction.
type DSU struct {
	parent []int
	rank   []int
}

// NewDSU starts every element as its own singleton set.
func NewDSU(n int) *DSU {
	if n < 0 {
		n = 0
	}
	parent := make([]int, n)
	rank := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	return &DSU{parent: parent, rank: rank}
}

// Find returns the representative of x's set, rewriting every visited
// node's parent to the root. Out-of-range x yields -1.
func (d *DSU) Find(x int) int {
	if x < 0 || x >= len(d.parent) {
		return -1
	}
	if d.parent[x] != x {
		d.parent[x] = d.Find(d.parent[x])
	}
	return d.parent[x]
}

// Unite merges the sets holding x and y and reports whether a merge
// happened. Invalid indices and already-joined sets are no-ops. The
// lower-rank root is attached under the higher; on a tie, y's root goes
// under x's and x's root gains rank.
func (d *DSU) Unite(x, y int) bool {
	px, py := d.Find(x), d.Find(y)
	if px < 0 || py < 0 || px == py {
		return false
	}
	if d.rank[px] < d.rank[py] {
		px, py = py, px
	}
	d.parent[py] = px
	if d.rank[px] == d.rank[py] {
		d.rank[px]++
	}
	return true
}

// Connected reports whether x and y are valid and share a set.
func (d *DSU) Connected(x, y int) bool {
	px, py := d.Find(x), d.Find(y)
	return px >= 0 && py >= 0 && px == py
}

// Components counts the sets, compressing every path as it goes. Repeated
// calls on an unmodified DSU return the same count.
func (d *DSU) Components() int {
	count := 0
	for i := range d.parent {
		if d.Find(i) == i {
			count++
		}
	}
	return count
}

// Size returns the element count.
func (d *DSU) Size() int {
	return len(d.parent)
}
