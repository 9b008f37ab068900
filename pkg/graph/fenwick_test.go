package graph

import "testing"

func TestFenwick_PrefixAndRange(t *testing.T) {
	t.Parallel()
	ft := NewFenwickTree(10)
	ft.Update(3, 5)
	ft.Update(5, 10)
	ft.Update(7, 3)

	if got := ft.Query(7); got != 18 {
		t.Fatalf("Query(7): got %d, want 18", got)
	}
	if got := ft.RangeQuery(3, 5); got != 15 {
		t.Fatalf("RangeQuery(3, 5): got %d, want 15", got)
	}
	if got := ft.Query(2); got != 0 {
		t.Fatalf("Query(2): got %d, want 0", got)
	}
}

func TestFenwick_Bounds(t *testing.T) {
	t.Parallel()
	ft := NewFenwickTree(10)
	ft.Update(3, 5)

	// out-of-range updates are silent no-ops
	ft.Update(-1, 5)
	ft.Update(100, 5)
	if got := ft.Query(9); got != 5 {
		t.Fatalf("total after no-op updates: got %d, want 5", got)
	}

	if got := ft.Query(-1); got != 0 {
		t.Fatalf("Query(-1): got %d, want 0", got)
	}
	if got, want := ft.Query(100), ft.Query(9); got != want {
		t.Fatalf("Query(100): got %d, want clamp to Query(9)=%d", got, want)
	}
}

func TestFenwick_RangeQueryDegenerate(t *testing.T) {
	t.Parallel()
	ft := NewFenwickTree(10)
	ft.Update(0, 4)

	if got := ft.RangeQuery(5, 3); got != 0 {
		t.Fatalf("RangeQuery(5, 3): got %d, want 0", got)
	}
	if got := ft.RangeQuery(-5, -1); got != 0 {
		t.Fatalf("RangeQuery(-5, -1): got %d, want 0", got)
	}
	if got := ft.RangeQuery(10, 20); got != 0 {
		t.Fatalf("RangeQuery(10, 20): got %d, want 0", got)
	}
	if got := ft.RangeQuery(0, 0); got != 4 {
		t.Fatalf("RangeQuery(0, 0): got %d, want 4", got)
	}
}

func TestFenwick_NegativeDeltasAndAccumulation(t *testing.T) {
	t.Parallel()
	ft := NewFenwickTree(8)
	ft.Update(2, 10)
	ft.Update(2, -4)
	ft.Update(6, 1)

	if got := ft.RangeQuery(2, 2); got != 6 {
		t.Fatalf("point value at 2: got %d, want 6", got)
	}
	if got := ft.Query(7); got != 7 {
		t.Fatalf("total: got %d, want 7", got)
	}
}

func TestFenwick_MatchesBruteForce(t *testing.T) {
	t.Parallel()
	const n = 32
	ft := NewFenwickTree(n)
	ref := make([]int64, n)

	updates := []struct {
		i int
		d int64
	}{
		{0, 3}, {31, 7}, {15, -2}, {15, 9}, {8, 1}, {3, -4}, {30, 5}, {0, -3},
	}
	for _, u := range updates {
		ft.Update(u.i, u.d)
		ref[u.i] += u.d
	}

	for l := 0; l < n; l++ {
		var want int64
		for r := l; r < n; r++ {
			want += ref[r]
			if got := ft.RangeQuery(l, r); got != want {
				t.Fatalf("RangeQuery(%d, %d): got %d, want %d", l, r, got, want)
			}
		}
	}
}

func TestFenwick_ZeroSize(t *testing.T) {
	t.Parallel()
	ft := NewFenwickTree(0)
	ft.Update(0, 5)
	if got := ft.Query(0); got != 0 {
		t.Fatalf("Query on empty tree: got %d", got)
	}
	if ft.Size() != 0 {
		t.Fatalf("Size: got %d", ft.Size())
	}
}
