package graph

import "testing"

func TestDSU_Singletons(t *testing.T) {
	t.Parallel()
	d := NewDSU(4)
	for i := 0; i < 4; i++ {
		if got := d.Find(i); got != i {
			t.Fatalf("Find(%d) on fresh DSU: got %d", i, got)
		}
	}
	if got := d.Components(); got != 4 {
		t.Fatalf("Components: got %d, want 4", got)
	}
}

func TestDSU_UniteAndConnected(t *testing.T) {
	t.Parallel()
	d := NewDSU(5)
	if !d.Unite(0, 1) {
		t.Fatalf("Unite(0, 1) should merge")
	}
	if !d.Unite(2, 3) {
		t.Fatalf("Unite(2, 3) should merge")
	}
	if !d.Unite(1, 2) {
		t.Fatalf("Unite(1, 2) should merge")
	}

	if !d.Connected(0, 3) {
		t.Fatalf("0 and 3 should be connected")
	}
	if d.Connected(0, 4) {
		t.Fatalf("0 and 4 should not be connected")
	}
	if got := d.Components(); got != 2 {
		t.Fatalf("Components: got %d, want 2", got)
	}
}

func TestDSU_UniteReturnsFalseWhenJoined(t *testing.T) {
	t.Parallel()
	d := NewDSU(3)
	if !d.Unite(0, 1) {
		t.Fatalf("first Unite should merge")
	}
	if d.Unite(0, 1) {
		t.Fatalf("repeated Unite should report false")
	}
	if d.Unite(1, 0) {
		t.Fatalf("Unite across the same set should report false")
	}
}

func TestDSU_InvalidIndices(t *testing.T) {
	t.Parallel()
	d := NewDSU(3)
	if got := d.Find(-1); got != -1 {
		t.Fatalf("Find(-1): got %d, want -1", got)
	}
	if got := d.Find(3); got != -1 {
		t.Fatalf("Find(3): got %d, want -1", got)
	}
	if d.Unite(-1, 0) {
		t.Fatalf("Unite(-1, 0) should report false")
	}
	if d.Unite(0, 99) {
		t.Fatalf("Unite(0, 99) should report false")
	}
	if d.Connected(-1, 0) {
		t.Fatalf("Connected(-1, 0) should be false")
	}
}

func TestDSU_FindIdempotent(t *testing.T) {
	t.Parallel()
	d := NewDSU(6)
	d.Unite(0, 1)
	d.Unite(1, 2)
	d.Unite(4, 5)

	for x := 0; x < 6; x++ {
		first := d.Find(x)
		if second := d.Find(x); second != first {
			t.Fatalf("Find(%d) not idempotent: %d then %d", x, first, second)
		}
	}
}

func TestDSU_ComponentsIdempotent(t *testing.T) {
	t.Parallel()
	d := NewDSU(5)
	d.Unite(0, 1)
	d.Unite(2, 3)

	first := d.Components()
	second := d.Components()
	if first != second {
		t.Fatalf("Components not idempotent: %d then %d", first, second)
	}
	if first != 3 {
		t.Fatalf("Components: got %d, want 3", first)
	}
}

func TestDSU_RankTieAttachesUnderFirst(t *testing.T) {
	t.Parallel()
	d := NewDSU(2)
	if !d.Unite(0, 1) {
		t.Fatalf("Unite should merge")
	}
	// equal ranks: root(1) goes under root(0)
	if got := d.Find(1); got != 0 {
		t.Fatalf("after tie Unite(0, 1), Find(1): got %d, want 0", got)
	}
}

func TestDSU_ZeroSize(t *testing.T) {
	t.Parallel()
	d := NewDSU(0)
	if got := d.Components(); got != 0 {
		t.Fatalf("Components on empty DSU: got %d", got)
	}
	if got := d.Find(0); got != -1 {
		t.Fatalf("Find(0) on empty DSU: got %d", got)
	}
}
