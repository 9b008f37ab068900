package random

import (
	"math/rand/v2"
	"time"

	"github.com/ellrym/swiss/pkg/safe/opt"
)

// Source is the randomness capability the helpers in this package consume.
type Source interface {
	// Int64 returns a uniform value in [min, max]. Inverted bounds are
	// swapped, not rejected.
	Int64(min, max int64) int64
	// Float64 returns a uniform value in [min, max).
	Float64(min, max float64) float64
	// Bool returns true with probability p.
	Bool(p float64) bool
}

// Rand is the default Source, backed by a PCG generator. Not safe for
// concurrent use; give each goroutine its own instance.
type Rand struct {
	rng *rand.Rand
}

// New returns a time-seeded Rand.
func New() *Rand {
	now := uint64(time.Now().UnixNano())
	return NewSeeded(now, now>>32)
}

// NewSeeded returns a deterministic Rand for a given seed pair.
func NewSeeded(seed1, seed2 uint64) *Rand {
	return &Rand{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

func (r *Rand) Int64(min, max int64) int64 {
	if min > max {
		min, max = max, min
	}
	return min + r.rng.Int64N(max-min+1)
}

func (r *Rand) Float64(min, max float64) float64 {
	if min > max {
		min, max = max, min
	}
	return min + r.rng.Float64()*(max-min)
}

func (r *Rand) Bool(p float64) bool {
	return r.rng.Float64() < p
}

// Choice picks a uniform element of items; None when items is empty.
func Choice[T any](src Source, items []T) opt.Option[T] {
	if len(items) == 0 {
		return opt.None[T]()
	}
	idx := src.Int64(0, int64(len(items)-1))
	return opt.Some(items[idx])
}

// Shuffle permutes items in place (Fisher-Yates).
func Shuffle[T any](src Source, items []T) {
	for i := len(items) - 1; i > 0; i-- {
		j := src.Int64(0, int64(i))
		items[i], items[j] = items[j], items[i]
	}
}

// Sample draws k distinct elements without replacement, clamping k to
// len(items). The input slice is left untouched.
func Sample[T any](src Source, items []T, k int) []T {
	if k > len(items) {
		k = len(items)
	}
	if k < 0 {
		k = 0
	}
	indices := make([]int, len(items))
	for i := range indices {
		indices[i] = i
	}
	out := make([]T, 0, k)
	for i := 0; i < k; i++ {
		j := int(src.Int64(int64(i), int64(len(indices)-1)))
		indices[i], indices[j] = indices[j], indices[i]
		out = append(out, items[indices[i]])
	}
	return out
}
