package mathx

import (
	"cmp"
	"math"

	"github.com/ellrym/swiss/pkg/safe/res"
)

// TryDiv divides a by b, failing instead of panicking on a zero divisor.
func TryDiv(a, b int64) res.Result[int64] {
	if b == 0 {
		return res.Errf[int64]("division by zero")
	}
	return res.Ok(a / b)
}

// TryMod reduces a modulo b, failing on a zero divisor.
func TryMod(a, b int64) res.Result[int64] {
	if b == 0 {
		return res.Errf[int64]("modulo by zero")
	}
	return res.Ok(a % b)
}

// TrySqrt takes the square root of x, failing on negative input.
func TrySqrt(x float64) res.Result[float64] {
	if x < 0 {
		return res.Errf[float64]("sqrt of negative %v", x)
	}
	return res.Ok(math.Sqrt(x))
}

// GCD returns the greatest common divisor of a and b, never negative.
// GCD(0, 0) is 0.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of a and b, never negative, 0 when
// either argument is 0.
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	r := a / GCD(a, b) * b
	if r < 0 {
		r = -r
	}
	return r
}

// Power computes base^exp mod m by binary exponentiation. Negative exp or
// non-positive m yields 0; a negative base is normalized into [0, m).
func Power(base, exp, m int64) int64 {
	if exp < 0 || m <= 0 {
		return 0
	}
	base %= m
	if base < 0 {
		base += m
	}
	result := int64(1) % m
	for exp > 0 {
		if exp&1 == 1 {
			result = result * base % m
		}
		base = base * base % m
		exp >>= 1
	}
	return result
}

// Clamp limits v to [low, high].
func Clamp[T cmp.Ordered](v, low, high T) T {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}

// InBounds reports low <= v < high.
func InBounds[T cmp.Ordered](v, low, high T) bool {
	return v >= low && v < high
}

// InGrid reports whether cell (r, c) lies inside a rows-by-cols grid.
func InGrid(r, c, rows, cols int) bool {
	return r >= 0 && r < rows && c >= 0 && c < cols
}
