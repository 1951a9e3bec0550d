package vmath

import "math"

// --- Arithmetic ---

// Clamp restricts v to [lo, hi]; lo wins when the range is inverted
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Sign returns -1 for negative input and +1 otherwise
// Zero maps to +1 so a heading always has a direction
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	return 1
}

// RoundTo rounds x to the given number of decimal places
func RoundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(x*p) / p
}

// Wrap01 folds x into [0, 1)
func Wrap01(x float64) float64 {
	x -= math.Floor(x)
	if x >= 1 {
		return 0
	}
	return x
}

// CircularDistance returns the shortest distance between two positions on a unit circle ([0,1) wraps)
func CircularDistance(a, b float64) float64 {
	d := math.Abs(Wrap01(a) - Wrap01(b))
	if d > 0.5 {
		d = 1 - d
	}
	return d
}

// Lerp maps t in [0,1] onto [a,b]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// --- Randomness ---

// FastRand is a seedable xorshift64 source, deterministic for a given seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a uniform value in [0, 1) using the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}
