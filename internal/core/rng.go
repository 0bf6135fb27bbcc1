// Package core provides the seed-deterministic primitives shared by every
// puzzle generator: a restartable PRNG, grid coordinates, a generic grid
// container, flood fill and BFS shortest path. It contains no external
// dependencies (especially no UI code) to keep generation logic pure and
// testable.
package core

// SeededRand is a deterministic pseudo-random number generator (xorshift64).
// The same seed yields the same sequence on every platform. Each generator
// receives its own instance; nothing in this module touches global
// randomness, so generation is a pure function of the seed.
type SeededRand struct {
	state uint64
}

// defaultSeed replaces a zero seed, since xorshift cannot leave state 0.
const defaultSeed = 88172645463325252

// NewRand creates a new RNG with the given seed.
func NewRand(seed int64) *SeededRand {
	if seed == 0 {
		seed = defaultSeed
	}
	return &SeededRand{state: uint64(seed)}
}

// next returns the next raw uint64 of the sequence.
func (r *SeededRand) next() uint64 {
	r.state ^= r.state << 13
	r.state ^= r.state >> 7
	r.state ^= r.state << 17
	return r.state
}

// Float64 returns a random float64 in [0, 1).
func (r *SeededRand) Float64() float64 {
	return float64(r.next()&0x7FFFFFFFFFFFFFFF) / float64(0x8000000000000000)
}

// Intn returns a random int in [0, n). Returns 0 if n <= 0.
func (r *SeededRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.next() % uint64(n))
}

// Shuffle randomizes the order of n elements using the provided swap
// function (Fisher-Yates).
func (r *SeededRand) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		swap(i, j)
	}
}

// Perm returns a random permutation of [0, n).
func (r *SeededRand) Perm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	r.Shuffle(n, func(i, j int) { p[i], p[j] = p[j], p[i] })
	return p
}

// StringToSeed maps an arbitrary string onto the integer seed domain using
// the FNV-1a rolling hash. Seeds are frequently derived from dates or
// user-entered text; the mapping must be stable across runs and platforms.
func StringToSeed(s string) int64 {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	var h uint64 = offset
	for i := 0; i < len(s); i++ {
		h ^= uint64(s[i])
		h *= prime
	}
	return int64(h)
}
