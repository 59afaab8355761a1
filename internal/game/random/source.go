// Package random provides the randomness abstraction used to pick the
// computer's move each round.
package random

import "math/rand/v2"

// Source is the randomness provider for move selection.
//
// Implementations MUST be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative random int in [0, n).
	//
	// Precondition: n > 0.
	Intn(n int) int
}

// mathSource implements Source using the math/rand/v2 global generator.
//
// The move index does not need to be unpredictable: the commitment key is
// what keeps the round fair.
type mathSource struct{}

// NewMathSource returns a general-purpose Source backed by math/rand/v2.
//
// Postcondition: Every value returned by Intn is in [0, n).
func NewMathSource() Source {
	return mathSource{}
}

// Intn returns a uniformly distributed int in [0, n).
//
// Precondition: n > 0. Panics with "random: Intn called with n <= 0" if n <= 0.
func (mathSource) Intn(n int) int {
	if n <= 0 {
		panic("random: Intn called with n <= 0")
	}
	return rand.IntN(n)
}

// Fixed is a deterministic Source that replays Values in order, wrapping
// around when exhausted. Each value is reduced modulo n.
//
// Intended for tests and scripted demos.
type Fixed struct {
	Values []int
	next   int
}

// Intn returns the next scripted value reduced into [0, n).
//
// Precondition: n > 0 and len(f.Values) > 0.
func (f *Fixed) Intn(n int) int {
	if n <= 0 {
		panic("random: Intn called with n <= 0")
	}
	if len(f.Values) == 0 {
		panic("random: Fixed has no values")
	}
	v := f.Values[f.next%len(f.Values)]
	f.next++
	return ((v % n) + n) % n
}
