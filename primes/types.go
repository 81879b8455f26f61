// Package primes defines the Stream type backing the incremental prime
// sieve. See doc.go for the algorithm sketch and complexity bounds.
package primes

// firstCandidate is the smallest integer the sieve ever examines; it is
// also the smallest prime.
const firstCandidate int64 = 2

// Stream is a stateful generator of the prime sequence 2, 3, 5, 7, ...
//
// Internal state:
//
//	witnesses – maps a future composite to the primes already known to
//	            divide it. An entry exists for the current candidate iff
//	            the candidate is composite and one of its prime factors
//	            has been discovered. Entries are deleted once their
//	            candidate has been examined, keeping the map bounded by
//	            the number of primes ≤ √candidate.
//	candidate – the next integer to examine; advances by one per step.
//
// A Stream is not safe for concurrent use and is not restartable; each
// consumer must own its own instance created via New.
type Stream struct {
	witnesses map[int64][]int64 // composite candidate -> ordered prime divisors
	candidate int64             // next integer under examination
}
