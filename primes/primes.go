// Package primes — incremental sieve implementation.
//
// Algorithm outline (per advance step, see doc.go for the full sketch):
//
//  1. Look up the current candidate in the witnesses map.
//  2. Hit  → composite: slide every recorded witness p forward to
//     candidate+p, delete the entry, try the next candidate.
//  3. Miss → prime: register candidate² with the candidate as its sole
//     witness and emit.
//
// Complexity:
//
//	Time   = amortized O(log log N) per integer examined up to N
//	Memory = O(π(√candidate)) live map entries
package primes

// New returns a fresh Stream positioned before the first prime, so the
// first call to Next yields 2.
func New() *Stream {
	return &Stream{
		witnesses: make(map[int64][]int64),
		candidate: firstCandidate,
	}
}

// Next emits the next prime in strictly increasing order and advances the
// sieve. It never fails and never terminates on its own; the caller
// decides how many primes to pull.
func (s *Stream) Next() int64 {
	for {
		c := s.candidate
		s.candidate++

		divisors, composite := s.witnesses[c]
		if composite {
			// c has served its purpose: slide each witness to its next
			// untested multiple, then forget c.
			var p int64
			for _, p = range divisors {
				s.witnesses[c+p] = append(s.witnesses[c+p], p)
			}
			delete(s.witnesses, c)

			continue
		}

		// c is a new prime. Its earliest multiple not already watched by a
		// smaller prime is c², so that is where c starts witnessing.
		s.witnesses[c*c] = []int64{c}

		return c
	}
}

// NextN emits the next n primes as a slice. For n ≤ 0 it returns nil and
// leaves the stream untouched.
func (s *Stream) NextN(n int) []int64 {
	if n <= 0 {
		return nil
	}

	out := make([]int64, n)
	for i := range out {
		out[i] = s.Next()
	}

	return out
}

// UpTo returns every prime ≤ limit in ascending order, enumerated from a
// fresh stream. For limit < 2 it returns nil.
//
// Complexity: O(limit · log log limit) time, O(π(√limit)) sieve memory
// plus the result slice.
func UpTo(limit int64) []int64 {
	if limit < firstCandidate {
		return nil
	}

	var out []int64
	s := New()
	for p := s.Next(); p <= limit; p = s.Next() {
		out = append(out, p)
	}

	return out
}
