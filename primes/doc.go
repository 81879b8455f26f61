// Package primes provides a lazy, unbounded generator of prime numbers
// built on an incremental sieve.
//
// Overview:
//
//   - A Stream emits the primes 2, 3, 5, 7, 11, ... in strictly increasing
//     order, one at a time, with no upper bound fixed in advance.
//   - Unlike the classic sieve of Eratosthenes, no array of size N is ever
//     allocated: the stream keeps a small map of upcoming composites and
//     crosses candidates off as it reaches them.
//
// How the incremental sieve works:
//
//	The stream examines candidates 2, 3, 4, ... in order and maintains a
//	map `witnesses: composite -> primes known to divide it`.
//
//	 1. If the current candidate has an entry, it is composite. Each
//	    recorded prime p is re-registered as a witness of candidate+p
//	    (its next untested multiple) and the entry is deleted.
//	 2. Otherwise the candidate is a new prime: it is emitted, and
//	    candidate² is registered as a future composite with the candidate
//	    as its sole witness. Smaller multiples need no entry — they are
//	    already covered by smaller primes.
//
// Performance and complexity:
//
//   - Time:   amortized O(log log N) sieve work per integer examined up to N.
//   - Memory: O(π(√candidate)) map entries — one per prime whose square
//     does not exceed the current candidate. Enumerating the first million
//     primes keeps fewer than 600 entries live.
//
// When to use:
//
//   - Open-ended enumeration: "give me primes until I say stop".
//   - Prime tables of unknown size, wheel construction, sum/count scans.
//   - For a one-shot primality check of a single integer, prefer
//     primality.IsPrime; for decomposing one integer, prefer
//     factorize.Factorize — both are self-contained and allocate nothing.
//
// API reference:
//
//	func New() *Stream
//	  - returns a fresh stream positioned before 2.
//
//	func (s *Stream) Next() int64
//	  - emits the next prime and advances the sieve. Never fails.
//
//	func (s *Stream) NextN(n int) []int64
//	  - emits the next n primes (nil for n ≤ 0).
//
//	func UpTo(limit int64) []int64
//	  - all primes ≤ limit, from a fresh stream (nil for limit < 2).
//
// Determinism and lifecycle:
//
//   - Two independent streams always emit identical sequences.
//   - A stream is not restartable or rewindable; drop it and call New()
//     to start over. Dropping a stream releases all sieve state.
//
// Thread safety:
//
//   - A Stream is single-consumer: Next mutates internal state and must
//     not be called concurrently. Concurrent consumers each own their own
//     Stream; state is never shared between instances.
//
// Numeric range:
//
//   - The sieve registers candidate² when a prime is found, so results are
//     exact for candidates up to ⌊√MaxInt64⌋ = 3 037 000 499. Reaching
//     that point by enumeration is far beyond practical use, so Next
//     carries no overflow guard.
package primes
