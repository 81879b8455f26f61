// Package primality tests integers for primality by way of their prime
// factorization.
//
// Overview:
//
//   - IsPrime(n) reports whether n is a prime number: n ≥ 2 with no
//     divisor other than 1 and itself.
//   - The test delegates to factorize.Factorize and asks whether the
//     result is a single element — a prime is exactly an integer that is
//     its own complete factorization.
//
// The unity trap:
//
//	Factorization length alone is not a primality test. The defined
//	factorization of 1 is the singleton [1], so a naive length check
//	would call 1 prime. IsPrime therefore excludes n < 2 up front —
//	negatives, 0 and 1 are never prime — before consulting the
//	factorization at all. This also keeps Factorize's zero rejection
//	out of the call path.
//
// Performance:
//
//   - Time:  O(√n) worst case, inherited from trial division; primes are
//     the worst case since the scan must be exhausted.
//   - Space: O(k) for the discarded factor slice.
//
// API reference:
//
//	func IsPrime(number int64) bool
//	func IsPrimeFloat(value float64) (bool, error)
//
// IsPrimeFloat validates the input through factorize.FromFloat first and
// propagates its ErrInvalidInput unmodified — fractional values are
// rejected, never truncated to a nearby integer.
//
// Thread safety:
//
//   - Both functions are pure and reentrant; no package state exists.
package primality
