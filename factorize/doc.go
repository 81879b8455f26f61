// Package factorize decomposes integers into their ordered prime factors
// using exact trial division.
//
// Overview:
//
//   - Factorize(n) returns the multiset of prime factors of n as a slice
//     whose product is exactly n, in the order trial division discovers
//     them (non-decreasing magnitude).
//   - Negative inputs keep their sign as a leading -1 marker; the unity
//     inputs ±1 factor to the deliberate singleton [1]; zero has no prime
//     factorization and is rejected.
//
// Conventions (fixed, not configurable):
//
//	Factorize(8)    = [2 2 2]
//	Factorize(-17)  = [-1 17]
//	Factorize(1)    = [1]
//	Factorize(-1)   = [-1 1]
//	Factorize(0)    = ErrZeroFactorization
//
// Algorithm:
//
//	Scan trial divisors d = 2, 3, 4, ... while d ≤ m/d (an overflow-safe
//	d² ≤ m). Each time d divides the remaining cofactor m, append d and
//	divide; once d no longer divides, advance d. A cofactor left > 1 at
//	the end is prime and closes the result. The loop accumulates into a
//	slice rather than recursing, so inputs with many repeated small
//	factors (3²⁵ has twenty-five of them) cost no call-stack depth.
//
// Performance and complexity:
//
//   - Time:  O(√n) divisions worst case (n prime). Composite divisors are
//     tested but can never divide — their prime parts were divided out
//     first — so correctness needs no prime pre-filter.
//   - Space: O(k) for the k factors of the result; no other allocation.
//
// Numeric range:
//
//   - The full int64 domain is supported. The magnitude is processed in
//     uint64, so Factorize(math.MinInt64) is exact: a -1 marker followed
//     by sixty-three 2s.
//
// Error handling (sentinel errors):
//
//   - ErrZeroFactorization:
//     Returned by Factorize(0). Every integer divides zero, so "the"
//     prime factorization does not exist.
//   - ErrInvalidInput:
//     Returned by FromFloat for NaN, ±Inf, fractional values, and values
//     outside the int64 range. FromFloat never truncates.
//
// Both indicate caller-side misuse, are detected before any work is done,
// and match with errors.Is.
//
// API reference:
//
//	func Factorize(number int64) ([]int64, error)
//	func FromFloat(value float64) (int64, error)
//	func Product(factors []int64) int64
//
// Product folds a factor slice back into the original integer and is the
// round-trip inverse of Factorize for every non-zero input, including
// math.MinInt64 (every partial product stays in int64 range).
//
// Thread safety:
//
//   - All functions are pure and reentrant; no package state exists.
//
// See also:
//
//   - primality.IsPrime — primality testing built on this package.
//   - primes.Stream — enumerating primes rather than decomposing one.
package factorize
