// Package factorize — ascending trial-division factorization.
//
// Algorithm outline:
//
//  1. Reject zero (ErrZeroFactorization).
//  2. Strip the sign into a leading -1 marker and take the magnitude in
//     uint64 (exact even for math.MinInt64).
//  3. Magnitude 1 → the unity singleton [1].
//  4. Scan divisors d = 2, 3, 4, ... while d ≤ m/d; divide out each hit,
//     appending in discovery order. A final cofactor > 1 is prime.
//
// Complexity:
//
//	Time   = O(√n) divisions worst case
//	Memory = O(k) for k result factors
package factorize

import (
	"fmt"
	"math"
)

// Factorize returns the ordered prime factorization of number.
//
// The product of the result equals number exactly. Factors appear in the
// order the ascending scan discovers them — non-decreasing magnitude —
// after an optional leading -1 for negative inputs. The unity inputs ±1
// yield the defined singleton [1] (with marker for -1).
//
// Factorize(0) fails with ErrZeroFactorization; no other input fails.
func Factorize(number int64) ([]int64, error) {
	if number == 0 {
		return nil, fmt.Errorf("%w: every integer divides 0", ErrZeroFactorization)
	}

	// 1) Split sign from magnitude. Negating through uint64 keeps
	//    math.MinInt64 exact (its magnitude 2⁶³ does not fit in int64).
	var out []int64
	m := uint64(number)
	if number < 0 {
		out = append(out, signMarker)
		m = -m
	}

	// 2) Unity is its own fixed point: defined as [1].
	if m == 1 {
		return append(out, unityFactor), nil
	}

	// 3) Ascending trial division with explicit accumulation. The bound
	//    d ≤ m/d is d² ≤ m without the overflow. Composite d can never
	//    divide m here: its prime parts were already divided out.
	for d := smallestDivisor; d <= m/d; {
		if m%d == 0 {
			out = append(out, int64(d))
			m /= d

			continue
		}
		d++
	}

	// 4) Whatever survives past its own square root is prime. The only
	//    magnitude above MaxInt64, 2⁶³, is a power of two and never
	//    reaches this append, so the conversion is exact.
	if m > 1 {
		out = append(out, int64(m))
	}

	return out, nil
}

// FromFloat converts a float64 to int64 for factorization, rejecting
// anything that is not exactly an int64 value. NaN, ±Inf, fractional
// values, and values outside the int64 range fail with ErrInvalidInput;
// nothing is ever rounded or truncated.
//
// It exists so float-typed callers keep the exactness contract:
//
//	n, err := factorize.FromFloat(v)
//	if err != nil { ... }
//	fs, err := factorize.Factorize(n)
func FromFloat(value float64) (int64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: %v is not finite", ErrInvalidInput, value)
	}
	if math.Trunc(value) != value {
		return 0, fmt.Errorf("%w: %v has a fractional part", ErrInvalidInput, value)
	}
	// float64(1<<63) is exact; MaxInt64 itself is not representable, so
	// the upper comparison is against 2⁶³ and excludes it correctly.
	if value >= float64(1<<63) || value < -float64(1<<63) {
		return 0, fmt.Errorf("%w: %v overflows int64", ErrInvalidInput, value)
	}

	return int64(value), nil
}

// Product folds a factor slice back into the integer it factors; the
// empty slice folds to 1. It is the inverse of Factorize for every
// non-zero int64, including math.MinInt64 — the partial products of
// [-1 2 2 ...] walk down -2, -4, ..., -2⁶³ and never leave int64 range.
func Product(factors []int64) int64 {
	product := int64(1)
	var f int64
	for _, f = range factors {
		product *= f
	}

	return product
}
