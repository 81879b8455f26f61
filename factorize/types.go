// Package factorize defines the sentinel errors and fixed conventions of
// the trial-division factorizer. See doc.go for the full contract.
package factorize

import "errors"

// Sentinel errors returned by this package.
var (
	// ErrZeroFactorization indicates the input was exactly zero. Every
	// integer divides zero, so zero has no prime factorization.
	ErrZeroFactorization = errors.New("factorize: zero has no prime factorization")

	// ErrInvalidInput indicates a float input that does not represent an
	// int64 value: NaN, ±Inf, a fractional value, or one outside the
	// int64 range. The input is rejected, never truncated.
	ErrInvalidInput = errors.New("factorize: input is not an integer")
)

const (
	// smallestDivisor is where the ascending trial-division scan starts.
	smallestDivisor uint64 = 2

	// signMarker leads the factorization of every negative input.
	signMarker int64 = -1

	// unityFactor is the defined factorization of ±1 (after the sign
	// marker). A convention, not a prime.
	unityFactor int64 = 1
)
