// Package primality — primality via factorization length.
package primality

import "github.com/primath/primath/factorize"

// IsPrime reports whether number is prime.
//
// Negative numbers, 0 and 1 are never prime and are excluded before
// factorizing; the explicit check matters because the factorization of 1
// is the singleton [1], which a bare length test would misread as prime.
// For number ≥ 2 the answer is whether the factorization collapses to a
// single element, number itself.
func IsPrime(number int64) bool {
	if number < 2 {
		return false
	}

	// Factorize cannot fail here: zero was excluded above and the int64
	// domain rules out non-integer input.
	factors, _ := factorize.Factorize(number)

	return len(factors) == 1
}

// IsPrimeFloat is IsPrime for float-typed callers. The value must
// represent an int64 exactly; otherwise the factorize.ErrInvalidInput
// from the conversion is returned as-is, and nothing is truncated.
func IsPrimeFloat(value float64) (bool, error) {
	number, err := factorize.FromFloat(value)
	if err != nil {
		return false, err
	}

	return IsPrime(number), nil
}
