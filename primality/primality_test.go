package primality_test

import (
	"testing"

	"github.com/primath/primath/factorize"
	"github.com/primath/primath/primality"
	"github.com/primath/primath/primes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// TestIsPrime_NeverPrimeInputs pins the explicit exclusions: negatives,
// zero and one. Note -1 and 1 both factorize to a single element, so the
// length check alone would get them wrong.
func TestIsPrime_NeverPrimeInputs(t *testing.T) {
	for _, n := range []int64{-47_055_833_459, -17, -2, -1, 0, 1} {
		assert.False(t, primality.IsPrime(n), "IsPrime(%d) must be false", n)
	}
}

// TestIsPrime_KnownValues covers small primes, small composites, and the
// reference large prime.
func TestIsPrime_KnownValues(t *testing.T) {
	for _, n := range []int64{2, 3, 5, 17, 97, 104_729, 47_055_833_459} {
		assert.True(t, primality.IsPrime(n), "IsPrime(%d) must be true", n)
	}
	for _, n := range []int64{4, 9, 15, 91, 104_730, 47_055_833_460} {
		assert.False(t, primality.IsPrime(n), "IsPrime(%d) must be false", n)
	}
}

// TestIsPrime_AgreesWithStream checks the tester against the sieve: over
// a contiguous range, exactly the stream's outputs test prime.
func TestIsPrime_AgreesWithStream(t *testing.T) {
	const limit = 3000

	fromStream := make(map[int64]bool)
	for _, p := range primes.UpTo(limit) {
		fromStream[p] = true
	}

	for n := int64(0); n <= limit; n++ {
		require.Equal(t, fromStream[n], primality.IsPrime(n),
			"sieve and tester disagree at %d", n)
	}
}

// TestIsPrime_FactorizationLengthLaw states the defining relation as a
// property: IsPrime(n) holds iff the factorization has one element and n
// is none of -1, 0, 1.
func TestIsPrime_FactorizationLengthLaw(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		number := rapid.Int64Range(-1_000_000_000, 1_000_000_000).Draw(t, "number")

		want := false
		if number != 0 {
			factors, err := factorize.Factorize(number)
			require.NoError(t, err)
			want = len(factors) == 1 && number != 1 && number != -1
		}

		require.Equal(t, want, primality.IsPrime(number))
	})
}

// TestIsPrimeFloat covers the validation bridge: exact integers are
// tested, everything else propagates ErrInvalidInput untouched.
func TestIsPrimeFloat(t *testing.T) {
	ok, err := primality.IsPrimeFloat(17)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = primality.IsPrimeFloat(18)
	require.NoError(t, err)
	assert.False(t, ok)

	// 17.5 must be rejected, not truncated to the prime 17.
	_, err = primality.IsPrimeFloat(17.5)
	assert.ErrorIs(t, err, factorize.ErrInvalidInput)

	_, err = primality.IsPrimeFloat(1e300)
	assert.ErrorIs(t, err, factorize.ErrInvalidInput)
}
