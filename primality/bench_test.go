package primality_test

import (
	"testing"

	"github.com/primath/primath/primality"
)

// BenchmarkIsPrime_LargePrime measures the worst case: an actual prime
// forces the underlying scan to run to √n.
func BenchmarkIsPrime_LargePrime(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if !primality.IsPrime(47_055_833_459) {
			b.Fatal("47055833459 must be prime")
		}
	}
}

// BenchmarkIsPrime_EvenComposite measures the best case: the scan stops
// at the first divisor.
func BenchmarkIsPrime_EvenComposite(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if primality.IsPrime(47_055_833_460) {
			b.Fatal("47055833460 must be composite")
		}
	}
}
