// Package primath is a compact toolbox for exact integer number theory —
// an unbounded prime generator, trial-division factorization, and a
// primality test built on top of it.
//
// 🚀 What is primath?
//
//	A small, dependency-light library that brings together:
//		• primes/     — lazy, infinite prime stream via an incremental sieve
//		• factorize/  — ordered prime factorization with exact sign conventions
//		• primality/  — primality testing derived from factorization
//
// ✨ Why choose primath?
//
//   - Exact by construction – trial division, no probabilistic shortcuts
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Pure Go – no cgo, no hidden deps
//   - Unbounded – the prime stream never needs a precomputed limit
//
// Quick taste:
//
//	s := primes.New()
//	fmt.Println(s.Next(), s.Next(), s.Next()) // 2 3 5
//
//	fs, _ := factorize.Factorize(360)
//	fmt.Println(fs) // [2 2 2 3 3 5]
//
//	fmt.Println(primality.IsPrime(47055833459)) // true
//
// Everything is organized under three subpackages:
//
//	primes/     — Stream state machine, NextN and UpTo conveniences
//	factorize/  — Factorize, FromFloat input bridge, Product helper
//	primality/  — IsPrime, IsPrimeFloat
//
// All routines are pure CPU-bound computation: no I/O, no goroutines, no
// global state. A Stream instance is single-consumer; give each goroutine
// its own. Dive into each package's doc.go for algorithms, complexity
// bounds and the full sentinel-error catalogue.
//
//	go get github.com/primath/primath
package primath
