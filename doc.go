// Package lvlrand generates streams of pseudo-random, non-repeating
// integers over [0, N) — without ever materializing the permutation or
// remembering which values were already drawn.
//
// 🚀 What is lvlrand?
//
//	A small, deterministic library for streaming unique sampling:
//		• Storageless permutations: O(1) extra memory, amortized O(1) per draw
//		• Quadratic-residue bijection over a prime field ≡ 3 (mod 4)
//		• Seedable: same (count, seed) ⇒ same sequence, call for call
//		• Exhaustion protocol: HasNext / Next / NextIfHas, plus a checked iterator
//		• Thread-safe draining via NextIfHas across any number of goroutines
//
// ✨ Why choose lvlrand?
//
//   - No visited-set, no shuffled array – iterate a huge index space with
//     five integers of state
//   - Exact – every value of [0, N) appears exactly once before exhaustion
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – no time-based randomness hidden anywhere
//
// Under the hood, everything is organized under two subpackages:
//
//	primes/   — smallest prime ≥ min congruent to 3 (mod 4), via trial division
//	uniqrand/ — the Generator: construction, draws, exhaustion, iteration
//
// Quick example:
//
//	g, _ := uniqrand.New(5, uniqrand.WithSeed(42))
//	for g.HasNext() {
//	    v, _ := g.Next()
//	    fmt.Println(v) // each of 0..4, exactly once, in a seed-dependent order
//	}
//
// Dive into README.md for the number theory behind the bijection and the
// exhaustion/concurrency contracts of each operation.
//
//	go get github.com/katalvlaran/lvlrand/uniqrand
package lvlrand
