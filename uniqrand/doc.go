// Package uniqrand emits every integer of [0, count) exactly once, in a
// pseudo-random seed-dependent order, with O(1) extra memory and amortized
// O(1) work per draw.
//
// 🚀 What is uniqrand?
//
//	A storageless permutation generator. Instead of shuffling an array or
//	tracking a visited-set, it maps an advancing counter through a folded
//	quadratic map over a prime field:
//	  • pick the smallest prime p ≥ count+3 with p ≡ 3 (mod 4)
//	  • square-and-fold the counter mod p, which is a bijection on the field
//	  • skip the few values outside [2, count+1] created by the p ≥ count+3 slack
//	  • shift the survivor by a seed-derived offset into [0, count)
//
// ✨ Key features:
//   - exactly-once: the drained set always equals {0, …, count−1}
//   - deterministic: equal (count, seed) ⇒ identical sequences
//   - O(1) state: five integers, regardless of count
//   - explicit exhaustion: Next returns ErrExhausted, NextIfHas returns None
//   - thread-safe draining: NextIfHas is a single mutex-guarded check-and-draw
//   - checked iteration: Iterator fails fast with ErrConcurrentModification
//     when another access path draws behind its back
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlrand/uniqrand"
//
//	g, err := uniqrand.New(1_000_000, uniqrand.WithSeed(42))
//	if err != nil {
//	  // only ErrNegativeCount is possible here
//	}
//	for g.HasNext() {
//	  v, _ := g.Next() // each of 0..999999, exactly once
//	  _ = v
//	}
//
// Concurrency:
//
//	HasNext, Next and Iterator are unsynchronized; exclusion is the caller's
//	responsibility. NextIfHas is the one thread-safe operation: any number
//	of goroutines may drain the same generator through it, and together
//	they partition [0, count) with no duplicates and no gaps.
//
// Determinism & entropy:
//
//	A seed given via WithSeed is used verbatim. Without it, one seed is
//	drawn from ambient entropy at construction and is then inspectable via
//	Seed(); no randomness source is touched afterwards.
//
// Performance:
//
//   - Time:   amortized O(1) per draw; O(√count) once at construction
//   - Memory: O(1)
//
// See examples in example_test.go and the modulus search in package primes.
package uniqrand
