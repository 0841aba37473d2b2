// Package uniqrand - RNG utilities for seeding a generator.
//
// This file centralizes all randomness used by the package.
//
// Goals:
//   - Determinism: same seed ⇒ identical offsets, hence identical sequences.
//   - Encapsulation: a single derivation function; no time-based sources
//     hidden anywhere.
//   - One-shot entropy: the ambient source is consulted exactly once, at
//     construction, and only when the caller supplies no seed.
//
// Concurrency:
//   - The derived *rand.Rand never escapes deriveOffsets; nothing here is
//     shared between goroutines.
package uniqrand

import "math/rand"

// entropySeed draws one seed from the ambient (auto-seeded) source,
// covering the full signed 64-bit range.
//
// Complexity: O(1).
func entropySeed() int64 {
	return int64(rand.Uint64())
}

// deriveOffsets expands seed into the two randomization constants of a
// generator: an index offset in [0, prime) rotating the walk's starting
// point over the field, and a value offset in [0, count) rotating the
// emitted values within the domain.
//
// Policy: the seed is used verbatim (no zero-seed remapping); both offsets
// are 0 for the empty domain, where they can never matter.
//
// Complexity: O(1).
func deriveOffsets(seed int64, prime, count int) (offsetIndex, offsetValue int) {
	if count == 0 {
		return 0, 0
	}

	r := rand.New(rand.NewSource(seed))
	offsetIndex = int(r.Int63n(int64(prime)))
	offsetValue = int(r.Int63n(int64(count)))

	return offsetIndex, offsetValue
}
