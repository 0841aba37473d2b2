// Package uniqrand - Generator construction and the quadratic-residue draw.
//
// Design principles:
//   - Strict sentinels: only errors from types.go; no fmt.Errorf where a
//     sentinel suffices.
//   - Hot-path discipline: no allocations per draw; all arithmetic on
//     machine integers, double-width only where the square demands it.
//   - Algorithmic clarity: doc strings with complexity and contracts.
package uniqrand

import (
	"math/bits"
	"sync"

	"github.com/katalvlaran/lvlrand/primes"
)

// Generator emits each integer of [0, count) exactly once, lazily, in a
// seed-dependent pseudo-random order.
//
// Configuration (count, seed, prime, offsets) is fixed at construction;
// only the progress counters advance, and only forward. There is no reset.
//
// HasNext, Next and Iterator are unsynchronized. NextIfHas is the one
// goroutine-safe operation; see its contract.
type Generator struct {
	count int   // domain size, values are [0, count)
	seed  int64 // offset-derivation seed, inspectable via Seed

	prime int // smallest prime ≥ count+3 with prime ≡ 3 (mod 4)

	offsetIndex int // seed-derived rotation of the field walk, in [0, prime)
	offsetValue int // seed-derived rotation of emitted values, in [0, count)

	index     int // positions of the field walk consumed so far, ≤ prime
	realIndex int // values emitted so far, ≤ count

	mu sync.Mutex // guards the combined check-and-draw of NextIfHas
}

// New builds a Generator over [0, count).
//
// Contracts:
//   - count must be ≥ 0; otherwise ErrNegativeCount.
//   - With WithSeed the sequence is a pure function of (count, seed).
//     Without it, one seed is drawn from ambient entropy here and never
//     again; Seed reports whichever was used.
//
// Construction runs the prime search once; no randomness source is held
// afterwards.
//
// Complexity: O(√count) time (prime search), O(1) space.
func New(count int, opts ...Option) (*Generator, error) {
	if count < 0 {
		return nil, ErrNegativeCount
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	seed := cfg.seed
	if !cfg.seedSet {
		seed = entropySeed()
	}

	// prime ≥ count+3 leaves the slack {0, 1, count+2, …, prime−1} that the
	// draw loop filters out, landing the survivors bijectively on [2, count+1].
	prime := primes.FindPrime(count + 3)
	offsetIndex, offsetValue := deriveOffsets(seed, prime, count)

	return &Generator{
		count:       count,
		seed:        seed,
		prime:       prime,
		offsetIndex: offsetIndex,
		offsetValue: offsetValue,
	}, nil
}

// HasNext reports whether any values are left to draw.
//
// Complexity: O(1).
func (g *Generator) HasNext() bool {
	return g.realIndex < g.count
}

// Next draws the next value of the permutation.
//
// Contracts:
//   - Returns ErrExhausted once all count values were emitted.
//   - Over a full drain, the returned values are exactly {0, …, count−1}.
//
// Algorithm:
//  1. Rotate the walk position: local = (index + offsetIndex) mod prime.
//  2. Square-and-fold: candidate = local² mod prime, reflected to
//     prime − local² mod prime for local > prime/2. With prime ≡ 3 (mod 4)
//     this folded map is a bijection on the field.
//  3. Advance local and index; retry while candidate is 0, 1, or above
//     count+1 — the slack positions reserved by prime ≥ count+3.
//  4. Shift the survivor into the domain: (candidate − 2 + offsetValue)
//     mod count.
//
// Each field position is consumed at most once per generator lifetime and
// the slack is a constant-sized fraction of the field, so draws are
// amortized O(1) with O(1) space.
func (g *Generator) Next() (int, error) {
	if !g.HasNext() {
		return 0, ErrExhausted
	}

	// The sum may exceed the int range for primes near its top; widen.
	local := int((uint64(g.index) + uint64(g.offsetIndex)) % uint64(g.prime))

	var candidate int
	for {
		// local² can overflow 64 bits, so square into a 128-bit pair and
		// reduce mod prime from there.
		hi, lo := bits.Mul64(uint64(local), uint64(local))
		powermod := int(bits.Rem64(hi, lo, uint64(g.prime)))

		if local <= g.prime/2 {
			candidate = powermod
		} else {
			candidate = g.prime - powermod
		}

		local++
		if local == g.prime {
			local = 0
		}
		g.index++

		if candidate != 0 && candidate != 1 && candidate < g.count+2 {
			break
		}
	}

	g.realIndex++

	return (candidate - 2 + g.offsetValue) % g.count, nil
}

// NextIfHas atomically combines HasNext and Next, returning None instead
// of an error on an exhausted generator.
//
// This is the one goroutine-safe operation: the check and the draw share a
// single critical section, so concurrent callers draining one generator
// collectively receive exactly {0, …, count−1} with no duplicates and no
// gaps. The interleaving between goroutines is unspecified.
//
// Complexity: amortized O(1) plus mutex acquisition.
func (g *Generator) NextIfHas() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.HasNext() {
		return None
	}
	v, _ := g.Next() // cannot fail under the lock after HasNext
	return v
}

// Count returns the domain size fixed at construction.
func (g *Generator) Count() int { return g.count }

// Seed returns the seed the offsets were derived from, whether supplied
// via WithSeed or drawn from ambient entropy.
func (g *Generator) Seed() int64 { return g.seed }

// Index returns how many values were emitted so far.
func (g *Generator) Index() int { return g.realIndex }

// NextLeft returns how many values remain before exhaustion.
func (g *Generator) NextLeft() int { return g.count - g.realIndex }
