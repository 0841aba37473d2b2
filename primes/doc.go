// Package primes locates prime moduli suitable for quadratic-residue
// permutations.
//
// What it provides:
//
//   - FindPrime(min) — the smallest prime p ≥ min with p ≡ 3 (mod 4)
//   - IsPrime(x)     — deterministic trial-division primality test
//
// 🔎 Why "≡ 3 (mod 4)"?
//
//	Over a prime field Z/p the squaring map x ↦ x² mod p is two-to-one.
//	When p ≡ 3 (mod 4), −1 is a quadratic non-residue mod p, so exactly
//	one of every {x, p−x} pair squares to each residue; folding the map
//	around p/2 then yields a true bijection. uniqrand exploits this to
//	turn a counter into a permutation.
//
// Cost model:
//
//	Trial division is O(√p) per candidate and runs once per generator
//	construction, never on a draw path. Primes ≡ 3 (mod 4) are dense
//	(about half of all primes), so the search loop terminates after a
//	handful of candidates in practice.
//
// See uniqrand for the consumer of these moduli.
package primes
