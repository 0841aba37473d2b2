package primes

// FindPrime returns the smallest prime p ≥ min with p ≡ 3 (mod 4).
//
// Contracts:
//   - min may be any value; results below 3 are impossible, so min < 3 is
//     treated as 3 (the smallest prime in this residue class).
//   - The result is always odd, prime, and congruent to 3 modulo 4.
//
// Algorithm:
//  1. Round min up to the next odd candidate.
//  2. Step by 2, skipping evens, until a candidate passes both the residue
//     test (p mod 4 == 3) and the primality test.
//
// Termination follows from the density of primes ≡ 3 (mod 4) (Dirichlet);
// in practice only a few candidates are inspected.
//
// Complexity: O(√p) per candidate, a one-time construction cost for callers.
func FindPrime(min int) int {
	p := min
	if p < 3 {
		p = 3
	}
	if p%2 == 0 {
		p++
	}
	for !(p%4 == 3 && IsPrime(p)) {
		p += 2 // evens can never be prime here
	}

	return p
}

// IsPrime reports whether x is prime, by deterministic trial division.
//
// Values below 2 are not prime; 2 is the only even prime. Odd x is divided
// by every odd candidate up to √x.
//
// Complexity: O(√x).
func IsPrime(x int) bool {
	if x < 2 {
		return false
	}
	if x%2 == 0 {
		return x == 2
	}
	for i := 3; i*i <= x; i += 2 {
		if x%i == 0 {
			return false
		}
	}

	return true
}
