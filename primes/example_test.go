package primes_test

import (
	"fmt"

	"github.com/katalvlaran/lvlrand/primes"
)

// ExampleFindPrime shows how the search skips candidates that are prime
// but in the wrong residue class: 13 ≡ 1 (mod 4), so the answer is 19.
func ExampleFindPrime() {
	fmt.Println(primes.FindPrime(12))
	fmt.Println(primes.FindPrime(3))
	// Output:
	// 19
	// 3
}

// ExampleIsPrime demonstrates the plain primality test.
func ExampleIsPrime() {
	fmt.Println(primes.IsPrime(97))
	fmt.Println(primes.IsPrime(91)) // 7 × 13
	// Output:
	// true
	// false
}
