package uniqrand

// Iterator steps through the values a generator has not yet emitted.
//
// An Iterator is a checked view, not an independent stream: every step
// draws from the underlying generator, so values consumed through the
// iterator are gone from every other access path too. The handle captures
// the generator's progress at creation and re-verifies it on each step,
// failing with ErrConcurrentModification if a draw happened elsewhere in
// between. The sequence is finite and non-restartable.
type Iterator struct {
	gen      *Generator
	expected int // generator progress this handle last observed
}

// Iterator returns a checked iterator over the remaining values.
//
// The iterator is unsynchronized, like Next; callers mixing it with other
// access paths get ErrConcurrentModification rather than silent skips.
//
// Complexity: O(1).
func (g *Generator) Iterator() *Iterator {
	return &Iterator{gen: g, expected: g.realIndex}
}

// HasNext reports whether the underlying generator has values left.
//
// Complexity: O(1).
func (it *Iterator) HasNext() bool {
	return it.gen.HasNext()
}

// Next draws the next value through this iterator.
//
// Contracts:
//   - Returns ErrConcurrentModification if the generator advanced through
//     any other path since this iterator's previous step. The iterator is
//     unusable afterwards; the generator itself is unaffected.
//   - Returns ErrExhausted once nothing is left.
//
// Complexity: amortized O(1).
func (it *Iterator) Next() (int, error) {
	if it.expected != it.gen.realIndex {
		return 0, ErrConcurrentModification
	}

	v, err := it.gen.Next()
	if err != nil {
		return 0, err
	}
	it.expected++

	return v, nil
}
