package uniqrand_test

import (
	"testing"

	"github.com/katalvlaran/lvlrand/uniqrand"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIterator_Drain verifies that stepping an iterator yields the same
// sequence a direct drain would, and that it terminates with ErrExhausted.
func TestIterator_Drain(t *testing.T) {
	const count, seed = 100, int64(11)

	direct, err := uniqrand.New(count, uniqrand.WithSeed(seed))
	require.NoError(t, err)
	viaIter, err := uniqrand.New(count, uniqrand.WithSeed(seed))
	require.NoError(t, err)

	it := viaIter.Iterator()
	var got []int
	for it.HasNext() {
		v, err := it.Next()
		require.NoError(t, err)
		got = append(got, v)
	}

	assert.Equal(t, drain(t, direct), got, "iterator must replay the direct order")

	assert.False(t, it.HasNext())
	_, err = it.Next()
	assert.ErrorIs(t, err, uniqrand.ErrExhausted, "stepping past the end")
}

// TestIterator_DetectsDirectDraw pins the checked-iteration contract: a
// Next on the generator itself invalidates an outstanding iterator.
func TestIterator_DetectsDirectDraw(t *testing.T) {
	g, err := uniqrand.New(10, uniqrand.WithSeed(3))
	require.NoError(t, err)

	it := g.Iterator()

	_, err = g.Next() // draw behind the iterator's back
	require.NoError(t, err)

	_, err = it.Next()
	assert.ErrorIs(t, err, uniqrand.ErrConcurrentModification)

	// The generator itself is unaffected: the remaining values still drain.
	assert.Len(t, drain(t, g), 9)
}

// TestIterator_DetectsNextIfHas verifies that the sentinel path counts as
// a modification too.
func TestIterator_DetectsNextIfHas(t *testing.T) {
	g, err := uniqrand.New(5, uniqrand.WithSeed(8))
	require.NoError(t, err)

	it := g.Iterator()
	require.NotEqual(t, uniqrand.None, g.NextIfHas())

	_, err = it.Next()
	assert.ErrorIs(t, err, uniqrand.ErrConcurrentModification)
}

// TestIterator_FreshHandle checks that a new iterator taken after direct
// draws starts clean and consumes exactly what is left.
func TestIterator_FreshHandle(t *testing.T) {
	const count = 20

	g, err := uniqrand.New(count, uniqrand.WithSeed(17))
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		_, err = g.Next()
		require.NoError(t, err)
	}

	it := g.Iterator()
	steps := 0
	for it.HasNext() {
		_, err = it.Next()
		require.NoError(t, err)
		steps++
	}
	assert.Equal(t, count-5, steps, "fresh iterator sees only the remainder")
	assert.False(t, g.HasNext())
}

// TestIterator_TwoHandles verifies that two iterators interleave badly on
// purpose: a step through one stales the other, since both drain the same
// generator.
func TestIterator_TwoHandles(t *testing.T) {
	g, err := uniqrand.New(10, uniqrand.WithSeed(29))
	require.NoError(t, err)

	first := g.Iterator()
	second := g.Iterator()

	_, err = first.Next()
	require.NoError(t, err)

	_, err = second.Next()
	assert.ErrorIs(t, err, uniqrand.ErrConcurrentModification)
}
