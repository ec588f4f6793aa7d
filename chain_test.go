package srx_test

import (
	"testing"

	"github.com/Spectonic/srx"
	"github.com/stretchr/testify/require"
)

func TestChainingMatchesBareOperators(t *testing.T) {
	t.Parallel()

	sourceFn := srx.SourceFunc[int](func(next srx.Observer[int]) {
		for _, v := range []int{1, 2, 3, 4, 5, 6} {
			next(v)
		}
	})

	var bare []int
	srx.Multiply(srx.IgnoreEven(sourceFn), 10)(func(v int) { bare = append(bare, v) })

	var chained []int
	srx.Create(sourceFn).
		IgnoreEven().
		Multiply(10).
		Subscribe(func(v int) { chained = append(chained, v) })

	require.Equal(t, []int{10, 30, 50}, bare)
	require.Equal(t, bare, chained)
}

func TestCompositionOrder(t *testing.T) {
	t.Parallel()

	source := srx.Just(1, 2, 3, 4)

	// An odd factor preserves parity, so the two orders agree.
	require.Equal(t, []int{3, 9}, collect(source.IgnoreEven().Multiply(3)))
	require.Equal(t, []int{3, 9}, collect(source.Multiply(3).IgnoreEven()))

	// An even factor makes everything even, so filtering afterwards
	// drops the whole stream.
	require.Equal(t, []int{10, 30}, collect(source.IgnoreEven().Multiply(10)))
	require.Empty(t, collect(source.Multiply(10).IgnoreEven()))
}
