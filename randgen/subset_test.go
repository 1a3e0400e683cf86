package randgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oasisprotocol/randgen/common/errors"
	"github.com/oasisprotocol/randgen/randgen/engine"
)

func ensureIsShuffle(t *testing.T, eng Engine, size int64) {
	shuffle := Subset{N: size, M: size}.Sample(eng)
	seen := make(map[int64]struct{})
	for _, v := range shuffle {
		assert.True(t, 0 <= v && v < size, "shuffle element %d out of range", v)
		_, twice := seen[v]
		assert.False(t, twice, "shuffle element %d duplicate in result", v)
		seen[v] = struct{}{}
	}
	assert.EqualValues(t, size, len(shuffle), "not all elements found in shuffle")
}

func TestSubset(t *testing.T) {
	require := require.New(t)

	_, err := NewSubset(5, 4)
	require.True(errors.Is(err, ErrInvalidArgument))
	_, err = NewSubset(-1, 4)
	require.True(errors.Is(err, ErrInvalidArgument))

	eng := engine.NewPCG(42)
	for _, size := range []int64{1, 10, 100, 1000} {
		ensureIsShuffle(t, eng, size)
	}

	// Picking few from a huge interval takes little memory.
	for _, m := range []int64{1_000_000_000, 10_000_000_000_000_000} {
		d, err := NewSubset(100, m)
		require.NoError(err)
		picked := d.Sample(eng)
		require.Len(picked, 100)
		seen := make(map[int64]bool)
		for _, v := range picked {
			require.True(v >= 0 && v < m, "element %d out of range", v)
			require.False(seen[v], "element %d picked twice", v)
			seen[v] = true
		}
	}

	require.Empty(Subset{N: 0, M: 0}.Sample(eng))
	require.Panics(func() { Subset{N: 2, M: 1}.Sample(eng) })
	require.True(Subset{N: 1, M: 3}.Equal(Subset{N: 1, M: 3}))
	require.False(Subset{N: 1, M: 3}.Equal(Subset{N: 2, M: 3}))
}

func TestPickN(t *testing.T) {
	require := require.New(t)

	eng := engine.NewPCG(7)
	_, err := PickN(eng, []string(nil), 1)
	require.True(errors.Is(err, ErrEmptyCollection))
	_, err = PickN(eng, []string{"a"}, 2)
	require.True(errors.Is(err, ErrInvalidArgument))

	idx, err := PickN(eng, []string{"a", "b", "c", "d"}, 4)
	require.NoError(err)
	require.ElementsMatch([]int{0, 1, 2, 3}, idx)
}
