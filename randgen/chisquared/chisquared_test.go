package chisquared

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCritical(t *testing.T) {
	require := require.New(t)

	require.Equal([]float64{0.90, 0.95, 0.975, 0.99, 0.999}, Confidences())

	v, err := Critical(1, 0.95)
	require.NoError(err)
	require.Equal(3.841, v)

	v, err = Critical(5, 0.99)
	require.NoError(err)
	require.Equal(15.086, v)

	v, err = Critical(40, 0.999)
	require.NoError(err)
	require.Equal(73.402, v)

	_, err = Critical(0, 0.95)
	require.Error(err, "zero degrees of freedom has no critical value")
	_, err = Critical(10, 0.5)
	require.Error(err, "unlisted confidence has no critical value")
}

func TestStatistic(t *testing.T) {
	require := require.New(t)

	require.Equal(0.0, UniformStatistic([]int{10, 10, 10, 10}))
	require.InDelta(2.0, Statistic([]int{12, 8}, []float64{10, 10}), 1e-12)
	require.Panics(func() { Statistic([]int{1}, []float64{1, 2}) })

	ok, chiSq, err := FitsUniform([]int{100, 98, 103, 99, 100, 100}, 0.99)
	require.NoError(err)
	require.True(ok, "near uniform counts should fit (chiSq=%v)", chiSq)

	ok, _, err = FitsUniform([]int{600, 0, 0, 0, 0, 0}, 0.99)
	require.NoError(err)
	require.False(ok, "degenerate counts should not fit")
}
