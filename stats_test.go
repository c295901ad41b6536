package sixdegrees

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	summary, err := Summarize([]int{1, 2, 3, 4})
	require.Nil(t, err)
	require.Equal(t, 4, summary.Count)
	require.Equal(t, 10, summary.Total)
	require.Equal(t, 2.5, summary.Mean)
	// population variance divides by n, not n-1
	require.InDelta(t, 1.25, summary.Variance, 1e-12)
	require.InDelta(t, math.Sqrt(1.25), summary.StdDeviation, 1e-12)

	summary, err = Summarize([]int{3, 3, 3})
	require.Nil(t, err)
	require.Equal(t, 3.0, summary.Mean)
	require.Equal(t, 0.0, summary.Variance)
	require.Equal(t, 0.0, summary.StdDeviation)

	summary, err = Summarize(nil)
	require.ErrorIs(t, err, ErrUndefinedStatistic)
	require.Equal(t, Summary{}, summary)
}

func TestFrequencies(t *testing.T) {
	testcases := []struct {
		counts   []int
		expected []int
	}{
		{counts: []int{0, 2, 2, 5}, expected: []int{1, 0, 2, 0, 0, 1}},
		{counts: []int{0, 0, 0}, expected: []int{3}},
		{counts: []int{1, 0, 0, 0, 0, 0, 1}, expected: []int{5, 2}},
		{counts: nil, expected: []int{}},
	}
	for _, v := range testcases {
		require.Equal(t, v.expected, Frequencies(v.counts), "counts %v", v.counts)
	}
}

func TestProportionOfPairs(t *testing.T) {
	got, err := ProportionOfPairs(2, 7)
	require.Nil(t, err)
	require.InDelta(t, 2.0/21.0, got, 1e-12)

	// every ordered discovery of a mutual pair counts, so values above 1 are possible
	got, err = ProportionOfPairs(2, 2)
	require.Nil(t, err)
	require.Equal(t, 2.0, got)

	for _, vertices := range []int{0, 1} {
		got, err = ProportionOfPairs(0, vertices)
		require.ErrorIs(t, err, ErrUndefinedStatistic)
		require.Equal(t, 0.0, got)
	}
}
